package executor_test

import (
	"testing"

	"code.parallelrt.dev/weave/executor"
)

func TestInlineRunsSynchronously(t *testing.T) {
	ex := executor.New("inline").BuildInline()
	if ex.ThreadCount() != 1 {
		t.Fatalf("ThreadCount() = %d, want 1", ex.ThreadCount())
	}
	ran := false
	if err := ex.Dispatch(func() { ran = true }); err != nil {
		t.Fatal(err)
	}
	if !ran {
		t.Fatal("Dispatch on Inline did not run fn synchronously")
	}
}
