package async_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"code.parallelrt.dev/weave/async"
	"code.parallelrt.dev/weave/executor"
)

func TestResumeOnHappensAfterExecutorContinuation(t *testing.T) {
	ex, err := executor.New("pool").WorkerCount(1).BuildGlobalQueuePool()
	if err != nil {
		t.Fatal(err)
	}
	defer ex.Shutdown()

	block := make(chan struct{})
	var marked bool
	if err := ex.Dispatch(func() { <-block; marked = true }); err != nil {
		t.Fatal(err)
	}

	done := make(chan struct{})
	go func() {
		if err := async.ResumeOn(context.Background(), ex); err != nil {
			t.Error(err)
		}
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("ResumeOn returned before the executor's prior work finished")
	case <-time.After(20 * time.Millisecond):
	}

	close(block)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("ResumeOn never returned")
	}
	if !marked {
		t.Fatal("ResumeOn returned before the executor's prior work had run")
	}
}

func TestResumeOnSurfacesShutdown(t *testing.T) {
	ex := executor.New("inline").BuildInline()
	ex.Shutdown()
	err := async.ResumeOn(context.Background(), ex)
	if !errors.Is(err, executor.ErrShuttingDown) {
		t.Fatalf("ResumeOn err = %v, want ErrShuttingDown", err)
	}
}
