package par_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"code.parallelrt.dev/weave/executor"
	"code.parallelrt.dev/weave/par"
)

func TestParallelForTotality(t *testing.T) {
	ex, err := executor.New("pool").WorkerCount(8).BuildGlobalQueuePool()
	if err != nil {
		t.Fatal(err)
	}
	defer ex.Shutdown()

	const n = 100_000
	var counter int64
	lt, err := par.ParallelFor(context.Background(), ex, 0, n, func(ctx context.Context, i int) error {
		atomic.AddInt64(&counter, 1)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := lt.Get(); err != nil {
		t.Fatal(err)
	}
	if counter != n {
		t.Fatalf("counter = %d, want %d", counter, n)
	}
}

func TestParallelForSumsFullRange(t *testing.T) {
	ex, err := executor.New("pool").WorkerCount(8).BuildGlobalQueuePool()
	if err != nil {
		t.Fatal(err)
	}
	defer ex.Shutdown()

	const n = 1_000_000
	var sum int64
	lt, err := par.ParallelFor(context.Background(), ex, 0, n, func(ctx context.Context, i int) error {
		atomic.AddInt64(&sum, int64(i))
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := lt.Get(); err != nil {
		t.Fatal(err)
	}
	want := int64(n) * int64(n-1) / 2
	if sum != want {
		t.Fatalf("sum = %d, want %d", sum, want)
	}
}

func TestParallelForDoesNotDispatchUntilForced(t *testing.T) {
	ex, err := executor.New("pool").WorkerCount(2).BuildGlobalQueuePool()
	if err != nil {
		t.Fatal(err)
	}
	defer ex.Shutdown()

	var ran int32
	lt, err := par.ParallelFor(context.Background(), ex, 0, 10, func(ctx context.Context, i int) error {
		atomic.AddInt32(&ran, 1)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	time.Sleep(20 * time.Millisecond)
	if atomic.LoadInt32(&ran) != 0 {
		t.Fatal("parallel-for ran before the returned lazy task was forced")
	}
	lt.Get()
	if atomic.LoadInt32(&ran) != 10 {
		t.Fatalf("ran = %d, want 10", ran)
	}
}

func TestParallelForPropagatesFirstError(t *testing.T) {
	ex, err := executor.New("pool").WorkerCount(4).BuildGlobalQueuePool()
	if err != nil {
		t.Fatal(err)
	}
	defer ex.Shutdown()

	wantErr := errors.New("chunk failed")
	lt, err := par.ParallelFor(context.Background(), ex, 0, 100, func(ctx context.Context, i int) error {
		if i == 5 {
			return wantErr
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := lt.Get(); !errors.Is(err, wantErr) {
		t.Fatalf("Get() err = %v, want %v", err, wantErr)
	}
}

func TestParallelForRejectsEmptyRange(t *testing.T) {
	ex := executor.New("inline").BuildInline()
	if _, err := par.ParallelFor(context.Background(), ex, 5, 5, func(ctx context.Context, i int) error { return nil }); !errors.Is(err, par.ErrInvalidRange) {
		t.Fatalf("err = %v, want ErrInvalidRange", err)
	}
}
