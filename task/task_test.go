package task_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"code.parallelrt.dev/weave/task"
)

func TestTaskEagerStartsImmediately(t *testing.T) {
	started := make(chan struct{})
	tk := task.Go(context.Background(), func(ctx context.Context) (int, error) {
		close(started)
		return 42, nil
	})
	select {
	case <-started:
	case <-time.After(time.Second):
		t.Fatal("eager task did not start running")
	}
	v, err := tk.Get()
	if err != nil || v != 42 {
		t.Fatalf("Get() = (%d, %v), want (42, nil)", v, err)
	}
}

func TestTaskHappensBefore(t *testing.T) {
	var x int
	tk := task.Go(context.Background(), func(ctx context.Context) (int, error) {
		x = 7
		return 0, nil
	})
	if _, err := tk.Await(context.Background()); err != nil {
		t.Fatal(err)
	}
	if x != 7 {
		t.Fatalf("write before completion not observed after await: x=%d", x)
	}
}

func TestTaskExceptionPropagation(t *testing.T) {
	wantErr := errors.New("boom")
	tk := task.Go(context.Background(), func(ctx context.Context) (int, error) {
		return 0, wantErr
	})
	_, err := tk.Get()
	if !errors.Is(err, wantErr) {
		t.Fatalf("Get() err = %v, want %v", err, wantErr)
	}
}

func TestTaskAwaitRespectsContext(t *testing.T) {
	never := make(chan struct{})
	tk := task.Go(context.Background(), func(ctx context.Context) (int, error) {
		<-never
		return 0, nil
	})
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := tk.Await(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Await err = %v, want DeadlineExceeded", err)
	}
	close(never)
}

func TestTaskSyncWaitForTimesOut(t *testing.T) {
	never := make(chan struct{})
	tk := task.Go(context.Background(), func(ctx context.Context) (int, error) {
		<-never
		return 0, nil
	})
	if tk.SyncWaitFor(10 * time.Millisecond) {
		t.Fatal("SyncWaitFor should have timed out")
	}
	close(never)
	if !tk.SyncWaitFor(time.Second) {
		t.Fatal("SyncWaitFor should have succeeded once unblocked")
	}
}

func TestSharedStateDoubleCompletionPanics(t *testing.T) {
	s := task.NewSharedState[int]()
	s.CompleteValue(1)
	defer func() {
		if recover() == nil {
			t.Fatal("second completion did not panic")
		}
	}()
	s.CompleteValue(2)
}

func TestSharedStateDoubleContinuationPanics(t *testing.T) {
	s := task.NewSharedState[int]()
	s.InstallContinuation(func() {})
	defer func() {
		if recover() == nil {
			t.Fatal("second continuation install did not panic")
		}
	}()
	s.InstallContinuation(func() {})
}

func TestSharedStateContinuationRunsSynchronouslyWhenReady(t *testing.T) {
	s := task.NewSharedState[int]()
	s.CompleteValue(9)
	var ran int32
	s.InstallContinuation(func() { atomic.StoreInt32(&ran, 1) })
	if atomic.LoadInt32(&ran) != 1 {
		t.Fatal("continuation installed on a ready state must run synchronously")
	}
}

func TestSharedStateContinuationFiresOnCompletion(t *testing.T) {
	s := task.NewSharedState[int]()
	done := make(chan struct{})
	s.InstallContinuation(func() { close(done) })
	s.CompleteValue(1)
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("continuation never fired")
	}
}

func TestLazyTaskDoesNotStartUntilForced(t *testing.T) {
	var count int32
	lt := task.NewLazyTask(context.Background(), func(ctx context.Context) (int, error) {
		atomic.AddInt32(&count, 1)
		return 1, nil
	})
	time.Sleep(20 * time.Millisecond)
	if atomic.LoadInt32(&count) != 0 {
		t.Fatal("lazy task body ran before Force/Await/Get")
	}
	v, err := lt.Get()
	if err != nil || v != 1 {
		t.Fatalf("Get() = (%d, %v), want (1, nil)", v, err)
	}
	if atomic.LoadInt32(&count) != 1 {
		t.Fatalf("body ran %d times, want 1", count)
	}
}

func TestLazyTaskForceIsIdempotent(t *testing.T) {
	var count int32
	lt := task.NewLazyTask(context.Background(), func(ctx context.Context) (int, error) {
		atomic.AddInt32(&count, 1)
		return 1, nil
	})
	lt.Force()
	lt.Force()
	lt.Get()
	if atomic.LoadInt32(&count) != 1 {
		t.Fatalf("body ran %d times, want 1", count)
	}
}
