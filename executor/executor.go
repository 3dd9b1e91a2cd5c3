// Package executor provides the dispatch contract shared by every
// scheduling strategy in this module — inline, single-thread, and the
// thread-pool families — plus the generic Run/LazyRun free functions that
// turn a dispatched callable into a Task or LazyTask.
//
// Go has no coroutine-level "if the callable returns an awaitable" type
// introspection, so the flattening behaviour described for run/lazy_run is
// split into explicitly named variants (Run vs RunFlatten, LazyRun vs
// LazyRunFlatten) instead of one function that branches on a return type
// generics cannot observe.
package executor

import (
	"context"
	"fmt"

	"code.parallelrt.dev/weave/task"
)

// recoverCall runs fn and converts a panic into an error, the same
// TaskBodyException treatment task.Go/task.LazyTask give a body — needed
// here too since Run/RunFlatten build their own shared state rather than
// going through task.Go.
func recoverCall[T any](fn func() (T, error)) (v T, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero T
			v = zero
			err = fmt.Errorf("executor: task body panicked: %v", r)
		}
	}()
	return fn()
}

// Executor owns a set of worker goroutines (possibly one, possibly the
// caller's own for the inline variant), accepts nullary callables, and can
// be shut down idempotently. Every implementation in this package satisfies
// it.
type Executor interface {
	// Name returns the human-readable diagnostic label the executor was
	// constructed with.
	Name() string
	// ThreadCount reports the number of workers: 1 for inline and
	// single-thread executors, N for pools.
	ThreadCount() int
	// Dispatch schedules fn for execution and returns. It fails with
	// ErrShuttingDown once Shutdown has begun, and may fail with
	// ErrQueueFull for bounded, non-blocking implementations.
	Dispatch(fn func()) error
	// Shutdown stops accepting new work, wakes any parked workers, and
	// blocks until all of them have drained their queues and exited.
	// Idempotent: a second call is a no-op that returns nil.
	Shutdown() error
}

// HotDispatcher is implemented by executors that support the optional
// hot-task priority hint from §6 (hot_bias): a submission pushed to the
// front of a worker's local work instead of the back, biasing latency for
// continuations over fresh work. Not every Executor implements it; callers
// type-assert when they want the hint and fall back to Dispatch otherwise.
type HotDispatcher interface {
	DispatchHot(fn func()) error
}

// Run schedules fn on ex and returns immediately with a Task that becomes
// ready when fn returns. If ex rejects the submission (shutting down, queue
// full) Run returns a nil task and the rejection error synchronously — fn
// never runs in that case.
func Run[T any](ctx context.Context, ex Executor, fn func(context.Context) (T, error)) (*task.Task[T], error) {
	cctx, cancel := context.WithCancel(ctx)
	st := task.NewSharedState[T]()
	err := ex.Dispatch(func() {
		v, err := recoverCall(func() (T, error) { return fn(cctx) })
		if err != nil {
			st.CompleteError(err)
			return
		}
		st.CompleteValue(v)
	})
	if err != nil {
		cancel()
		return nil, err
	}
	return task.FromState(st, cancel), nil
}

// RunFlatten is Run for a callable that itself returns an awaitable (a Task
// or LazyTask of T): the body awaits the inner result before completing the
// outer task, so callers see Task[T] rather than Task[Task[T]].
func RunFlatten[T any](ctx context.Context, ex Executor, fn func(context.Context) (task.Awaiter[T], error)) (*task.Task[T], error) {
	cctx, cancel := context.WithCancel(ctx)
	st := task.NewSharedState[T]()
	err := ex.Dispatch(func() {
		v, err := recoverCall(func() (T, error) {
			inner, err := fn(cctx)
			if err != nil {
				var zero T
				return zero, err
			}
			return inner.Await(cctx)
		})
		if err != nil {
			st.CompleteError(err)
			return
		}
		st.CompleteValue(v)
	})
	if err != nil {
		cancel()
		return nil, err
	}
	return task.FromState(st, cancel), nil
}

// LazyRun is Run but deferred: fn is not dispatched to ex until the
// returned LazyTask is awaited, gotten, or Force()d. A rejection from ex at
// that point (e.g. the executor shut down in the meantime) is surfaced as
// the lazy task's completion error rather than a panic.
func LazyRun[T any](ctx context.Context, ex Executor, fn func(context.Context) (T, error)) *task.LazyTask[T] {
	return task.NewLazyTaskScheduled(ctx, ex.Dispatch, fn)
}

// LazyRunFlatten is RunFlatten but deferred, per LazyRun's scheduling rule.
func LazyRunFlatten[T any](ctx context.Context, ex Executor, fn func(context.Context) (task.Awaiter[T], error)) *task.LazyTask[T] {
	flat := func(cctx context.Context) (T, error) {
		inner, err := fn(cctx)
		if err != nil {
			var zero T
			return zero, err
		}
		return inner.Await(cctx)
	}
	return task.NewLazyTaskScheduled(ctx, ex.Dispatch, flat)
}
