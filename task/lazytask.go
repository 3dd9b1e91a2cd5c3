package task

import (
	"context"
	"sync"
	"time"
)

// LazyTask is the deferred counterpart to Task: construction does not run
// the body. Execution begins the first time the task is awaited, gotten, or
// explicitly Force()d, at which point it behaves exactly like an eager
// Task.
type LazyTask[T any] struct {
	state     *SharedState[T]
	fn        func(context.Context) (T, error)
	ctx       context.Context
	cancel    context.CancelFunc
	start     sync.Once
	scheduler func(func()) error
}

// NewLazyTask wraps fn for deferred execution on its own goroutine; fn does
// not run until Force (directly, or indirectly via Await/Get/SyncWait) is
// called.
func NewLazyTask[T any](ctx context.Context, fn func(context.Context) (T, error)) *LazyTask[T] {
	return newLazyTask(ctx, fn, func(f func()) error {
		go f()
		return nil
	})
}

// NewLazyTaskScheduled is like NewLazyTask but runs the body through
// scheduler instead of a bare goroutine — used by the executor package so a
// lazy task's body runs on the owning executor's workers once forced. If
// scheduler returns a non-nil error (e.g. the executor is shutting down),
// the lazy task completes with that error instead of running fn.
func NewLazyTaskScheduled[T any](ctx context.Context, scheduler func(func()) error, fn func(context.Context) (T, error)) *LazyTask[T] {
	return newLazyTask(ctx, fn, scheduler)
}

func newLazyTask[T any](ctx context.Context, fn func(context.Context) (T, error), scheduler func(func()) error) *LazyTask[T] {
	cctx, cancel := context.WithCancel(ctx)
	return &LazyTask[T]{
		state:     NewSharedState[T](),
		fn:        fn,
		ctx:       cctx,
		cancel:    cancel,
		scheduler: scheduler,
	}
}

// Force begins execution if it has not started already. Idempotent and
// safe to call concurrently; only the first call has any effect.
func (t *LazyTask[T]) Force() {
	t.start.Do(func() {
		err := t.scheduler(func() {
			v, err := recoverBody(t.ctx, t.fn)
			if err != nil {
				t.state.CompleteError(err)
				return
			}
			t.state.CompleteValue(v)
		})
		if err != nil {
			t.state.CompleteError(err)
		}
	})
}

// Cancel requests cooperative cancellation of the body, once started.
func (t *LazyTask[T]) Cancel() { t.cancel() }

// State exposes the underlying shared state, forcing execution first since
// nothing should wait on a state nobody started.
func (t *LazyTask[T]) State() *SharedState[T] {
	t.Force()
	return t.state
}

// Done forces execution (if not already started) and returns the
// completion channel, satisfying the Waitable interface.
func (t *LazyTask[T]) Done() <-chan struct{} {
	t.Force()
	return t.state.Done()
}

// Err forces execution and returns the latched error, or ErrNotReady before
// completion.
func (t *LazyTask[T]) Err() error {
	t.Force()
	_, err := t.state.Result()
	return err
}

// Await forces execution if needed, then blocks until ready or ctx is done.
func (t *LazyTask[T]) Await(ctx context.Context) (T, error) {
	t.Force()
	select {
	case <-t.state.Done():
		return t.state.Result()
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// SyncWait forces execution if needed, then blocks until ready.
func (t *LazyTask[T]) SyncWait() (T, error) {
	t.Force()
	<-t.state.Done()
	return t.state.Result()
}

// Get forces execution and blocks until ready, mirroring Task.Get.
func (t *LazyTask[T]) Get() (T, error) { return t.SyncWait() }

// SyncWaitFor forces execution if needed, then blocks up to timeout.
func (t *LazyTask[T]) SyncWaitFor(timeout time.Duration) bool {
	t.Force()
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case <-t.state.Done():
		return true
	case <-timer.C:
		return false
	}
}

// SyncWaitUntil forces execution if needed, then blocks until deadline.
func (t *LazyTask[T]) SyncWaitUntil(deadline time.Time) bool {
	return t.SyncWaitFor(time.Until(deadline))
}
