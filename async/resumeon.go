package async

import (
	"context"

	"code.parallelrt.dev/weave/executor"
)

// ResumeOn blocks the calling goroutine until ex has scheduled and run a
// marker continuation, then returns — the Go analogue of an awaitable that
// suspends the current coroutine and resumes it on a target executor.
// Code after ResumeOn returns is guaranteed to happen-after that
// continuation ran on one of ex's workers, which is the observable
// property that matters; unlike true coroutine resumption, the calling
// goroutine itself is never relocated, since Go has no way to move a
// running goroutine's stack onto another worker mid-function.
//
// Returns the executor's rejection error (e.g. executor.ErrShuttingDown)
// if dispatch fails, or ctx.Err() if ctx is done first.
func ResumeOn(ctx context.Context, ex executor.Executor) error {
	done := make(chan struct{})
	if err := ex.Dispatch(func() { close(done) }); err != nil {
		return err
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
