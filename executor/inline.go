package executor

import "sync/atomic"

// Inline runs every dispatched callable synchronously on the caller's own
// goroutine. ThreadCount is always 1. Useful for tests and as a fan-in
// point where no extra concurrency is wanted.
type Inline struct {
	name     string
	stopping atomic.Bool
}

func newInline(name string) *Inline {
	return &Inline{name: name}
}

// Name returns the label the executor was built with.
func (e *Inline) Name() string { return e.name }

// ThreadCount is always 1: the caller's own goroutine.
func (e *Inline) ThreadCount() int { return 1 }

// Dispatch runs fn synchronously before returning, unless Shutdown has
// already been called.
func (e *Inline) Dispatch(fn func()) error {
	if e.stopping.Load() {
		return ErrShuttingDown
	}
	fn()
	return nil
}

// Shutdown marks the executor as stopping. Idempotent; there is no worker
// to join since Dispatch never leaves work in flight.
func (e *Inline) Shutdown() error {
	e.stopping.Store(true)
	return nil
}

var _ Executor = (*Inline)(nil)
