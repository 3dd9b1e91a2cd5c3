// Package job provides a single-shot, type-erased nullary callable used as
// the payload type carried by executor work queues.
//
// Unlike the bespoke inline-buffer/vtable callable this component is
// modelled on, Job does not attempt to avoid a heap allocation for small
// closures: a Go func value is already a two-word reference (code pointer +
// captured-variable pointer), and values dispatched to another goroutine
// escape to the heap regardless of any local buffer trick. What the
// original component is actually protecting — "invoked at most once,
// movable, not copyable" — is preserved here with an atomic swap instead of
// a hand-rolled vtable.
package job

import "sync/atomic"

// Job wraps a nullary function for single-shot execution. The zero value is
// not usable; construct with New.
type Job struct {
	fn atomic.Pointer[func()]
}

// New wraps fn as a Job ready for exactly one Invoke or Drop.
func New(fn func()) *Job {
	j := &Job{}
	j.fn.Store(&fn)
	return j
}

// Invoke runs the wrapped function exactly once and releases it.
// Invoking an already-invoked or dropped Job is a contract violation and
// panics, mirroring the "calling invoke() when empty" rule.
func (j *Job) Invoke() {
	p := j.fn.Swap(nil)
	if p == nil {
		panic("job: Invoke called on an already-consumed Job")
	}
	(*p)()
}

// Drop releases the wrapped function without calling it. Safe to call on an
// already-consumed Job (no-op).
func (j *Job) Drop() {
	j.fn.Store(nil)
}

// Empty reports whether the Job has already been invoked or dropped.
func (j *Job) Empty() bool {
	return j.fn.Load() == nil
}
