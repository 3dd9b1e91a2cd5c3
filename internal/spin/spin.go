// Package spin implements a short exponential spin-then-yield backoff for
// lock-free retry loops.
//
// CPU-bound spinning is cheap for the first few retries (the CAS that lost
// a race usually wins on the next attempt) but wasteful once contention
// persists across many attempts; Once escalates from a tight pause loop to
// runtime.Gosched so other goroutines make progress instead of starving the
// core.
package spin

import "runtime"

const spinLimit = 16

// Wait is a retry counter for a single CAS/sequence-check loop. The zero
// value is ready to use.
type Wait struct {
	count int
}

// Once performs one backoff step: a handful of calls do nothing but burn a
// little time (letting the contended cache line settle), after which it
// yields the goroutine's slot to the scheduler.
func (w *Wait) Once() {
	w.count++
	if w.count < spinLimit {
		for i := 0; i < w.count; i++ {
			procyield()
		}
		return
	}
	runtime.Gosched()
}

// Reset clears the backoff state so the next Once starts from the fast path
// again.
func (w *Wait) Reset() {
	w.count = 0
}

//go:noinline
func procyield() {
	// A compiler barrier stand-in: prevents the empty loop body from being
	// optimized away while still being cheaper than runtime.Gosched().
}
