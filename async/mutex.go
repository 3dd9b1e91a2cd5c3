package async

import (
	"sync"
	"sync/atomic"
)

// Mutex is an async mutual-exclusion lock: Lock blocks the calling
// goroutine (without occupying an OS thread any longer than the Go runtime
// needs to) until ownership is acquired, enqueueing FIFO among contending
// waiters rather than racing them.
//
// Unlike a sync.Mutex, a waiter resumed by Unlock is handed ownership
// directly — it does not re-race the owned flag against new arrivals — so
// FIFO order is an observable guarantee, not an accident of scheduling.
type Mutex struct {
	locked  atomic.Bool
	mu      sync.Mutex
	waiters []chan struct{}
}

// NewMutex returns an unlocked Mutex.
func NewMutex() *Mutex { return &Mutex{} }

// TryLock acquires the mutex without blocking, returning false if it is
// already held.
func (m *Mutex) TryLock() bool {
	return m.locked.CompareAndSwap(false, true)
}

// Lock blocks until the mutex is acquired and returns a ScopedGuard; the
// caller must call Unlock (directly, or via defer) exactly once to release
// it.
func (m *Mutex) Lock() *ScopedGuard {
	if m.locked.CompareAndSwap(false, true) {
		return &ScopedGuard{m: m}
	}
	wake := make(chan struct{})
	m.mu.Lock()
	if m.locked.CompareAndSwap(false, true) {
		m.mu.Unlock()
		return &ScopedGuard{m: m}
	}
	m.waiters = append(m.waiters, wake)
	m.mu.Unlock()
	<-wake
	return &ScopedGuard{m: m}
}

// releaseAndResumeNext is the unlock half: if a waiter is enqueued, it is
// handed ownership directly (the owned flag is never cleared in that
// case); otherwise the flag clears and the mutex becomes free.
func (m *Mutex) releaseAndResumeNext() {
	m.mu.Lock()
	if len(m.waiters) == 0 {
		m.locked.Store(false)
		m.mu.Unlock()
		return
	}
	next := m.waiters[0]
	m.waiters = m.waiters[1:]
	m.mu.Unlock()
	close(next)
}

// ScopedGuard represents ownership of a Mutex acquired via Lock. It
// releases exactly once, on the first call to Unlock.
type ScopedGuard struct {
	m    *Mutex
	once sync.Once
}

// Unlock releases the mutex, waking the longest-waiting queued goroutine if
// any. Safe to call more than once; only the first call has effect.
func (g *ScopedGuard) Unlock() {
	g.once.Do(func() {
		g.m.releaseAndResumeNext()
	})
}
