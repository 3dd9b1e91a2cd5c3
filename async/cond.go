package async

import "sync"

// Cond is an auto-reset async condition flag. Wait blocks until the flag
// is set, then clears it — whether the caller found it already set or had
// to enlist and be woken. Set wakes every goroutine currently enlisted;
// if none are enlisted, the flag stays set so the next Wait consumes it
// immediately instead of losing the signal.
type Cond struct {
	mu      sync.Mutex
	set     bool
	waiters []chan struct{}
}

// NewCond returns a Cond, initially unset.
func NewCond() *Cond { return &Cond{} }

// Wait blocks until the flag is set, then resets it.
func (c *Cond) Wait() {
	c.mu.Lock()
	if c.set {
		c.set = false
		c.mu.Unlock()
		return
	}
	wake := make(chan struct{})
	c.waiters = append(c.waiters, wake)
	c.mu.Unlock()
	<-wake
}

// Set wakes every currently enlisted waiter exactly once. If nobody is
// enlisted, the flag remains set for the next Wait to consume.
func (c *Cond) Set() {
	c.mu.Lock()
	if len(c.waiters) == 0 {
		c.set = true
		c.mu.Unlock()
		return
	}
	waiters := c.waiters
	c.waiters = nil
	c.set = false
	c.mu.Unlock()
	for _, w := range waiters {
		close(w)
	}
}

// Reset clears the flag without waking anyone.
func (c *Cond) Reset() {
	c.mu.Lock()
	c.set = false
	c.mu.Unlock()
}

// IsSet reports whether the flag is currently set.
func (c *Cond) IsSet() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.set
}
