package executor

import (
	"sync"

	"github.com/rs/zerolog"
)

// SingleThread dedicates one worker goroutine to a lock-protected FIFO.
// The worker parks on a condition variable when the queue is empty and
// wakes on submission or shutdown.
type SingleThread struct {
	name   string
	logger zerolog.Logger

	mu       sync.Mutex
	cond     *sync.Cond
	queue    []func()
	stopping bool
	joined   chan struct{}
}

func newSingleThread(name string, logger zerolog.Logger) *SingleThread {
	e := &SingleThread{name: name, logger: logger, joined: make(chan struct{})}
	e.cond = sync.NewCond(&e.mu)
	go e.loop()
	return e
}

// Name returns the label the executor was built with.
func (e *SingleThread) Name() string { return e.name }

// ThreadCount is always 1.
func (e *SingleThread) ThreadCount() int { return 1 }

// Dispatch appends fn to the FIFO and wakes the worker if it is parked.
func (e *SingleThread) Dispatch(fn func()) error {
	e.mu.Lock()
	if e.stopping {
		e.mu.Unlock()
		return ErrShuttingDown
	}
	e.queue = append(e.queue, fn)
	e.mu.Unlock()
	e.cond.Signal()
	return nil
}

// Shutdown marks the executor stopping, wakes the worker so it observes
// that and drains any remaining queued work, then blocks until it exits.
// Idempotent.
func (e *SingleThread) Shutdown() error {
	e.mu.Lock()
	e.stopping = true
	e.mu.Unlock()
	e.cond.Broadcast()
	<-e.joined
	return nil
}

func (e *SingleThread) loop() {
	defer close(e.joined)
	registerWorker(e.name, 0)
	defer unregisterWorker()
	e.logger.Debug().Str("executor", e.name).Msg("worker started")
	for {
		e.mu.Lock()
		for len(e.queue) == 0 && !e.stopping {
			e.cond.Wait()
		}
		if len(e.queue) == 0 && e.stopping {
			e.mu.Unlock()
			e.logger.Debug().Str("executor", e.name).Msg("worker exiting")
			return
		}
		fn := e.queue[0]
		e.queue[0] = nil
		e.queue = e.queue[1:]
		e.mu.Unlock()
		fn()
	}
}

var _ Executor = (*SingleThread)(nil)
