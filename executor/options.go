package executor

import (
	"runtime"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

// StealPolicy selects how an idle worker in a local-queue pool looks for
// work once its own queue is empty.
type StealPolicy int

const (
	// StealNone disables stealing: a local-queue pool with this policy is
	// the plain per-worker-queue variant from §4.6.
	StealNone StealPolicy = iota
	// StealSequential scans peer queues starting from worker 0 in order.
	StealSequential
	// StealNeighbor scans immediate neighbors first (right, left,
	// outward), biasing toward peers likely to share cache state.
	StealNeighbor
)

func (p StealPolicy) String() string {
	switch p {
	case StealNone:
		return "none"
	case StealSequential:
		return "sequential"
	case StealNeighbor:
		return "neighbor"
	default:
		return "unknown"
	}
}

// config collects the executor-construction options enumerated in §6.
type config struct {
	name          string
	workerCount   int
	queueCapacity int
	stealPolicy   StealPolicy
	hotBias       bool
	logger        zerolog.Logger
	registry      prometheus.Registerer
}

func defaultConfig(name string) config {
	return config{
		name:          name,
		workerCount:   runtime.NumCPU(),
		queueCapacity: 1024,
		stealPolicy:   StealNone,
		hotBias:       false,
		logger:        zerolog.Nop(),
	}
}

// Builder assembles an Executor with a fluent configuration API: New(name),
// chain options, then call the Build method for the family you want.
type Builder struct {
	cfg config
}

// New starts a builder for an executor named name. name is purely for
// diagnostics (logging, this_thread-style queries); it need not be unique.
func New(name string) *Builder {
	return &Builder{cfg: defaultConfig(name)}
}

// WorkerCount overrides the default (logical CPU count) worker count used
// by pool variants. Ignored by Inline and SingleThread.
func (b *Builder) WorkerCount(n int) *Builder {
	b.cfg.workerCount = n
	return b
}

// QueueCapacity overrides the default (1024) bounded-queue capacity used by
// the global-queue and local-queue pool variants. Rounded up to a power of
// two by the underlying queue.
func (b *Builder) QueueCapacity(c int) *Builder {
	b.cfg.queueCapacity = c
	return b
}

// Steal sets the steal policy used by local-queue pools. Has no effect on
// the global-queue pool, which has no concept of a peer to steal from.
func (b *Builder) Steal(p StealPolicy) *Builder {
	b.cfg.stealPolicy = p
	return b
}

// HotBias enables front-of-deque submission for DispatchHot calls on the
// built LocalQueuePool. Without it, DispatchHot behaves exactly like
// Dispatch (no hot stack is ever populated or consulted); with it, DispatchHot
// submissions are popped ahead of the pool's regular per-worker queues.
func (b *Builder) HotBias(v bool) *Builder {
	b.cfg.hotBias = v
	return b
}

// Logger sets the zerolog.Logger used for the executor's worker-lifecycle
// diagnostics (worker started/exiting, at debug level). Defaults to a no-op
// logger. Inline has no worker and does not log.
func (b *Builder) Logger(l zerolog.Logger) *Builder {
	b.cfg.logger = l
	return b
}

// Metrics registers a Prometheus collector set under reg for the built
// executor, labeled with its name. Only GlobalQueuePool and LocalQueuePool
// report through it: Inline and SingleThread have no queue depth worth
// tracking. Leaving this unset (the default) keeps the executor metrics-free.
func (b *Builder) Metrics(reg prometheus.Registerer) *Builder {
	b.cfg.registry = reg
	return b
}

// BuildInline returns an Inline executor. Worker count, queue capacity,
// steal policy, and hot bias are not meaningful for this variant.
func (b *Builder) BuildInline() *Inline {
	return newInline(b.cfg.name)
}

// BuildSingleThread returns a SingleThread executor: one dedicated worker
// draining a lock-protected FIFO.
func (b *Builder) BuildSingleThread() *SingleThread {
	return newSingleThread(b.cfg.name, b.cfg.logger)
}

// BuildGlobalQueuePool returns a thread-pool executor where every worker
// pops from one shared bounded MPMC queue.
func (b *Builder) BuildGlobalQueuePool() (*GlobalQueuePool, error) {
	return newGlobalQueuePool(b.cfg)
}

// BuildLocalQueuePool returns a thread-pool executor where each worker owns
// its own bounded MPMC queue, submissions round-robin across workers, and
// idle workers steal per b.cfg's steal policy (StealNone disables
// stealing, reproducing the plain local-queue variant from §4.6).
func (b *Builder) BuildLocalQueuePool() (*LocalQueuePool, error) {
	return newLocalQueuePool(b.cfg)
}
