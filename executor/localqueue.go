package executor

import (
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"code.parallelrt.dev/weave/job"
	"code.parallelrt.dev/weave/queue"
)

type localWorker struct {
	q      *queue.MPMC[*job.Job]
	notify *notifier

	hotMu sync.Mutex
	hot   []*job.Job
}

// LocalQueuePool is the per-worker-queue thread-pool family from §4.6: each
// worker owns its own bounded MPMC queue and notifier, submissions
// round-robin across workers, and — when built with a non-StealNone
// policy — an idle worker scans peers for work before parking, reproducing
// the work-stealing variant. StealNone reproduces the plain local-queue
// variant.
type LocalQueuePool struct {
	name     string
	workers  []*localWorker
	steal    StealPolicy
	hotBias  bool
	next     atomic.Uint64
	stopping atomic.Bool
	wg       sync.WaitGroup
	logger   zerolog.Logger
	metrics  *Metrics
}

func newLocalQueuePool(cfg config) (*LocalQueuePool, error) {
	if cfg.workerCount < 1 {
		return nil, ErrInvalidArgument
	}
	e := &LocalQueuePool{
		name:    cfg.name,
		steal:   cfg.stealPolicy,
		hotBias: cfg.hotBias,
		logger:  cfg.logger,
	}
	if cfg.registry != nil {
		e.metrics = NewMetrics(cfg.registry, cfg.name)
	}
	e.workers = make([]*localWorker, cfg.workerCount)
	for i := range e.workers {
		e.workers[i] = &localWorker{q: queue.NewMPMC[*job.Job](cfg.queueCapacity), notify: newNotifier()}
	}
	e.wg.Add(len(e.workers))
	for i := range e.workers {
		go e.workerLoop(i)
	}
	return e, nil
}

// Name returns the label the executor was built with.
func (e *LocalQueuePool) Name() string { return e.name }

// ThreadCount reports the configured worker count.
func (e *LocalQueuePool) ThreadCount() int { return len(e.workers) }

// Dispatch round-robins fn onto one worker's own queue and wakes it.
func (e *LocalQueuePool) Dispatch(fn func()) error {
	if e.stopping.Load() {
		if e.metrics != nil {
			e.metrics.Rejected.Inc()
		}
		return ErrShuttingDown
	}
	w := e.workers[e.pick()]
	if err := w.q.Push(job.New(fn)); err != nil {
		if e.metrics != nil {
			e.metrics.Rejected.Inc()
		}
		return ErrQueueFull
	}
	if e.metrics != nil {
		e.metrics.Dispatched.Inc()
		e.metrics.QueueDepth.Inc()
	}
	w.notify.bump()
	return nil
}

// DispatchHot round-robins fn onto one worker's hot stack, checked ahead of
// its regular queue — the front-of-deque bias from §6's hot_bias option.
// Only has an observable effect on pools built with HotBias(true); on a
// pool built without it, popOne never consults the hot stack, so this
// falls back to an ordinary Dispatch (back of the regular queue) instead of
// silently accepting work that would never run.
func (e *LocalQueuePool) DispatchHot(fn func()) error {
	if !e.hotBias {
		return e.Dispatch(fn)
	}
	if e.stopping.Load() {
		if e.metrics != nil {
			e.metrics.Rejected.Inc()
		}
		return ErrShuttingDown
	}
	w := e.workers[e.pick()]
	w.hotMu.Lock()
	w.hot = append(w.hot, job.New(fn))
	w.hotMu.Unlock()
	if e.metrics != nil {
		e.metrics.Dispatched.Inc()
	}
	w.notify.bump()
	return nil
}

func (e *LocalQueuePool) pick() int {
	return int(e.next.Add(1) % uint64(len(e.workers)))
}

// Shutdown stops accepting submissions, wakes every worker so each drains
// its own queue (and hot stack) and exits, then joins them. Idempotent.
func (e *LocalQueuePool) Shutdown() error {
	e.stopping.Store(true)
	for _, w := range e.workers {
		w.notify.stop()
	}
	e.wg.Wait()
	return nil
}

func (e *LocalQueuePool) workerLoop(id int) {
	defer e.wg.Done()
	w := e.workers[id]
	registerWorker(e.name, id)
	defer unregisterWorker()
	e.logger.Debug().Str("executor", e.name).Int("worker", id).Msg("worker started")
	for {
		gen := w.notify.sample()
		for {
			j, ok := e.popOne(id)
			if !ok {
				break
			}
			e.runOne(j)
		}
		if e.stopping.Load() {
			if j, ok := e.popOne(id); ok {
				e.runOne(j)
				continue
			}
			e.logger.Debug().Str("executor", e.name).Int("worker", id).Msg("worker exiting")
			return
		}
		w.notify.wait(gen)
	}
}

// popOne tries the calling worker's own hot stack (only when the pool was
// built with HotBias(true)), then its own queue, then — per the configured
// steal policy — one pop attempt against each peer in turn, stopping at the
// first success. Matches the canonical work-stealing worker loop:
// try_pop(local) ?? try_steal_from_peers().
func (e *LocalQueuePool) popOne(id int) (*job.Job, bool) {
	w := e.workers[id]

	if e.hotBias {
		w.hotMu.Lock()
		if n := len(w.hot); n > 0 {
			j := w.hot[n-1]
			w.hot = w.hot[:n-1]
			w.hotMu.Unlock()
			return j, true
		}
		w.hotMu.Unlock()
	}

	if j, err := w.q.Pop(); err == nil {
		if e.metrics != nil {
			e.metrics.QueueDepth.Dec()
		}
		return j, true
	}

	if e.steal == StealNone {
		return nil, false
	}
	for _, peer := range e.stealOrder(id) {
		if j, err := e.workers[peer].q.Pop(); err == nil {
			if e.metrics != nil {
				e.metrics.QueueDepth.Dec()
			}
			return j, true
		}
	}
	return nil, false
}

func (e *LocalQueuePool) runOne(j *job.Job) {
	j.Invoke()
	if e.metrics != nil {
		e.metrics.Completed.Inc()
	}
}

func (e *LocalQueuePool) stealOrder(id int) []int {
	n := len(e.workers)
	order := make([]int, 0, n-1)
	switch e.steal {
	case StealSequential:
		for j := 0; j < n; j++ {
			if j != id {
				order = append(order, j)
			}
		}
	case StealNeighbor:
		for d := 1; d < n; d++ {
			right := (id + d) % n
			left := ((id-d)%n + n) % n
			order = append(order, right)
			if left != right {
				order = append(order, left)
			}
		}
	}
	return order
}

var _ Executor = (*LocalQueuePool)(nil)
var _ HotDispatcher = (*LocalQueuePool)(nil)
