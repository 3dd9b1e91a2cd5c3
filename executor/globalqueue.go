package executor

import (
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"code.parallelrt.dev/weave/job"
	"code.parallelrt.dev/weave/queue"
)

// GlobalQueuePool is the thread-pool variant where every worker pops from
// one shared bounded MPMC queue (C1). Submissions append to it as *job.Job
// (C2), the single-shot move-only callable each worker Invokes exactly
// once; a single generation-counter notifier wakes one parked worker per
// submission (Shutdown's stop wakes all of them).
type GlobalQueuePool struct {
	name     string
	q        *queue.MPMC[*job.Job]
	notify   *notifier
	stopping atomic.Bool
	wg       sync.WaitGroup
	logger   zerolog.Logger
	threads  int
	metrics  *Metrics
}

func newGlobalQueuePool(cfg config) (*GlobalQueuePool, error) {
	if cfg.workerCount < 1 {
		return nil, ErrInvalidArgument
	}
	e := &GlobalQueuePool{
		name:    cfg.name,
		q:       queue.NewMPMC[*job.Job](cfg.queueCapacity),
		notify:  newNotifier(),
		logger:  cfg.logger,
		threads: cfg.workerCount,
	}
	if cfg.registry != nil {
		e.metrics = NewMetrics(cfg.registry, cfg.name)
	}
	e.wg.Add(cfg.workerCount)
	for i := 0; i < cfg.workerCount; i++ {
		go e.workerLoop(i)
	}
	return e, nil
}

// Name returns the label the executor was built with.
func (e *GlobalQueuePool) Name() string { return e.name }

// ThreadCount reports the configured worker count.
func (e *GlobalQueuePool) ThreadCount() int { return e.threads }

// Dispatch pushes fn onto the shared queue and wakes a worker. Fails with
// ErrShuttingDown after Shutdown, or ErrQueueFull if the bounded queue has
// no room — this variant never blocks.
func (e *GlobalQueuePool) Dispatch(fn func()) error {
	if e.stopping.Load() {
		if e.metrics != nil {
			e.metrics.Rejected.Inc()
		}
		return ErrShuttingDown
	}
	if err := e.q.Push(job.New(fn)); err != nil {
		if e.metrics != nil {
			e.metrics.Rejected.Inc()
		}
		return ErrQueueFull
	}
	if e.metrics != nil {
		e.metrics.Dispatched.Inc()
		e.metrics.QueueDepth.Inc()
	}
	e.notify.bump()
	return nil
}

// Shutdown stops accepting submissions, wakes every parked worker so each
// drains its remaining queue and exits, then joins them. Idempotent.
func (e *GlobalQueuePool) Shutdown() error {
	e.stopping.Store(true)
	e.notify.stop()
	e.wg.Wait()
	return nil
}

func (e *GlobalQueuePool) workerLoop(id int) {
	defer e.wg.Done()
	registerWorker(e.name, id)
	defer unregisterWorker()
	e.logger.Debug().Str("executor", e.name).Int("worker", id).Msg("worker started")
	for {
		gen := e.notify.sample()
		for {
			j, err := e.q.Pop()
			if err != nil {
				break
			}
			e.runOne(j)
		}
		if e.stopping.Load() {
			if j, err := e.q.Pop(); err == nil {
				e.runOne(j)
				continue
			}
			e.logger.Debug().Str("executor", e.name).Int("worker", id).Msg("worker exiting")
			return
		}
		e.notify.wait(gen)
	}
}

func (e *GlobalQueuePool) runOne(j *job.Job) {
	if e.metrics != nil {
		e.metrics.QueueDepth.Dec()
	}
	j.Invoke()
	if e.metrics != nil {
		e.metrics.Completed.Inc()
	}
}

var _ Executor = (*GlobalQueuePool)(nil)
