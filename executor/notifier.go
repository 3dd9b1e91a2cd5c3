package executor

import "sync"

// notifier is the "integer counter with wait/notify semantics" from §4.4's
// per-worker-context description, translated as a generation counter under
// a condition variable: bump() increments and wakes one waiter; wait(g)
// blocks only if the generation has not moved past g since it was sampled,
// so a push that races between a worker's last pop attempt and its wait
// call is never missed.
type notifier struct {
	mu       sync.Mutex
	cond     *sync.Cond
	gen      uint64
	stopping bool
}

func newNotifier() *notifier {
	n := &notifier{}
	n.cond = sync.NewCond(&n.mu)
	return n
}

func (n *notifier) sample() uint64 {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.gen
}

func (n *notifier) bump() {
	n.mu.Lock()
	n.gen++
	n.mu.Unlock()
	n.cond.Signal()
}

func (n *notifier) wait(last uint64) {
	n.mu.Lock()
	for n.gen == last && !n.stopping {
		n.cond.Wait()
	}
	n.mu.Unlock()
}

func (n *notifier) stop() {
	n.mu.Lock()
	n.stopping = true
	n.mu.Unlock()
	n.cond.Broadcast()
}
