package par

import (
	"context"

	"code.parallelrt.dev/weave/task"
)

// WaitAll awaits every item in turn and returns the first observed error,
// if any. Since every item is already running (eager tasks) or is started
// on first touch (lazy tasks begin here), total latency is bounded by the
// longest branch rather than the sum of all of them — awaiting in sequence
// only serializes observation, not execution.
func WaitAll(ctx context.Context, items []task.Waitable) error {
	var firstErr error
	dones := make([]<-chan struct{}, len(items))
	for i, it := range items {
		dones[i] = it.Done()
	}
	for i, it := range items {
		select {
		case <-dones[i]:
		case <-ctx.Done():
			if firstErr == nil {
				firstErr = ctx.Err()
			}
			return firstErr
		}
		if err := it.Err(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
