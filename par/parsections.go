package par

import (
	"context"

	"code.parallelrt.dev/weave/executor"
	"code.parallelrt.dev/weave/task"
)

// ParallelSections dispatches each of fns as its own task on ex and
// returns a lazy task that completes once all of them have, deferring even
// the dispatch of the sections until forced. Exception policy matches
// ParallelFor: the first observed error wins, the rest are dropped.
func ParallelSections(ctx context.Context, ex executor.Executor, fns ...func(context.Context) error) *task.LazyTask[struct{}] {
	return executor.LazyRun(ctx, ex, func(cctx context.Context) (struct{}, error) {
		tasks := make([]*task.Task[struct{}], 0, len(fns))
		var firstErr error
		for _, fn := range fns {
			fn := fn
			tk, err := executor.Run(cctx, ex, func(cctx context.Context) (struct{}, error) {
				return struct{}{}, fn(cctx)
			})
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				continue
			}
			tasks = append(tasks, tk)
		}
		for _, tk := range tasks {
			if _, err := tk.Await(cctx); err != nil && firstErr == nil {
				firstErr = err
			}
		}
		return struct{}{}, firstErr
	})
}
