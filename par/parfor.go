package par

import (
	"context"

	"code.parallelrt.dev/weave/executor"
	"code.parallelrt.dev/weave/task"
)

type indexRange struct {
	from, to int
}

// ParallelFor partitions [from, to) into contiguous chunks — default chunk
// size is ceil((to-from)/ex.ThreadCount()), clamped to at least 1 — and
// runs each chunk as its own task on ex, iterating the chunk sequentially
// in index order. It returns a lazy task that completes once every chunk
// task has, and does not launch any chunk until the returned task is
// forced. If any chunk's body returns an error, the first one observed
// (iterating chunks in order) is propagated; the rest are dropped.
func ParallelFor(ctx context.Context, ex executor.Executor, from, to int, body func(context.Context, int) error) (*task.LazyTask[struct{}], error) {
	if from >= to {
		return nil, ErrInvalidRange
	}
	threads := ex.ThreadCount()
	if threads < 1 {
		threads = 1
	}
	chunk := (to - from + threads - 1) / threads
	if chunk < 1 {
		chunk = 1
	}
	return parallelForChunked(ctx, ex, from, to, chunk, body), nil
}

// ParallelForChunked is ParallelFor with an explicit chunk size instead of
// the thread-count-derived default.
func ParallelForChunked(ctx context.Context, ex executor.Executor, from, to, chunkSize int, body func(context.Context, int) error) (*task.LazyTask[struct{}], error) {
	if from >= to {
		return nil, ErrInvalidRange
	}
	if chunkSize < 1 {
		return nil, ErrInvalidChunkSize
	}
	return parallelForChunked(ctx, ex, from, to, chunkSize, body), nil
}

func parallelForChunked(ctx context.Context, ex executor.Executor, from, to, chunkSize int, body func(context.Context, int) error) *task.LazyTask[struct{}] {
	var chunks []indexRange
	for s := from; s < to; s += chunkSize {
		e := s + chunkSize
		if e > to {
			e = to
		}
		chunks = append(chunks, indexRange{from: s, to: e})
	}

	return executor.LazyRun(ctx, ex, func(cctx context.Context) (struct{}, error) {
		tasks := make([]*task.Task[struct{}], 0, len(chunks))
		var firstErr error
		for _, r := range chunks {
			r := r
			tk, err := executor.Run(cctx, ex, func(cctx context.Context) (struct{}, error) {
				for i := r.from; i < r.to; i++ {
					if err := body(cctx, i); err != nil {
						return struct{}{}, err
					}
				}
				return struct{}{}, nil
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
