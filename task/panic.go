package task

import (
	"context"
	"fmt"
)

// recoverBody runs fn and converts any panic into a TaskBodyException-style
// error instead of letting it cross the goroutine boundary and crash the
// process. A task body failing is an expected, reportable outcome (visible
// through Await/Get); an executor's own loop bug is not, and is deliberately
// left to crash — see the executor package's worker loops.
func recoverBody[T any](ctx context.Context, fn func(context.Context) (T, error)) (v T, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero T
			v = zero
			err = fmt.Errorf("task: body panicked: %v", r)
		}
	}()
	return fn(ctx)
}
