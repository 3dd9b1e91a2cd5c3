package task

import "errors"

// ErrNotReady is returned by Result (and by the non-blocking Err of Task and
// LazyTask) when the shared state has not yet completed — the "EmptyResult"
// condition from the error taxonomy.
var ErrNotReady = errors.New("task: result not ready")
