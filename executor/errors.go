package executor

import "errors"

// ErrShuttingDown is returned by Dispatch (and therefore by Run/LazyRun) once
// Shutdown has begun on the target executor.
var ErrShuttingDown = errors.New("executor: shutting down")

// ErrQueueFull is returned by a bounded-queue executor's Dispatch when its
// non-blocking submission policy finds no room.
var ErrQueueFull = errors.New("executor: queue full")

// ErrInvalidArgument is returned by constructors given a nonsensical option,
// such as a non-positive worker count.
var ErrInvalidArgument = errors.New("executor: invalid argument")
