package executor

import (
	"bytes"
	"runtime"
	"strconv"
	"sync"
	"sync/atomic"
)

// thisThread is the optional this_thread-style diagnostics query API from
// §6: current executor name, local worker index, and a global monotonic
// worker id. Go has no goroutine-local storage, so identity is keyed off
// the calling goroutine's runtime id, parsed out of its own stack trace —
// the same trick goroutine-id packages in the ecosystem use internally,
// since the runtime does not expose the id any other way.
var (
	registry     sync.Map // goroutineID -> workerInfo
	nextWorkerID atomic.Uint64
)

type workerInfo struct {
	executor string
	index    int
	id       uint64
}

func goroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	b := buf[:n]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	if i := bytes.IndexByte(b, ' '); i >= 0 {
		b = b[:i]
	}
	id, _ := strconv.ParseUint(string(b), 10, 64)
	return id
}

// registerWorker records diagnostics for the calling goroutine. Called once
// at the top of every worker loop in this package.
func registerWorker(executorName string, index int) uint64 {
	id := nextWorkerID.Add(1)
	registry.Store(goroutineID(), workerInfo{executor: executorName, index: index, id: id})
	return id
}

func unregisterWorker() {
	registry.Delete(goroutineID())
}

// CurrentExecutor reports the name of the executor owning the calling
// worker goroutine, and whether the calling goroutine is a worker at all.
func CurrentExecutor() (string, bool) {
	v, ok := registry.Load(goroutineID())
	if !ok {
		return "", false
	}
	return v.(workerInfo).executor, true
}

// WorkerIndex reports the calling goroutine's index among its executor's
// workers (0 for single-thread), and whether it is a worker at all. Inline
// has no worker goroutine, so code it runs reports the caller's identity.
func WorkerIndex() (int, bool) {
	v, ok := registry.Load(goroutineID())
	if !ok {
		return 0, false
	}
	return v.(workerInfo).index, true
}

// WorkerID reports a process-wide monotonic id assigned to the calling
// worker goroutine when it started, and whether it is a worker at all.
func WorkerID() (uint64, bool) {
	v, ok := registry.Load(goroutineID())
	if !ok {
		return 0, false
	}
	return v.(workerInfo).id, true
}
