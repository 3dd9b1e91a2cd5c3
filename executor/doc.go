// Package executor implements the dispatch strategies this module's task
// and composition primitives run on top of:
//
//   - Inline: runs everything synchronously on the caller.
//   - SingleThread: one dedicated worker draining a lock-protected FIFO.
//   - GlobalQueuePool: a thread pool sharing one bounded MPMC queue.
//   - LocalQueuePool: a thread pool where each worker owns its queue,
//     optionally stealing from peers when idle and/or accepting
//     front-of-deque "hot" submissions.
//
// All variants are constructed through Builder (executor.New(name)...) and
// satisfy Executor. Run/RunFlatten/LazyRun/LazyRunFlatten turn a dispatched
// call into a task.Task or task.LazyTask.
package executor
