// Package async provides the suspension-based synchronization primitives
// (C7): a mutex with a FIFO waiter queue and scoped release, an
// auto-reset condition variable, a barrier, and a resume-on awaitable that
// hops a goroutine's continuation onto a target executor.
//
// Each primitive blocks the calling goroutine on a channel receive rather
// than suspending a coroutine object — the same translation task.Task uses
// — so "await" here just means "receive", and the Go scheduler parks the
// goroutine exactly as it would park any other blocked receiver.
package async
