// Package task implements the awaitable result type shared by every
// concurrency primitive in this module.
//
// SharedState is the value-or-exception slot plus at-most-one continuation
// hook backing both Task (eager — begins executing at construction) and
// LazyTask (deferred — begins on first Await/Get/Force). Go has no native
// coroutine suspend point the way this package's source design does, but a
// goroutine blocked on a channel receive is the same thing in practice: the
// Go runtime parks the goroutine and frees its OS thread to run other work,
// which is exactly the property the design depends on. Await and SyncWait
// are therefore the same operation — a receive on the state's done channel
// — exposed under two names for readers coming from the suspend/block
// distinction; callers may call either from any goroutine.
package task
