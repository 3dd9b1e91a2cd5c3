// Package queue provides a bounded, lock-free multi-producer
// multi-consumer ring buffer used to transport work between goroutines.
//
// The algorithm is Dmitry Vyukov's bounded MPMC queue: each slot carries a
// sequence number (its position modulo the ring's cycle), and both Push and
// Pop resolve contention with a single CAS on the producer/consumer
// position followed by a release store of the slot's sequence. No thread
// ever blocks; Push/Pop fail fast with ErrFull/ErrEmpty instead.
//
//	q := queue.NewMPMC[Job](1024)
//	if err := q.Push(j); err != nil {
//	    // ring saturated, apply backpressure
//	}
//	j, err := q.Pop()
//
// This package is the transport layer for the executor package's worker
// queues; it has no notion of what it carries.
package queue
