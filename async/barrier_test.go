package async_test

import (
	"sync"
	"testing"
	"time"

	"code.parallelrt.dev/weave/async"
)

func TestBarrierReleasesAtExpectedCount(t *testing.T) {
	const n = 8
	b := async.NewBarrier(n)
	var wg sync.WaitGroup
	wg.Add(n)
	released := make(chan struct{}, n)
	for i := 0; i < n-1; i++ {
		go func() {
			defer wg.Done()
			b.Await()
			released <- struct{}{}
		}()
	}
	time.Sleep(20 * time.Millisecond)
	if len(released) != 0 {
		t.Fatal("barrier released before expected count reached")
	}

	go func() {
		defer wg.Done()
		b.Arrive() // (n-1) arrivals from the loop below plus this one reaches n
	}()

	for i := 0; i < n-1; i++ {
		b.Arrive()
	}

	wg.Wait()
	if len(released) != n-1 {
		t.Fatalf("released = %d, want %d", len(released), n-1)
	}
}

func TestBarrierAwaitAfterThresholdReturnsImmediately(t *testing.T) {
	b := async.NewBarrier(1)
	b.Arrive()
	done := make(chan struct{})
	go func() {
		b.Await()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Await after threshold reached did not return")
	}
}
