package executor_test

import (
	"sync"
	"testing"

	"code.parallelrt.dev/weave/executor"
)

func TestSingleThreadFIFOOrder(t *testing.T) {
	ex := executor.New("single").BuildSingleThread()
	defer ex.Shutdown()

	const n = 500
	var mu sync.Mutex
	var order []int
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		i := i
		if err := ex.Dispatch(func() {
			mu.Lock()
			order = append(order, i)
			mu.Unlock()
			wg.Done()
		}); err != nil {
			t.Fatal(err)
		}
	}
	wg.Wait()
	for i, v := range order {
		if v != i {
			t.Fatalf("order[%d] = %d, want %d (FIFO violated)", i, v, i)
		}
	}
}
