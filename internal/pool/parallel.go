package pool

import (
	"runtime"
	"sync"
)

// parallelThreshold is the minimum number of indices below which
// ParallelFor runs sequentially; below it, goroutine dispatch costs more
// than the work it parallelizes.
const parallelThreshold = 32

// ParallelFor calls fn(i) for every i in [0, n), splitting the range
// across GOMAXPROCS goroutines when n is large enough to amortize the
// dispatch cost, and running sequentially otherwise. fn must not assume
// any ordering between indices and must not share mutable state across
// indices without its own synchronization.
func ParallelFor(n int, fn func(i int)) {
	if n <= 0 {
		return
	}
	if n < parallelThreshold {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if lo >= n {
			break
		}
		if hi > n {
			hi = n
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				fn(i)
			}
		}(lo, hi)
	}
	wg.Wait()
}
