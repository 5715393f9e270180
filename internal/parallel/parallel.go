// Package parallel provides a chunked parallel-for used by shuffles
// whose per-index evaluations are independent.
package parallel

import (
	"runtime"
	"sync"
)

// NumWorkers returns the default worker count for parallel loops.
func NumWorkers() int {
	return runtime.GOMAXPROCS(0)
}

// For executes fn(i) for every i in [start, end) across workers
// goroutines, splitting the range into contiguous chunks. workers <= 1
// runs inline. fn must not share mutable state between indices.
func For(start, end, workers int, fn func(i int)) {
	if workers <= 1 {
		for i := start; i < end; i++ {
			fn(i)
		}

		return
	}

	total := end - start
	if total <= 0 {
		return
	}
	if workers > total {
		workers = total
	}

	var wg sync.WaitGroup
	chunk := (total + workers - 1) / workers
	for w := 0; w < workers; w++ {
		lo := start + w*chunk
		hi := lo + chunk
		if hi > end {
			hi = end
		}
		if lo >= hi {
			break
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
