package parlay_go

import (
	"runtime"
	"sync"
)

// PackIndex returns, in increasing order, every index i in [0, n) for which
// keep(i) is true. keep must be safe to call from several goroutines.
func PackIndex(n int, keep func(i int) bool) []int {
	if n == 0 {
		return []int{}
	}
	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers

	locals := make([][]int, workers)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		if lo >= hi {
			workers = w
			break
		}
		wg.Add(1)
		// Each goroutine collects the kept indices of its own chunk
		go func(idx, lo, hi int) {
			defer wg.Done()
			var local []int
			for i := lo; i < hi; i++ {
				if keep(i) {
					local = append(local, i)
				}
			}
			locals[idx] = local
		}(w, lo, hi)
	}
	wg.Wait()

	// Merge all locals
	total := 0
	for i := 0; i < workers; i++ {
		total += len(locals[i])
	}
	result := make([]int, 0, total)
	for i := 0; i < workers; i++ {
		result = append(result, locals[i]...)
	}
	return result
}
