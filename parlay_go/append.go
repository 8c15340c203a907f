package parlay_go

import (
	"runtime"
	"sync"
)

// Grain is the smallest slice length worth splitting across goroutines
const Grain = 1 << 14

// Integer is the element constraint of Append
type Integer interface {
	~int | ~int32 | ~int64 | ~uint32 | ~uint64
}

// Append copies src into dst (len(dst) >= len(src)), converting each element,
// and splits the work across GOMAXPROCS workers when src is longer than Grain
func Append[S, D Integer](src []S, dst []D) {
	n := len(src)
	if n <= Grain {
		convert(src, dst)
		return
	}
	workers := runtime.GOMAXPROCS(0)
	if workers > n/Grain {
		workers = n / Grain
	}
	// Compute chunk size (Number of elements processed by each goroutine)
	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		start := i * chunk
		end := start + chunk
		if end > n {
			end = n
		}
		if start >= end {
			break
		}
		wg.Add(1)
		go func(s []S, d []D) {
			defer wg.Done()
			convert(s, d)
		}(src[start:end], dst[start:end])
	}
	wg.Wait()
}

func convert[S, D Integer](src []S, dst []D) {
	for i, x := range src {
		dst[i] = D(x)
	}
}
