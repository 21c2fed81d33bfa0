// Package parallel provides chunked parallel iteration for the tensor
// contraction and permutation kernels.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled  bool // Whether parallel execution is enabled.
	Workers  int  // Number of worker goroutines to use.
	MinChunk int  // Minimum iterations per goroutine to amortize overhead.
}

// DefaultConfig returns sensible defaults based on CPU count.
// MinChunk is sized for cheap per-element work such as a single
// multiply-accumulate over a contracted axis.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:  n > 1,
		Workers:  n,
		MinChunk: 4096,
	}
}

// For executes f(i) for i in [0, n) with optional parallelism.
// Falls back to sequential execution if parallelism is disabled or n is
// too small. f must not touch state shared between iterations.
func For(n int, cfg Config, f func(i int)) {
	if !cfg.Enabled || n < cfg.MinChunk {
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	var wg sync.WaitGroup
	chunk := max((n+cfg.Workers-1)/cfg.Workers, cfg.MinChunk)

	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				f(i)
			}
		}(start, end)
	}
	wg.Wait()
}
