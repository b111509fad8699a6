// Package parallel provides parallel execution utilities for nnlib.
package parallel

import (
	"runtime"
	"sync"

	"github.com/klauspost/cpuid/v2"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Number of worker goroutines to use.
	MinChunkSize int  // Minimum items per goroutine to avoid overhead.
}

// DefaultConfig returns sensible defaults based on CPU count.
//
// Physical cores are preferred over logical ones: the inner loops are
// floating point bound and hyper-threads share the same FPU. The value is
// capped by runtime.NumCPU so containers with a CPU quota are respected.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	if pc := cpuid.CPU.PhysicalCores; pc > 0 && pc < n {
		n = pc
	}
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 64, // Typical cache line aware chunk.
	}
}

// Sequential returns a config that disables parallelism.
func Sequential() Config {
	return Config{Enabled: false, NumWorkers: 1}
}

// WithWorkers returns a copy of cfg using n workers.
// n <= 1 disables parallel execution.
func (c Config) WithWorkers(n int) Config {
	c.NumWorkers = n
	c.Enabled = n > 1
	return c
}

// For executes f(i) for i in [0, n) with optional parallelism.
// Falls back to sequential execution if parallelism is disabled or n is too small.
func For(n int, f func(i int), cfg Config) {
	if !cfg.Enabled || cfg.NumWorkers < 2 || n < cfg.MinChunkSize {
		// Sequential fallback.
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	var wg sync.WaitGroup
	chunkSize := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize, 1)

	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
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

// Map computes f(i) for i in [0, n) and returns the results in index order.
//
// Unlike For, Map ignores MinChunkSize: it is meant for coarse work items
// (one training example, one file) where even a handful of items is worth
// spreading over the workers. The result order never depends on scheduling.
func Map[T any](n int, f func(i int) T, cfg Config) []T {
	out := make([]T, n)
	if !cfg.Enabled || cfg.NumWorkers < 2 || n < 2 {
		for i := 0; i < n; i++ {
			out[i] = f(i)
		}
		return out
	}

	workers := min(cfg.NumWorkers, n)
	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				out[i] = f(i)
			}
		}(start, end)
	}
	wg.Wait()
	return out
}
