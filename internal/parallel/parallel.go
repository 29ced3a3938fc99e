// Package parallel runs independent jobs on a bounded pool of goroutines.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled    bool // Whether parallel execution is enabled.
	NumWorkers int  // Upper bound on concurrent jobs; <= 0 means runtime.NumCPU().
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:    n > 1,
		NumWorkers: n,
	}
}

// workers returns the pool size for n jobs.
func (c Config) workers(n int) int {
	w := c.NumWorkers
	if w <= 0 {
		w = runtime.NumCPU()
	}
	return min(w, n)
}

// For executes f(i) for i in [0, n).
//
// Jobs are handed out one index at a time, so uneven job costs balance across
// workers. Falls back to sequential execution if parallelism is disabled or
// only one worker would run.
func For(n int, f func(i int), cfg Config) {
	if n <= 0 {
		return
	}
	w := cfg.workers(n)
	if !cfg.Enabled || w <= 1 {
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for range w {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				f(i)
			}
		}()
	}
	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
}

// Map executes f for every index and returns the results in index order.
func Map[T any](n int, f func(i int) T, cfg Config) []T {
	out := make([]T, max(n, 0))
	For(n, func(i int) {
		out[i] = f(i)
	}, cfg)
	return out
}
