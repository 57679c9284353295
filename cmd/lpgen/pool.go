// SPDX-License-Identifier: MIT
// Package: lpgen/cmd/lpgen

package main

import (
	"context"
	"sync"
)

type result struct {
	data map[string]any
	err  error
}

// runPool calls job for every seed on up to workers goroutines and returns
// the results in seed order. Each job owns its RNG and instance; nothing is
// shared between jobs. After ctx is cancelled remaining seeds are skipped
// with ctx.Err().
func runPool(ctx context.Context, seeds []int64, workers int, job func(seed int64) (map[string]any, error)) []result {
	if workers < 1 {
		workers = 1
	}
	results := make([]result, len(seeds))
	idx := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < min(workers, len(seeds)); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range idx {
				if err := ctx.Err(); err != nil {
					results[i] = result{err: err}
					continue
				}
				data, err := job(seeds[i])
				results[i] = result{data: data, err: err}
			}
		}()
	}
	for i := range seeds {
		idx <- i
	}
	close(idx)
	wg.Wait()

	return results
}
