// Package parallel splits independent row or column work into contiguous
// blocks and runs them on an errgroup.
package parallel

import (
	"golang.org/x/sync/errgroup"
)

// For runs fn over [0, n) in contiguous [start, end) blocks.
//
// At most workers blocks run concurrently and no block is smaller than
// minChunk items unless n itself is. With workers <= 1 fn is called once with
// the full range on the calling goroutine. The first error returned by any
// block is returned after all blocks finish.
func For(n, workers, minChunk int, fn func(start, end int) error) error {
	if n <= 0 {
		return nil
	}
	if minChunk < 1 {
		minChunk = 1
	}

	blocks := min(workers, (n+minChunk-1)/minChunk)
	if blocks <= 1 {
		return fn(0, n)
	}

	chunk := (n + blocks - 1) / blocks

	var g errgroup.Group
	g.SetLimit(workers)
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		g.Go(func() error {
			return fn(start, end)
		})
	}
	return g.Wait()
}
