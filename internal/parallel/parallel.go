// SPDX-License-Identifier: MIT
// Package parallel runs data-parallel loops over independent indices.
//
// The index range is cut into fixed-size blocks. Block boundaries and the
// RNG stream of each block depend only on (n, blockSize, seed), never on
// the number of workers, so results are reproducible at any parallelism.
// Blocks are fanned out with errgroup; a block only writes the output
// rows it owns, so no locking is needed.
package parallel

import (
	"math/rand/v2"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Block is one contiguous slice [Lo,Hi) of the index range together with
// its private RNG stream.
type Block struct {
	Index int
	Lo    int
	Hi    int
	Rand  *rand.Rand
}

// Workers resolves a worker count; w ≤ 0 means runtime.GOMAXPROCS(0).
func Workers(w int) int {
	if w <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return w
}

// Blocks calls fn once per block of [0,n) on at most Workers(workers)
// goroutines and returns the first error. Every block is still visited
// when an earlier one fails; callers treat any error as fatal.
// Complexity: O(n/blockSize) scheduling overhead.
func Blocks(n, blockSize, workers int, seed uint64, fn func(b Block) error) error {
	if n <= 0 {
		return nil
	}
	if blockSize <= 0 {
		blockSize = 1
	}

	var g errgroup.Group
	g.SetLimit(Workers(workers))

	nBlocks := (n + blockSize - 1) / blockSize
	for i := 0; i < nBlocks; i++ {
		g.Go(func() error {
			lo := i * blockSize
			return fn(Block{
				Index: i,
				Lo:    lo,
				Hi:    min(lo+blockSize, n),
				Rand:  StreamRand(seed, uint64(i)),
			})
		})
	}
	return g.Wait()
}
