// SPDX-License-Identifier: MIT
// Package: lvwalk/builder
//
// impl_partition.go - implementation of RandomPartition(sizes, pIn, pOut).
//
// Model: planted partition. Nodes are split into consecutive blocks of the
// given sizes; a pair inside one block is linked with probability pIn, a
// pair across blocks with probability pOut. It is the community-structured
// fixture used to sanity-check node2vec's in-out parameter.
//
// Contract:
//   - len(sizes) ≥ 1 and every size ≥ 1 (else ErrTooFewVertices).
//   - pIn, pOut ∈ [0,1] (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when any probability lies in (0,1).
//
// Determinism:
//   - Stable trial order: i asc, j asc (undirected: j > i).
//
// Complexity:
//   - Time: O(n²) trials, n = Σ sizes.

package builder

import (
	"fmt"

	"gonum.org/v1/gonum/graph"
)

const methodRandomPartition = "RandomPartition"

// RandomPartition returns a Constructor that samples a planted-partition graph.
func RandomPartition(sizes []int, pIn, pOut float64) Constructor {
	return func(g Graph, cfg builderConfig) error {
		if len(sizes) == 0 {
			return fmt.Errorf("%s: no blocks: %w", methodRandomPartition, ErrTooFewVertices)
		}
		var n int
		block := make([]int, 0)
		for b, s := range sizes {
			if s < 1 {
				return fmt.Errorf("%s: sizes[%d]=%d < 1: %w", methodRandomPartition, b, s, ErrTooFewVertices)
			}
			for k := 0; k < s; k++ {
				block = append(block, b)
			}
			n += s
		}
		if err := validateProbability(methodRandomPartition, pIn); err != nil {
			return err
		}
		if err := validateProbability(methodRandomPartition, pOut); err != nil {
			return err
		}
		if cfg.rng == nil && needsRand(pIn, pOut) {
			return fmt.Errorf("%s: %w", methodRandomPartition, ErrNeedRandSource)
		}
		if err := addNodes(methodRandomPartition, g, cfg, n); err != nil {
			return err
		}

		_, directed := g.(graph.Directed)
		var (
			i, j int
			p    float64
		)
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				if i == j || (!directed && j < i) {
					continue
				}
				p = pOut
				if block[i] == block[j] {
					p = pIn
				}
				if !bernoulli(cfg, p) {
					continue
				}
				if err := setEdge(methodRandomPartition, g, cfg, i, j); err != nil {
					return err
				}
			}
		}
		return nil
	}
}

// Block returns the block index of node index i for the given sizes, or -1
// when i is out of range. Tests use it to classify walk steps.
func Block(sizes []int, i int) int {
	if i < 0 {
		return -1
	}
	for b, s := range sizes {
		if i < s {
			return b
		}
		i -= s
	}
	return -1
}
