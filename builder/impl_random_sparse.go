// SPDX-License-Identifier: MIT
// Package: lvwalk/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Model: Erdős–Rényi G(n,p); every admissible pair is included independently
// with probability p.
//   - Undirected: unordered pairs {i,j} with i<j.
//   - Directed: ordered pairs (i,j), i≠j.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0<p<1 (else ErrNeedRandSource).
//
// Determinism:
//   - Stable trial order: for each i asc, j asc. Fixed seed ⇒ fixed graph.
//
// Complexity:
//   - Time: O(n²) Bernoulli trials.

package builder

import (
	"fmt"

	"gonum.org/v1/gonum/graph"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
)

// RandomSparse returns a Constructor that samples G(n,p).
func RandomSparse(n int, p float64) Constructor {
	return func(g Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if err := validateProbability(methodRandomSparse, p); err != nil {
			return err
		}
		if cfg.rng == nil && needsRand(p) {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}
		if err := addNodes(methodRandomSparse, g, cfg, n); err != nil {
			return err
		}

		_, directed := g.(graph.Directed)
		var i, j int
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				if i == j || (!directed && j < i) {
					continue
				}
				if !bernoulli(cfg, p) {
					continue
				}
				if err := setEdge(methodRandomSparse, g, cfg, i, j); err != nil {
					return err
				}
			}
		}
		return nil
	}
}
