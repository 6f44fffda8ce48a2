// SPDX-License-Identifier: MIT
// Package: lvwalk/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Undirected: one edge per unordered pair {i,j}, i<j.
//   - Directed: both ordered pairs (i,j) and (j,i).
//   - No self-loops.
//
// Complexity:
//   - Time: O(n²) edges.

package builder

import (
	"fmt"

	"gonum.org/v1/gonum/graph"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(g Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		if err := addNodes(methodComplete, g, cfg, n); err != nil {
			return err
		}

		_, directed := g.(graph.Directed)
		var i, j int
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if err := setEdge(methodComplete, g, cfg, i, j); err != nil {
					return err
				}
				if directed {
					if err := setEdge(methodComplete, g, cfg, j, i); err != nil {
						return err
					}
				}
			}
		}
		return nil
	}
}
