// SPDX-License-Identifier: MIT
// Package: lvwalk/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Emits edges in stable order i -> (i+1)%n for i=0..n-1.
//
// Complexity:
//   • Time: O(n) nodes + O(n) edges.

package builder

import "fmt"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-node simple cycle C_n.
// Every node has degree 2 (undirected) or out-degree 1 (directed), which
// makes it the canonical graph without dead ends.
func Cycle(n int) Constructor {
	return func(g Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		if err := addNodes(methodCycle, g, cfg, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := setEdge(methodCycle, g, cfg, i, (i+1)%n); err != nil {
				return err
			}
		}
		return nil
	}
}
