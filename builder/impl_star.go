// SPDX-License-Identifier: MIT
// Package: lvwalk/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Index 0 is the hub; leaves are 1..n-1.
//   - Emits hub -> leaf edges by increasing leaf index. In directed mode the
//     leaves are dead ends.

package builder

import "fmt"

const (
	methodStar   = "Star"
	minStarNodes = 2
	hubIndex     = 0
)

// Star returns a Constructor that builds a star with one hub and n-1 leaves.
func Star(n int) Constructor {
	return func(g Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := addNodes(methodStar, g, cfg, n); err != nil {
			return err
		}
		for leaf := 1; leaf < n; leaf++ {
			if err := setEdge(methodStar, g, cfg, hubIndex, leaf); err != nil {
				return err
			}
		}
		return nil
	}
}
