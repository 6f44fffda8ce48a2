// SPDX-License-Identifier: MIT
// Package: lvwalk/builder
//
// helpers.go - internal helpers shared by Constructor implementations.

package builder

import (
	"fmt"

	"gonum.org/v1/gonum/graph/simple"
)

// addNodes inserts nodes cfg.idFn(0..n-1) into g. Re-adding an existing
// node is a no-op, so constructors compose over shared ids.
// Complexity: O(n).
func addNodes(method string, g Graph, cfg builderConfig, n int) error {
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		if g.Node(id) != nil {
			continue
		}
		if id < 0 {
			return fmt.Errorf("%s: node id %d is negative: %w", method, id, ErrConstructFailed)
		}
		g.AddNode(simple.Node(id))
	}
	return nil
}

// setEdge adds the weighted edge i→j (indices resolved through cfg.idFn).
// Self-loops are rejected because gonum simple graphs panic on them.
func setEdge(method string, g Graph, cfg builderConfig, i, j int) error {
	u, v := cfg.idFn(i), cfg.idFn(j)
	if u == v {
		return fmt.Errorf("%s: self-loop on %d: %w", method, u, ErrConstructFailed)
	}
	g.SetWeightedEdge(g.NewWeightedEdge(simple.Node(u), simple.Node(v), cfg.weight()))
	return nil
}

// bernoulli reports whether a trial with probability p succeeds. p ∈ {0,1}
// is decided without touching rng so those cases stay RNG-free.
func bernoulli(cfg builderConfig, p float64) bool {
	switch p {
	case 0:
		return false
	case 1:
		return true
	}
	return cfg.rng.Float64() < p
}

// validateProbability enforces p ∈ [0,1].
func validateProbability(method string, p float64) error {
	if !(p >= 0 && p <= 1) {
		return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", method, p, ErrInvalidProbability)
	}
	return nil
}

// needsRand reports whether any probability lies strictly inside (0,1).
func needsRand(ps ...float64) bool {
	for _, p := range ps {
		if p > 0 && p < 1 {
			return true
		}
	}
	return false
}
