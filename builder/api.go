// SPDX-License-Identifier: MIT
// Package: lvwalk/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(directed, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - All public factories are implemented in impl_*.go.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
)

// Graph is the gonum surface constructors write into and callers read from.
// simple.WeightedUndirectedGraph and simple.WeightedDirectedGraph satisfy it.
type Graph interface {
	graph.Weighted
	graph.WeightedBuilder
}

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST validate parameters early and return
// sentinel errors (no panics).
type Constructor func(g Graph, cfg builderConfig) error

// BuildGraph creates a new weighted gonum graph (directed or undirected),
// resolves the builder configuration from bopts and applies all constructors
// in order. Any constructor error is wrapped with "BuildGraph: %w".
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
func BuildGraph(directed bool, bopts []BuilderOption, cons ...Constructor) (Graph, error) {
	var g Graph
	if directed {
		g = simple.NewWeightedDirectedGraph(0, math.Inf(1))
	} else {
		g = simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	}

	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}
	return g, nil
}
