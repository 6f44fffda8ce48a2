// SPDX-License-Identifier: MIT
// Package: lvwalk/csr
//
// source.go - the narrow graph interface the builders consume, plus two
// implementations: an in-memory EdgeList and an adapter over gonum graphs.
//
// The sampling core never sees a concrete graph library: builders only ask
// for the node count and, per node, its outgoing (neighbor, weight) pairs.

package csr

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/graph"
)

// Source is the minimal read-only view of a weighted graph with dense node
// ids 0..Order()-1.
type Source interface {
	// Order returns the number of nodes.
	Order() int
	// Edges calls fn once per outgoing edge of u, in a stable order.
	Edges(u int, fn func(v int, w float64))
}

// halfEdge is one stored direction of an edge.
type halfEdge struct {
	to int
	w  float64
}

// EdgeList is an in-memory Source. Undirected lists store both directions
// of every non-loop edge. Parallel edges are kept as separate entries.
type EdgeList struct {
	directed bool
	adj      [][]halfEdge
}

// NewEdgeList returns an EdgeList with n isolated nodes. The order grows
// automatically when AddEdge references a larger id.
func NewEdgeList(n int, directed bool) *EdgeList {
	if n < 0 {
		n = 0
	}
	return &EdgeList{directed: directed, adj: make([][]halfEdge, n)}
}

// Directed reports whether edges are stored one-way only.
func (l *EdgeList) Directed() bool { return l.directed }

// Grow ensures the list has at least n nodes.
func (l *EdgeList) Grow(n int) {
	for len(l.adj) < n {
		l.adj = append(l.adj, nil)
	}
}

// AddEdge records u→v with weight w (and v→u for undirected lists).
// Complexity: amortised O(1).
func (l *EdgeList) AddEdge(u, v int, w float64) error {
	if u < 0 || v < 0 {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrNodeOutOfRange)
	}
	if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
		return fmt.Errorf("AddEdge(%d,%d): w=%g: %w", u, v, w, ErrInvalidWeight)
	}
	l.Grow(max(u, v) + 1)
	l.adj[u] = append(l.adj[u], halfEdge{to: v, w: w})
	if !l.directed && u != v {
		l.adj[v] = append(l.adj[v], halfEdge{to: u, w: w})
	}
	return nil
}

// Order implements Source.
func (l *EdgeList) Order() int { return len(l.adj) }

// Edges implements Source; edges are visited in insertion order.
func (l *EdgeList) Edges(u int, fn func(v int, w float64)) {
	for _, he := range l.adj[u] {
		fn(he.to, he.w)
	}
}

// gonumSource adapts a gonum graph to Source with dense, sorted ids.
type gonumSource struct {
	g        graph.Graph
	weighted graph.Weighted // nil when g carries no weights
	ids      []int64        // dense index -> gonum id
	adj      [][]int        // dense neighbor lists, ascending
}

// FromGonum adapts any gonum graph. Node ids are remapped densely in
// ascending gonum-id order; the returned slice maps dense index → gonum id.
// Weights come from graph.Weighted when implemented, otherwise every edge
// weighs 1.
// Complexity: O(n log n + m log d).
func FromGonum(g graph.Graph) (Source, []int64, error) {
	if g == nil {
		return nil, nil, fmt.Errorf("FromGonum: %w", ErrNilSource)
	}

	nodes := graph.NodesOf(g.Nodes())
	ids := make([]int64, len(nodes))
	for i, nd := range nodes {
		ids[i] = nd.ID()
	}
	slices.Sort(ids)

	index := make(map[int64]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	adj := make([][]int, len(ids))
	for u, id := range ids {
		to := graph.NodesOf(g.From(id))
		row := make([]int, 0, len(to))
		for _, nd := range to {
			row = append(row, index[nd.ID()])
		}
		slices.Sort(row)
		adj[u] = row
	}

	src := &gonumSource{g: g, ids: ids, adj: adj}
	if wg, ok := g.(graph.Weighted); ok {
		src.weighted = wg
	}
	return src, ids, nil
}

// Order implements Source.
func (s *gonumSource) Order() int { return len(s.ids) }

// Directed reports whether the wrapped graph is directed.
func (s *gonumSource) Directed() bool {
	_, ok := s.g.(graph.Directed)
	return ok
}

// Edges implements Source.
func (s *gonumSource) Edges(u int, fn func(v int, w float64)) {
	for _, v := range s.adj[u] {
		w := 1.0
		if s.weighted != nil {
			if ww, ok := s.weighted.Weight(s.ids[u], s.ids[v]); ok {
				w = ww
			}
		}
		fn(v, w)
	}
}
