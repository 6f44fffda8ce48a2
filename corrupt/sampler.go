// SPDX-License-Identifier: MIT
// Package: lvwalk/corrupt
//
// sampler.go - negative-sampling sources.
//
// Contract:
//   - Draw is called from many goroutines at once, each with its own
//     *rand.Rand; implementations are read-only after construction.
//   - Validate is called once before any Draw.

package corrupt

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvwalk/csr"
)

// Degree-table defaults (word2vec unigram table).
const (
	DefaultExponent  = 0.75
	DefaultTableSize = 1_000_000
)

// Sampler draws replacement node ids.
type Sampler interface {
	Draw(r *rand.Rand) uint32
	Validate(nNodes int) error
}

// Table is a precomputed discrete distribution: every cell is a node id
// and Draw picks a cell uniformly.
type Table []uint32

// Draw returns a uniformly chosen cell.
func (t Table) Draw(r *rand.Rand) uint32 { return t[r.IntN(len(t))] }

// Validate checks that t is non-empty and every id is < nNodes.
// Complexity: O(len(t)).
func (t Table) Validate(nNodes int) error {
	if len(t) == 0 {
		return fmt.Errorf("Table: %w", ErrEmptySampler)
	}
	for i, v := range t {
		if int(v) >= nNodes {
			return fmt.Errorf("Table: cell %d holds %d, n=%d: %w", i, v, nNodes, ErrNodeOutOfRange)
		}
	}
	return nil
}

// Cumulative is a cumulative node distribution: node i is drawn with
// probability c[i]-c[i-1].
type Cumulative []float32

// Draw inverts the cumulative distribution. The draw lies in (0,1], so
// zero-width entries are never selected.
func (c Cumulative) Draw(r *rand.Rand) uint32 {
	return uint32(csr.SearchSorted(c, 1-r.Float64()))
}

// Validate checks that c is non-empty, positive in total and covers no
// more than nNodes ids.
func (c Cumulative) Validate(nNodes int) error {
	if len(c) == 0 || !(c[len(c)-1] > 0) {
		return fmt.Errorf("Cumulative: %w", ErrEmptySampler)
	}
	if len(c) > nNodes {
		return fmt.Errorf("Cumulative: %d entries, n=%d: %w", len(c), nNodes, ErrNodeOutOfRange)
	}
	return nil
}

// Uniform draws node ids uniformly from [0,n).
type Uniform int

// Draw returns a uniform id in [0,u).
func (u Uniform) Draw(r *rand.Rand) uint32 { return uint32(r.IntN(int(u))) }

// Validate checks 0 < u ≤ nNodes.
func (u Uniform) Validate(nNodes int) error {
	if u <= 0 {
		return fmt.Errorf("Uniform(%d): %w", int(u), ErrEmptySampler)
	}
	if int(u) > nNodes {
		return fmt.Errorf("Uniform(%d): n=%d: %w", int(u), nNodes, ErrNodeOutOfRange)
	}
	return nil
}

// NewDegreeTable builds a unigram table of about size cells in which node i
// occupies floor(size·deg(i)^exponent / Σ) cells, at least one when
// deg(i) > 0. Nodes without out-edges never appear.
// Complexity: O(n + size).
func NewDegreeTable(adj *csr.Matrix, exponent float64, size int) (Table, error) {
	const method = "NewDegreeTable"
	if size <= 0 {
		return nil, fmt.Errorf("%s: size=%d: %w", method, size, ErrInvalidTableSize)
	}
	pw, total, err := degreePowers(method, adj, exponent)
	if err != nil {
		return nil, err
	}

	table := make(Table, 0, size)
	for i, p := range pw {
		if p == 0 {
			continue
		}
		cells := max(1, int(float64(size)*p/total))
		for c := 0; c < cells; c++ {
			table = append(table, uint32(i))
		}
	}
	return table, nil
}

// NewDegreeCumulative builds the cumulative form of the same
// deg(i)^exponent distribution.
// Complexity: O(n).
func NewDegreeCumulative(adj *csr.Matrix, exponent float64) (Cumulative, error) {
	pw, total, err := degreePowers("NewDegreeCumulative", adj, exponent)
	if err != nil {
		return nil, err
	}
	floats.CumSum(pw, pw)
	floats.Scale(1/total, pw)

	cdf := make(Cumulative, len(pw))
	for i, v := range pw {
		cdf[i] = float32(v)
	}
	cdf[len(cdf)-1] = 1
	return cdf, nil
}

// degreePowers returns deg(i)^exponent per node (0 for isolated nodes)
// and their sum.
func degreePowers(method string, adj *csr.Matrix, exponent float64) ([]float64, float64, error) {
	if err := adj.Validate(); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", method, err)
	}
	if !(exponent >= 0) || math.IsInf(exponent, 1) {
		return nil, 0, fmt.Errorf("%s: exponent=%g: %w", method, exponent, ErrInvalidExponent)
	}

	n := adj.Order()
	pw := make([]float64, n)
	for u := 0; u < n; u++ {
		if d := adj.Degree(uint32(u)); d > 0 {
			pw[u] = math.Pow(float64(d), exponent)
		}
	}
	total := floats.Sum(pw)
	if !(total > 0) {
		return nil, 0, fmt.Errorf("%s: no node has out-edges: %w", method, ErrEmptySampler)
	}
	return pw, total, nil
}
