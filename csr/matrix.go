// SPDX-License-Identifier: MIT
// Package: lvwalk/csr
//
// matrix.go - the Matrix type, shape validation and read-only accessors.
//
// Contract:
//   - New/WithOriginal validate BEFORE returning; a returned *Matrix always
//     satisfies the shape invariants below.
//   - Accessors never allocate; Row/Neighbors return sub-slices of the
//     backing arrays and callers MUST NOT write through them.
//
// Shape invariants:
//   - len(Indptr) = n+1, Indptr[0] = 0, Indptr non-decreasing, Indptr[n] = m.
//   - len(Indices) = len(Data) = m, every Indices[e] < n.
//   - Original is nil or has length m.

package csr

import (
	"fmt"
	"math"
)

// Matrix is a row-stochastic sparse transition matrix in CSR layout.
// Data holds the per-row cumulative distribution, not raw probabilities.
type Matrix struct {
	Indptr   []uint32  // n+1 row offsets
	Indices  []uint32  // m destination ids
	Data     []float32 // m cumulative probabilities
	Original []float32 // optional m raw edge weights (nil when absent)
}

// New wraps the three CSR arrays into a validated Matrix.
// The slices are adopted, not copied.
// Complexity: O(n + m).
func New(indptr, indices []uint32, data []float32) (*Matrix, error) {
	m := &Matrix{Indptr: indptr, Indices: indices, Data: data}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	return m, nil
}

// WithOriginal attaches raw edge weights aligned 1:1 with Indices and
// returns the receiver for chaining.
// Complexity: O(1).
func (m *Matrix) WithOriginal(original []float32) (*Matrix, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if len(original) != len(m.Indices) {
		return nil, fmt.Errorf("WithOriginal: len(original)=%d, m=%d: %w",
			len(original), len(m.Indices), ErrBadShape)
	}
	m.Original = original
	return m, nil
}

// Validate checks the shape invariants listed in the file header.
// It does not inspect Data values; see CheckStochastic for that.
// Complexity: O(n + m).
func (m *Matrix) Validate() error {
	if m == nil {
		return ErrNilMatrix
	}
	if len(m.Indptr) == 0 {
		return fmt.Errorf("indptr is empty: %w", ErrBadShape)
	}
	if m.Indptr[0] != 0 {
		return fmt.Errorf("indptr[0]=%d: %w", m.Indptr[0], ErrBadShape)
	}

	var (
		n     = len(m.Indptr) - 1
		edges = len(m.Indices)
		u     int
	)
	if len(m.Data) != edges {
		return fmt.Errorf("len(data)=%d, len(indices)=%d: %w", len(m.Data), edges, ErrBadShape)
	}
	if m.Original != nil && len(m.Original) != edges {
		return fmt.Errorf("len(original)=%d, len(indices)=%d: %w", len(m.Original), edges, ErrBadShape)
	}
	if int(m.Indptr[n]) != edges {
		return fmt.Errorf("indptr[n]=%d, len(indices)=%d: %w", m.Indptr[n], edges, ErrBadShape)
	}
	for u = 0; u < n; u++ {
		if m.Indptr[u] > m.Indptr[u+1] {
			return fmt.Errorf("indptr decreases at row %d: %w", u, ErrBadShape)
		}
	}
	for e, v := range m.Indices {
		if int(v) >= n {
			return fmt.Errorf("indices[%d]=%d, n=%d: %w", e, v, n, ErrNodeOutOfRange)
		}
	}
	return nil
}

// Order returns the number of nodes n.
func (m *Matrix) Order() int { return len(m.Indptr) - 1 }

// Size returns the number of stored edges m.
func (m *Matrix) Size() int { return len(m.Indices) }

// Degree returns the out-degree of u.
func (m *Matrix) Degree(u uint32) int {
	return int(m.Indptr[u+1] - m.Indptr[u])
}

// Row returns u's destination ids and cumulative probabilities.
func (m *Matrix) Row(u uint32) ([]uint32, []float32) {
	lo, hi := m.Indptr[u], m.Indptr[u+1]
	return m.Indices[lo:hi], m.Data[lo:hi]
}

// Neighbors returns u's destination ids.
func (m *Matrix) Neighbors(u uint32) []uint32 {
	return m.Indices[m.Indptr[u]:m.Indptr[u+1]]
}

// HasEdge reports whether v appears in u's row.
// Complexity: O(deg(u)) linear scan; rows are not required to be sorted.
func (m *Matrix) HasEdge(u, v uint32) bool {
	for _, x := range m.Neighbors(u) {
		if x == v {
			return true
		}
	}
	return false
}

// Weight returns the (non-cumulative) transition probability of edge e,
// recovered as the difference between e's cumulative value and its
// predecessor in the same row.
// Complexity: O(1).
func (m *Matrix) Weight(e int, rowStart uint32) float64 {
	if uint32(e) == rowStart {
		return float64(m.Data[e])
	}
	return float64(m.Data[e]) - float64(m.Data[e-1])
}

// CheckStochastic verifies that every non-empty row is non-decreasing and
// ends within tol of 1.0. It is meant for build/validation time, never for
// the sampling hot path.
// Complexity: O(n + m).
func (m *Matrix) CheckStochastic(tol float64) error {
	if m == nil {
		return ErrNilMatrix
	}
	var (
		n    = m.Order()
		u    int
		e    uint32
		last float32
	)
	for u = 0; u < n; u++ {
		lo, hi := m.Indptr[u], m.Indptr[u+1]
		if lo == hi {
			continue
		}
		last = m.Data[lo]
		if last < 0 || math.IsNaN(float64(last)) {
			return fmt.Errorf("row %d starts at %g: %w", u, last, ErrNotStochastic)
		}
		for e = lo + 1; e < hi; e++ {
			if m.Data[e] < last {
				return fmt.Errorf("row %d decreases at edge %d: %w", u, e, ErrNotStochastic)
			}
			last = m.Data[e]
		}
		if math.Abs(float64(last)-1) > tol {
			return fmt.Errorf("row %d ends at %g (tol %g): %w", u, last, tol, ErrNotStochastic)
		}
	}
	return nil
}
