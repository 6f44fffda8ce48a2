// SPDX-License-Identifier: MIT
// Package: lvwalk/csr
//
// build.go - Source → Matrix builders.
//
// BuildTransition (the preprocessing step of the walk pipeline):
//   1. Optional sub-sampling: column j is scaled by 1/(wdeg(j)+1)^s, where
//      wdeg is the weighted degree (in+out when directed, self-loops
//      twice when undirected). s=0 skips the step.
//   2. L1 row normalisation.
//   3. Per-row cumulative sum; the last value of each non-empty row is
//      pinned to exactly 1.
// Original keeps the raw (unscaled) edge weights.
//
// Rows whose total weight is zero carry no edges in the result: they
// become dead ends, which the walkers handle by holding in place.

package csr

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
)

// weighFn maps a raw edge weight u→v to its unnormalised sampling weight.
type weighFn func(u, v int, w float64) float64

// BuildTransition returns the row-stochastic cumulative transition matrix of
// src with sub-sampling exponent s (0 disables sub-sampling).
// Complexity: O(n + m) time, O(m) space.
func BuildTransition(src Source, subSampling float64) (*Matrix, error) {
	const method = "BuildTransition"
	if src == nil {
		return nil, fmt.Errorf("%s: %w", method, ErrNilSource)
	}
	if math.IsNaN(subSampling) || math.IsInf(subSampling, 0) {
		return nil, fmt.Errorf("%s: s=%g: %w", method, subSampling, ErrInvalidExponent)
	}

	var scale []float64
	if subSampling != 0 {
		scale = columnScale(src, subSampling)
	}
	return assemble(src, method, func(_, v int, w float64) float64 {
		if scale == nil {
			return w
		}
		return w * scale[v]
	})
}

// BuildAdjacency returns the unweighted structure of src: every edge gets
// equal probability within its row. Original keeps the raw weights.
// The corruption engine uses it as the uncorrupted reference graph.
// Complexity: O(n + m).
func BuildAdjacency(src Source) (*Matrix, error) {
	const method = "BuildAdjacency"
	if src == nil {
		return nil, fmt.Errorf("%s: %w", method, ErrNilSource)
	}
	return assemble(src, method, func(_, _ int, _ float64) float64 { return 1 })
}

// columnScale computes 1/(wdeg(j)+1)^s for every node j. wdeg is the
// weighted degree: in- plus out-weight for directed sources, and for
// undirected ones the row sum with self-loops counted twice.
func columnScale(src Source, s float64) []float64 {
	n := src.Order()
	directed := isDirected(src)
	deg := make([]float64, n)
	for u := 0; u < n; u++ {
		src.Edges(u, func(v int, w float64) {
			deg[u] += w
			if directed || v == u {
				deg[v] += w
			}
		})
	}
	for u := range deg {
		deg[u] = 1 / math.Pow(deg[u]+1, s)
	}
	return deg
}

// isDirected reports whether src declares itself directed.
func isDirected(src Source) bool {
	d, ok := src.(interface{ Directed() bool })
	return ok && d.Directed()
}

// assemble walks src row by row, validates every edge, normalises the
// weighed row and writes the cumulative CSR arrays.
func assemble(src Source, method string, weigh weighFn) (*Matrix, error) {
	n := src.Order()
	if uint64(n) >= math.MaxUint32 {
		return nil, fmt.Errorf("%s: n=%d: %w", method, n, ErrTooLarge)
	}

	var (
		indptr   = make([]uint32, n+1)
		indices  []uint32
		data     []float32
		original []float32

		rowIdx []uint32
		rowRaw []float64
		rowW   []float64
		cum    []float64
		bad    error
		u, i   int
		total  float64
	)
	for u = 0; u < n; u++ {
		rowIdx, rowRaw, rowW = rowIdx[:0], rowRaw[:0], rowW[:0]
		src.Edges(u, func(v int, w float64) {
			if bad != nil {
				return
			}
			if v < 0 || v >= n {
				bad = fmt.Errorf("%s: edge %d→%d, n=%d: %w", method, u, v, n, ErrNodeOutOfRange)
				return
			}
			if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
				bad = fmt.Errorf("%s: edge %d→%d, w=%g: %w", method, u, v, w, ErrInvalidWeight)
				return
			}
			rowIdx = append(rowIdx, uint32(v))
			rowRaw = append(rowRaw, w)
			rowW = append(rowW, weigh(u, v, w))
		})
		if bad != nil {
			return nil, bad
		}

		total = floats.Sum(rowW)
		if total > 0 {
			cum = slices.Grow(cum[:0], len(rowW))[:len(rowW)]
			floats.CumSum(cum, rowW)
			for i = range rowIdx {
				indices = append(indices, rowIdx[i])
				data = append(data, float32(cum[i]/total))
				original = append(original, float32(rowRaw[i]))
			}
			data[len(data)-1] = 1
		}
		if uint64(len(indices)) >= math.MaxUint32 {
			return nil, fmt.Errorf("%s: m=%d: %w", method, len(indices), ErrTooLarge)
		}
		indptr[u+1] = uint32(len(indices))
	}

	if indices == nil {
		indices, data, original = []uint32{}, []float32{}, []float32{}
	}
	return &Matrix{Indptr: indptr, Indices: indices, Data: data, Original: original}, nil
}
