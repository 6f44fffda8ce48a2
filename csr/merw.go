// SPDX-License-Identifier: MIT
// Package: lvwalk/csr
//
// merw.go - maximum-entropy random walk (MERW) transition matrix.
//
// For a symmetric adjacency A with leading eigenpair (λ, ψ):
//
//	P_ij = A_ij · ψ_j / (λ · ψ_i)
//
// Each row of P already sums to 1, so the builder only needs to weigh edge
// i→j by A_ij·ψ_j and let the usual row normalisation do the rest. Rows
// whose reachable ψ mass is zero (components other than the one carrying the
// leading eigenvector) fall back to the raw weights.
//
// Original keeps A_ij, which is exactly what weighted-output walks report
// when callers want the true strengths behind a MERW path.
//
// The eigen solve is dense (gonum/mat.EigenSym), hence MaxEntropyLimit.

package csr

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// MaxEntropyLimit is the largest node count BuildMaxEntropy accepts.
const MaxEntropyLimit = 2048

// symmetryTol is the relative tolerance used when checking A == Aᵀ.
const symmetryTol = 1e-9

// psiFloor treats |ψ_i| below it as zero.
const psiFloor = 1e-12

// BuildMaxEntropy returns the cumulative MERW transition matrix of src.
// src must be symmetric (undirected) and have at most MaxEntropyLimit nodes.
// Complexity: O(n³) eigen solve, O(n²) space.
func BuildMaxEntropy(src Source) (*Matrix, error) {
	const method = "BuildMaxEntropy"
	if src == nil {
		return nil, fmt.Errorf("%s: %w", method, ErrNilSource)
	}
	n := src.Order()
	if n > MaxEntropyLimit {
		return nil, fmt.Errorf("%s: n=%d > %d: %w", method, n, MaxEntropyLimit, ErrTooLarge)
	}
	if n == 0 {
		return assemble(src, method, func(_, _ int, w float64) float64 { return w })
	}

	dense := mat.NewDense(n, n, nil)
	var u, v int
	for u = 0; u < n; u++ {
		src.Edges(u, func(v int, w float64) {
			if v >= 0 && v < n {
				dense.Set(u, v, dense.At(u, v)+w)
			}
		})
	}

	sym := mat.NewSymDense(n, nil)
	for u = 0; u < n; u++ {
		for v = u; v < n; v++ {
			a, b := dense.At(u, v), dense.At(v, u)
			if math.Abs(a-b) > symmetryTol*math.Max(1, math.Max(math.Abs(a), math.Abs(b))) {
				return nil, fmt.Errorf("%s: A[%d][%d]=%g, A[%d][%d]=%g: %w", method, u, v, a, v, u, b, ErrNotSymmetric)
			}
			sym.SetSym(u, v, a)
		}
	}

	var es mat.EigenSym
	if ok := es.Factorize(sym, true); !ok {
		return nil, fmt.Errorf("%s: %w", method, ErrEigenFailed)
	}
	var vecs mat.Dense
	es.VectorsTo(&vecs)

	// EigenSym orders eigenvalues ascending; the leading vector is the last column.
	psi := make([]float64, n)
	for u = 0; u < n; u++ {
		psi[u] = math.Abs(vecs.At(u, n-1))
		if psi[u] < psiFloor {
			psi[u] = 0
		}
	}

	fallback := make([]bool, n)
	for u = 0; u < n; u++ {
		var mass float64
		src.Edges(u, func(v int, w float64) {
			if v >= 0 && v < n {
				mass += w * psi[v]
			}
		})
		fallback[u] = mass == 0
	}

	return assemble(src, method, func(u, v int, w float64) float64 {
		if fallback[u] {
			return w
		}
		return w * psi[v]
	})
}
