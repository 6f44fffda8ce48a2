// SPDX-License-Identifier: MIT
// Package: lvwalk/csr
//
// sample.go - inverse-CDF sampling primitive shared by every generator.
//
// Rule: given a cumulative slice cdf[0..d) and a draw u ∈ [0,1), the
// selected local index is the smallest j with cdf[j] ≥ u (searchsorted,
// side="left"). A draw above the last value (float drift on a row that
// ends slightly below 1) clamps to d-1 so sampling never leaves the row.

package csr

// SearchSorted returns the smallest j such that cdf[j] ≥ u, clamped to
// len(cdf)-1. cdf must be non-empty and non-decreasing.
// Complexity: O(log d).
func SearchSorted(cdf []float32, u float64) int {
	lo, hi := 0, len(cdf)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if float64(cdf[mid]) < u {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo == len(cdf) {
		return lo - 1
	}
	return lo
}

// SearchSorted64 is SearchSorted over a float64 cumulative slice; the
// node2vec step builds its local distribution at double width.
// Complexity: O(log d).
func SearchSorted64(cdf []float64, u float64) int {
	lo, hi := 0, len(cdf)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if cdf[mid] < u {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo == len(cdf) {
		return lo - 1
	}
	return lo
}

// Sample picks the next hop out of u for the draw. It returns the chosen
// node and the global edge index (into Indices/Data/Original).
// ok is false when u has no out-edges; the caller holds in place.
// Complexity: O(log deg(u)).
func (m *Matrix) Sample(u uint32, draw float64) (next uint32, edge int, ok bool) {
	lo, hi := m.Indptr[u], m.Indptr[u+1]
	if lo == hi {
		return u, -1, false
	}
	edge = int(lo) + SearchSorted(m.Data[lo:hi], draw)
	return m.Indices[edge], edge, true
}
