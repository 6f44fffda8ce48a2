// Package csr provides the read-only Compressed Sparse Row transition matrix
// that every walk generator samples from.
//
// A Matrix over n nodes and m directed edges is three parallel arrays:
//
//   - Indptr  - n+1 offsets; Indptr[u]..Indptr[u+1] bounds the out-edges of u.
//   - Indices - m destination node ids, grouped by source row.
//   - Data    - m float32 values holding, per row, the CUMULATIVE transition
//     distribution (non-decreasing, last value ≈ 1 for non-empty rows).
//
// An optional fourth array, Original, keeps the raw edge weight of every
// edge so that weighted-output walks can report what they traversed.
//
// The cumulative encoding lets SearchSorted pick the next hop in O(log d)
// instead of a linear scan. Rows with no out-edges are legal: they are dead
// ends and walkers hold in place on them.
//
// Builders:
//
//   - BuildTransition - sub-sampling weighted, row-normalised cumulative matrix.
//   - BuildAdjacency  - unweighted structure, used as the "true graph" during corruption.
//   - BuildMaxEntropy - maximum-entropy random-walk transition (gonum/mat eigen solve).
//
// All builders read from the narrow Source interface; FromGonum adapts any
// gonum graph to it.
//
// A Matrix is never mutated after construction and is safe for concurrent reads.
package csr
