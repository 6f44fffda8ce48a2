// SPDX-License-Identifier: MIT
// Package: lvwalk/walk
//
// walk.go - public generators and the shared validation / fan-out path.
//
// Contract:
//   - Inputs are validated before any output is allocated; on error no
//     partial matrix is returned.
//   - The matrix is read-only during generation and may be shared by
//     concurrent calls.

package walk

import (
	"fmt"

	"github.com/katalvlaran/lvwalk/csr"
	"github.com/katalvlaran/lvwalk/internal/parallel"
)

// blockSize is the number of walks per RNG stream. It is fixed so that
// block boundaries never depend on the worker count.
const blockSize = 256

// RandomWalks generates len(start)*opts.NWalks walks of opts.WalkLen nodes
// over m. A nil start walks from every node 0..n-1.
//
// Per step: a node without out-edges is held until the end of the walk;
// with Alpha>0 the walk jumps back to its start with probability Alpha;
// otherwise it follows an edge, first-order on the first hop and whenever
// P=Q=1, node2vec-biased afterwards.
//
// Complexity: O(rows·WalkLen·log d) first-order, O(rows·WalkLen·d²) worst
// case for node2vec, where d is the maximum out-degree.
func RandomWalks(m *csr.Matrix, start []uint32, opts Options) (*Matrix, error) {
	w, _, err := generate("RandomWalks", m, start, opts, false)
	return w, err
}

// RandomWalksWithWeights behaves like RandomWalks and additionally returns
// the raw weight (m.Original) of every traversed edge. m.Original is
// required.
func RandomWalksWithWeights(m *csr.Matrix, start []uint32, opts Options) (*Matrix, *WeightMatrix, error) {
	if m != nil && m.Original == nil {
		return nil, nil, fmt.Errorf("RandomWalksWithWeights: %w", ErrNoOriginalWeights)
	}
	return generate("RandomWalksWithWeights", m, start, opts, true)
}

// generate validates, allocates and fans the walks out over blocks.
func generate(method string, m *csr.Matrix, start []uint32, opts Options, weighted bool) (*Matrix, *WeightMatrix, error) {
	if err := m.Validate(); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", method, err)
	}
	if err := opts.Validate(); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", method, err)
	}

	n := m.Order()
	if start == nil {
		start = allNodes(n)
	}
	if len(start) == 0 {
		return nil, nil, fmt.Errorf("%s: %w", method, ErrNoStartNodes)
	}
	for i, s := range start {
		if int(s) >= n {
			return nil, nil, fmt.Errorf("%s: start[%d]=%d, n=%d: %w", method, i, s, n, ErrStartOutOfRange)
		}
	}

	rows := len(start) * opts.NWalks
	out := NewMatrix(rows, opts.WalkLen)
	var weights *WeightMatrix
	if weighted {
		weights = NewWeightMatrix(rows, opts.WalkLen)
	}

	tr := traversal{m: m, opts: opts, biased: opts.biased()}
	err := parallel.Blocks(rows, blockSize, opts.Workers, opts.Seed, func(b parallel.Block) error {
		st := stepper{traversal: tr, rng: b.Rand}
		for i := b.Lo; i < b.Hi; i++ {
			var wrow []float32
			if weights != nil {
				wrow = weights.Row(i)
			}
			st.walk(out.Row(i), wrow, start[i%len(start)])
		}
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", method, err)
	}
	return out, weights, nil
}

// allNodes returns 0..n-1.
func allNodes(n int) []uint32 {
	ids := make([]uint32, n)
	for i := range ids {
		ids[i] = uint32(i)
	}
	return ids
}
