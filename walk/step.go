// SPDX-License-Identifier: MIT
// Package: lvwalk/walk
//
// step.go - the per-walk traversal loop and the node2vec step.
//
// Draw discipline (keeps generators comparable under one seed):
//   - one Float64 per restart check, only when Alpha > 0;
//   - one Float64 per edge step, first-order or node2vec alike;
//   - holds consume nothing.

package walk

import (
	"math/rand/v2"
	"slices"

	"github.com/katalvlaran/lvwalk/csr"
)

// traversal is the read-only part shared by every block.
type traversal struct {
	m      *csr.Matrix
	opts   Options
	biased bool
}

// stepper owns one block's RNG and node2vec scratch buffer.
type stepper struct {
	traversal
	rng     *rand.Rand
	scratch []float64
}

// walk fills row (and wrow when non-nil) with one walk from origin.
func (s *stepper) walk(row []uint32, wrow []float32, origin uint32) {
	var (
		cur     = origin
		prev    uint32
		hasPrev bool
		next    uint32
		edge    int
	)
	row[0] = cur
	for k := 1; k < len(row); k++ {
		if s.m.Degree(cur) == 0 {
			for ; k < len(row); k++ {
				row[k] = cur
			}
			return
		}

		if s.opts.Alpha > 0 && s.rng.Float64() < s.opts.Alpha {
			cur, hasPrev = origin, false
			row[k] = cur
			continue
		}

		if s.biased && hasPrev {
			next, edge = s.biasedStep(cur, prev, s.rng.Float64())
		} else {
			next, edge, _ = s.m.Sample(cur, s.rng.Float64())
		}
		prev, hasPrev = cur, true
		cur = next
		row[k] = cur
		if wrow != nil {
			wrow[k] = s.m.Original[edge]
		}
	}
}

// biasedStep re-weights v's out-edges against the previous node t:
// w/P for the way back, w for neighbours of t, w/Q otherwise. The local
// distribution is accumulated in float64 and sampled with the same
// inverse-CDF rule as the first-order step. v must have out-edges.
func (s *stepper) biasedStep(v, t uint32, draw float64) (uint32, int) {
	lo, hi := s.m.Indptr[v], s.m.Indptr[v+1]
	d := int(hi - lo)
	s.scratch = slices.Grow(s.scratch[:0], d)[:d]

	tn := s.m.Neighbors(t)
	var total float64
	for e := lo; e < hi; e++ {
		x := s.m.Indices[e]
		w := s.m.Weight(int(e), lo)
		switch {
		case x == t:
			w /= s.opts.P
		case slices.Contains(tn, x):
		default:
			w /= s.opts.Q
		}
		total += w
		s.scratch[e-lo] = total
	}

	// Every base weight was zero: fall back to the stored row.
	if !(total > 0) {
		next, edge, _ := s.m.Sample(v, draw)
		return next, edge
	}
	for j := range s.scratch {
		s.scratch[j] /= total
	}
	edge := int(lo) + csr.SearchSorted64(s.scratch, draw)
	return s.m.Indices[edge], edge
}
