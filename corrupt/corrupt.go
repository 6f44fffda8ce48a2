// SPDX-License-Identifier: MIT
// Package: lvwalk/corrupt
//
// corrupt.go - the corruption engine.
//
// Phases:
//  1. Draw: nCorruptions triples (row x, column y ∈ [1,Cols-1], node v')
//     are drawn in parallel, each block from its own RNG stream.
//  2. Group: a stable counting sort by row keeps draw order within a row.
//  3. Apply: rows are processed in parallel; inside a row the triples are
//     applied in draw order. Each row (and its label row) has exactly one
//     writer.
//
// Labels: after W[x][y] = v', label y-1 becomes [W[x][y-1] → v' ∈ adj] and,
// unless y is the last column, label y becomes [v' → W[x][y+1] ∈ adj].
// Directed adjacencies are labelled in walk direction.

package corrupt

import (
	"fmt"

	"github.com/katalvlaran/lvwalk/csr"
	"github.com/katalvlaran/lvwalk/internal/parallel"
	"github.com/katalvlaran/lvwalk/walk"
)

const (
	drawBlock = 4096 // triples per RNG stream
	rowBlock  = 256  // walk rows per apply task
)

// corruption is one planned replacement.
type corruption struct {
	row  uint32
	col  uint32
	node uint32
}

// Corrupt replaces floor(Rows*Cols*Rate) randomly chosen cells of w (never
// column 0) with nodes drawn from s, in place, and returns the similarity
// labels of the resulting walks. adj is the original graph adjacency; only
// its structure is read.
//
// Two draws may hit the same cell, and a draw may write the value already
// there, so the number of changed cells can be slightly below the planned
// count.
//
// Complexity: O(Rows·Cols + nCorruptions·d) where d is the maximum degree.
func Corrupt(w *walk.Matrix, adj *csr.Matrix, s Sampler, opts Options) (*Similarity, error) {
	const method = "Corrupt"
	if err := validate(w, adj, s, opts); err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	sim := newSimilarity(w.Rows, w.Cols-1)
	n := NumCorruptions(w.Rows, w.Cols, opts.Rate)
	if n == 0 {
		return sim, nil
	}

	plan := make([]corruption, n)
	err := parallel.Blocks(n, drawBlock, opts.Workers, opts.Seed, func(b parallel.Block) error {
		for i := b.Lo; i < b.Hi; i++ {
			plan[i] = corruption{
				row:  uint32(b.Rand.IntN(w.Rows)),
				col:  uint32(1 + b.Rand.IntN(w.Cols-1)),
				node: s.Draw(b.Rand),
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	sorted, offsets := groupByRow(plan, w.Rows)
	err = parallel.Blocks(w.Rows, rowBlock, opts.Workers, opts.Seed, func(b parallel.Block) error {
		for x := b.Lo; x < b.Hi; x++ {
			row, labels := w.Row(x), sim.Row(x)
			for _, c := range sorted[offsets[x]:offsets[x+1]] {
				apply(adj, row, labels, int(c.col), c.node)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	return sim, nil
}

// CorruptCopy runs Corrupt on a clone of w and returns the corrupted
// clone; w is left untouched.
func CorruptCopy(w *walk.Matrix, adj *csr.Matrix, s Sampler, opts Options) (*walk.Matrix, *Similarity, error) {
	if w == nil {
		return nil, nil, fmt.Errorf("CorruptCopy: %w", ErrNilWalks)
	}
	c := w.Clone()
	sim, err := Corrupt(c, adj, s, opts)
	if err != nil {
		return nil, nil, err
	}
	return c, sim, nil
}

// validate performs every check before anything is written.
func validate(w *walk.Matrix, adj *csr.Matrix, s Sampler, opts Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	if w == nil {
		return ErrNilWalks
	}
	if w.Rows < 0 || len(w.Data) != w.Rows*w.Cols {
		return fmt.Errorf("rows=%d cols=%d len=%d: %w", w.Rows, w.Cols, len(w.Data), ErrBadWalkShape)
	}
	if w.Cols < 2 {
		return fmt.Errorf("cols=%d: %w", w.Cols, ErrWalkTooShort)
	}
	if err := adj.Validate(); err != nil {
		return err
	}
	if s == nil {
		return fmt.Errorf("nil sampler: %w", ErrEmptySampler)
	}
	nNodes := adj.Order()
	if err := s.Validate(nNodes); err != nil {
		return err
	}
	for i, v := range w.Data {
		if int(v) >= nNodes {
			return fmt.Errorf("walk cell %d holds %d, n=%d: %w", i, v, nNodes, ErrNodeOutOfRange)
		}
	}
	return nil
}

// groupByRow stable-sorts plan by row. Row x owns
// sorted[offsets[x]:offsets[x+1]].
// Complexity: O(len(plan) + rows).
func groupByRow(plan []corruption, rows int) ([]corruption, []int) {
	offsets := make([]int, rows+1)
	for _, c := range plan {
		offsets[c.row+1]++
	}
	for x := 0; x < rows; x++ {
		offsets[x+1] += offsets[x]
	}

	next := make([]int, rows)
	copy(next, offsets[:rows])
	sorted := make([]corruption, len(plan))
	for _, c := range plan {
		sorted[next[c.row]] = c
		next[c.row]++
	}
	return sorted, offsets
}

// apply writes v into row[y] and refreshes the one or two labels that
// touch column y. The incoming label is the edge prev→v; the outgoing one
// is v→next, resolved by the scan of v's own row.
func apply(adj *csr.Matrix, row []uint32, labels []uint8, y int, v uint32) {
	row[y] = v
	labels[y-1] = label(adj.HasEdge(row[y-1], v))
	if y == len(row)-1 {
		return
	}
	labels[y] = label(adj.HasEdge(v, row[y+1]))
}

func label(ok bool) uint8 {
	if ok {
		return 1
	}
	return 0
}
