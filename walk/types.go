// SPDX-License-Identifier: MIT
// Package: lvwalk/walk
//
// types.go - Options and the dense walk / weight matrices.

package walk

import (
	"fmt"
	"math"
	"slices"
)

// Default option values.
const (
	DefaultNWalks  = 10
	DefaultWalkLen = 10
)

// Options controls walk generation.
type Options struct {
	NWalks  int     // walks per start node
	WalkLen int     // nodes per walk, including the start
	P       float64 // node2vec return parameter
	Q       float64 // node2vec in-out parameter
	Alpha   float64 // restart probability per step
	Seed    uint64  // 0 selects a fixed default seed
	Workers int     // ≤0 selects runtime.GOMAXPROCS(0)
}

// DefaultOptions returns 10 walks of length 10 per node, unbiased, no restarts.
func DefaultOptions() Options {
	return Options{
		NWalks:  DefaultNWalks,
		WalkLen: DefaultWalkLen,
		P:       1,
		Q:       1,
	}
}

// Validate checks option ranges.
func (o Options) Validate() error {
	if o.WalkLen < 1 {
		return fmt.Errorf("walk_len=%d: %w", o.WalkLen, ErrInvalidWalkLen)
	}
	if o.NWalks < 1 {
		return fmt.Errorf("n_walks=%d: %w", o.NWalks, ErrInvalidNWalks)
	}
	if !validBias(o.P) || !validBias(o.Q) {
		return fmt.Errorf("p=%g q=%g: %w", o.P, o.Q, ErrInvalidBias)
	}
	if !(o.Alpha >= 0 && o.Alpha < 1) {
		return fmt.Errorf("alpha=%g: %w", o.Alpha, ErrInvalidAlpha)
	}
	return nil
}

// biased reports whether the node2vec branch is active.
func (o Options) biased() bool { return o.P != 1 || o.Q != 1 }

func validBias(x float64) bool { return x > 0 && !math.IsInf(x, 1) }

// Matrix is a dense row-major walk matrix; row i is one walk.
type Matrix struct {
	Rows int
	Cols int
	Data []uint32
}

// NewMatrix allocates a zeroed rows×cols walk matrix.
func NewMatrix(rows, cols int) *Matrix {
	return &Matrix{Rows: rows, Cols: cols, Data: make([]uint32, rows*cols)}
}

// Row returns walk i as a sub-slice of Data.
func (w *Matrix) Row(i int) []uint32 { return w.Data[i*w.Cols : (i+1)*w.Cols] }

// At returns step k of walk i.
func (w *Matrix) At(i, k int) uint32 { return w.Data[i*w.Cols+k] }

// Set overwrites step k of walk i.
func (w *Matrix) Set(i, k int, v uint32) { w.Data[i*w.Cols+k] = v }

// Clone returns a deep copy.
func (w *Matrix) Clone() *Matrix {
	return &Matrix{Rows: w.Rows, Cols: w.Cols, Data: slices.Clone(w.Data)}
}

// WeightMatrix is aligned with a walk Matrix: cell (i,k) holds the raw
// weight of the edge walk[i][k-1] → walk[i][k], and 0 for column 0,
// holds and restarts.
type WeightMatrix struct {
	Rows int
	Cols int
	Data []float32
}

// NewWeightMatrix allocates a zeroed rows×cols weight matrix.
func NewWeightMatrix(rows, cols int) *WeightMatrix {
	return &WeightMatrix{Rows: rows, Cols: cols, Data: make([]float32, rows*cols)}
}

// Row returns the weights of walk i.
func (w *WeightMatrix) Row(i int) []float32 { return w.Data[i*w.Cols : (i+1)*w.Cols] }

// At returns the weight at step k of walk i.
func (w *WeightMatrix) At(i, k int) float32 { return w.Data[i*w.Cols+k] }
