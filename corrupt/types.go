// SPDX-License-Identifier: MIT
// Package: lvwalk/corrupt
//
// types.go - Options and the Similarity label matrix.

package corrupt

import (
	"fmt"
	"math"
)

// DefaultRate is the fraction of walk cells corrupted by default.
const DefaultRate = 0.1

// Options controls Corrupt.
type Options struct {
	Rate    float64 // fraction of Rows*Cols cells to corrupt
	Seed    uint64  // 0 selects a fixed default seed
	Workers int     // ≤0 selects runtime.GOMAXPROCS(0)
}

// DefaultOptions returns Rate=DefaultRate with default seed and workers.
func DefaultOptions() Options {
	return Options{Rate: DefaultRate}
}

// Validate checks option ranges.
func (o Options) Validate() error {
	if !(o.Rate >= 0 && o.Rate <= 1) {
		return fmt.Errorf("rate=%g: %w", o.Rate, ErrInvalidRate)
	}
	return nil
}

// NumCorruptions returns floor(rows*cols*rate), the number of
// replacements Corrupt draws for a rows×cols walk matrix.
func NumCorruptions(rows, cols int, rate float64) int {
	return int(math.Floor(float64(rows) * float64(cols) * rate))
}

// Similarity labels the transitions of a walk matrix: cell (x,k) refers
// to walk[x][k] → walk[x][k+1]. It has one column fewer than the walks.
type Similarity struct {
	Rows int
	Cols int
	Data []uint8
}

// newSimilarity allocates a rows×cols matrix with every label set to 1.
func newSimilarity(rows, cols int) *Similarity {
	s := &Similarity{Rows: rows, Cols: cols, Data: make([]uint8, rows*cols)}
	for i := range s.Data {
		s.Data[i] = 1
	}
	return s
}

// Row returns the labels of walk i.
func (s *Similarity) Row(i int) []uint8 { return s.Data[i*s.Cols : (i+1)*s.Cols] }

// At returns the label of transition k of walk i.
func (s *Similarity) At(i, k int) uint8 { return s.Data[i*s.Cols+k] }
