// SPDX-License-Identifier: MIT
// Package: lvwalk/corrupt
//
// errors.go - sentinel errors for negative sampling and corruption.

package corrupt

import "errors"

var (
	// ErrNilWalks indicates a nil walk matrix.
	ErrNilWalks = errors.New("corrupt: nil walk matrix")

	// ErrBadWalkShape indicates len(Data) ≠ Rows*Cols.
	ErrBadWalkShape = errors.New("corrupt: walk matrix shape mismatch")

	// ErrWalkTooShort indicates walks with fewer than two columns; there
	// is no column other than the start to corrupt.
	ErrWalkTooShort = errors.New("corrupt: walks need at least 2 columns")

	// ErrInvalidRate indicates a corruption rate outside [0,1].
	ErrInvalidRate = errors.New("corrupt: rate must be in [0,1]")

	// ErrEmptySampler indicates a sampler with nothing to draw from.
	ErrEmptySampler = errors.New("corrupt: negative sampler is empty")

	// ErrNodeOutOfRange indicates a node id (in the walks or the sampler)
	// that the adjacency does not know.
	ErrNodeOutOfRange = errors.New("corrupt: node id out of range")

	// ErrInvalidExponent indicates a negative or non-finite degree exponent.
	ErrInvalidExponent = errors.New("corrupt: invalid degree exponent")

	// ErrInvalidTableSize indicates a non-positive sampling table size.
	ErrInvalidTableSize = errors.New("corrupt: table size must be > 0")
)
