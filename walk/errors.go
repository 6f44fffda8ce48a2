// SPDX-License-Identifier: MIT
// Package: lvwalk/walk
//
// errors.go - sentinel errors for walk generation.
//
// Policy:
//   - Only sentinel variables are exported; callers branch with errors.Is.
//   - Context (method, offending value) is attached with fmt.Errorf("%w").

package walk

import "errors"

var (
	// ErrInvalidWalkLen indicates WalkLen < 1.
	ErrInvalidWalkLen = errors.New("walk: walk length must be ≥ 1")

	// ErrInvalidNWalks indicates NWalks < 1.
	ErrInvalidNWalks = errors.New("walk: walks per node must be ≥ 1")

	// ErrInvalidBias indicates a node2vec parameter P or Q that is not a
	// finite positive number.
	ErrInvalidBias = errors.New("walk: p and q must be finite and > 0")

	// ErrInvalidAlpha indicates a restart probability outside [0,1).
	ErrInvalidAlpha = errors.New("walk: alpha must be in [0,1)")

	// ErrStartOutOfRange indicates a start node id ≥ number of nodes.
	ErrStartOutOfRange = errors.New("walk: start node out of range")

	// ErrNoStartNodes indicates an empty start set.
	ErrNoStartNodes = errors.New("walk: no start nodes")

	// ErrNoOriginalWeights indicates a weighted walk over a matrix that
	// carries no raw edge weights.
	ErrNoOriginalWeights = errors.New("walk: matrix has no original weights")
)
