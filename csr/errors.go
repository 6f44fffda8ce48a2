// SPDX-License-Identifier: MIT
// Package: lvwalk/csr
//
// errors.go - sentinel errors for the csr package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Context is attached with fmt.Errorf("%s: ...: %w", method, ErrX).
//   • No algorithm in this package panics on user input.

package csr

import "errors"

var (
	// ErrNilMatrix indicates that a nil *Matrix was passed or used as receiver.
	ErrNilMatrix = errors.New("csr: nil matrix")

	// ErrBadShape indicates mismatched array lengths between Indptr/Indices/Data/Original,
	// a non-monotone Indptr, Indptr[0]≠0 or Indptr[n]≠len(Indices).
	ErrBadShape = errors.New("csr: invalid shape")

	// ErrNodeOutOfRange indicates a node id outside [0,n).
	ErrNodeOutOfRange = errors.New("csr: node id out of range")

	// ErrNotStochastic indicates a cumulative row that decreases or does not end within
	// tolerance of 1.0 (upstream normalisation drift).
	ErrNotStochastic = errors.New("csr: row is not a cumulative distribution")

	// ErrInvalidWeight indicates a negative, NaN or ±Inf edge weight at build time.
	ErrInvalidWeight = errors.New("csr: invalid edge weight")

	// ErrInvalidExponent indicates a NaN or ±Inf sub-sampling exponent.
	ErrInvalidExponent = errors.New("csr: invalid sub-sampling exponent")

	// ErrNilSource indicates that a nil Source (or nil gonum graph) was supplied.
	ErrNilSource = errors.New("csr: nil source")

	// ErrTooLarge indicates that a dense builder was asked for more nodes than it supports.
	ErrTooLarge = errors.New("csr: graph too large for dense build")

	// ErrNotSymmetric indicates that a builder requiring an undirected graph saw an
	// asymmetric adjacency.
	ErrNotSymmetric = errors.New("csr: adjacency is not symmetric")

	// ErrEigenFailed indicates that the eigen decomposition did not converge.
	ErrEigenFailed = errors.New("csr: eigen decomposition failed")
)
