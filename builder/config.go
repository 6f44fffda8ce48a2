// SPDX-License-Identifier: MIT
// Package: lvwalk/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn     = identity   (index i → node id i)
//   • rng      = nil        (pure/deterministic unless seeded)
//   • weightFn = DefaultWeightFn (constant 1)

package builder

import "math/rand/v2"

// pcgStreamSalt derives the second PCG word from the seed so WithSeed(s)
// needs a single number.
const pcgStreamSalt uint64 = 0xda3e39cb94b95bdb

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	idFn     func(int) int64
	rng      *rand.Rand
	weightFn WeightFn
}

// newBuilderConfig applies options in order on top of the defaults.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     identityID,
		rng:      nil,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// identityID maps index i to node id i.
func identityID(i int) int64 { return int64(i) }

// weight draws the next edge weight under the configured policy.
func (c builderConfig) weight() float64 {
	return c.weightFn(c.rng)
}
