// Package parallel - RNG streams shared by the walk and corruption engines.
//
// Goals:
//   - Determinism: same seed ⇒ identical streams, whatever the worker count.
//   - Independence: every block of work owns its own stream; no RNG is ever
//     shared between goroutines.
//
// Concurrency:
//   - *rand.Rand is NOT goroutine-safe. Streams are created inside the
//     goroutine that uses them and never escape it.
package parallel

import "math/rand/v2"

// DefaultSeed is the fixed seed used when callers pass seed==0.
const DefaultSeed uint64 = 1

// DeriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed with a SplitMix64 finalizer, so neighbouring stream ids produce
// uncorrelated seeds.
// Complexity: O(1).
func DeriveSeed(parent, stream uint64) uint64 {
	x := parent ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// StreamRand returns the PCG stream for (seed, stream).
// Policy: seed==0 ⇒ DefaultSeed.
// Complexity: O(1).
func StreamRand(seed, stream uint64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}
	return rand.New(rand.NewPCG(DeriveSeed(seed, stream), DeriveSeed(seed, ^stream)))
}
