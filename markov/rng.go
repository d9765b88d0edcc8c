// SPDX-License-Identifier: MIT

// RNG factories for reproducible predictions.
//
// math/rand.Rand is NOT goroutine-safe. Give every worker its own stream
// via DeriveRand instead of sharing one *rand.Rand.

package markov

import "math/rand"

// DefaultSeed replaces a zero seed so that the zero value stays reproducible.
const DefaultSeed int64 = 1

// NewRand returns a deterministic *rand.Rand. A zero seed uses DefaultSeed.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// mixSeed folds parent and stream into a new seed with the SplitMix64
// finalizer.
func mixSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// DeriveRand returns an independent stream keyed by stream. base.Int63 is
// consumed once so repeated derivations differ; a nil base uses DefaultSeed
// as the parent and is a pure function of stream.
//
// Call during setup, not in hot loops.
func DeriveRand(base *rand.Rand, stream uint64) *rand.Rand {
	parent := DefaultSeed
	if base != nil {
		parent = base.Int63()
	}
	return rand.New(rand.NewSource(mixSeed(parent, stream)))
}
