// Package freivalds - random binary vector streams used by trials.
//
// Goals:
//   - Independence: every trial gets its own stream, derived from a base seed
//     and the trial index, so concurrent trials never share or repeat a draw.
//   - Reproducibility on demand: a fixed base seed (WithSeed) makes every
//     trial's vector independent of worker count and scheduling order.
//   - Performance: one generator call yields 64 vector entries.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. A VectorSource is owned by exactly
//     one worker and reseeded per trial; it is never shared.
package freivalds

import (
	"math/rand"
	"time"

	"github.com/katalvlaran/freivalds/matrix"
)

// bitsPerDraw is the number of vector entries produced per Uint64 call.
const bitsPerDraw = 64

// clockSeed returns a base seed from the high-resolution wall clock.
func clockSeed() int64 {
	return time.Now().UnixNano()
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed.
//
// A SplitMix64-style finalizer gives strong bit diffusion, so neighbouring
// stream ids (trial 0, 1, 2, …) produce unrelated seeds.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	// SplitMix64-style finalizer; see Vigna 2014 for the constants and rationale.
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// VectorSource produces uniformly random binary vectors from a private stream.
type VectorSource struct {
	rng *rand.Rand
}

// NewVectorSource returns a source seeded with seed.
func NewVectorSource(seed int64) *VectorSource {
	return &VectorSource{rng: rand.New(rand.NewSource(seed))}
}

// Reseed restarts the stream from seed without allocating a new generator.
func (s *VectorSource) Reseed(seed int64) {
	s.rng.Seed(seed)
}

// Fill overwrites dst with independent uniform bits (0 or 1).
//
// Complexity: O(len(dst)) time, O(1) space.
func (s *VectorSource) Fill(dst matrix.Vector) {
	var bits uint64
	var left int
	for i := range dst {
		if left == 0 {
			bits = s.rng.Uint64()
			left = bitsPerDraw
		}
		dst[i] = int64(bits & 1)
		bits >>= 1
		left--
	}
}

// Draw allocates and returns a fresh random binary vector of dimension n.
// Returns ErrInvalidDimension for n ≤ 0.
func (s *VectorSource) Draw(n int) (matrix.Vector, error) {
	if n <= 0 {
		return nil, ErrInvalidDimension
	}
	v := make(matrix.Vector, n)
	s.Fill(v)

	return v, nil
}
