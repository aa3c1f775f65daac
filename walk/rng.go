// SPDX-License-Identifier: MIT
//
// File: rng.go
// Role: A splitmix64 PRNG per (start_node, iteration) stream, derived
// from a single Config.Seed the way tsp/rng.go derives independent
// restart streams from a base seed — same avalanche-mix constants
// (Vigna, 2014), generalized from one stream identifier to a pair.

package walk

import "github.com/ranktrail/ranktrail/core"

// splitMix64 is a minimal, allocation-free PRNG: 64 bits of state, one
// multiply-xor-shift step per draw. It is not cryptographically secure
// and is not meant to be; its only job is fast, reproducible, well-mixed
// streams for sampling.
type splitMix64 struct {
	state uint64
}

// newSplitMix64 derives an independent stream for (startNode, iteration)
// from a single base seed, using the same finalizer tsp/rng.go's
// deriveSeed applies to a single stream id.
func newSplitMix64(seed uint64, startNode core.NodeId, iteration int) *splitMix64 {
	x := seed
	x ^= mix64(uint64(startNode)) + 0x9e3779b97f4a7c15 + (x << 6) + (x >> 2)
	x ^= mix64(uint64(iteration)) + 0x9e3779b97f4a7c15 + (x << 6) + (x >> 2)
	return &splitMix64{state: x}
}

// mix64 is the SplitMix64 finalizer (avalanche mix).
func mix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// next draws the next 64-bit value and advances state.
func (s *splitMix64) next() uint64 {
	s.state += 0x9e3779b97f4a7c15
	return mix64(s.state)
}

// float64 draws a uniform value in [0,1).
func (s *splitMix64) float64() float64 {
	// Top 53 bits give a uniform double with full mantissa precision.
	return float64(s.next()>>11) / (1 << 53)
}

// intn draws a uniform value in [0,n) for n > 0.
func (s *splitMix64) intn(n int) int {
	return int(s.next() % uint64(n))
}
