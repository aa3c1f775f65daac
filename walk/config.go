// SPDX-License-Identifier: MIT
package walk

import "runtime"

// Config holds the node2vec bias parameters and execution knobs for a
// Sampler. Build one with DefaultConfig then apply Options, or construct
// literally and call Validate before use.
type Config struct {
	WalkLength int
	NumWalks   int

	ReturnWeight         float64 // p
	ExploreWeight        float64 // q
	ChangeNodeTypeWeight float64
	ChangeEdgeTypeWeight float64

	Seed        uint64
	Parallelism int
}

// DefaultConfig returns the node2vec defaults (p=q=1, i.e. unbiased
// second-order walks degenerate to first-order) plus a parallelism
// matched to the host's CPU count.
func DefaultConfig() Config {
	return Config{
		WalkLength:           80,
		NumWalks:             10,
		ReturnWeight:         1.0,
		ExploreWeight:        1.0,
		ChangeNodeTypeWeight: 1.0,
		ChangeEdgeTypeWeight: 1.0,
		Seed:                 42,
		Parallelism:          runtime.GOMAXPROCS(0),
	}
}

// Option mutates a Config.
type Option func(*Config)

func WithWalkLength(n int) Option   { return func(c *Config) { c.WalkLength = n } }
func WithNumWalks(n int) Option     { return func(c *Config) { c.NumWalks = n } }
func WithReturnWeight(p float64) Option  { return func(c *Config) { c.ReturnWeight = p } }
func WithExploreWeight(q float64) Option { return func(c *Config) { c.ExploreWeight = q } }
func WithChangeNodeTypeWeight(w float64) Option {
	return func(c *Config) { c.ChangeNodeTypeWeight = w }
}
func WithChangeEdgeTypeWeight(w float64) Option {
	return func(c *Config) { c.ChangeEdgeTypeWeight = w }
}
func WithSeed(seed uint64) Option        { return func(c *Config) { c.Seed = seed } }
func WithParallelism(n int) Option       { return func(c *Config) { c.Parallelism = n } }

// Validate rejects non-positive bias weights, walk lengths, or walk
// counts — every one of them a divisor or loop bound somewhere in
// transition.go or sampler.go.
func (c Config) Validate() error {
	if c.WalkLength <= 0 || c.NumWalks <= 0 {
		return wrapf("Validate", ErrInvalidConfig)
	}
	if c.ReturnWeight <= 0 || c.ExploreWeight <= 0 {
		return wrapf("Validate", ErrInvalidConfig)
	}
	if c.ChangeNodeTypeWeight <= 0 || c.ChangeEdgeTypeWeight <= 0 {
		return wrapf("Validate", ErrInvalidConfig)
	}
	if c.Parallelism <= 0 {
		return wrapf("Validate", ErrInvalidConfig)
	}
	return nil
}
