// SPDX-License-Identifier: MIT

package generator

import (
	"math/rand"
	"time"

	"github.com/katalvlaran/minplus/matrix"
)

// DefaultMaxWeight bounds generated weights to [0, 50].
const DefaultMaxWeight int64 = 50

const (
	panicRandNil      = "generator: WithRand: rng must be non-nil"
	panicMaxWeight    = "generator: WithMaxWeight: w must be >= 0"
	panicSentinel     = "generator: WithSentinel: v must be > 0"
	panicSentinelRate = "generator: WithSentinelRatio: p must be in [0,1]"
)

// Option configures Graph and Matrix.
type Option func(*config)

type config struct {
	rng            *rand.Rand
	maxWeight      int64
	sentinel       int64
	sentinelRatio  float64
	disjointFilter bool
}

// WithSeed seeds a private RNG for reproducible output.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand uses r as the RNG. r is not safe for concurrent use. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic(panicRandNil)
	}

	return func(c *config) { c.rng = r }
}

// WithMaxWeight bounds Graph edge weights to [0, w]. Panics if w < 0.
func WithMaxWeight(w int64) Option {
	if w < 0 {
		panic(panicMaxWeight)
	}

	return func(c *config) { c.maxWeight = w }
}

// WithSentinel sets the "no edge" value of generated matrices. Panics if v <= 0.
func WithSentinel(v int64) Option {
	if v <= 0 {
		panic(panicSentinel)
	}

	return func(c *config) { c.sentinel = v }
}

// WithSentinelRatio makes Matrix emit the sentinel with probability p per cell.
func WithSentinelRatio(p float64) Option {
	if p < 0 || p > 1 {
		panic(panicSentinelRate)
	}

	return func(c *config) { c.sentinelRatio = p }
}

// WithDisjointFilter drops Graph vertices without any incident edge.
func WithDisjointFilter() Option {
	return func(c *config) { c.disjointFilter = true }
}

func gatherConfig(opts ...Option) config {
	c := config{maxWeight: DefaultMaxWeight, sentinel: matrix.DefaultSentinel}
	for _, opt := range opts {
		opt(&c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return c
}
