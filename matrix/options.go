// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Dense construction.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; constructors consume ...Option.

package matrix

import "math"

// Inf is the default sentinel: the largest representable weight.
const Inf int64 = math.MaxInt64

// DefaultSentinel is the sentinel used when WithSentinel is not supplied.
const DefaultSentinel = Inf

const panicSentinelInvalid = "matrix: WithSentinel: sentinel must be > 0"

// Option mutates internal options. Later options override earlier ones.
type Option func(*options)

// options stores the effective configuration after applying Option setters.
type options struct {
	sentinel int64
}

// WithSentinel sets the "no edge / unreachable" value of the constructed matrix.
// Panics if v <= 0: a non-positive sentinel would compare below real distances.
func WithSentinel(v int64) Option {
	if v <= 0 {
		panic(panicSentinelInvalid)
	}

	return func(o *options) { o.sentinel = v }
}

// gatherOptions applies opts over the documented defaults.
func gatherOptions(opts ...Option) options {
	o := options{sentinel: DefaultSentinel}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
