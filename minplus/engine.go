// SPDX-License-Identifier: MIT

package minplus

import (
	"fmt"

	"github.com/katalvlaran/minplus/matrix"
)

// Operation tags for error wrapping.
const (
	opProduct           = "Product"
	opProductConcurrent = "ProductConcurrent"
)

// Engine names, also used as the "engine" metric label.
const (
	EngineSequential = "sequential"
	EngineConcurrent = "concurrent"
)

// Engine computes min-plus products. Implementations never mutate a or b and
// always return a freshly allocated a.Rows()×b.Cols() matrix.
type Engine interface {
	Product(a, b *matrix.Dense) (*matrix.Dense, error)
	Name() string
}

var (
	_ Engine = (*Sequential)(nil)
	_ Engine = (*Concurrent)(nil)
)

// Product computes a ⊗ b with the sequential engine.
func Product(a, b *matrix.Dense) (*matrix.Dense, error) {
	return NewSequential().Product(a, b)
}

// ProductConcurrent computes a ⊗ b with at most maxParallelism workers.
func ProductConcurrent(a, b *matrix.Dense, maxParallelism int) (*matrix.Dense, error) {
	if maxParallelism < 1 {
		return nil, fmt.Errorf("%s: maxParallelism=%d: %w", opProductConcurrent, maxParallelism, ErrInvalidParallelism)
	}

	return NewConcurrent(WithMaxParallelism(maxParallelism)).Product(a, b)
}

// newOutput allocates the a.Rows()×b.Cols() result, pre-filled with the sentinel.
func newOutput(a, b *matrix.Dense) (*matrix.Dense, error) {
	inf := a.Sentinel()

	return matrix.NewFilled(a.Rows(), b.Cols(), inf, matrix.WithSentinel(inf))
}

// cellMin reduces one output cell: min over k of a[i][k] ⊕ b[k][j].
// a is rows×inner and b is inner×cols, both row-major.
func cellMin(a, b []int64, inner, cols, i, j int, inf int64) int64 {
	best := inf
	row := a[i*inner : (i+1)*inner]
	for k, aik := range row {
		if aik >= inf {
			continue
		}
		if s := matrix.SatAdd(aik, b[k*cols+j], inf); s < best {
			best = s
		}
	}

	return best
}
