// SPDX-License-Identifier: MIT

package apsp

import (
	"fmt"
	"math/bits"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/minplus/matrix"
)

// Operation tags for error wrapping.
const (
	opAllPairs                = "AllPairs"
	opFloydWarshall           = "FloydWarshall"
	opFloydWarshallConcurrent = "FloydWarshallConcurrent"
)

// Solver runs all-pairs shortest-path algorithms with a fixed configuration.
// A Solver holds no per-call state and is safe for concurrent use.
type Solver struct {
	opts options
}

// NewSolver builds a Solver.
func NewSolver(opts ...Option) *Solver {
	return &Solver{opts: gatherOptions(opts...)}
}

// EngineName reports the product engine used by AllPairs.
func (s *Solver) EngineName() string { return s.opts.engine.Name() }

// Squarings returns how many min-plus squarings AllPairs performs for a
// graph of v vertices: ⌈log2 v⌉, and 0 for v <= 1.
func Squarings(v int) int {
	if v <= 1 {
		return 0
	}

	return bits.Len(uint(v - 1))
}

// AllPairs computes shortest distances by repeated squaring:
//
//	paths := graph; exp := 1
//	while exp < V { paths = paths ⊗ paths; exp *= 2 }
//
// Each squaring is a full product, so step s+1 only starts after every cell
// of step s has been written.
func (s *Solver) AllPairs(graph *matrix.Dense) (*matrix.Dense, error) {
	if err := matrix.ValidateSquare(graph); err != nil {
		return nil, fmt.Errorf("%s: %w", opAllPairs, err)
	}
	v := graph.Rows()
	paths := graph.Clone()

	var (
		step  int
		start time.Time
		next  *matrix.Dense
		err   error
	)
	for exp := 1; exp < v; exp *= 2 {
		start = time.Now()
		if next, err = s.opts.engine.Product(paths, paths); err != nil {
			return nil, fmt.Errorf("%s: squaring %d of %d: %w", opAllPairs, step+1, Squarings(v), err)
		}
		paths = next
		step++
		s.opts.log.Debug("squaring done",
			zap.String("engine", s.opts.engine.Name()),
			zap.Int("step", step), zap.Int("exp", exp*2),
			zap.Duration("elapsed", time.Since(start)))
	}

	return paths, nil
}
