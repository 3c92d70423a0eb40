// SPDX-License-Identifier: MIT

package apsp

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/minplus/internal/parallel"
	"github.com/katalvlaran/minplus/matrix"
)

// FloydWarshall computes shortest distances with the k → i → j relaxation on
// a clone of graph.
// Complexity: Time O(V³), Space O(V²).
func (s *Solver) FloydWarshall(graph *matrix.Dense) (*matrix.Dense, error) {
	if err := matrix.ValidateSquare(graph); err != nil {
		return nil, fmt.Errorf("%s: %w", opFloydWarshall, err)
	}
	start := time.Now()
	d := graph.Clone()
	relaxAll(d.RawData(), d.Rows(), d.Sentinel())
	s.opts.log.Debug("floyd-warshall done",
		zap.Int("vertices", d.Rows()), zap.Duration("elapsed", time.Since(start)))

	return d, nil
}

// relaxAll runs the sequential closure in place on an n×n row-major buffer.
func relaxAll(data []int64, n int, inf int64) {
	var (
		k, i, j      int
		baseK, baseI int
		ik, kj, cand int64
	)
	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if ik >= inf {
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if kj >= inf {
					continue
				}
				if cand = matrix.SatAdd(ik, kj, inf); cand < data[baseI+j] {
					data[baseI+j] = cand
				}
			}
		}
	}
}

// FloydWarshallConcurrent runs one round per intermediate vertex k. Within a
// round the V² cells are claimed dynamically by a fixed crew of workers;
// between rounds the workers park on a barrier whose trip action snapshots
// row k and column k, so every cell of round k reads the same values.
//
// The result equals FloydWarshall whenever the diagonal is non-negative.
func (s *Solver) FloydWarshallConcurrent(graph *matrix.Dense) (*matrix.Dense, error) {
	if err := matrix.ValidateSquare(graph); err != nil {
		return nil, fmt.Errorf("%s: %w", opFloydWarshallConcurrent, err)
	}
	start := time.Now()
	d := graph.Clone()
	n, inf := d.Rows(), d.Sentinel()
	data := d.RawData()
	rowK := make([]int64, n)
	colK := make([]int64, n)

	snapshot := func(k int) {
		copy(rowK, data[k*n:(k+1)*n])
		for i := 0; i < n; i++ {
			colK[i] = data[i*n+k]
		}
		s.opts.log.Debug("floyd-warshall round", zap.Int("k", k))
	}
	relax := func(_, idx int) {
		ik, kj := colK[idx/n], rowK[idx%n]
		if ik >= inf || kj >= inf {
			return
		}
		if cand := matrix.SatAdd(ik, kj, inf); cand < data[idx] {
			data[idx] = cand
		}
	}

	err := parallel.Rounds(n, n*n, snapshot, relax,
		parallel.WithWorkers(s.opts.parallelism),
		parallel.WithSpawner(s.opts.spawn),
		parallel.WithLogger(s.opts.log),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %dx%d: %w", opFloydWarshallConcurrent, n, n, err)
	}
	s.opts.log.Debug("floyd-warshall done",
		zap.Int("vertices", n), zap.Int("workers", parallel.Workers(n*n, s.opts.parallelism)),
		zap.Duration("elapsed", time.Since(start)))

	return d, nil
}
