// SPDX-License-Identifier: MIT

package minplus

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/minplus/internal/parallel"
	"github.com/katalvlaran/minplus/matrix"
)

// Concurrent computes each output cell as an independent work item on an
// ephemeral worker pool created for, and joined within, every Product call.
type Concurrent struct {
	opts options
	seq  *Sequential
}

// NewConcurrent builds a Concurrent engine.
func NewConcurrent(opts ...Option) *Concurrent {
	o := gatherOptions(opts...)

	return &Concurrent{opts: o, seq: &Sequential{log: o.log, metrics: o.metrics}}
}

// Name implements Engine.
func (e *Concurrent) Name() string { return EngineConcurrent }

// MaxParallelism returns the configured worker cap.
func (e *Concurrent) MaxParallelism() int { return e.opts.maxParallelism }

// Product implements Engine.
//
// Work item idx in [0, rows*cols) is cell (idx/cols, idx%cols); a worker
// writes only the cells it claimed, and inputs are read-only for the call.
func (e *Concurrent) Product(a, b *matrix.Dense) (*matrix.Dense, error) {
	if err := matrix.ValidateProduct(a, b); err != nil {
		return nil, fmt.Errorf("%s: %w", opProductConcurrent, err)
	}
	start := time.Now()
	c, err := newOutput(a, b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opProductConcurrent, err)
	}

	inf := a.Sentinel()
	inner, cols := a.Cols(), b.Cols()
	ad, bd, cd := a.RawData(), b.RawData(), c.RawData()
	total := len(cd)
	workers := parallel.Workers(total, e.opts.maxParallelism)

	err = parallel.ForEach(total, func(idx int) {
		cd[idx] = cellMin(ad, bd, inner, cols, idx/cols, idx%cols, inf)
	},
		parallel.WithWorkers(workers),
		parallel.WithSpawner(e.opts.spawn),
		parallel.WithLogger(e.opts.log),
	)
	if err != nil {
		if errors.Is(err, parallel.ErrSpawn) {
			e.opts.metrics.spawnFailed()
			if e.opts.fallback {
				e.opts.log.Warn("worker pool unavailable, falling back to sequential product",
					zap.Int("workers", workers), zap.Error(err))
				e.opts.metrics.fellBack()

				return e.seq.Product(a, b)
			}
		}

		return nil, fmt.Errorf("%s: %dx%d · %dx%d: %w",
			opProductConcurrent, a.Rows(), inner, b.Rows(), cols, err)
	}

	elapsed := time.Since(start)
	e.opts.metrics.observe(EngineConcurrent, total, elapsed)
	e.opts.log.Debug("min-plus product",
		zap.String("engine", EngineConcurrent),
		zap.Int("rows", c.Rows()), zap.Int("inner", inner), zap.Int("cols", cols),
		zap.Int("workers", workers), zap.Duration("elapsed", elapsed))

	return c, nil
}
