// SPDX-License-Identifier: MIT

package generator

import (
	"fmt"

	"github.com/katalvlaran/minplus/matrix"
)

const methodMatrix = "Matrix"

// Matrix returns a rows×cols matrix with weights drawn uniformly from
// [0, maxWeight]; with WithSentinelRatio(p) each cell is the sentinel with
// probability p instead.
//
// Errors: matrix.ErrInvalidDimensions, ErrInvalidWeight.
func Matrix(rows, cols int, maxWeight int64, opts ...Option) (*matrix.Dense, error) {
	cfg := gatherConfig(opts...)
	if maxWeight < 0 || maxWeight >= cfg.sentinel {
		return nil, fmt.Errorf("%s: maxWeight=%d sentinel=%d: %w", methodMatrix, maxWeight, cfg.sentinel, ErrInvalidWeight)
	}
	m, err := matrix.NewDense(rows, cols, matrix.WithSentinel(cfg.sentinel))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodMatrix, err)
	}
	d := m.RawData()
	for k := range d {
		if cfg.sentinelRatio > 0 && cfg.rng.Float64() < cfg.sentinelRatio {
			d[k] = cfg.sentinel
			continue
		}
		d[k] = cfg.rng.Int63n(maxWeight + 1)
	}

	return m, nil
}
