// SPDX-License-Identifier: MIT

package minplus

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/minplus/matrix"
)

// Sequential is the single-goroutine reference engine.
type Sequential struct {
	log     *zap.Logger
	metrics *Metrics
}

// NewSequential builds a Sequential engine. Only WithLogger and WithMetrics apply.
func NewSequential(opts ...Option) *Sequential {
	o := gatherOptions(opts...)

	return &Sequential{log: o.log, metrics: o.metrics}
}

// Name implements Engine.
func (s *Sequential) Name() string { return EngineSequential }

// Product implements Engine.
// Loop order is i→k→j so both b's row k and c's row i stream contiguously;
// rows of a whose entry is the sentinel are skipped.
// Complexity: Time O(r*n*c), Space O(r*c).
func (s *Sequential) Product(a, b *matrix.Dense) (*matrix.Dense, error) {
	if err := matrix.ValidateProduct(a, b); err != nil {
		return nil, fmt.Errorf("%s: %w", opProduct, err)
	}
	start := time.Now()
	c, err := newOutput(a, b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opProduct, err)
	}
	productInto(c, a, b)

	elapsed := time.Since(start)
	s.metrics.observe(EngineSequential, c.Rows()*c.Cols(), elapsed)
	s.log.Debug("min-plus product",
		zap.String("engine", EngineSequential),
		zap.Int("rows", c.Rows()), zap.Int("inner", a.Cols()), zap.Int("cols", c.Cols()),
		zap.Duration("elapsed", elapsed))

	return c, nil
}

// productInto relaxes c with a ⊗ b; c must be pre-filled with the sentinel.
func productInto(c, a, b *matrix.Dense) {
	inf := a.Sentinel()
	rows, inner, cols := a.Rows(), a.Cols(), b.Cols()
	ad, bd, cd := a.RawData(), b.RawData(), c.RawData()

	var (
		i, k int
		aik  int64
		ci   []int64
		bk   []int64
		cand int64
	)
	for i = 0; i < rows; i++ {
		ci = cd[i*cols : (i+1)*cols]
		for k = 0; k < inner; k++ {
			aik = ad[i*inner+k]
			if aik >= inf {
				continue
			}
			bk = bd[k*cols : (k+1)*cols]
			for j, bkj := range bk {
				if cand = matrix.SatAdd(aik, bkj, inf); cand < ci[j] {
					ci[j] = cand
				}
			}
		}
	}
}
