// SPDX-License-Identifier: MIT

package parallel

import (
	"sync/atomic"

	"go.uber.org/zap"
)

// ForEach calls body(idx) exactly once for every idx in [0, total) on an
// ephemeral pool of min(total, workers) goroutines that claim indices from a
// shared atomic counter. It returns after every worker has been joined.
//
// Errors: ErrSpawn, ErrWorkerPanic. On error some indices may not have run.
func ForEach(total int, body func(idx int), opts ...Option) error {
	if total <= 0 {
		return nil
	}
	cfg := gather(opts...)
	workers := Workers(total, cfg.workers)
	c, err := newCrew(workers, cfg)
	if err != nil {
		return err
	}
	cfg.log.Debug("fan-out", zap.Int("items", total), zap.Int("workers", workers))

	var next atomic.Int64
	n := int64(total)
	c.launch(workers, func() {
		for !c.stopped() {
			idx := next.Add(1) - 1
			if idx >= n {
				return
			}
			body(int(idx))
		}
	})

	return c.join()
}

// Rounds runs rounds consecutive steps of total items each. Within a round,
// items are claimed dynamically like ForEach; between rounds a full barrier
// guarantees round r is complete everywhere before round r+1 starts.
//
// before(r), if non-nil, runs exactly once before round r: on the calling
// goroutine for r == 0, and as the barrier trip action afterwards.
func Rounds(rounds, total int, before func(round int), body func(round, idx int), opts ...Option) error {
	if rounds <= 0 || total <= 0 {
		return nil
	}
	cfg := gather(opts...)
	workers := Workers(total, cfg.workers)
	if before != nil {
		before(0)
	}
	c, err := newCrew(workers, cfg)
	if err != nil {
		return err
	}
	cfg.log.Debug("fan-out rounds",
		zap.Int("rounds", rounds), zap.Int("items", total), zap.Int("workers", workers))

	var next atomic.Int64
	n := int64(total)
	round := 0
	bar := NewBarrier(workers, func() {
		round++
		next.Store(0)
		if before != nil && round < rounds {
			before(round)
		}
	})
	c.onFail = bar.Break

	c.launch(workers, func() {
		for r := 0; r < rounds; r++ {
			for !c.stopped() {
				idx := next.Add(1) - 1
				if idx >= n {
					break
				}
				body(r, int(idx))
			}
			if c.stopped() {
				return
			}
			if bar.Wait() != nil {
				return
			}
		}
	})

	return c.join()
}
