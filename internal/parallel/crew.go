// SPDX-License-Identifier: MIT

package parallel

import (
	"fmt"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

// crew is the set of workers of one call: it launches them on a Spawner,
// records the first failure, and joins them.
type crew struct {
	pool Spawner
	log  *zap.Logger

	wg   sync.WaitGroup
	stop atomic.Bool
	once sync.Once
	err  error

	// onFail runs once, on the first failure, after stop is raised.
	onFail func()
}

func newCrew(size int, cfg config) (*crew, error) {
	pool, err := cfg.spawn(size)
	if err != nil {
		return nil, fmt.Errorf("%w: pool of %d: %w", ErrSpawn, size, err)
	}

	return &crew{pool: pool, log: cfg.log}, nil
}

// stopped reports whether workers must stop claiming items.
func (c *crew) stopped() bool { return c.stop.Load() }

func (c *crew) fail(err error) {
	c.once.Do(func() {
		c.err = err
		c.stop.Store(true)
		c.log.Warn("aborting worker crew", zap.Error(err))
		if c.onFail != nil {
			c.onFail()
		}
	})
}

// launch submits n copies of loop. It stops at the first refused worker and
// aborts the crew instead of running short-staffed.
func (c *crew) launch(n int, loop func()) {
	for w := 0; w < n; w++ {
		c.wg.Add(1)
		err := c.pool.Submit(func() {
			defer c.wg.Done()
			defer func() {
				if r := recover(); r != nil {
					c.fail(fmt.Errorf("%w: %v", ErrWorkerPanic, r))
				}
			}()
			loop()
		})
		if err != nil {
			c.wg.Done()
			c.fail(fmt.Errorf("%w: worker %d of %d: %w", ErrSpawn, w+1, n, err))

			return
		}
	}
}

// join waits for every launched worker, then releases the pool.
func (c *crew) join() error {
	c.wg.Wait()
	relErr := c.pool.ReleaseTimeout(releaseTimeout)
	if c.err != nil {
		return c.err
	}
	if relErr != nil {
		return fmt.Errorf("parallel: release pool: %w", relErr)
	}

	return nil
}
