// SPDX-License-Identifier: MIT

package parallel

import (
	"runtime"
	"time"

	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"
)

// releaseTimeout bounds the wait for idle pool goroutines to exit after all
// workers have been joined.
const releaseTimeout = 5 * time.Second

const (
	panicWorkersInvalid = "parallel: WithWorkers: n must be >= 1"
	panicSpawnerNil     = "parallel: WithSpawner: spawn func must be non-nil"
)

// Spawner runs submitted tasks on its own goroutines.
// *ants.Pool satisfies it.
type Spawner interface {
	Submit(task func()) error
	ReleaseTimeout(timeout time.Duration) error
}

// SpawnFunc creates a Spawner able to run size tasks concurrently.
type SpawnFunc func(size int) (Spawner, error)

// AntsSpawner is the default SpawnFunc: a non-blocking ants pool with a
// preallocated worker queue and no background purge.
func AntsSpawner(size int) (Spawner, error) {
	return ants.NewPool(size,
		ants.WithNonblocking(true),
		ants.WithPreAlloc(true),
		ants.WithDisablePurge(true),
	)
}

// DefaultWorkers is the hardware-derived parallelism cap.
func DefaultWorkers() int { return runtime.GOMAXPROCS(0) }

// Workers returns min(total, limit), never less than 1.
func Workers(total, limit int) int {
	return max(1, min(total, limit))
}

// Option configures ForEach and Rounds.
type Option func(*config)

type config struct {
	workers int
	spawn   SpawnFunc
	log     *zap.Logger
}

// WithWorkers caps the number of workers. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(c *config) { c.workers = n }
}

// WithSpawner replaces the goroutine pool factory. Panics on nil.
func WithSpawner(fn SpawnFunc) Option {
	if fn == nil {
		panic(panicSpawnerNil)
	}

	return func(c *config) { c.spawn = fn }
}

// WithLogger sets the logger; nil means no logging.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l == nil {
			l = zap.NewNop()
		}
		c.log = l
	}
}

func gather(opts ...Option) config {
	c := config{workers: DefaultWorkers(), spawn: AntsSpawner, log: zap.NewNop()}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}
