// SPDX-License-Identifier: MIT

package minplus

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/minplus/internal/parallel"
)

const panicParallelismInvalid = "minplus: WithMaxParallelism: n must be >= 1"

// Option configures an engine.
type Option func(*options)

type options struct {
	maxParallelism int
	fallback       bool
	log            *zap.Logger
	metrics        *Metrics
	spawn          parallel.SpawnFunc
}

// WithMaxParallelism caps the number of concurrent workers per product.
// Default: runtime.GOMAXPROCS(0). Panics if n < 1.
func WithMaxParallelism(n int) Option {
	if n < 1 {
		panic(panicParallelismInvalid)
	}

	return func(o *options) { o.maxParallelism = n }
}

// WithSequentialFallback makes Concurrent recompute the product sequentially
// when its pool cannot be staffed, instead of returning ErrWorkerSpawn.
func WithSequentialFallback() Option {
	return func(o *options) { o.fallback = true }
}

// WithLogger sets the engine logger; nil disables logging.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.log = l
	}
}

// WithMetrics attaches Prometheus collectors; nil disables metrics.
func WithMetrics(m *Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// withSpawner replaces the worker pool factory (tests).
func withSpawner(fn parallel.SpawnFunc) Option {
	return func(o *options) { o.spawn = fn }
}

func gatherOptions(opts ...Option) options {
	o := options{
		maxParallelism: parallel.DefaultWorkers(),
		log:            zap.NewNop(),
		spawn:          parallel.AntsSpawner,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
