// SPDX-License-Identifier: MIT

package apsp

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/minplus/internal/parallel"
	"github.com/katalvlaran/minplus/minplus"
)

const (
	panicEngineNil          = "apsp: WithEngine: engine must be non-nil"
	panicParallelismInvalid = "apsp: WithParallelism: n must be >= 1"
)

// Option configures a Solver.
type Option func(*options)

type options struct {
	engine      minplus.Engine
	parallelism int
	log         *zap.Logger
	spawn       parallel.SpawnFunc
}

// WithEngine sets the product engine used by AllPairs.
// Default: minplus.NewConcurrent(). Panics on nil.
func WithEngine(e minplus.Engine) Option {
	if e == nil {
		panic(panicEngineNil)
	}

	return func(o *options) { o.engine = e }
}

// WithParallelism caps the workers of FloydWarshallConcurrent and of the
// default concurrent engine. Default: runtime.GOMAXPROCS(0). Panics if n < 1.
func WithParallelism(n int) Option {
	if n < 1 {
		panic(panicParallelismInvalid)
	}

	return func(o *options) { o.parallelism = n }
}

// WithLogger sets the solver logger; nil disables logging.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.log = l
	}
}

// withSpawner replaces the Floyd–Warshall worker pool factory (tests).
func withSpawner(fn parallel.SpawnFunc) Option {
	return func(o *options) { o.spawn = fn }
}

func gatherOptions(opts ...Option) options {
	o := options{
		parallelism: parallel.DefaultWorkers(),
		log:         zap.NewNop(),
		spawn:       parallel.AntsSpawner,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.engine == nil {
		o.engine = minplus.NewConcurrent(
			minplus.WithMaxParallelism(o.parallelism),
			minplus.WithLogger(o.log),
		)
	}

	return o
}
