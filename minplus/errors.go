// SPDX-License-Identifier: MIT

package minplus

import (
	"errors"

	"github.com/katalvlaran/minplus/internal/parallel"
)

var (
	// ErrInvalidParallelism is returned when maxParallelism < 1.
	ErrInvalidParallelism = errors.New("minplus: maxParallelism must be >= 1")

	// ErrWorkerSpawn is returned when the worker pool cannot be fully staffed.
	ErrWorkerSpawn = parallel.ErrSpawn

	// ErrWorkerPanic is returned when a worker panicked mid-product.
	ErrWorkerPanic = parallel.ErrWorkerPanic
)
