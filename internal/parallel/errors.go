// SPDX-License-Identifier: MIT

package parallel

import "errors"

var (
	// ErrSpawn is returned when the pool cannot be created or refuses a worker.
	ErrSpawn = errors.New("parallel: worker spawn failed")

	// ErrWorkerPanic is returned when a worker panicked while processing an item.
	ErrWorkerPanic = errors.New("parallel: worker panicked")

	// ErrBrokenBarrier is returned by Barrier.Wait once the barrier was broken.
	ErrBrokenBarrier = errors.New("parallel: barrier broken")
)
