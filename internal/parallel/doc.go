// SPDX-License-Identifier: MIT

// Package parallel holds the fan-out primitives shared by the min-plus
// engines and the barrier-coupled solvers.
//
// Every call owns an ephemeral goroutine pool (ants by default): work items
// are integer indices handed out by a single atomic counter, workers pull the
// next index until the counter passes the total, and the call returns only
// after every worker has been joined and the pool released.
//
//   - ForEach: one embarrassingly parallel step (a min-plus product).
//   - Rounds: a sequence of steps separated by a full Barrier; a fixed set of
//     workers parks between rounds (Floyd–Warshall over k).
//   - Barrier: reusable cyclic barrier with a trip action and Break.
//
// A worker that fails to spawn or panics aborts the call: remaining workers
// stop claiming, parked workers are released through Barrier.Break, and the
// error (ErrSpawn, ErrWorkerPanic) is returned after the join. Nothing waits
// forever on a dead worker.
package parallel
