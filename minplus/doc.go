// SPDX-License-Identifier: MIT

// Package minplus implements the min-plus (tropical) matrix product
//
//	C[i][j] = min_k ( A[i][k] ⊕ B[k][j] )
//
// where ⊕ is matrix.SatAdd, the saturating addition that absorbs the
// sentinel and never wraps.
//
// Two engines share the Engine interface and always return identical results:
//
//   - Sequential: reference i→k→j kernel over flat buffers; the correctness
//     oracle and the right choice for small inputs.
//   - Concurrent: one output cell per work item, claimed dynamically from an
//     atomic counter by an ephemeral pool of min(cells, maxParallelism)
//     workers. Each cell has exactly one writer, so the output needs no lock.
//     The call blocks until every worker is joined.
//
// Errors:
//   - matrix.ErrDimensionMismatch (a.Cols != b.Rows), matrix.ErrNilMatrix,
//     matrix.ErrSentinelMismatch.
//   - ErrWorkerSpawn when a worker cannot be started (unless the engine was
//     built WithSequentialFallback), ErrWorkerPanic, ErrInvalidParallelism.
package minplus
