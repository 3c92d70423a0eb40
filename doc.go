// SPDX-License-Identifier: MIT

// Package minplus is an all-pairs shortest-path engine over dense adjacency
// matrices in the min-plus (tropical) semiring, built around a concurrent
// min-plus product.
//
// 🚀 What is in the box?
//
//	• matrix/            — int64 Dense storage, per-matrix sentinel, saturating ⊕
//	• minplus/           — sequential and concurrent min-plus product engines
//	• apsp/              — repeated squaring, Floyd–Warshall (plain and barrier
//	                       rounds) and per-source Dijkstra, all cross-checkable
//	• generator/         — random-walk graphs, random matrices, fixed topologies
//	• internal/parallel/ — ephemeral ants pools, atomic work claiming, barriers
//	• cmd/minplus/       — graph / compare / apsp harness
//
// ✨ Guarantees
//
//   - No wraparound: a sum that overflows or reaches the sentinel IS the sentinel.
//   - Engines never mutate their inputs and always agree with each other.
//   - Every worker is joined before a call returns; a failed spawn or a
//     panicking worker is an error, never a hang.
//
// Quick example (the sentinel 999 marks a missing edge):
//
//	    0 ──3──▶ 1
//	    ▲        │
//	    2        1
//	    │        ▼
//	    └─────── 2
//
//	g, _ := matrix.FromRows([][]int64{{0, 3, 999}, {999, 0, 1}, {2, 999, 0}},
//	    matrix.WithSentinel(999))
//	dist, _ := apsp.AllPairsShortestPaths(g) // [[0 3 4] [3 0 1] [2 5 0]]
//
//	go install github.com/katalvlaran/minplus/cmd/minplus@latest
package minplus
