// SPDX-License-Identifier: MIT

// Package matrix provides the dense distance matrix shared by the min-plus
// engines and the all-pairs shortest-path solvers.
//
// What & Why:
//
//	Dense stores int64 weights in a flat row-major buffer. Every Dense carries
//	its own sentinel ("no edge / unreachable"), Inf by default. Arithmetic over
//	weights goes through SatAdd, the saturating ⊕ of the min-plus (tropical)
//	semiring: sentinel absorbs, and any sum that would overflow or reach the
//	sentinel clamps to it instead of wrapping.
//
// Contract:
//
//	At/Set are bounds-checked and return ErrOutOfRange instead of panicking.
//	Set rejects weights above the sentinel (ErrInvalidWeight).
//	Operands of a product must share both a compatible shape and a sentinel.
//
// Complexity:
//
//	NewDense/NewDistance/FromRows: O(r*c). At/Set: O(1). Clone/Equal: O(r*c).
//
// AI-Hints:
//
//	Hot loops in sibling packages read RawData() directly and skip per-cell
//	bounds checks; everything else should go through At/Set.
package matrix
