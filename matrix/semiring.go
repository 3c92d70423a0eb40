// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Saturating ⊕ for the min-plus semiring. The semiring "sum" is the
//     builtin min; its "product" is SatAdd.
//
// Contract:
//   - SatAdd never wraps. Sentinel operands absorb; sums that overflow int64
//     or reach the sentinel clamp to the sentinel; negative underflow clamps
//     to math.MinInt64.

package matrix

import "math"

// SatAdd returns a ⊕ b under sentinel inf.
// Complexity: O(1), branch-only.
func SatAdd(a, b, inf int64) int64 {
	if a >= inf || b >= inf {
		return inf // absorption
	}
	if b > 0 && a > math.MaxInt64-b {
		return inf // positive overflow
	}
	if b < 0 && a < math.MinInt64-b {
		return math.MinInt64 // negative underflow
	}
	if s := a + b; s < inf {
		return s
	}

	return inf
}

// IsInf reports whether v is the sentinel (or above it) under inf.
func IsInf(v, inf int64) bool { return v >= inf }
