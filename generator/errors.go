// SPDX-License-Identifier: MIT

package generator

import "errors"

var (
	// ErrInvalidSize indicates a non-positive vertex count.
	ErrInvalidSize = errors.New("generator: size must be > 0")

	// ErrInvalidBudget indicates a negative edge budget.
	ErrInvalidBudget = errors.New("generator: edge budget must be >= 0")

	// ErrTooFewVertices indicates a topology below its minimum vertex count.
	ErrTooFewVertices = errors.New("generator: too few vertices for topology")

	// ErrInvalidWeight indicates a negative max weight or one that reaches the sentinel.
	ErrInvalidWeight = errors.New("generator: max weight must be in [0, sentinel)")
)
