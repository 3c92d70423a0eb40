// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All functions return these sentinels (optionally wrapped with call-site
// context via %w) and tests match them with errors.Is. No function panics on
// user-triggered error conditions; option constructors panic on programmer
// errors only.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrBadShape is returned when row-wise input is ragged (rows of unequal length).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. a product where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	// It always wraps ErrDimensionMismatch, so errors.Is matches both.
	ErrNonSquare = fmt.Errorf("matrix: matrix is not square: %w", ErrDimensionMismatch)

	// ErrNilMatrix indicates that a nil *Dense was passed where a matrix is required.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrInvalidWeight indicates a weight greater than the matrix sentinel.
	ErrInvalidWeight = errors.New("matrix: weight exceeds sentinel")

	// ErrSentinelMismatch indicates two operands that disagree on the "no edge" value.
	ErrSentinelMismatch = errors.New("matrix: sentinel mismatch")
)

// matrixErrorf wraps err with an operation tag: "<op>: <err>".
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
