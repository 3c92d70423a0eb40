// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Single source of truth for nil/shape/sentinel checks.
//   - Errors carry the offending shapes so a failing call can be reproduced.

package matrix

import "fmt"

// ValidateNotNil ensures m is non-nil.
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return matrixErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare ensures m is non-nil and Rows == Cols.
// The returned error matches both ErrNonSquare and ErrDimensionMismatch.
func ValidateSquare(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.r != m.c {
		return fmt.Errorf("ValidateSquare: got %dx%d: %w", m.r, m.c, ErrNonSquare)
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil with identical dimensions.
func ValidateSameShape(a, b *Dense) error {
	if a == nil || b == nil {
		return matrixErrorf("ValidateSameShape", ErrNilMatrix)
	}
	if a.r != b.r || a.c != b.c {
		return fmt.Errorf("ValidateSameShape: %dx%d vs %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch)
	}

	return nil
}

// ValidateProduct checks that a ⊗ b is defined: both non-nil,
// a.Cols == b.Rows, and a shared sentinel.
func ValidateProduct(a, b *Dense) error {
	if a == nil || b == nil {
		return matrixErrorf("ValidateProduct", ErrNilMatrix)
	}
	if a.c != b.r {
		return fmt.Errorf("ValidateProduct: %dx%d · %dx%d (want a.cols == b.rows): %w",
			a.r, a.c, b.r, b.c, ErrDimensionMismatch)
	}
	if a.inf != b.inf {
		return fmt.Errorf("ValidateProduct: sentinel %d vs %d: %w", a.inf, b.inf, ErrSentinelMismatch)
	}

	return nil
}
