// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Carry the sentinel with the data so every consumer agrees on "no edge".
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone/Equal: O(r*c).

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxFill     = "Fill"
	ctxFromRows = "FromRows"
	ctxNewDense = "NewDense"
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
	_fmtInf      = "∞"
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix of int64 weights.
//   - r,c hold dimensions (rows, cols), both > 0.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - inf is the sentinel meaning "no edge / unreachable".
type Dense struct {
	r, c int
	inf  int64
	data []int64
}

var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix.
//
// Errors:
//   - ErrInvalidDimensions when rows <= 0 or cols <= 0.
//
// Complexity: Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxNewDense, rows, cols, ErrInvalidDimensions)
	}
	o := gatherOptions(opts...)

	return &Dense{r: rows, c: cols, inf: o.sentinel, data: make([]int64, rows*cols)}, nil
}

// NewFilled creates an r×c matrix with every cell set to v.
// v is validated against the sentinel like Set does.
func NewFilled(rows, cols int, v int64, opts ...Option) (*Dense, error) {
	m, err := NewDense(rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	if v > m.inf {
		return nil, fmt.Errorf("NewFilled: %d > sentinel %d: %w", v, m.inf, ErrInvalidWeight)
	}
	for i := range m.data {
		m.data[i] = v
	}

	return m, nil
}

// NewDistance creates the n×n "empty graph" distance matrix:
// 0 on the diagonal, sentinel everywhere else.
func NewDistance(n int, opts ...Option) (*Dense, error) {
	m, err := NewDense(n, n, opts...)
	if err != nil {
		return nil, err
	}
	var i, j, base int
	for i = 0; i < n; i++ {
		base = i * n
		for j = 0; j < n; j++ {
			if i != j {
				m.data[base+j] = m.inf
			}
		}
	}

	return m, nil
}

// NewIdentity returns the n×n min-plus identity I (0 on the diagonal,
// sentinel elsewhere), so that A ⊗ I == A for any n-column A.
// It is NewDistance under an algebra-oriented name.
func NewIdentity(n int, opts ...Option) (*Dense, error) { return NewDistance(n, opts...) }

// FromRows builds a Dense from row-wise data, copying it.
//
// Errors:
//   - ErrInvalidDimensions for no rows or empty first row.
//   - ErrBadShape when a row's length differs from the first row.
//   - ErrInvalidWeight when a value exceeds the sentinel.
func FromRows(rows [][]int64, opts ...Option) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf(ctxFromRows, ErrInvalidDimensions)
	}
	m, err := NewDense(len(rows), len(rows[0]), opts...)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != m.c {
			return nil, fmt.Errorf("%s: row %d has %d cols, want %d: %w",
				ctxFromRows, i, len(row), m.c, ErrBadShape)
		}
		for j, v := range row {
			if v > m.inf {
				return nil, denseErrorf(ctxFromRows, i, j, ErrInvalidWeight)
			}
			m.data[i*m.c+j] = v
		}
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// Shape returns (rows, cols).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// Sentinel returns the matrix "no edge" value.
func (m *Dense) Sentinel() int64 { return m.inf }

// IsSquare reports whether Rows == Cols.
func (m *Dense) IsSquare() bool { return m.r == m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
func (m *Dense) At(row, col int) (int64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col).
//
// Errors:
//   - ErrOutOfRange for bounds.
//   - ErrInvalidWeight when v exceeds the sentinel.
func (m *Dense) Set(row, col int, v int64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if v > m.inf {
		return denseErrorf(ctxSet, row, col, ErrInvalidWeight)
	}
	m.data[off] = v

	return nil
}

// SetInf marks (row, col) as "no edge".
func (m *Dense) SetInf(row, col int) error { return m.Set(row, col, m.inf) }

// Fill overwrites the whole buffer from row-major data of length r*c.
func (m *Dense) Fill(data []int64) error {
	if len(data) != len(m.data) {
		return fmt.Errorf("%s: len=%d, want %d: %w", ctxFill, len(data), len(m.data), ErrDimensionMismatch)
	}
	for k, v := range data {
		if v > m.inf {
			return denseErrorf(ctxFill, k/m.c, k%m.c, ErrInvalidWeight)
		}
	}
	copy(m.data, data)

	return nil
}

// RawData returns the backing row-major buffer without copying.
// Writes through it must keep every value <= Sentinel().
func (m *Dense) RawData() []int64 { return m.data }

// Row returns a copy of row i.
func (m *Dense) Row(i int) ([]int64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf("Row", i, 0, ErrOutOfRange)
	}
	out := make([]int64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// ToRows returns a row-wise deep copy.
func (m *Dense) ToRows() [][]int64 {
	out := make([][]int64, m.r)
	for i := range out {
		out[i] = make([]int64, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// Clone returns a deep copy with the same shape and sentinel.
func (m *Dense) Clone() *Dense {
	cp := make([]int64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, inf: m.inf, data: cp}
}

// Equal reports whether o has the same shape, sentinel and cells as m.
func (m *Dense) Equal(o *Dense) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c || m.inf != o.inf {
		return false
	}
	for k, v := range m.data {
		if o.data[k] != v {
			return false
		}
	}

	return true
}

// FiniteCount returns the number of cells that are not the sentinel.
func (m *Dense) FiniteCount() int {
	n := 0
	for _, v := range m.data {
		if v < m.inf {
			n++
		}
	}

	return n
}

// String renders rows as "[a, b, ∞]" lines for diagnostics.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if v := m.data[base+j]; v >= m.inf {
				b.WriteString(_fmtInf)
			} else {
				b.WriteString(strconv.FormatInt(v, 10))
			}
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
