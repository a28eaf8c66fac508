// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Keep a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep determinism: fixed loop orders, no map iteration.

package matrix

import (
	"fmt"
	"strings"
)

// error context tags
const (
	ctxAt  = "At"
	ctxSet = "Set"
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major int64 matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int
	data []int64
}

var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix.
// Returns ErrInvalidDimensions if rows<=0 or cols<=0.
// Complexity: O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]int64, rows*cols)}, nil
}

// NewDenseFrom deep-copies a rectangular [][]int64 into a new Dense.
// Returns ErrEmpty if values has no rows or no columns, ErrNonRectangular if
// any row length differs from the first one.
// Complexity: O(r*c).
func NewDenseFrom(values [][]int64) (*Dense, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmpty
	}
	rows, cols := len(values), len(values[0])
	for i, row := range values {
		if len(row) != cols {
			return nil, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(row), cols, ErrNonRectangular)
		}
	}
	m := &Dense{r: rows, c: cols, data: make([]int64, rows*cols)}
	for i, row := range values {
		copy(m.data[i*cols:(i+1)*cols], row)
	}

	return m, nil
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
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
// Complexity: O(1).
func (m *Dense) At(row, col int) (int64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v int64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// RawRowView returns row i as a slice sharing the underlying buffer.
// Mutations through the slice are visible in m. It panics if i is out of
// range, like indexing a slice; hot loops that already know their bounds use
// it instead of At.
// Complexity: O(1).
func (m *Dense) RawRowView(i int) []int64 {
	if i < 0 || i >= m.r {
		panic(denseErrorf("RawRowView", i, 0, ErrOutOfRange))
	}

	return m.data[i*m.c : (i+1)*m.c : (i+1)*m.c]
}

// Clone returns an independent deep copy.
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	cp := &Dense{r: m.r, c: m.c, data: make([]int64, len(m.data))}
	copy(cp.data, m.data)

	return cp
}

// AppendZeroRow returns a copy of m with one extra zero-filled row at the bottom.
// m itself is left untouched.
// Complexity: O(r*c).
func (m *Dense) AppendZeroRow() *Dense {
	out := &Dense{r: m.r + 1, c: m.c, data: make([]int64, (m.r+1)*m.c)}
	copy(out.data, m.data)

	return out
}

// AppendZeroCol returns a copy of m with one extra zero-filled column on the right.
// m itself is left untouched.
// Complexity: O(r*c).
func (m *Dense) AppendZeroCol() *Dense {
	nc := m.c + 1
	out := &Dense{r: m.r, c: nc, data: make([]int64, m.r*nc)}
	for i := 0; i < m.r; i++ {
		copy(out.data[i*nc:i*nc+m.c], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// ToRows materializes the matrix as a fresh [][]int64.
// Complexity: O(r*c).
func (m *Dense) ToRows() [][]int64 {
	out := make([][]int64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = make([]int64, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// String renders rows as "[a, b, c]\n" lines.
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString("[")
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%d", m.data[i*m.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
