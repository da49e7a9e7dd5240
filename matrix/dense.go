// SPDX-License-Identifier: MIT
// Package: variations/matrix
//
// dense.go — Dense[E]: row-major table of numeric elements in a flat slice.

package matrix

import (
	"fmt"
	"strings"
)

// Element is the set of numeric types a Dense may hold.
type Element interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense[E Element] struct {
	r, c int // number of rows and columns
	data []E // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Complexity: O(r*c) time and memory.
func NewDense[E Element](rows, cols int) (*Dense[E], error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return &Dense[E]{r: rows, c: cols, data: make([]E, rows*cols)}, nil
}

// NewSquareFunc creates an n×n matrix with cell (i,j) = fn(i,j), filled in
// row-major order (i outer, j inner).
// Complexity: O(n²) calls to fn, O(n²) memory.
func NewSquareFunc[E Element](n int, fn func(i, j int) E) (*Dense[E], error) {
	m, err := NewDense[E](n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		row := m.data[i*n : (i+1)*n]
		for j := range row {
			row[j] = fn(i, j)
		}
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense[E]) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense[E]) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[E]) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense[E]) At(row, col int) (E, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		var zero E
		return zero, err
	}

	return m.data[idx], nil
}

// String implements fmt.Stringer, one bracketed row per line.
// Complexity: O(r*c).
func (m *Dense[E]) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%v", m.data[i*m.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
