// SPDX-License-Identifier: MIT

// Package matrix - Element Access: shape queries, row views, bounds-checked cells.
//
// Purpose:
//   - Address rows through the row index and return non-owning views into the pool.
//   - Guarantee safety at the public surface: Row/At/Set return errors instead of panicking.
//
// Complexity quicksheet:
//   - Rows/Cols/Shape/Row/At/Set: O(1); Values/String: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Rows returns the row count (0 for an empty matrix).
func (m *Matrix[T]) Rows() int {
	if m == nil {
		return 0
	}

	return m.rows
}

// Cols returns the column count (0 for an empty matrix).
func (m *Matrix[T]) Cols() int {
	if m == nil {
		return 0
	}

	return m.cols
}

// Shape packs Rows() and Cols() into a single call.
func (m *Matrix[T]) Shape() (rows, cols int) { return m.Rows(), m.Cols() }

// Row returns a view of row i: a slice into the pool of length and capacity
// Cols(). Writes through the view change the matrix; appending to it
// reallocates instead of spilling into the next row.
//
// Errors:
//   - ErrIndexOutOfRange unless 0 <= i < Rows().
//
// Notes:
//   - The view is invalidated by Transpose of a non-square matrix, Move, and Release.
func (m *Matrix[T]) Row(i int) ([]T, error) {
	if m == nil || i < 0 || i >= m.rows {
		return nil, fmt.Errorf("Matrix.%s(%d): %w", ctxRow, i, ErrIndexOutOfRange)
	}
	off := m.rowIndex[i]

	return m.pool[off : off+m.cols : off+m.cols], nil
}

// indexOf bounds-checks (row, col) and returns the pool offset.
func (m *Matrix[T]) indexOf(row, col int) (int, error) {
	if m == nil || row < 0 || row >= m.rows {
		return 0, ErrIndexOutOfRange
	}
	if col < 0 || col >= m.cols {
		return 0, ErrIndexOutOfRange
	}

	return m.rowIndex[row] + col, nil
}

// At returns the value at (row, col) or ErrIndexOutOfRange.
func (m *Matrix[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, accessErrorf(ctxAt, row, col, err)
	}

	return m.pool[off], nil
}

// Set stores v at (row, col) or returns ErrIndexOutOfRange.
func (m *Matrix[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return accessErrorf(ctxSet, row, col, err)
	}
	m.pool[off] = v

	return nil
}

// Values returns a row-major copy of all cells (nil for an empty matrix).
// Complexity: Time O(r*c), Space O(r*c).
func (m *Matrix[T]) Values() []T {
	if m.IsEmpty() {
		return nil
	}
	out := make([]T, len(m.pool))
	copy(out, m.pool)

	return out
}

// String renders one bracketed line per row, values formatted with %v.
// Intended for diagnostics, not hot paths. An empty matrix renders as "".
func (m *Matrix[T]) String() string {
	if m.IsEmpty() {
		return ""
	}
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.rows; i++ {
		b.WriteString(_fmtRowOpen)
		base = m.rowIndex[i]
		for j = 0; j < m.cols; j++ {
			fmt.Fprintf(&b, "%v", m.pool[base+j])
			if j+1 < m.cols {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
