// SPDX-License-Identifier: MIT

// Package matrix - construction, copy, move and release.
//
// Purpose:
//   - Build matrices from a shape (+ fill) or from a row-major literal.
//   - Deep copy (Clone / CopyFrom) and ownership transfer (Move / MoveFrom).
//   - Release the pool explicitly; every path is safe on an empty instance.
//
// Ownership rules:
//   - A pool belongs to exactly one Matrix. Copies allocate; moves transfer.
//   - After Move/MoveFrom the source is empty: Rows()==Cols()==0, no pool.
//   - Release on an empty matrix is a no-op, so "destroying" a moved-from
//     instance is always safe.

package matrix

// newWithAllocator allocates an r×c matrix from alloc with zeroed cells.
func newWithAllocator[T Number](alloc Allocator[T], rows, cols int) (*Matrix[T], error) {
	pool, rowIndex, err := allocate(alloc, rows, cols)
	if err != nil {
		return nil, err
	}

	return &Matrix[T]{
		rows:     rows,
		cols:     cols,
		pool:     pool,
		rowIndex: rowIndex,
		alloc:    alloc,
	}, nil
}

// New creates a rows×cols matrix.
// Implementation:
//   - Stage 1: resolve options (fill value, allocator).
//   - Stage 2: allocate pool + row index through the Storage Manager.
//   - Stage 3: write the fill value into every cell unless it is the zero value
//     (allocators already hand out zeroed pools).
//
// Inputs:
//   - rows, cols: both must be >= 1.
//   - opts: WithFill(v), WithAllocator(a).
//
// Errors:
//   - ErrInvalidDimension (rows<=0 or cols<=0).
//   - ErrAllocationFailure (allocator refused; nothing is leaked).
//
// Complexity:
//   - Time O(rows*cols), Space O(rows*cols).
func New[T Number](rows, cols int, opts ...Option[T]) (*Matrix[T], error) {
	o := gatherOptions(opts...)
	m, err := newWithAllocator(o.alloc, rows, cols)
	if err != nil {
		return nil, matrixErrorf(opNew, err)
	}

	var zero T
	if o.fill != zero {
		for i := range m.pool {
			m.pool[i] = o.fill
		}
	}

	return m, nil
}

// FromRows creates a matrix by copying a row-major literal.
//
//	m, _ := matrix.FromRows([][]int{
//		{0, 1},
//		{3, 4},
//	})
//
// Errors:
//   - ErrInvalidDimension when there are no rows or the first row is empty.
//   - ErrDimensionMismatch when rows have different lengths (checked before allocating).
//   - ErrAllocationFailure from the allocator.
//
// Complexity: Time O(r*c), Space O(r*c).
func FromRows[T Number](rows [][]T, opts ...Option[T]) (*Matrix[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf(opFromRows, ErrInvalidDimension)
	}
	cols := len(rows[0])
	for i := 1; i < len(rows); i++ {
		if len(rows[i]) != cols {
			return nil, matrixErrorf(opFromRows, ErrDimensionMismatch)
		}
	}

	o := gatherOptions(opts...)
	m, err := newWithAllocator(o.alloc, len(rows), cols)
	if err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}
	for i, r := range rows {
		copy(m.pool[m.rowIndex[i]:], r)
	}

	return m, nil
}

// Clone returns a deep copy drawn from the same allocator.
// Cloning an empty matrix yields another empty matrix.
//
// Errors:
//   - ErrAllocationFailure when the allocator cannot provide the copy.
//
// Complexity: Time O(r*c), Space O(r*c).
func (m *Matrix[T]) Clone() (*Matrix[T], error) {
	if m.IsEmpty() {
		return &Matrix[T]{}, nil
	}
	out, err := newWithAllocator(m.alloc, m.rows, m.cols)
	if err != nil {
		return nil, err
	}
	copy(out.pool, m.pool)

	return out, nil
}

// CopyFrom overwrites every cell of m with the corresponding cell of src.
// Assignment never resizes: shapes must already match.
//
// Errors:
//   - ErrNilMatrix when m or src is nil.
//   - ErrDimensionMismatch when the shapes differ (m is left untouched).
//
// Complexity: Time O(r*c), Space O(1).
func (m *Matrix[T]) CopyFrom(src *Matrix[T]) error {
	if m == nil || src == nil {
		return matrixErrorf(opCopyFrom, ErrNilMatrix)
	}
	if m == src {
		return nil
	}
	if m.rows != src.rows || m.cols != src.cols {
		return matrixErrorf(opCopyFrom, ErrDimensionMismatch)
	}
	copy(m.pool, src.pool)

	return nil
}

// Move transfers the pool into a new Matrix and leaves m empty.
// No element is copied. Moving a nil or empty matrix returns an empty matrix.
// Complexity: O(1).
func (m *Matrix[T]) Move() *Matrix[T] {
	out := &Matrix[T]{}
	if m == nil {
		return out
	}
	*out = *m
	*m = Matrix[T]{}

	return out
}

// MoveFrom makes m the owner of src's pool and leaves src empty.
// Implementation:
//   - Stage 1: swap the complete state of m and src.
//   - Stage 2: release what src now holds (m's previous pool).
//
// The net effect is a steal-and-reset: m holds src's former data, src is empty.
// Self-move is a no-op.
//
// Errors:
//   - ErrNilMatrix when m or src is nil.
//   - Allocator errors from releasing m's previous pool (ownership has moved regardless).
//
// Complexity: O(1) + allocator Free cost.
func (m *Matrix[T]) MoveFrom(src *Matrix[T]) error {
	if m == nil || src == nil {
		return matrixErrorf(opMoveFrom, ErrNilMatrix)
	}
	if m == src {
		return nil
	}
	*m, *src = *src, *m
	if err := src.release(); err != nil {
		return matrixErrorf(opMoveFrom, err)
	}

	return nil
}

// Release returns the pool to its allocator and empties m.
// Safe on nil, empty and moved-from matrices; calling it twice is harmless.
// Row views obtained earlier must not be used afterwards.
func (m *Matrix[T]) Release() error {
	if m == nil {
		return nil
	}
	if err := m.release(); err != nil {
		return matrixErrorf(opRelease, err)
	}

	return nil
}

// IsEmpty reports whether m holds no pool (nil, zero value, released or moved-from).
func (m *Matrix[T]) IsEmpty() bool { return m == nil || m.pool == nil }
