// SPDX-License-Identifier: MIT

// Package matrix offers a generic dense 2-D container over one contiguous pool.
//
// The matrix package provides:
//
//   - Matrix[T] for any Number element type (integers, floats, complex), stored
//     row-major in a single pool with a derived row index.
//   - Construction from a shape (New, WithFill) or a row literal (FromRows).
//   - Deep copy (Clone, CopyFrom) and ownership transfer (Move, MoveFrom, Release).
//   - Add, Sub, Mul, Scale and ScaleLeft, each returning a fresh matrix.
//   - In-place Transpose, including the permutation-cycle rebuild for non-square
//     shapes that reuses the pool, plus TransposeInPlace for bare flat buffers.
//   - Pluggable pool allocators: HeapAllocator (default) and MmapAllocator.
//
// Errors are sentinel values (ErrInvalidDimension, ErrAllocationFailure,
// ErrDimensionMismatch, ErrIndexOutOfRange, ErrNilMatrix) wrapped with the
// operation name; match them with errors.Is.
//
// A Matrix is not safe for concurrent mutation; callers serialize access to a
// single instance. Distinct instances never share a pool.
//
// See the examples in this package for usage patterns.
package matrix
