// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Every operation returns one of these sentinels (possibly wrapped with
// an operation tag) and tests match them via errors.Is. No operation panics on
// user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." so the origin is obvious in logs.
// Sentinels are returned wrapped with the operation tag ("Add: matrix: ...") or
// with accessor coordinates ("Matrix.At(3,0): matrix: ..."); errors.Is still
// matches the sentinel through %w.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil/empty operand -> dimension (construction) -> dimension mismatch -> index -> allocation.

var (
	// ErrInvalidDimension is returned when a matrix is requested with rows<=0 or cols<=0,
	// or when a flat buffer does not match the declared rows*cols.
	ErrInvalidDimension = errors.New("matrix: dimensions must be > 0")

	// ErrAllocationFailure is returned when the allocator cannot provide the value pool
	// (limit exceeded, size overflow, mapping failure). No partial allocation survives.
	ErrAllocationFailure = errors.New("matrix: allocation failure")

	// ErrDimensionMismatch indicates incompatible shapes between operands:
	// Add/Sub with different shapes, Mul where a.Cols != b.Rows, CopyFrom across shapes,
	// or a ragged row literal.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrIndexOutOfRange indicates a row (or column) index outside [0, Rows()) / [0, Cols()).
	ErrIndexOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates a nil *Matrix or an empty (released / moved-from) instance
	// was used where a constructed matrix is required.
	ErrNilMatrix = errors.New("matrix: nil or empty matrix")
)

// Operation name constants for unified error wrapping (no magic strings).
const (
	opNew       = "New"
	opFromRows  = "FromRows"
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opScale     = "Scale"
	opTranspose = "Transpose"
	opKernel    = "TransposeInPlace"
	opCopyFrom  = "CopyFrom"
	opMoveFrom  = "MoveFrom"
	opRelease   = "Release"
	opMulScaled = "MulScaled"
	opIdentity  = "NewIdentity"
)

// Accessor tags used by accessErrorf.
const (
	ctxRow = "Row"
	ctxAt  = "At"
	ctxSet = "Set"
)

// matrixErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Use only when err != nil; wrapping nil would produce a non-nil error.
// Complexity: O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// accessErrorf wraps an accessor error with method name and coordinates,
// e.g. "Matrix.At(3,0): matrix: index out of range".
func accessErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}
