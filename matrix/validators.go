// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for operand checks.
//  - Keep kernels minimal by delegating nil/shape checks here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap them once more with their operation tag.
//
// Determinism & Performance:
//  - All checks are O(1), pure and allocation-free on the success path.
//
// Note:
//  - Composite validators follow a fixed sequence: NotNil(a) → NotNil(b) → Shape.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures m is non-nil and constructed (not released or moved-from).
// Returns ErrNilMatrix otherwise.
// Complexity: O(1).
func ValidateNotNil[T Number](m *Matrix[T]) error {
	if m.IsEmpty() {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Assumes both are non-nil (caller must ensure).
// Complexity: O(1).
func ValidateSameShape[T Number](a, b *Matrix[T]) error {
	if a.rows != b.rows {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.cols != b.cols {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape – Composite: NotNil(a) → NotNil(b) → SameShape.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ValidateBinarySameShape[T Number](a, b *Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateMulCompatible – Composite: NotNil(a) → NotNil(b) → a.Cols == b.Rows.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ValidateMulCompatible[T Number](a, b *Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.cols != b.rows {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// validateFlat checks a bare row-major buffer against its declared shape.
// Errors: ErrInvalidDimension when rows<=0, cols<=0 or len(data) != rows*cols.
func validateFlat(n, rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return validatorErrorf("validateFlat", ErrInvalidDimension)
	}
	if want, ok := checkedMul(rows, cols); !ok || want != n {
		return validatorErrorf("validateFlat", ErrInvalidDimension)
	}

	return nil
}
