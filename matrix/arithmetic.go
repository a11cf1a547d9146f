// SPDX-License-Identifier: MIT
// Package matrix - Arithmetic Engine: elementwise sum/difference, matrix product,
// scalar product in both operand orders.
//
// Purpose:
//   - Every kernel validates through validators.go, allocates ONE result through the
//     left operand's allocator and never mutates its inputs.
//   - Failures happen before any write, so operands are untouched on error.
//
// Determinism:
//   - Fixed loop orders: flat 0..n-1 for elementwise kernels, i→j→k for Mul.

package matrix

// newLike allocates a zeroed rows×cols result from the allocator of src.
func newLike[T Number](src *Matrix[T], rows, cols int) (*Matrix[T], error) {
	return newWithAllocator(src.alloc, rows, cols)
}

// addSub computes out = a + b (sub=false) or out = a - b (sub=true).
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b); allocate the result.
//   - Stage 2: single flat loop over both pools (same shape ⇒ same layout).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrAllocationFailure; all wrapped with opTag.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the result.
func addSub[T Number](a, b *Matrix[T], sub bool, opTag string) (*Matrix[T], error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	res, err := newLike(a, a.rows, a.cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// The branch is hoisted out of the loop; both bodies are a plain flat walk.
	if sub {
		for idx := range res.pool {
			res.pool[idx] = a.pool[idx] - b.pool[idx]
		}
	} else {
		for idx := range res.pool {
			res.pool[idx] = a.pool[idx] + b.pool[idx]
		}
	}

	return res, nil
}

// Add computes the elementwise sum C = A + B into a fresh matrix.
//
// Errors:
//   - ErrNilMatrix (nil/empty operand), ErrDimensionMismatch (shape mismatch),
//     ErrAllocationFailure.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add[T Number](a, b *Matrix[T]) (*Matrix[T], error) { return addSub(a, b, false, opAdd) }

// Sub computes the elementwise difference C = A - B into a fresh matrix.
// Same contract as Add.
func Sub[T Number](a, b *Matrix[T]) (*Matrix[T], error) { return addSub(a, b, true, opSub) }

// Mul performs the matrix product C = A × B.
// Implementation:
//   - Stage 1: ValidateMulCompatible (A.Cols == B.Rows); allocate C as A.Rows × B.Cols.
//   - Stage 2: for every (i,j) accumulate Σ_k A[i,k]*B[k,j], starting from the
//     zero value of T, with loop order i→j→k.
//
// Inputs:
//   - A: r × n, B: n × c.
//
// Returns:
//   - new r × c matrix drawn from A's allocator.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (inner mismatch), ErrAllocationFailure.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
//
// Notes:
//   - The k-loop walks B down a column; i→k→j would be kinder to the
//     cache but produces the same sums, so the documented order is kept.
func Mul[T Number](a, b *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	res, err := newLike(a, a.rows, b.cols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, k    int
		rowA, rowR int // row-start offsets in A and C
		acc, zero  T
	)
	inner := a.cols
	for i = 0; i < a.rows; i++ {
		rowA = a.rowIndex[i]
		rowR = res.rowIndex[i]
		for j = 0; j < b.cols; j++ {
			acc = zero // additive identity of T
			for k = 0; k < inner; k++ {
				acc += a.pool[rowA+k] * b.pool[b.rowIndex[k]+j]
			}
			res.pool[rowR+j] = acc
		}
	}

	return res, nil
}

// Scale returns C = A * s, i.e. C[i,j] = A[i,j] * s.
// Errors: ErrNilMatrix, ErrAllocationFailure.
// Complexity: Time O(r*c), Space O(r*c).
func Scale[T Number](m *Matrix[T], s T) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res, err := newLike(m, m.rows, m.cols)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	for idx, v := range m.pool {
		res.pool[idx] = v * s
	}

	return res, nil
}

// ScaleLeft returns C = s * A, i.e. C[i,j] = s * A[i,j].
// Multiplication commutes for every Number type, so the result always equals
// Scale(m, s); both orders exist so callers can mirror the expression they mean.
// Errors: ErrNilMatrix, ErrAllocationFailure.
// Complexity: Time O(r*c), Space O(r*c).
func ScaleLeft[T Number](s T, m *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res, err := newLike(m, m.rows, m.cols)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	for idx, v := range m.pool {
		res.pool[idx] = s * v
	}

	return res, nil
}
