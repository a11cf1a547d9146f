// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, intention-revealing entry points over the canonical kernels.
//   - Avoid logic duplication: each facade delegates or composes.
//
// Determinism & Policy:
//   - Facades never change the loop orders of the underlying kernels.
//   - Results are always fresh matrices; inputs are never mutated.

package matrix

// ---------- Constructors ----------

// NewZeros returns a rows×cols matrix of zero values.
// Thin alias of New with an intention-revealing name.
func NewZeros[T Number](rows, cols int, opts ...Option[T]) (*Matrix[T], error) {
	return New(rows, cols, opts...)
}

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
// Complexity: O(n²) zeroing + O(n) diagonal writes.
func NewIdentity[T Number](n int, opts ...Option[T]) (*Matrix[T], error) {
	id, err := New(n, n, opts...)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	var zero T
	for i := range id.pool {
		id.pool[i] = zero // WithFill may have seeded non-zero cells
	}
	for i := 0; i < n; i++ {
		id.pool[id.rowIndex[i]+i] = 1
	}

	return id, nil
}

// ---------- Arithmetic aliases ----------

// Sum is an alias for Add: elementwise a + b.
func Sum[T Number](a, b *Matrix[T]) (*Matrix[T], error) { return Add(a, b) }

// Diff is an alias for Sub: elementwise a − b.
func Diff[T Number](a, b *Matrix[T]) (*Matrix[T], error) { return Sub(a, b) }

// Product is an alias for Mul: matrix product a × b.
func Product[T Number](a, b *Matrix[T]) (*Matrix[T], error) { return Mul(a, b) }

// ScaleBy is an alias for Scale: m * s.
func ScaleBy[T Number](m *Matrix[T], s T) (*Matrix[T], error) { return Scale(m, s) }

// ---------- Compositions ----------

// MulScaled returns (a × b) * s. Deterministic composition: Mul → Scale.
// Errors are those of Mul and Scale, tagged with MulScaled.
// Complexity: O(r*n*c + r*c).
func MulScaled[T Number](a, b *Matrix[T], s T) (*Matrix[T], error) {
	prod, err := Mul(a, b)
	if err != nil {
		return nil, matrixErrorf(opMulScaled, err)
	}
	out, err := Scale(prod, s)
	_ = prod.Release() // intermediate product is no longer needed
	if err != nil {
		return nil, matrixErrorf(opMulScaled, err)
	}

	return out, nil
}

// Transposed returns mᵀ as a new matrix and leaves m untouched.
// Composition: Clone → in-place Transpose on the clone.
// Complexity: O(r*c).
func Transposed[T Number](m *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	out, err := m.Clone()
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	if err = out.Transpose(); err != nil {
		return nil, err
	}

	return out, nil
}

// Equal reports whether a and b have the same shape and identical cells.
// Two empty matrices are equal. Values are compared with ==, so NaN ≠ NaN.
// Complexity: O(r*c) worst case, early exit on the first difference.
func Equal[T Number](a, b *Matrix[T]) bool {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}
	if a.IsEmpty() || b.IsEmpty() {
		return a.IsEmpty() == b.IsEmpty()
	}
	for idx, v := range a.pool {
		if b.pool[idx] != v {
			return false
		}
	}

	return true
}
