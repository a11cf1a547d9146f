// SPDX-License-Identifier: MIT

// Package matrix - Transpose Engine: in-place transpose without a second pool.
//
// Square matrices swap across the diagonal. Non-square matrices are permuted by
// following cycles of the position map over the flat row-major buffer:
//
//	N = rows*cols, last = N-1
//	element at linear index a (0 < a < last) moves to (rows*a) mod last
//
// Index 0 and index last are fixed points. Each cycle is walked once, carrying a
// single displaced value forward; a visited bitset stops later starts from
// re-walking a cycle that is already in place. After the permutation the shape
// is swapped and only the row index is rebuilt; the pool is reused as is.
//
// Complexity:
//   - Square:     Time O(n²),  extra Space O(1).
//   - Non-square: Time O(r*c), extra Space O(r*c) bits for the visited set.

package matrix

import "math/bits"

// bitsPerWord is the width of one visited-set word.
const bitsPerWord = 64

// Transpose replaces m with its transpose, in place.
// Implementation:
//   - Stage 1: ValidateNotNil(m).
//   - Stage 2: rows==cols → swap (i,j) with (j,i) for j>i; shape unchanged.
//   - Stage 3: rows!=cols → cycle-permute the pool, swap rows/cols, rebuild rowIndex.
//
// Errors:
//   - ErrNilMatrix for a nil or empty matrix. A constructed matrix never fails:
//     no pool is allocated, so allocation failure is impossible.
//
// Notes:
//   - Row views taken before transposing a non-square matrix keep the old stride;
//     take fresh views afterwards.
func (m *Matrix[T]) Transpose() error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opTranspose, err)
	}
	if m.rows == m.cols {
		transposeSquare(m.pool, m.rows)
		return nil
	}

	transposeCycles(m.pool, m.rows)
	m.rows, m.cols = m.cols, m.rows
	m.reindex()

	return nil
}

// TransposeInPlace transposes a bare row-major rows×cols buffer in place.
// After it returns, data holds the cols×rows transpose in row-major order.
// It is the same kernel Matrix.Transpose uses, exposed for flat buffers owned elsewhere.
//
// Errors:
//   - ErrInvalidDimension when rows<=0, cols<=0 or len(data) != rows*cols.
func TransposeInPlace[T any](data []T, rows, cols int) error {
	if err := validateFlat(len(data), rows, cols); err != nil {
		return matrixErrorf(opKernel, err)
	}
	if rows == cols {
		transposeSquare(data, rows)
		return nil
	}
	transposeCycles(data, rows)

	return nil
}

// transposeSquare swaps every strictly-upper element with its mirror.
func transposeSquare[T any](data []T, n int) {
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			data[i*n+j], data[j*n+i] = data[j*n+i], data[i*n+j]
		}
	}
}

// transposeCycles permutes a rows×(len/rows) row-major buffer into its transpose.
// Starts run over 1..last-1; with N <= 2 there is nothing but fixed points and
// the loop body never executes, which also keeps `mod last` away from zero.
func transposeCycles[T any](data []T, rows int) {
	n := len(data)
	last := n - 1
	if last < 2 {
		return
	}

	visited := make([]uint64, (n+bitsPerWord-1)/bitsPerWord)
	var start, a int
	var carried T
	for start = 1; start < last; start++ {
		if visited[start/bitsPerWord]&(1<<(uint(start)%bitsPerWord)) != 0 {
			continue // already placed by an earlier cycle
		}
		carried = data[start]
		a = start
		for {
			a = cycleNext(a, rows, last)
			data[a], carried = carried, data[a]
			visited[a/bitsPerWord] |= 1 << (uint(a) % bitsPerWord)
			if a == start {
				break
			}
		}
	}
}

// cycleNext returns (rows*a) mod last without overflowing int for large pools.
func cycleNext(a, rows, last int) int {
	hi, lo := bits.Mul64(uint64(a), uint64(rows))
	_, rem := bits.Div64(hi, lo, uint64(last)) // hi < last since a < last

	return int(rem)
}
