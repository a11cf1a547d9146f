// SPDX-License-Identifier: MIT

// Package matrix: domain types.
// This file contains ONLY the element constraint and the Matrix container type.
// Storage, access, arithmetic and transpose live in dedicated files
// (storage.go, access.go, arithmetic.go, transpose.go).
package matrix

// Number is the set of element types a Matrix can hold.
// Every member supports +, * and has a zero value that acts as the additive
// identity, which is all the arithmetic engine relies on.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 |
		~complex64 | ~complex128
}

// Matrix is a dense rows×cols container backed by one contiguous row-major pool.
//
// Layout:
//   - pool holds rows*cols values; element (i,j) lives at pool[i*cols+j].
//   - rowIndex[i] == i*cols for every i in [0, rows). It is derived from (rows, cols)
//     and rebuilt whenever the layout changes; it never owns memory of its own.
//   - alloc is the allocator that produced pool. Release hands the pool back to it,
//     and arithmetic results built from this matrix are drawn from it as well.
//
// States:
//   - constructed: rows>=1, cols>=1, len(pool)==rows*cols.
//   - empty: rows==cols==0, pool==nil (zero value, released, or moved-from).
//
// Concurrency:
//   - No internal locking. Concurrent mutation of one instance must be serialized
//     by the caller. Two instances never share a pool.
//
// Complexity notes: Rows/Cols/Row/At/Set are O(1); Clone/Add/Scale are O(r*c);
// Mul is O(r*n*c); Transpose is O(r*c) time with O(r*c) bits of bookkeeping.
type Matrix[T Number] struct {
	rows, cols int          // logical shape; 0,0 when empty
	pool       []T          // contiguous row-major values, len == rows*cols
	rowIndex   []int        // derived row-start offsets into pool
	alloc      Allocator[T] // owner of pool; never nil for a constructed matrix
}
