// SPDX-License-Identifier: MIT

// Package matrix - Storage Manager: pool allocation, row index, release.
//
// Purpose:
//   - Own the single contiguous value pool of a Matrix and its derived row index.
//   - Keep allocation failures clean: nothing partially allocated survives an error.
//   - Make release idempotent so empty (moved-from) instances are always safe.
//
// Layout contract:
//   - pool is row-major with len == rows*cols.
//   - rowIndex[i] == i*cols, rebuilt by reindex whenever (rows, cols) change.
//
// Complexity quicksheet:
//   - allocate: O(rows) for the index + allocator cost for the pool.
//   - release: O(1) + allocator cost.
//   - reindex: O(rows).

package matrix

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
)

// Allocator provides and reclaims value pools.
//
// Contract:
//   - Alloc(n) returns a zeroed slice with len == n, or an error wrapping
//     ErrAllocationFailure. It never returns a shorter slice.
//   - Free(pool) reclaims a slice previously returned by Alloc of the same allocator.
//     Free(nil) is a no-op.
//
// Implementations shipped with the package: HeapAllocator (Go heap) and
// MmapAllocator (anonymous memory mapping outside the Go heap).
type Allocator[T Number] interface {
	Alloc(n int) ([]T, error)
	Free(pool []T) error
}

// HeapAllocator allocates pools on the Go heap.
// MaxElements > 0 caps the size of a single pool; requests above it fail with
// ErrAllocationFailure. Zero means unlimited (bounded only by the runtime).
type HeapAllocator[T Number] struct {
	MaxElements int
}

// Alloc returns a zeroed pool of n elements.
// Implementation:
//   - Stage 1: reject n<=0 and n above MaxElements.
//   - Stage 2: make([]T, n); a runtime makeslice panic (length out of range)
//     is recovered and reported as ErrAllocationFailure.
//
// Complexity: Time O(n) zeroing by runtime, Space O(n).
func (h HeapAllocator[T]) Alloc(n int) (pool []T, err error) {
	if n <= 0 {
		return nil, ErrInvalidDimension
	}
	if h.MaxElements > 0 && n > h.MaxElements {
		return nil, fmt.Errorf("%w: %d elements requested, limit %d", ErrAllocationFailure, n, h.MaxElements)
	}
	defer func() {
		if r := recover(); r != nil {
			pool, err = nil, fmt.Errorf("%w: %v", ErrAllocationFailure, r)
		}
	}()

	return make([]T, n), nil
}

// Free is a no-op: heap pools are reclaimed by the garbage collector once the
// owning Matrix drops its reference.
func (HeapAllocator[T]) Free([]T) error { return nil }

// checkedMul returns a*b and false when the product does not fit into int.
// Both operands must be non-negative.
func checkedMul(a, b int) (int, bool) {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	if hi != 0 || lo > math.MaxInt {
		return 0, false
	}

	return int(lo), true
}

// makeRowIndex allocates the row index for `rows` rows, converting a runtime
// makeslice panic into ErrAllocationFailure.
func makeRowIndex(rows int) (idx []int, err error) {
	defer func() {
		if r := recover(); r != nil {
			idx, err = nil, fmt.Errorf("%w: row index: %v", ErrAllocationFailure, r)
		}
	}()

	return make([]int, rows), nil
}

// fillRowIndex writes idx[i] = i*cols for every row.
func fillRowIndex(idx []int, cols int) {
	off := 0
	for i := range idx {
		idx[i] = off
		off += cols // next row starts one stride further
	}
}

// allocate obtains a pool and row index for a rows×cols matrix.
// Implementation:
//   - Stage 1: validate rows>=1 && cols>=1 (ErrInvalidDimension).
//   - Stage 2: compute rows*cols without overflow (ErrAllocationFailure).
//   - Stage 3: allocate the pool first, so allocator limits also bound the
//     row index request; then the row index. If the row index fails, the pool
//     is handed back before returning so no partial structure escapes.
//   - Stage 4: fill the row index.
//
// Returns:
//   - pool (len rows*cols, zeroed) and rowIndex (len rows) on success.
//
// Errors:
//   - ErrInvalidDimension, ErrAllocationFailure (possibly wrapping allocator detail).
//
// Complexity:
//   - Time O(rows) + allocator cost, Space O(rows*cols).
func allocate[T Number](alloc Allocator[T], rows, cols int) ([]T, []int, error) {
	if rows <= 0 || cols <= 0 {
		return nil, nil, ErrInvalidDimension
	}
	n, ok := checkedMul(rows, cols)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %d×%d overflows int", ErrAllocationFailure, rows, cols)
	}

	pool, err := alloc.Alloc(n)
	if err != nil {
		return nil, nil, asAllocationFailure(err)
	}
	if len(pool) != n {
		_ = alloc.Free(pool) // short pool from a misbehaving allocator; hand it back

		return nil, nil, fmt.Errorf("%w: allocator returned %d of %d elements", ErrAllocationFailure, len(pool), n)
	}
	rowIndex, err := makeRowIndex(rows)
	if err != nil {
		_ = alloc.Free(pool)

		return nil, nil, err
	}
	fillRowIndex(rowIndex, cols)

	return pool, rowIndex, nil
}

// asAllocationFailure guarantees allocator errors match ErrAllocationFailure.
func asAllocationFailure(err error) error {
	if errors.Is(err, ErrAllocationFailure) {
		return err
	}

	return fmt.Errorf("%w: %v", ErrAllocationFailure, err)
}

// reindex rebuilds rowIndex for the current (rows, cols).
// The existing backing array is reused when it is large enough; only the index
// is touched, never the pool.
// Complexity: O(rows).
func (m *Matrix[T]) reindex() {
	if cap(m.rowIndex) >= m.rows {
		m.rowIndex = m.rowIndex[:m.rows]
	} else {
		m.rowIndex = make([]int, m.rows)
	}
	fillRowIndex(m.rowIndex, m.cols)
}

// release returns the pool to its allocator, drops the row index and leaves m
// empty. Calling it on an empty matrix is a no-op.
// The matrix is emptied even when the allocator reports an error.
func (m *Matrix[T]) release() error {
	var err error
	if m.pool != nil && m.alloc != nil {
		err = m.alloc.Free(m.pool)
	}
	m.pool = nil     // pool first
	m.rowIndex = nil // then the index
	m.rows, m.cols = 0, 0
	m.alloc = nil

	return err
}
