// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private storage state.
//
// Purpose:
//   - Expose the row index, pool identity and allocator of a Matrix to matrix_test ONLY.
//   - Lets tests assert the layout invariant rowIndex[i] == i*cols and that the
//     non-square transpose reuses the pool instead of reallocating it.
//
// Build Policy:
//   - Lives in a _test.go file, so it never ships in production builds.

import "unsafe"

// RowIndexOf returns a copy of m's row index.
func RowIndexOf[T Number](m *Matrix[T]) []int {
	return append([]int(nil), m.rowIndex...)
}

// PoolAddr returns the base address of m's pool (0 when empty).
func PoolAddr[T Number](m *Matrix[T]) uintptr {
	if len(m.pool) == 0 {
		return 0
	}

	return uintptr(unsafe.Pointer(unsafe.SliceData(m.pool)))
}

// PoolLen returns len(m.pool).
func PoolLen[T Number](m *Matrix[T]) int { return len(m.pool) }

// AllocatorOf returns the allocator that owns m's pool.
func AllocatorOf[T Number](m *Matrix[T]) Allocator[T] { return m.alloc }

// Allocate_TestOnly forwards to the private Storage Manager entry point.
func Allocate_TestOnly[T Number](a Allocator[T], rows, cols int) ([]T, []int, error) {
	return allocate(a, rows, cols)
}

// CheckedMul_TestOnly forwards to checkedMul.
var CheckedMul_TestOnly = checkedMul

// CycleNext_TestOnly forwards to cycleNext.
var CycleNext_TestOnly = cycleNext

// PanicAllocatorNil_TestOnly exposes the WithAllocator panic message.
const PanicAllocatorNil_TestOnly = panicAllocatorNil
