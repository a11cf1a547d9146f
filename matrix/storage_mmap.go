// SPDX-License-Identifier: MIT

// Package matrix - memory-mapped pool allocator.
//
// MmapAllocator places value pools in anonymous memory mappings obtained from
// github.com/edsrzf/mmap-go. Pools live outside the Go heap, are zero-filled by
// the kernel and are returned to the OS as soon as the owning Matrix is released.
//
// Safety:
//   - Number contains no pointer types, so reinterpreting mapped bytes as []T is sound.
//   - Row views taken from a Matrix must not outlive its Release: the pages are unmapped.

package matrix

import (
	"errors"
	"fmt"
	"sync"
	"unsafe"

	"github.com/edsrzf/mmap-go"
)

// errForeignPool is returned by MmapAllocator.Free for a pool it did not map.
var errForeignPool = errors.New("matrix: pool was not produced by this allocator")

// MmapAllocator allocates pools in anonymous memory mappings.
// The zero value is not usable; construct with NewMmapAllocator.
// One allocator may serve many matrices; its region table is mutex-guarded.
type MmapAllocator[T Number] struct {
	mu      sync.Mutex
	regions map[unsafe.Pointer]mmap.MMap // base address → mapping
}

// NewMmapAllocator returns an empty allocator.
func NewMmapAllocator[T Number]() *MmapAllocator[T] {
	return &MmapAllocator[T]{regions: make(map[unsafe.Pointer]mmap.MMap)}
}

// Alloc maps n*sizeof(T) bytes and returns them as a zeroed []T of length n.
// Implementation:
//   - Stage 1: reject n<=0; compute the byte length without overflow.
//   - Stage 2: mmap.MapRegion(nil, size, RDWR, ANON, 0).
//   - Stage 3: reinterpret the mapping as []T and remember it by base address.
//
// Errors:
//   - ErrInvalidDimension for n<=0; ErrAllocationFailure wrapping the mapping error.
//
// Complexity: Time O(1) + kernel mapping cost (pages are faulted lazily).
func (a *MmapAllocator[T]) Alloc(n int) ([]T, error) {
	if n <= 0 {
		return nil, ErrInvalidDimension
	}
	var zero T
	size, ok := checkedMul(n, int(unsafe.Sizeof(zero)))
	if !ok {
		return nil, fmt.Errorf("%w: %d elements overflow the mapping size", ErrAllocationFailure, n)
	}

	region, err := mmap.MapRegion(nil, size, mmap.RDWR, mmap.ANON, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: mmap %d bytes: %v", ErrAllocationFailure, size, err)
	}
	base := unsafe.Pointer(&region[0])

	a.mu.Lock()
	a.regions[base] = region
	a.mu.Unlock()

	return unsafe.Slice((*T)(base), n), nil
}

// Free unmaps a pool previously returned by Alloc. Free(nil) is a no-op.
// Errors:
//   - errForeignPool when the pool was not mapped by this allocator (nothing is unmapped).
//   - The unmap error reported by the OS.
func (a *MmapAllocator[T]) Free(pool []T) error {
	if len(pool) == 0 {
		return nil
	}
	base := unsafe.Pointer(unsafe.SliceData(pool))

	a.mu.Lock()
	region, ok := a.regions[base]
	if ok {
		delete(a.regions, base)
	}
	a.mu.Unlock()

	if !ok {
		return errForeignPool
	}

	return region.Unmap()
}

// Live reports how many pools are currently mapped.
// Useful to assert that released matrices really gave their memory back.
func (a *MmapAllocator[T]) Live() int {
	a.mu.Lock()
	defer a.mu.Unlock()

	return len(a.regions)
}
