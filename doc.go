// Package malg is a small dense linear-algebra toolkit built around one type:
// a generic 2-D matrix stored in a single contiguous pool.
//
// 🚀 What is in malg?
//
//	• matrix/          : Matrix[T] over any integer, float or complex type:
//	                     construction, deep copy, ownership transfer (Move),
//	                     Add / Sub / Mul, scalar product from either side,
//	                     in-place transpose (square and non-square)
//	• matrix allocators: HeapAllocator (default, optional size cap) and
//	                     MmapAllocator (anonymous mappings outside the Go heap)
//	• cmd/malgcheck    : end-to-end scenario runner with a live status board
//
// ✨ Why malg?
//
//   - One allocation per matrix: rows are views into the pool, never separate slices
//   - Non-square transpose reuses the pool; only the row index is rebuilt
//   - Errors are sentinels (errors.Is), never panics, at the public surface
//
// Quick start:
//
//	a, _ := matrix.FromRows([][]int{{0, 1}, {3, 4}})
//	b, _ := matrix.ScaleLeft(2, a) // [[0 2] [6 8]]
//	_ = b.Transpose()              // [[0 6] [2 8]]
//
// See matrix/doc.go and the Example functions for details.
package malg
