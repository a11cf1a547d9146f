// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for constructors.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults,
//   - WithX constructors (panic only on nonsensical values),
//   - gatherOptions helper (internal) that applies defaults and user setters.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public constructors consume ...Option[T].
package matrix

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicAllocatorNil = "matrix: WithAllocator: allocator must be non-nil"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options for a Matrix[T] constructor.
// Safe to apply repeatedly; the last setter for a field wins.
type Option[T Number] func(*Options[T])

// Options stores the effective constructor configuration after applying setters.
type Options[T Number] struct {
	fill  T            // initial value of every cell; zero value of T by default
	alloc Allocator[T] // pool provider; HeapAllocator[T]{} by default
}

// WithFill sets the value every cell is initialized to by New.
// Without it cells start at the zero value of T.
// FromRows ignores the fill value since every cell is copied from the literal.
//
// Complexity: Time O(1), Space O(1).
func WithFill[T Number](v T) Option[T] {
	return func(o *Options[T]) { o.fill = v }
}

// WithAllocator selects the allocator that provides the value pool.
// Implementation:
//   - Stage 1: reject a nil allocator (programmer error → panic).
//   - Stage 2: return a setter that stores it.
//
// Notes:
//   - Matrices produced by arithmetic inherit the allocator of their left operand,
//     so choosing an MmapAllocator once keeps a whole pipeline off the Go heap.
func WithAllocator[T Number](a Allocator[T]) Option[T] {
	if a == nil {
		panic(panicAllocatorNil)
	}

	return func(o *Options[T]) { o.alloc = a }
}

// defaultOptions returns the zero-configuration Options.
func defaultOptions[T Number]() Options[T] {
	var zero T

	return Options[T]{
		fill:  zero,
		alloc: HeapAllocator[T]{},
	}
}

// gatherOptions applies user setters on top of defaults, in order.
// Complexity: O(len(user)).
func gatherOptions[T Number](user ...Option[T]) Options[T] {
	o := defaultOptions[T]()
	for _, set := range user {
		if set != nil { // tolerate nil entries from conditional option lists
			set(&o)
		}
	}

	return o
}
