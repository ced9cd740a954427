// SPDX-License-Identifier: MIT
// Package ndarray - Shape value type and row-major stride derivation.
//
// Purpose:
//   - Keep all dimension/stride arithmetic in one place (single source of truth).
//   - Shapes are immutable once attached to a container: Reshape produces a
//     new Shape, never an in-place mutation.

package ndarray

import "fmt"

// Shape is an ordered sequence of non-negative dimension sizes; its length is
// the rank. Two shapes are equal iff they have the same length and the same
// value at every position (order-sensitive). The empty shape denotes a
// rank-0 scalar.
type Shape []int

// Rank returns the number of dimensions. Complexity: O(1).
func (s Shape) Rank() int { return len(s) }

// TotalSize returns the product of all dimensions. The empty product is 1,
// so a rank-0 shape sizes a single scalar element; any zero dimension yields
// 0. Assumes a validated (non-negative) shape. Complexity: O(rank).
func (s Shape) TotalSize() int {
	size := 1
	for _, dim := range s { // fixed order; multiplication is total here
		size *= dim
	}

	return size
}

// Equal reports order-sensitive equality of two shapes. Complexity: O(rank).
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}

	return true
}

// Clone returns an independent copy of the shape. Complexity: O(rank).
func (s Shape) Clone() Shape {
	cp := make(Shape, len(s))
	copy(cp, s)

	return cp
}

// validateShape rejects negative dimensions with a wrapped ErrBadShape naming
// the offending axis. Zero dimensions are legal. Complexity: O(rank).
func validateShape(s Shape) error {
	for axis, dim := range s {
		if dim < 0 {
			return fmt.Errorf("shape %v: axis %d is negative: %w", []int(s), axis, ErrBadShape)
		}
	}

	return nil
}

// computeStrides derives the row-major stride table for a validated shape:
// strides[i] = Π shape[i+1:], strides[rank-1] = 1. A rank-0 shape yields an
// empty table. Complexity: O(rank).
func computeStrides(s Shape) []int {
	strides := make([]int, len(s))
	stride := 1
	for i := len(s) - 1; i >= 0; i-- { // accumulate from the innermost axis
		strides[i] = stride
		stride *= s[i]
	}

	return strides
}
