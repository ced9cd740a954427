// SPDX-License-Identifier: MIT
// Package convert: sentinel error set.
// Nil-input conditions reuse the owning container's sentinel
// (matrix.ErrNilMatrix, ndarray.ErrNilArray) so callers match one error per
// condition regardless of which surface raised it.

package convert

import "errors"

var (
	// ErrInvalidRank is returned when an array's rank does not fit the
	// target representation (e.g. NDArrayToMatrix on a non-2-D array, or a
	// rank-0 scalar offered to a shape-bearing tensor).
	ErrInvalidRank = errors.New("convert: invalid rank for target type")

	// ErrBadBacking is returned when a foreign container's element type or
	// layout cannot be represented as a dense float64 buffer.
	ErrBadBacking = errors.New("convert: unsupported backing data")
)
