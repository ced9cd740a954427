// SPDX-License-Identifier: MIT
// Package ndarray: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// ndarray package. All operations MUST return these sentinels and tests MUST
// check them via errors.Is. No operation panics on user-triggered conditions.

package ndarray

import "errors"

var (
	// ErrBadShape is returned on shape/size inconsistency: negative
	// dimensions, ragged nested input, a flat buffer whose length disagrees
	// with the shape product, or a Reshape target with a different element
	// count.
	ErrBadShape = errors.New("ndarray: invalid shape")

	// ErrOutOfRange indicates an invalid index access: wrong number of
	// indices for the array's rank, or any index outside its dimension.
	// Public indexers (At/SetAt/AxisSize) MUST return this, not panic.
	ErrOutOfRange = errors.New("ndarray: index out of range")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite
	// values are required by the numeric policy (SetAt, Apply, ingestion).
	ErrNaNInf = errors.New("ndarray: NaN or Inf encountered")

	// ErrNilArray indicates that a nil *NDArray was passed where a value is
	// required.
	ErrNilArray = errors.New("ndarray: nil array")

	// ErrBadNesting is returned by FromNested when the input tree contains a
	// node of an unsupported type (anything other than float64, []float64,
	// [][]float64 or []any).
	ErrBadNesting = errors.New("ndarray: unsupported nested value")
)
