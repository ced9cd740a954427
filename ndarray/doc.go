// SPDX-License-Identifier: MIT
// Package ndarray provides a dense n-dimensional float64 container with
// row-major (C-order) storage and a precomputed stride table.
//
// The ndarray package provides:
//
//   - Shape, an ordered sequence of non-negative dimension sizes shared by
//     constructors, Reshape and the converters.
//   - NDArray, a rank-N container over a single flat buffer with the offset
//     formula Σ indices[i]*strides[i], where strides[i] = Π shape[i+1:].
//   - Shape inference from arbitrarily nested data (FromNested) in a single
//     validation pass, and the inverse export (ToNested).
//   - Reshape and Flatten that preserve row-major element order exactly.
//
// Rank and degeneracy policy (documented, covered by tests):
//
//   - A rank-0 NDArray is a valid scalar container: the empty shape has
//     product 1, so the buffer holds exactly one element.
//   - Zero-valued dimensions are legal and yield zero-element containers.
//   - Negative dimensions are rejected with ErrBadShape.
//
// Error discipline mirrors the matrix package: sentinel errors (ErrBadShape,
// ErrOutOfRange, ErrNilArray) wrapped with call-site context, matched via
// errors.Is; the public surface never panics, and validation always precedes
// mutation.
//
// Concurrency: an NDArray exclusively owns its buffer. Read-only methods
// (Shape, NDim, Size, At, ToNested, Ravel, String) are safe under concurrent
// readers; SetAt, Apply and reconstruction require exclusive access,
// enforced by the caller.
package ndarray
