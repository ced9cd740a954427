// SPDX-License-Identifier: MIT
// Package matrix provides a dense, row-major, float64 2-D container and the
// deterministic linear-algebra kernels that operate on it.
//
// The matrix package provides:
//
//   - Dense, a concrete row-major matrix with bounds-checked At/Set and the
//     explicit index formula i*cols + j over a single flat buffer.
//   - Nested-slice ingestion (FromNested) and export (ToNested) that
//     round-trip losslessly for rectangular input.
//   - Free-function kernels (Add, Sub, Hadamard, Scale, Mul, Transpose,
//     MatVec) with *Dense fast paths and generic At/Set fallbacks.
//   - Constructors with intention-revealing names (NewZeros, NewOnes,
//     NewIdentity) and epsilon-aware comparison helpers (Equal, AllClose).
//
// Error discipline: every user-triggered failure is reported through a
// package sentinel (ErrBadShape, ErrOutOfRange, ErrDimensionMismatch,
// ErrNaNInf, ErrNilMatrix) wrapped with call-site context; match with
// errors.Is. The public surface never panics, and validation always happens
// before any mutation, so a failed call leaves its operands untouched.
//
// Concurrency: a Dense exclusively owns its buffer. Read-only methods
// (Rows, Cols, Dims, At, Row, Col, ToNested, Flatten, String) are safe under
// concurrent readers; Set, Apply and any reconstruction require exclusive
// access, enforced by the caller rather than by internal locking.
//
// Degenerate shapes are legal: rows or cols may be zero, yielding a valid
// zero-element matrix (NewIdentity(0) included). Negative dimensions are
// rejected with ErrBadShape.
package matrix
