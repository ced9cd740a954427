// SPDX-License-Identifier: MIT
// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone/Flatten/ToNested: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt    = "At"    // method tag used in error wrappers
	ctxSet   = "Set"   // method tag used in error wrappers
	ctxApply = "Apply" // method tag used in error wrappers
	ctxRow   = "Row"   // accessor tag for Dense.Row
	ctxCol   = "Col"   // accessor tag for Dense.Col
)

// ---------- formatting literals ----------

const (
	fmtRowOpen  = "["
	fmtRowClose = "]\n"
	fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Stable, human-friendly messages; preserves the sentinel via %w.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Matrix represents a two-dimensional mutable array of float64 values.
// Kernels accept this interface and fast-path on the concrete *Dense.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange on invalid indices and ErrNaNInf when the
	// numeric policy rejects non-finite values.
	// Complexity: O(1).
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols); both may be zero (legal empty matrix).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables optional NaN/Inf rejection in Set (policy default
//     from options.go).
type Dense struct {
	r, c           int       // row and column counts (>= 0)
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrBadShape.
//   - Stage 2: allocate zero-filled buffer and resolve numeric policy.
//
// Behavior highlights:
//   - No panics on user errors; returns sentinel errors.
//   - Zero-valued dimensions are legal and produce an empty matrix.
//
// Inputs:
//   - rows, cols: non-negative dimensions.
//   - opts: numeric policy overrides (WithNoValidateNaNInf, ...).
//
// Returns:
//   - *Dense: newly allocated matrix, every element 0.0.
//
// Errors:
//   - ErrBadShape when rows < 0 or cols < 0.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	// Validate shape; negatives are the only illegal case.
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrBadShape)
	}
	o := gatherOptions(opts...)
	// Allocate a contiguous flat buffer; make() zero-fills it deterministically.
	buf := make([]float64, rows*cols)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           buf,
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// FromNested builds a Dense from a slice of rows.
//
// Implementation:
//   - Stage 1: derive rows = len(data), cols = len(data[0]); empty input
//     yields a legal 0×0 matrix.
//   - Stage 2: single validation pass - every row must match cols and, under
//     the numeric policy, contain only finite values.
//   - Stage 3: copy row by row into a fresh flat buffer.
//
// Behavior highlights:
//   - Validate-then-act: no allocation escapes on ragged input.
//   - Input slices are copied, never aliased; later mutation of data does not
//     affect the matrix.
//
// Inputs:
//   - data: outer slice of rows, each an equal-length slice of float64.
//
// Returns:
//   - *Dense with rows = len(data), cols = len(data[0]).
//
// Errors:
//   - ErrBadShape when any inner slice length differs from the first
//     (context names the offending row and both widths).
//   - ErrNaNInf when the policy is on and a non-finite value is present.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromNested(data [][]float64, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	rows := len(data)
	// Documented policy: empty input is a valid 0×0 matrix.
	if rows == 0 {
		return &Dense{r: 0, c: 0, data: make([]float64, 0), validateNaNInf: o.validateNaNInf}, nil
	}
	cols := len(data[0])

	// Validation pass: rectangularity first, then the numeric policy.
	var i, j int
	for i = 0; i < rows; i++ {
		if len(data[i]) != cols {
			return nil, fmt.Errorf("FromNested: row %d has %d columns, want %d: %w", i, len(data[i]), cols, ErrBadShape)
		}
		if o.validateNaNInf {
			for j = 0; j < cols; j++ {
				if math.IsNaN(data[i][j]) || math.IsInf(data[i][j], 0) {
					return nil, fmt.Errorf("FromNested: element (%d,%d): %w", i, j, ErrNaNInf)
				}
			}
		}
	}

	// Copy pass: contiguous row-major fill.
	buf := make([]float64, rows*cols)
	for i = 0; i < rows; i++ {
		copy(buf[i*cols:(i+1)*cols], data[i])
	}

	return &Dense{r: rows, c: cols, data: buf, validateNaNInf: o.validateNaNInf}, nil
}

// FromFlat builds a Dense from an already-flat row-major buffer.
//
// Implementation:
//   - Stage 1: validate rows>=0, cols>=0 and len(data) == rows*cols.
//   - Stage 2: optional finite-value scan under the numeric policy.
//   - Stage 3: copy the buffer (the matrix never aliases caller memory).
//
// Errors:
//   - ErrBadShape on negative dimensions or length mismatch (context names
//     got/want lengths).
//   - ErrNaNInf when the policy is on and a non-finite value is present.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromFlat(rows, cols int, data []float64, opts ...Option) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("FromFlat(%d,%d): %w", rows, cols, ErrBadShape)
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("FromFlat: buffer length %d, want %d (=%d*%d): %w", len(data), rows*cols, rows, cols, ErrBadShape)
	}
	o := gatherOptions(opts...)
	if o.validateNaNInf {
		for idx, v := range data {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("FromFlat: element %d: %w", idx, ErrNaNInf)
			}
		}
	}
	buf := make([]float64, len(data))
	copy(buf, data)

	return &Dense{r: rows, c: cols, data: buf, validateNaNInf: o.validateNaNInf}, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Dims packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Dims() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Returns the plain sentinel; public methods (At/Set) wrap with coordinates
// and method name.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: load from the flat buffer.
//
// Behavior highlights:
//   - Never panics on out-of-range; returns a wrapped sentinel carrying the
//     offending coordinates.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: enforce numeric policy (reject NaN/±Inf when enabled).
//   - Stage 3: write into the flat buffer.
//
// Behavior highlights:
//   - Validate-then-act: a failed Set leaves the matrix untouched.
//   - The policy flag is a per-instance setting preserved by Clone.
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for non-finite values.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err) // wrap with context
	}
	// Numeric policy: optional finite-only enforcement.
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v // direct flat write

	return nil
}

// Row returns a copy of row i.
// Errors: ErrOutOfRange when i is outside [0, Rows).
// Complexity: O(c).
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, fmt.Errorf("Dense.%s(%d): %w", ctxRow, i, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Col returns a copy of column j.
// Errors: ErrOutOfRange when j is outside [0, Cols).
// Complexity: O(r).
func (m *Dense) Col(j int) ([]float64, error) {
	if j < 0 || j >= m.c {
		return nil, fmt.Errorf("Dense.%s(%d): %w", ctxCol, j, ErrOutOfRange)
	}
	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ { // strided gather, fixed i order
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// Clone returns a deep copy (new buffer, same numeric policy).
// Mutations of the copy never affect the original.
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data)) // allocate same length
	copy(cp, m.data)                   // deep copy

	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf, // preserve guard policy
	}
}

// Flatten returns a copy of the row-major backing buffer.
// The result has length Rows()*Cols(); mutating it does not affect m.
// Complexity: O(r*c).
func (m *Dense) Flatten() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)

	return out
}

// ToNested exports the matrix as a freshly allocated slice of rows.
// Inverse of FromNested for rectangular input (round-trip law).
// Complexity: O(r*c).
func (m *Dense) ToNested() [][]float64 {
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ { // fixed i order
		row := make([]float64, m.c)
		copy(row, m.data[i*m.c:(i+1)*m.c])
		out[i] = row
	}

	return out
}

// String renders a human-readable row-wise dump for diagnostics.
// Not for hot paths; intended for logs and debugging.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ { // iterate cols
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(fmtSep)
			}
		}
		b.WriteString(fmtRowClose)
	}

	return b.String()
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Read-only visitor; stops early when f returns false.
// Complexity: O(r*c), Space O(1).
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		base = i * m.c
		for j = 0; j < m.c; j++ { // iterate columns
			if !f(i, j, m.data[base+j]) {
				return // early exit requested by caller
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in place.
//
// Behavior highlights:
//   - Deterministic row-major order; no extra allocations.
//   - Respects validateNaNInf (rejects NaN/±Inf when enabled).
//   - Early error aborts; elements written before the error remain updated.
//     For all-or-nothing semantics, transform a Clone and swap on success.
//
// Errors:
//   - ErrNaNInf when the transformer produced a non-finite value (policy ON).
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense) Apply(f func(i, j int, v float64) float64) error {
	var i, j, base int
	var nv float64
	for i = 0; i < m.r; i++ { // iterate rows
		base = i * m.c
		for j = 0; j < m.c; j++ { // iterate columns
			nv = f(i, j, m.data[base+j]) // compute new value
			if m.validateNaNInf && (math.IsNaN(nv) || math.IsInf(nv, 0)) {
				return denseErrorf(ctxApply, i, j, ErrNaNInf)
			}
			m.data[base+j] = nv // write back
		}
	}

	return nil
}
