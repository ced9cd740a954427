// SPDX-License-Identifier: MIT
// Package ndarray - NDArray storage (row-major, strided) & safe accessors.
//
// Purpose:
//   - Provide a flat float64 buffer addressed through a precomputed stride
//     table: offset = Σ indices[i]*strides[i].
//   - Guarantee safety at the public surface: At/SetAt return errors instead
//     of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no hidden state).
//
// Invariants (hold for every constructed NDArray):
//   - len(data) == shape.TotalSize()
//   - len(strides) == len(shape), strides recomputed on every construction.
//
// Complexity quicksheet:
//   - New/Zeros/Ones/Full: O(size); At/SetAt: O(rank); Reshape/Flatten/Clone: O(size).

package ndarray

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt    = "At"    // method tag used in error wrappers
	ctxSetAt = "SetAt" // method tag used in error wrappers
	ctxApply = "Apply" // method tag used in error wrappers
)

// ---------- formatting literals ----------

const (
	fmtRowOpen  = "["
	fmtRowClose = "]"
	fmtSep      = ", "
)

// ndarrayErrorf wraps an error with a uniform NDArray context and the
// offending indices. Preserves the sentinel via %w. Complexity: O(1).
func ndarrayErrorf(method string, indices []int, err error) error {
	return fmt.Errorf("NDArray.%s(%v): %w", method, indices, err)
}

// NDArray is a dense n-dimensional array.
//   - shape holds the immutable dimension sizes (rank = len(shape)).
//   - strides holds the derived row-major stride table.
//   - data is a flat buffer of length shape.TotalSize() in C order.
//   - validateNaNInf enables optional NaN/Inf rejection in SetAt (policy
//     default from options.go).
type NDArray struct {
	shape          Shape     // immutable dimension sizes (>= 0 each)
	strides        []int     // strides[i] = Π shape[i+1:]; len == rank
	data           []float64 // contiguous row-major storage (len == TotalSize)
	validateNaNInf bool      // numeric guard: reject NaN/Inf in SetAt when true
}

var _ fmt.Stringer = (*NDArray)(nil)

// New creates an array of the given shape with every element 0.0.
//
// Implementation:
//   - Stage 1: validate the shape (negatives rejected, zeros legal).
//   - Stage 2: allocate the zero-filled buffer and derive strides.
//
// Behavior highlights:
//   - The empty shape is a valid rank-0 scalar (buffer length 1).
//   - The caller's shape slice is copied, never aliased.
//
// Errors:
//   - ErrBadShape on negative dimensions.
//
// Complexity:
//   - Time O(size), Space O(size).
func New(shape Shape, opts ...Option) (*NDArray, error) {
	if err := validateShape(shape); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	o := gatherOptions(opts...)
	sh := shape.Clone() // own the shape; callers may reuse their slice

	return &NDArray{
		shape:          sh,
		strides:        computeStrides(sh),
		data:           make([]float64, sh.TotalSize()),
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// Zeros is a thin alias of New with an intention-revealing name.
// Complexity: O(size).
func Zeros(shape Shape, opts ...Option) (*NDArray, error) {
	return New(shape, opts...)
}

// Ones creates an array of the given shape with every element 1.0.
// Errors: ErrBadShape. Complexity: O(size).
func Ones(shape Shape, opts ...Option) (*NDArray, error) {
	return Full(shape, 1.0, opts...)
}

// Full creates an array of the given shape with every element set to v.
// Errors: ErrBadShape; ErrNaNInf when the policy is on and v is non-finite.
// Complexity: O(size).
func Full(shape Shape, v float64, opts ...Option) (*NDArray, error) {
	a, err := New(shape, opts...)
	if err != nil {
		return nil, fmt.Errorf("Full: %w", err)
	}
	if a.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return nil, fmt.Errorf("Full: fill value: %w", ErrNaNInf)
	}
	for idx := range a.data { // flat deterministic fill
		a.data[idx] = v
	}

	return a, nil
}

// FromFlat builds an array from an already-flat row-major buffer.
//
// Implementation:
//   - Stage 1: validate the shape; check len(data) == shape.TotalSize().
//   - Stage 2: optional finite-value scan under the numeric policy.
//   - Stage 3: copy the buffer (the array never aliases caller memory).
//
// Errors:
//   - ErrBadShape on negative dimensions or length mismatch (context names
//     got/want lengths).
//   - ErrNaNInf when the policy is on and a non-finite value is present.
//
// Complexity:
//   - Time O(size), Space O(size).
func FromFlat(data []float64, shape Shape, opts ...Option) (*NDArray, error) {
	if err := validateShape(shape); err != nil {
		return nil, fmt.Errorf("FromFlat: %w", err)
	}
	want := shape.TotalSize()
	if len(data) != want {
		return nil, fmt.Errorf("FromFlat: buffer length %d, want %d for shape %v: %w", len(data), want, []int(shape), ErrBadShape)
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
	sh := shape.Clone()

	return &NDArray{
		shape:          sh,
		strides:        computeStrides(sh),
		data:           buf,
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// Shape returns a copy of the dimension sizes. Mutating the returned slice
// does not affect the array. Complexity: O(rank).
func (a *NDArray) Shape() Shape { return a.shape.Clone() }

// NDim returns the rank (number of dimensions). Complexity: O(1).
func (a *NDArray) NDim() int { return len(a.shape) }

// Size returns the total number of elements; always consistent with the
// buffer length. Complexity: O(1).
func (a *NDArray) Size() int { return len(a.data) }

// IsEmpty reports whether the array holds zero elements (some dimension is 0).
// A rank-0 scalar is NOT empty. Complexity: O(1).
func (a *NDArray) IsEmpty() bool { return len(a.data) == 0 }

// AxisSize returns the size of the given axis.
// Errors: ErrOutOfRange when axis is outside [0, NDim). Complexity: O(1).
func (a *NDArray) AxisSize(axis int) (int, error) {
	if axis < 0 || axis >= len(a.shape) {
		return 0, fmt.Errorf("NDArray.AxisSize(%d): rank %d: %w", axis, len(a.shape), ErrOutOfRange)
	}

	return a.shape[axis], nil
}

// Strides returns a copy of the row-major stride table (diagnostic).
// Complexity: O(rank).
func (a *NDArray) Strides() []int {
	cp := make([]int, len(a.strides))
	copy(cp, a.strides)

	return cp
}

// offsetOf validates the index vector against rank and bounds and computes
// the flat offset Σ indices[i]*strides[i]. Returns the plain sentinel; public
// methods wrap with method name and indices. Complexity: O(rank).
func (a *NDArray) offsetOf(indices []int) (int, error) {
	// Index-count mismatch is an index error at this surface: the accessor
	// contract requires exactly rank indices.
	if len(indices) != len(a.shape) {
		return 0, fmt.Errorf("got %d indices, want rank %d: %w", len(indices), len(a.shape), ErrOutOfRange)
	}
	offset := 0
	for i, idx := range indices { // fixed axis order
		if idx < 0 || idx >= a.shape[i] {
			return 0, fmt.Errorf("axis %d: index %d outside [0,%d): %w", i, idx, a.shape[i], ErrOutOfRange)
		}
		offset += idx * a.strides[i]
	}

	return offset, nil
}

// At returns the element at the given indices. The index count must equal
// the rank; At() with no indices reads a rank-0 scalar.
//
// Errors:
//   - ErrOutOfRange on rank mismatch or any out-of-range index (context
//     names the axis, the index and the valid interval).
//
// Complexity:
//   - Time O(rank), Space O(1).
func (a *NDArray) At(indices ...int) (float64, error) {
	off, err := a.offsetOf(indices)
	if err != nil {
		return 0, ndarrayErrorf(ctxAt, indices, err) // wrap with context
	}

	return a.data[off], nil
}

// SetAt stores v at the given indices.
//
// Implementation:
//   - Stage 1: compute offset via offsetOf (rank + bounds check).
//   - Stage 2: enforce numeric policy (reject NaN/±Inf when enabled).
//   - Stage 3: write into the flat buffer.
//
// Behavior highlights:
//   - Validate-then-act: a failed SetAt leaves the array untouched.
//
// Errors:
//   - ErrOutOfRange for rank/bounds; ErrNaNInf for non-finite values.
//
// Complexity:
//   - Time O(rank), Space O(1).
func (a *NDArray) SetAt(v float64, indices ...int) error {
	off, err := a.offsetOf(indices)
	if err != nil {
		return ndarrayErrorf(ctxSetAt, indices, err) // wrap with context
	}
	if a.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return ndarrayErrorf(ctxSetAt, indices, ErrNaNInf)
	}
	a.data[off] = v // direct flat write

	return nil
}

// Reshape returns a new array with the same buffer content reinterpreted
// under the new shape's row-major strides.
//
// Implementation:
//   - Stage 1: validate the target shape; its product must equal Size().
//   - Stage 2: copy the buffer and derive fresh strides.
//
// Behavior highlights:
//   - Element order is preserved: flattening the receiver and the result
//     produce identical sequences.
//   - The result shares no mutable state with the receiver.
//
// Errors:
//   - ErrBadShape on negative dimensions or element-count mismatch (context
//     names both counts).
//
// Complexity:
//   - Time O(size), Space O(size).
func (a *NDArray) Reshape(dims ...int) (*NDArray, error) {
	target := Shape(dims)
	if err := validateShape(target); err != nil {
		return nil, fmt.Errorf("Reshape: %w", err)
	}
	if target.TotalSize() != len(a.data) {
		return nil, fmt.Errorf("Reshape: shape %v holds %d elements, array has %d: %w",
			dims, target.TotalSize(), len(a.data), ErrBadShape)
	}

	buf := make([]float64, len(a.data))
	copy(buf, a.data)
	sh := target.Clone()

	return &NDArray{
		shape:          sh,
		strides:        computeStrides(sh),
		data:           buf,
		validateNaNInf: a.validateNaNInf,
	}, nil
}

// Flatten returns a rank-1 view-copy of the array, equivalent to
// Reshape(Size()). Complexity: O(size).
func (a *NDArray) Flatten() *NDArray {
	out, _ := a.Reshape(len(a.data)) // cannot fail: product is Size() by construction

	return out
}

// Ravel returns a copy of the row-major backing buffer. Mutating it does not
// affect the array. Complexity: O(size).
func (a *NDArray) Ravel() []float64 {
	out := make([]float64, len(a.data))
	copy(out, a.data)

	return out
}

// Clone returns a deep copy (new buffer, same shape/strides/policy).
// Complexity: O(size).
func (a *NDArray) Clone() *NDArray {
	buf := make([]float64, len(a.data))
	copy(buf, a.data)
	sh := a.shape.Clone()

	return &NDArray{
		shape:          sh,
		strides:        computeStrides(sh),
		data:           buf,
		validateNaNInf: a.validateNaNInf, // preserve guard policy
	}
}

// Do visits every element in row-major order, passing the full index vector
// and the value. Returning false stops the walk early. The indices slice is
// reused between calls; copy it if retained.
// Complexity: O(size * rank).
func (a *NDArray) Do(f func(indices []int, v float64) bool) {
	if len(a.data) == 0 {
		return
	}
	indices := make([]int, len(a.shape)) // odometer over the shape
	for off := range a.data {
		if !f(indices, a.data[off]) {
			return
		}
		for axis := len(indices) - 1; axis >= 0; axis-- { // increment innermost-first
			indices[axis]++
			if indices[axis] < a.shape[axis] {
				break
			}
			indices[axis] = 0
		}
	}
}

// Apply replaces each element with f(v) in flat row-major order.
// Respects validateNaNInf; early error aborts, elements written before the
// error remain updated (transform a Clone for all-or-nothing semantics).
// Errors: ErrNaNInf. Complexity: O(size).
func (a *NDArray) Apply(f func(v float64) float64) error {
	var nv float64
	for idx := range a.data { // flat deterministic order
		nv = f(a.data[idx])
		if a.validateNaNInf && (math.IsNaN(nv) || math.IsInf(nv, 0)) {
			return fmt.Errorf("NDArray.%s: element %d: %w", ctxApply, idx, ErrNaNInf)
		}
		a.data[idx] = nv
	}

	return nil
}

// Equal reports exact structural equality: same shape and bitwise-equal
// elements. Nil inputs are equal only to each other. Complexity: O(size).
func Equal(a, b *NDArray) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if !a.shape.Equal(b.shape) {
		return false
	}
	for idx := range a.data {
		if a.data[idx] != b.data[idx] {
			return false
		}
	}

	return true
}

// AllClose reports whether a and b have identical shapes and every element
// pair differs by at most eps (DefaultEpsilon unless overridden).
// Errors: ErrNilArray, ErrBadShape on shape mismatch. Complexity: O(size).
func AllClose(a, b *NDArray, opts ...Option) (bool, error) {
	if a == nil || b == nil {
		return false, fmt.Errorf("AllClose: %w", ErrNilArray)
	}
	if !a.shape.Equal(b.shape) {
		return false, fmt.Errorf("AllClose: shapes %v vs %v: %w", []int(a.shape), []int(b.shape), ErrBadShape)
	}
	o := gatherOptions(opts...)
	for idx := range a.data { // flat deterministic order
		if math.Abs(a.data[idx]-b.data[idx]) > o.eps {
			return false, nil
		}
	}

	return true, nil
}

// String renders rank-0 scalars as a bare number, rank-1 arrays as a single
// bracketed row, rank-2 arrays row-wise, and summarizes higher ranks by
// shape. Not for hot paths. Complexity: O(size).
func (a *NDArray) String() string {
	switch len(a.shape) {
	case 0:
		return fmt.Sprintf("%g", a.data[0])
	case 1:
		return a.fmt1D()
	case 2:
		return a.fmt2D()
	default:
		return fmt.Sprintf("NDArray with shape %v", []int(a.shape))
	}
}

// fmt1D renders "[a, b, c]". Complexity: O(size).
func (a *NDArray) fmt1D() string {
	var b strings.Builder
	b.WriteString(fmtRowOpen)
	for idx, v := range a.data {
		if idx > 0 {
			b.WriteString(fmtSep)
		}
		b.WriteString(fmt.Sprintf("%g", v))
	}
	b.WriteString(fmtRowClose)

	return b.String()
}

// fmt2D renders one bracketed row per line, matching the matrix dump format.
// Complexity: O(size).
func (a *NDArray) fmt2D() string {
	rows, cols := a.shape[0], a.shape[1]
	var b strings.Builder
	var i, j, base int
	for i = 0; i < rows; i++ { // iterate rows deterministically
		b.WriteString(fmtRowOpen)
		base = i * cols
		for j = 0; j < cols; j++ {
			if j > 0 {
				b.WriteString(fmtSep)
			}
			b.WriteString(fmt.Sprintf("%g", a.data[base+j]))
		}
		b.WriteString(fmtRowClose)
		b.WriteString("\n")
	}

	return b.String()
}
