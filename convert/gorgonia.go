// SPDX-License-Identifier: MIT
// Package convert - gorgonia/tensor interop.
//
// Purpose:
//   - Exchange buffers with gorgonia's *tensor.Dense so arrays can enter
//     SIMD-accelerated elementwise pipelines and tensor graphs.
//   - Only float64 backings cross the bridge; any other dtype is
//     ErrBadBacking, never a silent cast.

package convert

import (
	"fmt"

	"gorgonia.org/tensor"

	"github.com/katalvlaran/ndense/ndarray"
)

// ToTensor converts an NDArray into a *tensor.Dense with the same shape and
// row-major element order.
//
// Behavior highlights:
//   - The tensor receives a copy of the buffer (Ravel), so the two
//     containers stay independent.
//
// Errors:
//   - ndarray.ErrNilArray on nil input.
//   - ErrInvalidRank for rank-0 scalars (gorgonia dense tensors are
//     shape-bearing).
//   - ndarray.ErrBadShape for zero-element arrays, which gorgonia cannot
//     back.
//
// Complexity:
//   - Time O(size), Space O(size).
func ToTensor(a *ndarray.NDArray) (*tensor.Dense, error) {
	if a == nil {
		return nil, fmt.Errorf("ToTensor: %w", ndarray.ErrNilArray)
	}
	if a.NDim() == 0 {
		return nil, fmt.Errorf("ToTensor: rank 0, want >= 1: %w", ErrInvalidRank)
	}
	if a.IsEmpty() {
		return nil, fmt.Errorf("ToTensor: shape %v has zero elements: %w", []int(a.Shape()), ndarray.ErrBadShape)
	}

	return tensor.New(
		tensor.WithShape(a.Shape()...),
		tensor.WithBacking(a.Ravel()),
	), nil
}

// FromTensor converts a *tensor.Dense with a float64 backing into an
// NDArray of the same shape.
//
// Errors:
//   - ndarray.ErrNilArray on nil input.
//   - ErrBadBacking when the tensor's dtype is not float64.
//   - ndarray.ErrNaNInf when the strict numeric policy is on and the
//     backing carries non-finite values.
//
// Complexity:
//   - Time O(size), Space O(size).
func FromTensor(t *tensor.Dense, opts ...ndarray.Option) (*ndarray.NDArray, error) {
	if t == nil {
		return nil, fmt.Errorf("FromTensor: %w", ndarray.ErrNilArray)
	}
	if t.Dtype() != tensor.Float64 {
		return nil, fmt.Errorf("FromTensor: dtype %v, want float64: %w", t.Dtype(), ErrBadBacking)
	}
	flat, ok := t.Data().([]float64)
	if !ok {
		// Single-element tensors surface their backing as a bare scalar.
		v, scalarOK := t.Data().(float64)
		if !scalarOK {
			return nil, fmt.Errorf("FromTensor: backing %T: %w", t.Data(), ErrBadBacking)
		}
		flat = []float64{v}
	}
	a, err := ndarray.FromFlat(flat, ndarray.Shape(t.Shape()), opts...)
	if err != nil {
		return nil, fmt.Errorf("FromTensor: %w", err)
	}

	return a, nil
}
