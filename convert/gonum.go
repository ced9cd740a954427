// SPDX-License-Identifier: MIT
// Package convert - gonum/mat interop.
//
// Purpose:
//   - Hand matrices to gonum's linear-algebra machinery (decompositions,
//     solvers, BLAS-backed multiplication) and bring results back.
//   - gonum's *mat.Dense requires strictly positive dimensions, so the
//     zero-element containers legal here do not cross this bridge.

package convert

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/ndense/matrix"
)

// ToGonum converts a Matrix into a *mat.Dense with the same dimensions and
// element order.
//
// Errors:
//   - matrix.ErrNilMatrix on nil input.
//   - matrix.ErrBadShape when rows or cols is zero (gonum rejects
//     zero-length dense matrices).
//
// Complexity:
//   - Time O(rows*cols), Space O(rows*cols).
func ToGonum(m matrix.Matrix) (*mat.Dense, error) {
	if m == nil {
		return nil, fmt.Errorf("ToGonum: %w", matrix.ErrNilMatrix)
	}
	rows, cols := m.Rows(), m.Cols()
	if rows == 0 || cols == 0 {
		return nil, fmt.Errorf("ToGonum: %dx%d: zero-length gonum matrices are not representable: %w", rows, cols, matrix.ErrBadShape)
	}
	flat, err := flattenMatrix(m)
	if err != nil {
		return nil, fmt.Errorf("ToGonum: %w", err)
	}

	return mat.NewDense(rows, cols, flat), nil
}

// FromGonum converts any mat.Matrix into a *matrix.Dense, reading elements
// through the gonum accessor so views and transposes convert correctly.
//
// Errors:
//   - matrix.ErrNilMatrix on nil input.
//   - matrix.ErrNaNInf when the strict numeric policy is on and src carries
//     non-finite values.
//
// Complexity:
//   - Time O(rows*cols), Space O(rows*cols).
func FromGonum(src mat.Matrix, opts ...matrix.Option) (*matrix.Dense, error) {
	if src == nil {
		return nil, fmt.Errorf("FromGonum: %w", matrix.ErrNilMatrix)
	}
	rows, cols := src.Dims()
	flat := make([]float64, rows*cols)
	for i := 0; i < rows; i++ { // row-major fill
		for j := 0; j < cols; j++ {
			flat[i*cols+j] = src.At(i, j)
		}
	}
	d, err := matrix.FromFlat(rows, cols, flat, opts...)
	if err != nil {
		return nil, fmt.Errorf("FromGonum: %w", err)
	}

	return d, nil
}
