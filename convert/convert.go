// SPDX-License-Identifier: MIT
// Package convert - Matrix ⇄ NDArray bridge.
//
// Purpose:
//   - Move data between the 2-D and the rank-N container with exactly one
//     buffer copy per direction and no shared mutable state.
//   - A Matrix maps to the shape [rows, cols]; only a rank-2 NDArray maps
//     back (anything else is ErrInvalidRank, never a silent reshape).

package convert

import (
	"fmt"

	"github.com/katalvlaran/ndense/matrix"
	"github.com/katalvlaran/ndense/ndarray"
)

// matrixRank is the only NDArray rank representable as a Matrix.
const matrixRank = 2

// flattenMatrix extracts the row-major buffer of any Matrix implementation.
// *Dense short-circuits to its flat copy; other implementations are read
// element-wise through the safe accessor. Complexity: O(rows*cols).
func flattenMatrix(m matrix.Matrix) ([]float64, error) {
	if d, ok := m.(*matrix.Dense); ok {
		return d.Flatten(), nil // already a copy
	}
	rows, cols := m.Rows(), m.Cols()
	buf := make([]float64, rows*cols)
	var (
		v   float64
		err error
	)
	for i := 0; i < rows; i++ { // row-major fill
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			buf[i*cols+j] = v
		}
	}

	return buf, nil
}

// MatrixToNDArray converts a Matrix into a rank-2 NDArray with shape
// [rows, cols]. Always succeeds for non-nil input.
//
// Behavior highlights:
//   - The result owns its buffer; later writes to m are not visible in it.
//   - Conversion reinterprets an already-constructed container, so the
//     ingestion NaN/Inf scan is off: values the source legally holds
//     (including non-finite ones under a relaxed policy) carry over
//     verbatim. Caller options apply last and may re-enable the scan.
//
// Errors:
//   - matrix.ErrNilMatrix on nil input.
//
// Complexity:
//   - Time O(rows*cols), Space O(rows*cols).
func MatrixToNDArray(m matrix.Matrix, opts ...ndarray.Option) (*ndarray.NDArray, error) {
	if m == nil {
		return nil, fmt.Errorf("MatrixToNDArray: %w", matrix.ErrNilMatrix)
	}
	flat, err := flattenMatrix(m)
	if err != nil {
		return nil, fmt.Errorf("MatrixToNDArray: %w", err)
	}
	opts = append([]ndarray.Option{ndarray.WithNoValidateNaNInf()}, opts...)
	a, err := ndarray.FromFlat(flat, ndarray.Shape{m.Rows(), m.Cols()}, opts...)
	if err != nil {
		return nil, fmt.Errorf("MatrixToNDArray: %w", err)
	}

	return a, nil
}

// NDArrayToMatrix converts a rank-2 NDArray into a *matrix.Dense with the
// same rows, cols and element order. The rank check is the only failure
// mode for non-nil input.
//
// Behavior highlights:
//   - As with MatrixToNDArray, conversion carries the source's values
//     verbatim: the ingestion NaN/Inf scan is off unless a caller option
//     re-enables it (caller options apply last).
//
// Errors:
//   - ndarray.ErrNilArray on nil input.
//   - ErrInvalidRank when a.NDim() != 2 (context names got/want ranks).
//
// Complexity:
//   - Time O(size), Space O(size).
func NDArrayToMatrix(a *ndarray.NDArray, opts ...matrix.Option) (*matrix.Dense, error) {
	if a == nil {
		return nil, fmt.Errorf("NDArrayToMatrix: %w", ndarray.ErrNilArray)
	}
	if a.NDim() != matrixRank {
		return nil, fmt.Errorf("NDArrayToMatrix: rank %d, want %d: %w", a.NDim(), matrixRank, ErrInvalidRank)
	}
	sh := a.Shape()
	opts = append([]matrix.Option{matrix.WithNoValidateNaNInf()}, opts...)
	d, err := matrix.FromFlat(sh[0], sh[1], a.Ravel(), opts...)
	if err != nil {
		return nil, fmt.Errorf("NDArrayToMatrix: %w", err)
	}

	return d, nil
}
