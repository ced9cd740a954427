// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the Dense container:
// construction, ingestion, bounds-checked access and export.
package matrix_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/ndense/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseDefaultZero verifies that a fresh Dense is zero-filled and
// reports the requested dimensions, including degenerate shapes.
func TestNewDenseDefaultZero(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{
		{3, 3},
		{2, 5},
		{0, 4}, // zero rows is a legal empty matrix
		{4, 0}, // zero cols is a legal empty matrix
		{0, 0},
	} {
		name := fmt.Sprintf("%dx%d", tc.rows, tc.cols)
		t.Run(name, func(t *testing.T) {
			m := MustDense(t, tc.rows, tc.cols)
			rows, cols := m.Dims()
			require.Equal(t, tc.rows, rows)
			require.Equal(t, tc.cols, cols)
			// immediately after creation all elements should be 0
			for i := 0; i < tc.rows; i++ {
				for j := 0; j < tc.cols; j++ {
					require.Equal(t, 0.0, MustAt(t, m, i, j))
				}
			}
		})
	}
}

// TestNewDenseNegativeDimensions ensures negative shapes are rejected with
// ErrBadShape and no container is produced.
func TestNewDenseNegativeDimensions(t *testing.T) {
	_, err := matrix.NewDense(-1, 5)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.NewDense(5, -1)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

// TestFromNestedRoundTrip checks FromNested → ToNested is the identity for
// rectangular input.
func TestFromNestedRoundTrip(t *testing.T) {
	data := [][]float64{{1, 2, 3}, {4, 5, 6}}
	m := MustFromNested(t, data)

	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
	require.Equal(t, data, m.ToNested())
}

// TestFromNestedRagged ensures ragged input fails with ErrBadShape.
func TestFromNestedRagged(t *testing.T) {
	_, err := matrix.FromNested([][]float64{{1, 2, 3}, {4, 5}})
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

// TestFromNestedEmpty documents the chosen policy: empty input is a 0×0 matrix.
func TestFromNestedEmpty(t *testing.T) {
	m, err := matrix.FromNested([][]float64{})
	require.NoError(t, err)
	require.Equal(t, 0, m.Rows())
	require.Equal(t, 0, m.Cols())
}

// TestFromNestedNoAliasing ensures the matrix copies its input rather than
// aliasing the caller's slices.
func TestFromNestedNoAliasing(t *testing.T) {
	data := [][]float64{{1, 2}, {3, 4}}
	m := MustFromNested(t, data)

	data[0][0] = 99 // mutate the source after construction
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
}

// TestFromFlat validates buffer-length checking and content layout.
func TestFromFlat(t *testing.T) {
	m, err := matrix.FromFlat(2, 3, []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, m)

	_, err = matrix.FromFlat(2, 3, []float64{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m := MustDense(t, 2, 2)

	_, err := m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(2, 0) // row == Rows() is already out of range
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(2, 0, 1.23)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(0, -1, 4.56)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetGet validates Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m := MustDense(t, 2, 3)

	MustSet(t, m, 1, 2, 7.89)
	require.Equal(t, 7.89, MustAt(t, m, 1, 2))
}

// TestSetNumericPolicy covers the finite-value guard: default ON rejects
// NaN/±Inf, WithNoValidateNaNInf lets them through.
func TestSetNumericPolicy(t *testing.T) {
	strict := MustDense(t, 1, 1)
	require.ErrorIs(t, strict.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, strict.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)
	// a failed Set leaves the element untouched
	require.Equal(t, 0.0, MustAt(t, strict, 0, 0))

	relaxed, err := matrix.NewDense(1, 1, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, relaxed.Set(0, 0, math.Inf(1)))
	require.True(t, math.IsInf(MustAt(t, relaxed, 0, 0), 1))
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m := MustDense(t, 2, 2)
	MustSet(t, m, 0, 0, 1.0)
	MustSet(t, m, 1, 1, 2.0)

	clone := m.Clone()
	MustSet(t, clone, 0, 0, 3.0) // modify the clone, not the original

	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
	require.Equal(t, 3.0, MustAt(t, clone, 0, 0))
}

// TestRowCol verifies copy extraction of single rows and columns.
func TestRowCol(t *testing.T) {
	m := MustFromNested(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{4, 5, 6}, row)

	col, err := m.Col(2)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 6}, col)

	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Col(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	// returned slices are copies, not views
	row[0] = 99
	require.Equal(t, 4.0, MustAt(t, m, 1, 0))
}

// TestFlatten checks the row-major export order.
func TestFlatten(t *testing.T) {
	m := MustFromNested(t, [][]float64{{1, 2}, {3, 4}})
	require.Equal(t, []float64{1, 2, 3, 4}, m.Flatten())
}

// TestStringOutput checks that String() formats the matrix as expected.
func TestStringOutput(t *testing.T) {
	m := MustFromNested(t, [][]float64{{1, 2}, {3, 4}})
	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}

// TestDoEarlyStop ensures the visitor stops when the callback returns false.
func TestDoEarlyStop(t *testing.T) {
	m := MustFromNested(t, [][]float64{{1, 2}, {3, 4}})

	visited := 0
	m.Do(func(i, j int, v float64) bool {
		visited++
		return visited < 3 // stop after the third element
	})
	require.Equal(t, 3, visited)
}

// TestApply covers the in-place map and its numeric-policy enforcement.
func TestApply(t *testing.T) {
	m := MustFromNested(t, [][]float64{{1, 2}, {3, 4}})
	require.NoError(t, m.Apply(func(i, j int, v float64) float64 { return v * 10 }))
	CompareExact(t, [][]float64{{10, 20}, {30, 40}}, m)

	err := m.Apply(func(i, j int, v float64) float64 { return math.NaN() })
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}
