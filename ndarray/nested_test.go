// SPDX-License-Identifier: MIT
package ndarray_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ndense/ndarray"
)

// TestFromNested_ShapeInference covers the shape inferred from the nesting
// structure across ranks.
func TestFromNested_ShapeInference(t *testing.T) {
	cases := []struct {
		name  string
		data  any
		shape ndarray.Shape
		flat  []float64
	}{
		{"scalar", 3.5, ndarray.Shape{}, []float64{3.5}},
		{"vector", []float64{1, 2, 3}, ndarray.Shape{3}, []float64{1, 2, 3}},
		{"matrix", [][]float64{{1, 2}, {3, 4}}, ndarray.Shape{2, 2}, []float64{1, 2, 3, 4}},
		{
			"cube via []any",
			[]any{
				[][]float64{{1, 2}, {3, 4}},
				[][]float64{{5, 6}, {7, 8}},
			},
			ndarray.Shape{2, 2, 2},
			[]float64{1, 2, 3, 4, 5, 6, 7, 8},
		},
		{
			"mixed []any of rows",
			[]any{[]float64{1, 2, 3}, []float64{4, 5, 6}},
			ndarray.Shape{2, 3},
			[]float64{1, 2, 3, 4, 5, 6},
		},
		{"empty vector", []float64{}, ndarray.Shape{0}, []float64{}},
		{"empty outer", []any{}, ndarray.Shape{0}, []float64{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a, err := ndarray.FromNested(tc.data)
			require.NoError(t, err)
			require.True(t, tc.shape.Equal(a.Shape()), "got shape %v", a.Shape())
			require.Equal(t, tc.flat, a.Ravel())
		})
	}
}

// TestFromNested_Ragged rejects width disagreements at any depth.
func TestFromNested_Ragged(t *testing.T) {
	cases := []struct {
		name string
		data any
	}{
		{"ragged rows", [][]float64{{1, 2, 3}, {4, 5}}},
		{"leaf next to node", []any{[]float64{1, 2}, 3.0}},
		{"node next to leaf", []any{1.0, []float64{2, 3}}},
		{"deep width mismatch", []any{
			[][]float64{{1, 2}, {3, 4}},
			[][]float64{{5, 6, 7}, {8, 9, 10}},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ndarray.FromNested(tc.data)
			require.ErrorIs(t, err, ndarray.ErrBadShape)
		})
	}
}

// TestFromNested_UnsupportedType rejects non-float64 leaves.
func TestFromNested_UnsupportedType(t *testing.T) {
	_, err := ndarray.FromNested([]any{1.0, "two"})
	require.ErrorIs(t, err, ndarray.ErrBadNesting)

	_, err = ndarray.FromNested(42) // int, not float64
	require.ErrorIs(t, err, ndarray.ErrBadNesting)
}

// TestFromNested_NumericPolicy runs the finite-value guard during ingestion.
func TestFromNested_NumericPolicy(t *testing.T) {
	_, err := ndarray.FromNested([]float64{1, math.NaN()})
	require.ErrorIs(t, err, ndarray.ErrNaNInf)

	a, err := ndarray.FromNested([]float64{1, math.Inf(1)}, ndarray.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.True(t, math.IsInf(mustAt(t, a, 1), 1))
}

// TestFromNestedShape covers the explicit-shape variant: the flattened count
// must equal the shape product, nesting regularity is not enforced.
func TestFromNestedShape(t *testing.T) {
	t.Run("explicit shape wins", func(t *testing.T) {
		a, err := ndarray.FromNestedShape([]float64{1, 2, 3, 4, 5, 6}, ndarray.Shape{2, 3})
		require.NoError(t, err)
		require.True(t, a.Shape().Equal(ndarray.Shape{2, 3}))
		require.Equal(t, 6.0, mustAt(t, a, 1, 2))
	})
	t.Run("ragged input accepted when count fits", func(t *testing.T) {
		a, err := ndarray.FromNestedShape([][]float64{{1, 2, 3}, {4}}, ndarray.Shape{4})
		require.NoError(t, err)
		require.Equal(t, []float64{1, 2, 3, 4}, a.Ravel())
	})
	t.Run("count mismatch", func(t *testing.T) {
		_, err := ndarray.FromNestedShape([]float64{1, 2, 3}, ndarray.Shape{2, 2})
		require.ErrorIs(t, err, ndarray.ErrBadShape)
	})
	t.Run("negative shape", func(t *testing.T) {
		_, err := ndarray.FromNestedShape([]float64{1}, ndarray.Shape{-1})
		require.ErrorIs(t, err, ndarray.ErrBadShape)
	})
	t.Run("unsupported leaf", func(t *testing.T) {
		_, err := ndarray.FromNestedShape([]any{"x"}, ndarray.Shape{1})
		require.ErrorIs(t, err, ndarray.ErrBadNesting)
	})
}

// TestToNested pins the export format per rank and the round-trip law
// FromNested(a.ToNested()) == a.
func TestToNested(t *testing.T) {
	t.Run("rank 0", func(t *testing.T) {
		s := mustNew(t, ndarray.Shape{})
		mustSetAt(t, s, 7.0)
		require.Equal(t, 7.0, s.ToNested())
	})
	t.Run("rank 1", func(t *testing.T) {
		v := mustFromFlat(t, []float64{1, 2, 3}, ndarray.Shape{3})
		require.Equal(t, []float64{1, 2, 3}, v.ToNested())
	})
	t.Run("rank 2", func(t *testing.T) {
		m := mustFromFlat(t, []float64{1, 2, 3, 4, 5, 6}, ndarray.Shape{2, 3})
		require.Equal(t, []any{[]float64{1, 2, 3}, []float64{4, 5, 6}}, m.ToNested())
	})
	t.Run("round-trip rank 3", func(t *testing.T) {
		orig := mustFromFlat(t, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, ndarray.Shape{2, 3, 2})
		back, err := ndarray.FromNested(orig.ToNested())
		require.NoError(t, err)
		require.True(t, ndarray.Equal(orig, back))
	})
	t.Run("no aliasing", func(t *testing.T) {
		v := mustFromFlat(t, []float64{1, 2}, ndarray.Shape{2})
		row := v.ToNested().([]float64)
		row[0] = 99
		require.Equal(t, 1.0, mustAt(t, v, 0))
	})
}
