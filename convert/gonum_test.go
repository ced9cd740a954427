// SPDX-License-Identifier: MIT
package convert_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/ndense/convert"
	"github.com/katalvlaran/ndense/matrix"
)

// TestToGonum covers the outbound bridge and gonum's positive-dimension rule.
func TestToGonum(t *testing.T) {
	t.Run("values carried over", func(t *testing.T) {
		m := mustMatrix(t, [][]float64{{1, 2}, {3, 4}})
		g, err := convert.ToGonum(m)
		require.NoError(t, err)
		rows, cols := g.Dims()
		require.Equal(t, 2, rows)
		require.Equal(t, 2, cols)
		require.Equal(t, 3.0, g.At(1, 0))
	})
	t.Run("zero dimensions rejected", func(t *testing.T) {
		m, err := matrix.NewDense(0, 4)
		require.NoError(t, err)
		_, err = convert.ToGonum(m)
		require.ErrorIs(t, err, matrix.ErrBadShape)
	})
	t.Run("nil input", func(t *testing.T) {
		_, err := convert.ToGonum(nil)
		require.ErrorIs(t, err, matrix.ErrNilMatrix)
	})
}

// TestFromGonum covers the inbound bridge, including non-Dense views.
func TestFromGonum(t *testing.T) {
	t.Run("dense source", func(t *testing.T) {
		g := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
		d, err := convert.FromGonum(g)
		require.NoError(t, err)
		require.Equal(t, []float64{1, 2, 3, 4, 5, 6}, d.Flatten())
	})
	t.Run("transposed view converts materialized", func(t *testing.T) {
		g := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
		d, err := convert.FromGonum(g.T())
		require.NoError(t, err)
		rows, cols := d.Dims()
		require.Equal(t, 3, rows)
		require.Equal(t, 2, cols)
		require.Equal(t, []float64{1, 4, 2, 5, 3, 6}, d.Flatten())
	})
	t.Run("nil input", func(t *testing.T) {
		_, err := convert.FromGonum(nil)
		require.ErrorIs(t, err, matrix.ErrNilMatrix)
	})
}

// TestRoundTrip_Gonum pins FromGonum(ToGonum(m)) == m.
func TestRoundTrip_Gonum(t *testing.T) {
	orig := mustMatrix(t, [][]float64{{1.5, -2, 0.25}, {3, 4, -5}})
	g, err := convert.ToGonum(orig)
	require.NoError(t, err)
	back, err := convert.FromGonum(g)
	require.NoError(t, err)
	require.True(t, matrix.Equal(orig, back))
}

// TestGonumAsMulOracle cross-checks the matrix package's multiplication
// against gonum's BLAS-backed product on the same operands.
func TestGonumAsMulOracle(t *testing.T) {
	a := mustMatrix(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := mustMatrix(t, [][]float64{{7, 8}, {9, 10}, {11, 12}})

	ours, err := matrix.Mul(a, b)
	require.NoError(t, err)

	ga, err := convert.ToGonum(a)
	require.NoError(t, err)
	gb, err := convert.ToGonum(b)
	require.NoError(t, err)
	var gc mat.Dense
	gc.Mul(ga, gb)

	oracle, err := convert.FromGonum(&gc)
	require.NoError(t, err)
	ok, err := matrix.AllClose(ours, oracle)
	require.NoError(t, err)
	require.True(t, ok)
}
