// SPDX-License-Identifier: MIT
package ndarray_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ndense/ndarray"
)

// mustNew builds a zero array or fails the test immediately.
func mustNew(t *testing.T, shape ndarray.Shape, opts ...ndarray.Option) *ndarray.NDArray {
	t.Helper()
	a, err := ndarray.New(shape, opts...)
	require.NoError(t, err)

	return a
}

// mustFromFlat builds an array from a flat buffer or fails the test.
func mustFromFlat(t *testing.T, data []float64, shape ndarray.Shape, opts ...ndarray.Option) *ndarray.NDArray {
	t.Helper()
	a, err := ndarray.FromFlat(data, shape, opts...)
	require.NoError(t, err)

	return a
}

// mustAt reads one element or fails the test.
func mustAt(t *testing.T, a *ndarray.NDArray, indices ...int) float64 {
	t.Helper()
	v, err := a.At(indices...)
	require.NoError(t, err)

	return v
}

// mustSetAt writes one element or fails the test.
func mustSetAt(t *testing.T, a *ndarray.NDArray, v float64, indices ...int) {
	t.Helper()
	require.NoError(t, a.SetAt(v, indices...))
}
