// Package ndense is a small, dependable home for dense numeric containers —
// a 2-D matrix and a general n-dimensional array — plus lossless converters
// between them and to the wider Go numeric ecosystem.
//
// 🚀 What is ndense?
//
//	A focused library that brings together:
//		• matrix/  — row-major float64 Dense matrices with bounds-checked
//		  accessors and deterministic arithmetic kernels (Add, Mul,
//		  Transpose, Identity and friends)
//		• ndarray/ — rank-N dense arrays with precomputed strides,
//		  shape inference from nested data, Reshape and Flatten
//		• convert/ — the single authorized path between Matrix and NDArray,
//		  plus adapters to gonum (mat.Dense) and gorgonia (tensor.Dense)
//
// ✨ Why choose ndense?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – sentinel errors, validate-then-act everywhere,
//     no panics at the public surface
//   - Deterministic – fixed loop orders, no hidden state, no randomness
//   - Honest numerics – float64 end to end, optional NaN/±Inf rejection
//
// Containers exclusively own their buffers: every operation is a pure,
// synchronous computation. Read-only methods (At, Dims, Shape, ToNested)
// are safe under concurrent readers; any Set or reconstruction requires
// exclusive access, enforced by the caller.
//
// Quick taste:
//
//	m, _ := matrix.FromNested([][]float64{{1, 2}, {3, 4}})
//	p, _ := matrix.Mul(m, m)     // [[7, 10], [15, 22]]
//	a, _ := convert.MatrixToNDArray(m)
//	r, _ := a.Reshape(4)         // shape [4], same row-major order
//
// Dive into each package's doc.go for contracts, error taxonomy and
// complexity notes.
//
//	go get github.com/katalvlaran/ndense
package ndense
