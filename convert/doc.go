// SPDX-License-Identifier: MIT
// Package convert bridges the dense containers of this module with each
// other and with the wider numeric ecosystem.
//
// What it offers:
//
//	▸ Matrix ⇄ NDArray   - MatrixToNDArray / NDArrayToMatrix (rank-2 bridge,
//	                       single buffer copy each way).
//	▸ gonum interop      - ToGonum / FromGonum (⇄ *mat.Dense) so callers can
//	                       hand data to gonum's decompositions and BLAS paths.
//	▸ gorgonia interop   - ToTensor / FromTensor (⇄ *tensor.Dense) for
//	                       tensor-graph and SIMD-accelerated pipelines.
//
// Guarantees:
//
//	▸ Conversions always copy: no adapter output aliases the input's buffer.
//	▸ Typed sentinel errors (errors.Is-friendly): rank violations return
//	  ErrInvalidRank, foreign dtypes return ErrBadBacking, nil inputs return
//	  the owning package's nil sentinel.
//	▸ Determinism: element order is row-major on both sides of every bridge.
package convert
