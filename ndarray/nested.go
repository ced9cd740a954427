// SPDX-License-Identifier: MIT
// Package ndarray - nested-sequence ingestion and export.
//
// Purpose:
//   - Model the "nested sequence" input contract as a tagged-variant tree:
//     leaf = float64, node = []any (with []float64 and [][]float64 accepted
//     as convenience leaf rows).
//   - A single recursive pass computes the inferred shape AND detects
//     irregularity, filling the flat buffer in row-major order as it goes.
//
// Behavior highlights:
//   - Validate-then-act at the tree level: any raggedness or unsupported
//     node aborts before a container is produced.
//   - Only float64 leaves are accepted; integer widening is the caller's
//     responsibility, not the core's.

package ndarray

import (
	"fmt"
	"math"
)

// nestedWalker accumulates the inferred shape and the flat buffer during a
// single depth-first traversal of the input tree.
type nestedWalker struct {
	shape          Shape     // width discovered per depth; len grows as we descend
	leafDepth      int       // depth at which leaves live; -1 until the first leaf
	buf            []float64 // row-major leaf values in visit order
	validateNaNInf bool      // numeric policy for leaf values
}

// checkWidth records or verifies the node width at the given depth.
// Returns ErrBadShape when the tree mixes nodes and leaves at one depth or
// when a sibling width disagrees with the first-seen width.
func (w *nestedWalker) checkWidth(depth, width int) error {
	// A node may not appear at or below the depth where leaves were seen.
	if w.leafDepth != -1 && depth >= w.leafDepth {
		return fmt.Errorf("nested value at depth %d where leaves live at depth %d: %w", depth, w.leafDepth, ErrBadShape)
	}
	if depth == len(w.shape) {
		w.shape = append(w.shape, width) // first node at this depth fixes the width

		return nil
	}
	if w.shape[depth] != width {
		return fmt.Errorf("depth %d has width %d, want %d: %w", depth, width, w.shape[depth], ErrBadShape)
	}

	return nil
}

// leaf validates and appends a single float64 value discovered at depth.
func (w *nestedWalker) leaf(v float64, depth int) error {
	// All leaves must live at the same depth, which is also the tree's rank.
	if depth != len(w.shape) || (w.leafDepth != -1 && w.leafDepth != depth) {
		return fmt.Errorf("leaf at depth %d, want depth %d: %w", depth, len(w.shape), ErrBadShape)
	}
	w.leafDepth = depth
	if w.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return fmt.Errorf("leaf %d: %w", len(w.buf), ErrNaNInf)
	}
	w.buf = append(w.buf, v)

	return nil
}

// walk dispatches on the tagged-variant node type and recurses depth-first.
// Complexity: O(total elements) over the whole traversal.
func (w *nestedWalker) walk(node any, depth int) error {
	switch t := node.(type) {
	case float64:
		return w.leaf(t, depth)
	case []float64:
		if err := w.checkWidth(depth, len(t)); err != nil {
			return err
		}
		for _, v := range t {
			if err := w.leaf(v, depth+1); err != nil {
				return err
			}
		}

		return nil
	case [][]float64:
		if err := w.checkWidth(depth, len(t)); err != nil {
			return err
		}
		for _, row := range t {
			if err := w.walk(row, depth+1); err != nil {
				return err
			}
		}

		return nil
	case []any:
		if err := w.checkWidth(depth, len(t)); err != nil {
			return err
		}
		for _, child := range t {
			if err := w.walk(child, depth+1); err != nil {
				return err
			}
		}

		return nil
	default:
		return fmt.Errorf("depth %d: value of type %T: %w", depth, node, ErrBadNesting)
	}
}

// FromNested builds an NDArray from a nested tree, inferring the shape from
// the nesting structure: each level's uniform width becomes one dimension.
//
// Implementation:
//   - Stage 1: single depth-first pass infers the shape, detects raggedness
//     and fills the flat buffer in row-major order.
//   - Stage 2: derive strides and assemble the container.
//
// Inputs:
//   - data: float64 (rank-0 scalar), []float64 (rank 1), [][]float64
//     (rank 2) or []any nesting of those (arbitrary rank).
//
// Errors:
//   - ErrBadShape on inconsistent widths at any level.
//   - ErrBadNesting on unsupported node types.
//   - ErrNaNInf under the numeric policy.
//
// Complexity:
//   - Time O(size), Space O(size).
func FromNested(data any, opts ...Option) (*NDArray, error) {
	o := gatherOptions(opts...)
	w := &nestedWalker{shape: Shape{}, leafDepth: -1, validateNaNInf: o.validateNaNInf}
	if err := w.walk(data, 0); err != nil {
		return nil, fmt.Errorf("FromNested: %w", err)
	}
	sh := w.shape.Clone()
	buf := w.buf
	if buf == nil {
		buf = make([]float64, 0) // zero-element trees produce an empty buffer
	}

	return &NDArray{
		shape:          sh,
		strides:        computeStrides(sh),
		data:           buf,
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// flattenLoose collects leaves in visit order without enforcing rectangular
// nesting; the explicit shape supplied by the caller is the authority.
func flattenLoose(node any, buf []float64) ([]float64, error) {
	switch t := node.(type) {
	case float64:
		return append(buf, t), nil
	case []float64:
		return append(buf, t...), nil
	case [][]float64:
		for _, row := range t {
			buf = append(buf, row...)
		}

		return buf, nil
	case []any:
		var err error
		for _, child := range t {
			if buf, err = flattenLoose(child, buf); err != nil {
				return nil, err
			}
		}

		return buf, nil
	default:
		return nil, fmt.Errorf("value of type %T: %w", node, ErrBadNesting)
	}
}

// FromNestedShape builds an NDArray from a nested tree under an explicit
// shape: the flattened element count of data must equal shape.TotalSize().
//
// Errors:
//   - ErrBadShape on negative dimensions or element-count mismatch (context
//     names both counts).
//   - ErrBadNesting on unsupported node types.
//   - ErrNaNInf under the numeric policy.
//
// Complexity:
//   - Time O(size), Space O(size).
func FromNestedShape(data any, shape Shape, opts ...Option) (*NDArray, error) {
	if err := validateShape(shape); err != nil {
		return nil, fmt.Errorf("FromNestedShape: %w", err)
	}
	flat, err := flattenLoose(data, nil)
	if err != nil {
		return nil, fmt.Errorf("FromNestedShape: %w", err)
	}
	want := shape.TotalSize()
	if len(flat) != want {
		return nil, fmt.Errorf("FromNestedShape: %d elements, shape %v wants %d: %w", len(flat), []int(shape), want, ErrBadShape)
	}

	// FromFlat re-runs the numeric policy scan and copies the buffer.
	return FromFlat(flat, shape, opts...)
}

// ToNested reconstructs the nested representation matching the shape:
// rank 0 yields the bare float64, rank 1 a []float64, higher ranks a []any
// of sub-trees. Inverse of FromNested for a given shape.
// Complexity: O(size).
func (a *NDArray) ToNested() any {
	if len(a.shape) == 0 {
		return a.data[0] // rank-0 scalar
	}

	return buildNested(a.data, a.shape)
}

// buildNested slices the flat buffer recursively along the leading axis.
func buildNested(flat []float64, shape Shape) any {
	if len(shape) == 1 {
		row := make([]float64, len(flat))
		copy(row, flat)

		return row
	}
	width := shape[0]
	sub := shape[1:]
	stride := sub.TotalSize() // elements per child along the leading axis
	out := make([]any, width)
	for i := 0; i < width; i++ { // fixed leading-axis order
		out[i] = buildNested(flat[i*stride:(i+1)*stride], sub)
	}

	return out
}
