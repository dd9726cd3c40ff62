// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// element-wise addition and subtraction, scalar scaling, in-place weighted
// accumulation, row stacking and row/column sums. All functions perform strict
// fail-fast validation and return clear errors on dimension mismatches.
//
// Notes:
//   - All kernels use the central validators and wrap failures via matrixErrorf.
//   - Every kernel has a *Dense fast-path over the flat buffer and a generic
//     At/Set fallback with fixed i→j order.

package matrix

import (
	"fmt"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opScale     = "Scale"
	opAddScaled = "AddScaledInPlace"
	opStack     = "StackRows"
	opRowSums   = "RowSums"
	opColSums   = "ColSums"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
// Complexity: O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Inputs must have identical shapes. A fresh Dense is allocated; operands are not mutated.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b). Allocate result Dense(rows, cols).
//   - Stage 2: Fast-path if both are *Dense - single flat loop 0..n-1.
//     Otherwise, fallback At/Set with fixed i→j order.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub(a, b Matrix, sign float64, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			length := rows * cols
			for idx := 0; idx < length; idx++ { // deterministic 0..n-1
				res.data[idx] = da.data[idx] + sign*db.data[idx]
			}

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var i, j int
	var av, bv float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, err)
			}
			if err = res.Set(i, j, av+sign*bv); err != nil {
				return nil, matrixErrorf(opTag, err)
			}
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Scale returns alpha*m as a fresh Dense.
//
// Errors:
//   - ErrNilMatrix (from ValidateNotNil).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Scale(m Matrix, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	if dm, ok := m.(*Dense); ok {
		n := rows * cols
		for idx := 0; idx < n; idx++ {
			res.data[idx] = dm.data[idx] * alpha
		}

		return res, nil
	}

	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opScale, err)
			}
			if err = res.Set(i, j, v*alpha); err != nil {
				return nil, matrixErrorf(opScale, err)
			}
		}
	}

	return res, nil
}

// AddScaledInPlace performs dst += alpha*src without allocating.
// MAIN DESCRIPTION:
//   - Accumulation kernel behind weighted composites: the caller allocates one
//     zero buffer and folds every weighted operand into it.
//
// Behavior highlights:
//   - dst is mutated; src is read-only.
//   - alpha == 0 is a no-op after validation.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func AddScaledInPlace(dst *Dense, src Matrix, alpha float64) error {
	if dst == nil {
		return matrixErrorf(opAddScaled, ErrNilMatrix)
	}
	if err := ValidateBinarySameShape(dst, src); err != nil {
		return matrixErrorf(opAddScaled, err)
	}
	if alpha == 0 {
		return nil
	}

	if ds, ok := src.(*Dense); ok {
		for idx := range dst.data {
			dst.data[idx] += alpha * ds.data[idx]
		}

		return nil
	}

	var i, j int
	var v float64
	var err error
	for i = 0; i < dst.r; i++ {
		for j = 0; j < dst.c; j++ {
			if v, err = src.At(i, j); err != nil {
				return matrixErrorf(opAddScaled, err)
			}
			dst.data[i*dst.c+j] += alpha * v
		}
	}

	return nil
}

// StackRows concatenates matrices vertically into a fresh Dense.
// MAIN DESCRIPTION:
//   - Row-wise concatenation used to splice cached windows and chained
//     corrector blocks. Zero-row parts are legal and contribute nothing.
//
// Errors:
//   - ErrNilMatrix when a part is nil, ErrDimensionMismatch when widths differ.
//
// Complexity:
//   - Time O(Σ r_i*c), Space O(Σ r_i*c).
func StackRows(cols int, parts ...*Dense) (*Dense, error) {
	total := 0
	for k, p := range parts {
		if p == nil {
			return nil, matrixErrorf(opStack, fmt.Errorf("part %d: %w", k, ErrNilMatrix))
		}
		if p.c != cols {
			return nil, matrixErrorf(opStack, fmt.Errorf("part %d has %d cols, want %d: %w", k, p.c, cols, ErrDimensionMismatch))
		}
		total += p.r
	}
	res, err := NewDense(total, cols)
	if err != nil {
		return nil, matrixErrorf(opStack, err)
	}
	off := 0
	for _, p := range parts {
		off += copy(res.data[off:], p.data)
	}

	return res, nil
}

// RowSums returns the sum of each row.
// Complexity: O(r*c).
func RowSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}
	out := make([]float64, m.Rows())
	var i, j int
	var v float64
	var err error
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opRowSums, err)
			}
			out[i] += v
		}
	}

	return out, nil
}

// ColSums returns the sum of each column.
// Complexity: O(r*c).
func ColSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opColSums, err)
	}
	out := make([]float64, m.Cols())
	var i, j int
	var v float64
	var err error
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opColSums, err)
			}
			out[j] += v
		}
	}

	return out, nil
}
