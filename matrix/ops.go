// SPDX-License-Identifier: MIT
// Package matrix - algebraic kernels on the Matrix value type: element-wise
// addition, scalar scaling, matrix multiplication and transpose. All kernels
// perform strict fail-fast validation via the central validators and return
// clear sentinel errors on dimension mismatches.
//
// Purpose:
//   - Keep every kernel pure: operands are read-only, results are fresh.
//   - Keep loop orders fixed (row-major, ascending k in Mul) so
//     floating-point results are reproducible run to run.

package matrix

import "fmt"

// ZeroSum is the initial per-cell accumulator value for Mul.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
)

// opErrorf wraps err with an operation tag, preserving the original error
// via %w so callers still match with errors.Is. Use only when err != nil.
// Complexity: O(1).
func opErrorf(tag string, err error) error {
	return fmt.Errorf("Matrix.%s: %w", tag, err)
}

// Add returns the element-wise sum m + o as a new matrix.
//
// Implementation:
//   - Stage 1: ValidateSameShape(m, o).
//   - Stage 2: single flat loop over the row-major buffers, 0..n*m-1.
//
// Returns ErrDimensionMismatch when shapes differ. Complexity: O(n*m).
func (m Matrix) Add(o Matrix) (Matrix, error) {
	// Validate shapes match
	if err := ValidateSameShape(m, o); err != nil {
		return Matrix{}, opErrorf(opAdd, err)
	}

	out := CopyOf(m)
	for idx := range out.data { // deterministic 0..n*m-1
		out.data[idx] += o.data[idx]
	}

	return out, nil
}

// Scale returns the element-wise scalar product m * s as a new matrix.
// No failure mode. Complexity: O(n*m).
func (m Matrix) Scale(s float64) Matrix {
	out := CopyOf(m)
	for idx := range out.data { // deterministic 0..n*m-1
		out.data[idx] *= s
	}

	return out
}

// Mul returns the matrix product m * o as a new Rows()×o.Cols() matrix.
//
// Implementation:
//   - Stage 1: ValidateMulShape — the inner dimensions must agree
//     (m.Cols() == o.Rows()). The check is deliberate hardening: skipping
//     it would turn a shape bug into an out-of-range read.
//   - Stage 2: classic triple loop, i → j → k, with k ascending over
//     [0, m.Cols()) and a scalar accumulator per cell. Fixed order keeps
//     floating-point summation reproducible.
//
// Returns ErrDimensionMismatch when the inner dimensions differ.
// Complexity: O(n*m*k) time, O(n*k) space for the result.
func (m Matrix) Mul(o Matrix) (Matrix, error) {
	// Validate inner dimensions agree
	if err := ValidateMulShape(m, o); err != nil {
		return Matrix{}, opErrorf(opMul, err)
	}

	out := Matrix{
		rows: m.rows,
		cols: o.cols,
		data: make([]float64, m.rows*o.cols),
	}
	for i := 0; i < m.rows; i++ {
		for j := 0; j < o.cols; j++ {
			sum := ZeroSum
			for k := 0; k < m.cols; k++ { // deterministic 0..k-1
				sum += m.data[i*m.cols+k] * o.data[k*o.cols+j]
			}
			out.data[i*out.cols+j] = sum
		}
	}

	return out, nil
}

// Transpose returns the Cols()×Rows() matrix with out[j][i] = m[i][j].
// Applying it twice yields a matrix equal to the original. No failure mode.
// Complexity: O(n*m).
func (m Matrix) Transpose() Matrix {
	out := Matrix{
		rows: m.cols,
		cols: m.rows,
		data: make([]float64, len(m.data)),
	}
	for i := 0; i < m.rows; i++ { // fixed i → j order
		for j := 0; j < m.cols; j++ {
			out.data[j*out.cols+i] = m.data[i*m.cols+j]
		}
	}

	return out
}
