// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep constructors/kernels minimal by delegating shape/index checks here.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Ragged-row and bulk-index validation are O(n) in their input length and
//    run strictly BEFORE any result allocation, so a failed call leaves no
//    half-built state behind.
//
// Note:
//  - Each composite validator follows a fixed sequence (shape before index,
//    length before bounds).

package matrix

// ValidateShape ensures requested dimensions are positive.
// Returns ErrInvalidDimensions otherwise. Complexity: O(1).
func ValidateShape(rows, cols int) error {
	if rows < 1 || cols < 1 {
		return ErrInvalidDimensions
	}

	return nil
}

// ValidateIndex ensures 0 <= i < m.Rows() and 0 <= j < m.Cols().
// Returns ErrIndexOutOfBounds otherwise. Complexity: O(1).
func ValidateIndex(m Matrix, i, j int) error {
	if i < 0 || i >= m.rows {
		return ErrIndexOutOfBounds
	}
	if j < 0 || j >= m.cols {
		return ErrIndexOutOfBounds
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Returns ErrDimensionMismatch otherwise. Complexity: O(1).
// Use for Add and any future element-wise binary kernel.
func ValidateSameShape(a, b Matrix) error {
	if a.rows != b.rows || a.cols != b.cols {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateMulShape ensures the inner dimensions of a*b agree
// (a.Cols() == b.Rows()). Returns ErrDimensionMismatch otherwise.
// Complexity: O(1).
func ValidateMulShape(a, b Matrix) error {
	if a.cols != b.rows {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateRows ensures raw 2D row data is non-empty and rectangular:
// at least one row, a non-empty first row, and every row of equal length.
// Returns ErrInvalidDimensions for empty input, ErrInvalidShape for ragged
// rows. Complexity: O(n) over the row count.
func ValidateRows(rows [][]float64) error {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return ErrInvalidDimensions
	}
	width := len(rows[0]) // the first row fixes the column count
	for i := 1; i < len(rows); i++ {
		if len(rows[i]) != width {
			return ErrInvalidShape
		}
	}

	return nil
}

// ValidateBulkUpdate ensures a SetMany payload is applicable as a whole:
// values and indices pair 1:1 and EVERY index pair is inside the matrix.
// Checks lengths first (ErrLengthMismatch), then bounds in ascending k
// (ErrIndexOutOfBounds). All-or-nothing: callers must not apply anything
// when this fails. Complexity: O(len(at)).
func ValidateBulkUpdate(m Matrix, vals []float64, at []Index) error {
	if len(vals) != len(at) {
		return ErrLengthMismatch
	}
	for k := 0; k < len(at); k++ { // deterministic 0..k-1
		if err := ValidateIndex(m, at[k].Row, at[k].Col); err != nil {
			return err
		}
	}

	return nil
}
