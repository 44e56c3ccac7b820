// Package matrix - constructors for the dense Matrix value type.
// Storage is row-major with the explicit index formula i*cols + j, chosen for
// cache friendliness and a single allocation per matrix.
//
// Purpose:
//   - Provide a named constructor for every construction shape (square
//     filled, rectangular filled, deep copy, single-row from a vector,
//     validated raw rows, identity) with strict validation before any
//     allocation.
//   - Guarantee exclusive ownership: every constructor copies its input, so
//     no caller ever holds an alias into internal storage.
//
// Complexity quicksheet:
//   - NewSquare/New: O(n*m) zero/fill-init; CopyOf: O(n*m);
//     FromVector: O(m); FromRows: O(n*m); Identity: O(n*n).
package matrix

import (
	"fmt"

	"github.com/linavis/linalg/vector"
)

// ctorErrorf wraps a sentinel with constructor context, preserving the
// sentinel via %w for errors.Is.
func ctorErrorf(ctor string, err error) error {
	return fmt.Errorf("matrix.%s: %w", ctor, err)
}

// NewSquare creates an n×n matrix filled with val.
// Stage 1 (Validate): ensure n >= 1.
// Stage 2 (Prepare): allocate flat backing slice, fill in ascending order.
// Stage 3 (Finalize): return new Matrix or ErrInvalidDimensions.
// Complexity: O(n²) time and memory.
func NewSquare(n int, val float64) (Matrix, error) {
	m, err := New(n, n, val)
	if err != nil {
		return Matrix{}, ctorErrorf("NewSquare", ErrInvalidDimensions)
	}

	return m, nil
}

// New creates an n×m matrix filled with val.
// Same staging as NewSquare. A matrix always has at least one row and one
// column; empty shapes fail with ErrInvalidDimensions.
// Complexity: O(n*m) time and memory.
func New(n, m int, val float64) (Matrix, error) {
	// Validate dimensions
	if err := ValidateShape(n, m); err != nil {
		return Matrix{}, ctorErrorf("New", err)
	}

	// Allocate flat slice and fill
	data := make([]float64, n*m)
	if val != 0 { // make already zero-fills
		for i := range data {
			data[i] = val
		}
	}

	return Matrix{rows: n, cols: m, data: data}, nil
}

// CopyOf returns a deep copy of m.
// The copy shares no storage with the original. Complexity: O(n*m).
func CopyOf(m Matrix) Matrix {
	data := make([]float64, len(m.data))
	copy(data, m.data)

	return Matrix{rows: m.rows, cols: m.cols, data: data}
}

// FromVector creates the 1×Dim matrix whose sole row equals v's elements.
// The elements are copied; the matrix never retains the vector.
// Fails with ErrInvalidDimensions for a 0-dimensional vector.
// Complexity: O(m).
func FromVector(v vector.Vector) (Matrix, error) {
	// A 1×0 matrix is not constructible; reject the empty vector.
	if v.Dim() == 0 {
		return Matrix{}, ctorErrorf("FromVector", ErrInvalidDimensions)
	}

	// ToSlice already hands out an owned copy; adopt it directly.
	return Matrix{rows: 1, cols: v.Dim(), data: v.ToSlice()}, nil
}

// FromRows creates a matrix from raw row data, validated and deep-copied.
// Stage 1 (Validate): non-empty, rectangular input via ValidateRows.
// Stage 2 (Prepare): allocate flat storage, copy row by row.
// Stage 3 (Finalize): return new Matrix, ErrInvalidDimensions for empty
// input, or ErrInvalidShape for ragged rows (e.g. [[1,2],[3]]).
// Complexity: O(n*m) time and memory.
func FromRows(rows [][]float64) (Matrix, error) {
	// Validate rectangularity before any allocation
	if err := ValidateRows(rows); err != nil {
		return Matrix{}, ctorErrorf("FromRows", err)
	}

	n, m := len(rows), len(rows[0])
	data := make([]float64, n*m)
	for i, row := range rows { // deterministic row-major copy
		copy(data[i*m:(i+1)*m], row)
	}

	return Matrix{rows: n, cols: m, data: data}, nil
}

// Identity creates the n×n identity matrix: 1 on the diagonal, 0 elsewhere.
//
// Implementation:
//   - Stage 1: build the n×n zero matrix via NewSquare.
//   - Stage 2: bulk-set the diagonal through SetMany, exercising the same
//     all-or-nothing update path the public API offers.
//
// Returns ErrInvalidDimensions when n < 1. Complexity: O(n²).
func Identity(n int) (Matrix, error) {
	zero, err := NewSquare(n, 0)
	if err != nil {
		return Matrix{}, ctorErrorf("Identity", ErrInvalidDimensions)
	}

	// Diagonal payload: ones at (k, k) for k = 0..n-1.
	ones := make([]float64, n)
	diag := make([]Index, n)
	for k := 0; k < n; k++ {
		ones[k] = 1
		diag[k] = Index{Row: k, Col: k}
	}

	id, err := zero.SetMany(ones, diag)
	if err != nil {
		// Unreachable for a well-formed diagonal; surface it regardless.
		return Matrix{}, ctorErrorf("Identity", err)
	}

	return id, nil
}
