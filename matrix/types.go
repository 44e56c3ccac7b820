// SPDX-License-Identifier: MIT

// Package matrix: domain types for the dense matrix value type.
// This file intentionally contains ONLY domain-facing types. Errors live in
// errors.go, validators in validators.go, per the package conventions.
package matrix

import "fmt"

// Index addresses one cell as a (row, column) pair. Used by SetMany to name
// the positions of a bulk update.
type Index struct {
	Row int // row index, 0-based
	Col int // column index, 0-based
}

// Matrix is an immutable dense row-major matrix of float64 values.
//
//   - rows, cols hold the shape (both >= 1 for any constructed value).
//   - data is a flat buffer of length rows*cols in row-major order
//     (offset = i*cols + j), owned exclusively by this value: constructors
//     copy their input, accessors copy their output, and no operation
//     writes into an existing instance.
//   - All transforming operations allocate and return a fresh Matrix.
//
// The zero value Matrix{} is an empty placeholder returned alongside
// errors; it is not a usable matrix (shape 0×0) and constructors never
// produce it for valid input.
//
// Complexity notes: shape accessors and At are O(1); Set is O(n*m);
// ToRows/Add/Scale/Transpose are O(n*m); Mul is O(n*m*k).
type Matrix struct {
	rows, cols int       // row and column counts
	data       []float64 // contiguous row-major storage (len == rows*cols)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = Matrix{}
