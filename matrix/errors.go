// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation should panic on user-triggered error
// conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// shape/length -> index bounds -> dimension mismatch.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are
	// non-positive. Constructors must validate before allocation; a matrix
	// always has at least one row and one column.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrInvalidShape is returned when raw row data supplied to FromRows is
	// ragged: at least one row differs in length from the first.
	ErrInvalidShape = errors.New("matrix: rows have unequal lengths")

	// ErrIndexOutOfBounds indicates that a row or column index is outside
	// valid bounds. Public indexers (At/Set/SetMany) MUST return this, not
	// panic.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands, e.g. Add on different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrLengthMismatch is returned by SetMany when the values and indices
	// slices differ in length: positions and payloads must pair 1:1.
	ErrLengthMismatch = errors.New("matrix: values/indices length mismatch")
)
