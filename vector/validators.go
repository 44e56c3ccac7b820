// SPDX-License-Identifier: MIT
// Package: vector
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating size/index/dimension checks here.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.

package vector

// crossDim is the only dimension on which the cross product is defined.
const crossDim = 3

// ValidateSize ensures a requested construction size is non-negative.
// Returns ErrNegativeSize otherwise. Complexity: O(1).
func ValidateSize(n int) error {
	if n < 0 {
		return ErrNegativeSize
	}

	return nil
}

// ValidateIndex ensures 0 <= i < v.Dim().
// Returns ErrIndexOutOfBounds otherwise. Complexity: O(1).
func ValidateIndex(v Vector, i int) error {
	if i < 0 || i >= len(v.elems) {
		return ErrIndexOutOfBounds
	}

	return nil
}

// ValidateSameDim ensures both operands have equal dimension.
// Returns ErrDimensionMismatch otherwise. Complexity: O(1).
// Use for Add/Dot and any future element-wise binary kernel.
func ValidateSameDim(a, b Vector) error {
	if len(a.elems) != len(b.elems) {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateCrossDim ensures both operands are exactly 3-dimensional.
// Returns ErrNotThreeDimensional otherwise (which also matches
// ErrDimensionMismatch under errors.Is). Complexity: O(1).
func ValidateCrossDim(a, b Vector) error {
	if len(a.elems) != crossDim || len(b.elems) != crossDim {
		return ErrNotThreeDimensional
	}

	return nil
}
