// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the vector
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered error conditions.

package vector

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "vector: ..." for consistency and to allow
// easy grepping across logs. Call sites wrap these with method context via
// fmt.Errorf("Vector.Op: %w", ErrX) — callers still match with errors.Is.

var (
	// ErrNegativeSize is returned when a constructor is asked for a vector
	// of negative length. Zero is a legal (empty) dimension.
	ErrNegativeSize = errors.New("vector: negative size")

	// ErrIndexOutOfBounds indicates that an index is outside [0, Dim).
	// Public indexers (At/Set) MUST return this, not panic.
	ErrIndexOutOfBounds = errors.New("vector: index out of bounds")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands, e.g. Add or Dot on vectors of different length.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")
)

// ErrNotThreeDimensional signals that a cross product was requested on an
// operand whose dimension is not exactly 3. It wraps ErrDimensionMismatch,
// so errors.Is matches either sentinel.
var ErrNotThreeDimensional = fmt.Errorf("vector: operand is not 3-dimensional: %w", ErrDimensionMismatch)
