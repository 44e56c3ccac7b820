// SPDX-License-Identifier: MIT

// Package vector: the Vector value type.
// This file intentionally contains ONLY the domain type. Errors live in
// errors.go, validators in validators.go, per the package conventions.
package vector

import "fmt"

// MapFunc transforms one element during Vector.Map. It receives the current
// value, its index, and a snapshot of the whole element sequence, and returns
// the replacement value. The snapshot is a copy; writing into it never
// affects the receiver.
type MapFunc func(x float64, i int, all []float64) float64

// Vector is an immutable, fixed-dimension dense vector of float64 values.
//
//   - elems is owned exclusively by this value: constructors copy their
//     input, accessors copy their output, and no operation writes into an
//     existing instance. The zero value is the empty (0-dimensional) vector.
//   - All transforming operations allocate and return a fresh Vector.
//
// Complexity notes: accessors are O(1) except ToSlice (O(n)); kernels are
// O(n) in the dimension.
type Vector struct {
	elems []float64 // exclusively owned backing storage, len == Dim()
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = Vector{}
