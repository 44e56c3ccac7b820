// Package vector provides an immutable, fixed-dimension float64 vector
// value type and its algebra.
//
// The vector package provides:
//
//   - Named constructors (New, NewFilled, FromSlice, CopyOf) instead of a
//     single overloaded entry point, so the intent is visible at the call
//     site and no runtime type discrimination is needed.
//   - Element access with explicit bounds checking (At, Set) returning
//     sentinel errors instead of panicking.
//   - Algebraic kernels: Add, Scale, Dot, Cross and an index-aware Map.
//
// Every operation reads its operands and returns a freshly allocated
// result; a Vector is never mutated after construction, so values are
// trivially safe to share across concurrent readers without locking.
//
// Accumulation orders are fixed (ascending index), so floating-point
// results are reproducible run to run.
//
// See the examples in this package for usage patterns.
package vector
