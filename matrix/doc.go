// Package matrix provides an immutable, dense row-major float64 matrix
// value type and its algebra.
//
// The matrix package provides:
//
//   - Named constructors for every construction shape (NewSquare, New,
//     CopyOf, FromVector, FromRows, Identity) with strict validation up
//     front — ragged row data is rejected at the door.
//   - Cell access with explicit bounds checking (At, Set, SetMany)
//     returning sentinel errors instead of panicking; Set and SetMany are
//     copy-on-write and never touch the receiver.
//   - Algebraic kernels: Add, Scale, Mul, Transpose, with fail-fast
//     dimension validation and fixed, deterministic loop orders.
//
// Storage is a flat row-major buffer with the explicit index formula
// i*cols + j. Every operation reads its operands and returns a freshly
// allocated result, so values are trivially safe to share across
// concurrent readers without locking.
//
// Matrices here are a correctness-and-clarity reference: no pivoting, no
// sparse forms, no blocking. See the examples in this package and in
// vector for usage patterns.
package matrix
