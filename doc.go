// Package linalg is the numeric core behind an educational linear-algebra
// visualizer: small, immutable vector and matrix value types with
// dimension-validated operations.
//
// 🚀 What is linalg?
//
//	A correctness-first, pure-Go reference implementation that brings together:
//		• Vector — fixed-dimension float64 vectors: Add, Scale, Dot, Cross, Map
//		• Matrix — dense row-major float64 matrices: Add, Scale, Mul, Transpose
//		• Copy-on-write updates: Set / SetMany never mutate the receiver
//		• Fail-fast validation: sentinel errors, no panics on user input
//
// ✨ Why choose linalg?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – fixed accumulation orders, reproducible float results
//   - Pure Go – no cgo, no hidden deps
//   - Immutable – every operation returns a fresh value; instances are safe
//     to share across goroutines without locking
//
// Everything is organized under two subpackages:
//
//	vector/ — dense Vector value type and its algebra
//	matrix/ — dense Matrix value type, constructors (incl. Identity) and kernels
//
// Quick sketch:
//
//	v, _ := vector.New(3)            // [0 0 0]
//	w := vector.FromSlice([]float64{1, 2, 3})
//	sum, _ := v.Add(w)               // new vector, v untouched
//
// linalg is a clarity-over-speed kernel: no pivoting, no sparse storage,
// no SIMD. It exists so that what the screen shows is exactly what the
// formula says.
//
//	go get github.com/linavis/linalg
package linalg
