// Package vector - constructors and safe accessors for the Vector value type.
//
// Purpose:
//   - Provide named constructors for every construction shape (zero-filled,
//     value-filled, copy, from-slice) with strict validation up front.
//   - Guarantee safety at the public surface: At/Set return errors instead of
//     panicking, and every accessor hands out owned copies only.
//
// Complexity quicksheet:
//   - New/NewFilled/FromSlice/CopyOf: O(n); Dim/At: O(1); ToSlice/Set: O(n).
package vector

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

// ---------- formatting literals ----------

const (
	_fmtOpen  = "["
	_fmtClose = "]"
	_fmtSep   = ", "
)

// vectorErrorf wraps a sentinel with a uniform Vector context and the
// callsite index, preserving the sentinel via %w for errors.Is.
func vectorErrorf(method string, i int, err error) error {
	return fmt.Errorf("Vector.%s(%d): %w", method, i, err)
}

// ctorErrorf wraps a sentinel with constructor context.
func ctorErrorf(ctor string, n int, err error) error {
	return fmt.Errorf("vector.%s(%d): %w", ctor, n, err)
}

// New creates a vector of n zeros.
// Stage 1 (Validate): ensure n >= 0.
// Stage 2 (Prepare): allocate zero-filled backing slice.
// Stage 3 (Finalize): return new Vector or ErrNegativeSize.
// Complexity: O(n) time and memory.
func New(n int) (Vector, error) {
	// Validate requested size
	if err := ValidateSize(n); err != nil {
		return Vector{}, ctorErrorf("New", n, err)
	}

	// Allocate zeroed storage and return
	return Vector{elems: make([]float64, n)}, nil
}

// NewFilled creates a vector of n copies of val.
// Same validation as New. Complexity: O(n).
func NewFilled(n int, val float64) (Vector, error) {
	// Validate requested size
	if err := ValidateSize(n); err != nil {
		return Vector{}, ctorErrorf("NewFilled", n, err)
	}

	v := Vector{elems: make([]float64, n)}
	// Fill in ascending index order
	for i := range v.elems {
		v.elems[i] = val
	}

	return v, nil
}

// FromSlice creates a vector wrapping a copy of vals; dimension = len(vals).
// The input slice is copied, so later mutation of vals never leaks into the
// vector. A nil slice yields the empty vector. Complexity: O(n).
func FromSlice(vals []float64) Vector {
	elems := make([]float64, len(vals))
	copy(elems, vals)

	return Vector{elems: elems}
}

// CopyOf returns an element-wise copy of v.
// The copy shares no storage with the original. Complexity: O(n).
func CopyOf(v Vector) Vector {
	return FromSlice(v.elems)
}

// Dim returns the element count. Complexity: O(1).
func (v Vector) Dim() int {
	return len(v.elems) // dimension is the backing length
}

// ToSlice returns a defensive copy of the underlying elements.
// Callers can never mutate internal state through the returned slice.
// Complexity: O(n).
func (v Vector) ToSlice() []float64 {
	out := make([]float64, len(v.elems))
	copy(out, v.elems)

	return out
}

// At retrieves the element at index i.
// Stage 1 (Validate): bounds check via ValidateIndex.
// Stage 2 (Execute): read from backing slice.
// Returns ErrIndexOutOfBounds when i < 0 or i >= Dim(). Complexity: O(1).
func (v Vector) At(i int) (float64, error) {
	if err := ValidateIndex(v, i); err != nil {
		return 0, vectorErrorf(ctxAt, i, err)
	}

	return v.elems[i], nil
}

// Set returns a new vector identical to the receiver except that index i
// holds val. The receiver is never mutated.
// Stage 1 (Validate): bounds check via ValidateIndex.
// Stage 2 (Execute): copy the backing slice, write the one cell.
// Returns ErrIndexOutOfBounds on an invalid index. Complexity: O(n).
func (v Vector) Set(val float64, i int) (Vector, error) {
	if err := ValidateIndex(v, i); err != nil {
		return Vector{}, vectorErrorf(ctxSet, i, err)
	}

	// Copy-on-write: fresh storage, single cell replaced
	out := CopyOf(v)
	out.elems[i] = val

	return out, nil
}

// Equal reports structural equality: same dimension, identical float64
// elements (exact comparison, no epsilon). Complexity: O(n).
func (v Vector) Equal(o Vector) bool {
	if len(v.elems) != len(o.elems) {
		return false
	}
	for i := range v.elems {
		if v.elems[i] != o.elems[i] {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer for easy debugging, e.g. "[1, 2, 3]".
// Complexity: O(n) for string construction.
func (v Vector) String() string {
	var sb strings.Builder
	sb.WriteString(_fmtOpen)
	for i, x := range v.elems {
		if i > 0 {
			sb.WriteString(_fmtSep)
		}
		fmt.Fprintf(&sb, "%g", x)
	}
	sb.WriteString(_fmtClose)

	return sb.String()
}
