// SPDX-License-Identifier: MIT

// Package matrix - safe accessors and copy-on-write updates for Matrix.
//
// Purpose:
//   - Guarantee safety at the public surface: At/Set/SetMany return errors
//     instead of panicking, with bounds proven before any work.
//   - Preserve immutability: Set and SetMany clone the receiver and write
//     into the clone; a failed call changes nothing and allocates nothing.
//   - Hand out only owned copies from readers (ToRows), never internal
//     storage.
package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt      = "At"      // method tag used in error wrappers
	ctxSet     = "Set"     // method tag used in error wrappers
	ctxSetMany = "SetMany" // method tag used in error wrappers
)

// ---------- formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// cellErrorf wraps an error with a uniform Matrix context and callsite
// indices, preserving the sentinel via %w.
func cellErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// Rows returns the number of rows. Complexity: O(1).
func (m Matrix) Rows() int {
	return m.rows // return stored row count
}

// Cols returns the number of columns. Complexity: O(1).
func (m Matrix) Cols() int {
	return m.cols // return stored column count
}

// ToRows returns a defensive deep copy of the rows as a fresh 2D slice.
// Callers can never mutate internal state through the returned value.
// Complexity: O(n*m).
func (m Matrix) ToRows() [][]float64 {
	out := make([][]float64, m.rows)
	for i := 0; i < m.rows; i++ {
		row := make([]float64, m.cols)
		copy(row, m.data[i*m.cols:(i+1)*m.cols])
		out[i] = row
	}

	return out
}

// At retrieves the element at (i, j).
// Stage 1 (Validate): bounds check via ValidateIndex.
// Stage 2 (Execute): read from the flat buffer at i*cols + j.
// Returns ErrIndexOutOfBounds on invalid indices. Complexity: O(1).
func (m Matrix) At(i, j int) (float64, error) {
	if err := ValidateIndex(m, i, j); err != nil {
		return 0, cellErrorf(ctxAt, i, j, err)
	}

	return m.data[i*m.cols+j], nil
}

// Set returns a new matrix identical to the receiver except that cell (i, j)
// holds val. The receiver is never mutated.
// Stage 1 (Validate): bounds check via ValidateIndex.
// Stage 2 (Execute): clone the flat buffer, write the one cell.
// Returns ErrIndexOutOfBounds on invalid indices. Complexity: O(n*m).
func (m Matrix) Set(val float64, i, j int) (Matrix, error) {
	if err := ValidateIndex(m, i, j); err != nil {
		return Matrix{}, cellErrorf(ctxSet, i, j, err)
	}

	// Copy-on-write: fresh storage, single cell replaced
	out := CopyOf(m)
	out.data[i*m.cols+j] = val

	return out, nil
}

// SetMany returns a new matrix with cell at[k] set to vals[k] for every k.
//
// Implementation:
//   - Stage 1 (Validate): lengths must pair 1:1 (ErrLengthMismatch), then
//     EVERY index pair is bounds-checked (ErrIndexOutOfBounds) — all before
//     any allocation or write, so the update is all-or-nothing and a failed
//     call leaves the receiver conceptually (and actually) untouched.
//   - Stage 2 (Execute): clone once, apply writes in ascending k. Later
//     duplicates of the same index pair win, deterministically.
//
// Complexity: O(len(at) + n*m).
func (m Matrix) SetMany(vals []float64, at []Index) (Matrix, error) {
	// Validate the whole payload up front
	if err := ValidateBulkUpdate(m, vals, at); err != nil {
		return Matrix{}, fmt.Errorf("Matrix.%s: %w", ctxSetMany, err)
	}

	// Single clone, then bulk apply
	out := CopyOf(m)
	for k := 0; k < len(at); k++ { // deterministic 0..k-1
		out.data[at[k].Row*m.cols+at[k].Col] = vals[k]
	}

	return out, nil
}

// Equal reports structural equality: same shape, identical float64 cells
// (exact comparison, no epsilon). Complexity: O(n*m).
func (m Matrix) Equal(o Matrix) bool {
	if m.rows != o.rows || m.cols != o.cols {
		return false
	}
	for i := range m.data {
		if m.data[i] != o.data[i] {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer for easy debugging: one bracketed line per
// row, e.g. "[1, 2]\n[3, 4]\n". Complexity: O(n*m).
func (m Matrix) String() string {
	var sb strings.Builder
	for i := 0; i < m.rows; i++ { // iterate over rows
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < m.cols; j++ { // iterate over columns
			// compute flat index directly for performance
			fmt.Fprintf(&sb, "%g", m.data[i*m.cols+j])
			if j < m.cols-1 {
				sb.WriteString(_fmtSep)
			}
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
