// SPDX-License-Identifier: MIT

// Shared fixtures and helpers for the matrix test suite.
package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/linavis/linalg/matrix"
)

// mustFromRows builds a matrix from literal rows, failing the test on error.
func mustFromRows(t testing.TB, rows [][]float64) matrix.Matrix {
	t.Helper()
	m, err := matrix.FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows(%v): %v", rows, err)
	}
	return m
}

// mustAt reads one cell, failing the test on error.
func mustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}
	return v
}

// randRows fills an n×m grid with deterministic pseudo-random values.
func randRows(n, m int, seed int64) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, m)
		for j := range rows[i] {
			rows[i][j] = rng.NormFloat64()
		}
	}
	return rows
}

// intRows fills an n×m grid with deterministic small integer values, for
// laws that only hold bit-for-bit over exactly representable operands.
func intRows(n, m int, seed int64) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, m)
		for j := range rows[i] {
			rows[i][j] = float64(rng.Intn(201) - 100)
		}
	}
	return rows
}
