// Package matrix_test provides benchmarks for core matrix operations,
// using deterministic random fill.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/linavis/linalg/matrix"
)

// benchSizes are the square matrix sizes to benchmark.
var benchSizes = []int{16, 64, 256}

// sinks to defeat dead-code elimination
var (
	sinkM matrix.Matrix
	sinkR [][]float64
)

func benchMatrix(b *testing.B, n int, seed int64) matrix.Matrix {
	b.Helper()
	m, err := matrix.FromRows(randRows(n, n, seed))
	if err != nil {
		b.Fatal(err)
	}
	return m
}

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := benchMatrix(b, n, 1337)
			y := benchMatrix(b, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := x.Add(y)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := benchMatrix(b, n, 1337)
			y := benchMatrix(b, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := x.Mul(y)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkTranspose(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := benchMatrix(b, n, 1337)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkM = x.Transpose()
			}
		})
	}
}

func BenchmarkToRows(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := benchMatrix(b, n, 1337)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkR = x.ToRows()
			}
		})
	}
}
