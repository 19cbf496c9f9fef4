// Package matrix_test provides benchmarks for the operation kernels,
// using deterministic random fill for Dense matrices.
package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/bradybhalla/matrixcalc/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{16, 64, 128}

// sinks to defeat dead-code elimination
var (
	sinkM matrix.Matrix
)

// fillDenseRand fills m with deterministic pseudo-random values in [-1, 1).
func fillDenseRand(b *testing.B, m *matrix.Dense, seed int64) {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	var i, j int
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if err := m.Set(i, j, rng.Float64()*2-1); err != nil {
				b.Fatal(err)
			}
		}
	}
}

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustDense(b, n, n)
			B := mustDense(b, n, n)
			fillDenseRand(b, A, 1337)
			fillDenseRand(b, B, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Add(A, B)
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
			A := mustDense(b, n, n)
			B := mustDense(b, n, n)
			fillDenseRand(b, A, 1337)
			fillDenseRand(b, B, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Mul(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkRREF(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustDense(b, n, n)
			fillDenseRand(b, A, 1337)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.RREF(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkInverse(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustDense(b, n, n)
			fillDenseRand(b, A, 1337)
			// Nudge the diagonal away from singularity.
			for i := 0; i < n; i++ {
				v, _ := A.At(i, i)
				if err := A.Set(i, i, v+float64(n)); err != nil {
					b.Fatal(err)
				}
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Inverse(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}
