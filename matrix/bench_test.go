// Package matrix_test provides benchmarks for the elimination engine,
// using deterministic random fill.
package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/echelon/matrix"
)

// benchSizes are the matrix sizes to benchmark; capacity is raised to match.
var benchSizes = []int{16, 32, 64, 128}

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Matrix
	sinkI int
)

// fillRand builds an n×n matrix with entries in [-1, 1) from a fixed seed.
func fillRand(b *testing.B, n int, seed int64) *matrix.Matrix {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	m, err := matrix.New(n, matrix.WithCapacity(n, n))
	if err != nil {
		b.Fatal(err)
	}
	row := make([]float64, n)
	for i := 0; i < n; i++ {
		for j := range row {
			row[j] = rng.Float64()*2 - 1
		}
		if err = m.AppendRow(row); err != nil {
			b.Fatal(err)
		}
	}

	return m
}

func BenchmarkEchelon(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := fillRand(b, n, 1337)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Echelon(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkReducedEchelon(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := fillRand(b, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.ReducedEchelon(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkRank(b *testing.B) {
	b.ReportAllocs()
	A := fillRand(b, 64, 99)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r, err := matrix.Rank(A)
		if err != nil {
			b.Fatal(err)
		}
		sinkI = r
	}
}
