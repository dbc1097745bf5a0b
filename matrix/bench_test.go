// Package matrix_test provides benchmarks for sparse assembly and products,
// using deterministic random fill.
package matrix_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/katalvlaran/harmonic/matrix"
)

// benchSizes are the matrix orders to benchmark.
var benchSizes = []int{1 << 12, 1 << 14, 1 << 16}

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.CSR
	sinkV []float64
)

func BenchmarkToCSR(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				sinkM = pathLaplacian(b, n)
			}
		})
	}
}

func BenchmarkSub(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			L := pathLaplacian(b, n)
			P := mustCSR(b, n, n, entry{0, 0, 1e6}, entry{n - 1, n - 1, 1e6})
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Sub(L, P)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkParMulVecTo(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		for _, threads := range []int{1, 4} {
			b.Run(fmt.Sprintf("n=%d/threads=%d", n, threads), func(b *testing.B) {
				m := pathLaplacian(b, n)
				x := randomVec(n, 1337)
				dst := make([]float64, n)
				opts := []matrix.Option{matrix.WithThreads(threads)}
				ctx := context.Background()
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					if err := matrix.ParMulVecTo(ctx, m, dst, x, opts...); err != nil {
						b.Fatal(err)
					}
				}
				sinkV = dst
			})
		}
	}
}
