// Copyright 2025 The go-matmul Authors. SPDX-License-Identifier: Apache-2.0

package matmul

import (
	"fmt"
	"testing"

	"github.com/ajroetker/go-highway/hwy"
)

// benchMatrices builds the size x size operands used by all benchmarks:
// a[i,j] = i+j, b[i,j] = i*j.
func benchMatrices(size int) (a, b []float32) {
	a = make([]float32, size*size)
	b = make([]float32, size*size)
	for i := range size {
		for j := range size {
			a[i*size+j] = float32(i + j)
			b[i*size+j] = float32(i * j)
		}
	}
	return a, b
}

func benchVariant(b *testing.B, fn func(a, bm []float32, m, n, p int) []float32) {
	b.Logf("Dispatch level: %s", hwy.CurrentName())
	for _, size := range []int{64, 256, 512} {
		b.Run(fmt.Sprintf("%d", size), func(b *testing.B) {
			ma, mb := benchMatrices(size)
			flops := float64(2 * size * size * size)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				fn(ma, mb, size, size, size)
			}
			b.ReportMetric(flops*float64(b.N)/b.Elapsed().Seconds()/1e9, "GFLOPS")
		})
	}
}

func BenchmarkMultiply(b *testing.B) {
	benchVariant(b, Multiply)
}

func BenchmarkMultiplyParallel(b *testing.B) {
	benchVariant(b, MultiplyParallel)
}

func BenchmarkMultiplyVec(b *testing.B) {
	benchVariant(b, MultiplyVec)
}

func BenchmarkMultiplyVecParallel(b *testing.B) {
	benchVariant(b, MultiplyVecParallel)
}
