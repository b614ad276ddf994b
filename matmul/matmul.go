// Copyright 2025 The go-matmul Authors. SPDX-License-Identifier: Apache-2.0

package matmul

// Multiply computes the m x p product of two row-major matrices using the
// scalar triple loop. Each output element is a dot product accumulated over
// k ascending; the other variants preserve this per-element order, so this
// kernel is the correctness reference for all of them.
func Multiply(a, b []float32, m, n, p int) []float32 {
	result := make([]float32, m*p)
	multiplyRows(a, b, result, 0, m, n, p)
	return result
}

// multiplyRows computes output rows [start, end) with the scalar inner loop,
// writing only dst[start*p : end*p]. Shared by Multiply and the row-parallel
// variant; the disjoint row ranges make concurrent calls safe without locks.
func multiplyRows(a, b, dst []float32, start, end, n, p int) {
	for i := start; i < end; i++ {
		for j := range p {
			var sum float32
			for k := range n {
				sum += a[i*n+k] * b[k*p+j]
			}
			dst[i*p+j] = sum
		}
	}
}
