// Copyright 2025 The go-matmul Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package matmul provides dense float32 matrix multiplication in four
// interchangeable variants: scalar, row-parallel, vectorized, and
// vectorized row-parallel.
//
// All variants share one contract. Matrices are flat row-major slices:
// a is m x n, b is n x p, and the returned slice is a freshly allocated
// m x p product with result[i*p+j] = sum over k of a[i*n+k]*b[k*p+j].
// Inputs are never mutated and no state is retained between calls.
//
// The vectorized variants use the go-highway hwy primitives and pick up
// whatever vector width the current dispatch level provides (8 float32
// lanes on AVX2). The parallel variants distribute disjoint row ranges
// over a workerpool.Pool; use the WithPool entry points to supply your
// own pool, otherwise a package-level pool sized to GOMAXPROCS is used.
//
// Example:
//
//	a := []float32{1, 2, 3, 4, 5, 6} // 2x3
//	b := []float32{7, 8, 9, 10, 11, 12} // 3x2
//	c := matmul.Multiply(a, b, 2, 3, 2) // [58 64 139 154]
//
// Callers are responsible for supplying consistent dimensions: the
// kernels do not verify slice lengths against m, n and p, and a
// mismatch panics on an out-of-range index rather than returning an
// error.
package matmul
