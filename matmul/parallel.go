// Copyright 2025 The go-matmul Authors. SPDX-License-Identifier: Apache-2.0

package matmul

import (
	"sync"

	"github.com/ajroetker/go-highway/hwy/contrib/workerpool"
)

// defaultPool backs the parallel variants when the caller does not supply a
// pool. Created on first use, sized to GOMAXPROCS, and kept for the life of
// the process; the kernels themselves never tear a pool down.
var defaultPool = sync.OnceValue(func() *workerpool.Pool {
	return workerpool.New(0)
})

// MultiplyParallel computes the same product as Multiply with the output
// split into disjoint contiguous row ranges, one unit of work per range,
// dispatched on the package-default pool. The call blocks until every range
// has completed. Each element is still accumulated sequentially by a single
// worker, so the result is numerically identical to Multiply regardless of
// the number of workers.
func MultiplyParallel(a, b []float32, m, n, p int) []float32 {
	return MultiplyParallelWithPool(defaultPool(), a, b, m, n, p)
}

// MultiplyParallelWithPool is MultiplyParallel on a caller-managed pool.
func MultiplyParallelWithPool(pool *workerpool.Pool, a, b []float32, m, n, p int) []float32 {
	result := make([]float32, m*p)
	pool.ParallelFor(m, func(start, end int) {
		multiplyRows(a, b, result, start, end, n, p)
	})
	return result
}

// MultiplyVecParallel combines the row-range decomposition of
// MultiplyParallel with the vectorized inner loop of MultiplyVec: each
// worker runs the vector kernel over its own rows against the shared
// read-only inputs. Same rounding caveats as MultiplyVec.
func MultiplyVecParallel(a, b []float32, m, n, p int) []float32 {
	return MultiplyVecParallelWithPool(defaultPool(), a, b, m, n, p)
}

// MultiplyVecParallelWithPool is MultiplyVecParallel on a caller-managed
// pool.
func MultiplyVecParallelWithPool(pool *workerpool.Pool, a, b []float32, m, n, p int) []float32 {
	result := make([]float32, m*p)
	pool.ParallelFor(m, func(start, end int) {
		multiplyRowsVec(a, b, result, start, end, n, p)
	})
	return result
}
