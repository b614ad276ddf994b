// Copyright 2025 The go-matmul Authors. SPDX-License-Identifier: Apache-2.0

package matmul

import "github.com/ajroetker/go-highway/hwy"

// MultiplyVec computes the same product as Multiply using the hwy vector
// primitives: the column range of each output row is walked in
// vector-width strips, with one accumulator register held across the full
// k loop per strip.
//
// Per-element accumulation stays k ascending, so results are bit-identical
// to Multiply whenever every partial product and sum is exactly
// representable (small integer-valued matrices). For arbitrary inputs the
// fused multiply-add can differ from scalar multiply-then-add in the last
// bit; exact equality across variants is not guaranteed in general.
func MultiplyVec(a, b []float32, m, n, p int) []float32 {
	result := make([]float32, m*p)
	multiplyRowsVec(a, b, result, 0, m, n, p)
	return result
}

// multiplyRowsVec computes output rows [start, end) with the vectorized
// inner loop, writing only dst[start*p : end*p]. Shared by MultiplyVec and
// the vectorized row-parallel variant.
//
// The final strip of a row is narrower than the vector width whenever p is
// not a lane multiple. That tail goes through the masked load/store
// discipline so no lane past the remaining columns is ever read from b or
// written to dst.
func multiplyRowsVec(a, b, dst []float32, start, end, n, p int) {
	lanes := hwy.MaxLanes[float32]()
	for i := start; i < end; i++ {
		row := dst[i*p : (i+1)*p]

		var j int
		for j = 0; j+lanes <= p; j += lanes {
			acc := hwy.Zero[float32]()
			for k := range n {
				vA := hwy.Set(a[i*n+k])
				acc = hwy.MulAdd(vA, hwy.Load(b[k*p+j:]), acc)
			}
			hwy.Store(acc, row[j:])
		}

		if j < p {
			mask := hwy.TailMask[float32](p - j)
			acc := hwy.Zero[float32]()
			for k := range n {
				vA := hwy.Set(a[i*n+k])
				acc = hwy.MulAdd(vA, hwy.MaskLoad(mask, b[k*p+j:]), acc)
			}
			hwy.MaskStore(mask, acc, row[j:])
		}
	}
}
