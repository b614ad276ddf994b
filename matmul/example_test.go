// Copyright 2025 The go-matmul Authors. SPDX-License-Identifier: Apache-2.0

package matmul_test

import (
	"fmt"

	"github.com/ajroetker/go-matmul/matmul"
)

func ExampleMultiply() {
	// 2x3 matrix times 3x2 matrix.
	a := []float32{
		1, 2, 3,
		4, 5, 6,
	}
	b := []float32{
		7, 8,
		9, 10,
		11, 12,
	}

	c := matmul.Multiply(a, b, 2, 3, 2)
	fmt.Println(c)
	// Output: [58 64 139 154]
}
