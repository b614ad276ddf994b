// Copyright 2025 The go-matmul Authors. SPDX-License-Identifier: Apache-2.0

// matbench times the four matrix multiplication kernels against each other
// on square matrices.
//
// Usage:
//
//	matbench -sizes 128,256,512 -variants all -iters 10 -warmup 2
//
// Before timing, every selected variant is checked against the scalar
// kernel on each size. Results are reported as a table of ms/op and
// GFLOP/s per (variant, size).
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"runtime"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/ajroetker/go-highway/hwy"
	"github.com/ajroetker/go-matmul/matmul"
)

var (
	sizesFlag    = flag.String("sizes", "128,256,512", "Comma-separated square matrix sizes")
	variantsFlag = flag.String("variants", "all", "Comma-separated variants (scalar,parallel,vec,vecparallel) or 'all'")
	iters        = flag.Int("iters", 10, "Timed iterations per (variant, size)")
	warmup       = flag.Int("warmup", 2, "Untimed warmup iterations per (variant, size)")
)

type variant struct {
	name string
	fn   func(a, b []float32, m, n, p int) []float32
}

var allVariants = []variant{
	{"scalar", matmul.Multiply},
	{"parallel", matmul.MultiplyParallel},
	{"vec", matmul.MultiplyVec},
	{"vecparallel", matmul.MultiplyVecParallel},
}

func main() {
	flag.Parse()

	sizes, err := parseSizes(*sizesFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	variants, err := parseVariants(*variantsFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *iters <= 0 {
		fmt.Fprintf(os.Stderr, "Error: -iters must be positive\n")
		os.Exit(1)
	}

	fmt.Printf("SIMD: %s (%d-byte vectors, %d float32 lanes), GOMAXPROCS=%d\n\n",
		hwy.CurrentName(), hwy.CurrentWidth(), hwy.MaxLanes[float32](), runtime.GOMAXPROCS(0))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "VARIANT\tSIZE\tMS/OP\tGFLOP/S")
	for _, size := range sizes {
		a, b := generateMatrices(size)
		reference := matmul.Multiply(a, b, size, size, size)

		for _, v := range variants {
			if err := check(v.fn(a, b, size, size, size), reference); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %s at size %d: %v\n", v.name, size, err)
				os.Exit(1)
			}

			perOp := timeVariant(v.fn, a, b, size)
			flops := 2 * float64(size) * float64(size) * float64(size)
			fmt.Fprintf(w, "%s\t%d\t%.3f\t%.2f\n",
				v.name, size,
				float64(perOp.Nanoseconds())/1e6,
				flops/perOp.Seconds()/1e9)
		}
	}
	w.Flush()
}

// generateMatrices fills the operands the same way the package benchmarks
// do: a[i,j] = i+j, b[i,j] = i*j.
func generateMatrices(size int) (a, b []float32) {
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

// check compares a variant's output against the scalar reference with a
// relative tolerance; summation order differences can move the last bit on
// these non-integer-exact inputs.
func check(got, want []float32) error {
	if len(got) != len(want) {
		return fmt.Errorf("result length %d, want %d", len(got), len(want))
	}
	for i := range want {
		diff := math.Abs(float64(got[i] - want[i]))
		scale := math.Max(math.Abs(float64(want[i])), 1)
		if diff/scale > 1e-5 {
			return fmt.Errorf("result[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	return nil
}

func timeVariant(fn func(a, b []float32, m, n, p int) []float32, a, b []float32, size int) time.Duration {
	for range *warmup {
		fn(a, b, size, size, size)
	}
	start := time.Now()
	for range *iters {
		fn(a, b, size, size, size)
	}
	return time.Since(start) / time.Duration(*iters)
}

func parseSizes(s string) ([]int, error) {
	var sizes []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		size, err := strconv.Atoi(part)
		if err != nil || size <= 0 {
			return nil, fmt.Errorf("invalid size %q", part)
		}
		sizes = append(sizes, size)
	}
	if len(sizes) == 0 {
		return nil, fmt.Errorf("no sizes specified")
	}
	return sizes, nil
}

func parseVariants(s string) ([]variant, error) {
	if s == "all" {
		return allVariants, nil
	}
	var selected []variant
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		found := false
		for _, v := range allVariants {
			if v.name == part {
				selected = append(selected, v)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("unknown variant %q", part)
		}
	}
	if len(selected) == 0 {
		return nil, fmt.Errorf("no variants specified")
	}
	return selected, nil
}
