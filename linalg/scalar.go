// SPDX-License-Identifier: MIT
// Package: linalg
//
// scalar.go — element and dimension constraints shared by Vec and Mat.
//
// Design:
//   • Scalar admits every Go integer and floating-point type.
//   • Dimensions are zero-size marker types; Dim is a closed set so storage
//     can be a fixed [MaxDim] array and never grows.

package linalg

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// MaxDim is the largest supported vector length and matrix extent.
const MaxDim = 4

// Scalar is the set of element types a Vec or Mat can hold.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Dim is a compile-time dimension. Use D1, D2, D3 or D4 as type arguments.
type Dim interface {
	D1 | D2 | D3 | D4
	Len() int
}

// D1 is the dimension 1.
type D1 struct{}

// D2 is the dimension 2.
type D2 struct{}

// D3 is the dimension 3.
type D3 struct{}

// D4 is the dimension 4.
type D4 struct{}

// Len returns 1.
func (D1) Len() int { return 1 }

// Len returns 2.
func (D2) Len() int { return 2 }

// Len returns 3.
func (D3) Len() int { return 3 }

// Len returns 4.
func (D4) Len() int { return 4 }

// dimOf returns the size encoded by the marker type N.
func dimOf[N Dim]() int {
	var n N
	return n.Len()
}

// checkIndex panics when i is not in [0, n).
// Storage slots past n must stay zero, so even in-array writes are refused.
func checkIndex(i, n int) {
	if uint(i) >= uint(n) {
		panic(fmt.Sprintf("linalg: index %d out of range [0,%d)", i, n))
	}
}

// checkCount panics when a variadic constructor received the wrong number of values.
func checkCount(op string, got, want int) {
	if got != want {
		panic(fmt.Sprintf("linalg: %s: got %d values, want %d", op, got, want))
	}
}

// isIntegral reports whether T is an integer type.
func isIntegral[T Scalar]() bool {
	var half T = 1
	half /= 2
	return half == 0
}

// fromFloat64 converts f to T. Integer types round to nearest and map NaN
// and ±Inf to zero, which they cannot represent.
func fromFloat64[T Scalar](f float64) T {
	if !isIntegral[T]() {
		return T(f)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return T(math.Round(f))
}
