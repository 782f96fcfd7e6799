// SPDX-License-Identifier: MIT

package linalg

import (
	"fmt"
	"iter"
	"strings"

	"github.com/katalvlaran/linmath/seq"
)

// Vec is a fixed-length vector of N scalars of type T.
//
// The zero value is the zero vector. Slots at positions >= N are always zero,
// which makes == on two vectors of the same type an exact elementwise
// comparison.
type Vec[T Scalar, N Dim] struct {
	e [MaxDim]T
}

// Splat returns a vector with every component set to s.
func Splat[T Scalar, N Dim](s T) Vec[T, N] {
	var v Vec[T, N]
	for i := range seq.Upto(dimOf[N]()) {
		v.e[i] = s
	}
	return v
}

// VecOf returns the vector with the given components. It panics unless
// exactly N values are passed.
func VecOf[T Scalar, N Dim](xs ...T) Vec[T, N] {
	checkCount("VecOf", len(xs), dimOf[N]())
	var v Vec[T, N]
	copy(v.e[:], xs)
	return v
}

// FromSlice copies the first N values of s. It panics if s is shorter than N.
func FromSlice[T Scalar, N Dim](s []T) Vec[T, N] {
	n := dimOf[N]()
	if len(s) < n {
		panic(fmt.Sprintf("linalg: FromSlice: got %d values, want at least %d", len(s), n))
	}
	var v Vec[T, N]
	copy(v.e[:n], s)
	return v
}

// V2 returns the 2-vector (x, y).
func V2[T Scalar](x, y T) Vec[T, D2] {
	return Vec[T, D2]{e: [MaxDim]T{x, y}}
}

// V3 returns the 3-vector (x, y, z).
func V3[T Scalar](x, y, z T) Vec[T, D3] {
	return Vec[T, D3]{e: [MaxDim]T{x, y, z}}
}

// V4 returns the 4-vector (x, y, z, w).
func V4[T Scalar](x, y, z, w T) Vec[T, D4] {
	return Vec[T, D4]{e: [MaxDim]T{x, y, z, w}}
}

// Dim returns N.
func (v Vec[T, N]) Dim() int { return dimOf[N]() }

// At returns component i.
func (v Vec[T, N]) At(i int) T {
	checkIndex(i, dimOf[N]())
	return v.e[i]
}

// Set assigns component i.
func (v *Vec[T, N]) Set(i int, x T) {
	checkIndex(i, dimOf[N]())
	v.e[i] = x
}

// Ptr returns a pointer to component i. Writes through it are visible through
// At and through every named accessor of that slot.
func (v *Vec[T, N]) Ptr(i int) *T {
	checkIndex(i, dimOf[N]())
	return &v.e[i]
}

// Slice returns a copy of the N components.
func (v Vec[T, N]) Slice() []T {
	out := make([]T, dimOf[N]())
	copy(out, v.e[:])
	return out
}

// All yields (index, component) pairs in ascending index order.
func (v Vec[T, N]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := range seq.Upto(dimOf[N]()) {
			if !yield(i, v.e[i]) {
				return
			}
		}
	}
}

// XY returns components 0 and 1.
func (v Vec[T, N]) XY() (x, y T) {
	return v.At(0), v.At(1)
}

// XYZ returns components 0, 1 and 2.
func (v Vec[T, N]) XYZ() (x, y, z T) {
	return v.At(0), v.At(1), v.At(2)
}

// XYZW returns components 0 through 3.
func (v Vec[T, N]) XYZW() (x, y, z, w T) {
	return v.At(0), v.At(1), v.At(2), v.At(3)
}

// String formats the vector as "[ e0 e1 ... ]".
func (v Vec[T, N]) String() string {
	var sb strings.Builder
	sb.WriteString("[ ")
	for i := range seq.Upto(dimOf[N]()) {
		fmt.Fprint(&sb, v.e[i])
		sb.WriteByte(' ')
	}
	sb.WriteByte(']')
	return sb.String()
}
