// SPDX-License-Identifier: MIT
// Package: linalg
//
// combinators.go — the elementwise primitives every operator is built on.
//
// Tuple and Grid are fixed-shape containers of arbitrary elements. Zip pairs
// two vectors (or matrices) slot by slot; MapTuple / MapGrid fold the pairs
// back into numeric values. Traversal order is ascending index for tuples
// and x fastest within each y for grids.

package linalg

import "github.com/katalvlaran/linmath/seq"

// Pair holds two values of the same type.
type Pair[T any] struct {
	First, Second T
}

// Tuple is a fixed-size sequence of N arbitrary elements.
type Tuple[E any, N Dim] struct {
	e [MaxDim]E
}

// Len returns N.
func (t Tuple[E, N]) Len() int { return dimOf[N]() }

// At returns element i.
func (t Tuple[E, N]) At(i int) E {
	checkIndex(i, dimOf[N]())
	return t.e[i]
}

// Every reports whether pred holds for every element. It stops at the first
// failure.
func (t Tuple[E, N]) Every(pred func(E) bool) bool {
	for i := range seq.Upto(dimOf[N]()) {
		if !pred(t.e[i]) {
			return false
		}
	}
	return true
}

// Grid is the W×H counterpart of Tuple, indexed column first.
type Grid[E any, W, H Dim] struct {
	e [MaxDim][MaxDim]E
}

// Dims returns (W, H).
func (g Grid[E, W, H]) Dims() (w, h int) { return dimOf[W](), dimOf[H]() }

// At returns the element in column x, row y.
func (g Grid[E, W, H]) At(x, y int) E {
	checkIndex(x, dimOf[W]())
	checkIndex(y, dimOf[H]())
	return g.e[x][y]
}

// Every reports whether pred holds for every cell.
func (g Grid[E, W, H]) Every(pred func(E) bool) bool {
	for x, y := range seq.GridUpto(dimOf[W](), dimOf[H]()) {
		if !pred(g.e[x][y]) {
			return false
		}
	}
	return true
}

// Zip pairs the components of a and b.
func Zip[T Scalar, N Dim](a, b Vec[T, N]) Tuple[Pair[T], N] {
	var t Tuple[Pair[T], N]
	for i := range seq.Upto(dimOf[N]()) {
		t.e[i] = Pair[T]{a.e[i], b.e[i]}
	}
	return t
}

// ZipMat pairs the cells of a and b.
func ZipMat[T Scalar, W, H Dim](a, b Mat[T, W, H]) Grid[Pair[T], W, H] {
	var g Grid[Pair[T], W, H]
	for x, y := range seq.GridUpto(dimOf[W](), dimOf[H]()) {
		g.e[x][y] = Pair[T]{a.e[x][y], b.e[x][y]}
	}
	return g
}

// MapTuple builds a vector from f applied to each element of t.
func MapTuple[E any, U Scalar, N Dim](t Tuple[E, N], f func(E) U) Vec[U, N] {
	var v Vec[U, N]
	for i := range seq.Upto(dimOf[N]()) {
		v.e[i] = f(t.e[i])
	}
	return v
}

// MapGrid builds a matrix from f applied to each cell of g.
func MapGrid[E any, U Scalar, W, H Dim](g Grid[E, W, H], f func(E) U) Mat[U, W, H] {
	var m Mat[U, W, H]
	for x, y := range seq.GridUpto(dimOf[W](), dimOf[H]()) {
		m.e[x][y] = f(g.e[x][y])
	}
	return m
}

// Map applies f to every component of v. The result's element type is f's
// return type.
func Map[T, U Scalar, N Dim](v Vec[T, N], f func(T) U) Vec[U, N] {
	var out Vec[U, N]
	for i := range seq.Upto(dimOf[N]()) {
		out.e[i] = f(v.e[i])
	}
	return out
}

// MapMat applies f to every cell of m.
func MapMat[T, U Scalar, W, H Dim](m Mat[T, W, H], f func(T) U) Mat[U, W, H] {
	var out Mat[U, W, H]
	for x, y := range seq.GridUpto(dimOf[W](), dimOf[H]()) {
		out.e[x][y] = f(m.e[x][y])
	}
	return out
}

// zipWith is the shared body of the binary vector operators.
func zipWith[T Scalar, N Dim](a, b Vec[T, N], f func(x, y T) T) Vec[T, N] {
	return MapTuple(Zip(a, b), func(p Pair[T]) T { return f(p.First, p.Second) })
}

// zipMatWith is the shared body of the binary matrix operators.
func zipMatWith[T Scalar, W, H Dim](a, b Mat[T, W, H], f func(x, y T) T) Mat[T, W, H] {
	return MapGrid(ZipMat(a, b), func(p Pair[T]) T { return f(p.First, p.Second) })
}
