// SPDX-License-Identifier: MIT

package linalg

import "github.com/katalvlaran/linmath/seq"

// Mul returns the matrix product a·b, C[x][y] = Σ_i a[i][y]·b[x][i].
// The inner dimension (a's column count, b's row count) must match, which the
// type parameters enforce.
func Mul[T Scalar, W, H, W2 Dim](a Mat[T, W, H], b Mat[T, W2, W]) Mat[T, W2, H] {
	var c Mat[T, W2, H]
	inner := dimOf[W]()
	for x, y := range seq.GridUpto(dimOf[W2](), dimOf[H]()) {
		var sum T
		for i := range seq.Upto(inner) {
			sum += a.e[i][y] * b.e[x][i]
		}
		c.e[x][y] = sum
	}
	return c
}

// Chain multiplies square matrices left to right. With no arguments it
// returns the identity.
func Chain[T Scalar, N Dim](ms ...Mat[T, N, N]) Mat[T, N, N] {
	out := Identity[T, N]()
	for _, m := range ms {
		out = Mul(out, m)
	}
	return out
}

// MulAssign sets m = m·o.
func (m *Mat[T, W, H]) MulAssign(o Mat[T, W, W]) *Mat[T, W, H] {
	*m = Mul(*m, o)
	return m
}

// ToRowMat returns v as a 1-row matrix.
func ToRowMat[T Scalar, N Dim](v Vec[T, N]) Mat[T, N, D1] {
	var m Mat[T, N, D1]
	for i := range seq.Upto(dimOf[N]()) {
		m.e[i][0] = v.e[i]
	}
	return m
}

// ToColMat returns v as a 1-column matrix.
func ToColMat[T Scalar, N Dim](v Vec[T, N]) Mat[T, D1, N] {
	var m Mat[T, D1, N]
	m.e[0] = v.e
	return m
}

// RowToVec returns the single row of m.
func RowToVec[T Scalar, N Dim](m Mat[T, N, D1]) Vec[T, N] {
	return m.Row(0)
}

// ColToVec returns the single column of m.
func ColToVec[T Scalar, N Dim](m Mat[T, D1, N]) Vec[T, N] {
	return m.Col(0)
}

// VecMul returns v·m, treating v as a row vector.
func VecMul[T Scalar, N, W2 Dim](v Vec[T, N], m Mat[T, W2, N]) Vec[T, W2] {
	return RowToVec(Mul(ToRowMat(v), m))
}

// MulVec returns the same value as VecMul(v, m). The written order of the
// operands does not change the result; every transform in this module is
// laid out for row vectors.
func MulVec[T Scalar, W2, N Dim](m Mat[T, W2, N], v Vec[T, N]) Vec[T, W2] {
	return VecMul(v, m)
}
