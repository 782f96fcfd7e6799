// SPDX-License-Identifier: MIT

package linalg

import "github.com/katalvlaran/linmath/seq"

// Resize returns v as an M-vector: truncated when M < N, extended with fill
// when M > N.
//
//	p := linalg.Resize[linalg.D4](linalg.V3(1.0, 2, 3), 1) // (1, 2, 3, 1)
func Resize[M Dim, T Scalar, N Dim](v Vec[T, N], fill T) Vec[T, M] {
	n := dimOf[N]()
	var out Vec[T, M]
	for i := range seq.Upto(dimOf[M]()) {
		if i < n {
			out.e[i] = v.e[i]
		} else {
			out.e[i] = fill
		}
	}
	return out
}

// Cast converts every component of v to U.
func Cast[U, T Scalar, N Dim](v Vec[T, N]) Vec[U, N] {
	return Map(v, func(x T) U { return U(x) })
}

// CastMat converts every cell of m to U.
func CastMat[U, T Scalar, W, H Dim](m Mat[T, W, H]) Mat[U, W, H] {
	return MapMat(m, func(x T) U { return U(x) })
}
