// SPDX-License-Identifier: MIT

package linalg

import "math"

// ApproxEqualScalar reports whether |a-b| <= tol. NaN is never approximately
// equal to anything.
func ApproxEqualScalar[T Scalar](a, b T, tol float64) bool {
	return math.Abs(float64(a)-float64(b)) <= tol
}

// ApproxEqual reports whether every component pair is within tol.
func ApproxEqual[T Scalar, N Dim](a, b Vec[T, N], tol float64) bool {
	return Zip(a, b).Every(func(p Pair[T]) bool {
		return ApproxEqualScalar(p.First, p.Second, tol)
	})
}

// ApproxEqualMat reports whether every cell pair is within tol.
func ApproxEqualMat[T Scalar, W, H Dim](a, b Mat[T, W, H], tol float64) bool {
	return ZipMat(a, b).Every(func(p Pair[T]) bool {
		return ApproxEqualScalar(p.First, p.Second, tol)
	})
}
