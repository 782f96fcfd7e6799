// SPDX-License-Identifier: MIT

package linalg

// Dot returns Σ a[i]·b[i].
func Dot[T Scalar, N Dim](a, b Vec[T, N]) T {
	var sum T
	z := Zip(a, b)
	for i := range z.Len() {
		p := z.At(i)
		sum += p.First * p.Second
	}
	return sum
}

// Cross returns the cross product a × b.
func Cross[T Scalar](a, b Vec[T, D3]) Vec[T, D3] {
	ax, ay, az := a.XYZ()
	bx, by, bz := b.XYZ()
	return V3(
		ay*bz-az*by,
		az*bx-ax*bz,
		ax*by-ay*bx,
	)
}

// AbsScalar returns |x|.
func AbsScalar[T Scalar](x T) T {
	if x <= 0 {
		return 0 - x
	}
	return x
}

// Abs returns the componentwise absolute value of v.
func Abs[T Scalar, N Dim](v Vec[T, N]) Vec[T, N] {
	return Map(v, AbsScalar[T])
}

// ClampScalar limits x to [lo, hi].
func ClampScalar[T Scalar](x, lo, hi T) T {
	return min(max(x, lo), hi)
}

// Min returns the componentwise minimum of a and b.
func Min[T Scalar, N Dim](a, b Vec[T, N]) Vec[T, N] {
	return zipWith(a, b, func(x, y T) T { return min(x, y) })
}

// Max returns the componentwise maximum of a and b.
func Max[T Scalar, N Dim](a, b Vec[T, N]) Vec[T, N] {
	return zipWith(a, b, func(x, y T) T { return max(x, y) })
}

// Clamp limits each component of v to [lo[i], hi[i]].
func Clamp[T Scalar, N Dim](v, lo, hi Vec[T, N]) Vec[T, N] {
	return Min(Max(v, lo), hi)
}

// MinMat returns the cellwise minimum of a and b.
func MinMat[T Scalar, W, H Dim](a, b Mat[T, W, H]) Mat[T, W, H] {
	return zipMatWith(a, b, func(x, y T) T { return min(x, y) })
}

// MaxMat returns the cellwise maximum of a and b.
func MaxMat[T Scalar, W, H Dim](a, b Mat[T, W, H]) Mat[T, W, H] {
	return zipMatWith(a, b, func(x, y T) T { return max(x, y) })
}

// ClampMat limits each cell of m to [lo, hi] at the same position.
func ClampMat[T Scalar, W, H Dim](m, lo, hi Mat[T, W, H]) Mat[T, W, H] {
	return MinMat(MaxMat(m, lo), hi)
}

// MinFunc is Min with a custom ordering: component i is b[i] iff
// less(b[i], a[i]).
func MinFunc[T Scalar, N Dim](a, b Vec[T, N], less func(x, y T) bool) Vec[T, N] {
	return zipWith(a, b, func(x, y T) T {
		if less(y, x) {
			return y
		}
		return x
	})
}

// MaxFunc is Max with a custom ordering: component i is b[i] iff
// less(a[i], b[i]).
func MaxFunc[T Scalar, N Dim](a, b Vec[T, N], less func(x, y T) bool) Vec[T, N] {
	return zipWith(a, b, func(x, y T) T {
		if less(x, y) {
			return y
		}
		return x
	})
}

// ClampFunc is Clamp with a custom ordering.
func ClampFunc[T Scalar, N Dim](v, lo, hi Vec[T, N], less func(x, y T) bool) Vec[T, N] {
	return MinFunc(MaxFunc(v, lo, less), hi, less)
}
