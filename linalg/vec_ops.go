// SPDX-License-Identifier: MIT

package linalg

import "math"

func add[T Scalar](a, b T) T { return a + b }
func sub[T Scalar](a, b T) T { return a - b }
func mul[T Scalar](a, b T) T { return a * b }
func div[T Scalar](a, b T) T { return a / b }

// divBy returns x / s as x * (1/s) for float types and truncating division
// for integers.
func divBy[T Scalar](s T) func(T, T) T {
	if isIntegral[T]() {
		return div[T]
	}
	r := 1 / s
	return func(x, _ T) T { return x * r }
}

// Neg returns -v.
func (v Vec[T, N]) Neg() Vec[T, N] {
	return Map(v, func(x T) T { return 0 - x })
}

// Add returns v + o.
func (v Vec[T, N]) Add(o Vec[T, N]) Vec[T, N] { return zipWith(v, o, add[T]) }

// Sub returns v - o.
func (v Vec[T, N]) Sub(o Vec[T, N]) Vec[T, N] { return zipWith(v, o, sub[T]) }

// Mul returns the elementwise product of v and o.
func (v Vec[T, N]) Mul(o Vec[T, N]) Vec[T, N] { return zipWith(v, o, mul[T]) }

// Div returns the elementwise quotient v / o. Integer division by zero panics
// as usual; float division follows IEEE 754.
func (v Vec[T, N]) Div(o Vec[T, N]) Vec[T, N] { return zipWith(v, o, div[T]) }

// AddScalar returns v + s.
func (v Vec[T, N]) AddScalar(s T) Vec[T, N] { return v.Add(Splat[T, N](s)) }

// SubScalar returns v - s.
func (v Vec[T, N]) SubScalar(s T) Vec[T, N] { return v.Sub(Splat[T, N](s)) }

// MulScalar returns v * s.
func (v Vec[T, N]) MulScalar(s T) Vec[T, N] { return v.Mul(Splat[T, N](s)) }

// DivScalar returns v / s. Float types multiply by the reciprocal of s.
func (v Vec[T, N]) DivScalar(s T) Vec[T, N] { return zipWith(v, Splat[T, N](s), divBy(s)) }

// ScalarSub returns s - v.
func (v Vec[T, N]) ScalarSub(s T) Vec[T, N] { return Splat[T, N](s).Sub(v) }

// ScalarDiv returns s / v.
func (v Vec[T, N]) ScalarDiv(s T) Vec[T, N] { return Splat[T, N](s).Div(v) }

// AddAssign sets v = v + o and returns v.
func (v *Vec[T, N]) AddAssign(o Vec[T, N]) *Vec[T, N] {
	*v = v.Add(o)
	return v
}

// SubAssign sets v = v - o and returns v.
func (v *Vec[T, N]) SubAssign(o Vec[T, N]) *Vec[T, N] {
	*v = v.Sub(o)
	return v
}

// MulAssign sets v = v * o elementwise and returns v.
func (v *Vec[T, N]) MulAssign(o Vec[T, N]) *Vec[T, N] {
	*v = v.Mul(o)
	return v
}

// DivAssign sets v = v / o elementwise and returns v.
func (v *Vec[T, N]) DivAssign(o Vec[T, N]) *Vec[T, N] {
	*v = v.Div(o)
	return v
}

// AddScalarAssign sets v = v + s and returns v.
func (v *Vec[T, N]) AddScalarAssign(s T) *Vec[T, N] {
	*v = v.AddScalar(s)
	return v
}

// SubScalarAssign sets v = v - s and returns v.
func (v *Vec[T, N]) SubScalarAssign(s T) *Vec[T, N] {
	*v = v.SubScalar(s)
	return v
}

// MulScalarAssign sets v = v * s and returns v.
func (v *Vec[T, N]) MulScalarAssign(s T) *Vec[T, N] {
	*v = v.MulScalar(s)
	return v
}

// DivScalarAssign sets v = v / s and returns v.
func (v *Vec[T, N]) DivScalarAssign(s T) *Vec[T, N] {
	*v = v.DivScalar(s)
	return v
}

// MulMatAssign sets v = v·m.
func (v *Vec[T, N]) MulMatAssign(m Mat[T, N, N]) *Vec[T, N] {
	*v = VecMul(*v, m)
	return v
}

// LengthSquared returns Σ e·e. The sum is accumulated in float64 for every
// element type.
func (v Vec[T, N]) LengthSquared() float64 {
	var sum float64
	for _, x := range v.All() {
		f := float64(x)
		sum += f * f
	}
	return sum
}

// Length returns the Euclidean norm of v.
func (v Vec[T, N]) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// Normalized returns v scaled to unit length. A zero vector yields NaN
// components for float types.
func (v Vec[T, N]) Normalized() Vec[T, N] {
	l := v.Length()
	return Map(v, func(x T) T { return T(float64(x) / l) })
}

// Every reports whether pred holds for every component.
func (v Vec[T, N]) Every(pred func(T) bool) bool {
	for _, x := range v.All() {
		if !pred(x) {
			return false
		}
	}
	return true
}

// Equal reports exact elementwise equality.
func (v Vec[T, N]) Equal(o Vec[T, N]) bool {
	return Zip(v, o).Every(func(p Pair[T]) bool { return p.First == p.Second })
}

// IsZero reports whether every component is zero.
func (v Vec[T, N]) IsZero() bool {
	return v.Every(func(x T) bool { return x == 0 })
}
