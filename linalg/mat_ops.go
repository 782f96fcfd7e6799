// SPDX-License-Identifier: MIT

package linalg

// Neg returns -m.
func (m Mat[T, W, H]) Neg() Mat[T, W, H] {
	return MapMat(m, func(x T) T { return 0 - x })
}

// Add returns m + o.
func (m Mat[T, W, H]) Add(o Mat[T, W, H]) Mat[T, W, H] { return zipMatWith(m, o, add[T]) }

// Sub returns m - o.
func (m Mat[T, W, H]) Sub(o Mat[T, W, H]) Mat[T, W, H] { return zipMatWith(m, o, sub[T]) }

// AddScalar returns m + s.
func (m Mat[T, W, H]) AddScalar(s T) Mat[T, W, H] { return m.Add(Fill[T, W, H](s)) }

// SubScalar returns m - s.
func (m Mat[T, W, H]) SubScalar(s T) Mat[T, W, H] { return m.Sub(Fill[T, W, H](s)) }

// MulScalar returns m * s.
func (m Mat[T, W, H]) MulScalar(s T) Mat[T, W, H] {
	return zipMatWith(m, Fill[T, W, H](s), mul[T])
}

// DivScalar returns m / s. Float types multiply by the reciprocal of s.
func (m Mat[T, W, H]) DivScalar(s T) Mat[T, W, H] {
	return zipMatWith(m, Fill[T, W, H](s), divBy(s))
}

// ScalarSub returns s - m.
func (m Mat[T, W, H]) ScalarSub(s T) Mat[T, W, H] { return Fill[T, W, H](s).Sub(m) }

// ScalarDiv returns s / m, cell by cell.
func (m Mat[T, W, H]) ScalarDiv(s T) Mat[T, W, H] {
	return zipMatWith(Fill[T, W, H](s), m, div[T])
}

// AddAssign sets m = m + o and returns m.
func (m *Mat[T, W, H]) AddAssign(o Mat[T, W, H]) *Mat[T, W, H] {
	*m = m.Add(o)
	return m
}

// SubAssign sets m = m - o and returns m.
func (m *Mat[T, W, H]) SubAssign(o Mat[T, W, H]) *Mat[T, W, H] {
	*m = m.Sub(o)
	return m
}

// AddScalarAssign sets m = m + s and returns m.
func (m *Mat[T, W, H]) AddScalarAssign(s T) *Mat[T, W, H] {
	*m = m.AddScalar(s)
	return m
}

// SubScalarAssign sets m = m - s and returns m.
func (m *Mat[T, W, H]) SubScalarAssign(s T) *Mat[T, W, H] {
	*m = m.SubScalar(s)
	return m
}

// MulScalarAssign sets m = m * s and returns m.
func (m *Mat[T, W, H]) MulScalarAssign(s T) *Mat[T, W, H] {
	*m = m.MulScalar(s)
	return m
}

// DivScalarAssign sets m = m / s and returns m.
func (m *Mat[T, W, H]) DivScalarAssign(s T) *Mat[T, W, H] {
	*m = m.DivScalar(s)
	return m
}
