// SPDX-License-Identifier: MIT

// Package linalg is a fixed-dimension linear-algebra engine for small vectors
// and matrices (1..4 components per axis).
//
// What & Why:
//
//	Vec[T, N] and Mat[T, W, H] are plain value types parameterized by their
//	scalar type and by dimension marker types (D1..D4). Because dimensions
//	are part of the type, shape mismatches (adding a Vec3 to a Vec4,
//	multiplying a 3x2 by a 4x4) are rejected by the compiler, not at run time.
//	Values live in fixed arrays; no operation allocates.
//
// Conventions:
//
//	Matrices are indexed column first: m.At(x, y) is column x, row y.
//	MatOf takes its arguments in row-major reading order.
//	A vector multiplied by a matrix is treated as a row matrix, and the engine
//	does not distinguish v·M from M·v: VecMul and MulVec return the same
//	value. Transform matrices built by package transform rely on this.
//
// Equality:
//
//	Equal and == are exact elementwise comparisons. Use ApproxEqual for
//	tolerance-based checks.
//
// Errors:
//
//	There are no error returns. Numeric degeneracies surface as NaN or ±Inf
//	(normalizing a zero vector, an unresolvable zero pivot in Det). Det
//	eliminates in float64; for integer types it rounds the result and
//	reports a non-finite one as 0. Integer Div by zero panics as usual.
//	Programmer errors (wrong component count, index out of range) panic.
package linalg
