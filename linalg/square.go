// SPDX-License-Identifier: MIT
// Package: linalg
//
// square.go — operations defined only for square matrices.
//
// These are free functions over Mat[T, N, N] so that calling them on a
// rectangular matrix fails to compile.
//
// Det performs Gaussian elimination on a float64 copy:
//   1. For each elimination column x in [0, N-1):
//      a. all rows zero, all columns zero, or all diagonal entries zero → 0.
//      b. already upper or lower triangular → sign · Π diag.
//      c. zero pivot → swap with the first row y where m[x][y] and m[y][x]
//         are both nonzero, flipping sign. No such row leaves the pivot at
//         zero and the next step divides by it.
//      d. row(y) ← row(y) − row(x)·m[x][y]·(1/m[x][x]) for every y > x.
//   2. Return sign · Π diag.
//
// Complexity: O(N³) time, O(1) extra space.

package linalg

import (
	"context"
	"log/slog"

	"github.com/katalvlaran/linmath/seq"
)

// Diagonal returns the identity scaled by s. Unlike Splat for vectors, the
// off-diagonal cells stay zero.
func Diagonal[T Scalar, N Dim](s T) Mat[T, N, N] {
	var m Mat[T, N, N]
	for i := range seq.Upto(dimOf[N]()) {
		m.e[i][i] = s
	}
	return m
}

// Identity returns Diagonal(1).
func Identity[T Scalar, N Dim]() Mat[T, N, N] {
	return Diagonal[T, N](1)
}

// DiagonalProduct returns the product of the diagonal entries, computed in
// float64.
func DiagonalProduct[T Scalar, N Dim](m Mat[T, N, N]) float64 {
	p := 1.0
	for i := range seq.Upto(dimOf[N]()) {
		p *= float64(m.e[i][i])
	}
	return p
}

// AllDiagonalZero reports whether every diagonal entry is zero.
func AllDiagonalZero[T Scalar, N Dim](m Mat[T, N, N]) bool {
	for i := range seq.Upto(dimOf[N]()) {
		if m.e[i][i] != 0 {
			return false
		}
	}
	return true
}

// IsUpperTriangular reports whether every entry strictly below the diagonal
// is zero.
func IsUpperTriangular[T Scalar, N Dim](m Mat[T, N, N]) bool {
	n := dimOf[N]()
	for x, y := range seq.GridUpto(n, n) {
		if y > x && m.e[x][y] != 0 {
			return false
		}
	}
	return true
}

// IsLowerTriangular reports whether every entry strictly above the diagonal
// is zero.
func IsLowerTriangular[T Scalar, N Dim](m Mat[T, N, N]) bool {
	n := dimOf[N]()
	for x, y := range seq.GridUpto(n, n) {
		if x > y && m.e[x][y] != 0 {
			return false
		}
	}
	return true
}

// IsTriangular reports whether m is upper or lower triangular.
func IsTriangular[T Scalar, N Dim](m Mat[T, N, N]) bool {
	return IsUpperTriangular(m) || IsLowerTriangular(m)
}

// IsDiagonal reports whether m is both upper and lower triangular.
func IsDiagonal[T Scalar, N Dim](m Mat[T, N, N]) bool {
	return IsUpperTriangular(m) && IsLowerTriangular(m)
}

// Det returns the determinant of m. See the file header for the exact
// elimination steps; numeric degeneracies surface as NaN or ±Inf.
//
// Elimination always runs in float64. Integer types get the result rounded
// to nearest, and a NaN or infinite result becomes 0 for them.
func Det[T Scalar, N Dim](m Mat[T, N, N]) T {
	return fromFloat64[T](det(CastMat[float64](m)))
}

func det[N Dim](w Mat[float64, N, N]) float64 {
	n := dimOf[N]()
	sign := 1.0

	for x := range seq.Upto(n - 1) {
		if w.AllRowsZero() || w.AllColsZero() || AllDiagonalZero(w) {
			logDet(slog.LevelDebug, "det: degenerate matrix", x)
			return 0
		}
		if IsTriangular(w) {
			logDet(slog.LevelDebug, "det: triangular shortcut", x)
			return sign * DiagonalProduct(w)
		}

		if w.e[x][x] == 0 {
			swapped := false
			for y := range seq.Upto(n) {
				if w.e[x][y] != 0 && w.e[y][x] != 0 {
					w.SwapRows(x, y)
					sign = -sign
					swapped = true
					logDet(slog.LevelDebug, "det: pivot swap", x, slog.Int("with", y))
					break
				}
			}
			if !swapped {
				logDet(slog.LevelWarn, "det: zero pivot", x)
			}
		}

		pivot := w.Row(x)
		for y := range seq.Range(x+1, n) {
			w.SetRow(y, w.Row(y).Sub(pivot.MulScalar(w.e[x][y]).DivScalar(w.e[x][x])))
		}
	}

	return sign * DiagonalProduct(w)
}

// logDet emits one record on the package logger; arguments are only built
// when the level is enabled.
func logDet(level slog.Level, msg string, col int, attrs ...slog.Attr) {
	l, ok := logEnabled(level)
	if !ok {
		return
	}
	l.LogAttrs(context.Background(), level, msg, append(attrs, slog.Int("col", col))...)
}
