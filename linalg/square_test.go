// SPDX-License-Identifier: MIT

package linalg_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linmath/linalg"
)

func TestSquare_Triangularity(t *testing.T) {
	t.Parallel()

	upper := linalg.MatOf[int, linalg.D3, linalg.D3](1, 2, 3, 0, 4, 5, 0, 0, 6)
	lower := upper.Transpose()
	diag := linalg.Diagonal[int, linalg.D3](2)
	full := linalg.MatOf[int, linalg.D3, linalg.D3](1, 2, 3, 4, 5, 6, 7, 8, 9)

	cases := []struct {
		name                           string
		m                              linalg.Mat[int, linalg.D3, linalg.D3]
		upper, lower, triangular, isDg bool
	}{
		{"upper", upper, true, false, true, false},
		{"lower", lower, false, true, true, false},
		{"diagonal", diag, true, true, true, true},
		{"full", full, false, false, false, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.upper, linalg.IsUpperTriangular(tc.m))
			assert.Equal(t, tc.lower, linalg.IsLowerTriangular(tc.m))
			assert.Equal(t, tc.triangular, linalg.IsTriangular(tc.m))
			assert.Equal(t, tc.isDg, linalg.IsDiagonal(tc.m))
		})
	}

	require.Equal(t, 24.0, linalg.DiagonalProduct(upper))
	require.True(t, linalg.AllDiagonalZero(linalg.MatOf[int, linalg.D2, linalg.D2](0, 1, 1, 0)))
	require.False(t, linalg.AllDiagonalZero(upper))
}

func TestDet_Fixtures(t *testing.T) {
	t.Parallel()

	m3 := linalg.MatOf[float64, linalg.D3, linalg.D3]
	cases := []struct {
		name string
		m    linalg.Mat3
		want float64
	}{
		{"upper", m3(1, 2, 3, 0, 4, 5, 0, 0, 6), 24},
		{"lower", m3(2, 0, 0, 3, 4, 0, 1, 5, 6), 48},
		{"triangular after one step", m3(2, 1, 3, 7, 6, 9, 4, 2, 0), -30},
		{"pivot swap", m3(0, 2, 1, 3, 1, 4, 5, 6, 2), 41},
		{"unit", m3(1, 2, 3, 2, 4, 7, 3, 5, 9), 1},
		// All diagonal entries zero short-circuits even though the true
		// determinant is 22.
		{"zero diagonal", m3(0, 1, 2, 1, 0, 3, 4, 5, 0), 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, linalg.Det(tc.m))
		})
	}

	require.Equal(t, 10.0, linalg.Det(linalg.MatOf[float64, linalg.D2, linalg.D2](4, 7, 2, 6)))
	require.Equal(t, 0.0, linalg.Det(linalg.MatOf[float64, linalg.D2, linalg.D2](0, 1, 1, 0)))
	require.Equal(t, 30.0, linalg.Det(linalg.MatOf[float64, linalg.D4, linalg.D4](
		3, 0, 0, 0,
		0, 2, 0, 0,
		0, 0, 5, 0,
		0, 0, 0, 1,
	)))
	require.Equal(t, -1.0, linalg.Det(linalg.MatOf[float64, linalg.D4, linalg.D4](
		1, 0, 0, 0,
		0, 0, 1, 0,
		0, 1, 0, 0,
		0, 0, 0, 1,
	)))
	require.Equal(t, int32(24), linalg.Det(linalg.MatOf[int32, linalg.D3, linalg.D3](1, 2, 3, 0, 4, 5, 0, 0, 6)))
	require.Equal(t, 7.0, linalg.Det(linalg.MatOf[float64, linalg.D1, linalg.D1](7)))
}

func TestDet_RegressionFixtures(t *testing.T) {
	t.Parallel()

	m := linalg.MatOf[float64, linalg.D4, linalg.D4](
		2, 3, 1, 4,
		0, 1, 5, 2,
		1, 0, 3, 1,
		4, 2, 1, 3,
	)
	require.Equal(t, -16.0, math.Round(linalg.Det(m)))
	require.Equal(t, -16.0, math.Round(linalg.Det(m.Transpose())))

	// Exact determinant is 880; elimination lands within rounding of it.
	p := primes()
	require.InDelta(t, 880, linalg.Det(p), 1e-9)
	require.InDelta(t, 880, linalg.Det(p.Transpose()), 1e-9)
}

func TestDet_Properties(t *testing.T) {
	t.Parallel()

	var zero linalg.Mat4
	require.Equal(t, 0.0, linalg.Det(zero))
	require.Equal(t, 1.0, linalg.Det(linalg.Identity[float64, linalg.D4]()))

	r := newRand()
	for range 100 {
		m := randMat4(r)
		d, dt := linalg.Det(m), linalg.Det(m.Transpose())
		require.InDelta(t, d, dt, 1e-9*math.Max(1, math.Abs(d)))
	}
}

func TestDet_UnresolvablePivotPropagatesNaN(t *testing.T) {
	t.Parallel()

	m := linalg.MatOf[float64, linalg.D3, linalg.D3](
		1, 2, 3,
		2, 4, 6,
		1, 1, 1,
	)
	require.True(t, math.IsNaN(linalg.Det(m)))
}

func TestDet_IntegerMatrices(t *testing.T) {
	t.Parallel()

	i3 := linalg.MatOf[int32, linalg.D3, linalg.D3]
	cases := []struct {
		name string
		m    linalg.Mat[int32, linalg.D3, linalg.D3]
		want int32
	}{
		{"elimination needs fractions", i3(2, 1, 3, 7, 6, 9, 4, 2, 0), -30},
		{"pivot swap", i3(0, 2, 1, 3, 1, 4, 5, 6, 2), 41},
		{"unit", i3(1, 2, 3, 2, 4, 7, 3, 5, 9), 1},
		// The float elimination yields NaN here; integers report 0.
		{"unresolvable pivot", i3(1, 2, 3, 2, 4, 6, 1, 1, 1), 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.NotPanics(t, func() {
				assert.Equal(t, tc.want, linalg.Det(tc.m))
			})
		})
	}

	// Rounded to nearest, not truncated toward zero.
	m := linalg.MatOf[int, linalg.D4, linalg.D4](
		2, 3, 1, 4,
		0, 1, 5, 2,
		1, 0, 3, 1,
		4, 2, 1, 3,
	)
	require.Equal(t, -16, linalg.Det(m))
	require.Equal(t, -16, linalg.Det(m.Transpose()))

	f := linalg.MatOf[float32, linalg.D3, linalg.D3](2, 1, 3, 7, 6, 9, 4, 2, 0)
	require.Equal(t, float32(-30), linalg.Det(f))
}

func TestDet_DoesNotMutateArgument(t *testing.T) {
	t.Parallel()

	m := linalg.MatOf[float64, linalg.D3, linalg.D3](0, 2, 1, 3, 1, 4, 5, 6, 2)
	before := m
	_ = linalg.Det(m)
	require.Equal(t, before, m)
}
