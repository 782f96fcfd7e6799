// SPDX-License-Identifier: MIT

package linalg_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linmath/linalg"
)

func TestMul_Rectangular(t *testing.T) {
	t.Parallel()

	a := linalg.MatOf[int, linalg.D3, linalg.D2](
		1, 2, 3,
		4, 5, 6,
	)
	b := linalg.MatOf[int, linalg.D2, linalg.D3](
		7, 8,
		9, 10,
		11, 12,
	)
	require.Equal(t, linalg.MatOf[int, linalg.D2, linalg.D2](
		58, 64,
		139, 154,
	), linalg.Mul(a, b))
}

func TestMul_MatrixByColumn(t *testing.T) {
	t.Parallel()

	a := linalg.MatOf[int, linalg.D3, linalg.D3](2, 1, 3, 7, 6, 9, 4, 2, 0)
	b := linalg.MatOf[int, linalg.D1, linalg.D3](6, 28, 496)
	require.Equal(t, linalg.MatOf[int, linalg.D1, linalg.D3](
		2*6+1*28+3*496,
		7*6+6*28+9*496,
		4*6+2*28+0*496,
	), linalg.Mul(a, b))
}

func TestMul_Identity(t *testing.T) {
	t.Parallel()

	id := linalg.Identity[float64, linalg.D4]()
	r := newRand()
	for range 50 {
		m := randMat4(r)
		require.Equal(t, m, linalg.Mul(m, id))
		require.Equal(t, m, linalg.Mul(id, m))
	}
}

func TestChain(t *testing.T) {
	t.Parallel()

	s := linalg.Diagonal[int, linalg.D2](2)
	n := linalg.MatOf[int, linalg.D2, linalg.D2](1, 1, 0, 1)
	require.Equal(t, linalg.Identity[int, linalg.D2](), linalg.Chain[int, linalg.D2]())
	require.Equal(t, linalg.Mul(linalg.Mul(s, n), s), linalg.Chain(s, n, s))

	m := s
	m.MulAssign(n)
	require.Equal(t, linalg.Mul(s, n), m)
}

func TestVecMat_Conversions(t *testing.T) {
	t.Parallel()

	v := linalg.V3(1, 2, 3)
	row := linalg.ToRowMat(v)
	col := linalg.ToColMat(v)
	require.Equal(t, linalg.MatOf[int, linalg.D3, linalg.D1](1, 2, 3), row)
	require.Equal(t, linalg.MatOf[int, linalg.D1, linalg.D3](1, 2, 3), col)
	require.Equal(t, v, linalg.RowToVec(row))
	require.Equal(t, v, linalg.ColToVec(col))
	require.Equal(t, col, row.Transpose())
}

func TestVecMat_OrderDoesNotMatter(t *testing.T) {
	t.Parallel()

	v := linalg.V4(1, 2, 3, 4)
	m := linalg.MatOf[int, linalg.D1, linalg.D4](2, 1, 3, 7)
	require.Equal(t, linalg.VecOf[int, linalg.D1](41), linalg.VecMul(v, m))
	require.Equal(t, linalg.VecOf[int, linalg.D1](41), linalg.MulVec(m, v))

	r := newRand()
	for range 50 {
		x := randVec4(r)
		sq := randMat4(r)
		require.Equal(t, linalg.VecMul(x, sq), linalg.MulVec(sq, x))
	}
}
