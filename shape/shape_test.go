// SPDX-License-Identifier: MIT

package shape_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linmath/linalg"
	"github.com/katalvlaran/linmath/shape"
)

const tol = 1e-12

func TestBuild_Counts(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   shape.PlatonicName
		v, e   int
		degree int
	}{
		{shape.Tetrahedron, 4, 6, 3},
		{shape.Cube, 8, 12, 3},
		{shape.Octahedron, 6, 12, 4},
		{shape.Dodecahedron, 20, 30, 3},
		{shape.Icosahedron, 12, 30, 5},
	}
	for _, tc := range cases {
		t.Run(tc.name.String(), func(t *testing.T) {
			t.Parallel()
			m, err := shape.Build(tc.name)
			require.NoError(t, err)
			require.Equal(t, tc.name, m.Name)
			require.Len(t, m.Vertices, tc.v)
			require.Len(t, m.Edges, tc.e)

			deg := make([]int, tc.v)
			seen := make(map[shape.Edge]bool)
			for _, e := range m.Edges {
				require.Less(t, e.U, e.V)
				require.False(t, seen[e], "duplicate edge %v", e)
				seen[e] = true
				deg[e.U]++
				deg[e.V]++
			}
			for i, d := range deg {
				assert.Equal(t, tc.degree, d, "vertex %d", i)
			}
		})
	}
}

func TestBuild_Geometry(t *testing.T) {
	t.Parallel()

	for _, name := range shape.Solids {
		t.Run(name.String(), func(t *testing.T) {
			t.Parallel()
			m, err := shape.Build(name, shape.WithScale(2.5))
			require.NoError(t, err)

			for i, v := range m.Vertices {
				assert.InDelta(t, 2.5, v.Length(), tol, "vertex %d", i)
			}

			a, b := m.Segment(0)
			edge := b.Sub(a).Length()
			for i := range m.Edges {
				a, b := m.Segment(i)
				assert.InDelta(t, edge, b.Sub(a).Length(), tol, "edge %d", i)
			}

			// Edges join nearest neighbours only.
			for i := range m.Vertices {
				for j := i + 1; j < len(m.Vertices); j++ {
					d := m.Vertices[j].Sub(m.Vertices[i]).Length()
					assert.GreaterOrEqual(t, d, edge-tol)
				}
			}
		})
	}
}

func TestBuild_WithCenterAndOffset(t *testing.T) {
	t.Parallel()

	off := linalg.V3(1.0, -2, 3)
	m, err := shape.Build(shape.Octahedron, shape.WithCenter(), shape.WithOffset(off))
	require.NoError(t, err)
	require.Len(t, m.Vertices, 7)
	require.Len(t, m.Edges, 12+6)
	require.Equal(t, off, m.Vertices[6])
	require.Equal(t, linalg.V3(1.0, -2, 4), m.Vertices[0])

	for i, e := range m.Edges[12:] {
		require.Equal(t, shape.Edge{U: i, V: 6}, e)
	}
}

func TestBuild_Unknown(t *testing.T) {
	t.Parallel()

	_, err := shape.Build(shape.PlatonicName(42))
	require.ErrorIs(t, err, shape.ErrUnknownSolid)
	require.Equal(t, "Unknown", shape.PlatonicName(42).String())
}

func TestParsePlatonic(t *testing.T) {
	t.Parallel()

	p, err := shape.ParsePlatonic("icosahedron")
	require.NoError(t, err)
	require.Equal(t, shape.Icosahedron, p)

	p, err = shape.ParsePlatonic("CUBE")
	require.NoError(t, err)
	require.Equal(t, shape.Cube, p)

	_, err = shape.ParsePlatonic("sphere")
	require.True(t, errors.Is(err, shape.ErrUnknownSolid))
}

func TestWithScale_PanicsOnBadRadius(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { shape.WithScale(0) })
	require.Panics(t, func() { shape.WithScale(-1) })
	require.NotPanics(t, func() { shape.WithScale(0.1) })
}

func TestBuild_ReturnsFreshSlices(t *testing.T) {
	t.Parallel()

	a, err := shape.Build(shape.Cube)
	require.NoError(t, err)
	a.Vertices[0] = linalg.V3(9.0, 9, 9)
	a.Edges[0] = shape.Edge{U: 5, V: 6}

	b, err := shape.Build(shape.Cube)
	require.NoError(t, err)
	require.NotEqual(t, a.Vertices[0], b.Vertices[0])
	require.Equal(t, shape.Edge{U: 0, V: 1}, b.Edges[0])
}
