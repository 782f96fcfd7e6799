// SPDX-License-Identifier: MIT
// Package: shape
//
// solids.go — canonical data for the five Platonic solids.
//
// Design:
//   • Shell edges are pre-sorted, U < V, and never mutated.
//   • Unit-sphere positions are computed once at init() from closed forms.
//
// Layouts (z is up):
//   • Tetrahedron: alternate corners of the cube (±1,±1,±1)/√3.
//   • Cube: bottom face 0-1-2-3, top face 4-7 directly above.
//   • Octahedron: poles 0 (+z) and 1 (-z), equator 2 (+x) 3 (-x) 4 (+y) 5 (-y).
//   • Icosahedron: poles 0 and 11, top ring 1..5 at 72°·k, bottom ring 6..10
//     rotated by -36°.
//   • Dodecahedron: top face 0..4, bottom face 5..9, middle ring 10..19
//     alternating above (even) and below (odd) the equator.

package shape

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/linmath/linalg"
)

// PlatonicName enumerates the five Platonic solids.
type PlatonicName int

// Enum values (stable ordering).
const (
	Tetrahedron  PlatonicName = iota // V=4,  E=6
	Cube                             // V=8,  E=12
	Octahedron                       // V=6,  E=12
	Dodecahedron                     // V=20, E=30
	Icosahedron                      // V=12, E=30
)

// Solids lists every PlatonicName in enum order.
var Solids = []PlatonicName{Tetrahedron, Cube, Octahedron, Dodecahedron, Icosahedron}

// String returns the solid's name, or "Unknown".
func (p PlatonicName) String() string {
	switch p {
	case Tetrahedron:
		return "Tetrahedron"
	case Cube:
		return "Cube"
	case Octahedron:
		return "Octahedron"
	case Dodecahedron:
		return "Dodecahedron"
	case Icosahedron:
		return "Icosahedron"
	default:
		return "Unknown"
	}
}

// ParsePlatonic resolves a case-insensitive solid name.
func ParsePlatonic(s string) (PlatonicName, error) {
	for _, p := range Solids {
		if strings.EqualFold(s, p.String()) {
			return p, nil
		}
	}
	return 0, fmt.Errorf("ParsePlatonic(%q): %w", s, ErrUnknownSolid)
}

// Edge is an undirected edge between vertex indices U < V.
type Edge struct {
	U, V int
}

var shellEdges = map[PlatonicName][]Edge{
	Tetrahedron: {
		{U: 0, V: 1}, {U: 0, V: 2}, {U: 0, V: 3},
		{U: 1, V: 2}, {U: 1, V: 3},
		{U: 2, V: 3},
	},

	Cube: {
		// bottom face
		{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}, {U: 0, V: 3},
		// verticals
		{U: 0, V: 4}, {U: 1, V: 5}, {U: 2, V: 6}, {U: 3, V: 7},
		// top face
		{U: 4, V: 5}, {U: 4, V: 7}, {U: 5, V: 6}, {U: 6, V: 7},
	},

	Octahedron: {
		{U: 0, V: 2}, {U: 0, V: 3}, {U: 0, V: 4}, {U: 0, V: 5},
		{U: 1, V: 2}, {U: 1, V: 3}, {U: 1, V: 4}, {U: 1, V: 5},
		{U: 2, V: 4}, {U: 2, V: 5}, {U: 3, V: 4}, {U: 3, V: 5},
	},

	Dodecahedron: {
		// top face
		{U: 0, V: 1}, {U: 0, V: 4}, {U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 4},
		// bottom face
		{U: 5, V: 6}, {U: 5, V: 9}, {U: 6, V: 7}, {U: 7, V: 8}, {U: 8, V: 9},
		// middle ring
		{U: 10, V: 11}, {U: 10, V: 19}, {U: 11, V: 12}, {U: 12, V: 13}, {U: 13, V: 14},
		{U: 14, V: 15}, {U: 15, V: 16}, {U: 16, V: 17}, {U: 17, V: 18}, {U: 18, V: 19},
		// top face to upper ring
		{U: 0, V: 10}, {U: 1, V: 12}, {U: 2, V: 14}, {U: 3, V: 16}, {U: 4, V: 18},
		// bottom face to lower ring
		{U: 5, V: 11}, {U: 6, V: 13}, {U: 7, V: 15}, {U: 8, V: 17}, {U: 9, V: 19},
	},

	Icosahedron: {
		// top pole
		{U: 0, V: 1}, {U: 0, V: 2}, {U: 0, V: 3}, {U: 0, V: 4}, {U: 0, V: 5},
		// top ring
		{U: 1, V: 2}, {U: 1, V: 5}, {U: 2, V: 3}, {U: 3, V: 4}, {U: 4, V: 5},
		// top ring to bottom ring
		{U: 1, V: 6}, {U: 1, V: 7}, {U: 2, V: 7}, {U: 2, V: 8}, {U: 3, V: 8},
		{U: 3, V: 9}, {U: 4, V: 9}, {U: 4, V: 10}, {U: 5, V: 6}, {U: 5, V: 10},
		// bottom ring
		{U: 6, V: 7}, {U: 6, V: 10}, {U: 7, V: 8}, {U: 8, V: 9}, {U: 9, V: 10},
		// bottom pole
		{U: 6, V: 11}, {U: 7, V: 11}, {U: 8, V: 11}, {U: 9, V: 11}, {U: 10, V: 11},
	},
}

var unitVertices map[PlatonicName][]linalg.Vec3

func init() {
	unitVertices = map[PlatonicName][]linalg.Vec3{
		Tetrahedron:  tetrahedron(),
		Cube:         cube(),
		Octahedron:   octahedron(),
		Dodecahedron: dodecahedron(),
		Icosahedron:  icosahedron(),
	}
}

// polar returns the point at radius r from the z axis, azimuth deg degrees,
// height z.
func polar(r, deg, z float64) linalg.Vec3 {
	s, c := math.Sincos(deg * math.Pi / 180)
	return linalg.V3(r*c, r*s, z)
}

func tetrahedron() []linalg.Vec3 {
	k := 1 / math.Sqrt(3)
	return []linalg.Vec3{
		linalg.V3(k, k, k),
		linalg.V3(k, -k, -k),
		linalg.V3(-k, k, -k),
		linalg.V3(-k, -k, k),
	}
}

func cube() []linalg.Vec3 {
	k := 1 / math.Sqrt(3)
	return []linalg.Vec3{
		linalg.V3(-k, -k, -k), linalg.V3(k, -k, -k), linalg.V3(k, k, -k), linalg.V3(-k, k, -k),
		linalg.V3(-k, -k, k), linalg.V3(k, -k, k), linalg.V3(k, k, k), linalg.V3(-k, k, k),
	}
}

func octahedron() []linalg.Vec3 {
	return []linalg.Vec3{
		linalg.V3(0.0, 0, 1), linalg.V3(0.0, 0, -1),
		linalg.V3(1.0, 0, 0), linalg.V3(-1.0, 0, 0),
		linalg.V3(0.0, 1, 0), linalg.V3(0.0, -1, 0),
	}
}

func icosahedron() []linalg.Vec3 {
	z := 1 / math.Sqrt(5)
	r := 2 / math.Sqrt(5)
	vs := make([]linalg.Vec3, 12)
	vs[0] = linalg.V3(0.0, 0, 1)
	for k := range 5 {
		vs[1+k] = polar(r, 72*float64(k), z)
		vs[6+k] = polar(r, 72*float64(k)-36, -z)
	}
	vs[11] = linalg.V3(0.0, 0, -1)
	return vs
}

func dodecahedron() []linalg.Vec3 {
	// Edge length a of the unit-circumradius dodecahedron; the top face is a
	// regular pentagon of circumradius r1 at height h1.
	a := 4 / (math.Sqrt(3) * (1 + math.Sqrt(5)))
	r1 := a / (2 * math.Sin(math.Pi/5))
	h1 := math.Sqrt(1 - r1*r1)

	// Middle ring: one edge away from a face vertex along a great circle.
	alpha := math.Asin(r1)
	theta := math.Acos(1 - a*a/2)
	r2 := math.Sin(alpha + theta)
	h2 := math.Cos(alpha + theta)

	vs := make([]linalg.Vec3, 20)
	for k := range 5 {
		deg := 72 * float64(k)
		vs[k] = polar(r1, deg, h1)
		vs[5+k] = polar(r1, deg+36, -h1)
		vs[10+2*k] = polar(r2, deg, h2)
		vs[11+2*k] = polar(r2, deg+36, -h2)
	}
	return vs
}
