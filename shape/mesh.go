// SPDX-License-Identifier: MIT
// Package: shape
//
// mesh.go — Build(name, opts...) assembles a Mesh from the canonical data.
//
// Contract:
//   • Shell vertices come first, in canonical order; the hub (if any) is last.
//   • Shell edges keep their canonical order; spokes follow in ascending
//     shell index.
//
// Complexity: O(V+E), V ≤ 21, E ≤ 50.

package shape

import (
	"fmt"

	"github.com/katalvlaran/linmath/linalg"
)

const methodBuild = "Build"

// Mesh is a wireframe: vertex positions plus undirected edges by index.
type Mesh struct {
	Name     PlatonicName
	Vertices []linalg.Vec3
	Edges    []Edge
}

// Build returns the mesh of the named solid.
func Build(name PlatonicName, opts ...Option) (Mesh, error) {
	unit, ok := unitVertices[name]
	if !ok {
		return Mesh{}, fmt.Errorf("%s(%d): %w", methodBuild, int(name), ErrUnknownSolid)
	}
	cfg := newConfig(opts...)

	n := len(unit)
	shell := shellEdges[name]
	m := Mesh{
		Name:     name,
		Vertices: make([]linalg.Vec3, 0, n+1),
		Edges:    make([]Edge, 0, len(shell)+n),
	}
	for _, v := range unit {
		m.Vertices = append(m.Vertices, v.MulScalar(cfg.scale).Add(cfg.offset))
	}
	m.Edges = append(m.Edges, shell...)

	if cfg.withCenter {
		hub := len(m.Vertices)
		m.Vertices = append(m.Vertices, cfg.offset)
		for i := range n {
			m.Edges = append(m.Edges, Edge{U: i, V: hub})
		}
	}
	return m, nil
}

// Segment returns the endpoints of edge i.
func (m Mesh) Segment(i int) (a, b linalg.Vec3) {
	e := m.Edges[i]
	return m.Vertices[e.U], m.Vertices[e.V]
}
