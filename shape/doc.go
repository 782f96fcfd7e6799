// SPDX-License-Identifier: MIT

// Package shape provides wireframe meshes of the five Platonic solids.
//
// What & Why:
//
//	A Mesh is a list of 3D vertex positions plus the undirected edges between
//	them, enough for a wireframe renderer. Every solid is inscribed in a
//	sphere centred on the origin; all edges of one solid have equal length.
//
// Determinism:
//
//	Vertex order and edge order are fixed per solid. Edges are stored with
//	U < V in a stable order, so fixtures and golden outputs never drift.
//
// Options:
//
//	WithScale(r)  circumradius (default 1). Panics on r <= 0 or NaN.
//	WithCenter()  append a hub vertex at the origin with a spoke to every
//	              shell vertex.
//	WithOffset(v) translate every vertex by v.
//
// Errors:
//
//	ErrUnknownSolid for a name outside the five solids. Use errors.Is.
package shape
