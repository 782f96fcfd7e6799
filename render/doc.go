// SPDX-License-Identifier: MIT

// Package render rasterizes wireframes into a character framebuffer and
// presents it on a terminal.
//
// Coordinates:
//
//	Drawing calls take normalized device coordinates: x and y in [-1, 1],
//	x to the right, y up. Cell (0, 0) is the top-left character cell.
//	Geometry outside the unit square is clipped; nothing wraps around.
//
// Pipeline:
//
//	Project maps a 3D point through a model-view-projection matrix built with
//	package transform, then divides by w. Wireframe projects and draws every
//	edge of a shape.Mesh. Terminal clears the screen, homes the cursor and
//	writes each frame through github.com/muesli/termenv.
package render
