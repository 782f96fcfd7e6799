// SPDX-License-Identifier: MIT

package render

import (
	"github.com/katalvlaran/linmath/linalg"
	"github.com/katalvlaran/linmath/shape"
)

// Project maps p through mvp and performs the perspective divide. ok is false
// for points on or behind the camera plane (w <= 0).
func Project(mvp linalg.Mat4, p linalg.Vec3) (ndc linalg.Vec2, ok bool) {
	h := linalg.VecMul(linalg.Resize[linalg.D4](p, 1), mvp)
	w := h.W()
	if !(w > 0) {
		return linalg.Vec2{}, false
	}
	return linalg.Resize[linalg.D2](h, 0).DivScalar(w), true
}

// Wireframe projects every vertex of m and draws every edge whose endpoints
// are both in front of the camera. It returns the number of edges drawn.
func Wireframe(fb *Framebuffer, m shape.Mesh, mvp linalg.Mat4) int {
	pts := make([]linalg.Vec2, len(m.Vertices))
	vis := make([]bool, len(m.Vertices))
	for i, v := range m.Vertices {
		pts[i], vis[i] = Project(mvp, v)
	}

	drawn := 0
	for _, e := range m.Edges {
		if !vis[e.U] || !vis[e.V] {
			continue
		}
		fb.DrawLine(pts[e.U], pts[e.V])
		drawn++
	}
	return drawn
}
