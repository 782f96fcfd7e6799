// SPDX-License-Identifier: MIT
// Package: render
//
// draw.go — points and lines in normalized device coordinates.
//
// Lines are first clipped to [-1, 1]² (Liang–Barsky), then mapped to cells
// and rasterized with Bresenham's integer algorithm, endpoints included.

package render

import (
	"math"

	"github.com/katalvlaran/linmath/linalg"
)

// CellOf maps a point in [-1, 1]² to its cell. Points on the right or bottom
// edge land in the last column or row. The result is unspecified for points
// outside the unit square.
func (fb *Framebuffer) CellOf(p linalg.Vec2) Cell {
	x, y := p.XY()
	cx := int(math.Floor((x + 1) / 2 * float64(fb.w)))
	cy := int(math.Floor((1 - y) / 2 * float64(fb.h)))
	return linalg.V2(
		linalg.ClampScalar(cx, 0, fb.w-1),
		linalg.ClampScalar(cy, 0, fb.h-1),
	)
}

// DrawPoint sets the cell under p. Points outside [-1, 1]² are dropped.
func (fb *Framebuffer) DrawPoint(p linalg.Vec2) {
	if !inUnitSquare(p) {
		return
	}
	c := fb.CellOf(p)
	fb.Set(c.XY())
}

// DrawLine draws the segment a–b, clipped to the visible square.
func (fb *Framebuffer) DrawLine(a, b linalg.Vec2) {
	if !finite(a) || !finite(b) {
		return
	}
	a, b, ok := clipLine(a, b)
	if !ok {
		return
	}
	fb.line(fb.CellOf(a), fb.CellOf(b))
}

func (fb *Framebuffer) line(from, to Cell) {
	d := linalg.Abs(to.Sub(from))
	dx, dy := d.X(), -d.Y()
	step := linalg.V2(sign(to.X()-from.X()), sign(to.Y()-from.Y()))

	p := from
	e := dx + dy
	for {
		fb.Set(p.XY())
		if p == to {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			p.SetX(p.X() + step.X())
		}
		if e2 <= dx {
			e += dx
			p.SetY(p.Y() + step.Y())
		}
	}
}

// clipLine clips a–b to [-1, 1]². ok is false when nothing is visible.
func clipLine(a, b linalg.Vec2) (linalg.Vec2, linalg.Vec2, bool) {
	d := b.Sub(a)
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-d.X(), a.X() + 1},
		{d.X(), 1 - a.X()},
		{-d.Y(), a.Y() + 1},
		{d.Y(), 1 - a.Y()},
	}
	for _, pq := range edges {
		p, q := pq[0], pq[1]
		if p == 0 {
			if q < 0 {
				return a, b, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return a, b, false
			}
			t0 = max(t0, r)
		} else {
			if r < t0 {
				return a, b, false
			}
			t1 = min(t1, r)
		}
	}
	return a.Add(d.MulScalar(t0)), a.Add(d.MulScalar(t1)), true
}

func inUnitSquare(p linalg.Vec2) bool {
	return finite(p) && p.Every(func(x float64) bool { return x >= -1 && x <= 1 })
}

func finite(p linalg.Vec2) bool {
	return p.Every(func(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) })
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
