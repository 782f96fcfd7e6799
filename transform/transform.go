// SPDX-License-Identifier: MIT

package transform

import (
	"math"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/linmath/linalg"
)

// Float is the set of element types the factories accept.
type Float interface {
	constraints.Float
}

// Pi is π as an untyped constant.
const Pi = math.Pi

// DegToRad converts degrees to radians.
func DegToRad[T Float](deg T) T { return deg * (Pi / 180) }

// RadToDeg converts radians to degrees.
func RadToDeg[T Float](rad T) T { return rad * (180 / Pi) }

// Translation returns the matrix that moves a point by v.
func Translation[T Float](v linalg.Vec[T, linalg.D3]) linalg.Mat[T, linalg.D4, linalg.D4] {
	x, y, z := v.XYZ()
	return linalg.MatOf[T, linalg.D4, linalg.D4](
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		x, y, z, 1,
	)
}

// Scale returns diag(v.x, v.y, v.z, 1).
func Scale[T Float](v linalg.Vec[T, linalg.D3]) linalg.Mat[T, linalg.D4, linalg.D4] {
	x, y, z := v.XYZ()
	return linalg.MatOf[T, linalg.D4, linalg.D4](
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	)
}

// Rotation returns the rotation by angle radians about axis, counterclockwise
// when looking down the axis towards the origin. The axis need not be unit
// length; a zero axis yields NaN cells.
func Rotation[T Float](angle T, axis linalg.Vec[T, linalg.D3]) linalg.Mat[T, linalg.D4, linalg.D4] {
	x, y, z := axis.Normalized().XYZ()
	s, c := sinCos(angle)
	t := 1 - c

	return linalg.MatOf[T, linalg.D4, linalg.D4](
		c+t*x*x, t*x*y+s*z, t*x*z-s*y, 0,
		t*x*y-s*z, c+t*y*y, t*y*z+s*x, 0,
		t*x*z+s*y, t*y*z-s*x, c+t*z*z, 0,
		0, 0, 0, 1,
	)
}

// Perspective returns a right-handed frustum projection. fov is the vertical
// field of view in radians and aspect is width/height. After the perspective
// divide, points at distance near map to z = -1 and points at far to z = +1.
func Perspective[T Float](aspect, fov, near, far T) linalg.Mat[T, linalg.D4, linalg.D4] {
	f := 1 / tan(fov/2)
	nf := 1 / (near - far)

	return linalg.MatOf[T, linalg.D4, linalg.D4](
		f/aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (far+near)*nf, -1,
		0, 0, 2*far*near*nf, 0,
	)
}

// LookAt returns the view matrix of a camera at eye looking at center, with
// up as the approximate up direction. The camera looks down its -z axis.
func LookAt[T Float](eye, center, up linalg.Vec[T, linalg.D3]) linalg.Mat[T, linalg.D4, linalg.D4] {
	f := center.Sub(eye).Normalized()
	s := linalg.Cross(f, up).Normalized()
	u := linalg.Cross(s, f)

	return linalg.MatOf[T, linalg.D4, linalg.D4](
		s.X(), u.X(), -f.X(), 0,
		s.Y(), u.Y(), -f.Y(), 0,
		s.Z(), u.Z(), -f.Z(), 0,
		-linalg.Dot(s, eye), -linalg.Dot(u, eye), linalg.Dot(f, eye), 1,
	)
}

func sinCos[T Float](a T) (s, c T) {
	if f, ok := any(a).(float32); ok {
		return T(math32.Sin(f)), T(math32.Cos(f))
	}
	s64, c64 := math.Sincos(float64(a))
	return T(s64), T(c64)
}

func tan[T Float](a T) T {
	if f, ok := any(a).(float32); ok {
		return T(math32.Tan(f))
	}
	return T(math.Tan(float64(a)))
}
