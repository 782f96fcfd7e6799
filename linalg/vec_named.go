// SPDX-License-Identifier: MIT
// Package: linalg
//
// vec_named.go — named component aliases.
//
// Every alias reads and writes the same storage slot as the positional
// accessors, so the views never diverge:
//   • slot 0: X, R, Left, Top, Up
//   • slot 1: Y, G, Right, Bottom, Down
//   • slot 2: Z, B
//   • slot 3: W, A
// Using an alias whose slot is >= N panics.

package linalg

// X returns component 0.
func (v Vec[T, N]) X() T { return v.At(0) }

// Y returns component 1.
func (v Vec[T, N]) Y() T { return v.At(1) }

// Z returns component 2.
func (v Vec[T, N]) Z() T { return v.At(2) }

// W returns component 3.
func (v Vec[T, N]) W() T { return v.At(3) }

// R returns component 0.
func (v Vec[T, N]) R() T { return v.At(0) }

// G returns component 1.
func (v Vec[T, N]) G() T { return v.At(1) }

// B returns component 2.
func (v Vec[T, N]) B() T { return v.At(2) }

// A returns component 3.
func (v Vec[T, N]) A() T { return v.At(3) }

// Left returns component 0.
func (v Vec[T, N]) Left() T { return v.At(0) }

// Top returns component 0.
func (v Vec[T, N]) Top() T { return v.At(0) }

// Up returns component 0.
func (v Vec[T, N]) Up() T { return v.At(0) }

// Right returns component 1.
func (v Vec[T, N]) Right() T { return v.At(1) }

// Bottom returns component 1.
func (v Vec[T, N]) Bottom() T { return v.At(1) }

// Down returns component 1.
func (v Vec[T, N]) Down() T { return v.At(1) }

// SetX sets component 0.
func (v *Vec[T, N]) SetX(x T) { v.Set(0, x) }

// SetY sets component 1.
func (v *Vec[T, N]) SetY(y T) { v.Set(1, y) }

// SetZ sets component 2.
func (v *Vec[T, N]) SetZ(z T) { v.Set(2, z) }

// SetW sets component 3.
func (v *Vec[T, N]) SetW(w T) { v.Set(3, w) }

// SetR sets component 0.
func (v *Vec[T, N]) SetR(r T) { v.Set(0, r) }

// SetG sets component 1.
func (v *Vec[T, N]) SetG(g T) { v.Set(1, g) }

// SetB sets component 2.
func (v *Vec[T, N]) SetB(b T) { v.Set(2, b) }

// SetA sets component 3.
func (v *Vec[T, N]) SetA(a T) { v.Set(3, a) }
