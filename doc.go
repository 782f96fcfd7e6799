// Package linmath is a small, fixed-dimension linear-algebra toolkit for
// 3D graphics in the terminal, from vector primitives up to a spinning
// wireframe.
//
// 🚀 What is linmath?
//
//	A generic, allocation-free engine plus the pieces that put it to work:
//		• Vectors & matrices: Vec[T, N] and Mat[T, W, H] with N, W, H in 1..4,
//		  shape mismatches rejected at compile time
//		• Algebra: dot, cross, product, transpose, determinant (pivoted
//		  Gaussian elimination with triangular fast paths)
//		• Transforms: translation, scale, axis-angle rotation, perspective,
//		  look-at
//		• Meshes: the five Platonic solids as wireframes
//		• Rendering: NDC clipping, Bresenham lines, termenv output
//
// ✨ Conventions worth knowing
//
//   - Matrices are indexed column first: m.At(x, y) is column x, row y.
//   - Points are row vectors and matrices compose left to right:
//     mvp := linalg.Chain(model, view, projection).
//   - v·M and M·v are the same operation (VecMul and MulVec agree).
//   - == and Equal are exact; ApproxEqual takes a tolerance.
//
// Under the hood, everything is organized under these subpackages:
//
//	seq/        — lazy half-open ranges and 2D index grids (iter.Seq)
//	linalg/     — Vec, Mat, combinators, products, determinant
//	transform/  — 4×4 matrix factories for a model-view-projection chain
//	shape/      — Platonic solid meshes
//	render/     — framebuffer, rasterizer, projection, terminal output
//
// Quick ASCII example:
//
//	[x y z 1] · M  →  [x' y' z' w]  →  (x'/w, y'/w)  →  cell
//
// A runnable demo lives in examples/cube3d:
//
//	go run github.com/katalvlaran/linmath/examples/cube3d --solid icosahedron
package linmath
