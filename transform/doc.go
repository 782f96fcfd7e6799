// SPDX-License-Identifier: MIT

// Package transform builds the 4×4 matrices a renderer composes into a
// model-view-projection chain.
//
// Every matrix is laid out for row vectors: a point p is transformed as
// linalg.VecMul(linalg.Resize[linalg.D4](p, 1), m), translation lives in the
// last row, and matrices compose left to right (linalg.Chain(model, view,
// projection)). Because linalg does not distinguish v·M from M·v, the same
// matrices work with linalg.MulVec too.
//
// All factories are generic over float32 and float64. float32 trigonometry
// goes through github.com/chewxy/math32 so no precision is lost to a
// float64 round trip and back.
package transform
