// SPDX-License-Identifier: MIT

package linalg

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/linmath/seq"
)

// Mat is a W-column × H-row matrix of scalars of type T, indexed column
// first: At(x, y) is column x, row y.
//
// The zero value is the zero matrix. Cells outside W×H are always zero, so ==
// is exact equality.
type Mat[T Scalar, W, H Dim] struct {
	e [MaxDim][MaxDim]T
}

// MatOf builds a matrix from W·H values listed row by row:
// m.At(x, y) == xs[y*W+x]. It panics on a wrong count.
func MatOf[T Scalar, W, H Dim](xs ...T) Mat[T, W, H] {
	w, h := dimOf[W](), dimOf[H]()
	checkCount("MatOf", len(xs), w*h)
	var m Mat[T, W, H]
	for x, y := range seq.GridUpto(w, h) {
		m.e[x][y] = xs[y*w+x]
	}
	return m
}

// Fill returns a matrix with every cell set to s.
func Fill[T Scalar, W, H Dim](s T) Mat[T, W, H] {
	var m Mat[T, W, H]
	for x, y := range seq.GridUpto(dimOf[W](), dimOf[H]()) {
		m.e[x][y] = s
	}
	return m
}

// Dims returns (W, H).
func (m Mat[T, W, H]) Dims() (w, h int) { return dimOf[W](), dimOf[H]() }

// At returns the cell in column x, row y.
func (m Mat[T, W, H]) At(x, y int) T {
	checkIndex(x, dimOf[W]())
	checkIndex(y, dimOf[H]())
	return m.e[x][y]
}

// Set assigns the cell in column x, row y.
func (m *Mat[T, W, H]) Set(x, y int, v T) {
	checkIndex(x, dimOf[W]())
	checkIndex(y, dimOf[H]())
	m.e[x][y] = v
}

// Col returns column x as an H-vector.
func (m Mat[T, W, H]) Col(x int) Vec[T, H] {
	checkIndex(x, dimOf[W]())
	return Vec[T, H]{e: m.e[x]}
}

// Row returns row y as a W-vector.
func (m Mat[T, W, H]) Row(y int) Vec[T, W] {
	checkIndex(y, dimOf[H]())
	var v Vec[T, W]
	for x := range seq.Upto(dimOf[W]()) {
		v.e[x] = m.e[x][y]
	}
	return v
}

// SetCol replaces column x.
func (m *Mat[T, W, H]) SetCol(x int, v Vec[T, H]) {
	checkIndex(x, dimOf[W]())
	m.e[x] = v.e
}

// SetRow replaces row y.
func (m *Mat[T, W, H]) SetRow(y int, v Vec[T, W]) {
	checkIndex(y, dimOf[H]())
	for x := range seq.Upto(dimOf[W]()) {
		m.e[x][y] = v.e[x]
	}
}

// SwapRows exchanges rows a and b in place.
func (m *Mat[T, W, H]) SwapRows(a, b int) {
	ra, rb := m.Row(a), m.Row(b)
	m.SetRow(a, rb)
	m.SetRow(b, ra)
}

// Transpose returns the H×W matrix with rows and columns exchanged.
func (m Mat[T, W, H]) Transpose() Mat[T, H, W] {
	var t Mat[T, H, W]
	for x, y := range seq.GridUpto(dimOf[W](), dimOf[H]()) {
		t.e[y][x] = m.e[x][y]
	}
	return t
}

// Every reports whether pred holds for every cell.
func (m Mat[T, W, H]) Every(pred func(T) bool) bool {
	for x, y := range seq.GridUpto(dimOf[W](), dimOf[H]()) {
		if !pred(m.e[x][y]) {
			return false
		}
	}
	return true
}

// Equal reports exact cellwise equality.
func (m Mat[T, W, H]) Equal(o Mat[T, W, H]) bool {
	return ZipMat(m, o).Every(func(p Pair[T]) bool { return p.First == p.Second })
}

// AllRowsZero reports whether every row is the zero vector.
func (m Mat[T, W, H]) AllRowsZero() bool {
	for y := range seq.Upto(dimOf[H]()) {
		if !m.Row(y).IsZero() {
			return false
		}
	}
	return true
}

// AllColsZero reports whether every column is the zero vector.
func (m Mat[T, W, H]) AllColsZero() bool {
	for x := range seq.Upto(dimOf[W]()) {
		if !m.Col(x).IsZero() {
			return false
		}
	}
	return true
}

// String renders the matrix row by row, each row as space-separated cells
// followed by a newline.
func (m Mat[T, W, H]) String() string {
	var sb strings.Builder
	for y := range seq.Upto(dimOf[H]()) {
		for x := range seq.Upto(dimOf[W]()) {
			fmt.Fprint(&sb, m.e[x][y])
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
