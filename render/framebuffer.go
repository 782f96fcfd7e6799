// SPDX-License-Identifier: MIT
// Package: render
//
// framebuffer.go — a width×height grid of on/off character cells.
//
// Contract:
//   • Out-of-range Set calls are dropped, never wrap and never panic.
//   • Every drawn cell renders as two glyphs so cells look roughly square.

package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/linmath/linalg"
	"github.com/katalvlaran/linmath/seq"
)

const (
	glyphOn  = "██"
	glyphOff = "  "
)

// Cell is a framebuffer position: column, then row.
type Cell = linalg.Vec[int, linalg.D2]

// Framebuffer holds one frame of cells.
type Framebuffer struct {
	w, h  int
	cells []bool
}

// NewFramebuffer allocates a cleared w×h framebuffer.
func NewFramebuffer(w, h int) (*Framebuffer, error) {
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("NewFramebuffer(%d, %d): %w", w, h, ErrInvalidSize)
	}
	return &Framebuffer{w: w, h: h, cells: make([]bool, w*h)}, nil
}

// Size returns the width and height in cells.
func (fb *Framebuffer) Size() (w, h int) { return fb.w, fb.h }

// Clear switches every cell off.
func (fb *Framebuffer) Clear() { clear(fb.cells) }

func (fb *Framebuffer) inside(x, y int) bool {
	return x >= 0 && x < fb.w && y >= 0 && y < fb.h
}

// At reports whether cell (x, y) is on. Out-of-range cells are off.
func (fb *Framebuffer) At(x, y int) bool {
	return fb.inside(x, y) && fb.cells[y*fb.w+x]
}

// Set switches cell (x, y) on. Out-of-range writes are dropped.
func (fb *Framebuffer) Set(x, y int) {
	if fb.inside(x, y) {
		fb.cells[y*fb.w+x] = true
	}
}

// Count returns the number of cells that are on.
func (fb *Framebuffer) Count() int {
	n := 0
	for _, on := range fb.cells {
		if on {
			n++
		}
	}
	return n
}

// WriteTo writes the frame row by row, each row ending in '\n'.
func (fb *Framebuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, fb.String())
	return int64(n), err
}

// String renders the frame as WriteTo would.
func (fb *Framebuffer) String() string {
	var sb strings.Builder
	sb.Grow(fb.h * (fb.w*len(glyphOn) + 1))
	for x, y := range seq.GridUpto(fb.w, fb.h) {
		if fb.cells[y*fb.w+x] {
			sb.WriteString(glyphOn)
		} else {
			sb.WriteString(glyphOff)
		}
		if x == fb.w-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
