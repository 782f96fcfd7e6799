// SPDX-License-Identifier: MIT

package seq

import "iter"

// Index2 is a 2D index pair (column x, row y).
type Index2 struct {
	X int // column, varies fastest
	Y int // row, varies slowest
}

// Range yields min, min+1, ..., max-1. Nothing is yielded when max <= min.
func Range(min, max int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := min; i < max; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

// Upto yields 0, 1, ..., n-1.
func Upto(n int) iter.Seq[int] {
	return Range(0, n)
}

// Grid yields every (x, y) with min.X <= x < max.X and min.Y <= y < max.Y,
// x varying fastest. An empty extent on either axis yields nothing.
func Grid(min, max Index2) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		if max.X <= min.X || max.Y <= min.Y {
			return
		}
		for y := min.Y; y < max.Y; y++ {
			for x := min.X; x < max.X; x++ {
				if !yield(x, y) {
					return
				}
			}
		}
	}
}

// GridUpto yields every (x, y) in [0,w) × [0,h).
func GridUpto(w, h int) iter.Seq2[int, int] {
	return Grid(Index2{}, Index2{X: w, Y: h})
}
