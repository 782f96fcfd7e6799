// SPDX-License-Identifier: MIT

// Package seq provides lazy integer index sequences used to drive
// componentwise loops.
//
// Range and Upto yield a half-open interval [min, max) in ascending order.
// Grid and GridUpto yield (x, y) index pairs over a rectangle in row-major
// nested order: x varies fastest, y slowest.
//
// All sequences are range-over-func iterators (iter.Seq / iter.Seq2). They
// hold no state beyond their cursor and stop as soon as the consumer breaks.
//
// Complexity:
//   - Range/Upto: O(max-min) total, O(1) per step, no allocations.
//   - Grid/GridUpto: O(w*h) total, O(1) per step, no allocations.
package seq
