// SPDX-License-Identifier: MIT
// Package: shape
//
// errors.go — sentinel errors for the shape package.
//
// Callers branch with errors.Is; context is attached with %w at the call site.

package shape

import "errors"

// ErrUnknownSolid indicates a name that does not denote one of the five
// Platonic solids.
var ErrUnknownSolid = errors.New("shape: unknown solid")
