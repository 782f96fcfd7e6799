// SPDX-License-Identifier: MIT
// Package: shape
//
// options.go — functional options for Build.
//
// Contract:
//   • Option constructors validate and panic on meaningless input.
//   • Build itself never panics; it returns sentinel errors.

package shape

import (
	"math"

	"github.com/katalvlaran/linmath/linalg"
)

// Option customizes Build.
type Option func(*config)

type config struct {
	scale      float64
	withCenter bool
	offset     linalg.Vec3
}

const defaultScale = 1.0

func newConfig(opts ...Option) config {
	cfg := config{scale: defaultScale}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithScale sets the circumradius. Panics unless r is finite and positive.
func WithScale(r float64) Option {
	if !(r > 0) || math.IsInf(r, 0) {
		panic("shape: WithScale requires a finite radius > 0")
	}
	return func(c *config) { c.scale = r }
}

// WithCenter appends a hub vertex at the solid's centre, joined to every
// shell vertex.
func WithCenter() Option {
	return func(c *config) { c.withCenter = true }
}

// WithOffset translates the whole mesh by v.
func WithOffset(v linalg.Vec3) Option {
	return func(c *config) { c.offset = v }
}
