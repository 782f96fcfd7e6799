// SPDX-License-Identifier: MIT

package linalg_test

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/linmath/linalg"
)

// Fixed seed so failures reproduce.
const seed = 20240611

func newRand() *rand.Rand { return rand.New(rand.NewSource(seed)) }

func randVec4(r *rand.Rand) linalg.Vec4 {
	return linalg.V4(r.Float64()*20-10, r.Float64()*20-10, r.Float64()*20-10, r.Float64()*20-10)
}

func randVec3(r *rand.Rand) linalg.Vec3 {
	return linalg.V3(r.Float64()*20-10, r.Float64()*20-10, r.Float64()*20-10)
}

func randMat4(r *rand.Rand) linalg.Mat4 {
	xs := make([]float64, 16)
	for i := range xs {
		xs[i] = r.Float64()*20 - 10
	}
	return linalg.MatOf[float64, linalg.D4, linalg.D4](xs...)
}

// primes is the rank-checking regression fixture shared by several tests.
func primes() linalg.Mat4 {
	return linalg.MatOf[float64, linalg.D4, linalg.D4](
		2, 3, 5, 7,
		11, 13, 17, 19,
		23, 29, 31, 37,
		41, 43, 47, 53,
	)
}

func nan() float64 { return math.NaN() }
