// SPDX-License-Identifier: MIT

package linalg

// Common concrete shapes.
type (
	Vec1 = Vec[float64, D1]
	Vec2 = Vec[float64, D2]
	Vec3 = Vec[float64, D3]
	Vec4 = Vec[float64, D4]

	FVec2 = Vec[float32, D2]
	FVec3 = Vec[float32, D3]
	FVec4 = Vec[float32, D4]

	IVec2 = Vec[int32, D2]
	IVec3 = Vec[int32, D3]
	IVec4 = Vec[int32, D4]

	Mat2 = Mat[float64, D2, D2]
	Mat3 = Mat[float64, D3, D3]
	Mat4 = Mat[float64, D4, D4]

	FMat4 = Mat[float32, D4, D4]

	IMat2 = Mat[int32, D2, D2]
	IMat3 = Mat[int32, D3, D3]
	IMat4 = Mat[int32, D4, D4]
)
