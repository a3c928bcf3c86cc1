package types

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vectors with a length below this threshold are treated as zero-length.
const floatCmpEpsilon = 1e-12

// Vec3 is a 3 component float64 vector. It shares its memory layout with
// mgl64.Vec3 so conversions between the two are free.
type Vec3 mgl64.Vec3

// Define a 3 component vector.
func XYZ(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

func (v Vec3) X() float64 { return v[0] }
func (v Vec3) Y() float64 { return v[1] }
func (v Vec3) Z() float64 { return v[2] }

// Add a vector.
func (v Vec3) Add(v2 Vec3) Vec3 {
	return Vec3(mgl64.Vec3(v).Add(mgl64.Vec3(v2)))
}

// Subtract a vector.
func (v Vec3) Sub(v2 Vec3) Vec3 {
	return Vec3(mgl64.Vec3(v).Sub(mgl64.Vec3(v2)))
}

// Multiply with a scalar.
func (v Vec3) Mul(s float64) Vec3 {
	return Vec3(mgl64.Vec3(v).Mul(s))
}

// Component-wise multiplication.
func (v Vec3) MulVec(v2 Vec3) Vec3 {
	return Vec3{v[0] * v2[0], v[1] * v2[1], v[2] * v2[2]}
}

// Negate all components.
func (v Vec3) Neg() Vec3 {
	return Vec3{-v[0], -v[1], -v[2]}
}

// Calculate dot product of 2 vectors
func (v Vec3) Dot(v2 Vec3) float64 {
	return mgl64.Vec3(v).Dot(mgl64.Vec3(v2))
}

// Calculate cross product of 2 vectors.
func (v Vec3) Cross(v2 Vec3) Vec3 {
	return Vec3(mgl64.Vec3(v).Cross(mgl64.Vec3(v2)))
}

// Get vector length.
func (v Vec3) Len() float64 {
	return mgl64.Vec3(v).Len()
}

// Normalize vector. Zero-length vectors are returned unchanged.
func (v Vec3) Normalize() Vec3 {
	if v.Len() < floatCmpEpsilon {
		return Vec3{}
	}
	return Vec3(mgl64.Vec3(v).Normalize())
}

// Check whether all components of v and v2 differ by at most eps.
func (v Vec3) ApproxEqual(v2 Vec3, eps float64) bool {
	return mgl64.Vec3(v).ApproxEqualThreshold(mgl64.Vec3(v2), eps)
}

// Calc min component from two vectors
func MinVec3(v1, v2 Vec3) Vec3 {
	return Vec3{
		math.Min(v1[0], v2[0]),
		math.Min(v1[1], v2[1]),
		math.Min(v1[2], v2[2]),
	}
}

// Calc max component from two vectors
func MaxVec3(v1, v2 Vec3) Vec3 {
	return Vec3{
		math.Max(v1[0], v2[0]),
		math.Max(v1[1], v2[1]),
		math.Max(v1[2], v2[2]),
	}
}
