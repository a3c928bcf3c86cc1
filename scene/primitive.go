package scene

import (
	"encoding/gob"
	"math"

	"github.com/achilleasa/bvhtrace/types"
)

// The Primitive interface is implemented by all objects that can be placed
// in a scene and partitioned by a BVH.
type Primitive interface {
	// Get the primitive bounding box.
	BBox() AABB

	// Get the point used for partitioning the primitive.
	Center() types.Vec3

	// Find the nearest intersection with the ray inside [tMin, tMax].
	Intersect(r Ray, tMin, tMax float64) (HitRecord, bool)
}

// A sphere primitive.
type Sphere struct {
	Origin   types.Vec3
	Radius   float64
	Material Material
}

// Create new sphere primitive.
func NewSphere(origin types.Vec3, radius float64, material Material) *Sphere {
	return &Sphere{
		Origin:   origin,
		Radius:   radius,
		Material: material,
	}
}

func (s *Sphere) BBox() AABB {
	r := types.XYZ(s.Radius, s.Radius, s.Radius)
	return AABB{
		Min: s.Origin.Sub(r),
		Max: s.Origin.Add(r),
	}
}

func (s *Sphere) Center() types.Vec3 {
	return s.Origin
}

// Solve |O + tD - C|² = r² and return the smallest root within [tMin, tMax].
func (s *Sphere) Intersect(r Ray, tMin, tMax float64) (HitRecord, bool) {
	a := r.Dir.Dot(r.Dir)
	if a == 0 {
		return HitRecord{}, false
	}

	oc := r.Origin.Sub(s.Origin)
	halfB := oc.Dot(r.Dir)
	c := oc.Dot(oc) - s.Radius*s.Radius
	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return HitRecord{}, false
	}
	sqrtD := math.Sqrt(discriminant)

	t := (-halfB - sqrtD) / a
	if t < tMin || t > tMax {
		t = (-halfB + sqrtD) / a
		if t < tMin || t > tMax {
			return HitRecord{}, false
		}
	}

	hit := HitRecord{
		T:              t,
		Point:          r.At(t),
		Material:       s.Material,
		PrimitiveIndex: -1,
	}
	hit.setFaceNormal(r, hit.Point.Sub(s.Origin).Mul(1.0/s.Radius))
	return hit, true
}

func init() {
	gob.Register(&Sphere{})
}
