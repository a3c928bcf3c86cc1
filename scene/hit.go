package scene

import "github.com/achilleasa/bvhtrace/types"

// HitRecord describes a ray-primitive intersection.
type HitRecord struct {
	// Distance along the ray.
	T float64

	Point types.Vec3

	// Unit normal facing against the incoming ray.
	Normal types.Vec3

	// True if the ray hit the outside of the primitive.
	FrontFace bool

	Material Material

	// Index of the hit primitive in the scene primitive list or -1 if
	// the primitive was intersected directly.
	PrimitiveIndex int
}

// Orient the normal so it faces against the ray and record which side was hit.
func (h *HitRecord) setFaceNormal(r Ray, outwardNormal types.Vec3) {
	h.FrontFace = r.Dir.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Neg()
	}
}
