package scene

// Scene owns an ordered list of primitives and an optional camera.
type Scene struct {
	Primitives []Primitive
	Camera     *Camera
}

// Append a primitive and return its index.
func (sc *Scene) Add(prim Primitive) int {
	sc.Primitives = append(sc.Primitives, prim)
	return len(sc.Primitives) - 1
}

// Get the bounding box of all scene primitives.
func (sc *Scene) Bounds() AABB {
	bounds := EmptyAABB()
	for _, prim := range sc.Primitives {
		bounds = MergeAABB(bounds, prim.BBox())
	}
	return bounds
}

// Find the closest hit by testing every primitive. This is the O(n)
// reference that accelerators are compared against.
func (sc *Scene) Intersect(r Ray, tMin, tMax float64, stats *TraversalStats) (HitRecord, bool) {
	var (
		closest HitRecord
		found   bool
	)

	closestSoFar := tMax
	for index, prim := range sc.Primitives {
		if stats != nil {
			stats.PrimitiveTests++
		}
		if hit, ok := prim.Intersect(r, tMin, closestSoFar); ok {
			hit.PrimitiveIndex = index
			closest = hit
			closestSoFar = hit.T
			found = true
		}
	}

	return closest, found
}
