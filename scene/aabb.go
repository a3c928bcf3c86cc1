package scene

import (
	"math"

	"github.com/achilleasa/bvhtrace/types"
)

// AABB is an axis-aligned bounding box. An empty box uses inverted sentinel
// extents so that merging it with any other box yields the other box.
type AABB struct {
	Min types.Vec3
	Max types.Vec3
}

// Create an empty bounding box.
func EmptyAABB() AABB {
	return AABB{
		Min: types.Vec3{math.MaxFloat64, math.MaxFloat64, math.MaxFloat64},
		Max: types.Vec3{-math.MaxFloat64, -math.MaxFloat64, -math.MaxFloat64},
	}
}

// Create a bounding box spanning two corner points given in any order.
func NewAABB(a, b types.Vec3) AABB {
	return AABB{
		Min: types.MinVec3(a, b),
		Max: types.MaxVec3(a, b),
	}
}

// Merge two boxes into a box that contains both.
func MergeAABB(a, b AABB) AABB {
	return AABB{
		Min: types.MinVec3(a.Min, b.Min),
		Max: types.MaxVec3(a.Max, b.Max),
	}
}

// Grow the box so that it contains point p.
func (b AABB) Expand(p types.Vec3) AABB {
	return AABB{
		Min: types.MinVec3(b.Min, p),
		Max: types.MaxVec3(b.Max, p),
	}
}

// Returns true if the box has not been merged with anything yet.
func (b AABB) IsEmpty() bool {
	return b.Min[0] > b.Max[0] || b.Min[1] > b.Max[1] || b.Min[2] > b.Max[2]
}

// Get the box side lengths. Empty boxes report a zero extent.
func (b AABB) Extent() types.Vec3 {
	if b.IsEmpty() {
		return types.Vec3{}
	}
	return b.Max.Sub(b.Min)
}

// Get the box surface area.
func (b AABB) SurfaceArea() float64 {
	d := b.Extent()
	return 2.0 * (d[0]*d[1] + d[1]*d[2] + d[2]*d[0])
}

// Get the box center.
func (b AABB) Centroid() types.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Get the axis with the largest extent. Ties resolve to the earlier axis.
func (b AABB) LongestAxis() int {
	d := b.Extent()
	axis := 0
	if d[1] > d[axis] {
		axis = 1
	}
	if d[2] > d[axis] {
		axis = 2
	}
	return axis
}

// Returns true if other lies fully inside b.
func (b AABB) Contains(other AABB) bool {
	for i := 0; i < 3; i++ {
		if other.Min[i] < b.Min[i] || other.Max[i] > b.Max[i] {
			return false
		}
	}
	return true
}

// Test whether the ray overlaps the box within [tMin, tMax] using the slab
// method. Axes with a zero direction component are handled explicitly: the
// ray runs parallel to that slab and misses unless its origin lies inside it.
func (b AABB) Intersect(r Ray, tMin, tMax float64) bool {
	if b.IsEmpty() {
		return false
	}

	for i := 0; i < 3; i++ {
		if r.Dir[i] == 0 {
			if r.Origin[i] < b.Min[i] || r.Origin[i] > b.Max[i] {
				return false
			}
			continue
		}

		invD := 1.0 / r.Dir[i]
		t0 := (b.Min[i] - r.Origin[i]) * invD
		t1 := (b.Max[i] - r.Origin[i]) * invD
		if invD < 0 {
			t0, t1 = t1, t0
		}
		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}
		if tMax < tMin {
			return false
		}
	}
	return true
}
