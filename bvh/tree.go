package bvh

import (
	"github.com/achilleasa/bvhtrace/scene"
)

// Tree is an immutable BVH over a primitive list. The tree references the
// primitives by index and never copies them. A built tree is safe for
// concurrent Intersect calls.
type Tree struct {
	nodes []Node
	prims []scene.Primitive
}

// Build a tree over prims.
func New(prims []scene.Primitive, opts Options) *Tree {
	volList := make([]BoundedVolume, len(prims))
	for index, prim := range prims {
		volList[index] = prim
	}

	return &Tree{
		nodes: Build(volList, opts),
		prims: prims,
	}
}

// Get the tree nodes. The root is at index 0. Callers must not modify the
// returned slice.
func (t *Tree) Nodes() []Node {
	return t.nodes
}

// Get the number of tree nodes.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Find the closest primitive hit along r within [tMin, tMax]. Every visited
// node counts as one box test and every leaf primitive test is counted
// separately. stats may be nil.
func (t *Tree) Intersect(r scene.Ray, tMin, tMax float64, stats *scene.TraversalStats) (scene.HitRecord, bool) {
	if len(t.nodes) == 0 {
		return scene.HitRecord{}, false
	}
	if stats == nil {
		stats = &scene.TraversalStats{}
	}
	return t.intersectNode(0, r, tMin, tMax, stats)
}

func (t *Tree) intersectNode(nodeIndex int32, r scene.Ray, tMin, tMax float64, stats *scene.TraversalStats) (scene.HitRecord, bool) {
	node := &t.nodes[nodeIndex]

	stats.BoxTests++
	if !node.BBox.Intersect(r, tMin, tMax) {
		return scene.HitRecord{}, false
	}

	if node.IsLeaf() {
		stats.PrimitiveTests++
		hit, ok := t.prims[node.Primitive].Intersect(r, tMin, tMax)
		if ok {
			hit.PrimitiveIndex = int(node.Primitive)
		}
		return hit, ok
	}

	// Visit the left subtree first and use its hit distance to prune the
	// right subtree. Any right hit is then at least as close.
	closest, hitLeft := t.intersectNode(node.Left, r, tMin, tMax, stats)
	if hitLeft {
		tMax = closest.T
	}
	if hit, hitRight := t.intersectNode(node.Right, r, tMin, tMax, stats); hitRight {
		return hit, true
	}
	return closest, hitLeft
}

// A WalkFunc is invoked for each visited node together with its depth. Returning
// false skips the node's children.
type WalkFunc func(nodeIndex int32, node *Node, depth int) bool

// Visit tree nodes in pre-order (left before right).
func (t *Tree) Walk(fn WalkFunc) {
	if len(t.nodes) == 0 {
		return
	}

	type entry struct {
		index int32
		depth int
	}
	stack := []entry{{0, 0}}
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		node := &t.nodes[e.index]
		if !fn(e.index, node, e.depth) || node.IsLeaf() {
			continue
		}
		stack = append(stack, entry{node.Right, e.depth + 1}, entry{node.Left, e.depth + 1})
	}
}
