package bvh

import "github.com/achilleasa/bvhtrace/scene"

// Bvh nodes are stored in a flat slice with the root at index 0. Children
// and primitives are referenced by index:
//
// - internal nodes have Left/Right >= 0 and Primitive = -1
// - leafs have Left/Right = -1 and Primitive pointing into the primitive list
//
// A node bbox always contains the bboxes of everything below it.
type Node struct {
	BBox scene.AABB

	Left  int32
	Right int32

	Primitive int32
}

func newNode() Node {
	return Node{
		BBox:      scene.EmptyAABB(),
		Left:      -1,
		Right:     -1,
		Primitive: -1,
	}
}

// Returns true if this is a leaf node.
func (n *Node) IsLeaf() bool {
	return n.Primitive >= 0
}

// Set left and right child node indices.
func (n *Node) SetChildNodes(left, right uint32) {
	n.Left = int32(left)
	n.Right = int32(right)
	n.Primitive = -1
}

// Setup the node as a leaf pointing to a primitive index.
func (n *Node) SetPrimitive(index uint32) {
	n.Primitive = int32(index)
	n.Left = -1
	n.Right = -1
}
