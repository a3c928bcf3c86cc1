package bvh

// Stats summarizes the shape of a tree.
type Stats struct {
	Nodes    int
	Leafs    int
	MaxDepth int

	// Mean depth of all leafs.
	AvgLeafDepth float64
}

// Collect statistics about the tree structure.
func (t *Tree) Stats() Stats {
	var (
		stats      Stats
		depthTotal int
	)

	t.Walk(func(_ int32, node *Node, depth int) bool {
		stats.Nodes++
		if depth > stats.MaxDepth {
			stats.MaxDepth = depth
		}
		if node.IsLeaf() {
			stats.Leafs++
			depthTotal += depth
		}
		return true
	})

	if stats.Leafs > 0 {
		stats.AvgLeafDepth = float64(depthTotal) / float64(stats.Leafs)
	}
	return stats
}
