package renderer

import (
	"time"

	"github.com/achilleasa/bvhtrace/scene"
)

type BlockStat struct {
	Id int

	// The block position, height and the percentage of total frame area it represents.
	Y            uint32
	BlockH       uint32
	FramePercent float32

	// Render time for the block
	RenderTime time.Duration

	// Number of traced rays and intersection tests performed for them.
	Rays      uint64
	Traversal scene.TraversalStats
}

type FrameStats struct {
	// Individual block stats.
	Blocks []BlockStat

	// Total render time for entire frame.
	RenderTime time.Duration

	Rays      uint64
	Traversal scene.TraversalStats
}

// Average number of bounding box tests per ray.
func (s FrameStats) BoxTestsPerRay() float64 {
	if s.Rays == 0 {
		return 0
	}
	return float64(s.Traversal.BoxTests) / float64(s.Rays)
}

// Average number of primitive tests per ray.
func (s FrameStats) PrimitiveTestsPerRay() float64 {
	if s.Rays == 0 {
		return 0
	}
	return float64(s.Traversal.PrimitiveTests) / float64(s.Rays)
}
