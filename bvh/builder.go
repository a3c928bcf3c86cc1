package bvh

import (
	"sort"
	"time"

	"github.com/achilleasa/bvhtrace/log"
	"github.com/achilleasa/bvhtrace/scene"
	"github.com/achilleasa/bvhtrace/types"
)

type Axis uint8

const (
	XAxis Axis = iota
	YAxis
	ZAxis
)

const (
	// Default number of SAH buckets.
	DefaultBucketCount = 12

	// Default fixed cost added to every SAH split candidate.
	DefaultTraversalCost = 0.125

	// Ranges with this many items or fewer are split at the median
	// without evaluating the SAH.
	medianSplitThreshold = 4

	// Centroid extents below this threshold are considered degenerate.
	minCentroidExtent = 1e-10
)

// The BoundedVolume interface is implemented by all primitives that can be
// partitioned by the bvh builder.
type BoundedVolume interface {
	BBox() scene.AABB
	Center() types.Vec3
}

// Tunable parameters for the SAH split.
type Options struct {
	// Number of buckets that centroids are binned into. Must be >= 2.
	BucketCount int

	// Constant added to the cost of every split candidate.
	TraversalCost float64
}

// Get the default builder options.
func DefaultOptions() Options {
	return Options{
		BucketCount:   DefaultBucketCount,
		TraversalCost: DefaultTraversalCost,
	}
}

// Replace invalid options with their defaults.
func (o Options) normalize() Options {
	if o.BucketCount < 2 {
		o.BucketCount = DefaultBucketCount
	}
	if o.TraversalCost < 0 {
		o.TraversalCost = DefaultTraversalCost
	}
	return o
}

type bucket struct {
	bbox  scene.AABB
	count int
}

type buildStats struct {
	nodes    int
	leafs    int
	maxDepth int
}

type builder struct {
	logger log.Logger
	opts   Options

	// Per-item bounds and centers, computed once up front.
	bboxes  []scene.AABB
	centers []types.Vec3

	// Item indices; partitioned in place as the tree is built.
	indices []int

	// Bvh nodes stored as a contiguous list
	nodes []Node

	buckets []bucket
	stats   buildStats
}

// Construct a BVH from a set of bounded volumes and return its nodes. The
// root node is stored at index 0 and leaf nodes point to indices into
// workList. An empty work list produces an empty node list.
//
// Building is deterministic: the same work list always produces the same
// tree.
func Build(workList []BoundedVolume, opts Options) []Node {
	if len(workList) == 0 {
		return nil
	}

	b := newBuilder(workList, opts)

	start := time.Now()
	b.partition(0, len(workList), 0)
	b.logger.Debugf(
		"BVH tree build time: %d ms, items: %d, maxDepth: %d, nodes: %d, leafs: %d",
		time.Since(start).Nanoseconds()/1e6, len(workList),
		b.stats.maxDepth, b.stats.nodes, b.stats.leafs,
	)
	return b.nodes
}

func newBuilder(workList []BoundedVolume, opts Options) *builder {
	opts = opts.normalize()
	b := &builder{
		logger:  log.New("bvh builder"),
		opts:    opts,
		bboxes:  make([]scene.AABB, len(workList)),
		centers: make([]types.Vec3, len(workList)),
		indices: make([]int, len(workList)),
		nodes:   make([]Node, 0, 2*len(workList)-1),
		buckets: make([]bucket, opts.BucketCount),
	}
	for index, item := range workList {
		b.bboxes[index] = item.BBox()
		b.centers[index] = item.Center()
		b.indices[index] = index
	}
	return b
}

// Partition the item range [start, end) and return the index of the node
// that covers it.
func (b *builder) partition(start, end, depth int) uint32 {
	if depth > b.stats.maxDepth {
		b.stats.maxDepth = depth
	}

	nodeIndex := len(b.nodes)
	b.nodes = append(b.nodes, newNode())
	b.stats.nodes++

	if end-start == 1 {
		item := b.indices[start]
		b.nodes[nodeIndex].SetPrimitive(uint32(item))
		b.nodes[nodeIndex].BBox = b.bboxes[item]
		b.stats.leafs++
		return uint32(nodeIndex)
	}

	centroidBBox := scene.EmptyAABB()
	for _, item := range b.indices[start:end] {
		centroidBBox = centroidBBox.Expand(b.centers[item])
	}
	axis := Axis(centroidBBox.LongestAxis())

	mid := b.split(start, end, axis, centroidBBox)

	leftNodeIndex := b.partition(start, mid, depth+1)
	rightNodeIndex := b.partition(mid, end, depth+1)
	b.nodes[nodeIndex].SetChildNodes(leftNodeIndex, rightNodeIndex)
	b.nodes[nodeIndex].BBox = scene.MergeAABB(b.nodes[leftNodeIndex].BBox, b.nodes[rightNodeIndex].BBox)

	return uint32(nodeIndex)
}

// Select a split point for [start, end) along axis using the surface area
// heuristic and partition the index range around it. The returned index
// always satisfies start < mid < end.
func (b *builder) split(start, end int, axis Axis, centroidBBox scene.AABB) int {
	count := end - start
	if count <= medianSplitThreshold {
		return b.medianSplit(start, end, axis)
	}

	axisMin := centroidBBox.Min[axis]
	extent := centroidBBox.Max[axis] - axisMin
	if extent < minCentroidExtent {
		return b.medianSplit(start, end, axis)
	}

	// Bin centroids
	numBuckets := len(b.buckets)
	for i := range b.buckets {
		b.buckets[i] = bucket{bbox: scene.EmptyAABB()}
	}
	for _, item := range b.indices[start:end] {
		bi := b.bucketIndex(b.centers[item][axis], axisMin, extent)
		b.buckets[bi].count++
		b.buckets[bi].bbox = scene.MergeAABB(b.buckets[bi].bbox, b.bboxes[item])
	}

	// Evaluate the cost of splitting after each bucket but the last and
	// keep the cheapest candidate; ties go to the earlier split.
	bestBucket := -1
	bestCost := 0.0
	for i := 0; i < numBuckets-1; i++ {
		cost, ok := b.splitCost(i)
		if !ok {
			continue
		}
		if bestBucket < 0 || cost < bestCost {
			bestBucket = i
			bestCost = cost
		}
	}
	if bestBucket < 0 {
		return b.medianSplit(start, end, axis)
	}

	splitValue := axisMin + float64(bestBucket+1)*extent/float64(numBuckets)
	mid := b.partitionAround(start, end, axis, splitValue)
	if mid == start || mid == end {
		return b.medianSplit(start, end, axis)
	}
	return mid
}

// Map a centroid coordinate to a bucket index.
func (b *builder) bucketIndex(c, axisMin, extent float64) int {
	numBuckets := len(b.buckets)
	bi := int(float64(numBuckets) * (c - axisMin) / extent)
	if bi >= numBuckets {
		bi = numBuckets - 1
	} else if bi < 0 {
		bi = 0
	}
	return bi
}

// Calculate the SAH cost of splitting the binned items after bucket splitAt:
//
// cost = traversal cost + (left count * left area + right count * right area) / total area
//
// Returns false if the merged bounds have no area and the cost is undefined.
func (b *builder) splitCost(splitAt int) (float64, bool) {
	leftBBox, rightBBox := scene.EmptyAABB(), scene.EmptyAABB()
	leftCount, rightCount := 0, 0
	for i, bk := range b.buckets {
		if i <= splitAt {
			leftBBox = scene.MergeAABB(leftBBox, bk.bbox)
			leftCount += bk.count
		} else {
			rightBBox = scene.MergeAABB(rightBBox, bk.bbox)
			rightCount += bk.count
		}
	}

	totalArea := scene.MergeAABB(leftBBox, rightBBox).SurfaceArea()
	if totalArea <= 0 {
		return 0, false
	}

	return b.opts.TraversalCost +
		(float64(leftCount)*leftBBox.SurfaceArea()+float64(rightCount)*rightBBox.SurfaceArea())/totalArea, true
}

// Reorder [start, end) so that items with a centroid below splitValue come
// first and return the index of the first item at or above it.
func (b *builder) partitionAround(start, end int, axis Axis, splitValue float64) int {
	mid := start
	for i := start; i < end; i++ {
		if b.centers[b.indices[i]][axis] < splitValue {
			b.indices[i], b.indices[mid] = b.indices[mid], b.indices[i]
			mid++
		}
	}
	return mid
}

// Sort [start, end) by centroid along axis and split it in half.
func (b *builder) medianSplit(start, end int, axis Axis) int {
	items := b.indices[start:end]
	sort.SliceStable(items, func(i, j int) bool {
		return b.centers[items[i]][axis] < b.centers[items[j]][axis]
	})
	return start + (end-start)/2
}
