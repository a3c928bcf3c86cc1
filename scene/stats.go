package scene

// TraversalStats collects instrumentation counters for intersection queries.
// Callers own the counters; accelerators only increment them.
type TraversalStats struct {
	// Number of bounding box tests.
	BoxTests uint64

	// Number of primitive intersection tests.
	PrimitiveTests uint64
}

// Accumulate the counters of another stats instance.
func (s *TraversalStats) Add(other TraversalStats) {
	s.BoxTests += other.BoxTests
	s.PrimitiveTests += other.PrimitiveTests
}

// Total number of tests of any kind.
func (s TraversalStats) Total() uint64 {
	return s.BoxTests + s.PrimitiveTests
}

// The Intersector interface is implemented by anything that can answer
// nearest-hit queries over a primitive list. A nil stats pointer disables
// instrumentation.
type Intersector interface {
	Intersect(r Ray, tMin, tMax float64, stats *TraversalStats) (HitRecord, bool)
}
