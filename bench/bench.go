package bench

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"time"

	"github.com/achilleasa/bvhtrace/bvh"
	"github.com/achilleasa/bvhtrace/log"
	"github.com/achilleasa/bvhtrace/scene"
	"golang.org/x/sync/errgroup"
)

var (
	ErrNoSizes = errors.New("bench: no scene sizes specified")
	ErrNoRays  = errors.New("bench: ray count must be positive")
)

// Hits whose distances differ by more than this are reported as mismatches.
const hitDistanceTolerance = 1e-9

type Options struct {
	// Number of small spheres scattered in each generated scene.
	Sizes []int

	// Camera rays cast per scene.
	Rays int

	Seed int64

	BvhOptions bvh.Options

	// Max number of scenes processed in parallel. Running more than one
	// worker makes the reported timings noisier.
	Workers int
}

func DefaultOptions() Options {
	return Options{
		Sizes:      []int{10, 50, 100, 250, 500, 1000},
		Rays:       2000,
		Seed:       42,
		BvhOptions: bvh.DefaultOptions(),
		Workers:    1,
	}
}

// Sample holds the measurements collected for a single scene.
type Sample struct {
	// Scene and tree shape.
	Primitives int
	Nodes      int
	MaxDepth   int

	BvhBoxTestsPerRay       float64
	BvhPrimitiveTestsPerRay float64
	BruteTestsPerRay        float64

	BuildTime time.Duration
	BvhTime   time.Duration
	BruteTime time.Duration

	// Rays for which the bvh and brute force disagree.
	Mismatches int
}

// Ratio between brute force and bvh trace times.
func (s Sample) Speedup() float64 {
	if s.BvhTime <= 0 {
		return 0
	}
	return float64(s.BruteTime) / float64(s.BvhTime)
}

// Run the scaling experiment: for each size a random scene is generated and
// the same set of camera rays is traced through a bvh and a brute force
// search. Samples are returned in the order of opts.Sizes.
func Run(ctx context.Context, opts Options) ([]Sample, error) {
	if len(opts.Sizes) == 0 {
		return nil, ErrNoSizes
	}
	if opts.Rays <= 0 {
		return nil, ErrNoRays
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}

	logger := log.New("bench")
	samples := make([]Sample, len(opts.Sizes))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for index, size := range opts.Sizes {
		g.Go(func() error {
			sample, err := runScene(gctx, size, opts)
			if err != nil {
				return err
			}
			samples[index] = sample

			logger.Infof(
				"%d primitives: %.2f box + %.2f primitive tests/ray (bvh) vs %.0f (brute force), speedup %.2fx",
				sample.Primitives, sample.BvhBoxTestsPerRay, sample.BvhPrimitiveTestsPerRay, sample.BruteTestsPerRay, sample.Speedup(),
			)
			if sample.Mismatches > 0 {
				logger.Warningf("%d primitives: %d rays disagree with the brute force result", sample.Primitives, sample.Mismatches)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return samples, nil
}

func runScene(ctx context.Context, size int, opts Options) (Sample, error) {
	rng := rand.New(rand.NewSource(opts.Seed))
	sc := scene.GenerateRandom(rng, size)
	sc.Camera.SetupProjection(16.0 / 9.0)

	rays := make([]scene.Ray, opts.Rays)
	for i := range rays {
		rays[i] = sc.Camera.GetRay(rng.Float64(), rng.Float64(), rng)
	}

	buildStart := time.Now()
	tree := bvh.New(sc.Primitives, opts.BvhOptions)
	treeStats := tree.Stats()

	sample := Sample{
		Primitives: len(sc.Primitives),
		Nodes:      treeStats.Nodes,
		MaxDepth:   treeStats.MaxDepth,
		BuildTime:  time.Since(buildStart),
	}

	tMin, tMax := 0.001, math.Inf(1)

	var bvhStats scene.TraversalStats
	bvhHits := make([]scene.HitRecord, len(rays))
	bvhFound := make([]bool, len(rays))
	start := time.Now()
	for i, ray := range rays {
		bvhHits[i], bvhFound[i] = tree.Intersect(ray, tMin, tMax, &bvhStats)
	}
	sample.BvhTime = time.Since(start)

	if err := ctx.Err(); err != nil {
		return sample, err
	}

	var bruteStats scene.TraversalStats
	start = time.Now()
	for i, ray := range rays {
		hit, found := sc.Intersect(ray, tMin, tMax, &bruteStats)
		if !sameHit(bvhHits[i], bvhFound[i], hit, found) {
			sample.Mismatches++
		}
	}
	sample.BruteTime = time.Since(start)

	numRays := float64(len(rays))
	sample.BvhBoxTestsPerRay = float64(bvhStats.BoxTests) / numRays
	sample.BvhPrimitiveTestsPerRay = float64(bvhStats.PrimitiveTests) / numRays
	sample.BruteTestsPerRay = float64(bruteStats.PrimitiveTests) / numRays

	return sample, ctx.Err()
}

func sameHit(a scene.HitRecord, aFound bool, b scene.HitRecord, bFound bool) bool {
	if aFound != bFound {
		return false
	}
	if !aFound {
		return true
	}
	return a.PrimitiveIndex == b.PrimitiveIndex && math.Abs(a.T-b.T) <= hitDistanceTolerance
}
