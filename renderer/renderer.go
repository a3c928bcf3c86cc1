package renderer

import (
	"context"
	"image"
	"math/rand"
	"runtime"
	"time"

	"github.com/achilleasa/bvhtrace/log"
	"github.com/achilleasa/bvhtrace/scene"
	"github.com/achilleasa/bvhtrace/types"
	"golang.org/x/sync/errgroup"
)

// Renderer traces one primary ray per sample through an accelerator and
// visualizes the result. The accelerator is only read during rendering so a
// single instance is shared by all workers.
type Renderer struct {
	logger log.Logger

	accel  scene.Intersector
	camera *scene.Camera
	opts   Options

	stats FrameStats
}

// Create a new renderer.
func New(accel scene.Intersector, camera *scene.Camera, opts Options) (*Renderer, error) {
	if accel == nil {
		return nil, ErrSceneNotDefined
	}
	if camera == nil {
		return nil, ErrCameraNotDefined
	}
	if opts.FrameW == 0 || opts.FrameH == 0 {
		return nil, ErrInvalidFrame
	}

	defaults := DefaultOptions()
	if opts.SamplesPerPixel == 0 {
		opts.SamplesPerPixel = 1
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}
	if opts.TMax <= opts.TMin {
		opts.TMin, opts.TMax = defaults.TMin, defaults.TMax
	}
	if opts.HeatmapScale <= 0 {
		opts.HeatmapScale = defaults.HeatmapScale
	}
	if opts.MaxDistance <= 0 {
		opts.MaxDistance = defaults.MaxDistance
	}

	camera.SetupProjection(float64(opts.FrameW) / float64(opts.FrameH))

	return &Renderer{
		logger: log.New("renderer"),
		accel:  accel,
		camera: camera,
		opts:   opts,
	}, nil
}

// Render a frame. The frame is split into row blocks which are rendered in
// parallel; each block draws samples from its own seeded generator so the
// output does not depend on the number of workers.
func (r *Renderer) Render(ctx context.Context) (*image.RGBA, error) {
	start := time.Now()
	frame := image.NewRGBA(image.Rect(0, 0, int(r.opts.FrameW), int(r.opts.FrameH)))

	blockHeights := splitRows(r.opts.FrameH, rowsPerBlock)
	blocks := make([]BlockStat, len(blockHeights))

	r.logger.Infof(
		"rendering %dx%d frame (%d spp, mode: %s) using %d blocks and %d workers",
		r.opts.FrameW, r.opts.FrameH, r.opts.SamplesPerPixel, r.opts.Mode, len(blocks), r.opts.Workers,
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.opts.Workers)

	var y uint32
	for index, blockH := range blockHeights {
		blocks[index] = BlockStat{
			Id:           index,
			Y:            y,
			BlockH:       blockH,
			FramePercent: 100.0 * float32(blockH) / float32(r.opts.FrameH),
		}
		y += blockH

		stat := &blocks[index]
		g.Go(func() error {
			return r.renderBlock(gctx, frame, stat)
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := FrameStats{
		Blocks:     blocks,
		RenderTime: time.Since(start),
	}
	for _, block := range blocks {
		stats.Rays += block.Rays
		stats.Traversal.Add(block.Traversal)
	}
	r.stats = stats

	r.logger.Infof(
		"rendered frame in %d ms (%d rays, %.2f box tests/ray, %.2f primitive tests/ray)",
		stats.RenderTime.Nanoseconds()/1e6, stats.Rays, stats.BoxTestsPerRay(), stats.PrimitiveTestsPerRay(),
	)
	return frame, nil
}

// Get the statistics for the last rendered frame.
func (r *Renderer) Stats() FrameStats {
	return r.stats
}

func (r *Renderer) renderBlock(ctx context.Context, frame *image.RGBA, stat *BlockStat) error {
	start := time.Now()
	rng := rand.New(rand.NewSource(r.opts.Seed + int64(stat.Id)))

	frameW := float64(r.opts.FrameW)
	frameH := float64(r.opts.FrameH)
	invSpp := 1.0 / float64(r.opts.SamplesPerPixel)

	for row := stat.Y; row < stat.Y+stat.BlockH; row++ {
		if ctx.Err() != nil {
			return ErrInterrupted
		}

		// Row 0 is the top of the image.
		v0 := frameH - 1 - float64(row)
		for x := uint32(0); x < r.opts.FrameW; x++ {
			var accum types.Vec3
			for s := uint32(0); s < r.opts.SamplesPerPixel; s++ {
				ray := r.camera.GetRay(
					(float64(x)+rng.Float64())/frameW,
					(v0+rng.Float64())/frameH,
					rng,
				)

				var rayStats scene.TraversalStats
				hit, isHit := r.accel.Intersect(ray, r.opts.TMin, r.opts.TMax, &rayStats)
				accum = accum.Add(r.sample(ray, hit, isHit, rayStats))

				stat.Rays++
				stat.Traversal.Add(rayStats)
			}
			frame.SetRGBA(int(x), int(row), toRGBA(accum.Mul(invSpp)))
		}
	}

	stat.RenderTime = time.Since(start)
	return nil
}
