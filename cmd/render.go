package cmd

import (
	"bytes"
	"fmt"
	"math"
	"time"

	"github.com/achilleasa/bvhtrace/bvh"
	"github.com/achilleasa/bvhtrace/renderer"
	"github.com/achilleasa/bvhtrace/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

func renderOptions(ctx *cli.Context) (renderer.Options, error) {
	mode, err := renderer.ParseMode(ctx.String("mode"))
	if err != nil {
		return renderer.Options{}, err
	}

	for _, name := range []string{"width", "height", "spp"} {
		if value := ctx.Int(name); value <= 0 {
			return renderer.Options{}, fmt.Errorf("invalid --%s value %d; must be positive", name, value)
		}
	}

	opts := renderer.DefaultOptions()
	opts.FrameW = uint32(ctx.Int("width"))
	opts.FrameH = uint32(ctx.Int("height"))
	opts.SamplesPerPixel = uint32(ctx.Int("spp"))
	opts.Mode = mode
	opts.Workers = ctx.Int("workers")
	opts.Seed = ctx.Int64("seed")
	opts.HeatmapScale = ctx.Float64("heatmap-scale")
	return opts, nil
}

// Build the accelerator selected by the --accel flag.
func buildAccelerator(ctx *cli.Context, sc *scene.Scene) (scene.Intersector, error) {
	switch accel := ctx.String("accel"); accel {
	case "bvh":
		start := time.Now()
		tree := bvh.New(sc.Primitives, bvhOptions(ctx))
		logger.Infof("built bvh with %d nodes in %d ms", tree.Len(), time.Since(start).Nanoseconds()/1e6)
		return tree, nil
	case "brute":
		return sc, nil
	default:
		return nil, fmt.Errorf("unknown accelerator %q; supported values are bvh and brute", accel)
	}
}

// Render a still frame.
func RenderFrame(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	opts, err := renderOptions(ctx)
	if err != nil {
		return err
	}

	sc, err := loadScene(ctx)
	if err != nil {
		return err
	}

	accel, err := buildAccelerator(ctx, sc)
	if err != nil {
		return err
	}

	r, err := renderer.New(accel, sc.Camera, opts)
	if err != nil {
		return err
	}

	runCtx, cancel := interruptibleContext()
	defer cancel()

	frame, err := r.Render(runCtx)
	if err != nil {
		return err
	}

	displayFrameStats(r.Stats())

	imgFile := ctx.String("out")
	if err = renderer.SaveImage(frame, imgFile); err != nil {
		return err
	}
	logger.Noticef("wrote frame to %s", imgFile)
	return nil
}

func displayFrameStats(stats renderer.FrameStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Block", "Block height", "% of frame", "Rays", "Box tests", "Primitive tests", "Render time"})
	for _, stat := range stats.Blocks {
		table.Append([]string{
			fmt.Sprintf("%d", stat.Id),
			fmt.Sprintf("%d", stat.BlockH),
			fmt.Sprintf("%02.1f %%", stat.FramePercent),
			fmt.Sprintf("%d", stat.Rays),
			fmt.Sprintf("%d", stat.Traversal.BoxTests),
			fmt.Sprintf("%d", stat.Traversal.PrimitiveTests),
			fmt.Sprintf("%s", stat.RenderTime),
		})
	}
	table.SetFooter([]string{
		"", "", "TOTAL",
		fmt.Sprintf("%d", stats.Rays),
		fmt.Sprintf("%.2f / ray", stats.BoxTestsPerRay()),
		fmt.Sprintf("%.2f / ray", stats.PrimitiveTestsPerRay()),
		fmt.Sprintf("%s", stats.RenderTime),
	})

	table.Render()
	logger.Noticef("frame statistics\n%s", buf.String())
}

func speedup(bvhTime, bruteTime time.Duration) float64 {
	if bvhTime <= 0 {
		return math.NaN()
	}
	return float64(bruteTime) / float64(bvhTime)
}
