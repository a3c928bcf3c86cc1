package cmd

import (
	"bytes"
	"fmt"
	"image"

	"github.com/achilleasa/bvhtrace/bvh"
	"github.com/achilleasa/bvhtrace/renderer"
	"github.com/achilleasa/bvhtrace/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Render the same frame using the bvh and a brute force search and write both
// frames side by side.
func CompareAccelerators(ctx *cli.Context) error {
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

	runCtx, cancel := interruptibleContext()
	defer cancel()

	accelNames := []string{"BVH", "Brute force"}
	accels := []scene.Intersector{bvh.New(sc.Primitives, bvhOptions(ctx)), sc}
	frames := make([]*image.RGBA, len(accels))
	stats := make([]renderer.FrameStats, len(accels))

	for index, accel := range accels {
		logger.Noticef("rendering frame using %s", accelNames[index])
		r, err := renderer.New(accel, sc.Camera, opts)
		if err != nil {
			return err
		}

		if frames[index], err = r.Render(runCtx); err != nil {
			return err
		}
		stats[index] = r.Stats()
	}

	displayComparison(accelNames, stats)

	imgFile := ctx.String("out")
	if err = renderer.SaveImage(renderer.SideBySide(frames[0], frames[1]), imgFile); err != nil {
		return err
	}
	logger.Noticef("wrote comparison to %s", imgFile)
	return nil
}

func displayComparison(names []string, stats []renderer.FrameStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Accelerator", "Render time", "Box tests / ray", "Primitive tests / ray"})
	for index, stat := range stats {
		table.Append([]string{
			names[index],
			fmt.Sprintf("%s", stat.RenderTime),
			fmt.Sprintf("%.2f", stat.BoxTestsPerRay()),
			fmt.Sprintf("%.2f", stat.PrimitiveTestsPerRay()),
		})
	}
	table.SetFooter([]string{"", "", "SPEEDUP", fmt.Sprintf("%.2fx", speedup(stats[0].RenderTime, stats[1].RenderTime))})

	table.Render()
	logger.Noticef("accelerator comparison\n%s", buf.String())
}
