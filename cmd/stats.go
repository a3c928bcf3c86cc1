package cmd

import (
	"bytes"
	"fmt"
	"time"

	"github.com/achilleasa/bvhtrace/bvh"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Build a bvh for the scene and display its shape.
func ShowBvhStats(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	sc, err := loadScene(ctx)
	if err != nil {
		return err
	}

	start := time.Now()
	tree := bvh.New(sc.Primitives, bvhOptions(ctx))
	buildTime := time.Since(start)
	stats := tree.Stats()

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Primitives", "Nodes", "Leafs", "Max depth", "Avg leaf depth", "Build time"})
	table.Append([]string{
		fmt.Sprintf("%d", len(sc.Primitives)),
		fmt.Sprintf("%d", stats.Nodes),
		fmt.Sprintf("%d", stats.Leafs),
		fmt.Sprintf("%d", stats.MaxDepth),
		fmt.Sprintf("%.2f", stats.AvgLeafDepth),
		fmt.Sprintf("%s", buildTime),
	})

	table.Render()
	logger.Noticef("bvh statistics\n%s", buf.String())
	return nil
}
