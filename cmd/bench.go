package cmd

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/achilleasa/bvhtrace/bench"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Measure how bvh traversal scales with the number of scene primitives.
func RunBench(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	sizes, err := parseSizes(ctx.String("sizes"))
	if err != nil {
		return err
	}

	opts := bench.Options{
		Sizes:      sizes,
		Rays:       ctx.Int("rays"),
		Seed:       ctx.Int64("seed"),
		BvhOptions: bvhOptions(ctx),
		Workers:    ctx.Int("workers"),
	}

	runCtx, cancel := interruptibleContext()
	defer cancel()

	samples, err := bench.Run(runCtx, opts)
	if err != nil {
		return err
	}

	displayBenchSamples(samples)

	if plotFile := ctx.String("plot"); plotFile != "" {
		if err = bench.Plot(samples, plotFile); err != nil {
			return err
		}
		logger.Noticef("wrote scaling plot to %s", plotFile)
	}
	return nil
}

// Parse a comma separated list of scene sizes.
func parseSizes(list string) ([]int, error) {
	var sizes []int
	for _, token := range strings.Split(list, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		size, err := strconv.Atoi(token)
		if err != nil || size < 0 {
			return nil, fmt.Errorf("invalid scene size %q", token)
		}
		sizes = append(sizes, size)
	}
	if len(sizes) == 0 {
		return nil, bench.ErrNoSizes
	}
	return sizes, nil
}

func displayBenchSamples(samples []bench.Sample) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Primitives", "Nodes", "Max depth", "Box tests / ray", "Primitive tests / ray", "Brute tests / ray", "BVH time", "Brute time", "Speedup", "Mismatches"})
	for _, s := range samples {
		table.Append([]string{
			fmt.Sprintf("%d", s.Primitives),
			fmt.Sprintf("%d", s.Nodes),
			fmt.Sprintf("%d", s.MaxDepth),
			fmt.Sprintf("%.2f", s.BvhBoxTestsPerRay),
			fmt.Sprintf("%.2f", s.BvhPrimitiveTestsPerRay),
			fmt.Sprintf("%.0f", s.BruteTestsPerRay),
			fmt.Sprintf("%s", s.BvhTime),
			fmt.Sprintf("%s", s.BruteTime),
			fmt.Sprintf("%.2fx", s.Speedup()),
			fmt.Sprintf("%d", s.Mismatches),
		})
	}

	table.Render()
	logger.Noticef("scaling results\n%s", buf.String())
}
