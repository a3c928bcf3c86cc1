package cmd

import (
	"flag"
	"strings"
	"testing"

	"github.com/achilleasa/bvhtrace/renderer"
	"github.com/urfave/cli"
)

func renderFlagContext(t *testing.T, args ...string) *cli.Context {
	t.Helper()

	set := flag.NewFlagSet("render", flag.ContinueOnError)
	set.Int("width", 400, "")
	set.Int("height", 225, "")
	set.Int("spp", 4, "")
	set.String("mode", "normals", "")
	set.Int("workers", 2, "")
	set.Int64("seed", 42, "")
	set.Float64("heatmap-scale", 64, "")
	if err := set.Parse(args); err != nil {
		t.Fatal(err)
	}
	return cli.NewContext(nil, set, nil)
}

func TestRenderOptions(t *testing.T) {
	opts, err := renderOptions(renderFlagContext(t, "--width", "32", "--height", "16", "--spp", "2", "--mode", "heatmap"))
	if err != nil {
		t.Fatal(err)
	}
	if opts.FrameW != 32 || opts.FrameH != 16 || opts.SamplesPerPixel != 2 {
		t.Fatalf("expected 32x16 frame with 2 spp; got %dx%d with %d spp", opts.FrameW, opts.FrameH, opts.SamplesPerPixel)
	}
	if opts.Mode != renderer.HeatmapMode {
		t.Fatalf("expected heatmap mode; got %s", opts.Mode)
	}
}

func TestRenderOptionsRejectNonPositive(t *testing.T) {
	type spec struct {
		args    []string
		expFlag string
	}
	specs := []spec{
		spec{[]string{"--width", "-1"}, "--width"},
		spec{[]string{"--height", "0"}, "--height"},
		spec{[]string{"--spp", "-1"}, "--spp"},
		spec{[]string{"--width", "-1", "--spp", "-1"}, "--width"},
	}

	for index, s := range specs {
		_, err := renderOptions(renderFlagContext(t, s.args...))
		if err == nil {
			t.Fatalf("[spec %d] expected an error for args %v", index, s.args)
		}
		if !strings.Contains(err.Error(), s.expFlag) {
			t.Fatalf("[spec %d] expected error to mention %s; got %v", index, s.expFlag, err)
		}
	}

	if _, err := renderOptions(renderFlagContext(t, "--mode", "shaded")); err == nil {
		t.Fatal("expected an error for an unknown mode")
	}
}
