package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/achilleasa/bvhtrace/bvh"
	"github.com/achilleasa/bvhtrace/cmd"
	"github.com/urfave/cli"
)

func sceneFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "scene",
			Usage: "load scene from a zip snapshot instead of generating one",
		},
		cli.IntFlag{
			Name:  "spheres",
			Value: 100,
			Usage: "number of small spheres in the generated scene",
		},
		cli.Int64Flag{
			Name:  "seed",
			Value: 42,
			Usage: "random seed for scene generation and sampling",
		},
	}
}

func bvhFlags() []cli.Flag {
	return []cli.Flag{
		cli.IntFlag{
			Name:  "buckets",
			Value: bvh.DefaultBucketCount,
			Usage: "number of SAH buckets",
		},
		cli.Float64Flag{
			Name:  "traversal-cost",
			Value: bvh.DefaultTraversalCost,
			Usage: "relative cost of a traversal step in the SAH cost model",
		},
	}
}

func frameFlags(defaultOut string) []cli.Flag {
	return []cli.Flag{
		cli.IntFlag{
			Name:  "width",
			Value: 400,
			Usage: "frame width",
		},
		cli.IntFlag{
			Name:  "height",
			Value: 225,
			Usage: "frame height",
		},
		cli.IntFlag{
			Name:  "spp",
			Value: 4,
			Usage: "samples per pixel",
		},
		cli.StringFlag{
			Name:  "mode",
			Value: "normals",
			Usage: "render mode (normals, depth or heatmap)",
		},
		cli.Float64Flag{
			Name:  "heatmap-scale",
			Value: 64,
			Usage: "box tests per ray mapped to the hottest heatmap color",
		},
		cli.IntFlag{
			Name:  "workers",
			Value: runtime.NumCPU(),
			Usage: "number of blocks rendered in parallel",
		},
		cli.StringFlag{
			Name:  "out, o",
			Value: defaultOut,
			Usage: "image filename (.png, .bmp or .tiff)",
		},
	}
}

func concat(flagSets ...[]cli.Flag) []cli.Flag {
	var out []cli.Flag
	for _, set := range flagSets {
		out = append(out, set...)
	}
	return out
}

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "bvhtrace"
	app.Usage = "render sphere scenes using a bounding volume hierarchy"
	app.Version = "0.0.1"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
		cli.StringFlag{
			Name:  "log-level",
			Usage: "log verbosity (debug, info, notice, warning or error)",
		},
		cli.StringFlag{
			Name:  "log-file",
			Usage: "append log output to this file instead of stdout",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "scene",
			Usage: "generate a random scene and write it to a zip snapshot",
			Flags: concat(sceneFlags()[1:], []cli.Flag{
				cli.StringFlag{
					Name:  "out, o",
					Value: "scene.zip",
					Usage: "scene snapshot filename",
				},
			}),
			Action: cmd.GenerateScene,
		},
		{
			Name:  "render",
			Usage: "render a debug view of the scene",
			Description: `
Trace primary rays through the scene and visualize surface normals, hit
distances or the number of bounding box tests per ray.`,
			Flags: concat(sceneFlags(), bvhFlags(), frameFlags("frame.png"), []cli.Flag{
				cli.StringFlag{
					Name:  "accel",
					Value: "bvh",
					Usage: "intersection accelerator (bvh or brute)",
				},
			}),
			Action: cmd.RenderFrame,
		},
		{
			Name:   "compare",
			Usage:  "render the scene using the bvh and a brute force search and report the speedup",
			Flags:  concat(sceneFlags(), bvhFlags(), frameFlags("compare.png")),
			Action: cmd.CompareAccelerators,
		},
		{
			Name:  "visualize",
			Usage: "write a top-down view of the upper bvh levels",
			Flags: concat(sceneFlags(), bvhFlags(), []cli.Flag{
				cli.IntFlag{
					Name:  "width",
					Value: 400,
					Usage: "image width",
				},
				cli.IntFlag{
					Name:  "height",
					Value: 400,
					Usage: "image height",
				},
				cli.IntFlag{
					Name:  "depth",
					Value: 3,
					Usage: "deepest bvh level to draw",
				},
				cli.Float64Flag{
					Name:  "extent",
					Value: 13,
					Usage: "half size of the visualized XZ region",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "bvh_layers.png",
					Usage: "image filename (.png, .bmp or .tiff)",
				},
			}),
			Action: cmd.VisualizeBvh,
		},
		{
			Name:   "stats",
			Usage:  "display bvh shape statistics",
			Flags:  concat(sceneFlags(), bvhFlags()),
			Action: cmd.ShowBvhStats,
		},
		{
			Name:  "bench",
			Usage: "measure intersection tests per ray for increasing scene sizes",
			Flags: concat(bvhFlags(), []cli.Flag{
				cli.StringFlag{
					Name:  "sizes",
					Value: "10,50,100,250,500,1000",
					Usage: "comma separated list of small sphere counts",
				},
				cli.IntFlag{
					Name:  "rays",
					Value: 2000,
					Usage: "camera rays cast per scene",
				},
				cli.Int64Flag{
					Name:  "seed",
					Value: 42,
					Usage: "random seed",
				},
				cli.IntFlag{
					Name:  "workers",
					Value: 1,
					Usage: "number of scenes processed in parallel",
				},
				cli.StringFlag{
					Name:  "plot",
					Usage: "write a scaling chart to this file",
				},
			}),
			Action: cmd.RunBench,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err.Error())
		os.Exit(1)
	}
}
