package cmd

import (
	"context"
	"math/rand"
	"os"
	"os/signal"

	"github.com/achilleasa/bvhtrace/bvh"
	"github.com/achilleasa/bvhtrace/scene"
	"github.com/achilleasa/bvhtrace/scene/reader"
	"github.com/urfave/cli"
)

// Load the scene snapshot passed via --scene or generate a random scene
// using the --spheres and --seed flags.
func loadScene(ctx *cli.Context) (*scene.Scene, error) {
	if sceneFile := ctx.String("scene"); sceneFile != "" {
		logger.Noticef("loading scene from %s", sceneFile)
		sc, err := reader.ReadScene(sceneFile)
		if err != nil {
			return nil, err
		}
		if sc.Camera == nil {
			sc.Camera = scene.DefaultCamera()
		}
		return sc, nil
	}

	rng := rand.New(rand.NewSource(ctx.Int64("seed")))
	return scene.GenerateRandom(rng, ctx.Int("spheres")), nil
}

func bvhOptions(ctx *cli.Context) bvh.Options {
	return bvh.Options{
		BucketCount:   ctx.Int("buckets"),
		TraversalCost: ctx.Float64("traversal-cost"),
	}
}

// Get a context that is cancelled when the process receives an interrupt.
func interruptibleContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}
