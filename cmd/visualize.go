package cmd

import (
	"github.com/achilleasa/bvhtrace/bvh"
	"github.com/achilleasa/bvhtrace/renderer"
	"github.com/urfave/cli"
)

// Write a top-down view of the upper bvh levels.
func VisualizeBvh(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	sc, err := loadScene(ctx)
	if err != nil {
		return err
	}

	tree := bvh.New(sc.Primitives, bvhOptions(ctx))
	img := renderer.RenderBvhLayers(tree, sc.Primitives, renderer.LayerOptions{
		Width:       ctx.Int("width"),
		Height:      ctx.Int("height"),
		MaxDepth:    ctx.Int("depth"),
		WorldExtent: ctx.Float64("extent"),
	})

	imgFile := ctx.String("out")
	if err = renderer.SaveImage(img, imgFile); err != nil {
		return err
	}
	logger.Noticef("wrote bvh layer view to %s", imgFile)
	return nil
}
