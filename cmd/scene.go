package cmd

import (
	"bytes"
	"fmt"
	"math/rand"

	"github.com/achilleasa/bvhtrace/scene"
	"github.com/achilleasa/bvhtrace/scene/writer"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Generate a random scene and write it to a zip snapshot.
func GenerateScene(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(ctx.Int64("seed")))
	sc := scene.GenerateRandom(rng, ctx.Int("spheres"))

	displaySceneInfo(sc)

	outFile := ctx.String("out")
	if err := writer.WriteScene(sc, outFile); err != nil {
		return err
	}

	logger.Noticef("wrote scene with %d primitives to %s", len(sc.Primitives), outFile)
	return nil
}

func displaySceneInfo(sc *scene.Scene) {
	counts := make(map[scene.MaterialType]int)
	for _, prim := range sc.Primitives {
		if sphere, ok := prim.(*scene.Sphere); ok {
			counts[sphere.Material.Type]++
		}
	}

	bounds := sc.Bounds()

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Property", "Value"})
	table.Append([]string{"Primitives", fmt.Sprintf("%d", len(sc.Primitives))})
	for _, matType := range []scene.MaterialType{scene.DiffuseMaterial, scene.MetalMaterial, scene.GlassMaterial} {
		table.Append([]string{fmt.Sprintf("%s spheres", matType), fmt.Sprintf("%d", counts[matType])})
	}
	table.Append([]string{"Bounds min", fmt.Sprintf("%v", bounds.Min)})
	table.Append([]string{"Bounds max", fmt.Sprintf("%v", bounds.Max)})
	if sc.Camera != nil {
		table.Append([]string{"Camera", sc.Camera.String()})
	}

	table.Render()
	logger.Noticef("scene information\n%s", buf.String())
}
