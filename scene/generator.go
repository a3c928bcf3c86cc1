package scene

import (
	"math/rand"

	"github.com/achilleasa/bvhtrace/types"
)

const (
	groundRadius     = 1000.0
	featureRadius    = 1.0
	smallRadius      = 0.2
	smallSpreadHalf  = 11.0
	minFeatureMargin = 1.2
)

var featureCenters = []types.Vec3{
	{0, 1, 0},
	{-4, 1, 0},
	{4, 1, 0},
}

// Create the four sphere scene: a large ground sphere plus a glass, a
// diffuse and a metal sphere resting on it.
func NewFeaturedScene() *Scene {
	sc := &Scene{Camera: DefaultCamera()}
	sc.Add(NewSphere(types.XYZ(0, -groundRadius, 0), groundRadius, NewDiffuse(types.XYZ(0.5, 0.5, 0.5))))
	sc.Add(NewSphere(featureCenters[0], featureRadius, NewGlass(1.5)))
	sc.Add(NewSphere(featureCenters[1], featureRadius, NewDiffuse(types.XYZ(0.4, 0.2, 0.1))))
	sc.Add(NewSphere(featureCenters[2], featureRadius, NewMetal(types.XYZ(0.7, 0.6, 0.5), 0.0)))
	return sc
}

// Generate the featured scene and scatter up to numSpheres small spheres
// around it. Spheres overlapping the featured ones are rejected and the
// generator gives up after 10*numSpheres attempts. All randomness is drawn
// from rng so the same seed always yields the same scene.
func GenerateRandom(rng *rand.Rand, numSpheres int) *Scene {
	sc := NewFeaturedScene()

	placed := 0
	for attempts := 0; placed < numSpheres && attempts < numSpheres*10; attempts++ {
		center := types.XYZ(
			rng.Float64()*2*smallSpreadHalf-smallSpreadHalf,
			smallRadius,
			rng.Float64()*2*smallSpreadHalf-smallSpreadHalf,
		)
		if overlapsFeature(center) {
			continue
		}

		sc.Add(NewSphere(center, smallRadius, randomMaterial(rng)))
		placed++
	}

	return sc
}

func overlapsFeature(center types.Vec3) bool {
	for _, fc := range featureCenters {
		if center.Sub(fc).Len() < minFeatureMargin {
			return true
		}
	}
	return false
}

func randomMaterial(rng *rand.Rand) Material {
	choice := rng.Float64()
	switch {
	case choice < 0.7:
		return NewDiffuse(types.XYZ(
			rng.Float64()*rng.Float64(),
			rng.Float64()*rng.Float64(),
			rng.Float64()*rng.Float64(),
		))
	case choice < 0.9:
		albedo := types.XYZ(
			0.5+0.5*rng.Float64(),
			0.5+0.5*rng.Float64(),
			0.5+0.5*rng.Float64(),
		)
		return NewMetal(albedo, 0.5*rng.Float64())
	default:
		return NewGlass(1.5)
	}
}
