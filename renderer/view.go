package renderer

import (
	"image/color"
	"math"

	"github.com/achilleasa/bvhtrace/scene"
	"github.com/achilleasa/bvhtrace/types"
)

var (
	skyHorizon = types.XYZ(1.0, 1.0, 1.0)
	skyZenith  = types.XYZ(0.5, 0.7, 1.0)

	heatCold = types.XYZ(0.0, 0.0, 0.5)
	heatMid  = types.XYZ(0.0, 0.9, 0.2)
	heatHot  = types.XYZ(1.0, 0.1, 0.0)
)

// Calculate the color for a primary ray according to the render mode.
func (r *Renderer) sample(ray scene.Ray, hit scene.HitRecord, isHit bool, stats scene.TraversalStats) types.Vec3 {
	if r.opts.Mode == HeatmapMode {
		return heatColor(float64(stats.BoxTests) / r.opts.HeatmapScale)
	}

	if !isHit {
		return background(ray)
	}

	switch r.opts.Mode {
	case DepthMode:
		d := 1.0 - math.Min(hit.T/r.opts.MaxDistance, 1.0)
		return types.XYZ(d, d, d)
	default:
		return hit.Normal.Add(types.XYZ(1, 1, 1)).Mul(0.5)
	}
}

// Vertical sky gradient used for rays that escape the scene.
func background(ray scene.Ray) types.Vec3 {
	t := 0.5 * (ray.Dir.Normalize().Y() + 1.0)
	return skyHorizon.Mul(1 - t).Add(skyZenith.Mul(t))
}

// Map v in [0, 1] to a cold-to-hot color ramp. Values are clamped.
func heatColor(v float64) types.Vec3 {
	v = math.Max(0, math.Min(v, 1))
	if v < 0.5 {
		return lerp(heatCold, heatMid, v*2)
	}
	return lerp(heatMid, heatHot, (v-0.5)*2)
}

func lerp(a, b types.Vec3, t float64) types.Vec3 {
	return a.Mul(1 - t).Add(b.Mul(t))
}

// Convert a linear color to gamma 2 corrected RGBA.
func toRGBA(c types.Vec3) color.RGBA {
	return color.RGBA{
		R: toByte(c[0]),
		G: toByte(c[1]),
		B: toByte(c[2]),
		A: 255,
	}
}

func toByte(v float64) uint8 {
	v = math.Sqrt(math.Max(0, math.Min(v, 1)))
	return uint8(255.999 * v)
}
