package scene

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/achilleasa/bvhtrace/types"
)

// The camera type generates primary rays using a thin lens model.
type Camera struct {
	Position types.Vec3
	LookAt   types.Vec3
	Up       types.Vec3

	// Vertical field of view in degrees.
	FOV float32

	Aperture  float64
	FocusDist float64

	// Viewport basis; populated by SetupProjection.
	origin     types.Vec3
	lowerLeft  types.Vec3
	horizontal types.Vec3
	vertical   types.Vec3
	u, v, w    types.Vec3
	lensRadius float64
	ready      bool
}

func NewCamera(fov float32) *Camera {
	return &Camera{
		Position:  types.Vec3{0, 0, 0},
		LookAt:    types.Vec3{0, 0, -1},
		Up:        types.Vec3{0, 1, 0},
		FOV:       fov,
		FocusDist: 1,
	}
}

// The camera placement used by the demo renders.
func DefaultCamera() *Camera {
	cam := NewCamera(20)
	cam.Position = types.XYZ(13, 2, 3)
	cam.LookAt = types.XYZ(0, 0, 0)
	cam.Aperture = 0.1
	cam.FocusDist = 10
	return cam
}

// Setup the viewport for the given aspect ratio (width / height).
func (c *Camera) SetupProjection(aspect float64) {
	theta := float64(c.FOV) * math.Pi / 180.0
	viewportH := 2.0 * math.Tan(theta/2)
	viewportW := aspect * viewportH

	c.w = c.Position.Sub(c.LookAt).Normalize()
	c.u = c.Up.Cross(c.w).Normalize()
	c.v = c.w.Cross(c.u)

	c.origin = c.Position
	c.horizontal = c.u.Mul(c.FocusDist * viewportW)
	c.vertical = c.v.Mul(c.FocusDist * viewportH)
	c.lowerLeft = c.origin.
		Sub(c.horizontal.Mul(0.5)).
		Sub(c.vertical.Mul(0.5)).
		Sub(c.w.Mul(c.FocusDist))
	c.lensRadius = c.Aperture / 2
	c.ready = true
}

// Generate a ray through viewport coordinates (s, t) in [0, 1]. Lens
// sampling uses rng; a nil rng turns the camera into a pinhole.
func (c *Camera) GetRay(s, t float64, rng *rand.Rand) Ray {
	if !c.ready {
		c.SetupProjection(1)
	}

	origin := c.origin
	if rng != nil && c.lensRadius > 0 {
		rd := randomInUnitDisk(rng).Mul(c.lensRadius)
		origin = origin.Add(c.u.Mul(rd[0])).Add(c.v.Mul(rd[1]))
	}

	target := c.lowerLeft.Add(c.horizontal.Mul(s)).Add(c.vertical.Mul(t))
	return NewRay(origin, target.Sub(origin).Normalize())
}

func (c *Camera) String() string {
	return fmt.Sprintf(
		"Camera: pos (%3.3f, %3.3f, %3.3f) lookAt (%3.3f, %3.3f, %3.3f) fov %3.1f aperture %1.3f focus %3.3f",
		c.Position[0], c.Position[1], c.Position[2],
		c.LookAt[0], c.LookAt[1], c.LookAt[2],
		c.FOV, c.Aperture, c.FocusDist,
	)
}

func randomInUnitDisk(rng *rand.Rand) types.Vec3 {
	for {
		p := types.XYZ(rng.Float64()*2-1, rng.Float64()*2-1, 0)
		if p.Dot(p) < 1 {
			return p
		}
	}
}
