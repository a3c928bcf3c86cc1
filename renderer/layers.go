package renderer

import (
	"image"
	"math"

	"github.com/achilleasa/bvhtrace/bvh"
	"github.com/achilleasa/bvhtrace/scene"
	"github.com/achilleasa/bvhtrace/types"
)

var (
	layerBackground = types.XYZ(0.1, 0.1, 0.15)
	layerColors     = []types.Vec3{
		types.XYZ(1.0, 0.2, 0.2),
		types.XYZ(0.2, 1.0, 0.2),
		types.XYZ(0.2, 0.4, 1.0),
		types.XYZ(1.0, 1.0, 0.2),
	}
	glassTint = types.XYZ(0.8, 0.9, 1.0)
)

type LayerOptions struct {
	Width  int
	Height int

	// Deepest tree level that gets drawn; the root is level 0.
	MaxDepth int

	// The XZ plane region [-WorldExtent, WorldExtent] mapped to the image.
	WorldExtent float64
}

func DefaultLayerOptions() LayerOptions {
	return LayerOptions{
		Width:       400,
		Height:      400,
		MaxDepth:    3,
		WorldExtent: 13,
	}
}

type layerCanvas struct {
	width, height int
	extent        float64
	pixels        []types.Vec3
}

// Render a top-down view of the tree bounding boxes projected on the XZ
// plane. Boxes deeper in the tree are drawn with decreasing opacity and
// primitives are drawn on top as filled discs.
func RenderBvhLayers(tree *bvh.Tree, prims []scene.Primitive, opts LayerOptions) *image.RGBA {
	if opts.Width <= 0 || opts.Height <= 0 {
		def := DefaultLayerOptions()
		opts.Width, opts.Height = def.Width, def.Height
	}
	if opts.WorldExtent <= 0 {
		opts.WorldExtent = DefaultLayerOptions().WorldExtent
	}

	canvas := &layerCanvas{
		width:  opts.Width,
		height: opts.Height,
		extent: opts.WorldExtent,
		pixels: make([]types.Vec3, opts.Width*opts.Height),
	}
	for i := range canvas.pixels {
		canvas.pixels[i] = layerBackground
	}

	if tree != nil {
		tree.Walk(func(_ int32, node *bvh.Node, depth int) bool {
			if depth > opts.MaxDepth {
				return false
			}
			col := layerColors[depth%len(layerColors)]
			canvas.drawRect(node.BBox, col, 1.0/float64(depth+1))
			return true
		})
	}

	for _, prim := range prims {
		canvas.drawPrimitive(prim)
	}

	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	for y := 0; y < opts.Height; y++ {
		for x := 0; x < opts.Width; x++ {
			img.SetRGBA(x, y, toRGBA(canvas.pixels[y*opts.Width+x]))
		}
	}
	return img
}

// Map world XZ coordinates to image coordinates.
func (c *layerCanvas) project(wx, wz float64) (int, int) {
	px := int((wx + c.extent) / (2 * c.extent) * float64(c.width))
	py := int((wz + c.extent) / (2 * c.extent) * float64(c.height))
	return px, py
}

func (c *layerCanvas) blend(x, y int, col types.Vec3, alpha float64) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	idx := y*c.width + x
	c.pixels[idx] = lerp(c.pixels[idx], col, alpha)
}

func (c *layerCanvas) drawRect(box scene.AABB, col types.Vec3, alpha float64) {
	if box.IsEmpty() {
		return
	}
	x0, y0 := c.project(box.Min.X(), box.Min.Z())
	x1, y1 := c.project(box.Max.X(), box.Max.Z())
	x0, x1 = clamp(x0, 0, c.width-1), clamp(x1, 0, c.width-1)
	y0, y1 = clamp(y0, 0, c.height-1), clamp(y1, 0, c.height-1)

	for x := x0; x <= x1; x++ {
		c.blend(x, y0, col, alpha)
		if y1 != y0 {
			c.blend(x, y1, col, alpha)
		}
	}
	for y := y0 + 1; y < y1; y++ {
		c.blend(x0, y, col, alpha)
		if x1 != x0 {
			c.blend(x1, y, col, alpha)
		}
	}
}

func (c *layerCanvas) drawPrimitive(prim scene.Primitive) {
	center := prim.Center()
	col := types.XYZ(1, 1, 1)
	radius := prim.BBox().Extent().X() / 2
	if sphere, ok := prim.(*scene.Sphere); ok {
		radius = sphere.Radius
		col = sphere.Material.Albedo
		if sphere.Material.Type == scene.GlassMaterial {
			col = glassTint
		}
	}

	// Skip primitives that cover the entire view, e.g. the ground.
	if radius >= c.extent {
		return
	}

	cx, cy := c.project(center.X(), center.Z())
	pr := int(math.Max(1, radius*float64(c.width)/(2*c.extent)))
	for dy := -pr; dy <= pr; dy++ {
		for dx := -pr; dx <= pr; dx++ {
			if dx*dx+dy*dy <= pr*pr {
				c.blend(cx+dx, cy+dy, col, 1.0)
			}
		}
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
