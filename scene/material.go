package scene

import "github.com/achilleasa/bvhtrace/types"

type MaterialType uint8

const (
	DiffuseMaterial MaterialType = iota
	MetalMaterial
	GlassMaterial
)

func (t MaterialType) String() string {
	switch t {
	case DiffuseMaterial:
		return "diffuse"
	case MetalMaterial:
		return "metal"
	case GlassMaterial:
		return "glass"
	}
	return "unknown"
}

// Material is an opaque payload attached to primitives. Neither the scene
// nor the bvh packages interpret it.
type Material struct {
	Type      MaterialType
	Albedo    types.Vec3
	Roughness float64
	IOR       float64
}

func NewDiffuse(albedo types.Vec3) Material {
	return Material{Type: DiffuseMaterial, Albedo: albedo}
}

func NewMetal(albedo types.Vec3, roughness float64) Material {
	return Material{Type: MetalMaterial, Albedo: albedo, Roughness: roughness}
}

func NewGlass(ior float64) Material {
	return Material{Type: GlassMaterial, Albedo: types.XYZ(1, 1, 1), IOR: ior}
}
