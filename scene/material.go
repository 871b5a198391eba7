package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Material bundles the shading parameters for one surface finish.
type Material struct {
	Tag             string
	AmbientColor    mgl32.Vec3
	AmbientStrength float32
	DiffuseColor    mgl32.Vec3
	SpecularColor   mgl32.Vec3
	Shininess       float32
}

// Apply pushes the material parameters into the shading stage.
func (m Material) Apply(u UniformStore) error {
	sets := []struct {
		name  string
		value interface{}
	}{
		{"material.ambientColor", m.AmbientColor},
		{"material.ambientStrength", m.AmbientStrength},
		{"material.diffuseColor", m.DiffuseColor},
		{"material.specularColor", m.SpecularColor},
		{"material.shininess", m.Shininess},
	}
	for _, s := range sets {
		if err := u.SetUniform(s.name, s.value); err != nil {
			return err
		}
	}
	return nil
}

// MaterialRegistry is a small ordered list of named materials. Add
// appends unconditionally; a duplicate tag is permitted and shadowed
// by the earlier registration on lookup.
type MaterialRegistry struct {
	materials []Material
}

func NewMaterialRegistry() *MaterialRegistry {
	return &MaterialRegistry{}
}

func (r *MaterialRegistry) Add(m Material) {
	r.materials = append(r.materials, m)
}

// Find returns the first material registered under tag. The scan is
// linear and case sensitive; the registry never exceeds a handful of
// entries.
func (r *MaterialRegistry) Find(tag string) (Material, bool) {
	for _, m := range r.materials {
		if m.Tag == tag {
			return m, true
		}
	}
	return Material{}, false
}

func (r *MaterialRegistry) Len() int {
	return len(r.materials)
}

// DefaultMaterials returns the authored material set of the scene.
// The values are fixed constants, not computed.
func DefaultMaterials() []Material {
	return []Material{
		{
			Tag:             "marble",
			AmbientColor:    mgl32.Vec3{0.2, 0.2, 0.2},
			AmbientStrength: 0.4,
			DiffuseColor:    mgl32.Vec3{0.9, 0.9, 0.9},
			SpecularColor:   mgl32.Vec3{0.3, 0.3, 0.3},
			Shininess:       16.0,
		},
		{
			Tag:             "gold",
			AmbientColor:    mgl32.Vec3{0.25, 0.20, 0.07},
			AmbientStrength: 0.3,
			DiffuseColor:    mgl32.Vec3{0.8, 0.65, 0.25},
			SpecularColor:   mgl32.Vec3{0.65, 0.55, 0.35},
			Shininess:       51.2,
		},
		{
			Tag:             "granite",
			AmbientColor:    mgl32.Vec3{0.2, 0.2, 0.2},
			AmbientStrength: 0.35,
			DiffuseColor:    mgl32.Vec3{0.6, 0.6, 0.6},
			SpecularColor:   mgl32.Vec3{0.2, 0.2, 0.2},
			Shininess:       8.0,
		},
		{
			Tag:             "wall",
			AmbientColor:    mgl32.Vec3{1.0, 1.0, 1.0},
			AmbientStrength: 0.5,
			DiffuseColor:    mgl32.Vec3{1.0, 1.0, 1.0},
			SpecularColor:   mgl32.Vec3{0.1, 0.1, 0.1},
			Shininess:       1.0,
		},
		{
			Tag:             "lamp",
			AmbientColor:    mgl32.Vec3{1.0, 1.0, 1.0},
			AmbientStrength: 0.5,
			DiffuseColor:    mgl32.Vec3{1.0, 1.0, 1.0},
			SpecularColor:   mgl32.Vec3{0.2, 0.2, 0.2},
			Shininess:       2.0,
		},
	}
}
