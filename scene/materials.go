package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Material holds tag-keyed Phong material parameters. The table is populated
// during Prepare but the render path currently pushes one shared material for
// every object instead of consulting it per draw; SetShaderMaterial is kept
// for callers that want per-object materials.
type Material struct {
	Tag             string
	AmbientColor    mgl32.Vec3
	AmbientStrength float32
	DiffuseColor    mgl32.Vec3
	SpecularColor   mgl32.Vec3
	Shininess       float32
}

// FindMaterial returns the first material registered under the tag.
func (m *Manager) FindMaterial(tag string) (Material, bool) {
	for _, mat := range m.materials {
		if mat.Tag == tag {
			return mat, true
		}
	}
	return Material{}, false
}

// SetShaderMaterial resolves the tag and pushes the material's parameters
// under the material uniform path. Returns false when the tag is not
// registered.
func (m *Manager) SetShaderMaterial(tag string) bool {
	mat, ok := m.FindMaterial(tag)
	if !ok {
		return false
	}
	m.program.SetVec3("material.ambientColor", mat.AmbientColor.Mul(mat.AmbientStrength))
	m.program.SetVec3("material.diffuseColor", mat.DiffuseColor)
	m.program.SetVec3("material.specularColor", mat.SpecularColor)
	m.program.SetFloat("material.shininess", mat.Shininess)
	return true
}

// defineObjectMaterials fills the material table with the surface kinds the
// scene is built from.
func (m *Manager) defineObjectMaterials() {
	m.materials = []Material{
		{
			Tag:             "wood",
			AmbientColor:    mgl32.Vec3{0.4, 0.3, 0.1},
			AmbientStrength: 0.2,
			DiffuseColor:    mgl32.Vec3{0.6, 0.4, 0.2},
			SpecularColor:   mgl32.Vec3{0.1, 0.1, 0.1},
			Shininess:       4,
		},
		{
			Tag:             "grass",
			AmbientColor:    mgl32.Vec3{0.2, 0.3, 0.1},
			AmbientStrength: 0.3,
			DiffuseColor:    mgl32.Vec3{0.3, 0.5, 0.2},
			SpecularColor:   mgl32.Vec3{0.1, 0.1, 0.1},
			Shininess:       2,
		},
		{
			Tag:             "water",
			AmbientColor:    mgl32.Vec3{0.1, 0.2, 0.3},
			AmbientStrength: 0.3,
			DiffuseColor:    mgl32.Vec3{0.2, 0.4, 0.6},
			SpecularColor:   mgl32.Vec3{0.8, 0.8, 0.8},
			Shininess:       64,
		},
	}
}
