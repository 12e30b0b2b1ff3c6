package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// MaxLightSources is the number of light slots the shading stage exposes.
const MaxLightSources = 4

// LightSource holds the per-light Phong parameters pushed to the shading
// stage under the lightSources[i] uniform path.
type LightSource struct {
	Position          mgl32.Vec3
	AmbientColor      mgl32.Vec3
	DiffuseColor      mgl32.Vec3
	SpecularColor     mgl32.Vec3
	FocalStrength     float32
	SpecularIntensity float32
}

// SetLightSource stores the light in the given slot and immediately pushes
// its six fields as individually named uniforms. An index outside [0,4) is
// silently ignored.
func (m *Manager) SetLightSource(index int, light LightSource) {
	if index < 0 || index >= MaxLightSources {
		return
	}

	m.lightSources[index] = light

	prefix := fmt.Sprintf("lightSources[%d].", index)
	m.program.SetVec3(prefix+"position", light.Position)
	m.program.SetVec3(prefix+"ambientColor", light.AmbientColor)
	m.program.SetVec3(prefix+"diffuseColor", light.DiffuseColor)
	m.program.SetVec3(prefix+"specularColor", light.SpecularColor)
	m.program.SetFloat(prefix+"focalStrength", light.FocalStrength)
	m.program.SetFloat(prefix+"specularIntensity", light.SpecularIntensity)
}

// SetLightColor pushes a flat RGBA light color uniform.
func (m *Manager) SetLightColor(red, green, blue, alpha float32) {
	m.program.SetVec4("lightColor", mgl32.Vec4{red, green, blue, alpha})
}

// SetShaderColor disables texturing and pushes the flat RGBA color used for
// the next draw.
func (m *Manager) SetShaderColor(red, green, blue, alpha float32) {
	m.program.SetInt("bUseTexture", 0)
	m.program.SetVec4("objectColor", mgl32.Vec4{red, green, blue, alpha})
}

// SetShaderTexture enables texturing and resolves the tag to its registry
// slot, rebinding the texture to its unit and pushing the slot as the
// sampler uniform. An unresolved tag leaves texturing enabled with no
// sampler bound.
func (m *Manager) SetShaderTexture(tag string) {
	m.program.SetInt("bUseTexture", 1)
	slot, ok := m.Textures.FindSlot(tag)
	if !ok {
		return
	}
	m.backend.BindTexture(int32(slot), m.Textures.entries[slot].ID)
	m.program.SetSampler2D("objectTexture", int32(slot))
}

// SetTextureUVScale pushes the UV tiling factors consumed by the shading
// stage.
func (m *Manager) SetTextureUVScale(u, v float32) {
	m.program.SetVec2("UVscale", mgl32.Vec2{u, v})
}
