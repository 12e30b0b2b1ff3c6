// Package scene owns the resources and per-draw shading state of the fixed
// outdoor scene: the texture registry, the light rig, the material table and
// the ordered draw sequence issued every frame.
package scene

import (
	"fmt"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/sunscape/sunscape/graphics"
)

// activeLights is how many of the four light slots the scene populates.
const activeLights = 3

// sceneTextures maps the texture files under the asset directory to their
// registry tags.
var sceneTextures = []struct {
	file string
	tag  string
}{
	{"bark.jpg", "bark"},
	{"grass.jpg", "grass"},
	{"water.jpg", "water"},
	{"leaves.jpg", "leaves"},
	{"sky.jpg", "sky"},
}

// Manager assembles and renders the scene. All state is mutated from the
// main thread only; the render loop calls Render once per frame after the
// view manager's update.
type Manager struct {
	program  graphics.UniformSetter
	meshes   graphics.MeshDrawer
	backend  graphics.Backend
	clock    graphics.Clock
	assetDir string

	Textures *TextureRegistry

	lightSources [MaxLightSources]LightSource
	materials    []Material
	layout       []sceneObject
}

func NewManager(program graphics.UniformSetter, meshes graphics.MeshDrawer, backend graphics.Backend, clock graphics.Clock, assetDir string) *Manager {
	return &Manager{
		program:  program,
		meshes:   meshes,
		backend:  backend,
		clock:    clock,
		assetDir: assetDir,
		Textures: NewTextureRegistry(backend),
		layout:   sceneLayout(),
	}
}

// Prepare loads the primitive meshes and scene textures and populates the
// material table and the warm three-sun light rig. A failed texture load
// leaves that tag unusable for the session but is not fatal; a failed mesh
// load is, since the scene cannot be drawn without its shapes.
func (m *Manager) Prepare() error {
	for _, shape := range []graphics.Shape{
		graphics.ShapePlane,
		graphics.ShapeCylinder,
		graphics.ShapeCone,
		graphics.ShapeSphere,
	} {
		if err := m.meshes.Load(shape); err != nil {
			return fmt.Errorf("failed to load %v mesh: %w", shape, err)
		}
	}

	for _, t := range sceneTextures {
		m.Textures.Load(filepath.Join(m.assetDir, t.file), t.tag)
	}

	m.defineObjectMaterials()

	warm := LightSource{
		AmbientColor:      mgl32.Vec3{0.3, 0.15, 0},
		DiffuseColor:      mgl32.Vec3{1, 0.6, 0},
		SpecularColor:     mgl32.Vec3{1, 0.6, 0},
		FocalStrength:     0.2,
		SpecularIntensity: 0.2,
	}

	light := warm
	light.Position = mgl32.Vec3{-10, 50, -20}
	m.SetLightSource(0, light)

	light = warm
	light.Position = mgl32.Vec3{-8, 8, -22}
	m.SetLightSource(1, light)

	light = warm
	light.Position = mgl32.Vec3{10, 9, -18}
	m.SetLightSource(2, light)

	return nil
}

// Render issues the full ordered draw sequence for one frame: frame state,
// lighting and shared material uniforms first, then per object a transform
// write, a texture-or-color write and a draw call.
func (m *Manager) Render() {
	m.backend.BeginFrame()
	m.program.Activate()

	m.program.SetVec3("viewPos", mgl32.Vec3{0, 0, 3})

	for i := 0; i < activeLights; i++ {
		prefix := fmt.Sprintf("lightSources[%d].", i)
		m.program.SetVec3(prefix+"position", m.lightSources[i].Position)
		m.program.SetVec3(prefix+"ambientColor", m.lightSources[i].AmbientColor)
		m.program.SetVec3(prefix+"diffuseColor", m.lightSources[i].DiffuseColor)
		m.program.SetVec3(prefix+"specularColor", m.lightSources[i].SpecularColor)
	}

	m.program.SetInt("bUseLighting", 1)

	// shared default material for every object in the scene
	m.program.SetVec3("material.ambientColor", mgl32.Vec3{0.2, 0.2, 0.2})
	m.program.SetVec3("material.diffuseColor", mgl32.Vec3{0.8, 0.8, 0.8})
	m.program.SetVec3("material.specularColor", mgl32.Vec3{1, 1, 1})
	m.program.SetFloat("material.shininess", 32)

	spinAngle := float32(m.clock.Time())

	for _, obj := range m.layout {
		var model mgl32.Mat4
		if obj.spin {
			model = spinTransform(obj.scale, spinAngle, obj.position)
		} else {
			model = ComposeTransform(obj.scale, obj.rotation.X(), obj.rotation.Y(), obj.rotation.Z(), obj.position)
		}
		m.program.SetMat4("model", model)

		if obj.texture != "" {
			m.SetShaderTexture(obj.texture)
			m.SetTextureUVScale(obj.uvScale.X(), obj.uvScale.Y())
		} else {
			m.SetShaderColor(obj.color.X(), obj.color.Y(), obj.color.Z(), obj.color.W())
		}

		m.meshes.Draw(obj.shape)
	}
}
