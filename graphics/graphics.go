package graphics

import (
	"image"

	"github.com/go-gl/mathgl/mgl32"
)

// UniformSetter defines the interface for pushing named uniform values into
// the active shading stage. Every draw call must be preceded by a transform
// write and a texture-or-color write through this interface; the shading
// stage has no implicit defaults and will render stale state if skipped.
type UniformSetter interface {
	Activate()
	SetInt(name string, value int32)
	SetFloat(name string, value float32)
	SetVec2(name string, value mgl32.Vec2)
	SetVec3(name string, value mgl32.Vec3)
	SetVec4(name string, value mgl32.Vec4)
	SetMat4(name string, value mgl32.Mat4)
	SetSampler2D(name string, unit int32)
}

// Shape identifies one of the primitive mesh kinds the scene is built from.
type Shape int

const (
	ShapePlane Shape = iota
	ShapeCylinder
	ShapeCone
	ShapeSphere
)

func (s Shape) String() string {
	switch s {
	case ShapePlane:
		return "plane"
	case ShapeCylinder:
		return "cylinder"
	case ShapeCone:
		return "cone"
	case ShapeSphere:
		return "sphere"
	}
	return "unknown"
}

// MeshDrawer defines the interface for the primitive mesh library. Load is an
// idempotent allocation of the vertex/index buffers for a shape; Draw issues
// the shape's geometry against the currently bound shading state.
type MeshDrawer interface {
	Load(shape Shape) error
	Draw(shape Shape)
}

// Backend defines the frame and texture operations the scene manager needs
// from the rendering backend.
type Backend interface {
	// BeginFrame clears the color and depth buffers and enables depth
	// testing for the frame about to be rendered.
	BeginFrame()
	// UploadTexture uploads the image as a GPU texture with repeat wrapping,
	// linear filtering and generated mipmaps, returning the texture handle.
	UploadTexture(rgba *image.RGBA) uint32
	// BindTexture binds a texture handle to the given texture unit.
	BindTexture(unit int32, id uint32)
	// DeleteTextures frees the given GPU texture handles.
	DeleteTextures(ids []uint32)
}

// Clock provides the wall-clock time in seconds used for continuous
// animation and frame timing.
type Clock interface {
	Time() float64
}
