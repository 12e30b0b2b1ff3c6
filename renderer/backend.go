package renderer

import (
	"fmt"
	"image"
	"log"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Backend is the OpenGL implementation of graphics.Backend. It owns the
// process-wide GL state the scene manager relies on: blending for the
// transparent passes and the per-frame depth/clear handling.
type Backend struct{}

// NewBackend initializes the OpenGL function pointers and the fixed pipeline
// state. Must be called on the main thread with a current GL context.
func NewBackend() (*Backend, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	log.Printf("OpenGL version %s", gl.GoStr(gl.GetString(gl.VERSION)))

	// transparent rendering support
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	return &Backend{}, nil
}

// BeginFrame enables depth testing with a less-than-or-equal pass test and
// clears the color and depth buffers.
func (b *Backend) BeginFrame() {
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// UploadTexture uploads the image as a 2D texture with repeat wrapping and
// linear filtering, generates its mipmaps, and returns the texture handle.
func (b *Backend) UploadTexture(rgba *image.RGBA) uint32 {
	width := int32(rgba.Rect.Size().X)
	height := int32(rgba.Rect.Size().Y)

	var textureID uint32
	gl.GenTextures(1, &textureID)
	gl.BindTexture(gl.TEXTURE_2D, textureID)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGBA8,
		width,
		height,
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		gl.Ptr(rgba.Pix),
	)
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.BindTexture(gl.TEXTURE_2D, 0)

	return textureID
}

// BindTexture binds a texture handle to the given texture unit.
func (b *Backend) BindTexture(unit int32, id uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	gl.BindTexture(gl.TEXTURE_2D, id)
}

// DeleteTextures frees the given GPU texture handles.
func (b *Backend) DeleteTextures(ids []uint32) {
	for _, id := range ids {
		gl.DeleteTextures(1, &id)
	}
}
