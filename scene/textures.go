package scene

import (
	"image"
	"log"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"

	"github.com/sunscape/sunscape/graphics"
)

// MaxTextures is the registry capacity; loads beyond it fail with a
// diagnostic instead of overflowing.
const MaxTextures = 128

// TextureEntry associates a GPU texture handle with its caller-chosen tag.
// The registry slot index doubles as the texture unit the entry is bound to.
type TextureEntry struct {
	ID  uint32
	Tag string
}

// TextureRegistry loads image files into GPU textures and tracks the
// tag-to-slot mapping. It takes ownership of every texture it uploads and is
// solely responsible for releasing them.
type TextureRegistry struct {
	backend graphics.Backend
	entries []TextureEntry
}

func NewTextureRegistry(backend graphics.Backend) *TextureRegistry {
	return &TextureRegistry{backend: backend}
}

// Load decodes the image file, flips it vertically to match the shading
// stage's UV convention, uploads it as a 2D texture and registers it under
// the tag. Returns false with no state change when the file cannot be
// decoded, its channel count is not 3 (RGB) or 4 (RGBA), or the registry is
// full.
func (r *TextureRegistry) Load(path, tag string) bool {
	if len(r.entries) >= MaxTextures {
		log.Printf("Texture registry full (%d), cannot load %s", MaxTextures, path)
		return false
	}

	img, err := imgio.Open(path)
	if err != nil {
		log.Printf("Could not load image %s: %v", path, err)
		return false
	}

	channels := channelCount(img)
	if channels != 3 && channels != 4 {
		log.Printf("Not implemented to handle image %s with %d channels", path, channels)
		return false
	}

	bounds := img.Bounds()
	rgba := transform.FlipV(img)
	id := r.backend.UploadTexture(rgba)

	r.entries = append(r.entries, TextureEntry{ID: id, Tag: tag})
	log.Printf("Successfully loaded image %s, width: %d, height: %d, channels: %d, tag: %q",
		path, bounds.Dx(), bounds.Dy(), channels, tag)
	return true
}

// channelCount maps the decoded image's pixel layout to the channel count the
// registry accepts. Grayscale and alpha-only images have one channel, YCbCr
// (baseline JPEG) and paletted images decode to three, everything carrying
// alpha to four.
func channelCount(img image.Image) int {
	switch img.(type) {
	case *image.Gray, *image.Gray16, *image.Alpha, *image.Alpha16:
		return 1
	case *image.YCbCr, *image.Paletted:
		return 3
	default:
		return 4
	}
}

// FindID returns the texture handle of the first entry registered under the
// tag.
func (r *TextureRegistry) FindID(tag string) (uint32, bool) {
	for _, entry := range r.entries {
		if entry.Tag == tag {
			return entry.ID, true
		}
	}
	return 0, false
}

// FindSlot returns the registration-order slot of the first entry registered
// under the tag.
func (r *TextureRegistry) FindSlot(tag string) (int, bool) {
	for i, entry := range r.entries {
		if entry.Tag == tag {
			return i, true
		}
	}
	return -1, false
}

// Count returns the number of registered textures.
func (r *TextureRegistry) Count() int {
	return len(r.entries)
}

// BindAll binds every registered texture to the texture unit matching its
// registration slot. Staying under the backend's unit ceiling is the
// caller's responsibility.
func (r *TextureRegistry) BindAll() {
	for i, entry := range r.entries {
		r.backend.BindTexture(int32(i), entry.ID)
	}
}

// ReleaseAll frees every registered GPU texture. The tag table is
// deliberately left in place; the registry is not reusable afterwards.
func (r *TextureRegistry) ReleaseAll() {
	ids := make([]uint32, len(r.entries))
	for i, entry := range r.entries {
		ids[i] = entry.ID
	}
	r.backend.DeleteTextures(ids)
}
