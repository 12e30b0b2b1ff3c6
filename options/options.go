package options

// Options holds the run options for the viewer, populated from command-line
// flags in cmd/main.go.
type Options struct {
	Width    *int    // window width in pixels
	Height   *int    // window height in pixels
	Title    *string // window title
	AssetDir *string // directory the scene textures are loaded from
}
