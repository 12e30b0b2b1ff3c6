package glfwcontext

import (
	"log"
	"runtime"

	glfw "github.com/go-gl/glfw/v3.3/glfw"

	options "github.com/sunscape/sunscape/options"
)

// CursorFunc receives absolute cursor positions in screen coordinates.
type CursorFunc func(x, y float64)

// ScrollFunc receives scroll wheel deltas.
type ScrollFunc func(dx, dy float64)

// Context wraps the GLFW window and dispatches cursor and scroll events to
// handlers registered as plain closures, so no opaque user-pointer lookups
// are involved.
type Context struct {
	window   *glfw.Window
	onCursor CursorFunc
	onScroll ScrollFunc
}

// New creates the display window with a 4.1 core profile context and the
// cursor captured for continuous mouse-look input.
func New(opts *options.Options) (*Context, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	win, err := glfw.CreateWindow(*opts.Width, *opts.Height, *opts.Title, nil, nil)
	if err != nil {
		return nil, err
	}
	win.MakeContextCurrent()

	// capture all mouse events for the camera
	win.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)

	c := &Context{window: win}
	win.SetCursorPosCallback(c.glfwCursorCallback)
	win.SetScrollCallback(c.glfwScrollCallback)

	return c, nil
}

// SetCursorHandler registers the closure called on every cursor movement.
func (c *Context) SetCursorHandler(f CursorFunc) {
	c.onCursor = f
}

// SetScrollHandler registers the closure called on every scroll event.
func (c *Context) SetScrollHandler(f ScrollFunc) {
	c.onScroll = f
}

func (c *Context) glfwCursorCallback(w *glfw.Window, x, y float64) {
	if c.onCursor != nil {
		c.onCursor(x, y)
	}
}

func (c *Context) glfwScrollCallback(w *glfw.Window, dx, dy float64) {
	if c.onScroll != nil {
		c.onScroll(dx, dy)
	}
}

// KeyDown reports whether the given key is currently pressed.
func (c *Context) KeyDown(key glfw.Key) bool {
	return c.window.GetKey(key) == glfw.Press
}

// RequestClose marks the window for closing; the render loop observes it
// through ShouldClose on the next frame.
func (c *Context) RequestClose() {
	c.window.SetShouldClose(true)
}

func (c *Context) ShouldClose() bool {
	return c.window.ShouldClose()
}

// EndFrame presents the rendered frame and pumps pending input events.
// Cursor and scroll handlers run during the PollEvents call, on the main
// thread, between frames.
func (c *Context) EndFrame() {
	c.window.SwapBuffers()
	glfw.PollEvents()
}

func (c *Context) GetFramebufferSize() (int, int) {
	return c.window.GetFramebufferSize()
}

func (c *Context) Time() float64 {
	return glfw.GetTime()
}

// MakeCurrent makes the context current for the calling goroutine.
func (c *Context) MakeCurrent() {
	c.window.MakeContextCurrent()
}

// Shutdown destroys the window.
func (c *Context) Shutdown() {
	c.window.Destroy()
}

// InitGraphics initializes the main graphics subsystem (GLFW). Must be called
// from the main thread.
func InitGraphics() error {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return err
	}
	log.Printf("GLFW Initialized")
	return nil
}

// TerminateGraphics shuts down the graphics subsystem. Must be called from
// the main thread.
func TerminateGraphics() {
	glfw.Terminate()
	log.Printf("GLFW Terminated")
}
