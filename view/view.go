// Package view owns the camera and projection state and turns per-frame
// keyboard polling and mouse deltas into camera movement. All state that the
// input callbacks touch lives on the Manager; nothing is process-global.
package view

import (
	glfw "github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/sunscape/sunscape/camera"
	"github.com/sunscape/sunscape/graphics"
)

const (
	nearPlane = 0.1
	farPlane  = 100.0
	orthoSize = 10.0
)

// Input is the slice of the window backend the view manager consumes: the
// wall clock, per-frame key state and the close request.
type Input interface {
	Time() float64
	KeyDown(key glfw.Key) bool
	RequestClose()
}

// Manager is the camera/view state machine. It owns the camera, the mouse
// reference point, the projection mode and the frame timing, and pushes the
// view, projection and camera-position uniforms every frame.
type Manager struct {
	program graphics.UniformSetter
	input   Input
	camera  *camera.Camera

	width  int
	height int

	lastX      float32
	lastY      float32
	firstMouse bool

	lastFrame float64
	deltaTime float32

	orthographic bool
}

// New returns a view manager with the camera at its fixed start position and
// the mouse reference point at the window center.
func New(program graphics.UniformSetter, input Input, width, height int) *Manager {
	return &Manager{
		program:    program,
		input:      input,
		camera:     camera.New(mgl32.Vec3{0, 5, 12}),
		width:      width,
		height:     height,
		lastX:      float32(width) / 2,
		lastY:      float32(height) / 2,
		firstMouse: true,
	}
}

// Camera exposes the owned camera.
func (m *Manager) Camera() *camera.Camera {
	return m.camera
}

// CursorMoved handles a cursor position event. The first event after
// activation only establishes the reference point so the view does not jump;
// later events feed the delta into the yaw/pitch update, with the vertical
// delta inverted since screen Y grows downward.
func (m *Manager) CursorMoved(x, y float64) {
	if m.firstMouse {
		m.lastX = float32(x)
		m.lastY = float32(y)
		m.firstMouse = false
	}

	xOffset := float32(x) - m.lastX
	yOffset := m.lastY - float32(y)

	m.lastX = float32(x)
	m.lastY = float32(y)

	m.camera.ProcessMouseMovement(xOffset, yOffset)
}

// Scrolled handles a scroll event by adjusting the camera zoom.
func (m *Manager) Scrolled(dx, dy float64) {
	m.camera.ProcessMouseScroll(float32(dy))
}

// processKeyboard applies the polled key state: WASD/QE movement scaled by
// frame time, Escape to request close, P and O to switch projection modes.
func (m *Manager) processKeyboard() {
	if m.input.KeyDown(glfw.KeyEscape) {
		m.input.RequestClose()
	}

	if m.input.KeyDown(glfw.KeyW) {
		m.camera.ProcessKeyboard(camera.Forward, m.deltaTime)
	}
	if m.input.KeyDown(glfw.KeyS) {
		m.camera.ProcessKeyboard(camera.Backward, m.deltaTime)
	}
	if m.input.KeyDown(glfw.KeyA) {
		m.camera.ProcessKeyboard(camera.Left, m.deltaTime)
	}
	if m.input.KeyDown(glfw.KeyD) {
		m.camera.ProcessKeyboard(camera.Right, m.deltaTime)
	}
	if m.input.KeyDown(glfw.KeyQ) {
		m.camera.ProcessKeyboard(camera.Up, m.deltaTime)
	}
	if m.input.KeyDown(glfw.KeyE) {
		m.camera.ProcessKeyboard(camera.Down, m.deltaTime)
	}

	if m.input.KeyDown(glfw.KeyP) {
		m.orthographic = false
	}
	if m.input.KeyDown(glfw.KeyO) {
		m.orthographic = true
	}
}

// projectionMatrix derives the projection for the current mode: perspective
// with the camera zoom as field of view, or a fixed-extent orthographic
// volume.
func projectionMatrix(orthographic bool, zoomDeg, aspect float32) mgl32.Mat4 {
	if orthographic {
		return mgl32.Ortho(-orthoSize, orthoSize, -orthoSize, orthoSize, nearPlane, farPlane)
	}
	return mgl32.Perspective(mgl32.DegToRad(zoomDeg), aspect, nearPlane, farPlane)
}

// FrameUpdate advances the per-frame timing, applies the polled keyboard
// state, and pushes the view, projection and camera-position uniforms.
func (m *Manager) FrameUpdate() {
	now := m.input.Time()
	m.deltaTime = float32(now - m.lastFrame)
	m.lastFrame = now

	m.processKeyboard()

	aspect := float32(m.width) / float32(m.height)
	m.program.SetMat4("view", m.camera.ViewMatrix())
	m.program.SetMat4("projection", projectionMatrix(m.orthographic, m.camera.Zoom, aspect))
	m.program.SetVec3("viewPosition", m.camera.Position)
}
