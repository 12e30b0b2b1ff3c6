package view

import (
	"testing"

	glfw "github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

type uniformWrite struct {
	name  string
	value any
}

type fakeSetter struct {
	writes []uniformWrite
}

func (s *fakeSetter) record(name string, value any) {
	s.writes = append(s.writes, uniformWrite{name: name, value: value})
}

func (s *fakeSetter) Activate()                             {}
func (s *fakeSetter) SetInt(name string, value int32)       { s.record(name, value) }
func (s *fakeSetter) SetFloat(name string, value float32)   { s.record(name, value) }
func (s *fakeSetter) SetVec2(name string, value mgl32.Vec2) { s.record(name, value) }
func (s *fakeSetter) SetVec3(name string, value mgl32.Vec3) { s.record(name, value) }
func (s *fakeSetter) SetVec4(name string, value mgl32.Vec4) { s.record(name, value) }
func (s *fakeSetter) SetMat4(name string, value mgl32.Mat4) { s.record(name, value) }
func (s *fakeSetter) SetSampler2D(name string, unit int32)  { s.record(name, unit) }

func (s *fakeSetter) last(name string) (any, bool) {
	for i := len(s.writes) - 1; i >= 0; i-- {
		if s.writes[i].name == name {
			return s.writes[i].value, true
		}
	}
	return nil, false
}

type fakeInput struct {
	now    float64
	keys   map[glfw.Key]bool
	closed bool
}

func (f *fakeInput) Time() float64           { return f.now }
func (f *fakeInput) KeyDown(k glfw.Key) bool { return f.keys[k] }
func (f *fakeInput) RequestClose()           { f.closed = true }

func newTestManager() (*Manager, *fakeSetter, *fakeInput) {
	setter := &fakeSetter{}
	input := &fakeInput{keys: make(map[glfw.Key]bool)}
	m := New(setter, input, 1000, 800)
	return m, setter, input
}

func assertMat4Equal(t *testing.T, expected, actual mgl32.Mat4) {
	t.Helper()
	for i := range expected {
		assert.InDelta(t, expected[i], actual[i], 1e-5, "matrix element %d", i)
	}
}

func TestFrameUpdatePushesViewProjectionAndPosition(t *testing.T) {
	m, setter, input := newTestManager()
	input.now = 0.016

	m.FrameUpdate()

	view, ok := setter.last("view")
	assert.True(t, ok)
	assertMat4Equal(t, m.camera.ViewMatrix(), view.(mgl32.Mat4))

	projection, ok := setter.last("projection")
	assert.True(t, ok)
	want := mgl32.Perspective(mgl32.DegToRad(45), 1000.0/800.0, 0.1, 100)
	assertMat4Equal(t, want, projection.(mgl32.Mat4))

	position, ok := setter.last("viewPosition")
	assert.True(t, ok)
	assert.Equal(t, mgl32.Vec3{0, 5, 12}, position)
}

func TestProjectionUsesCameraZoom(t *testing.T) {
	m, setter, _ := newTestManager()
	m.camera.Zoom = 30

	m.FrameUpdate()

	projection, _ := setter.last("projection")
	want := mgl32.Perspective(mgl32.DegToRad(30), 1000.0/800.0, 0.1, 100)
	assertMat4Equal(t, want, projection.(mgl32.Mat4))
}

func TestOrthographicToggle(t *testing.T) {
	m, setter, input := newTestManager()

	input.keys[glfw.KeyO] = true
	m.FrameUpdate()

	projection, _ := setter.last("projection")
	want := mgl32.Ortho(-10, 10, -10, 10, 0.1, 100)
	assertMat4Equal(t, want, projection.(mgl32.Mat4))

	input.keys[glfw.KeyO] = false
	input.keys[glfw.KeyP] = true
	m.FrameUpdate()

	projection, _ = setter.last("projection")
	want = mgl32.Perspective(mgl32.DegToRad(45), 1000.0/800.0, 0.1, 100)
	assertMat4Equal(t, want, projection.(mgl32.Mat4))
}

func TestEscapeRequestsClose(t *testing.T) {
	m, _, input := newTestManager()

	input.keys[glfw.KeyEscape] = true
	m.FrameUpdate()

	assert.True(t, input.closed)
}

func TestKeyboardMovementIsFrameRateIndependent(t *testing.T) {
	m, _, input := newTestManager()

	input.keys[glfw.KeyW] = true
	input.now = 0.5
	m.FrameUpdate()

	// forward at speed 2.5 for 0.5s moves 1.25 down -Z
	assert.InDelta(t, 12-1.25, m.camera.Position.Z(), 1e-5)

	input.now = 0.6
	m.FrameUpdate()
	assert.InDelta(t, 12-1.25-0.25, m.camera.Position.Z(), 1e-5)
}

func TestFirstMouseEventEstablishesReference(t *testing.T) {
	m, _, _ := newTestManager()
	yaw, pitch := m.camera.Yaw, m.camera.Pitch

	m.CursorMoved(700, 300)

	// no jump on the first event
	assert.Equal(t, yaw, m.camera.Yaw)
	assert.Equal(t, pitch, m.camera.Pitch)

	m.CursorMoved(710, 300)
	assert.InDelta(t, yaw+10*0.1, m.camera.Yaw, 1e-5)
}

func TestVerticalMouseDeltaInverted(t *testing.T) {
	m, _, _ := newTestManager()
	m.CursorMoved(500, 400)

	// cursor moving down the screen pitches the view down
	m.CursorMoved(500, 410)
	assert.InDelta(t, -1, m.camera.Pitch, 1e-5)

	m.CursorMoved(500, 390)
	assert.InDelta(t, 1, m.camera.Pitch, 1e-5)
}

func TestScrollAdjustsZoom(t *testing.T) {
	m, _, _ := newTestManager()

	m.Scrolled(0, 5)
	assert.Equal(t, float32(40), m.camera.Zoom)

	m.Scrolled(0, -100)
	assert.Equal(t, float32(45), m.camera.Zoom)
}
