package scene

import (
	"fmt"
	"image"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"github.com/sunscape/sunscape/graphics"
)

// opLog records uniform writes, texture operations and draw calls in issue
// order so tests can assert on the per-draw protocol.
type opLog struct {
	ops []string
}

func (l *opLog) add(format string, args ...any) {
	l.ops = append(l.ops, fmt.Sprintf(format, args...))
}

type uniformWrite struct {
	name  string
	value any
}

type fakeSetter struct {
	log       *opLog
	activated int
	writes    []uniformWrite
}

func newFakeSetter() *fakeSetter {
	return &fakeSetter{log: &opLog{}}
}

func (s *fakeSetter) record(name string, value any) {
	s.writes = append(s.writes, uniformWrite{name: name, value: value})
	s.log.add("uniform %s", name)
}

func (s *fakeSetter) Activate()                             { s.activated++ }
func (s *fakeSetter) SetInt(name string, value int32)       { s.record(name, value) }
func (s *fakeSetter) SetFloat(name string, value float32)   { s.record(name, value) }
func (s *fakeSetter) SetVec2(name string, value mgl32.Vec2) { s.record(name, value) }
func (s *fakeSetter) SetVec3(name string, value mgl32.Vec3) { s.record(name, value) }
func (s *fakeSetter) SetVec4(name string, value mgl32.Vec4) { s.record(name, value) }
func (s *fakeSetter) SetMat4(name string, value mgl32.Mat4) { s.record(name, value) }
func (s *fakeSetter) SetSampler2D(name string, unit int32)  { s.record(name, unit) }

// last returns the most recent write to the named uniform.
func (s *fakeSetter) last(name string) (any, bool) {
	for i := len(s.writes) - 1; i >= 0; i-- {
		if s.writes[i].name == name {
			return s.writes[i].value, true
		}
	}
	return nil, false
}

func (s *fakeSetter) count(name string) int {
	n := 0
	for _, w := range s.writes {
		if w.name == name {
			n++
		}
	}
	return n
}

type boundTexture struct {
	unit int32
	id   uint32
}

type fakeBackend struct {
	log     *opLog
	nextID  uint32
	frames  int
	bound   []boundTexture
	deleted []uint32
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{log: &opLog{}, nextID: 100}
}

func (b *fakeBackend) BeginFrame() { b.frames++ }

func (b *fakeBackend) UploadTexture(rgba *image.RGBA) uint32 {
	b.nextID++
	return b.nextID
}

func (b *fakeBackend) BindTexture(unit int32, id uint32) {
	b.bound = append(b.bound, boundTexture{unit: unit, id: id})
	b.log.add("bind %d", unit)
}

func (b *fakeBackend) DeleteTextures(ids []uint32) {
	b.deleted = append(b.deleted, ids...)
}

type fakeDrawer struct {
	log    *opLog
	loaded []graphics.Shape
	drawn  []graphics.Shape
	fail   bool
}

func (d *fakeDrawer) Load(shape graphics.Shape) error {
	if d.fail {
		return fmt.Errorf("no gl context")
	}
	d.loaded = append(d.loaded, shape)
	return nil
}

func (d *fakeDrawer) Draw(shape graphics.Shape) {
	d.drawn = append(d.drawn, shape)
	if d.log != nil {
		d.log.add("draw %v", shape)
	}
}

type fakeClock struct {
	now float64
}

func (c *fakeClock) Time() float64 { return c.now }

// newTestManager wires a manager to fakes that share one op log.
func newTestManager(assetDir string) (*Manager, *fakeSetter, *fakeDrawer, *fakeBackend, *fakeClock) {
	log := &opLog{}
	setter := newFakeSetter()
	setter.log = log
	backend := newFakeBackend()
	backend.log = log
	drawer := &fakeDrawer{log: log}
	clock := &fakeClock{}
	m := NewManager(setter, drawer, backend, clock, assetDir)
	return m, setter, drawer, backend, clock
}

func assertMat4Equal(t *testing.T, expected, actual mgl32.Mat4) {
	t.Helper()
	for i := range expected {
		assert.InDelta(t, expected[i], actual[i], 1e-5, "matrix element %d", i)
	}
}
