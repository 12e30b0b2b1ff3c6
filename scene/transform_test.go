package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestComposeTransformIdentity(t *testing.T) {
	got := ComposeTransform(mgl32.Vec3{1, 1, 1}, 0, 0, 0, mgl32.Vec3{0, 0, 0})
	assertMat4Equal(t, mgl32.Ident4(), got)
}

func TestComposeTransformPureYRotation(t *testing.T) {
	for _, deg := range []float32{0, 30, 90, 180, 270, -45} {
		got := ComposeTransform(mgl32.Vec3{1, 1, 1}, 0, deg, 0, mgl32.Vec3{0, 0, 0})
		assertMat4Equal(t, mgl32.HomogRotate3DY(mgl32.DegToRad(deg)), got)
	}
}

func TestComposeTransformOrder(t *testing.T) {
	// scale applies before translation: a unit X point under scale 2 and
	// translation (5,0,0) lands at x=7, not x=12
	m := ComposeTransform(mgl32.Vec3{2, 2, 2}, 0, 0, 0, mgl32.Vec3{5, 0, 0})
	p := m.Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	assert.InDelta(t, 7.0, p.X(), 1e-5)

	// rotation applies after scale but before translation
	m = ComposeTransform(mgl32.Vec3{1, 1, 1}, 0, 90, 0, mgl32.Vec3{0, 0, 10})
	p = m.Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	assert.InDelta(t, 0.0, p.X(), 1e-5)
	assert.InDelta(t, 9.0, p.Z(), 1e-5)
}

func TestComposeTransformEulerOrder(t *testing.T) {
	// X, then Y, then Z, composed as translate*rotX*rotY*rotZ*scale
	got := ComposeTransform(mgl32.Vec3{1, 1, 1}, 30, 45, 60, mgl32.Vec3{1, 2, 3})
	want := mgl32.Translate3D(1, 2, 3).
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(30))).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(45))).
		Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(60)))
	assertMat4Equal(t, want, got)
}

func TestSpinTransform(t *testing.T) {
	got := spinTransform(mgl32.Vec3{0.5, 3, 0.5}, 1.5, mgl32.Vec3{10, -1, 5})
	want := mgl32.Translate3D(10, -1, 5).
		Mul4(mgl32.HomogRotate3DY(1.5)).
		Mul4(mgl32.Scale3D(0.5, 3, 0.5))
	assertMat4Equal(t, want, got)
}

func TestSetTransformationsPushesModel(t *testing.T) {
	m, setter, _, _, _ := newTestManager(t.TempDir())

	m.SetTransformations(mgl32.Vec3{2, 2, 2}, 0, 0, 0, mgl32.Vec3{1, 0, 0})

	v, ok := setter.last("model")
	assert.True(t, ok)
	assertMat4Equal(t, ComposeTransform(mgl32.Vec3{2, 2, 2}, 0, 0, 0, mgl32.Vec3{1, 0, 0}), v.(mgl32.Mat4))
}
