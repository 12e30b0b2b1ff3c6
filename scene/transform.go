package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// ComposeTransform builds a model matrix from scale, Euler rotation angles in
// degrees, and translation. The composition order is fixed:
// translate * rotateX * rotateY * rotateZ * scale.
func ComposeTransform(scale mgl32.Vec3, xRotDeg, yRotDeg, zRotDeg float32, position mgl32.Vec3) mgl32.Mat4 {
	return mgl32.Translate3D(position.X(), position.Y(), position.Z()).
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(xRotDeg))).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(yRotDeg))).
		Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(zRotDeg))).
		Mul4(mgl32.Scale3D(scale.X(), scale.Y(), scale.Z()))
}

// spinTransform builds a model matrix for the continuously rotating objects:
// translate * rotateY(angle) * scale, with the angle in radians straight from
// the wall clock.
func spinTransform(scale mgl32.Vec3, angleRad float32, position mgl32.Vec3) mgl32.Mat4 {
	return mgl32.Translate3D(position.X(), position.Y(), position.Z()).
		Mul4(mgl32.HomogRotate3DY(angleRad)).
		Mul4(mgl32.Scale3D(scale.X(), scale.Y(), scale.Z()))
}

// SetTransformations composes the model matrix from the passed transform
// values and pushes it as the model uniform for the next draw call.
func (m *Manager) SetTransformations(scale mgl32.Vec3, xRotDeg, yRotDeg, zRotDeg float32, position mgl32.Vec3) {
	m.program.SetMat4("model", ComposeTransform(scale, xRotDeg, yRotDeg, zRotDeg, position))
}
