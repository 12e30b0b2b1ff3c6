package meshes

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/sunscape/sunscape/graphics"
)

type meshBuffers struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
}

// Library generates and owns the GPU buffers of the primitive shapes. Only
// one instance of a particular mesh is kept in memory no matter how many
// times it is drawn per frame.
type Library struct {
	loaded map[graphics.Shape]*meshBuffers
}

func NewLibrary() *Library {
	return &Library{loaded: make(map[graphics.Shape]*meshBuffers)}
}

// Load allocates the vertex and index buffers for a shape. Loading an
// already-loaded shape is a no-op.
func (l *Library) Load(shape graphics.Shape) error {
	if _, ok := l.loaded[shape]; ok {
		return nil
	}

	var verts []float32
	var indices []uint32
	switch shape {
	case graphics.ShapePlane:
		verts, indices = planeGeometry()
	case graphics.ShapeCylinder:
		verts, indices = cylinderGeometry()
	case graphics.ShapeCone:
		verts, indices = coneGeometry()
	case graphics.ShapeSphere:
		verts, indices = sphereGeometry()
	default:
		return fmt.Errorf("unknown shape %v", shape)
	}

	m := &meshBuffers{indexCount: int32(len(indices))}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STATIC_DRAW)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	stride := int32(floatsPerVertex * 4)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, gl.PtrOffset(3*4))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, stride, gl.PtrOffset(6*4))
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)

	l.loaded[shape] = m
	return nil
}

// Draw issues the geometry of a shape against the currently bound shading
// state. Drawing a shape that was never loaded is a no-op.
func (l *Library) Draw(shape graphics.Shape) {
	m, ok := l.loaded[shape]
	if !ok {
		return
	}
	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, gl.PtrOffset(0))
	gl.BindVertexArray(0)
}

// Release frees every GPU buffer the library allocated.
func (l *Library) Release() {
	for shape, m := range l.loaded {
		gl.DeleteBuffers(1, &m.vbo)
		gl.DeleteBuffers(1, &m.ebo)
		gl.DeleteVertexArrays(1, &m.vao)
		delete(l.loaded, shape)
	}
}
