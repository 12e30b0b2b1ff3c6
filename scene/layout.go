package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/sunscape/sunscape/graphics"
)

// sceneObject describes one draw step: which primitive to issue and the
// transform, surface and tiling state to push immediately before it. Objects
// with a texture tag push the tag and UV scale; the rest push a flat color.
// Spinning objects rotate continuously about Y by wall-clock time instead of
// using the fixed Euler angles.
type sceneObject struct {
	shape    graphics.Shape
	scale    mgl32.Vec3
	rotation mgl32.Vec3 // Euler angles in degrees about X, Y, Z
	position mgl32.Vec3
	texture  string
	color    mgl32.Vec4
	uvScale  mgl32.Vec2
	spin     bool
}

// treePositions and moreTreePositions are the two hand-placed groves. Each
// position gets a bark trunk and a leaves canopy offset upward.
var treePositions = []mgl32.Vec3{
	{10, -1, 5},
	{15, -1, 8},
	{18, -1, 3},
	{-10, -1, 5},
	{-15, -1, 8},
	{-18, -1, 3},
	{10, -1, -5},
	{15, -1, -8},
	{18, -1, -3},
	{-10, -1, -5},
	{-15, -1, -8},
	{-18, -1, -3},
}

var moreTreePositions = []mgl32.Vec3{
	{-3, -1, 2},
	{3, -1, -2},
	{-7, -1, 3},
	{7, -1, -3},
	{-2, -1, -4},
	{2, -1, 4},
	{-6, -1, -3},
	{6, -1, 3},
	{15, -1, 10},
	{-15, -1, -10},
	{20, -1, 12},
	{-20, -1, -12},
}

func treeObjects(positions []mgl32.Vec3) []sceneObject {
	objs := make([]sceneObject, 0, len(positions)*2)
	for _, pos := range positions {
		objs = append(objs,
			sceneObject{
				shape:    graphics.ShapeCylinder,
				scale:    mgl32.Vec3{0.5, 3, 0.5},
				position: pos,
				texture:  "bark",
				uvScale:  mgl32.Vec2{1, 1},
				spin:     true,
			},
			sceneObject{
				shape:    graphics.ShapeCone,
				scale:    mgl32.Vec3{2, 3, 2},
				position: pos.Add(mgl32.Vec3{0, 1.5, 0}),
				texture:  "leaves",
				uvScale:  mgl32.Vec2{1, 1},
				spin:     true,
			},
		)
	}
	return objs
}

// sceneLayout enumerates the full ordered draw sequence of the static scene:
// ground, water, three suns, three mountains, two groves of trees, sky
// backdrop.
func sceneLayout() []sceneObject {
	objs := []sceneObject{
		// grass floor plane
		{
			shape:    graphics.ShapePlane,
			scale:    mgl32.Vec3{25, 5, 36},
			position: mgl32.Vec3{0, -1, 0},
			texture:  "grass",
			uvScale:  mgl32.Vec2{1, 1},
		},
		// water plane, aligned with the grass plane
		{
			shape:    graphics.ShapePlane,
			scale:    mgl32.Vec3{25, 1, 2},
			position: mgl32.Vec3{0, -0.5, 0},
			texture:  "water",
			uvScale:  mgl32.Vec2{1, 1},
		},
		// three orange suns, decreasing scale
		{
			shape:    graphics.ShapeSphere,
			scale:    mgl32.Vec3{2, 2, 2},
			position: mgl32.Vec3{-10, 10, -20},
			color:    mgl32.Vec4{1, 0.5, 0, 1},
		},
		{
			shape:    graphics.ShapeSphere,
			scale:    mgl32.Vec3{1.5, 1.5, 1.5},
			position: mgl32.Vec3{-8, 8, -22},
			color:    mgl32.Vec4{1, 0.5, 0, 1},
		},
		{
			shape:    graphics.ShapeSphere,
			scale:    mgl32.Vec3{1, 1, 1},
			position: mgl32.Vec3{10, 9, -18},
			color:    mgl32.Vec4{1, 0.5, 0, 1},
		},
		// three mountains in varying shades of brown
		{
			shape:    graphics.ShapeCone,
			scale:    mgl32.Vec3{10, 5, 10},
			position: mgl32.Vec3{-10, 0, -20},
			color:    mgl32.Vec4{0.5, 0.35, 0.05, 1},
		},
		{
			shape:    graphics.ShapeCone,
			scale:    mgl32.Vec3{8, 4, 8},
			position: mgl32.Vec3{10, 0, -15},
			color:    mgl32.Vec4{0.55, 0.4, 0.1, 1},
		},
		{
			shape:    graphics.ShapeCone,
			scale:    mgl32.Vec3{12, 6, 12},
			position: mgl32.Vec3{0, 0, -25},
			color:    mgl32.Vec4{0.6, 0.45, 0.15, 1},
		},
	}

	objs = append(objs, treeObjects(treePositions)...)
	objs = append(objs, treeObjects(moreTreePositions)...)

	// sky plane rotated to stand behind the scene as a backdrop
	objs = append(objs, sceneObject{
		shape:    graphics.ShapePlane,
		scale:    mgl32.Vec3{25, 5, 10},
		rotation: mgl32.Vec3{90, 0, 0},
		position: mgl32.Vec3{0, 9, -36},
		texture:  "sky",
		uvScale:  mgl32.Vec2{1, 1},
	})

	return objs
}
