package meshes

import (
	"github.com/chewxy/math32"
)

// Interleaved vertex layout shared by every primitive: position (3),
// normal (3), UV (2).
const floatsPerVertex = 8

const (
	cylinderSegments = 36
	coneSegments     = 36
	sphereStacks     = 18
	sphereSectors    = 36
)

func appendVertex(verts []float32, px, py, pz, nx, ny, nz, u, v float32) []float32 {
	return append(verts, px, py, pz, nx, ny, nz, u, v)
}

// planeGeometry is a 2x2 quad in the XZ plane centered on the origin with the
// normal facing up.
func planeGeometry() ([]float32, []uint32) {
	verts := make([]float32, 0, 4*floatsPerVertex)
	verts = appendVertex(verts, -1, 0, 1, 0, 1, 0, 0, 0)
	verts = appendVertex(verts, 1, 0, 1, 0, 1, 0, 1, 0)
	verts = appendVertex(verts, 1, 0, -1, 0, 1, 0, 1, 1)
	verts = appendVertex(verts, -1, 0, -1, 0, 1, 0, 0, 1)
	indices := []uint32{0, 1, 2, 0, 2, 3}
	return verts, indices
}

// cylinderGeometry is a capped unit cylinder: radius 1, base at y=0, top at
// y=1.
func cylinderGeometry() ([]float32, []uint32) {
	var verts []float32
	var indices []uint32

	// side: two rings with outward normals, one extra segment column to
	// close the UV seam
	for i := 0; i <= cylinderSegments; i++ {
		theta := 2 * math32.Pi * float32(i) / float32(cylinderSegments)
		x, z := math32.Cos(theta), math32.Sin(theta)
		u := float32(i) / float32(cylinderSegments)
		verts = appendVertex(verts, x, 0, z, x, 0, z, u, 0)
		verts = appendVertex(verts, x, 1, z, x, 0, z, u, 1)
	}
	for i := 0; i < cylinderSegments; i++ {
		base := uint32(i * 2)
		indices = append(indices,
			base, base+1, base+2,
			base+2, base+1, base+3,
		)
	}

	// caps: center vertex plus a ring with axial normals
	bottomCenter := uint32(len(verts) / floatsPerVertex)
	verts = appendVertex(verts, 0, 0, 0, 0, -1, 0, 0.5, 0.5)
	topCenter := uint32(len(verts) / floatsPerVertex)
	verts = appendVertex(verts, 0, 1, 0, 0, 1, 0, 0.5, 0.5)

	capStart := uint32(len(verts) / floatsPerVertex)
	for i := 0; i <= cylinderSegments; i++ {
		theta := 2 * math32.Pi * float32(i) / float32(cylinderSegments)
		x, z := math32.Cos(theta), math32.Sin(theta)
		u, v := 0.5+x/2, 0.5+z/2
		verts = appendVertex(verts, x, 0, z, 0, -1, 0, u, v)
		verts = appendVertex(verts, x, 1, z, 0, 1, 0, u, v)
	}
	for i := 0; i < cylinderSegments; i++ {
		ring := capStart + uint32(i*2)
		indices = append(indices,
			bottomCenter, ring+2, ring,
			topCenter, ring+1, ring+3,
		)
	}

	return verts, indices
}

// coneGeometry is a unit cone: base radius 1 at y=0, apex at y=1, base cap
// included. The apex is duplicated per segment so side normals stay smooth
// around the rim.
func coneGeometry() ([]float32, []uint32) {
	var verts []float32
	var indices []uint32

	// for radius == height the slant normal is (cos, 1, sin)/sqrt(2)
	invSqrt2 := float32(1) / math32.Sqrt(2)

	for i := 0; i <= coneSegments; i++ {
		theta := 2 * math32.Pi * float32(i) / float32(coneSegments)
		x, z := math32.Cos(theta), math32.Sin(theta)
		u := float32(i) / float32(coneSegments)
		nx, ny, nz := x*invSqrt2, invSqrt2, z*invSqrt2
		verts = appendVertex(verts, x, 0, z, nx, ny, nz, u, 0)
		verts = appendVertex(verts, 0, 1, 0, nx, ny, nz, u, 1)
	}
	for i := 0; i < coneSegments; i++ {
		base := uint32(i * 2)
		indices = append(indices, base, base+1, base+2)
	}

	baseCenter := uint32(len(verts) / floatsPerVertex)
	verts = appendVertex(verts, 0, 0, 0, 0, -1, 0, 0.5, 0.5)
	capStart := uint32(len(verts) / floatsPerVertex)
	for i := 0; i <= coneSegments; i++ {
		theta := 2 * math32.Pi * float32(i) / float32(coneSegments)
		x, z := math32.Cos(theta), math32.Sin(theta)
		verts = appendVertex(verts, x, 0, z, 0, -1, 0, 0.5+x/2, 0.5+z/2)
	}
	for i := 0; i < coneSegments; i++ {
		indices = append(indices, baseCenter, capStart+uint32(i)+1, capStart+uint32(i))
	}

	return verts, indices
}

// sphereGeometry is a unit sphere centered on the origin, built as a
// latitude/longitude grid. Normals equal positions on a unit sphere.
func sphereGeometry() ([]float32, []uint32) {
	var verts []float32
	var indices []uint32

	for stack := 0; stack <= sphereStacks; stack++ {
		phi := math32.Pi/2 - math32.Pi*float32(stack)/float32(sphereStacks)
		y := math32.Sin(phi)
		r := math32.Cos(phi)
		for sector := 0; sector <= sphereSectors; sector++ {
			theta := 2 * math32.Pi * float32(sector) / float32(sphereSectors)
			x, z := r*math32.Cos(theta), r*math32.Sin(theta)
			u := float32(sector) / float32(sphereSectors)
			v := 1 - float32(stack)/float32(sphereStacks)
			verts = appendVertex(verts, x, y, z, x, y, z, u, v)
		}
	}

	rowLen := uint32(sphereSectors + 1)
	for stack := 0; stack < sphereStacks; stack++ {
		for sector := 0; sector < sphereSectors; sector++ {
			a := uint32(stack)*rowLen + uint32(sector)
			b := a + rowLen
			if stack != 0 {
				indices = append(indices, a, b, a+1)
			}
			if stack != sphereStacks-1 {
				indices = append(indices, a+1, b, b+1)
			}
		}
	}

	return verts, indices
}
