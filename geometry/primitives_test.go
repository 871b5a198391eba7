package geometry

import (
	m "math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkMesh(t *testing.T, mesh *Mesh) {
	t.Helper()
	require.NotEmpty(t, mesh.Vertices)
	require.NotEmpty(t, mesh.Faces)

	for i, f := range mesh.Faces {
		for _, idx := range []int{f.A, f.B, f.C} {
			require.Less(t, idx, len(mesh.Vertices), "face %d", i)
		}
	}

	for i, v := range mesh.Vertices {
		assert.InDelta(t, 1.0, float64(v.Normal.Len()), 1e-4, "normal %d not unit length", i)
	}
}

func TestPlane(t *testing.T) {
	mesh := Plane()
	checkMesh(t, mesh)

	assert.Len(t, mesh.Vertices, 4, "shared corners merged")
	assert.Len(t, mesh.Faces, 2)

	for _, v := range mesh.Vertices {
		assert.Equal(t, mgl32.Vec3{0, 1, 0}, v.Normal)
		assert.Zero(t, v.Position[1])
	}

	min, max := mesh.Bounds()
	assert.Equal(t, mgl32.Vec3{-1, 0, -1}, min)
	assert.Equal(t, mgl32.Vec3{1, 0, 1}, max)
}

func TestBox(t *testing.T) {
	mesh := Box()
	checkMesh(t, mesh)

	// corners are shared within a face but not across faces, since
	// the normals differ
	assert.Len(t, mesh.Vertices, 24)
	assert.Len(t, mesh.Faces, 12)

	min, max := mesh.Bounds()
	assert.Equal(t, mgl32.Vec3{-0.5, -0.5, -0.5}, min)
	assert.Equal(t, mgl32.Vec3{0.5, 0.5, 0.5}, max)
}

func TestSphere(t *testing.T) {
	mesh := Sphere(12, 8)
	checkMesh(t, mesh)

	for i, v := range mesh.Vertices {
		assert.InDelta(t, 1.0, float64(v.Position.Len()), 1e-4, "vertex %d not on unit sphere", i)
		// outward normals
		assert.InDelta(t, 1.0, float64(v.Normal.Dot(v.Position)), 1e-4, "vertex %d", i)
	}

	// pole rows are fans, inner rows are quads
	assert.Len(t, mesh.Faces, 12*(2*8-2))
}

func TestCylinder(t *testing.T) {
	mesh := Cylinder(16)
	checkMesh(t, mesh)

	min, max := mesh.Bounds()
	assert.InDelta(t, -1, float64(min[0]), 1e-4)
	assert.InDelta(t, 0, float64(min[1]), 1e-4)
	assert.InDelta(t, 1, float64(max[0]), 1e-4)
	assert.InDelta(t, 1, float64(max[1]), 1e-4)

	// side normals of a straight cylinder are horizontal
	for _, v := range mesh.Vertices {
		if v.Normal[1] == 0 {
			radial := mgl32.Vec3{v.Position[0], 0, v.Position[2]}.Normalize()
			assert.InDelta(t, 1.0, float64(v.Normal.Dot(radial)), 1e-4)
		}
	}
}

func TestTaperedCylinder(t *testing.T) {
	mesh := TaperedCylinder(16)
	checkMesh(t, mesh)

	// the top ring is half the base radius
	for _, v := range mesh.Vertices {
		r := m.Hypot(float64(v.Position[0]), float64(v.Position[2]))
		if v.Position[1] == 1 {
			assert.LessOrEqual(t, r, 0.5+1e-4)
		} else {
			assert.LessOrEqual(t, r, 1.0+1e-4)
		}
	}
}

func TestCone(t *testing.T) {
	mesh := Cone(16)
	checkMesh(t, mesh)

	// exactly one apex
	var apexes int
	for _, v := range mesh.Vertices {
		if v.Position == (mgl32.Vec3{0, 1, 0}) {
			apexes++
		}
	}
	assert.GreaterOrEqual(t, apexes, 1)

	// no top cap: per segment one side face and one bottom face
	assert.Len(t, mesh.Faces, 16*2)
}

func TestTorus(t *testing.T) {
	mesh := Torus(12, 8)
	checkMesh(t, mesh)

	assert.Len(t, mesh.Faces, 12*8*2)

	for i, v := range mesh.Vertices {
		// distance from the ring spine is the tube radius
		ring := m.Hypot(float64(v.Position[0]), float64(v.Position[2]))
		d := m.Hypot(ring-0.75, float64(v.Position[1]))
		assert.InDelta(t, 0.25, d, 1e-4, "vertex %d", i)
	}
}

func TestPrism(t *testing.T) {
	mesh := Prism()
	checkMesh(t, mesh)

	assert.Len(t, mesh.Faces, 8)

	min, max := mesh.Bounds()
	assert.Equal(t, mgl32.Vec3{-0.5, 0, -0.5}, min)
	assert.Equal(t, mgl32.Vec3{0.5, 1, 0.5}, max)
}

func TestPyramid3(t *testing.T) {
	mesh := Pyramid3()
	checkMesh(t, mesh)

	assert.Len(t, mesh.Faces, 4)

	min, max := mesh.Bounds()
	assert.InDelta(t, 0, float64(min[1]), 1e-4)
	assert.InDelta(t, 1, float64(max[1]), 1e-4)
}
