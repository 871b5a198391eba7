package geometry

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddFace(t *testing.T) {
	mesh := &Mesh{}
	a := Vertex{Position: mgl32.Vec3{0, 0, 0}}
	b := Vertex{Position: mgl32.Vec3{1, 0, 0}}
	c := Vertex{Position: mgl32.Vec3{0, 1, 0}}

	mesh.AddFace(a, b, c)
	mesh.AddFace(b, c, a)

	assert.Len(t, mesh.Vertices, 6)
	assert.Equal(t, []Face{{0, 1, 2}, {3, 4, 5}}, mesh.Faces)
}

func TestMergeVertices(t *testing.T) {
	mesh := &Mesh{}
	n := mgl32.Vec3{0, 0, 1}
	a := Vertex{Position: mgl32.Vec3{0, 0, 0}, Normal: n}
	b := Vertex{Position: mgl32.Vec3{1, 0, 0}, Normal: n}
	c := Vertex{Position: mgl32.Vec3{0, 1, 0}, Normal: n}
	d := Vertex{Position: mgl32.Vec3{1, 1, 0}, Normal: n}

	// two triangles sharing the b-c edge
	mesh.AddFace(a, b, c)
	mesh.AddFace(b, d, c)
	require.Len(t, mesh.Vertices, 6)

	mesh.MergeVertices()
	assert.Len(t, mesh.Vertices, 4)
	assert.Len(t, mesh.Faces, 2)

	// every index still in range
	for _, f := range mesh.Faces {
		for _, i := range []int{f.A, f.B, f.C} {
			assert.Less(t, i, len(mesh.Vertices))
		}
	}
}

func TestMergeVerticesDropsDegenerateFaces(t *testing.T) {
	mesh := &Mesh{}
	a := Vertex{Position: mgl32.Vec3{0, 0, 0}}
	b := Vertex{Position: mgl32.Vec3{1, 0, 0}}

	// third corner coincides with the first
	mesh.AddFace(a, b, a)
	mesh.MergeVertices()

	assert.Empty(t, mesh.Faces)
}

func TestBounds(t *testing.T) {
	mesh := &Mesh{}
	mesh.AddFace(
		Vertex{Position: mgl32.Vec3{-2, 0, 1}},
		Vertex{Position: mgl32.Vec3{3, -1, 0}},
		Vertex{Position: mgl32.Vec3{0, 5, -4}},
	)

	min, max := mesh.Bounds()
	assert.Equal(t, mgl32.Vec3{-2, -1, -4}, min)
	assert.Equal(t, mgl32.Vec3{3, 5, 1}, max)
}

func TestInterleave(t *testing.T) {
	mesh := &Mesh{}
	mesh.AddFace(
		Vertex{Position: mgl32.Vec3{1, 2, 3}, Normal: mgl32.Vec3{0, 1, 0}, UV: mgl32.Vec2{0.5, 0.25}},
		Vertex{Position: mgl32.Vec3{4, 5, 6}},
		Vertex{Position: mgl32.Vec3{7, 8, 9}},
	)

	vertices, indices := mesh.Interleave()
	require.Len(t, vertices, 3*8)
	require.Len(t, indices, 3)

	assert.Equal(t, []float32{1, 2, 3, 0, 1, 0, 0.5, 0.25}, vertices[:8])
	assert.Equal(t, []uint16{0, 1, 2}, indices)
}
