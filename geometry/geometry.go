// Package geometry builds the vertex data for the primitive shapes of
// the scene. Meshes are plain CPU-side slices; uploading them to the
// GPU is the render package's concern.
package geometry

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/der-antikeks/deskscene/math"
)

type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	UV       mgl32.Vec2
}

// Key collapses a vertex to a rounded string so duplicates produced
// by adjacent faces can be found and merged.
func (v Vertex) Key(precision int) string {
	return fmt.Sprintf("%v_%v_%v_%v_%v_%v_%v_%v",
		math.Round(float64(v.Position[0]), precision),
		math.Round(float64(v.Position[1]), precision),
		math.Round(float64(v.Position[2]), precision),

		math.Round(float64(v.Normal[0]), precision),
		math.Round(float64(v.Normal[1]), precision),
		math.Round(float64(v.Normal[2]), precision),

		math.Round(float64(v.UV[0]), precision),
		math.Round(float64(v.UV[1]), precision),
	)
}

type Face struct {
	A, B, C int
}

// Mesh is an indexed triangle list.
type Mesh struct {
	Vertices []Vertex
	Faces    []Face
}

func (m *Mesh) AddFace(a, b, c Vertex) {
	offset := len(m.Vertices)
	m.Vertices = append(m.Vertices, a, b, c)
	m.Faces = append(m.Faces, Face{offset, offset + 1, offset + 2})
}

// MergeVertices removes duplicate vertices and drops faces that
// degenerate in the process.
func (m *Mesh) MergeVertices() {
	// search and mark duplicate vertices
	lookup := map[string]int{}
	unique := []Vertex{}
	changed := map[int]int{}

	for i, v := range m.Vertices {
		key := v.Key(4)

		if j, found := lookup[key]; !found {
			// new vertex
			lookup[key] = i
			unique = append(unique, v)
			changed[i] = len(unique) - 1
		} else {
			// duplicate vertex
			changed[i] = changed[j]
		}
	}

	// change faces
	cleaned := []Face{}

	for _, f := range m.Faces {
		a, b, c := changed[f.A], changed[f.B], changed[f.C]
		if a == b || b == c || c == a {
			// degenerated face, remove
			continue
		}

		cleaned = append(cleaned, Face{a, b, c})
	}

	m.Vertices = unique
	m.Faces = cleaned
}

// Bounds returns the axis-aligned extents of the mesh.
func (m *Mesh) Bounds() (min, max mgl32.Vec3) {
	if len(m.Vertices) == 0 {
		return
	}
	min = m.Vertices[0].Position
	max = m.Vertices[0].Position
	for _, v := range m.Vertices[1:] {
		for i := 0; i < 3; i++ {
			if v.Position[i] < min[i] {
				min[i] = v.Position[i]
			}
			if v.Position[i] > max[i] {
				max[i] = v.Position[i]
			}
		}
	}
	return
}

// Interleave flattens the mesh into a position/normal/uv float array
// (stride 8) and a triangle index array, the layout the vertex
// buffers use.
func (m *Mesh) Interleave() (vertices []float32, indices []uint16) {
	vertices = make([]float32, 0, len(m.Vertices)*8)
	for _, v := range m.Vertices {
		vertices = append(vertices,
			v.Position[0], v.Position[1], v.Position[2],
			v.Normal[0], v.Normal[1], v.Normal[2],
			v.UV[0], v.UV[1])
	}

	indices = make([]uint16, 0, len(m.Faces)*3)
	for _, f := range m.Faces {
		indices = append(indices, uint16(f.A), uint16(f.B), uint16(f.C))
	}
	return vertices, indices
}
