package render

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/der-antikeks/deskscene/geometry"
	"github.com/der-antikeks/deskscene/scene"
)

// MeshBuffers owns one VAO/VBO/EBO triple per shape, built lazily on
// Load. It satisfies scene.MeshLibrary.
type MeshBuffers struct {
	buffers map[scene.Shape]*meshbuffer
}

type meshbuffer struct {
	vao, vbo, ebo uint32
	indexCount    int32
}

func NewMeshBuffers() *MeshBuffers {
	return &MeshBuffers{
		buffers: make(map[scene.Shape]*meshbuffer),
	}
}

func buildMesh(shape scene.Shape) (*geometry.Mesh, error) {
	switch shape {
	case scene.ShapePlane:
		return geometry.Plane(), nil
	case scene.ShapeBox:
		return geometry.Box(), nil
	case scene.ShapeSphere:
		return geometry.Sphere(geometry.DefaultSegments, geometry.DefaultSphereRings), nil
	case scene.ShapeCylinder:
		return geometry.Cylinder(geometry.DefaultSegments), nil
	case scene.ShapeTaperedCylinder:
		return geometry.TaperedCylinder(geometry.DefaultSegments), nil
	case scene.ShapeCone:
		return geometry.Cone(geometry.DefaultSegments), nil
	case scene.ShapeTorus:
		return geometry.Torus(geometry.DefaultTorusSections, geometry.DefaultTorusTubeSides), nil
	case scene.ShapePrism:
		return geometry.Prism(), nil
	case scene.ShapePyramid3:
		return geometry.Pyramid3(), nil
	}
	return nil, fmt.Errorf("unknown shape %q", shape)
}

// Load tessellates the shape and uploads it. Loading an already
// loaded shape is a no-op.
func (b *MeshBuffers) Load(shape scene.Shape) error {
	if _, loaded := b.buffers[shape]; loaded {
		return nil
	}

	mesh, err := buildMesh(shape)
	if err != nil {
		return err
	}
	vertices, indices := mesh.Interleave()
	if len(indices) == 0 {
		return fmt.Errorf("shape %q produced no geometry", shape)
	}

	mb := &meshbuffer{indexCount: int32(len(indices))}

	gl.GenVertexArrays(1, &mb.vao)
	gl.BindVertexArray(mb.vao)

	gl.GenBuffers(1, &mb.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, mb.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	// position, normal, uv interleaved
	stride := int32(8 * 4)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, 6*4)
	gl.EnableVertexAttribArray(2)

	gl.GenBuffers(1, &mb.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, mb.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*2, gl.Ptr(indices), gl.STATIC_DRAW)

	gl.BindVertexArray(0)

	b.buffers[shape] = mb
	return nil
}

// Draw issues the indexed draw call for a previously loaded shape.
func (b *MeshBuffers) Draw(shape scene.Shape) error {
	mb, loaded := b.buffers[shape]
	if !loaded {
		return fmt.Errorf("draw of unloaded shape %q", shape)
	}

	gl.BindVertexArray(mb.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, mb.indexCount, gl.UNSIGNED_SHORT, 0)
	gl.BindVertexArray(0)
	return nil
}

// Destroy releases all GPU buffers.
func (b *MeshBuffers) Destroy() {
	for shape, mb := range b.buffers {
		gl.DeleteBuffers(1, &mb.vbo)
		gl.DeleteBuffers(1, &mb.ebo)
		gl.DeleteVertexArrays(1, &mb.vao)
		delete(b.buffers, shape)
	}
}
