package geometry

import (
	m "math"

	"github.com/go-gl/mathgl/mgl32"
)

// default tessellation of the curved primitives
const (
	DefaultSegments       = 36
	DefaultSphereRings    = 18
	DefaultTorusSections  = 24
	DefaultTorusTubeSides = 12
)

// flatFace appends one triangle whose normal is derived from the
// winding: counter-clockwise as seen from the outside.
func flatFace(mesh *Mesh, a, b, c mgl32.Vec3, uva, uvb, uvc mgl32.Vec2) {
	n := b.Sub(a).Cross(c.Sub(a)).Normalize()
	mesh.AddFace(
		Vertex{Position: a, Normal: n, UV: uva},
		Vertex{Position: b, Normal: n, UV: uvb},
		Vertex{Position: c, Normal: n, UV: uvc},
	)
}

// Plane is a 2x2 quad in the XZ plane, normal up.
func Plane() *Mesh {
	mesh := &Mesh{}

	a := mgl32.Vec3{-1, 0, -1}
	b := mgl32.Vec3{1, 0, -1}
	c := mgl32.Vec3{1, 0, 1}
	d := mgl32.Vec3{-1, 0, 1}

	flatFace(mesh, a, d, c, mgl32.Vec2{0, 1}, mgl32.Vec2{0, 0}, mgl32.Vec2{1, 0})
	flatFace(mesh, a, c, b, mgl32.Vec2{0, 1}, mgl32.Vec2{1, 0}, mgl32.Vec2{1, 1})

	mesh.MergeVertices()
	return mesh
}

// Box is a unit cube centered on the origin.
func Box() *Mesh {
	mesh := &Mesh{}

	halfSize := float32(0.5)

	a := mgl32.Vec3{halfSize, halfSize, halfSize}
	b := mgl32.Vec3{-halfSize, halfSize, halfSize}
	c := mgl32.Vec3{-halfSize, -halfSize, halfSize}
	d := mgl32.Vec3{halfSize, -halfSize, halfSize}
	e := mgl32.Vec3{halfSize, halfSize, -halfSize}
	f := mgl32.Vec3{halfSize, -halfSize, -halfSize}
	g := mgl32.Vec3{-halfSize, -halfSize, -halfSize}
	h := mgl32.Vec3{-halfSize, halfSize, -halfSize}

	tl := mgl32.Vec2{0, 1}
	tr := mgl32.Vec2{1, 1}
	bl := mgl32.Vec2{0, 0}
	br := mgl32.Vec2{1, 0}

	// front
	flatFace(mesh, a, b, c, tr, tl, bl)
	flatFace(mesh, c, d, a, bl, br, tr)
	// back
	flatFace(mesh, e, f, g, tl, bl, br)
	flatFace(mesh, g, h, e, br, tr, tl)
	// top
	flatFace(mesh, e, h, b, tr, tl, bl)
	flatFace(mesh, b, a, e, bl, br, tr)
	// bottom
	flatFace(mesh, f, d, c, br, tr, tl)
	flatFace(mesh, c, g, f, tl, bl, br)
	// left
	flatFace(mesh, b, h, g, tr, tl, bl)
	flatFace(mesh, g, c, b, bl, br, tr)
	// right
	flatFace(mesh, a, d, f, tl, bl, br)
	flatFace(mesh, f, e, a, br, tr, tl)

	mesh.MergeVertices()
	return mesh
}

// Sphere is a unit sphere built from latitude rings, poles closed
// with triangle fans.
func Sphere(widthSegments, heightSegments int) *Mesh {
	if widthSegments < 3 {
		widthSegments = 3
	}
	if heightSegments < 2 {
		heightSegments = 2
	}

	mesh := &Mesh{}

	var vertices [][]Vertex

	for y := 0; y <= heightSegments; y++ {
		var row []Vertex

		for x := 0; x <= widthSegments; x++ {
			u := float64(x) / float64(widthSegments)
			v := float64(y) / float64(heightSegments)

			position := mgl32.Vec3{
				float32(-m.Cos(u*2*m.Pi) * m.Sin(v*m.Pi)),
				float32(m.Cos(v * m.Pi)),
				float32(m.Sin(u*2*m.Pi) * m.Sin(v*m.Pi)),
			}

			row = append(row, Vertex{
				Position: position,
				Normal:   position.Normalize(),
				UV:       mgl32.Vec2{float32(u), float32(1.0 - v)},
			})
		}

		vertices = append(vertices, row)
	}

	for y := 0; y < heightSegments; y++ {
		for x := 0; x < widthSegments; x++ {
			v1 := vertices[y][x+1]
			v2 := vertices[y][x]
			v3 := vertices[y+1][x]
			v4 := vertices[y+1][x+1]

			switch {
			case y == 0:
				// north pole fan
				mesh.AddFace(v1, v3, v4)
			case y == heightSegments-1:
				// south pole fan
				mesh.AddFace(v1, v2, v3)
			default:
				mesh.AddFace(v1, v2, v4)
				mesh.AddFace(v2, v3, v4)
			}
		}
	}

	mesh.MergeVertices()
	return mesh
}

// Cylinder has base radius 1 at y=0 rising to y=1, both caps closed.
func Cylinder(segments int) *Mesh {
	return lathe(1.0, segments)
}

// TaperedCylinder narrows to half the base radius at the top.
func TaperedCylinder(segments int) *Mesh {
	return lathe(0.5, segments)
}

// Cone narrows to an apex.
func Cone(segments int) *Mesh {
	return lathe(0.0, segments)
}

// lathe revolves a base ring of radius 1 at y=0 towards a top ring of
// topRadius at y=1. topRadius 0 degenerates the top into an apex fan.
func lathe(topRadius float64, segments int) *Mesh {
	if segments < 3 {
		segments = 3
	}

	mesh := &Mesh{}

	slope := 1.0 - topRadius
	bottomCenter := mgl32.Vec3{0, 0, 0}
	topCenter := mgl32.Vec3{0, 1, 0}

	ring := func(i int) (theta float64, bottom, top, normal mgl32.Vec3) {
		theta = 2 * m.Pi * float64(i) / float64(segments)
		sin, cos := m.Sincos(theta)
		bottom = mgl32.Vec3{float32(cos), 0, float32(sin)}
		top = mgl32.Vec3{float32(topRadius * cos), 1, float32(topRadius * sin)}
		normal = mgl32.Vec3{float32(cos), float32(slope), float32(sin)}.Normalize()
		return
	}

	capUV := func(p mgl32.Vec3) mgl32.Vec2 {
		return mgl32.Vec2{0.5 + p[0]/2, 0.5 + p[2]/2}
	}

	for i := 0; i < segments; i++ {
		theta0, b0, t0, n0 := ring(i)
		theta1, b1, t1, n1 := ring(i + 1)

		u0 := float32(i) / float32(segments)
		u1 := float32(i+1) / float32(segments)

		// side
		if topRadius > 0 {
			mesh.AddFace(
				Vertex{Position: b0, Normal: n0, UV: mgl32.Vec2{u0, 0}},
				Vertex{Position: t0, Normal: n0, UV: mgl32.Vec2{u0, 1}},
				Vertex{Position: t1, Normal: n1, UV: mgl32.Vec2{u1, 1}},
			)
			mesh.AddFace(
				Vertex{Position: b0, Normal: n0, UV: mgl32.Vec2{u0, 0}},
				Vertex{Position: t1, Normal: n1, UV: mgl32.Vec2{u1, 1}},
				Vertex{Position: b1, Normal: n1, UV: mgl32.Vec2{u1, 0}},
			)
		} else {
			mid := (theta0 + theta1) / 2
			sin, cos := m.Sincos(mid)
			apexNormal := mgl32.Vec3{float32(cos), float32(slope), float32(sin)}.Normalize()
			mesh.AddFace(
				Vertex{Position: b0, Normal: n0, UV: mgl32.Vec2{u0, 0}},
				Vertex{Position: topCenter, Normal: apexNormal, UV: mgl32.Vec2{(u0 + u1) / 2, 1}},
				Vertex{Position: b1, Normal: n1, UV: mgl32.Vec2{u1, 0}},
			)
		}

		// bottom cap
		down := mgl32.Vec3{0, -1, 0}
		mesh.AddFace(
			Vertex{Position: bottomCenter, Normal: down, UV: mgl32.Vec2{0.5, 0.5}},
			Vertex{Position: b0, Normal: down, UV: capUV(b0)},
			Vertex{Position: b1, Normal: down, UV: capUV(b1)},
		)

		// top cap
		if topRadius > 0 {
			up := mgl32.Vec3{0, 1, 0}
			mesh.AddFace(
				Vertex{Position: topCenter, Normal: up, UV: mgl32.Vec2{0.5, 0.5}},
				Vertex{Position: t1, Normal: up, UV: capUV(t1)},
				Vertex{Position: t0, Normal: up, UV: capUV(t0)},
			)
		}
	}

	mesh.MergeVertices()
	return mesh
}

// Torus has major radius 0.75 and tube radius 0.25, so it fits the
// unit cube like the other primitives.
func Torus(sections, tubeSides int) *Mesh {
	if sections < 3 {
		sections = 3
	}
	if tubeSides < 3 {
		tubeSides = 3
	}

	const major, minor = 0.75, 0.25

	mesh := &Mesh{}

	point := func(i, j int) Vertex {
		u := 2 * m.Pi * float64(i) / float64(sections)
		v := 2 * m.Pi * float64(j) / float64(tubeSides)

		position := mgl32.Vec3{
			float32((major + minor*m.Cos(v)) * m.Cos(u)),
			float32(minor * m.Sin(v)),
			float32((major + minor*m.Cos(v)) * m.Sin(u)),
		}
		normal := mgl32.Vec3{
			float32(m.Cos(v) * m.Cos(u)),
			float32(m.Sin(v)),
			float32(m.Cos(v) * m.Sin(u)),
		}

		return Vertex{
			Position: position,
			Normal:   normal,
			UV: mgl32.Vec2{
				float32(i) / float32(sections),
				float32(j) / float32(tubeSides),
			},
		}
	}

	for i := 0; i < sections; i++ {
		for j := 0; j < tubeSides; j++ {
			a := point(i, j)
			b := point(i+1, j)
			c := point(i+1, j+1)
			d := point(i, j+1)

			mesh.AddFace(a, d, c)
			mesh.AddFace(a, c, b)
		}
	}

	mesh.MergeVertices()
	return mesh
}

// Prism is a triangular wedge: a unit-base triangle in XY extruded
// one unit along Z, sitting on y=0.
func Prism() *Mesh {
	mesh := &Mesh{}

	apexF := mgl32.Vec3{0, 1, 0.5}
	apexB := mgl32.Vec3{0, 1, -0.5}
	fl := mgl32.Vec3{-0.5, 0, 0.5}
	fr := mgl32.Vec3{0.5, 0, 0.5}
	bl := mgl32.Vec3{-0.5, 0, -0.5}
	br := mgl32.Vec3{0.5, 0, -0.5}

	// front and back triangles
	flatFace(mesh, fl, fr, apexF, mgl32.Vec2{0, 0}, mgl32.Vec2{1, 0}, mgl32.Vec2{0.5, 1})
	flatFace(mesh, br, bl, apexB, mgl32.Vec2{0, 0}, mgl32.Vec2{1, 0}, mgl32.Vec2{0.5, 1})

	// bottom
	flatFace(mesh, bl, br, fr, mgl32.Vec2{0, 1}, mgl32.Vec2{1, 1}, mgl32.Vec2{1, 0})
	flatFace(mesh, bl, fr, fl, mgl32.Vec2{0, 1}, mgl32.Vec2{1, 0}, mgl32.Vec2{0, 0})

	// right slope
	flatFace(mesh, fr, br, apexB, mgl32.Vec2{0, 0}, mgl32.Vec2{1, 0}, mgl32.Vec2{1, 1})
	flatFace(mesh, fr, apexB, apexF, mgl32.Vec2{0, 0}, mgl32.Vec2{1, 1}, mgl32.Vec2{0, 1})

	// left slope
	flatFace(mesh, bl, fl, apexF, mgl32.Vec2{0, 0}, mgl32.Vec2{1, 0}, mgl32.Vec2{1, 1})
	flatFace(mesh, bl, apexF, apexB, mgl32.Vec2{0, 0}, mgl32.Vec2{1, 1}, mgl32.Vec2{0, 1})

	mesh.MergeVertices()
	return mesh
}

// Pyramid3 is a three-sided pyramid: equilateral base on y=0, apex at
// (0,1,0).
func Pyramid3() *Mesh {
	mesh := &Mesh{}

	apex := mgl32.Vec3{0, 1, 0}

	corner := func(k int) mgl32.Vec3 {
		theta := m.Pi/2 + 2*m.Pi*float64(k)/3
		sin, cos := m.Sincos(theta)
		return mgl32.Vec3{float32(0.5 * cos), 0, float32(0.5 * sin)}
	}
	c0, c1, c2 := corner(0), corner(1), corner(2)

	// base, facing down
	flatFace(mesh, c0, c1, c2, mgl32.Vec2{0.5, 1}, mgl32.Vec2{0, 0}, mgl32.Vec2{1, 0})

	// sides, wound outward
	flatFace(mesh, c1, c0, apex, mgl32.Vec2{0, 0}, mgl32.Vec2{1, 0}, mgl32.Vec2{0.5, 1})
	flatFace(mesh, c2, c1, apex, mgl32.Vec2{0, 0}, mgl32.Vec2{1, 0}, mgl32.Vec2{0.5, 1})
	flatFace(mesh, c0, c2, apex, mgl32.Vec2{0, 0}, mgl32.Vec2{1, 0}, mgl32.Vec2{0.5, 1})

	mesh.MergeVertices()
	return mesh
}
