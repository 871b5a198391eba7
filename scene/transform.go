package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Transform holds the per-object placement parameters: scale factors,
// rotation angles in degrees about the fixed X, Y and Z axes, and the
// final translation. It is recomputed for every draw and never stored.
type Transform struct {
	Scale       mgl32.Vec3
	RotationDeg mgl32.Vec3 // applied in X, Y, Z order
	Position    mgl32.Vec3
}

// Matrix composes the model matrix as
//
//	Translate(p) * RotX(rx) * RotY(ry) * RotZ(rz) * Scale(s)
//
// i.e. scale is applied to the vertex first, then the three axis
// rotations in X, Y, Z order, then translation. The order is not
// commutative and must not be rearranged.
func (t Transform) Matrix() mgl32.Mat4 {
	scale := mgl32.Scale3D(t.Scale[0], t.Scale[1], t.Scale[2])
	rotX := mgl32.HomogRotate3DX(mgl32.DegToRad(t.RotationDeg[0]))
	rotY := mgl32.HomogRotate3DY(mgl32.DegToRad(t.RotationDeg[1]))
	rotZ := mgl32.HomogRotate3DZ(mgl32.DegToRad(t.RotationDeg[2]))
	translate := mgl32.Translate3D(t.Position[0], t.Position[1], t.Position[2])

	return translate.Mul4(rotX).Mul4(rotY).Mul4(rotZ).Mul4(scale)
}

// Apply pushes the composed model matrix into the shading stage.
func (t Transform) Apply(u UniformStore) error {
	return u.SetUniform(UniformModel, t.Matrix())
}
