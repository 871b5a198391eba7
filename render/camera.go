package render

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/der-antikeks/deskscene/scene"
)

const (
	cameraFOVDeg = 45.0
	cameraNear   = 0.1
	cameraFar    = 100.0
)

// ApplyCamera pushes the fixed view and projection of the scene. The
// camera looks at the desk from slightly above.
func ApplyCamera(store scene.UniformStore, width, height int) error {
	eye := mgl32.Vec3{0, 5, 16}
	target := mgl32.Vec3{0, 3.5, 0}
	up := mgl32.Vec3{0, 1, 0}

	view := mgl32.LookAtV(eye, target, up)
	projection := mgl32.Perspective(
		mgl32.DegToRad(cameraFOVDeg),
		float32(width)/float32(height),
		cameraNear, cameraFar)

	if err := store.SetUniform(scene.UniformView, view); err != nil {
		return err
	}
	if err := store.SetUniform(scene.UniformProjection, projection); err != nil {
		return err
	}
	return store.SetUniform(scene.UniformViewPos, eye)
}
