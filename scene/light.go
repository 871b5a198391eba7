package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/der-antikeks/deskscene/math"
)

// DirectionalLight is an infinitely distant light shining along a
// fixed direction.
type DirectionalLight struct {
	Direction mgl32.Vec3
	Ambient   mgl32.Vec3
	Diffuse   mgl32.Vec3
}

func (l DirectionalLight) Apply(u UniformStore) error {
	sets := []struct {
		name  string
		value interface{}
	}{
		{"dirLight.direction", l.Direction},
		{"dirLight.ambient", l.Ambient},
		{"dirLight.diffuse", l.Diffuse},
	}
	for _, s := range sets {
		if err := u.SetUniform(s.name, s.value); err != nil {
			return err
		}
	}
	return nil
}

// SpotLight is a positioned cone light with distance attenuation. The
// cutoff angles are authored in degrees and pushed as cosines, since
// the shader compares them against a dot product.
type SpotLight struct {
	Position  mgl32.Vec3
	Direction mgl32.Vec3
	Ambient   mgl32.Vec3
	Diffuse   mgl32.Vec3
	Specular  mgl32.Vec3

	Constant  float32
	Linear    float32
	Quadratic float32

	CutOffDeg      float32
	OuterCutOffDeg float32
}

func (l SpotLight) Apply(u UniformStore) error {
	sets := []struct {
		name  string
		value interface{}
	}{
		{"spotLight.position", l.Position},
		{"spotLight.direction", l.Direction},
		{"spotLight.ambient", l.Ambient},
		{"spotLight.diffuse", l.Diffuse},
		{"spotLight.specular", l.Specular},
		{"spotLight.constant", l.Constant},
		{"spotLight.linear", l.Linear},
		{"spotLight.quadratic", l.Quadratic},
		{"spotLight.cutOff", float32(math.CosDeg(float64(l.CutOffDeg)))},
		{"spotLight.outerCutOff", float32(math.CosDeg(float64(l.OuterCutOffDeg)))},
	}
	for _, s := range sets {
		if err := u.SetUniform(s.name, s.value); err != nil {
			return err
		}
	}
	return nil
}

// DefaultLights returns the fixed lighting rig of the scene: one cool
// directional fill and one warm spotlight above the desk.
func DefaultLights() (DirectionalLight, SpotLight) {
	dir := DirectionalLight{
		Direction: mgl32.Vec3{-0.5, -0.8, 0.8},
		Ambient:   mgl32.Vec3{0.3, 0.3, 0.3},
		Diffuse:   mgl32.Vec3{0.7, 0.7, 0.7},
	}

	spot := SpotLight{
		Position:  mgl32.Vec3{5.5, 4.0, 0.5},
		Direction: mgl32.Vec3{-0.8, -1.0, -0.2},
		Ambient:   mgl32.Vec3{0.1, 0.1, 0.1},
		Diffuse:   mgl32.Vec3{1.0, 0.95, 0.8}, // warm bulb color
		Specular:  mgl32.Vec3{1.0, 1.0, 1.0},

		Constant:  1.0,
		Linear:    0.045,
		Quadratic: 0.0075,

		CutOffDeg:      15.0,
		OuterCutOffDeg: 25.0,
	}

	return dir, spot
}
