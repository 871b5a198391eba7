package scene

// Uniform names expected by the shading stage. They must match the
// declarations in the GLSL sources exactly; a typo here renders wrong
// instead of failing loudly, which is why every push goes through
// these constants.
const (
	UniformModel       = "model"
	UniformView        = "view"
	UniformProjection  = "projection"
	UniformViewPos     = "viewPosition"
	UniformObjectColor = "objectColor"
	UniformTexture     = "objectTexture"
	UniformUseTexture  = "bUseTexture"
	UniformUseLighting = "bUseLighting"
	UniformUVScale     = "UVscale"
)

// UniformStore is the shading interface the scene pushes named values
// into: matrices, vectors, scalars and sampler slots, all keyed by
// uniform name. The GL-backed implementation lives in the render
// package; tests substitute a recording fake.
type UniformStore interface {
	SetUniform(name string, value interface{}) error
}
