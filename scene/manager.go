package scene

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// LeafCount is the number of procedurally placed plant leaves.
const LeafCount = 10

var ErrNotPrepared = errors.New("scene not prepared")

// sceneTextures lists the image files loaded at preparation time and
// the tag each one is registered under. Registration order determines
// the texture slot.
var sceneTextures = []struct {
	File, Tag string
}{
	{"wood.jpg", "wood"},
	{"wall.jpg", "wall"},
	{"pot.jpg", "pot"},
	{"leaf.jpg", "leaf"},
	{"lamp.jpg", "lamp"},
	{"marble.jpg", "marble"},
	{"granite.jpg", "granite"},
	{"gold.jpg", "gold"},
}

// drawCommand is one authored object of the scene: its placement, the
// primitive to draw and the shading state to select beforehand. The
// scene is this literal list; there is no scene graph behind it.
type drawCommand struct {
	name      string
	transform Transform
	shape     Shape

	material string      // material tag, "" keeps the previous parameters
	texture  string      // texture tag, selects texture mode
	uvScale  *mgl32.Vec2 // texture mode only, nil means 1:1
	color    *mgl32.Vec4 // selects flat color mode
}

// Manager sequences texture, material and mesh preparation and issues
// the per-frame transform and draw calls. Single-threaded: the
// orchestrator is the sole writer of both registries, and both are
// populated before the first Render.
type Manager struct {
	uniforms  UniformStore
	meshes    MeshLibrary
	textures  *TextureRegistry
	materials *MaterialRegistry
	log       *zap.Logger

	assetDir string

	dirLight  DirectionalLight
	spotLight SpotLight

	prepared bool
}

func NewManager(uniforms UniformStore, meshes MeshLibrary, textures *TextureRegistry, assetDir string, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	dir, spot := DefaultLights()
	return &Manager{
		uniforms:  uniforms,
		meshes:    meshes,
		textures:  textures,
		materials: NewMaterialRegistry(),
		log:       log,
		assetDir:  assetDir,
		dirLight:  dir,
		spotLight: spot,
	}
}

// Prepare loads every texture, seeds the material list and builds the
// primitive meshes. Any failure aborts preparation and is returned to
// the caller; a half-prepared scene is not rendered.
func (s *Manager) Prepare() error {
	for _, tex := range sceneTextures {
		if err := s.textures.Register(filepath.Join(s.assetDir, tex.File), tex.Tag); err != nil {
			return fmt.Errorf("prepare: %w", err)
		}
	}
	if err := s.textures.BindAll(); err != nil {
		return fmt.Errorf("prepare: %w", err)
	}

	for _, m := range DefaultMaterials() {
		s.materials.Add(m)
	}

	// one instance of each mesh, no matter how often it is drawn
	for _, shape := range Shapes() {
		if err := s.meshes.Load(shape); err != nil {
			return fmt.Errorf("prepare mesh %q: %w", shape, err)
		}
	}

	// surface authoring mistakes now instead of mid-frame
	for _, cmd := range sceneCommands() {
		if cmd.texture != "" {
			if _, found := s.textures.SlotOf(cmd.texture); !found {
				return fmt.Errorf("prepare %s: %w: %q", cmd.name, ErrUnknownTag, cmd.texture)
			}
		}
		if cmd.material != "" {
			if _, found := s.materials.Find(cmd.material); !found {
				s.log.Warn("unknown material tag in scene",
					zap.String("object", cmd.name),
					zap.String("tag", cmd.material))
			}
		}
	}

	s.prepared = true
	s.log.Info("scene prepared",
		zap.Int("textures", s.textures.Len()),
		zap.Int("materials", s.materials.Len()),
		zap.Int("meshes", len(Shapes())))
	return nil
}

// Render draws one frame: lights first, then the authored object list
// in fixed order. The output is identical every frame.
func (s *Manager) Render() error {
	if !s.prepared {
		return ErrNotPrepared
	}

	if err := s.dirLight.Apply(s.uniforms); err != nil {
		return fmt.Errorf("render lights: %w", err)
	}
	if err := s.spotLight.Apply(s.uniforms); err != nil {
		return fmt.Errorf("render lights: %w", err)
	}
	if err := s.uniforms.SetUniform(UniformUseLighting, true); err != nil {
		return fmt.Errorf("render lights: %w", err)
	}

	for _, cmd := range sceneCommands() {
		if err := s.draw(cmd); err != nil {
			return fmt.Errorf("draw %s: %w", cmd.name, err)
		}
	}
	return nil
}

// Destroy releases the GPU resources held through the registries.
func (s *Manager) Destroy() {
	s.textures.Destroy()
	s.prepared = false
}

func (s *Manager) draw(cmd drawCommand) error {
	if err := cmd.transform.Apply(s.uniforms); err != nil {
		return err
	}

	// material parameters are independent of color/texture mode; both
	// a material and a texture may be active for the same draw
	if cmd.material != "" {
		if err := s.setMaterial(cmd.material); err != nil {
			return err
		}
	}

	switch {
	case cmd.texture != "":
		if err := s.setTexture(cmd.texture); err != nil {
			return err
		}
		uv := mgl32.Vec2{1, 1}
		if cmd.uvScale != nil {
			uv = *cmd.uvScale
		}
		if err := s.uniforms.SetUniform(UniformUVScale, uv); err != nil {
			return err
		}
	case cmd.color != nil:
		if err := s.setColor(*cmd.color); err != nil {
			return err
		}
	}

	return s.meshes.Draw(cmd.shape)
}

// setColor selects flat color mode for the next draw.
func (s *Manager) setColor(c mgl32.Vec4) error {
	if err := s.uniforms.SetUniform(UniformUseTexture, false); err != nil {
		return err
	}
	return s.uniforms.SetUniform(UniformObjectColor, c)
}

// setTexture selects texture mode and points the sampler at the slot
// the tag resolved to. An unknown tag is an error, not a silent -1.
func (s *Manager) setTexture(tag string) error {
	slot, found := s.textures.SlotOf(tag)
	if !found {
		return fmt.Errorf("%w: %q", ErrUnknownTag, tag)
	}
	if err := s.uniforms.SetUniform(UniformUseTexture, true); err != nil {
		return err
	}
	return s.uniforms.SetUniform(UniformTexture, slot)
}

// setMaterial pushes the named material parameters. A missing tag at
// draw time keeps the previous parameters; it degrades the frame, not
// the run, so it is logged instead of failing the render.
func (s *Manager) setMaterial(tag string) error {
	m, found := s.materials.Find(tag)
	if !found {
		s.log.Warn("unknown material tag", zap.String("tag", tag))
		return nil
	}
	return m.Apply(s.uniforms)
}

// LeafTransforms places count tapered-cylinder leaves around the pot
// pivot: equal angular steps of 360/count about Y, height cycling
// through three steps, forward tilt growing with the index and the
// sideways lean alternating by index parity.
func LeafTransforms(count int) []Transform {
	transforms := make([]Transform, 0, count)

	for i := 0; i < count; i++ {
		height := 1.5 + float32(i%3)*0.2

		yRotation := float32(i) * (360.0 / float32(count))
		xTilt := 20.0 + float32(i)*3.0
		zLean := float32(5.0)
		if i%2 != 0 {
			zLean = -5.0
		}

		transforms = append(transforms, Transform{
			Scale:       mgl32.Vec3{0.12, height, 0.4},
			RotationDeg: mgl32.Vec3{xTilt, yRotation, zLean},
			Position:    mgl32.Vec3{2.0, 1.3, 0.0},
		})
	}

	return transforms
}

// sceneCommands returns the authored object list in draw order.
func sceneCommands() []drawCommand {
	uvWall := mgl32.Vec2{1.0, 1.0}
	colorDesk := mgl32.Vec4{1.0, 1.0, 1.0, 1.0}
	colorBase := mgl32.Vec4{0.85, 0.85, 0.85, 1.0}
	colorBulb := mgl32.Vec4{1.0, 1.0, 0.0, 1.0}
	colorClock := mgl32.Vec4{0.2, 0.2, 0.2, 1.0}
	colorPot := mgl32.Vec4{0.8, 0.8, 0.8, 1.0}

	cmds := []drawCommand{
		{
			name: "back wall",
			transform: Transform{
				Scale:       mgl32.Vec3{40.0, 1.0, 40.0},
				RotationDeg: mgl32.Vec3{-90.0, 0.0, 0.0},
				Position:    mgl32.Vec3{0.0, 4.0, -10.0},
			},
			shape:    ShapePlane,
			material: "wall",
			texture:  "wall",
			uvScale:  &uvWall,
		},
		{
			name: "desk surface",
			transform: Transform{
				Scale:    mgl32.Vec3{20.0, 1.0, 20.0},
				Position: mgl32.Vec3{0.0, -0.5, 0.0},
			},
			shape:    ShapePlane,
			material: "wall",
			color:    &colorDesk,
		},
		{
			name: "lamp base",
			transform: Transform{
				Scale:    mgl32.Vec3{1.5, 0.2, 1.5},
				Position: mgl32.Vec3{5.0, 0.0, 0.0},
			},
			shape:    ShapeCylinder,
			material: "granite",
			color:    &colorBase,
		},
		{
			name: "lamp neck",
			transform: Transform{
				Scale:    mgl32.Vec3{0.05, 4.0, 0.05},
				Position: mgl32.Vec3{6.0, 0.0, 0.0},
			},
			shape:    ShapeCylinder,
			material: "lamp",
		},
		{
			name: "lamp shade",
			transform: Transform{
				Scale:       mgl32.Vec3{1.2, 1.5, 1.2},
				RotationDeg: mgl32.Vec3{-45.0, 0.0, 0.0},
				Position:    mgl32.Vec3{5.5, 3.8, 0.0},
			},
			shape:    ShapeTaperedCylinder,
			material: "lamp",
		},
		{
			name: "lamp bulb",
			transform: Transform{
				Scale:    mgl32.Vec3{0.2, 0.2, 0.2},
				Position: mgl32.Vec3{5.5, 3.6, 0.0},
			},
			shape: ShapeSphere,
			color: &colorBulb,
		},
		{
			name: "lamp joint",
			transform: Transform{
				Scale:       mgl32.Vec3{0.15, 0.3, 0.15},
				RotationDeg: mgl32.Vec3{0.0, 0.0, 90.0},
				Position:    mgl32.Vec3{6.0, 4.0, -0.2},
			},
			shape:    ShapeCylinder,
			material: "gold",
		},
		{
			name: "clock body",
			transform: Transform{
				Scale:       mgl32.Vec3{1.6, 0.05, 1.6},
				RotationDeg: mgl32.Vec3{90.0, 0.0, 0.0},
				Position:    mgl32.Vec3{-2.0, 7.0, -4.95},
			},
			shape:    ShapeCylinder,
			material: "marble",
			color:    &colorClock,
		},
		{
			name: "clock face",
			transform: Transform{
				Scale:       mgl32.Vec3{1.5, 0.1, 1.5},
				RotationDeg: mgl32.Vec3{90.0, 0.0, 0.0},
				Position:    mgl32.Vec3{-2.0, 7.0, -4.9},
			},
			shape:   ShapeCylinder,
			texture: "wood",
		},
		{
			name: "pot",
			transform: Transform{
				Scale:    mgl32.Vec3{1.2, 1.0, 1.2},
				Position: mgl32.Vec3{2.0, 0.5, 0.0},
			},
			shape:    ShapeSphere,
			material: "granite",
			color:    &colorPot,
		},
	}

	for i, t := range LeafTransforms(LeafCount) {
		cmds = append(cmds, drawCommand{
			name:      fmt.Sprintf("leaf %d", i),
			transform: t,
			shape:     ShapeTaperedCylinder,
			texture:   "leaf",
		})
	}

	return cmds
}
