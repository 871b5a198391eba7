package scene

// Shape names a primitive mesh. Shape data is precomputed once during
// preparation and drawn any number of times.
type Shape string

const (
	ShapePlane           Shape = "plane"
	ShapeBox             Shape = "box"
	ShapeCone            Shape = "cone"
	ShapePrism           Shape = "prism"
	ShapePyramid3        Shape = "pyramid3"
	ShapeSphere          Shape = "sphere"
	ShapeTorus           Shape = "torus"
	ShapeTaperedCylinder Shape = "taperedcylinder"
	ShapeCylinder        Shape = "cylinder"
)

// Shapes lists every primitive the scene prepares, in load order.
func Shapes() []Shape {
	return []Shape{
		ShapePlane,
		ShapeBox,
		ShapeCone,
		ShapePrism,
		ShapePyramid3,
		ShapeSphere,
		ShapeTorus,
		ShapeTaperedCylinder,
		ShapeCylinder,
	}
}

// MeshLibrary is the mesh collaborator: Load builds the vertex
// buffers for a shape once, Draw issues a draw call for a previously
// loaded shape. Drawing an unloaded shape is an error.
type MeshLibrary interface {
	Load(s Shape) error
	Draw(s Shape) error
}
