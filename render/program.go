package render

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Program wraps a linked shader program and the resolved locations of
// its named uniforms. It satisfies scene.UniformStore.
type Program struct {
	handle   uint32
	uniforms map[string]int32
}

// NewSceneProgram compiles and links the scene shader.
func NewSceneProgram() (*Program, error) {
	return NewProgram(sceneVertexShader, sceneFragmentShader, sceneUniformNames())
}

// NewProgram compiles vertex and fragment sources, links them and
// resolves the given uniform names. Names the driver optimized away
// resolve to -1 and updates to them are dropped.
func NewProgram(vertexSrc, fragmentSrc string, uniformNames []string) (*Program, error) {
	vertex, err := compileShader(vertexSrc, gl.VERTEX_SHADER)
	if err != nil {
		return nil, fmt.Errorf("vertex shader: %w", err)
	}
	fragment, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertex)
		return nil, fmt.Errorf("fragment shader: %w", err)
	}

	handle := gl.CreateProgram()
	gl.AttachShader(handle, vertex)
	gl.AttachShader(handle, fragment)
	gl.LinkProgram(handle)

	gl.DeleteShader(vertex)
	gl.DeleteShader(fragment)

	var status int32
	gl.GetProgramiv(handle, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var length int32
		gl.GetProgramiv(handle, gl.INFO_LOG_LENGTH, &length)
		log := strings.Repeat("\x00", int(length+1))
		gl.GetProgramInfoLog(handle, length, nil, gl.Str(log))
		gl.DeleteProgram(handle)
		return nil, fmt.Errorf("link program: %v", log)
	}

	p := &Program{
		handle:   handle,
		uniforms: make(map[string]int32, len(uniformNames)),
	}
	for _, name := range uniformNames {
		p.uniforms[name] = gl.GetUniformLocation(handle, gl.Str(name+"\x00"))
	}
	return p, nil
}

func compileShader(src string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(src + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var length int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &length)
		log := strings.Repeat("\x00", int(length+1))
		gl.GetShaderInfoLog(shader, length, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile: %v", log)
	}
	return shader, nil
}

// Use makes the program current.
func (p *Program) Use() {
	gl.UseProgram(p.handle)
}

// Delete releases the program object.
func (p *Program) Delete() {
	gl.DeleteProgram(p.handle)
	p.handle = 0
}

// SetUniform pushes a value to a named uniform. The program must be
// current. Unknown names and unsupported value types are errors.
func (p *Program) SetUniform(name string, value interface{}) error {
	location, found := p.uniforms[name]
	if !found {
		return fmt.Errorf("unknown uniform %q", name)
	}
	if location < 0 {
		return nil
	}

	switch t := value.(type) {
	case bool:
		if t {
			gl.Uniform1i(location, 1)
		} else {
			gl.Uniform1i(location, 0)
		}
	case int:
		gl.Uniform1i(location, int32(t))
	case int32:
		gl.Uniform1i(location, t)
	case float32:
		gl.Uniform1f(location, t)
	case float64:
		gl.Uniform1f(location, float32(t))
	case mgl32.Vec2:
		gl.Uniform2fv(location, 1, &t[0])
	case mgl32.Vec3:
		gl.Uniform3fv(location, 1, &t[0])
	case mgl32.Vec4:
		gl.Uniform4fv(location, 1, &t[0])
	case mgl32.Mat3:
		gl.UniformMatrix3fv(location, 1, false, &t[0])
	case mgl32.Mat4:
		gl.UniformMatrix4fv(location, 1, false, &t[0])
	default:
		return fmt.Errorf("uniform %q: unsupported type %T", name, value)
	}
	return nil
}
