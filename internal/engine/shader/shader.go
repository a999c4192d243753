// Package shader provides OpenGL shader compilation utilities.
package shader

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/heightmaps/internal/assets"
	"github.com/Faultbox/heightmaps/pkg/math"
)

// Program is a linked shader program. It is only obtainable fully linked.
type Program struct {
	id       uint32
	uniforms map[string]int32
}

// Compile compiles vertex and fragment sources and links them into a program.
func Compile(vertexSrc, fragmentSrc string) (*Program, error) {
	vertShader, err := compileShader(vertexSrc, gl.VERTEX_SHADER, assets.ShaderVertex)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(vertShader)

	fragShader, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER, assets.ShaderFragment)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(fragShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertShader)
	gl.AttachShader(program, fragShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		log := infoLog(program, gl.GetProgramiv, gl.GetProgramInfoLog)
		gl.DeleteProgram(program)
		return nil, fmt.Errorf("link: %s", log)
	}

	return &Program{id: program, uniforms: make(map[string]int32)}, nil
}

// Loader reads raw shader sources by path.
type Loader interface {
	Load(path string) ([]byte, error)
}

// Load reads two shader files through the loader, infers their stages from
// the file extensions and compiles them.
func Load(loader Loader, pathA, pathB string) (*Program, error) {
	vertPath, fragPath, err := assets.ShaderPair(pathA, pathB)
	if err != nil {
		return nil, err
	}

	vertSrc, err := loader.Load(vertPath)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", vertPath, err)
	}
	fragSrc, err := loader.Load(fragPath)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", fragPath, err)
	}

	program, err := Compile(string(vertSrc), string(fragSrc))
	if err != nil {
		return nil, fmt.Errorf("%s + %s: %w", vertPath, fragPath, err)
	}
	return program, nil
}

// compileShader compiles a single shader of the given type.
func compileShader(source string, shaderType uint32, kind assets.ShaderKind) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		log := infoLog(shader, gl.GetShaderiv, gl.GetShaderInfoLog)
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%s shader: %s", kind, log)
	}

	return shader, nil
}

func infoLog(
	obj uint32,
	getiv func(uint32, uint32, *int32),
	getLog func(uint32, int32, *int32, *uint8),
) string {
	var logLen int32
	getiv(obj, gl.INFO_LOG_LENGTH, &logLen)
	if logLen == 0 {
		return "(no info log)"
	}
	log := make([]byte, logLen)
	getLog(obj, logLen, nil, &log[0])
	return string(log[:len(log)-1])
}

// Use makes the program current.
func (p *Program) Use() {
	gl.UseProgram(p.id)
}

// Uniform returns the location of a uniform, or -1 if it is absent or was
// optimized out. Locations are cached.
func (p *Program) Uniform(name string) int32 {
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
	p.uniforms[name] = loc
	return loc
}

// SetInt sets an int or sampler uniform on the current program.
func (p *Program) SetInt(name string, v int32) {
	gl.Uniform1i(p.Uniform(name), v)
}

// SetFloat sets a float uniform on the current program.
func (p *Program) SetFloat(name string, v float32) {
	gl.Uniform1f(p.Uniform(name), v)
}

// SetMat4 sets a mat4 uniform on the current program.
func (p *Program) SetMat4(name string, m math.Mat4) {
	gl.UniformMatrix4fv(p.Uniform(name), 1, false, m.Ptr())
}

// Delete releases the program.
func (p *Program) Delete() {
	if p.id != 0 {
		gl.DeleteProgram(p.id)
		p.id = 0
	}
}
