package graphics

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Stage is a programmable pipeline stage.
type Stage uint32

const (
	VertexStage   Stage = gl.VERTEX_SHADER
	FragmentStage Stage = gl.FRAGMENT_SHADER
)

func (s Stage) String() string {
	switch s {
	case VertexStage:
		return "vertex"
	case FragmentStage:
		return "fragment"
	default:
		return fmt.Sprintf("stage(0x%x)", uint32(s))
	}
}

// Shader represents an OpenGL shader program
type Shader struct {
	ID uint32
}

// NewShader compiles and links a program from vertex and fragment source
func NewShader(vertexSrc, fragmentSrc string) (*Shader, error) {
	vertex, err := CompileShader(VertexStage, vertexSrc)
	if err != nil {
		return nil, err
	}
	fragment, err := CompileShader(FragmentStage, fragmentSrc)
	if err != nil {
		gl.DeleteShader(vertex)
		return nil, err
	}

	program, err := LinkProgram(vertex, fragment)
	if err != nil {
		return nil, err
	}
	return &Shader{ID: program}, nil
}

// LoadShader reads a shader pair from fsys and builds a program from it
func LoadShader(fsys fs.FS, vertexPath, fragmentPath string) (*Shader, error) {
	vertexSource, err := fs.ReadFile(fsys, vertexPath)
	if err != nil {
		return nil, fmt.Errorf("could not read vertex shader file: %w", err)
	}
	fragmentSource, err := fs.ReadFile(fsys, fragmentPath)
	if err != nil {
		return nil, fmt.Errorf("could not read fragment shader file: %w", err)
	}
	return NewShader(string(vertexSource), string(fragmentSource))
}

// Use activates the shader program
func (s *Shader) Use() {
	gl.UseProgram(s.ID)
}

// Delete releases the program object
func (s *Shader) Delete() {
	if s.ID != 0 {
		gl.DeleteProgram(s.ID)
		s.ID = 0
	}
}

// CompileShader compiles source for the given stage. On failure the shader
// object is deleted and a *CompileError with the driver's log is returned.
func CompileShader(stage Stage, source string) (uint32, error) {
	shader := gl.CreateShader(uint32(stage))
	if shader == 0 {
		return 0, &CompileError{Stage: stage, Log: "glCreateShader returned 0"}
	}
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)

		return 0, &CompileError{Stage: stage, Log: cleanLog(log)}
	}
	return shader, nil
}

// LinkProgram links two compiled shaders into a program. The shader objects
// are released either way.
func LinkProgram(vertex, fragment uint32) (uint32, error) {
	program := gl.CreateProgram()
	gl.AttachShader(program, vertex)
	gl.AttachShader(program, fragment)
	gl.LinkProgram(program)

	// flagged for deletion, freed together with the program
	gl.DeleteShader(vertex)
	gl.DeleteShader(fragment)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)

		return 0, &LinkError{Log: cleanLog(log)}
	}
	return program, nil
}

func cleanLog(log string) string {
	log = strings.TrimSpace(strings.TrimRight(log, "\x00"))
	if log == "" {
		return "no info log"
	}
	return log
}
