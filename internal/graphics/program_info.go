package graphics

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// InvalidLocation marks an attribute or uniform the linker did not keep.
const InvalidLocation int32 = -1

// Names used by the cube shaders.
const (
	AttribPosition = "aVertexPosition"
	AttribNormal   = "aVertexNormal"
	AttribTexCoord = "aTextureCoord"

	UniformProjection = "uProjectionMatrix"
	UniformModelView  = "uModelViewMatrix"
	UniformNormal     = "uNormalMatrix"
	UniformSampler    = "uSampler"
)

// AttribLocations holds resolved vertex attribute slots.
type AttribLocations struct {
	Position int32
	Normal   int32
	TexCoord int32
}

// UniformLocations holds resolved uniform slots.
type UniformLocations struct {
	Projection int32
	ModelView  int32
	Normal     int32
	Sampler    int32
}

// ProgramInfo caches every location the cube draw needs. Locations are
// looked up once after linking.
type ProgramInfo struct {
	Shader   *Shader
	Attribs  AttribLocations
	Uniforms UniformLocations
}

func NewProgramInfo(s *Shader) ProgramInfo {
	return ProgramInfo{
		Shader: s,
		Attribs: AttribLocations{
			Position: attribLocation(s.ID, AttribPosition),
			Normal:   attribLocation(s.ID, AttribNormal),
			TexCoord: attribLocation(s.ID, AttribTexCoord),
		},
		Uniforms: UniformLocations{
			Projection: uniformLocation(s.ID, UniformProjection),
			ModelView:  uniformLocation(s.ID, UniformModelView),
			Normal:     uniformLocation(s.ID, UniformNormal),
			Sampler:    uniformLocation(s.ID, UniformSampler),
		},
	}
}

// Missing lists the names that did not resolve.
func (p ProgramInfo) Missing() []string {
	var missing []string
	check := func(loc int32, name string) {
		if loc < 0 {
			missing = append(missing, name)
		}
	}
	check(p.Attribs.Position, AttribPosition)
	check(p.Attribs.Normal, AttribNormal)
	check(p.Attribs.TexCoord, AttribTexCoord)
	check(p.Uniforms.Projection, UniformProjection)
	check(p.Uniforms.ModelView, UniformModelView)
	check(p.Uniforms.Normal, UniformNormal)
	check(p.Uniforms.Sampler, UniformSampler)
	return missing
}

// Valid reports whether every location resolved.
func (p ProgramInfo) Valid() bool {
	return len(p.Missing()) == 0
}

// SetMatrix4 uploads m to loc, skipping unresolved locations.
func SetMatrix4(loc int32, m mgl32.Mat4) {
	if loc == InvalidLocation {
		return
	}
	gl.UniformMatrix4fv(loc, 1, false, &m[0])
}

// SetInt uploads v to loc, skipping unresolved locations.
func SetInt(loc int32, v int32) {
	if loc == InvalidLocation {
		return
	}
	gl.Uniform1i(loc, v)
}

func attribLocation(program uint32, name string) int32 {
	return gl.GetAttribLocation(program, gl.Str(name+"\x00"))
}

func uniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}
