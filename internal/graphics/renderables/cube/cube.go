package cube

import (
	"context"
	"io/fs"
	"log"

	"texcube/internal/graphics"
	renderer "texcube/internal/graphics/renderer"
	"texcube/internal/mesh"
	"texcube/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
)

const textureUnit = 0

// Options selects where the cube's shaders and texture come from.
type Options struct {
	Shaders     fs.FS
	VertShader  string
	FragShader  string
	TexturePath string
}

// Cube draws the lit, textured cube
type Cube struct {
	opts Options
	ctx  context.Context

	shader  *graphics.Shader
	info    graphics.ProgramInfo
	buffers *graphics.MeshBuffers
	texture *graphics.Texture
}

// NewCube creates a new cube renderable. ctx bounds the background texture load.
func NewCube(ctx context.Context, opts Options) *Cube {
	return &Cube{opts: opts, ctx: ctx}
}

// Init compiles the shaders, uploads the mesh and starts the texture load
func (c *Cube) Init() error {
	var err error
	c.shader, err = graphics.LoadShader(c.opts.Shaders, c.opts.VertShader, c.opts.FragShader)
	if err != nil {
		return err
	}

	c.info = graphics.NewProgramInfo(c.shader)
	if missing := c.info.Missing(); len(missing) > 0 {
		log.Printf("Cube shader has no active %v, those bindings are skipped", missing)
	}

	c.buffers, err = graphics.InitBuffers(mesh.Cube())
	if err != nil {
		c.shader.Delete()
		return err
	}

	c.texture = graphics.NewTexture(c.ctx, c.opts.TexturePath)
	return nil
}

// Render draws the cube with the frame's matrices
func (c *Cube) Render(ctx renderer.RenderContext) {
	func() {
		defer profiling.Track("texture.Sync")()
		c.texture.Sync()
	}()

	gl.BindVertexArray(c.buffers.VAO)
	bindAttribute(c.info.Attribs.Position, c.buffers.Position, 3)
	bindAttribute(c.info.Attribs.TexCoord, c.buffers.TexCoord, 2)
	bindAttribute(c.info.Attribs.Normal, c.buffers.Normal, 3)

	c.shader.Use()
	graphics.SetMatrix4(c.info.Uniforms.Projection, ctx.Proj)
	graphics.SetMatrix4(c.info.Uniforms.ModelView, ctx.ModelView)
	graphics.SetMatrix4(c.info.Uniforms.Normal, ctx.Normal)

	c.texture.Bind(textureUnit)
	graphics.SetInt(c.info.Uniforms.Sampler, textureUnit)

	gl.DrawElementsWithOffset(gl.TRIANGLES, c.buffers.IndexCount, gl.UNSIGNED_SHORT, 0)
	gl.BindVertexArray(0)
}

// Texture exposes the cube texture so callers can watch the load
func (c *Cube) Texture() *graphics.Texture {
	return c.texture
}

// SetViewport is a no-op; the projection comes from the renderer's camera
func (c *Cube) SetViewport(width, height int) {}

// Dispose cleans up OpenGL resources
func (c *Cube) Dispose() {
	if c.texture != nil {
		c.texture.Delete()
	}
	if c.buffers != nil {
		c.buffers.Dispose()
	}
	if c.shader != nil {
		c.shader.Delete()
	}
}

// bindAttribute points loc at a tightly packed float buffer. Unresolved
// locations are skipped.
func bindAttribute(loc int32, buffer uint32, components int32) {
	if loc == graphics.InvalidLocation {
		return
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, buffer)
	gl.VertexAttribPointerWithOffset(uint32(loc), components, gl.FLOAT, false, 0, 0)
	gl.EnableVertexAttribArray(uint32(loc))
}
