package renderer

import (
	"texcube/internal/graphics"
	"texcube/internal/profiling"
	"texcube/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Renderer orchestrates rendering via renderable features
type Renderer struct {
	renderables []Renderable
	camera      *graphics.Camera
	width       int
	height      int
}

// NewRenderer sets the baseline GL state and initializes the renderables.
// If one fails, the ones already initialized are disposed.
func NewRenderer(width, height int, rs ...Renderable) (*Renderer, error) {
	gl.ClearColor(0.0, 0.0, 0.0, 1.0)
	gl.ClearDepth(1.0)
	gl.Enable(gl.DEPTH_TEST)
	// coplanar fragments pass so they do not flicker
	gl.DepthFunc(gl.LEQUAL)

	renderer := &Renderer{
		renderables: rs,
		camera:      graphics.NewCamera(width, height),
	}
	renderer.UpdateViewport(width, height)

	for i, r := range rs {
		if err := r.Init(); err != nil {
			for j := i - 1; j >= 0; j-- {
				rs[j].Dispose()
			}
			return nil, err
		}
	}

	return renderer, nil
}

// Context builds the per-frame matrices for a frame.
func (r *Renderer) Context(frame scene.Frame) RenderContext {
	mv := scene.ModelView(frame.Rotation)
	return RenderContext{
		Camera:    r.camera,
		Frame:     frame,
		Proj:      r.camera.GetProjectionMatrix(),
		ModelView: mv,
		Normal:    scene.NormalMatrix(mv),
	}
}

// Render clears the framebuffer and draws every renderable for frame
func (r *Renderer) Render(frame scene.Frame) {
	defer profiling.Track("renderer.Render")()

	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	ctx := r.Context(frame)
	for _, renderable := range r.renderables {
		renderable.Render(ctx)
	}
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
}

// GetCamera returns the camera instance
func (r *Renderer) GetCamera() *graphics.Camera {
	return r.camera
}

// UpdateViewport resizes the GL viewport and the camera aspect ratio
func (r *Renderer) UpdateViewport(width, height int) {
	r.width, r.height = width, height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.camera.SetViewport(width, height)
	for _, renderable := range r.renderables {
		renderable.SetViewport(width, height)
	}
}

// Viewport returns the current framebuffer size
func (r *Renderer) Viewport() (int, int) {
	return r.width, r.height
}
