package renderer

import (
	"texcube/internal/graphics"
	"texcube/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

// RenderContext provides shared per-frame state for all renderables
type RenderContext struct {
	Camera    *graphics.Camera
	Frame     scene.Frame
	Proj      mgl32.Mat4
	ModelView mgl32.Mat4
	Normal    mgl32.Mat4
}

// Renderable interface defines the lifecycle for renderable features
type Renderable interface {
	Init() error
	Render(ctx RenderContext)
	Dispose()
	SetViewport(width, height int)
}
