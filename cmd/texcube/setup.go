package main

import (
	"context"
	"fmt"

	"texcube/assets"
	"texcube/internal/config"
	"texcube/internal/graphics"
	"texcube/internal/graphics/renderables/cube"
	renderer "texcube/internal/graphics/renderer"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// setupWindow creates the window and makes its GL 4.1 core context current.
// glfw must already be initialized.
func setupWindow(cfg config.Config) (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", graphics.ErrContextUnavailable, err)
	}
	window.MakeContextCurrent()

	// Initialize OpenGL bindings
	if err := gl.Init(); err != nil {
		window.Destroy()
		return nil, fmt.Errorf("%w: %v", graphics.ErrContextUnavailable, err)
	}

	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	return window, nil
}

// Components holds everything the frame loop drives
type Components struct {
	Renderer *renderer.Renderer
	Cube     *cube.Cube
}

func setupScene(ctx context.Context, cfg config.Config, window *glfw.Window) (*Components, error) {
	cubeRenderer := cube.NewCube(ctx, cube.Options{
		Shaders:     assets.Shaders(cfg.ShaderDir),
		VertShader:  assets.VertShader,
		FragShader:  assets.FragShader,
		TexturePath: cfg.TexturePath,
	})

	// the framebuffer can be larger than the window on HiDPI screens
	fbWidth, fbHeight := window.GetFramebufferSize()
	r, err := renderer.NewRenderer(fbWidth, fbHeight, cubeRenderer)
	if err != nil {
		return nil, err
	}

	return &Components{
		Renderer: r,
		Cube:     cubeRenderer,
	}, nil
}

func setupInputHandlers(window *glfw.Window, r *renderer.Renderer) {
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			w.SetShouldClose(true)
		}
	})

	window.SetFramebufferSizeCallback(func(w *glfw.Window, fbWidth, fbHeight int) {
		r.UpdateViewport(fbWidth, fbHeight)
	})
}
