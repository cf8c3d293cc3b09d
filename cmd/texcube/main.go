package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime"

	"texcube/internal/config"
	"texcube/internal/graphics"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xlab/closer"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	cfg, err := config.Parse(os.Args[1:])
	if err != nil {
		closer.Fatalln(err)
	}

	// cancels the texture download on Ctrl-C or on a fatal setup error
	ctx, cancel := context.WithCancel(context.Background())
	closer.Bind(func() {
		cancel()
		log.Println("texcube: shutting down")
	})

	if err := glfw.Init(); err != nil {
		closer.Fatalln(fmt.Errorf("%w: %v", graphics.ErrContextUnavailable, err))
	}

	window, err := setupWindow(cfg)
	if err != nil {
		glfw.Terminate()
		closer.Fatalln(err)
	}

	components, err := setupScene(ctx, cfg, window)
	if err != nil {
		window.Destroy()
		glfw.Terminate()
		closer.Fatalln(err)
	}
	setupInputHandlers(window, components.Renderer)

	state := runLoop(window, components, cfg.FPSInterval)
	log.Printf("Stopped after %.2fs of rotation", state.Rotation)

	// GL objects belong to this thread; release them before closer exits the process
	components.Renderer.Dispose()
	window.Destroy()
	glfw.Terminate()
	closer.Close()
}
