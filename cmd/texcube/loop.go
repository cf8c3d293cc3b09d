package main

import (
	"log"
	"time"

	"texcube/internal/profiling"
	"texcube/internal/scene"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// runLoop redraws once per iteration until the window is closed. The frame
// state lives here and is threaded through each tick.
func runLoop(window *glfw.Window, c *Components, fpsInterval time.Duration) scene.State {
	var state scene.State

	frames := 0
	lastFPSCheckTime := time.Now()

	for !window.ShouldClose() {
		profiling.ResetFrame()

		var frame scene.Frame
		frame, state = state.Tick(glfw.GetTime())
		c.Renderer.Render(frame)
		frames++

		func() { defer profiling.Track("glfw.SwapBuffers")(); window.SwapBuffers() }()
		func() { defer profiling.Track("glfw.PollEvents")(); glfw.PollEvents() }()

		if fpsInterval > 0 && time.Since(lastFPSCheckTime) >= fpsInterval {
			elapsed := time.Since(lastFPSCheckTime).Seconds()
			log.Printf("FPS: %d (texture %s) %s",
				int(float64(frames)/elapsed+0.5), c.Cube.Texture().Status(), profiling.TopN(3))
			frames = 0
			lastFPSCheckTime = time.Now()
		}
	}
	return state
}
