// Package gltest provides a hidden OpenGL 4.1 context for tests.
//
// GL calls must come from the thread that owns the context, so packages using
// it run their tests through Main, which locks the test binary's main goroutine
// to its OS thread and executes the GL-bound tests there.
package gltest

import (
	"fmt"
	"os"
	"runtime"
	"testing"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

var (
	window  *glfw.Window
	initErr error
	calls   = make(chan func())
)

func init() {
	runtime.LockOSThread()
}

// Main sets up the context on the main thread and runs m on another goroutine.
// Tests reach the context through Do. Call it from TestMain.
func Main(m *testing.M) {
	initErr = setup()

	done := make(chan int)
	go func() {
		done <- m.Run()
	}()

	for {
		select {
		case f := <-calls:
			f()
		case code := <-done:
			if window != nil {
				window.Destroy()
				glfw.Terminate()
			}
			os.Exit(code)
		}
	}
}

func setup() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %v", err)
	}
	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	w, err := glfw.CreateWindow(1, 1, "gltest", nil, nil)
	if err != nil {
		glfw.Terminate()
		return fmt.Errorf("create window: %v", err)
	}
	w.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		w.Destroy()
		glfw.Terminate()
		return fmt.Errorf("gl init: %v", err)
	}
	window = w
	return nil
}

// Do runs f on the GL thread, skipping the test when no context is available.
// f must not call t.Fatal or t.Skip; return results and assert after Do.
func Do(t testing.TB, f func()) {
	t.Helper()
	if initErr != nil {
		t.Skipf("no OpenGL 4.1 context: %v", initErr)
	}
	done := make(chan struct{})
	calls <- func() {
		defer close(done)
		f()
	}
	<-done
}
