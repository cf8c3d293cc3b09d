package graphics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestCameraProjection(t *testing.T) {
	c := NewCamera(640, 480)
	if c.FOV != 45 || c.NearPlane != 0.1 || c.FarPlane != 100 {
		t.Fatalf("camera = %+v, want fov 45 near 0.1 far 100", *c)
	}

	want := mgl32.Perspective(mgl32.DegToRad(45), 640.0/480.0, 0.1, 100)
	if got := c.GetProjectionMatrix(); !got.ApproxEqual(want) {
		t.Errorf("projection = %v, want %v", got, want)
	}
}

func TestCameraViewport(t *testing.T) {
	c := NewCamera(800, 400)
	if c.AspectRatio != 2 {
		t.Fatalf("aspect = %v, want 2", c.AspectRatio)
	}

	// minimized windows report 0x0; keep the last usable aspect
	c.SetViewport(0, 0)
	if c.AspectRatio != 2 {
		t.Errorf("aspect after 0x0 = %v, want 2", c.AspectRatio)
	}

	c.SetViewport(300, 600)
	if c.AspectRatio != 0.5 {
		t.Errorf("aspect = %v, want 0.5", c.AspectRatio)
	}

	if z := NewCamera(0, 0); z.AspectRatio != 1 {
		t.Errorf("aspect for 0x0 camera = %v, want 1", z.AspectRatio)
	}
}
