package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Phase of the frame loop.
type Phase int

const (
	Idle Phase = iota
	Running
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Running:
		return "running"
	default:
		return "unknown"
	}
}

const (
	// RotationSpeed scales the accumulated rotation into the angle used on screen.
	RotationSpeed  = 0.3
	CameraDistance = 6.0
)

// State is the whole mutable frame state. It is passed by value and
// replaced on every tick.
type State struct {
	Phase    Phase
	Last     float64 // timestamp of the previous tick, seconds
	Rotation float64 // accumulated seconds
}

// Frame is what the renderer needs to draw one tick.
type Frame struct {
	Timestamp float64
	Elapsed   float64
	Rotation  float64
}

// Tick consumes a timestamp in seconds. The returned Frame carries the
// rotation to draw with; the returned State has the elapsed time added.
// Last starts at zero, so the first tick's elapsed time is the timestamp itself.
func (s State) Tick(timestamp float64) (Frame, State) {
	elapsed := timestamp - s.Last
	if elapsed < 0 {
		elapsed = 0
	}

	frame := Frame{
		Timestamp: timestamp,
		Elapsed:   elapsed,
		Rotation:  s.Rotation,
	}

	next := State{
		Phase:    Running,
		Last:     timestamp,
		Rotation: s.Rotation + elapsed,
	}
	return frame, next
}

// ModelView places the cube in front of the camera and spins it about Y then Z.
func ModelView(rotation float64) mgl32.Mat4 {
	angle := float32(rotation * RotationSpeed)
	mv := mgl32.Ident4()
	mv = mv.Mul4(mgl32.Translate3D(0, 0, -CameraDistance))
	mv = mv.Mul4(mgl32.HomogRotate3DY(angle))
	mv = mv.Mul4(mgl32.HomogRotate3DZ(angle))
	return mv
}

// NormalMatrix is the inverse-transpose of the model-view matrix.
func NormalMatrix(modelView mgl32.Mat4) mgl32.Mat4 {
	return modelView.Inv().Transpose()
}
