package graphics

import (
	"errors"
	"fmt"
)

// ErrContextUnavailable is returned when no window or GL context could be created.
var ErrContextUnavailable = errors.New("graphics context unavailable")

// CompileError carries the compiler log of a shader stage that failed to compile.
type CompileError struct {
	Stage Stage
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("failed to compile %s shader: %s", e.Stage, e.Log)
}

// LinkError carries the linker log of a program that failed to link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("failed to link program: %s", e.Log)
}
