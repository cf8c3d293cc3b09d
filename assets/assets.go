// Package assets embeds the default shader pair.
package assets

import (
	"embed"
	"io/fs"
	"os"
)

const (
	VertShader = "shaders/cube.vert"
	FragShader = "shaders/cube.frag"
)

//go:embed shaders/cube.vert shaders/cube.frag
var embedded embed.FS

// Shaders returns the embedded shaders, or dir when it is set. dir must
// contain the same shaders/ layout.
func Shaders(dir string) fs.FS {
	if dir == "" {
		return embedded
	}
	return os.DirFS(dir)
}
