package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// Config holds the window and asset settings for a run.
type Config struct {
	Width       int
	Height      int
	Title       string
	TexturePath string
	// ShaderDir overrides the embedded shader pair when set.
	ShaderDir   string
	VSync       bool
	FPSInterval time.Duration
}

func Default() Config {
	return Config{
		Width:       640,
		Height:      480,
		Title:       "texcube",
		TexturePath: "assets/cubetexture.png",
		VSync:       true,
		FPSInterval: time.Second,
	}
}

// Parse reads command line flags on top of Default.
func Parse(args []string) (Config, error) {
	cfg := Default()

	fs := flag.NewFlagSet("texcube", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.IntVar(&cfg.Width, "width", cfg.Width, "window width in pixels")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "window height in pixels")
	fs.StringVar(&cfg.Title, "title", cfg.Title, "window title")
	fs.StringVar(&cfg.TexturePath, "texture", cfg.TexturePath, "texture image path or http(s) URL")
	fs.StringVar(&cfg.ShaderDir, "shaders", cfg.ShaderDir, "directory containing cube.vert and cube.frag")
	fs.BoolVar(&cfg.VSync, "vsync", cfg.VSync, "wait for vertical sync on swap")
	fs.DurationVar(&cfg.FPSInterval, "fps-interval", cfg.FPSInterval, "how often to log frame rate, 0 disables")

	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("could not parse flags: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return Config{}, fmt.Errorf("window size must be positive, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.TexturePath == "" {
		return Config{}, fmt.Errorf("texture path must not be empty")
	}
	return cfg, nil
}
