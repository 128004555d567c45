// Package config handles meshgen configuration loading and management.
package config

import (
	"fmt"
	"slices"

	"github.com/Faultbox/meshgen/pkg/formats"
)

// Supported export formats.
const (
	FormatOBJ  = formats.FormatOBJ
	FormatGLTF = formats.FormatGLTF
	FormatGLB  = formats.FormatGLB
	FormatPMSH = formats.FormatPMSH
)

// Formats lists every supported export format.
var Formats = []string{FormatOBJ, FormatGLTF, FormatGLB, FormatPMSH}

// ScreenshotFormats lists the preview screenshot image formats.
var ScreenshotFormats = []string{"png", "bmp"}

// Config holds all settings.
type Config struct {
	Mesh    MeshConfig    `yaml:"mesh"`
	Output  OutputConfig  `yaml:"output"`
	Preview PreviewConfig `yaml:"preview"`
	Logging LoggingConfig `yaml:"logging"`

	source string // file loaded by Load, if any
}

// MeshConfig holds generator defaults used when a recipe omits them.
type MeshConfig struct {
	Segments  int `yaml:"segments"`  // Cylinder and torus resolution
	Divisions int `yaml:"divisions"` // Sphere resolution
}

// OutputConfig holds export settings.
type OutputConfig struct {
	Dir    string `yaml:"dir"`
	Format string `yaml:"format"` // obj, gltf, glb or pmsh
}

// PreviewConfig holds preview window settings.
type PreviewConfig struct {
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
	Fullscreen bool       `yaml:"fullscreen"`
	VSync      bool       `yaml:"vsync"`
	Wireframe  bool       `yaml:"wireframe"`
	Background [3]float32 `yaml:"background"`

	ScreenshotFormat string `yaml:"screenshot_format"` // png or bmp
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Mesh: MeshConfig{
			Segments:  32,
			Divisions: 24,
		},
		Output: OutputConfig{
			Dir:    ".",
			Format: FormatOBJ,
		},
		Preview: PreviewConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			Wireframe:  false,
			Background: [3]float32{0.12, 0.12, 0.14},

			ScreenshotFormat: "png",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks values that would otherwise fail deep inside generation
// or export.
func (c *Config) Validate() error {
	if c.Mesh.Segments <= 0 {
		return fmt.Errorf("mesh.segments must be positive, got %d", c.Mesh.Segments)
	}
	if c.Mesh.Divisions <= 0 {
		return fmt.Errorf("mesh.divisions must be positive, got %d", c.Mesh.Divisions)
	}
	if !slices.Contains(Formats, c.Output.Format) {
		return fmt.Errorf("output.format %q not one of %v", c.Output.Format, Formats)
	}
	if c.Preview.Width <= 0 || c.Preview.Height <= 0 {
		return fmt.Errorf("preview size %dx%d must be positive", c.Preview.Width, c.Preview.Height)
	}
	if !slices.Contains(ScreenshotFormats, c.Preview.ScreenshotFormat) {
		return fmt.Errorf("preview.screenshot_format %q not one of %v", c.Preview.ScreenshotFormat, ScreenshotFormats)
	}
	return nil
}
