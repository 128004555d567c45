package config

import "flag"

var (
	flagConfig    = flag.String("config", "", "Path to config file")
	flagDebug     = flag.Bool("debug", false, "Enable debug logging")
	flagOut       = flag.String("out", "", "Output directory")
	flagFormat    = flag.String("format", "", "Export format: obj, gltf, glb, pmsh")
	flagSegments  = flag.Int("segments", 0, "Default cylinder/torus segments")
	flagDivisions = flag.Int("divisions", 0, "Default sphere divisions")
	flagWireframe = flag.Bool("wireframe", false, "Preview in wireframe")
	flagWidth     = flag.Int("width", 0, "Preview window width")
	flagHeight    = flag.Int("height", 0, "Preview window height")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// Args returns the positional arguments left after flag parsing.
func Args() []string {
	return flag.Args()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagOut != "" {
		cfg.Output.Dir = *flagOut
	}
	if *flagFormat != "" {
		cfg.Output.Format = *flagFormat
	}
	if *flagSegments > 0 {
		cfg.Mesh.Segments = *flagSegments
	}
	if *flagDivisions > 0 {
		cfg.Mesh.Divisions = *flagDivisions
	}
	if *flagWireframe {
		cfg.Preview.Wireframe = true
	}
	if *flagWidth > 0 {
		cfg.Preview.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Preview.Height = *flagHeight
	}
}
