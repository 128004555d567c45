// meshview opens an interactive preview of a recipe or an exported mesh.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/meshgen/internal/config"
	"github.com/Faultbox/meshgen/internal/engine/preview"
	"github.com/Faultbox/meshgen/internal/logger"
	"github.com/Faultbox/meshgen/internal/recipe"
	"github.com/Faultbox/meshgen/pkg/formats"
	"github.com/Faultbox/meshgen/pkg/mesh"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	logger.Debug("config loaded", zap.String("file", cfg.Source()))
	defer logger.Sync()

	logger.Info("=== meshview ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	source := "built-in recipe"
	if args := config.Args(); len(args) > 0 {
		source = args[0]
	}

	parts, err := loadParts(cfg, config.Args())
	if err != nil {
		logger.Error("failed to load meshes", zap.String("source", source), zap.Error(err))
		os.Exit(1)
	}

	p, err := preview.New(preview.Config{
		Title:      "meshview - " + source,
		Width:      cfg.Preview.Width,
		Height:     cfg.Preview.Height,
		Fullscreen: cfg.Preview.Fullscreen,
		VSync:      cfg.Preview.VSync,
		Wireframe:  cfg.Preview.Wireframe,
		Background: cfg.Preview.Background,

		ScreenshotDir:    cfg.Output.Dir,
		ScreenshotFormat: cfg.Preview.ScreenshotFormat,

		Open: func(path string) ([]mesh.Part, error) {
			return loadParts(cfg, []string{path})
		},
	}, parts)
	if err != nil {
		logger.Error("failed to open preview", zap.Error(err))
		os.Exit(1)
	}
	defer p.Close()

	if err := p.Run(); err != nil {
		logger.Error("preview error", zap.Error(err))
		return
	}

	logger.Info("preview closed normally")
}

// loadParts builds a recipe, or reads an exported file, or falls back to the
// built-in scene when no argument is given.
func loadParts(cfg *config.Config, args []string) ([]mesh.Part, error) {
	r := recipe.Default()
	if len(args) > 0 {
		switch strings.ToLower(filepath.Ext(args[0])) {
		case ".yaml", ".yml":
			var err error
			if r, err = recipe.Load(args[0]); err != nil {
				return nil, err
			}
		default:
			return formats.Load(args[0])
		}
	}

	return r.Build(context.Background(), recipe.Defaults{
		Segments:  cfg.Mesh.Segments,
		Divisions: cfg.Mesh.Divisions,
	})
}
