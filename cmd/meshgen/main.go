// meshgen is a CLI utility for generating primitive meshes and recipes.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/meshgen/internal/config"
	"github.com/Faultbox/meshgen/internal/logger"
	"github.com/Faultbox/meshgen/internal/recipe"
	"github.com/Faultbox/meshgen/pkg/formats"
	"github.com/Faultbox/meshgen/pkg/mesh"
)

func main() {
	config.ParseFlags()
	args := config.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = run(ctx, cfg, args[0], args[1:])
	stop()
	logger.Sync()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, command string, args []string) error {
	switch command {
	case "shapes":
		return cmdShapes()
	case "gen", "g":
		return cmdGen(cfg, args)
	case "recipe", "r":
		return cmdRecipe(ctx, cfg, args)
	case "info":
		return cmdInfo(args)
	case "save-config":
		return cmdSaveConfig(cfg, args)
	case "help", "-h", "--help":
		printUsage()
		return nil
	default:
		printUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

func printUsage() {
	fmt.Println(`meshgen - procedural primitive mesh generator

Usage:
  meshgen [flags] <command> [options]

Commands:
  shapes                                   List generators and their parameters
  gen <shape> [key=value...]               Generate one shape and export it
  recipe [file.yaml]                       Build a recipe (built-in scene if omitted)
  info <file.pmsh|file.gltf|file.glb>      Show mesh statistics
  save-config [path]                       Write the effective config

Flags:
  -out dir        Output directory
  -format f       obj, gltf, glb or pmsh
  -segments n     Default cylinder/torus segments
  -divisions n    Default sphere divisions
  -config path    Config file
  -debug          Debug logging

Examples:
  meshgen shapes
  meshgen gen cube length=2 width=1 height=3
  meshgen -format glb gen torus outer_radius=2 inner_radius=0.5 -rotate 90,1,0,0
  meshgen -out ./build recipe lamp.yaml
  meshgen info build/candles_floor.pmsh`)
}

func cmdShapes() error {
	for _, s := range recipe.Shapes {
		fmt.Printf("  %-10s %s\n", s.Name, strings.Join(s.Params, " "))
	}
	return nil
}

func cmdGen(cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return errors.New("usage: meshgen gen <shape> [key=value...] [-name n] [-rotate deg,x,y,z] [-translate x,y,z]")
	}

	spec := recipe.PartSpec{Name: args[0], Shape: args[0]}

	fs := flag.NewFlagSet("gen", flag.ContinueOnError)
	fs.StringVar(&spec.Name, "name", spec.Name, "Part and output file name")
	fs.Func("rotate", "Rotate by deg,x,y,z (repeatable, applied in order)", func(s string) error {
		rot, err := parseRotation(s)
		if err != nil {
			return err
		}
		spec.Transforms = append(spec.Transforms, recipe.Transform{Rotate: rot})
		return nil
	})
	fs.Func("translate", "Translate by x,y,z (repeatable, applied in order)", func(s string) error {
		v, err := parseVec3(s)
		if err != nil {
			return err
		}
		spec.Transforms = append(spec.Transforms, recipe.Transform{Translate: &v})
		return nil
	})

	params, flagArgs := splitParams(args[1:])
	if err := fs.Parse(flagArgs); err != nil {
		return err
	}
	for _, kv := range params {
		key, value, _ := strings.Cut(kv, "=")
		if err := spec.SetParam(key, value); err != nil {
			return err
		}
	}

	r := &recipe.Recipe{Name: spec.Name, Parts: []recipe.PartSpec{spec}}
	if err := r.Validate(); err != nil {
		return err
	}

	buf, err := spec.Build(defaults(cfg))
	if err != nil {
		return err
	}
	return export(cfg, spec.Name, []mesh.Part{{Name: spec.Name, Buffer: buf}})
}

func cmdRecipe(ctx context.Context, cfg *config.Config, args []string) error {
	r := recipe.Default()
	if len(args) > 0 {
		var err error
		if r, err = recipe.Load(args[0]); err != nil {
			return err
		}
	}

	parts, err := r.Build(ctx, defaults(cfg))
	if err != nil {
		return err
	}

	name := r.Name
	if name == "" {
		name = "recipe"
	}
	return export(cfg, name, parts)
}

func cmdInfo(args []string) error {
	if len(args) < 1 {
		return errors.New("usage: meshgen info <file.pmsh|file.gltf|file.glb>")
	}

	parts, err := formats.Load(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("File:  %s\n", args[0])
	fmt.Printf("Parts: %d\n", len(parts))
	fmt.Println()

	var totalVerts, totalTris int
	for _, p := range parts {
		lo, hi := p.Buffer.Bounds()
		fmt.Printf("  %-24s %8d verts %8d tris  extent %s  bounds %s .. %s\n",
			p.Name, p.Buffer.VertexCount(), p.Buffer.TriangleCount(),
			fmtVec(p.Buffer.Extent.Array()), fmtVec(lo.Array()), fmtVec(hi.Array()))
		totalVerts += p.Buffer.VertexCount()
		totalTris += p.Buffer.TriangleCount()
	}
	fmt.Println()
	fmt.Printf("Total: %d vertices, %d triangles\n", totalVerts, totalTris)
	return nil
}

func cmdSaveConfig(cfg *config.Config, args []string) error {
	if len(args) > 0 {
		if err := cfg.SaveTo(args[0]); err != nil {
			return err
		}
		fmt.Printf("Saved config to %s\n", args[0])
		return nil
	}
	path, err := cfg.Save()
	if err != nil {
		return err
	}
	fmt.Printf("Saved config to %s\n", path)
	return nil
}

func defaults(cfg *config.Config) recipe.Defaults {
	return recipe.Defaults{
		Segments:  cfg.Mesh.Segments,
		Divisions: cfg.Mesh.Divisions,
	}
}

func export(cfg *config.Config, name string, parts []mesh.Part) error {
	paths, err := formats.Export(cfg.Output.Dir, name, cfg.Output.Format, parts)
	if err != nil {
		return err
	}

	var verts, tris int
	for _, p := range parts {
		verts += p.Buffer.VertexCount()
		tris += p.Buffer.TriangleCount()
	}
	logger.Info("exported",
		zap.String("name", name),
		zap.String("format", cfg.Output.Format),
		zap.Int("parts", len(parts)),
		zap.Int("vertices", verts),
		zap.Int("triangles", tris))

	for _, p := range paths {
		fmt.Println(p)
	}
	return nil
}
