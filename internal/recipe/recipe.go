// Package recipe assembles multi-part props from primitive shapes.
//
// A recipe is a YAML document listing parts. Each part names a generator,
// its parameters and an ordered list of rigid transforms baked into the
// generated vertices:
//
//	name: lamp
//	parts:
//	  - name: arm
//	    shape: cylinder
//	    radius: 0.5
//	    height: 3.5
//	    transforms:
//	      - rotate: {degrees: 90, axis: [1, 0, 0]}
//	      - translate: [0, 12, 0]
package recipe

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chewxy/math32"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/meshgen/pkg/math"
)

// Recipe errors.
var (
	ErrEmptyRecipe   = errors.New("recipe has no parts")
	ErrUnknownShape  = errors.New("unknown shape")
	ErrBadTransform  = errors.New("invalid transform")
	ErrDuplicatePart = errors.New("duplicate part name")
	ErrBadName       = errors.New("invalid name")
)

//go:embed default.yaml
var defaultRecipe []byte

// Recipe describes a prop built from several primitive parts.
type Recipe struct {
	Name  string     `yaml:"name"`
	Parts []PartSpec `yaml:"parts"`
}

// PartSpec describes one generated part. Only the parameters used by the
// chosen shape are read.
type PartSpec struct {
	Name  string `yaml:"name"`
	Shape string `yaml:"shape"`

	Length      float32 `yaml:"length,omitempty"`
	Width       float32 `yaml:"width,omitempty"`
	Height      float32 `yaml:"height,omitempty"`
	Radius      float32 `yaml:"radius,omitempty"`
	InnerRadius float32 `yaml:"inner_radius,omitempty"`
	OuterRadius float32 `yaml:"outer_radius,omitempty"`
	BaseLength  float32 `yaml:"base_length,omitempty"`
	Segments    int     `yaml:"segments,omitempty"`  // 0 = use default
	Divisions   int     `yaml:"divisions,omitempty"` // 0 = use default

	Transforms []Transform `yaml:"transforms,omitempty"`
}

// Transform is a single step; exactly one of Translate or Rotate is set.
type Transform struct {
	Translate *[3]float32 `yaml:"translate,omitempty"`
	Rotate    *Rotation   `yaml:"rotate,omitempty"`
}

// Rotation is a rotation in degrees about an axis (right-hand rule).
type Rotation struct {
	Degrees float32    `yaml:"degrees"`
	Axis    [3]float32 `yaml:"axis"`
}

// Parse decodes a recipe and validates it. Unknown keys are rejected so
// that misspelled parameters do not silently fall back to zero.
func Parse(data []byte) (*Recipe, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var r Recipe
	if err := dec.Decode(&r); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyRecipe
		}
		return nil, fmt.Errorf("decoding recipe: %w", err)
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &r, nil
}

// Load reads and parses a recipe file.
func Load(path string) (*Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading recipe: %w", err)
	}
	r, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}

// Default returns the built-in candle holder and lamp scene.
func Default() *Recipe {
	r, err := Parse(defaultRecipe)
	if err != nil {
		panic(fmt.Sprintf("embedded recipe: %v", err))
	}
	return r
}

// Validate checks structure: part names, shapes and transforms. Generator
// parameters are checked when the part is built.
func (r *Recipe) Validate() error {
	if len(r.Parts) == 0 {
		return ErrEmptyRecipe
	}

	if r.Name != "" {
		if err := checkName(r.Name); err != nil {
			return fmt.Errorf("recipe: %w", err)
		}
	}

	seen := make(map[string]bool, len(r.Parts))
	for i, p := range r.Parts {
		if p.Name == "" {
			return fmt.Errorf("part %d: missing name", i)
		}
		if err := checkName(p.Name); err != nil {
			return fmt.Errorf("part %d: %w", i, err)
		}
		if seen[p.Name] {
			return fmt.Errorf("part %q: %w", p.Name, ErrDuplicatePart)
		}
		seen[p.Name] = true

		if _, ok := LookupShape(p.Shape); !ok {
			return fmt.Errorf("part %q: %w %q", p.Name, ErrUnknownShape, p.Shape)
		}
		for j, t := range p.Transforms {
			if err := t.validate(); err != nil {
				return fmt.Errorf("part %q transform %d: %w", p.Name, j, err)
			}
		}
	}
	return nil
}

func (t Transform) validate() error {
	switch {
	case t.Translate != nil && t.Rotate != nil:
		return fmt.Errorf("%w: translate and rotate in one step", ErrBadTransform)
	case t.Translate == nil && t.Rotate == nil:
		return fmt.Errorf("%w: empty step", ErrBadTransform)
	case t.Translate != nil && !math.V3(*t.Translate).IsFinite():
		return fmt.Errorf("%w: non-finite offset", ErrBadTransform)
	case t.Rotate != nil && t.Rotate.Axis == [3]float32{}:
		return fmt.Errorf("%w: zero rotation axis", ErrBadTransform)
	case t.Rotate != nil && !math.V3(t.Rotate.Axis).IsFinite():
		return fmt.Errorf("%w: non-finite rotation axis", ErrBadTransform)
	case t.Rotate != nil && (math32.IsNaN(t.Rotate.Degrees) || math32.IsInf(t.Rotate.Degrees, 0)):
		return fmt.Errorf("%w: non-finite angle", ErrBadTransform)
	}
	return nil
}

// checkName rejects names that cannot be used as a file name component.
// Exported files are named after recipes and parts.
func checkName(name string) error {
	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return fmt.Errorf("%w %q: must not contain path separators", ErrBadName, name)
	}
	return nil
}
