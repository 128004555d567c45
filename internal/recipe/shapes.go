package recipe

import (
	"fmt"
	"strconv"

	"github.com/Faultbox/meshgen/pkg/mesh"
)

// Defaults supplies resolution for parts that leave it unset.
type Defaults struct {
	Segments  int
	Divisions int
}

// Shape describes one primitive generator.
type Shape struct {
	Name   string
	Params []string // parameter keys in generator order
	build  func(p PartSpec, d Defaults) (*mesh.Buffer, error)
}

// Shapes lists every available generator.
var Shapes = []Shape{
	{
		Name:   "cube",
		Params: []string{"length", "width", "height"},
		build: func(p PartSpec, _ Defaults) (*mesh.Buffer, error) {
			return mesh.Cube(p.Length, p.Width, p.Height)
		},
	},
	{
		Name:   "plane",
		Params: []string{"length", "width"},
		build: func(p PartSpec, _ Defaults) (*mesh.Buffer, error) {
			return mesh.Plane(p.Length, p.Width)
		},
	},
	{
		Name:   "pyramid",
		Params: []string{"base_length", "height"},
		build: func(p PartSpec, _ Defaults) (*mesh.Buffer, error) {
			return mesh.Pyramid(p.BaseLength, p.Height)
		},
	},
	{
		Name:   "cylinder",
		Params: []string{"radius", "height", "segments"},
		build: func(p PartSpec, d Defaults) (*mesh.Buffer, error) {
			return mesh.Cylinder(p.Radius, p.Height, orDefault(p.Segments, d.Segments))
		},
	},
	{
		Name:   "sphere",
		Params: []string{"radius", "divisions"},
		build: func(p PartSpec, d Defaults) (*mesh.Buffer, error) {
			return mesh.Sphere(p.Radius, orDefault(p.Divisions, d.Divisions))
		},
	},
	{
		Name:   "torus",
		Params: []string{"outer_radius", "inner_radius", "segments"},
		build: func(p PartSpec, d Defaults) (*mesh.Buffer, error) {
			return mesh.Torus(p.OuterRadius, p.InnerRadius, orDefault(p.Segments, d.Segments))
		},
	},
}

// LookupShape finds a generator by name.
func LookupShape(name string) (Shape, bool) {
	for _, s := range Shapes {
		if s.Name == name {
			return s, true
		}
	}
	return Shape{}, false
}

func orDefault(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}

// SetParam assigns a parameter by its YAML key, parsing value from text.
// Used by the command line, where parameters arrive as key=value pairs.
func (p *PartSpec) SetParam(key, value string) error {
	switch key {
	case "segments", "divisions":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		if key == "segments" {
			p.Segments = n
		} else {
			p.Divisions = n
		}
		return nil
	}

	var dst *float32
	switch key {
	case "length":
		dst = &p.Length
	case "width":
		dst = &p.Width
	case "height":
		dst = &p.Height
	case "radius":
		dst = &p.Radius
	case "inner_radius":
		dst = &p.InnerRadius
	case "outer_radius":
		dst = &p.OuterRadius
	case "base_length":
		dst = &p.BaseLength
	default:
		return fmt.Errorf("unknown parameter %q", key)
	}

	f, err := strconv.ParseFloat(value, 32)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = float32(f)
	return nil
}
