package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Faultbox/meshgen/internal/recipe"
)

// splitParams separates key=value parameters from flag arguments, so
// parameters and flags may be given in any order.
func splitParams(args []string) (params, flags []string) {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if strings.HasPrefix(a, "-") {
			flags = append(flags, a)
			// Flag value given as a separate argument
			if !strings.Contains(a, "=") && i+1 < len(args) {
				i++
				flags = append(flags, args[i])
			}
			continue
		}
		params = append(params, a)
	}
	return params, flags
}

func parseFloats(s string, n int) ([]float32, error) {
	fields := strings.Split(s, ",")
	if len(fields) != n {
		return nil, fmt.Errorf("%q: expected %d comma-separated numbers", s, n)
	}
	out := make([]float32, n)
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 32)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", s, err)
		}
		out[i] = float32(v)
	}
	return out, nil
}

func parseVec3(s string) ([3]float32, error) {
	f, err := parseFloats(s, 3)
	if err != nil {
		return [3]float32{}, err
	}
	return [3]float32{f[0], f[1], f[2]}, nil
}

func parseRotation(s string) (*recipe.Rotation, error) {
	f, err := parseFloats(s, 4)
	if err != nil {
		return nil, err
	}
	return &recipe.Rotation{Degrees: f[0], Axis: [3]float32{f[1], f[2], f[3]}}, nil
}

func fmtVec(v [3]float32) string {
	return fmt.Sprintf("(%.3g, %.3g, %.3g)", v[0], v[1], v[2])
}
