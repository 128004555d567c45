package mesh

import "github.com/Faultbox/meshgen/pkg/math"

// Cube generates a box centered on the XZ origin with its base at y=0.
// Width runs along X, height along Y and length along Z.
//
// Each face is an independent quad with its own outward normal, giving
// 24 vertices and 36 indices.
func Cube(length, width, height float32) (*Buffer, error) {
	for _, d := range []struct {
		name string
		v    float32
	}{{"length", length}, {"width", width}, {"height", height}} {
		if err := checkDimension("cube", d.name, d.v); err != nil {
			return nil, err
		}
	}

	hw, hl, h := width/2, length/2, height
	b := newBuilder(24, 36, math.Vec3{X: width, Y: height, Z: length})

	// front
	b.quad([4]math.Vec3{
		{X: -hw, Y: 0, Z: hl}, {X: hw, Y: 0, Z: hl}, {X: hw, Y: h, Z: hl}, {X: -hw, Y: h, Z: hl},
	}, math.Vec3Front)
	// right
	b.quad([4]math.Vec3{
		{X: hw, Y: 0, Z: hl}, {X: hw, Y: 0, Z: -hl}, {X: hw, Y: h, Z: -hl}, {X: hw, Y: h, Z: hl},
	}, math.Vec3Right)
	// back
	b.quad([4]math.Vec3{
		{X: hw, Y: 0, Z: -hl}, {X: -hw, Y: 0, Z: -hl}, {X: -hw, Y: h, Z: -hl}, {X: hw, Y: h, Z: -hl},
	}, math.Vec3Back)
	// left
	b.quad([4]math.Vec3{
		{X: -hw, Y: 0, Z: -hl}, {X: -hw, Y: 0, Z: hl}, {X: -hw, Y: h, Z: hl}, {X: -hw, Y: h, Z: -hl},
	}, math.Vec3Left)
	// top
	b.quad([4]math.Vec3{
		{X: -hw, Y: h, Z: hl}, {X: hw, Y: h, Z: hl}, {X: hw, Y: h, Z: -hl}, {X: -hw, Y: h, Z: -hl},
	}, math.Vec3Up)
	// bottom
	b.quad(bottomSquare(hw, hl), math.Vec3Down)

	return b.finish(), nil
}

// bottomSquare returns the corners of a y=0 rectangle ordered
// counter-clockwise when seen from below.
func bottomSquare(hw, hl float32) [4]math.Vec3 {
	return [4]math.Vec3{
		{X: -hw, Y: 0, Z: -hl}, {X: hw, Y: 0, Z: -hl}, {X: hw, Y: 0, Z: hl}, {X: -hw, Y: 0, Z: hl},
	}
}
