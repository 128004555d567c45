package mesh

import "github.com/Faultbox/meshgen/pkg/math"

// Plane generates a single upward-facing quad centered on the origin.
// Width runs along X and length along Z.
//
// The triangles are {0,2,1} and {0,3,2}, both counter-clockwise seen from
// above. The second is the reverse of the {0,2,3} ordering sometimes used for
// this layout, which would face down.
func Plane(length, width float32) (*Buffer, error) {
	if err := checkDimension("plane", "length", length); err != nil {
		return nil, err
	}
	if err := checkDimension("plane", "width", width); err != nil {
		return nil, err
	}

	hw, hl := width/2, length/2
	b := newBuilder(4, 6, math.Vec3{X: width, Y: 0, Z: length})

	b.vertex(math.Vec3{X: hw, Y: 0, Z: -hl}, math.Vec3Up, math.Vec2{X: 1, Y: 1})  // top right
	b.vertex(math.Vec3{X: hw, Y: 0, Z: hl}, math.Vec3Up, math.Vec2{X: 1, Y: 0})   // bottom right
	b.vertex(math.Vec3{X: -hw, Y: 0, Z: hl}, math.Vec3Up, math.Vec2{X: 0, Y: 0})  // bottom left
	b.vertex(math.Vec3{X: -hw, Y: 0, Z: -hl}, math.Vec3Up, math.Vec2{X: 0, Y: 1}) // top left

	b.triangle(0, 2, 1)
	b.triangle(0, 3, 2)

	return b.finish(), nil
}
