package mesh

import "github.com/Faultbox/meshgen/pkg/math"

// Pyramid generates a square pyramid with its base centered on the origin at
// y=0 and its apex at (0, height, 0).
//
// The four sides (front, right, back, left) each carry their own copy of the
// apex so every face has a distinct normal. 12 side vertices are followed by
// the 4 base vertices.
func Pyramid(baseLength, height float32) (*Buffer, error) {
	if err := checkDimension("pyramid", "base length", baseLength); err != nil {
		return nil, err
	}
	if err := checkDimension("pyramid", "height", height); err != nil {
		return nil, err
	}

	hb := baseLength / 2
	apex := math.Vec3{X: 0, Y: height, Z: 0}
	// base corners, counter-clockwise seen from above
	fl := math.Vec3{X: -hb, Y: 0, Z: hb}
	fr := math.Vec3{X: hb, Y: 0, Z: hb}
	br := math.Vec3{X: hb, Y: 0, Z: -hb}
	bl := math.Vec3{X: -hb, Y: 0, Z: -hb}

	b := newBuilder(16, 18, math.Vec3{X: baseLength, Y: height, Z: baseLength})

	for _, side := range [4][2]math.Vec3{
		{fl, fr}, // front
		{fr, br}, // right
		{br, bl}, // back
		{bl, fl}, // left
	} {
		b.flatTriangle(apex, side[0], side[1], faceNormal(apex, side[0], side[1]))
	}
	b.quad(bottomSquare(hb, hb), math.Vec3Down)

	return b.finish(), nil
}
