package mesh

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/meshgen/pkg/math"
)

// Torus generates a ring torus around the Y axis, centered on the origin.
// outerRadius is the distance from the center to the tube center and
// innerRadius the tube radius.
//
// The grid is segments x segments vertices with no duplicated seam: cell
// neighbors wrap with modular indexing.
func Torus(outerRadius, innerRadius float32, segments int) (*Buffer, error) {
	if err := checkDimension("torus", "outer radius", outerRadius); err != nil {
		return nil, err
	}
	if err := checkDimension("torus", "inner radius", innerRadius); err != nil {
		return nil, err
	}
	if err := checkCount("torus", "segments", segments); err != nil {
		return nil, err
	}

	major, minor := segments, segments
	if err := checkVertexCount("torus", major*minor); err != nil {
		return nil, err
	}
	majorRadsPerSeg := 2 * math32.Pi / float32(major)
	minorRadsPerSeg := 2 * math32.Pi / float32(minor)

	extent := math.Vec3{X: outerRadius + innerRadius, Y: innerRadius, Z: outerRadius + innerRadius}
	b := newBuilder(major*minor, major*minor*6, extent)

	for i := 0; i < major; i++ {
		sinTheta, cosTheta := math32.Sincos(majorRadsPerSeg * float32(i))
		for j := 0; j < minor; j++ {
			sinPhi, cosPhi := math32.Sincos(minorRadsPerSeg * float32(j))

			ring := outerRadius + innerRadius*cosPhi
			b.vertex(
				math.Vec3{X: ring * cosTheta, Y: innerRadius * sinPhi, Z: ring * sinTheta},
				math.Vec3{X: cosTheta * cosPhi, Y: sinPhi, Z: sinTheta * cosPhi},
				math.Vec2{X: float32(i) / float32(major), Y: float32(j) / float32(minor)},
			)
		}
	}

	for i := 0; i < major; i++ {
		for j := 0; j < minor; j++ {
			current := torusIndex(i, j, major, minor)
			nextMinor := torusIndex(i, j+1, major, minor)
			nextMajor := torusIndex(i+1, j, major, minor)
			nextBoth := torusIndex(i+1, j+1, major, minor)

			b.triangle(current, nextMinor, nextMajor)
			b.triangle(nextMinor, nextBoth, nextMajor)
		}
	}

	return b.finish(), nil
}

// torusIndex maps grid coordinates to a vertex index, wrapping both axes.
func torusIndex(i, j, major, minor int) uint32 {
	return uint32((i%major)*minor + j%minor)
}
