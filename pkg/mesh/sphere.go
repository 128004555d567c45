package mesh

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/meshgen/pkg/math"
)

// Sphere generates a UV sphere centered on the origin.
//
// The latitude/longitude grid has divisions+1 rings and divisions+1 sectors;
// the last sector duplicates the first so cells index without wraparound.
// Each cell is split into (current, current+1, next) and
// (current+1, next+1, next), where next is the same sector one ring down.
// This winds counter-clockwise seen from outside; the classic
// (current, next, current+1) ordering would face inward.
func Sphere(radius float32, divisions int) (*Buffer, error) {
	if err := checkDimension("sphere", "radius", radius); err != nil {
		return nil, err
	}
	if err := checkCount("sphere", "divisions", divisions); err != nil {
		return nil, err
	}

	rings, sectors := divisions, divisions
	if err := checkVertexCount("sphere", (rings+1)*(sectors+1)); err != nil {
		return nil, err
	}
	radsPerRing := math32.Pi / float32(rings)
	radsPerSector := 2 * math32.Pi / float32(sectors)

	b := newBuilder((rings+1)*(sectors+1), rings*sectors*6, math.Vec3{X: radius, Y: radius, Z: radius})

	for ring := 0; ring <= rings; ring++ {
		sinTheta, cosTheta := math32.Sincos(float32(ring) * radsPerRing)
		for sector := 0; sector <= sectors; sector++ {
			sinPhi, cosPhi := math32.Sincos(float32(sector) * radsPerSector)

			p := math.Vec3{
				X: radius * sinTheta * cosPhi,
				Y: radius * cosTheta,
				Z: radius * sinTheta * sinPhi,
			}
			uv := math.Vec2{X: float32(sector) / float32(sectors), Y: float32(ring) / float32(rings)}
			b.vertex(p, p.Normalize(), uv)
		}
	}

	for ring := 0; ring < rings; ring++ {
		for sector := 0; sector < sectors; sector++ {
			current := uint32(ring*(sectors+1) + sector)
			next := current + uint32(sectors+1)

			b.triangle(current, current+1, next)
			b.triangle(current+1, next+1, next)
		}
	}

	return b.finish(), nil
}
