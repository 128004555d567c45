package mesh

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/meshgen/pkg/math"
)

// Cylinder generates a capped cylinder standing on y=0 with its axis along +Y.
//
// The buffer holds three sub-meshes in order: the bottom cap fan
// (1 center + segments rim vertices), the top cap fan (same layout), and the
// lateral body as segments+2 (bottom, top) vertex pairs. The body repeats the
// first angles past a full turn so strip indexing never wraps.
func Cylinder(radius, height float32, segments int) (*Buffer, error) {
	if err := checkDimension("cylinder", "radius", radius); err != nil {
		return nil, err
	}
	if err := checkDimension("cylinder", "height", height); err != nil {
		return nil, err
	}
	if err := checkCount("cylinder", "segments", segments); err != nil {
		return nil, err
	}

	radsPerSeg := 2 * math32.Pi / float32(segments)
	vertexCount := 2*(segments+1) + 2*(segments+2)
	indexCount := 2*3*segments + 6*(segments+1)
	b := newBuilder(vertexCount, indexCount, math.Vec3{X: radius, Y: height, Z: radius})

	cylinderCap(b, radius, 0, segments, radsPerSeg, math.Vec3Down)
	cylinderCap(b, radius, height, segments, radsPerSeg, math.Vec3Up)

	// body
	first := b.next()
	for i := 0; i <= segments+1; i++ {
		sin, cos := math32.Sincos(radsPerSeg * float32(i))
		n := math.Vec3{X: cos, Y: 0, Z: sin}
		u := float32(i) / float32(segments)
		b.vertex(math.Vec3{X: cos * radius, Y: 0, Z: sin * radius}, n, math.Vec2{X: u, Y: 0})
		b.vertex(math.Vec3{X: cos * radius, Y: height, Z: sin * radius}, n, math.Vec2{X: u, Y: 1})
	}
	for i := 0; i <= segments; i++ {
		k := first + uint32(2*i)
		b.triangle(k, k+1, k+3)
		b.triangle(k+3, k+2, k)
	}

	return b.finish(), nil
}

// cylinderCap appends a disk fan at height y. The fan winds so the front face
// points along normal.
func cylinderCap(b *builder, radius, y float32, segments int, radsPerSeg float32, normal math.Vec3) {
	center := b.vertex(math.Vec3{X: 0, Y: y, Z: 0}, normal, math.Vec2{X: 0.5, Y: 0.5})
	for i := 0; i < segments; i++ {
		sin, cos := math32.Sincos(radsPerSeg * float32(i))
		b.vertex(
			math.Vec3{X: cos * radius, Y: y, Z: sin * radius},
			normal,
			math.Vec2{X: cos*0.5 + 0.5, Y: sin*0.5 + 0.5},
		)
	}

	for i := 0; i < segments; i++ {
		rim := center + 1 + uint32(i)
		next := center + 1 + uint32((i+1)%segments)
		if normal.Y < 0 {
			b.triangle(center, rim, next)
		} else {
			b.triangle(center, next, rim)
		}
	}
}
