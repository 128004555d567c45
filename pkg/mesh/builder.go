package mesh

import "github.com/Faultbox/meshgen/pkg/math"

// Standard texture coordinates for quads (counter-clockwise from the
// bottom-left corner) and for triangles (apex, left, right).
var (
	quadUV     = [4]math.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	triangleUV = [3]math.Vec2{{X: 0.5, Y: 1}, {X: 0, Y: 0}, {X: 1, Y: 0}}
)

// builder appends vertices and triangles to a buffer under construction.
type builder struct {
	buf *Buffer
}

func newBuilder(vertexCap, indexCap int, extent math.Vec3) *builder {
	return &builder{buf: &Buffer{
		Vertices: make([]Vertex, 0, vertexCap),
		Indices:  make([]uint32, 0, indexCap),
		Extent:   extent,
	}}
}

// next returns the index the next appended vertex will get.
func (b *builder) next() uint32 {
	return uint32(len(b.buf.Vertices))
}

func (b *builder) vertex(p, n math.Vec3, uv math.Vec2) uint32 {
	idx := b.next()
	b.buf.Vertices = append(b.buf.Vertices, Vertex{
		Position: p.Array(),
		Normal:   n.Array(),
		TexCoord: uv.Array(),
	})
	return idx
}

func (b *builder) triangle(i0, i1, i2 uint32) {
	b.buf.Indices = append(b.buf.Indices, i0, i1, i2)
}

// quad appends four vertices sharing one normal. Corners go counter-clockwise
// when seen from the side the normal points to, starting bottom-left.
// Triangulated as {0,1,3},{1,2,3}.
func (b *builder) quad(corners [4]math.Vec3, normal math.Vec3) {
	base := b.next()
	for i, c := range corners {
		b.vertex(c, normal, quadUV[i])
	}
	b.triangle(base, base+1, base+3)
	b.triangle(base+1, base+2, base+3)
}

// flatTriangle appends three vertices sharing one normal. apex, left and right
// go counter-clockwise when seen from the side the normal points to.
func (b *builder) flatTriangle(apex, left, right, normal math.Vec3) {
	base := b.next()
	b.vertex(apex, normal, triangleUV[0])
	b.vertex(left, normal, triangleUV[1])
	b.vertex(right, normal, triangleUV[2])
	b.triangle(base, base+1, base+2)
}

func (b *builder) finish() *Buffer {
	return b.buf
}

// faceNormal returns the unit normal of the counter-clockwise triangle a, b, c.
func faceNormal(a, b, c math.Vec3) math.Vec3 {
	return b.Sub(a).Cross(c.Sub(a)).Normalize()
}
