package mesh

import "github.com/Faultbox/meshgen/pkg/math"

// Rotate rotates every vertex of b by radians around axis (right-hand rule),
// in place. Positions are transformed as points and normals as directions.
// Normals are not renormalized. A nil or empty buffer, or a zero axis, is
// left untouched.
func Rotate(b *Buffer, radians float32, axis math.Vec3) {
	if b.VertexCount() == 0 || axis == math.Vec3Zero {
		return
	}
	Transform(b, math.RotateAxis(axis, radians))
}

// Translate moves every vertex position of b by offset, in place. Normals and
// texture coordinates are unaffected.
func Translate(b *Buffer, offset math.Vec3) {
	if b.VertexCount() == 0 {
		return
	}
	for i := range b.Vertices {
		v := &b.Vertices[i]
		v.Position[0] += offset.X
		v.Position[1] += offset.Y
		v.Position[2] += offset.Z
	}
}

// Transform applies an arbitrary matrix to b in place: positions with w=1,
// normals with w=0. Callers passing non-rigid matrices are responsible for
// fixing up normals afterwards.
func Transform(b *Buffer, m math.Mat4) {
	if b.VertexCount() == 0 {
		return
	}
	for i := range b.Vertices {
		v := &b.Vertices[i]
		v.Position = m.TransformPoint(math.V3(v.Position)).Array()
		v.Normal = m.TransformDirection(math.V3(v.Normal)).Array()
	}
}
