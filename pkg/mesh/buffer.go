// Package mesh generates triangle meshes for primitive shapes and applies
// rigid transforms to them.
//
// Every generator returns a self-contained Buffer: an interleaved vertex
// stream (position, normal, texture coordinate) plus a triangle index list.
// The vertex layout is the GPU contract consumed by the renderer:
//
//	offset  0: px py pz  (3 x float32)
//	offset 12: nx ny nz  (3 x float32)
//	offset 24: u  v      (2 x float32)
//
// Generators are pure and safe to call from multiple goroutines. Transform
// operators mutate the buffer they are given and need exclusive access to it.
package mesh

import (
	"fmt"

	"github.com/Faultbox/meshgen/pkg/math"
)

// Vertex layout constants.
const (
	FloatsPerVertex = 8
	VertexStride    = FloatsPerVertex * 4 // bytes

	PositionOffset = 0
	NormalOffset   = 3 * 4
	TexCoordOffset = 6 * 4
)

// Vertex is one interleaved vertex: 8 float32 values, 32 bytes.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	TexCoord [2]float32
}

// Buffer holds the complete mesh data ready for GPU upload.
type Buffer struct {
	Vertices []Vertex
	Indices  []uint32

	// Extent is the shape's bounding size (width, height, length) recorded at
	// generation time. It is informational only and not updated by transforms.
	Extent math.Vec3
}

// VertexCount returns the number of vertices.
func (b *Buffer) VertexCount() int {
	if b == nil {
		return 0
	}
	return len(b.Vertices)
}

// TriangleCount returns the number of triangles.
func (b *Buffer) TriangleCount() int {
	if b == nil {
		return 0
	}
	return len(b.Indices) / 3
}

// Width returns the recorded X extent.
func (b *Buffer) Width() float32 { return b.Extent.X }

// Height returns the recorded Y extent.
func (b *Buffer) Height() float32 { return b.Extent.Y }

// Length returns the recorded Z extent.
func (b *Buffer) Length() float32 { return b.Extent.Z }

// Positions returns a copy of every vertex position.
func (b *Buffer) Positions() []math.Vec3 {
	out := make([]math.Vec3, len(b.Vertices))
	for i := range b.Vertices {
		out[i] = math.V3(b.Vertices[i].Position)
	}
	return out
}

// Normals returns a copy of every vertex normal.
func (b *Buffer) Normals() []math.Vec3 {
	out := make([]math.Vec3, len(b.Vertices))
	for i := range b.Vertices {
		out[i] = math.V3(b.Vertices[i].Normal)
	}
	return out
}

// TexCoords returns a copy of every texture coordinate.
func (b *Buffer) TexCoords() []math.Vec2 {
	out := make([]math.Vec2, len(b.Vertices))
	for i := range b.Vertices {
		uv := b.Vertices[i].TexCoord
		out[i] = math.Vec2{X: uv[0], Y: uv[1]}
	}
	return out
}

// Interleaved flattens the vertices into px,py,pz,nx,ny,nz,u,v order.
func (b *Buffer) Interleaved() []float32 {
	out := make([]float32, 0, len(b.Vertices)*FloatsPerVertex)
	for _, v := range b.Vertices {
		out = append(out,
			v.Position[0], v.Position[1], v.Position[2],
			v.Normal[0], v.Normal[1], v.Normal[2],
			v.TexCoord[0], v.TexCoord[1],
		)
	}
	return out
}

// FromInterleaved rebuilds a buffer from a flat 8-float vertex stream.
func FromInterleaved(data []float32, indices []uint32, extent math.Vec3) (*Buffer, error) {
	if len(data)%FloatsPerVertex != 0 {
		return nil, fmt.Errorf("interleaved stream has %d floats, not a multiple of %d", len(data), FloatsPerVertex)
	}

	b := &Buffer{
		Vertices: make([]Vertex, len(data)/FloatsPerVertex),
		Indices:  append([]uint32(nil), indices...),
		Extent:   extent,
	}
	for i := range b.Vertices {
		f := data[i*FloatsPerVertex:]
		b.Vertices[i] = Vertex{
			Position: [3]float32{f[0], f[1], f[2]},
			Normal:   [3]float32{f[3], f[4], f[5]},
			TexCoord: [2]float32{f[6], f[7]},
		}
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// Bounds returns the axis-aligned bounding box of the current positions.
// An empty buffer returns zero vectors.
func (b *Buffer) Bounds() (lo, hi math.Vec3) {
	if b.VertexCount() == 0 {
		return math.Vec3{}, math.Vec3{}
	}
	lo = math.V3(b.Vertices[0].Position)
	hi = lo
	for _, v := range b.Vertices[1:] {
		p := math.V3(v.Position)
		lo = lo.Min(p)
		hi = hi.Max(p)
	}
	return lo, hi
}

// Clone returns a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	if b == nil {
		return nil
	}
	return &Buffer{
		Vertices: append([]Vertex(nil), b.Vertices...),
		Indices:  append([]uint32(nil), b.Indices...),
		Extent:   b.Extent,
	}
}

// Validate checks the structural invariants: whole triangles only and every
// index inside the vertex range.
func (b *Buffer) Validate() error {
	if b == nil {
		return fmt.Errorf("nil buffer")
	}
	if len(b.Indices)%3 != 0 {
		return fmt.Errorf("index count %d is not a multiple of 3", len(b.Indices))
	}
	n := uint32(len(b.Vertices))
	for i, idx := range b.Indices {
		if idx >= n {
			return fmt.Errorf("index %d at position %d out of range (vertex count %d)", idx, i, n)
		}
	}
	return nil
}

// Part is a named buffer, the unit exported and previewed as one object.
type Part struct {
	Name   string
	Buffer *Buffer
}
