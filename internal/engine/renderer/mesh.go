package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/meshgen/pkg/mesh"
)

// gpuMesh is one part resident on the GPU.
type gpuMesh struct {
	vao, vbo, ebo uint32
	indexCount    int32
}

// Attribute locations shared with the mesh vertex shader.
const (
	attribPosition = 0
	attribNormal   = 1
	attribTexCoord = 2
)

func uploadMesh(p mesh.Part) (*gpuMesh, error) {
	b := p.Buffer
	if err := b.Validate(); err != nil {
		return nil, err
	}
	if b.VertexCount() == 0 || len(b.Indices) == 0 {
		return nil, fmt.Errorf("empty buffer")
	}

	m := &gpuMesh{indexCount: int32(len(b.Indices))}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	// Vertex is laid out exactly as the interleaved stream, so the slice is
	// uploaded as is.
	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(b.Vertices)*mesh.VertexStride, unsafe.Pointer(&b.Vertices[0]), gl.STATIC_DRAW)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(b.Indices)*4, unsafe.Pointer(&b.Indices[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(attribPosition, 3, gl.FLOAT, false, mesh.VertexStride, mesh.PositionOffset)
	gl.EnableVertexAttribArray(attribPosition)
	gl.VertexAttribPointerWithOffset(attribNormal, 3, gl.FLOAT, false, mesh.VertexStride, mesh.NormalOffset)
	gl.EnableVertexAttribArray(attribNormal)
	gl.VertexAttribPointerWithOffset(attribTexCoord, 2, gl.FLOAT, false, mesh.VertexStride, mesh.TexCoordOffset)
	gl.EnableVertexAttribArray(attribTexCoord)

	gl.BindVertexArray(0)
	return m, nil
}

func (m *gpuMesh) draw() {
	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, nil)
}

func (m *gpuMesh) release() {
	gl.DeleteVertexArrays(1, &m.vao)
	gl.DeleteBuffers(1, &m.vbo)
	gl.DeleteBuffers(1, &m.ebo)
}
