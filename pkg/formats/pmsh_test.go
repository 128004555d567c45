package formats

import (
	"bytes"
	"encoding/binary"
	"errors"
	"path/filepath"
	"testing"

	"github.com/Faultbox/meshgen/pkg/mesh"
)

// createTestPMSH creates a single-triangle PMSH file for testing.
func createTestPMSH(major uint8, indices []uint32) []byte {
	buf := new(bytes.Buffer)

	buf.WriteString("PMSH")
	buf.WriteByte(major)
	buf.WriteByte(0) // minor

	binary.Write(buf, binary.LittleEndian, uint32(3))
	binary.Write(buf, binary.LittleEndian, uint32(len(indices)))
	binary.Write(buf, binary.LittleEndian, [3]float32{1, 0, 1})

	verts := [][8]float32{
		{0, 0, 0, 0, 1, 0, 0, 0},
		{1, 0, 0, 0, 1, 0, 1, 0},
		{0, 0, 1, 0, 1, 0, 0, 1},
	}
	for _, v := range verts {
		binary.Write(buf, binary.LittleEndian, v)
	}
	binary.Write(buf, binary.LittleEndian, indices)

	return buf.Bytes()
}

func TestParsePMSH_ValidFile(t *testing.T) {
	data := createTestPMSH(1, []uint32{0, 2, 1})

	p, err := ParsePMSH(data)
	if err != nil {
		t.Fatalf("ParsePMSH failed: %v", err)
	}

	if p.Version.String() != "1.0" {
		t.Errorf("expected version 1.0, got %s", p.Version)
	}
	if p.Mesh.VertexCount() != 3 {
		t.Errorf("expected 3 vertices, got %d", p.Mesh.VertexCount())
	}
	if p.Mesh.TriangleCount() != 1 {
		t.Errorf("expected 1 triangle, got %d", p.Mesh.TriangleCount())
	}
	if p.Mesh.Width() != 1 || p.Mesh.Length() != 1 {
		t.Errorf("unexpected extent %+v", p.Mesh.Extent)
	}

	v := p.Mesh.Vertices[1]
	if v.Position != [3]float32{1, 0, 0} || v.Normal != [3]float32{0, 1, 0} || v.TexCoord != [2]float32{1, 0} {
		t.Errorf("vertex 1 decoded as %+v", v)
	}
}

func TestParsePMSH_InvalidMagic(t *testing.T) {
	data := createTestPMSH(1, []uint32{0, 1, 2})
	copy(data, "XXXX")

	_, err := ParsePMSH(data)
	if !errors.Is(err, ErrInvalidPMSHMagic) {
		t.Errorf("expected ErrInvalidPMSHMagic, got %v", err)
	}
}

func TestParsePMSH_UnsupportedVersion(t *testing.T) {
	data := createTestPMSH(2, []uint32{0, 1, 2})

	_, err := ParsePMSH(data)
	if !errors.Is(err, ErrUnsupportedPMSHVersion) {
		t.Errorf("expected ErrUnsupportedPMSHVersion, got %v", err)
	}
}

func TestParsePMSH_Truncated(t *testing.T) {
	data := createTestPMSH(1, []uint32{0, 1, 2})

	tests := []struct {
		name string
		size int
	}{
		{"empty", 0},
		{"magic only", 4},
		{"header only", pmshHeaderSize},
		{"missing last index", len(data) - 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePMSH(data[:tt.size])
			if !errors.Is(err, ErrTruncatedPMSHData) {
				t.Errorf("expected ErrTruncatedPMSHData, got %v", err)
			}
		})
	}
}

func TestParsePMSH_IndexOutOfRange(t *testing.T) {
	data := createTestPMSH(1, []uint32{0, 1, 3})

	if _, err := ParsePMSH(data); err == nil {
		t.Error("expected error for out-of-range index")
	}
}

func TestPMSH_RoundTrip(t *testing.T) {
	src, err := mesh.Torus(3, 1, 12)
	if err != nil {
		t.Fatalf("Torus failed: %v", err)
	}

	var buf bytes.Buffer
	if err := WritePMSH(&buf, src); err != nil {
		t.Fatalf("WritePMSH failed: %v", err)
	}

	wantSize := pmshHeaderSize + src.VertexCount()*mesh.VertexStride + len(src.Indices)*4
	if buf.Len() != wantSize {
		t.Errorf("expected %d bytes, got %d", wantSize, buf.Len())
	}

	p, err := ParsePMSH(buf.Bytes())
	if err != nil {
		t.Fatalf("ParsePMSH failed: %v", err)
	}

	got, want := p.Mesh.Interleaved(), src.Interleaved()
	if len(got) != len(want) {
		t.Fatalf("expected %d floats, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("float %d: expected %v, got %v", i, want[i], got[i])
		}
	}
	for i := range src.Indices {
		if p.Mesh.Indices[i] != src.Indices[i] {
			t.Fatalf("index %d: expected %d, got %d", i, src.Indices[i], p.Mesh.Indices[i])
		}
	}
	if p.Mesh.Extent != src.Extent {
		t.Errorf("expected extent %+v, got %+v", src.Extent, p.Mesh.Extent)
	}
}

func TestPMSH_File(t *testing.T) {
	src, err := mesh.Cube(1, 2, 3)
	if err != nil {
		t.Fatalf("Cube failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "cube.pmsh")
	if err := WritePMSHFile(path, src); err != nil {
		t.Fatalf("WritePMSHFile failed: %v", err)
	}

	p, err := ParsePMSHFile(path)
	if err != nil {
		t.Fatalf("ParsePMSHFile failed: %v", err)
	}
	if p.Mesh.VertexCount() != 24 || p.Mesh.TriangleCount() != 12 {
		t.Errorf("expected 24 vertices and 12 triangles, got %d and %d",
			p.Mesh.VertexCount(), p.Mesh.TriangleCount())
	}

	if _, err := ParsePMSHFile(filepath.Join(t.TempDir(), "missing.pmsh")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestWritePMSH_RejectsInvalidBuffer(t *testing.T) {
	bad := &mesh.Buffer{
		Vertices: make([]mesh.Vertex, 2),
		Indices:  []uint32{0, 1, 2},
	}

	var buf bytes.Buffer
	if err := WritePMSH(&buf, bad); err == nil {
		t.Error("expected error for invalid buffer")
	}
	if buf.Len() != 0 {
		t.Errorf("expected nothing written, got %d bytes", buf.Len())
	}
}
