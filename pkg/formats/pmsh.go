package formats

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Faultbox/meshgen/pkg/math"
	"github.com/Faultbox/meshgen/pkg/mesh"
)

// PMSH format errors.
var (
	ErrInvalidPMSHMagic       = errors.New("invalid PMSH magic: expected 'PMSH'")
	ErrUnsupportedPMSHVersion = errors.New("unsupported PMSH version")
	ErrTruncatedPMSHData      = errors.New("truncated PMSH data")
)

// PMSH layout, little-endian:
//
//	0  magic "PMSH"
//	4  version major, minor (uint8 each)
//	6  vertex count, index count (uint32 each)
//	14 extent x, y, z (float32 each)
//	26 vertices: count x 8 float32 (px py pz nx ny nz u v)
//	.. indices: count x uint32
const (
	pmshMagic      = "PMSH"
	pmshHeaderSize = 26

	PMSHMajor = 1
	PMSHMinor = 0
)

// PMSHVersion represents the PMSH file version.
type PMSHVersion struct {
	Major uint8
	Minor uint8
}

// String returns the version as "Major.Minor".
func (v PMSHVersion) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// PMSH represents a parsed PMSH file.
type PMSH struct {
	Version PMSHVersion
	Mesh    *mesh.Buffer
}

type pmshHeader struct {
	Magic       [4]byte
	Major       uint8
	Minor       uint8
	VertexCount uint32
	IndexCount  uint32
	Extent      [3]float32
}

// WritePMSH encodes a buffer as PMSH.
func WritePMSH(w io.Writer, b *mesh.Buffer) error {
	if err := b.Validate(); err != nil {
		return fmt.Errorf("invalid buffer: %w", err)
	}

	hdr := pmshHeader{
		Major:       PMSHMajor,
		Minor:       PMSHMinor,
		VertexCount: uint32(len(b.Vertices)),
		IndexCount:  uint32(len(b.Indices)),
		Extent:      b.Extent.Array(),
	}
	copy(hdr.Magic[:], pmshMagic)

	if err := binary.Write(w, binary.LittleEndian, &hdr); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, b.Vertices); err != nil {
		return fmt.Errorf("writing vertices: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, b.Indices); err != nil {
		return fmt.Errorf("writing indices: %w", err)
	}
	return nil
}

// WritePMSHFile encodes a buffer as PMSH to disk.
func WritePMSHFile(path string, b *mesh.Buffer) error {
	var buf bytes.Buffer
	if err := WritePMSH(&buf, b); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing PMSH file: %w", err)
	}
	return nil
}

// ParsePMSH parses a PMSH file from raw bytes.
func ParsePMSH(data []byte) (*PMSH, error) {
	if len(data) < pmshHeaderSize {
		return nil, ErrTruncatedPMSHData
	}
	if string(data[0:4]) != pmshMagic {
		return nil, ErrInvalidPMSHMagic
	}

	r := bytes.NewReader(data)
	var hdr pmshHeader
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return nil, fmt.Errorf("%w: reading header", ErrTruncatedPMSHData)
	}

	version := PMSHVersion{Major: hdr.Major, Minor: hdr.Minor}
	if version.Major != PMSHMajor {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedPMSHVersion, version)
	}

	// Check sizes before allocating so a corrupt header cannot request
	// gigabytes.
	want := int64(hdr.VertexCount)*mesh.VertexStride + int64(hdr.IndexCount)*4
	if int64(r.Len()) < want {
		return nil, fmt.Errorf("%w: need %d payload bytes, have %d", ErrTruncatedPMSHData, want, r.Len())
	}

	b := &mesh.Buffer{
		Vertices: make([]mesh.Vertex, hdr.VertexCount),
		Indices:  make([]uint32, hdr.IndexCount),
		Extent:   math.V3(hdr.Extent),
	}
	if err := binary.Read(r, binary.LittleEndian, b.Vertices); err != nil {
		return nil, fmt.Errorf("%w: reading vertices", ErrTruncatedPMSHData)
	}
	if err := binary.Read(r, binary.LittleEndian, b.Indices); err != nil {
		return nil, fmt.Errorf("%w: reading indices", ErrTruncatedPMSHData)
	}
	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("invalid PMSH mesh: %w", err)
	}

	return &PMSH{Version: version, Mesh: b}, nil
}

// ParsePMSHFile parses a PMSH file from disk.
func ParsePMSHFile(path string) (*PMSH, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading PMSH file: %w", err)
	}
	return ParsePMSH(data)
}
