package formats

import (
	"errors"
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/Faultbox/meshgen/pkg/mesh"
)

// ErrInvalidGLTF is returned when a glTF document refers to meshes, accessors
// or buffers it does not contain.
var ErrInvalidGLTF = errors.New("invalid glTF document")

// WriteGLTF saves parts as a glTF 2.0 document with one mesh and one root
// node per part. binary selects .glb output.
func WriteGLTF(path string, binary bool, parts ...mesh.Part) error {
	doc := gltf.NewDocument()

	for _, p := range parts {
		if err := p.Buffer.Validate(); err != nil {
			return fmt.Errorf("part %q: %w", p.Name, err)
		}
		b := p.Buffer

		positions := make([][3]float32, len(b.Vertices))
		normals := make([][3]float32, len(b.Vertices))
		uvs := make([][2]float32, len(b.Vertices))
		for i, v := range b.Vertices {
			positions[i] = v.Position
			normals[i] = v.Normal
			uvs[i] = v.TexCoord
		}

		prim := &gltf.Primitive{
			Indices: gltf.Index(modeler.WriteIndices(doc, b.Indices)),
			Attributes: map[string]int{
				"POSITION":   modeler.WritePosition(doc, positions),
				"NORMAL":     modeler.WriteNormal(doc, normals),
				"TEXCOORD_0": modeler.WriteTextureCoord(doc, uvs),
			},
		}
		doc.Meshes = append(doc.Meshes, &gltf.Mesh{
			Name:       p.Name,
			Primitives: []*gltf.Primitive{prim},
		})
		doc.Nodes = append(doc.Nodes, &gltf.Node{
			Name: p.Name,
			Mesh: gltf.Index(len(doc.Meshes) - 1),
		})
		doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, len(doc.Nodes)-1)
	}

	var err error
	if binary {
		err = gltf.SaveBinary(doc, path)
	} else {
		// .gltf output carries its buffer inline as a data URI.
		if len(doc.Buffers) > 0 {
			doc.Buffers[0].EmbeddedResource()
		}
		err = gltf.Save(doc, path)
	}
	if err != nil {
		return fmt.Errorf("saving glTF: %w", err)
	}
	return nil
}

// ReadGLTF loads the first primitive of every named node's mesh back into
// parts. Missing normals or texture coordinates are left zero. The extent of
// each part is its bounding box size.
func ReadGLTF(path string) ([]mesh.Part, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening glTF: %w", err)
	}

	var parts []mesh.Part
	for i, node := range doc.Nodes {
		if node == nil || node.Mesh == nil {
			continue
		}
		if *node.Mesh < 0 || *node.Mesh >= len(doc.Meshes) || doc.Meshes[*node.Mesh] == nil {
			return nil, fmt.Errorf("%w: node %d refers to mesh %d of %d", ErrInvalidGLTF, i, *node.Mesh, len(doc.Meshes))
		}
		m := doc.Meshes[*node.Mesh]
		if len(m.Primitives) == 0 || m.Primitives[0] == nil {
			continue
		}
		prim := m.Primitives[0]

		b, err := readGLTFPrimitive(doc, prim)
		if err != nil {
			return nil, fmt.Errorf("node %q: %w", node.Name, err)
		}
		parts = append(parts, mesh.Part{Name: node.Name, Buffer: b})
	}
	return parts, nil
}

func readGLTFPrimitive(doc *gltf.Document, prim *gltf.Primitive) (*mesh.Buffer, error) {
	posIdx, ok := prim.Attributes["POSITION"]
	if !ok {
		return nil, fmt.Errorf("%w: no POSITION attribute", ErrInvalidGLTF)
	}
	acr, err := accessor(doc, posIdx)
	if err != nil {
		return nil, fmt.Errorf("positions: %w", err)
	}
	positions, err := modeler.ReadPosition(doc, acr, nil)
	if err != nil {
		return nil, fmt.Errorf("positions: %w", err)
	}

	var normals [][3]float32
	var uvs [][2]float32
	if idx, ok := prim.Attributes["NORMAL"]; ok {
		if acr, err = accessor(doc, idx); err == nil {
			normals, err = modeler.ReadNormal(doc, acr, nil)
		}
		if err != nil {
			return nil, fmt.Errorf("normals: %w", err)
		}
	}
	if idx, ok := prim.Attributes["TEXCOORD_0"]; ok {
		if acr, err = accessor(doc, idx); err == nil {
			uvs, err = modeler.ReadTextureCoord(doc, acr, nil)
		}
		if err != nil {
			return nil, fmt.Errorf("texcoords: %w", err)
		}
	}

	b := &mesh.Buffer{Vertices: make([]mesh.Vertex, len(positions))}
	for i, p := range positions {
		b.Vertices[i].Position = p
		if i < len(normals) {
			b.Vertices[i].Normal = normals[i]
		}
		if i < len(uvs) {
			b.Vertices[i].TexCoord = uvs[i]
		}
	}

	if prim.Indices != nil {
		if acr, err = accessor(doc, *prim.Indices); err == nil {
			b.Indices, err = modeler.ReadIndices(doc, acr, nil)
		}
		if err != nil {
			return nil, fmt.Errorf("indices: %w", err)
		}
	}

	lo, hi := b.Bounds()
	b.Extent = hi.Sub(lo)
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// accessor returns accessor idx after checking that it and the buffer view
// and buffer behind it exist.
func accessor(doc *gltf.Document, idx int) (*gltf.Accessor, error) {
	if idx < 0 || idx >= len(doc.Accessors) || doc.Accessors[idx] == nil {
		return nil, fmt.Errorf("%w: accessor %d of %d", ErrInvalidGLTF, idx, len(doc.Accessors))
	}
	acr := doc.Accessors[idx]
	if acr.BufferView == nil {
		return acr, nil
	}
	bv := *acr.BufferView
	if bv < 0 || bv >= len(doc.BufferViews) || doc.BufferViews[bv] == nil {
		return nil, fmt.Errorf("%w: accessor %d refers to buffer view %d of %d", ErrInvalidGLTF, idx, bv, len(doc.BufferViews))
	}
	if buf := doc.BufferViews[bv].Buffer; buf < 0 || buf >= len(doc.Buffers) || doc.Buffers[buf] == nil {
		return nil, fmt.Errorf("%w: buffer view %d refers to buffer %d of %d", ErrInvalidGLTF, bv, buf, len(doc.Buffers))
	}
	return acr, nil
}
