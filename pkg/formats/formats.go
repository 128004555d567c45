// Package formats writes mesh buffers to interchange files and reads them
// back: Wavefront OBJ, glTF 2.0 (text or binary) and PMSH, a raw dump of the
// interleaved GPU vertex stream.
package formats

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Faultbox/meshgen/pkg/mesh"
)

// Export format names.
const (
	FormatOBJ  = "obj"
	FormatGLTF = "gltf"
	FormatGLB  = "glb"
	FormatPMSH = "pmsh"
)

// Export errors.
var (
	ErrUnknownFormat = errors.New("unknown export format")
	ErrInvalidName   = errors.New("invalid output name")
)

// Export writes parts under dir using the given format and returns the
// files written. OBJ and glTF hold every part in one file named base.ext;
// PMSH holds a single buffer, so each part gets its own base_part.pmsh.
func Export(dir, base, format string, parts []mesh.Part) ([]string, error) {
	if err := checkFileName(base); err != nil {
		return nil, err
	}
	if format == FormatPMSH && len(parts) > 1 {
		for _, p := range parts {
			if err := checkFileName(p.Name); err != nil {
				return nil, fmt.Errorf("part %q: %w", p.Name, err)
			}
		}
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output dir: %w", err)
	}

	switch format {
	case FormatOBJ:
		path := filepath.Join(dir, base+".obj")
		return []string{path}, WriteOBJFile(path, parts...)
	case FormatGLTF:
		path := filepath.Join(dir, base+".gltf")
		return []string{path}, WriteGLTF(path, false, parts...)
	case FormatGLB:
		path := filepath.Join(dir, base+".glb")
		return []string{path}, WriteGLTF(path, true, parts...)
	case FormatPMSH:
		var paths []string
		for _, p := range parts {
			name := base
			if len(parts) > 1 {
				name = base + "_" + p.Name
			}
			path := filepath.Join(dir, name+".pmsh")
			if err := WritePMSHFile(path, p.Buffer); err != nil {
				return paths, fmt.Errorf("part %q: %w", p.Name, err)
			}
			paths = append(paths, path)
		}
		return paths, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// checkFileName rejects names that would place a file outside the output
// directory.
func checkFileName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

// Load reads parts back from a PMSH, glTF or GLB file, chosen by extension.
// A PMSH file yields one part named after the file.
func Load(path string) ([]mesh.Part, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".pmsh":
		p, err := ParsePMSHFile(path)
		if err != nil {
			return nil, err
		}
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		return []mesh.Part{{Name: name, Buffer: p.Mesh}}, nil
	case ".gltf", ".glb":
		return ReadGLTF(path)
	default:
		return nil, fmt.Errorf("%w: cannot read %q files", ErrUnknownFormat, ext)
	}
}
