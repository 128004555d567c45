package formats

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/Faultbox/meshgen/pkg/mesh"
)

// WriteOBJ writes parts as Wavefront OBJ text, one object per part.
// Position, texture and normal indices coincide, so faces are written as
// f a/a/a b/b/b c/c/c with 1-based indices running across all parts.
func WriteOBJ(w io.Writer, parts ...mesh.Part) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "# meshgen")

	var base uint32 = 1
	for _, p := range parts {
		if err := p.Buffer.Validate(); err != nil {
			return fmt.Errorf("part %q: %w", p.Name, err)
		}

		fmt.Fprintf(bw, "o %s\n", p.Name)
		for _, v := range p.Buffer.Vertices {
			fmt.Fprintf(bw, "v %g %g %g\n", v.Position[0], v.Position[1], v.Position[2])
		}
		for _, v := range p.Buffer.Vertices {
			fmt.Fprintf(bw, "vt %g %g\n", v.TexCoord[0], v.TexCoord[1])
		}
		for _, v := range p.Buffer.Vertices {
			fmt.Fprintf(bw, "vn %g %g %g\n", v.Normal[0], v.Normal[1], v.Normal[2])
		}

		idx := p.Buffer.Indices
		for i := 0; i+2 < len(idx); i += 3 {
			a, b, c := idx[i]+base, idx[i+1]+base, idx[i+2]+base
			fmt.Fprintf(bw, "f %d/%d/%d %d/%d/%d %d/%d/%d\n", a, a, a, b, b, b, c, c, c)
		}
		base += uint32(len(p.Buffer.Vertices))
	}

	return bw.Flush()
}

// WriteOBJFile writes parts as an OBJ file on disk.
func WriteOBJFile(path string, parts ...mesh.Part) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating OBJ file: %w", err)
	}
	if err := WriteOBJ(f, parts...); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
