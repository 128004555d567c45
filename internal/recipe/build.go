package recipe

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/chewxy/math32"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Faultbox/meshgen/internal/logger"
	"github.com/Faultbox/meshgen/pkg/math"
	"github.com/Faultbox/meshgen/pkg/mesh"
)

// Build generates every part concurrently and applies its transforms in
// listed order. Parts are returned in recipe order. The first failing part
// cancels the rest.
func (r *Recipe) Build(ctx context.Context, d Defaults) ([]mesh.Part, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	log := logger.Named("recipe")
	start := time.Now()

	parts := make([]mesh.Part, len(r.Parts))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, spec := range r.Parts {
		i, spec := i, spec
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			buf, err := spec.Build(d)
			if err != nil {
				return fmt.Errorf("part %q: %w", spec.Name, err)
			}
			parts[i] = mesh.Part{Name: spec.Name, Buffer: buf}
			log.Debug("part built",
				zap.String("part", spec.Name),
				zap.String("shape", spec.Shape),
				zap.Int("vertices", buf.VertexCount()),
				zap.Int("triangles", buf.TriangleCount()))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Info("recipe built",
		zap.String("recipe", r.Name),
		zap.Int("parts", len(parts)),
		zap.Duration("elapsed", time.Since(start)))
	return parts, nil
}

// Build generates a single part and applies its transforms.
func (p PartSpec) Build(d Defaults) (*mesh.Buffer, error) {
	shape, ok := LookupShape(p.Shape)
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownShape, p.Shape)
	}

	buf, err := shape.build(p, d)
	if err != nil {
		return nil, err
	}
	for j, t := range p.Transforms {
		if err := t.validate(); err != nil {
			return nil, fmt.Errorf("transform %d: %w", j, err)
		}
		t.apply(buf)
	}
	return buf, nil
}

func (t Transform) apply(buf *mesh.Buffer) {
	if t.Translate != nil {
		mesh.Translate(buf, math.V3(*t.Translate))
	}
	if t.Rotate != nil {
		mesh.Rotate(buf, Radians(t.Rotate.Degrees), math.V3(t.Rotate.Axis))
	}
}

// Radians converts degrees to radians.
func Radians(deg float32) float32 {
	return deg * math32.Pi / 180
}
