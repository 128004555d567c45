package mesh

import (
	stdmath "math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/meshgen/pkg/math"
)

func assertVerticesNear(t *testing.T, want, got []Vertex) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		for c := 0; c < 3; c++ {
			assert.InDelta(t, want[i].Position[c], got[i].Position[c], tolerance, "vertex %d position", i)
			assert.InDelta(t, want[i].Normal[c], got[i].Normal[c], tolerance, "vertex %d normal", i)
		}
		assert.Equal(t, want[i].TexCoord, got[i].TexCoord, "vertex %d texcoord", i)
	}
}

func TestRotateRoundTrip(t *testing.T) {
	axes := []math.Vec3{
		math.Vec3Right,
		math.Vec3Up,
		math.Vec3Front,
		{X: 1, Y: 2, Z: -0.5},
	}

	for _, s := range allShapes() {
		for _, axis := range axes {
			b, err := s.gen()
			require.NoError(t, err)
			orig := b.Clone()

			Rotate(b, 1.1, axis)
			Rotate(b, -1.1, axis)

			assertVerticesNear(t, orig.Vertices, b.Vertices)
			assert.Equal(t, orig.Indices, b.Indices, "%s: topology must not change", s.name)
		}
	}
}

func TestRotateQuarterTurn(t *testing.T) {
	b, err := Plane(2, 2)
	require.NoError(t, err)

	// +Y normal rotated 90° around +X points to +Z
	Rotate(b, stdmath.Pi/2, math.Vec3Right)
	for _, n := range b.Normals() {
		assert.InDelta(t, 0, n.X, tolerance)
		assert.InDelta(t, 0, n.Y, tolerance)
		assert.InDelta(t, 1, n.Z, tolerance)
	}
	for _, p := range b.Positions() {
		assert.InDelta(t, 0, p.Z, tolerance)
	}
}

func TestRotatePreservesNormalLength(t *testing.T) {
	b, err := Sphere(1, 12)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		Rotate(b, 0.37, math.Vec3{X: 0.3, Y: 1, Z: 0.2})
	}
	for _, n := range b.Normals() {
		assert.InDelta(t, 1, n.Length(), 1e-3)
	}
}

func TestRotateZeroAxisIsNoop(t *testing.T) {
	b, err := Cube(1, 2, 3)
	require.NoError(t, err)
	orig := b.Clone()

	Rotate(b, 1, math.Vec3{})
	assert.Equal(t, orig, b)
}

func TestTranslateRoundTrip(t *testing.T) {
	offset := math.Vec3{X: 1.5, Y: -12, Z: 3.25}

	for _, s := range allShapes() {
		b, err := s.gen()
		require.NoError(t, err)
		orig := b.Clone()

		Translate(b, offset)
		for i, v := range b.Vertices {
			assert.InDelta(t, orig.Vertices[i].Position[1]+offset.Y, v.Position[1], tolerance)
			assert.Equal(t, orig.Vertices[i].Normal, v.Normal, "%s: translation must not touch normals", s.name)
		}

		Translate(b, offset.Negate())
		assertVerticesNear(t, orig.Vertices, b.Vertices)
		assert.Equal(t, orig.Extent, b.Extent)
	}
}

func TestTransformsOnEmptyBuffers(t *testing.T) {
	assert.NotPanics(t, func() {
		Rotate(nil, 1, math.Vec3Up)
		Translate(nil, math.Vec3{X: 1})
		Transform(nil, math.Identity())

		empty := &Buffer{}
		Rotate(empty, 1, math.Vec3Up)
		Translate(empty, math.Vec3{X: 1})
		assert.Empty(t, empty.Vertices)
	})
}

func TestTransformMatchesRotateThenTranslate(t *testing.T) {
	a, err := Pyramid(2, 2)
	require.NoError(t, err)
	b := a.Clone()

	Rotate(a, 0.8, math.Vec3Up)
	Translate(a, math.Vec3{X: 4, Y: 1})

	m := math.Translate(math.Vec3{X: 4, Y: 1}).Mul(math.RotateAxis(math.Vec3Up, 0.8))
	Transform(b, m)

	assertVerticesNear(t, a.Vertices, b.Vertices)
}
