package preview

import (
	"testing"

	"github.com/Faultbox/meshgen/pkg/math"
	"github.com/Faultbox/meshgen/pkg/mesh"
)

func TestSceneBounds(t *testing.T) {
	cube, err := mesh.Cube(2, 2, 2)
	if err != nil {
		t.Fatalf("Cube failed: %v", err)
	}
	ball, err := mesh.Sphere(1, 8)
	if err != nil {
		t.Fatalf("Sphere failed: %v", err)
	}
	mesh.Translate(ball, math.Vec3{X: 10})

	lo, hi := SceneBounds([]mesh.Part{
		{Name: "cube", Buffer: cube},
		{Name: "empty", Buffer: &mesh.Buffer{}},
		{Name: "ball", Buffer: ball},
	})

	if lo.X != -1 || lo.Y > -0.999 {
		t.Errorf("unexpected lower bound %+v", lo)
	}
	if hi.X < 10.999 || hi.Y != 2 {
		t.Errorf("unexpected upper bound %+v", hi)
	}
}

func TestSceneBoundsEmpty(t *testing.T) {
	lo, hi := SceneBounds(nil)
	if hi.Sub(lo) != (math.Vec3{X: 1, Y: 1, Z: 1}) {
		t.Errorf("expected unit box, got %+v..%+v", lo, hi)
	}
}
