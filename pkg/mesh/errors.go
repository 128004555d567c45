package mesh

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
)

// ErrInvalidParameter is wrapped by every generator parameter error.
var ErrInvalidParameter = errors.New("invalid mesh parameter")

// Resolution limits. MaxSegments bounds each segment or division count;
// MaxVertices bounds the total for grid shapes (sphere, torus) whose vertex
// count grows with the square of the resolution.
const (
	MaxSegments = 1 << 14
	MaxVertices = 1 << 22
)

func checkDimension(shape, name string, v float32) error {
	if math32.IsNaN(v) || math32.IsInf(v, 0) || v <= 0 {
		return fmt.Errorf("%s: %s must be a positive finite number, got %v: %w", shape, name, v, ErrInvalidParameter)
	}
	return nil
}

func checkCount(shape, name string, n int) error {
	if n <= 0 || n > MaxSegments {
		return fmt.Errorf("%s: %s must be in [1, %d], got %d: %w", shape, name, MaxSegments, n, ErrInvalidParameter)
	}
	return nil
}

func checkVertexCount(shape string, n int) error {
	if n > MaxVertices {
		return fmt.Errorf("%s: %d vertices exceeds the limit of %d: %w", shape, n, MaxVertices, ErrInvalidParameter)
	}
	return nil
}
