// Package lighting provides light sources for the mesh preview.
package lighting

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/meshgen/pkg/math"
)

// Sun is a directional light placed by compass angles, in degrees.
// Azimuth rotates around +Y starting from +Z; elevation is measured up from
// the horizon.
type Sun struct {
	Azimuth   float32
	Elevation float32
}

// DefaultSun lights the front-right of a scene from above.
var DefaultSun = Sun{Azimuth: 35, Elevation: 55}

// ToSun returns the unit vector pointing from the scene towards the sun.
func (s Sun) ToSun() math.Vec3 {
	sinAz, cosAz := math32.Sincos(s.Azimuth * math32.Pi / 180)
	sinEl, cosEl := math32.Sincos(s.Elevation * math32.Pi / 180)

	return math.Vec3{
		X: cosEl * sinAz,
		Y: sinEl,
		Z: cosEl * cosAz,
	}
}

// Direction returns the direction light travels in, as used by shaders.
func (s Sun) Direction() math.Vec3 {
	return s.ToSun().Negate()
}
