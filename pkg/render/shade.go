package render

import (
	"math"

	"github.com/facetview/facet/pkg/math3d"
)

// degenerateEps is the minimum cross-product magnitude below which a
// triangle is treated as degenerate (collinear or coincident corners) and
// skipped.
const degenerateEps = 1e-6

// Blue ramp endpoints: edge-on faces get shadeMin, face-on faces shadeMax.
const (
	shadeMin = 0x5F
	shadeMax = 0xFF
)

// FaceNormal returns the unit normal of the triangle (v1, v2, v3), computed
// as (v2-v1) × (v3-v1). ok is false for degenerate triangles, which must
// contribute nothing to the frame.
func FaceNormal(v1, v2, v3 math3d.Vec3) (n math3d.Vec3, ok bool) {
	n = v2.Sub(v1).Cross(v3.Sub(v1))
	l := n.Len()
	if l < degenerateEps {
		return math3d.Zero3(), false
	}
	return n.Div(l), true
}

// ShadeIntensity maps a unit face normal to shading intensity |nz|. Both
// orientations along Z shade identically; facing is decided separately by
// FrontFacing, which uses the sign.
func ShadeIntensity(n math3d.Vec3) float64 {
	return math.Abs(n.Z)
}

// ShadeColor maps intensity in [0,1] to the blue ramp: dark blue edge-on,
// full blue face-on.
func ShadeColor(intensity float64) Color {
	blue := uint8(shadeMin + intensity*(shadeMax-shadeMin))
	return RGB(0, 0, blue)
}

// FrontFacing reports whether a face with unit normal n faces the viewer.
// The test is strictly nz > 0; a face exactly edge-on does not count.
func FrontFacing(n math3d.Vec3) bool {
	return n.Z > 0
}
