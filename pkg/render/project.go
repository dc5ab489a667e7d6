package render

import (
	"image"

	"github.com/facetview/facet/pkg/math3d"
)

// Default viewport dimensions, used when no surface size is known (headless
// rendering).
const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

// Viewport maps normalized, rotated model space onto screen pixels with an
// orthographic projection.
type Viewport struct {
	Width  int
	Height int
}

// Project maps a 3D point to 2D viewport coordinates. The model's unit
// sphere fills 80% of the smaller viewport dimension, and Y is flipped so
// positive model-Y points up on screen. Output is truncated to integers.
func (vp Viewport) Project(v math3d.Vec3) image.Point {
	scale := float64(min(vp.Width, vp.Height)) * 0.4
	return image.Pt(
		int(float64(vp.Width/2)+v.X*scale),
		int(float64(vp.Height/2)-v.Y*scale),
	)
}
