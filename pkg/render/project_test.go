package render

import (
	"image"
	"testing"

	"github.com/facetview/facet/pkg/math3d"
)

func TestProjectCenter(t *testing.T) {
	vp := Viewport{Width: DefaultWidth, Height: DefaultHeight}
	if got := vp.Project(math3d.Zero3()); got != image.Pt(400, 300) {
		t.Errorf("origin projects to %v, want (400, 300)", got)
	}
}

func TestProjectScaleAndFlip(t *testing.T) {
	vp := Viewport{Width: 800, Height: 600}
	// scale = min(800, 600) * 0.4 = 240
	tests := []struct {
		name     string
		in       math3d.Vec3
		expected image.Point
	}{
		{"unit +x", math3d.V3(1, 0, 0), image.Pt(640, 300)},
		{"unit -x", math3d.V3(-1, 0, 0), image.Pt(160, 300)},
		{"unit +y is up", math3d.V3(0, 1, 0), image.Pt(400, 60)},
		{"unit -y is down", math3d.V3(0, -1, 0), image.Pt(400, 540)},
		{"z ignored", math3d.V3(0, 0, 0.9), image.Pt(400, 300)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := vp.Project(tc.in); got != tc.expected {
				t.Errorf("Project(%v) = %v, want %v", tc.in, got, tc.expected)
			}
		})
	}
}

func TestProjectTruncates(t *testing.T) {
	vp := Viewport{Width: 800, Height: 600}
	// 0.001 * 240 = 0.24: truncation keeps the center pixel.
	if got := vp.Project(math3d.V3(0.001, -0.001, 0)); got != image.Pt(400, 300) {
		t.Errorf("Project = %v, want truncation to (400, 300)", got)
	}
}

func TestProjectUsesSmallerDimension(t *testing.T) {
	vp := Viewport{Width: 200, Height: 1000}
	// scale = 200 * 0.4 = 80
	if got := vp.Project(math3d.V3(1, 0, 0)); got != image.Pt(180, 500) {
		t.Errorf("Project = %v, want (180, 500)", got)
	}
}
