package render

import (
	"math"
	"testing"

	"github.com/facetview/facet/pkg/math3d"
)

func TestFaceNormalCanonicalTriangle(t *testing.T) {
	// Unit triangle on the XY plane: normal straight up the Z axis.
	n, ok := FaceNormal(math3d.V3(0, 0, 0), math3d.V3(1, 0, 0), math3d.V3(0, 1, 0))
	if !ok {
		t.Fatal("canonical triangle reported degenerate")
	}
	if !vecNear(n, math3d.V3(0, 0, 1), eps) {
		t.Errorf("normal = %v, want (0, 0, 1)", n)
	}
	if i := ShadeIntensity(n); math.Abs(i-1.0) > eps {
		t.Errorf("intensity = %v, want 1.0", i)
	}
	if c := ShadeColor(ShadeIntensity(n)); c.B != 0xFF || c.R != 0 || c.G != 0 {
		t.Errorf("shade color = %v, want pure blue 0xFF", c)
	}
	if !FrontFacing(n) {
		t.Error("nz=1 must be front-facing")
	}
}

func TestFaceNormalDegenerate(t *testing.T) {
	tests := []struct {
		name       string
		v1, v2, v3 math3d.Vec3
	}{
		{"coincident", math3d.V3(1, 1, 1), math3d.V3(1, 1, 1), math3d.V3(1, 1, 1)},
		{"collinear", math3d.V3(0, 0, 0), math3d.V3(1, 1, 1), math3d.V3(2, 2, 2)},
		{"near-collinear", math3d.V3(0, 0, 0), math3d.V3(1, 0, 0), math3d.V3(2, 1e-9, 0)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, ok := FaceNormal(tc.v1, tc.v2, tc.v3); ok {
				t.Error("degenerate triangle not detected")
			}
		})
	}
}

func TestShadeIntensityIgnoresSign(t *testing.T) {
	// Both Z directions shade the same; only facing uses the sign.
	up := math3d.V3(0, 0, 1)
	down := math3d.V3(0, 0, -1)
	if ShadeIntensity(up) != ShadeIntensity(down) {
		t.Error("intensity must use |nz|")
	}
	if !FrontFacing(up) {
		t.Error("nz > 0 is front-facing")
	}
	if FrontFacing(down) {
		t.Error("nz < 0 is back-facing")
	}
	// Edge-on is strictly not front-facing.
	if FrontFacing(math3d.V3(1, 0, 0)) {
		t.Error("nz == 0 must not be front-facing (strict sign test)")
	}
}

func TestShadeColorRamp(t *testing.T) {
	tests := []struct {
		name      string
		intensity float64
		blue      uint8
	}{
		{"edge-on", 0, 0x5F},
		{"face-on", 1, 0xFF},
		{"half", 0.5, 0x5F + (0xFF-0x5F)/2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := ShadeColor(tc.intensity)
			if c.R != 0 || c.G != 0 {
				t.Errorf("red/green must stay 0, got %v", c)
			}
			if c.B != tc.blue {
				t.Errorf("blue = 0x%02X, want 0x%02X", c.B, tc.blue)
			}
		})
	}
}

func TestFaceNormalTiltedFace(t *testing.T) {
	// A face in the XZ plane has a normal along Y: zero intensity, darkest
	// shade, not front-facing.
	n, ok := FaceNormal(math3d.V3(0, 0, 0), math3d.V3(1, 0, 0), math3d.V3(0, 0, -1))
	if !ok {
		t.Fatal("unexpected degenerate")
	}
	if math.Abs(n.Z) > eps {
		t.Fatalf("normal = %v, want Z component 0", n)
	}
	if c := ShadeColor(ShadeIntensity(n)); c.B != 0x5F {
		t.Errorf("edge-on shade = 0x%02X, want 0x5F", c.B)
	}
}
