package render

import (
	"errors"
	"testing"

	"github.com/facetview/facet/pkg/math3d"
	"github.com/facetview/facet/pkg/models"
)

func viewerMesh(t *testing.T) *models.Mesh {
	t.Helper()
	m := meshFrom(
		math3d.V3(1, 1, 1),
		math3d.V3(1, -1, -1),
		math3d.V3(-1, 1, -1),
		math3d.V3(-1, -1, 1),
	)
	m.Faces = []models.Face{
		{V: [3]int{1, 2, 3}},
		{V: [3]int{1, 3, 4}},
		{V: [3]int{1, 4, 2}},
		{V: [3]int{2, 4, 3}},
	}
	return m
}

func TestNewViewerComputesInitialTransform(t *testing.T) {
	v, err := NewViewer(viewerMesh(t))
	if err != nil {
		t.Fatal(err)
	}
	if len(v.Transformed) != 4 {
		t.Fatalf("transformed set has %d vertices, want 4", len(v.Transformed))
	}
	if v.Dirty() {
		t.Error("freshly built viewer must not be stale")
	}
}

func TestNewViewerSurfacesMeshErrors(t *testing.T) {
	if _, err := NewViewer(models.NewMesh("empty")); !errors.Is(err, ErrEmptyMesh) {
		t.Errorf("empty mesh: got %v, want ErrEmptyMesh", err)
	}
	flat := meshFrom(math3d.V3(2, 2, 2), math3d.V3(2, 2, 2))
	if _, err := NewViewer(flat); !errors.Is(err, ErrDegenerateScale) {
		t.Errorf("coincident mesh: got %v, want ErrDegenerateScale", err)
	}
}

func TestDragAccumulates(t *testing.T) {
	v, err := NewViewer(viewerMesh(t))
	if err != nil {
		t.Fatal(err)
	}
	v.Drag(10, -4)
	if v.AngleY != 5 || v.AngleX != -2 {
		t.Errorf("angles = (%v, %v), want (-2, 5) at half a degree per unit", v.AngleX, v.AngleY)
	}
	if !v.Dirty() {
		t.Error("drag must mark the transform stale")
	}
	// Angles keep accumulating without wrapping.
	v.Drag(1000, 0)
	if v.AngleY != 505 {
		t.Errorf("AngleY = %v, want 505", v.AngleY)
	}
}

func TestFrameRecomputesWhenStale(t *testing.T) {
	v, err := NewViewer(viewerMesh(t))
	if err != nil {
		t.Fatal(err)
	}
	before := v.Transformed[0]

	p := NewPainter(Viewport{Width: DefaultWidth, Height: DefaultHeight})
	v.Drag(180, 0) // 90 degrees about Y
	cmds, err := v.Frame(p)
	if err != nil {
		t.Fatal(err)
	}
	if len(cmds) == 0 {
		t.Fatal("frame emitted no commands")
	}
	if v.Dirty() {
		t.Error("Frame must clear the stale flag")
	}
	if vecNear(v.Transformed[0], before, 1e-9) {
		t.Error("transformed set unchanged after a 90 degree drag")
	}
}

func TestReset(t *testing.T) {
	v, err := NewViewer(viewerMesh(t))
	if err != nil {
		t.Fatal(err)
	}
	initial := v.Transformed[0]

	v.Drag(33, -71)
	if err := v.Recompute(); err != nil {
		t.Fatal(err)
	}
	v.Reset()
	if v.AngleX != 0 || v.AngleY != 0 {
		t.Errorf("angles after Reset = (%v, %v), want zero", v.AngleX, v.AngleY)
	}
	if !v.Dirty() {
		t.Error("Reset must mark the transform stale")
	}
	if err := v.Recompute(); err != nil {
		t.Fatal(err)
	}
	if !vecNear(v.Transformed[0], initial, 1e-12) {
		t.Error("Reset + Recompute did not restore the initial orientation")
	}
}
