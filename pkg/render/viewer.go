package render

import (
	"github.com/facetview/facet/pkg/math3d"
	"github.com/facetview/facet/pkg/models"
)

// DragSensitivity converts drag deltas to rotation, in degrees per unit of
// pointer movement.
const DragSensitivity = 0.5

// Viewer owns the mesh, the rotation accumulators, and the derived
// transformed vertex set. The angles grow without bound across drags; trig
// handles the wrap. All access happens on the single event-owning
// goroutine.
type Viewer struct {
	Mesh        *models.Mesh
	AngleX      float64 // degrees
	AngleY      float64 // degrees
	Transformed []math3d.Vec3

	dirty bool
}

// NewViewer creates a viewer and computes the initial transformed set, so
// mesh problems (empty, degenerate) surface before any drawing starts.
func NewViewer(mesh *models.Mesh) (*Viewer, error) {
	v := &Viewer{Mesh: mesh}
	if err := v.Recompute(); err != nil {
		return nil, err
	}
	return v, nil
}

// Drag applies a pointer movement of (dx, dy): horizontal movement spins
// about Y, vertical about X. The transformed set is marked stale.
func (v *Viewer) Drag(dx, dy int) {
	v.AngleY += float64(dx) * DragSensitivity
	v.AngleX += float64(dy) * DragSensitivity
	v.dirty = true
}

// Reset returns both angles to zero and marks the transformed set stale.
func (v *Viewer) Reset() {
	v.AngleX = 0
	v.AngleY = 0
	v.dirty = true
}

// Dirty reports whether the transformed set is stale relative to the
// current angles.
func (v *Viewer) Dirty() bool {
	return v.dirty
}

// Recompute rebuilds the full transformed vertex set from the mesh and the
// current angles. Nothing is updated incrementally.
func (v *Viewer) Recompute() error {
	t, err := ApplyTransform(v.Mesh, v.AngleX, v.AngleY)
	if err != nil {
		return err
	}
	v.Transformed = t
	v.dirty = false
	return nil
}

// Frame recomputes if stale and emits the draw-command stream for the
// current view.
func (v *Viewer) Frame(p *Painter) ([]Command, error) {
	if v.dirty {
		if err := v.Recompute(); err != nil {
			return nil, err
		}
	}
	return p.Paint(v.Mesh, v.Transformed), nil
}
