package render

import (
	"image"
	"sort"

	"github.com/facetview/facet/pkg/math3d"
	"github.com/facetview/facet/pkg/models"
)

// dotRadius is the size of visible-vertex markers in pixels.
const dotRadius = 3

// Painter turns a transformed mesh into an ordered draw-command stream
// using the painter's algorithm: faces are stably sorted by average depth
// and emitted back to front so nearer faces overpaint farther ones. No
// pixels are touched here.
type Painter struct {
	Viewport  Viewport
	Wireframe bool // overlay black edges on each face
	Dots      bool // mark front-facing vertices in front of the view plane
}

// NewPainter creates a painter with the wire overlay and vertex dots
// enabled.
func NewPainter(vp Viewport) *Painter {
	return &Painter{Viewport: vp, Wireframe: true, Dots: true}
}

// depthFace pairs a face with its painter's depth key.
type depthFace struct {
	face models.Face
	avgZ float64
}

// Paint emits the draw-command stream for one frame. verts is the
// transformed vertex set in mesh load order; it is read, never written.
func (p *Painter) Paint(mesh *models.Mesh, verts []math3d.Vec3) []Command {
	sorted := make([]depthFace, len(mesh.Faces))
	for i, f := range mesh.Faces {
		avgZ := (verts[f.V[0]-1].Z + verts[f.V[1]-1].Z + verts[f.V[2]-1].Z) / 3
		sorted[i] = depthFace{face: f, avgZ: avgZ}
	}
	// Ascending: farthest first. Stable, so equal depths keep load order.
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].avgZ < sorted[j].avgZ
	})

	visible := make([]bool, len(verts))
	cmds := make([]Command, 0, len(sorted))

	for _, df := range sorted {
		f := df.face
		v1 := verts[f.V[0]-1]
		v2 := verts[f.V[1]-1]
		v3 := verts[f.V[2]-1]

		n, ok := FaceNormal(v1, v2, v3)
		if !ok {
			continue
		}

		pts := [3]image.Point{
			p.Viewport.Project(v1),
			p.Viewport.Project(v2),
			p.Viewport.Project(v3),
		}
		cmds = append(cmds, FillTriangle{P: pts, Color: ShadeColor(ShadeIntensity(n))})

		if p.Wireframe {
			for i := range 3 {
				cmds = append(cmds, Line{From: pts[i], To: pts[(i+1)%3], Width: 1, Color: ColorBlack})
			}
		}

		if FrontFacing(n) {
			visible[f.V[0]-1] = true
			visible[f.V[1]-1] = true
			visible[f.V[2]-1] = true
		}
	}

	if p.Dots {
		for i, v := range verts {
			// Strictly in front of the view plane; z == 0 gets no dot.
			if !visible[i] || v.Z <= 0 {
				continue
			}
			cmds = append(cmds, FillCircle{Center: p.Viewport.Project(v), Radius: dotRadius, Color: ColorBlue})
		}
	}

	return cmds
}
