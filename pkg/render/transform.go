// Package render implements facet's geometry pipeline and software
// rendering: normalization, rotation, orthographic projection, flat
// shading, and painter's-algorithm draw-command emission.
package render

import (
	"errors"
	"math"

	"github.com/facetview/facet/pkg/math3d"
	"github.com/facetview/facet/pkg/models"
)

var (
	// ErrEmptyMesh is returned when a transform is requested on a mesh
	// with no vertices.
	ErrEmptyMesh = errors.New("render: mesh has no vertices")

	// ErrDegenerateScale is returned when every vertex coincides with the
	// centroid, leaving no extent to normalize by.
	ErrDegenerateScale = errors.New("render: all vertices coincide, cannot normalize")
)

// Centroid returns the arithmetic mean of all vertex positions.
func Centroid(m *models.Mesh) (math3d.Vec3, error) {
	if len(m.Vertices) == 0 {
		return math3d.Zero3(), ErrEmptyMesh
	}
	sum := math3d.Zero3()
	for _, v := range m.Vertices {
		sum = sum.Add(v.Position)
	}
	return sum.Div(float64(len(m.Vertices))), nil
}

// MaxExtent returns the maximum Euclidean distance from center over all
// vertices.
func MaxExtent(m *models.Mesh, center math3d.Vec3) float64 {
	extent := 0.0
	for _, v := range m.Vertices {
		if d := v.Position.Distance(center); d > extent {
			extent = d
		}
	}
	return extent
}

// Normalize translates the mesh to its centroid and uniformly scales it so
// the farthest vertex sits on the unit sphere. The result is a fresh slice
// in load order; the mesh itself is never mutated.
func Normalize(m *models.Mesh) ([]math3d.Vec3, error) {
	center, err := Centroid(m)
	if err != nil {
		return nil, err
	}
	extent := MaxExtent(m, center)
	if extent == 0 {
		return nil, ErrDegenerateScale
	}

	out := make([]math3d.Vec3, len(m.Vertices))
	for i, v := range m.Vertices {
		out[i] = v.Position.Sub(center).Div(extent)
	}
	return out, nil
}

// RotateX rotates v about the X axis by degrees.
func RotateX(v math3d.Vec3, degrees float64) math3d.Vec3 {
	rad := degrees * math.Pi / 180
	c, s := math.Cos(rad), math.Sin(rad)
	return math3d.V3(
		v.X,
		v.Y*c-v.Z*s,
		v.Y*s+v.Z*c,
	)
}

// RotateY rotates v about the Y axis by degrees.
func RotateY(v math3d.Vec3, degrees float64) math3d.Vec3 {
	rad := degrees * math.Pi / 180
	c, s := math.Cos(rad), math.Sin(rad)
	return math3d.V3(
		v.X*c+v.Z*s,
		v.Y,
		-v.X*s+v.Z*c,
	)
}

// ApplyTransform recomputes the full transformed vertex set for the given
// view angles: normalize to the unit sphere, rotate about X, then about Y.
// The rotation order is significant and must stay X-then-Y.
func ApplyTransform(m *models.Mesh, angleX, angleY float64) ([]math3d.Vec3, error) {
	out, err := Normalize(m)
	if err != nil {
		return nil, err
	}
	for i, v := range out {
		out[i] = RotateY(RotateX(v, angleX), angleY)
	}
	return out, nil
}
