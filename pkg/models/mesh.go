// Package models provides 3D model loading and representation for facet.
package models

import (
	"fmt"

	"github.com/facetview/facet/pkg/math3d"
)

// Vertex is a mesh vertex as declared in the model file. ID is the 1-based
// identifier from the file; faces reference vertices by load order, not by
// this field.
type Vertex struct {
	ID       int
	Position math3d.Vec3
}

// Face is a triangle referencing vertices by 1-based load-order index.
type Face struct {
	V [3]int
}

// Mesh is an ordered set of vertices plus the faces built on them.
// Vertices and faces are immutable once loaded.
type Mesh struct {
	Name     string
	Vertices []Vertex
	Faces    []Face
}

// NewMesh creates an empty mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{Name: name}
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// FaceCount returns the number of faces.
func (m *Mesh) FaceCount() int {
	return len(m.Faces)
}

// Corner returns the position of face f's i-th corner (i in 0..2).
func (m *Mesh) Corner(f Face, i int) math3d.Vec3 {
	return m.Vertices[f.V[i]-1].Position
}

// FaceIndexError reports a face whose vertex index does not resolve to a
// loaded vertex.
type FaceIndexError struct {
	Face  int // 0-based face position in load order
	Index int // the offending 1-based vertex index
	Max   int // number of vertices in the mesh
}

func (e *FaceIndexError) Error() string {
	return fmt.Sprintf("face %d references vertex %d, valid range is 1..%d", e.Face+1, e.Index, e.Max)
}

// ValidateFaces checks that every face index is within [1, VertexCount].
// Loaders call this so that out-of-range indices are rejected up front
// instead of faulting during rendering.
func (m *Mesh) ValidateFaces() error {
	n := len(m.Vertices)
	for i, f := range m.Faces {
		for _, idx := range f.V {
			if idx < 1 || idx > n {
				return &FaceIndexError{Face: i, Index: idx, Max: n}
			}
		}
	}
	return nil
}
