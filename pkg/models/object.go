package models

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/facetview/facet/pkg/math3d"
)

// ParseError describes a line of the object text format that could not be
// parsed as the expected record shape.
type ParseError struct {
	Name string // model name (usually the file name)
	Line int    // 1-based line number
	Msg  string // expected shape or failure description
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.Name, e.Line, e.Msg)
}

// objectReader scans the object text format line by line, skipping blank
// lines and normalizing comma separators, while tracking line numbers for
// error reporting.
type objectReader struct {
	scanner *bufio.Scanner
	name    string
	line    int
}

// next returns the fields of the next non-blank record. ok is false at EOF.
func (r *objectReader) next() (fields []string, ok bool) {
	for r.scanner.Scan() {
		r.line++
		text := strings.ReplaceAll(r.scanner.Text(), ",", " ")
		fields = strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		return fields, true
	}
	return nil, false
}

func (r *objectReader) errorf(format string, args ...any) error {
	return &ParseError{Name: r.name, Line: r.line, Msg: fmt.Sprintf(format, args...)}
}

// LoadObject loads a mesh from the object text format:
//
//	<vertexCount> <faceCount>
//	<id> <x> <y> <z>     repeated vertexCount times
//	<v1> <v2> <v3>       repeated faceCount times, 1-based indices
//
// Fields may be separated by whitespace or commas; blank lines between
// records are ignored and do not count toward the declared record counts.
func LoadObject(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open model: %w", err)
	}
	defer f.Close()
	return ParseObject(f, filepath.Base(path))
}

// ParseObject parses the object text format from r. name is used in error
// messages.
func ParseObject(r io.Reader, name string) (*Mesh, error) {
	or := &objectReader{scanner: bufio.NewScanner(r), name: name}

	fields, ok := or.next()
	if !ok {
		or.line++
		return nil, or.errorf("missing header, expected <vertexCount> <faceCount>")
	}
	if len(fields) < 2 {
		return nil, or.errorf("malformed header %q, expected <vertexCount> <faceCount>", strings.Join(fields, " "))
	}
	vertexCount, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, or.errorf("vertex count %q is not an integer", fields[0])
	}
	faceCount, err := strconv.Atoi(fields[1])
	if err != nil {
		return nil, or.errorf("face count %q is not an integer", fields[1])
	}
	if vertexCount < 0 || faceCount < 0 {
		return nil, or.errorf("negative record count in header (%d vertices, %d faces)", vertexCount, faceCount)
	}

	mesh := NewMesh(name)
	mesh.Vertices = make([]Vertex, 0, vertexCount)
	mesh.Faces = make([]Face, 0, faceCount)

	for i := 0; i < vertexCount; i++ {
		fields, ok := or.next()
		if !ok {
			return nil, or.errorf("truncated file: got %d of %d vertex records", i, vertexCount)
		}
		v, err := parseVertex(fields)
		if err != nil {
			return nil, or.errorf("%v, expected <id> <x> <y> <z>", err)
		}
		mesh.Vertices = append(mesh.Vertices, v)
	}

	for i := 0; i < faceCount; i++ {
		fields, ok := or.next()
		if !ok {
			return nil, or.errorf("truncated file: got %d of %d face records", i, faceCount)
		}
		f, err := parseFace(fields)
		if err != nil {
			return nil, or.errorf("%v, expected <v1> <v2> <v3>", err)
		}
		mesh.Faces = append(mesh.Faces, f)
	}

	if err := or.scanner.Err(); err != nil {
		return nil, fmt.Errorf("read model: %w", err)
	}
	if err := mesh.ValidateFaces(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return mesh, nil
}

func parseVertex(fields []string) (Vertex, error) {
	if len(fields) < 4 {
		return Vertex{}, fmt.Errorf("vertex record has %d fields", len(fields))
	}
	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return Vertex{}, fmt.Errorf("vertex id %q is not an integer", fields[0])
	}
	var coords [3]float64
	for i, s := range fields[1:4] {
		coords[i], err = strconv.ParseFloat(s, 64)
		if err != nil {
			return Vertex{}, fmt.Errorf("coordinate %q is not a number", s)
		}
	}
	return Vertex{
		ID:       id,
		Position: math3d.V3(coords[0], coords[1], coords[2]),
	}, nil
}

func parseFace(fields []string) (Face, error) {
	if len(fields) < 3 {
		return Face{}, fmt.Errorf("face record has %d fields", len(fields))
	}
	var f Face
	for i, s := range fields[:3] {
		idx, err := strconv.Atoi(s)
		if err != nil {
			return Face{}, fmt.Errorf("vertex index %q is not an integer", s)
		}
		f.V[i] = idx
	}
	return f, nil
}
