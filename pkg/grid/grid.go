package grid

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/wireview/wireview/pkg/errors"
	"github.com/wireview/wireview/pkg/geom"
)

// Stats holds mesh counts gathered over an object subtree, the same numbers
// a modeling tool would report.
type Stats struct {
	Objects   int
	Vertices  int
	Edges     int
	Faces     int
	Triangles int
}

// Count tallies an object's mesh recursively down to the given depth.
// Vertices and edges are counted distinct per object.
func Count(obj *geom.Object, depth int) Stats {
	vertices := make(map[geom.Vector]struct{})
	edges := make(map[geom.Line]struct{})
	s := Stats{Objects: 1, Faces: len(obj.Faces())}
	for _, f := range obj.Faces() {
		for _, l := range f.Lines() {
			edges[l.Canonical()] = struct{}{}
			vertices[l.A] = struct{}{}
			vertices[l.B] = struct{}{}
		}
		s.Triangles += f.Len() - 2
	}
	s.Vertices = len(vertices)
	s.Edges = len(edges)

	if depth > 0 {
		for _, child := range obj.Children() {
			c := Count(child, depth-1)
			s.Objects += c.Objects
			s.Vertices += c.Vertices
			s.Edges += c.Edges
			s.Faces += c.Faces
			s.Triangles += c.Triangles
		}
	}
	return s
}

// describe formats the counts for the legend, with each number colored by
// its magnitude.
func (s Stats) describe(st *Style) string {
	parts := make([]string, 0, 5)
	for _, c := range []struct {
		value int
		name  string
	}{
		{s.Objects, "objects"},
		{s.Vertices, "vertices"},
		{s.Edges, "edges"},
		{s.Faces, "faces"},
		{s.Triangles, "triangles"},
	} {
		name := c.name
		if c.value == 1 {
			name = strings.TrimSuffix(name, "s")
		}
		parts = append(parts, st.Temperature(c.value).Render(strconv.Itoa(c.value))+" "+name)
	}
	return strings.Join(parts, ", ")
}

// Gather flattens an object subtree into a single face set. Each node's own
// rotation and translation are applied to everything it contributes as the
// recursion unwinds, so a grandchild face accumulates the grandchild, child,
// and root transforms in that order. Faces with identical edge sets collapse
// to one.
func Gather(obj *geom.Object, depth int) ([]geom.Face, error) {
	if depth < 0 {
		return nil, errors.New(errors.ErrCodeInvalidDepth, "render depth cannot be negative, got %d", depth)
	}
	faces := gather(obj, depth)

	seen := make(map[string]struct{}, len(faces))
	out := faces[:0]
	for _, f := range faces {
		key := f.EdgeKey()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, f)
	}
	return out, nil
}

func gather(obj *geom.Object, depth int) []geom.Face {
	out := append([]geom.Face(nil), obj.Faces()...)
	if depth > 0 {
		for _, child := range obj.Children() {
			out = append(out, gather(child, depth-1)...)
		}
	}
	for i, f := range out {
		out[i] = obj.TransformFace(f)
	}
	return out
}

// Options configures a render call.
type Options struct {
	// Depth bounds the tree walk: 0 renders only the root object's own
	// faces.
	Depth int
	// Directions selects which canonical views to render; nil means all
	// three.
	Directions []Direction
	// Highlight selects the incidence count driving point colors.
	Highlight Highlight
	// Style carries the color configuration; nil renders plain text.
	Style *Style
	// NoLegend suppresses the bordered information block above each view.
	NoLegend bool
}

// Render gathers the object's faces once and writes one annotated view panel
// per requested direction. An object with no faces at the requested depth
// renders nothing.
func Render(w io.Writer, obj *geom.Object, opts Options) error {
	st := opts.Style
	if st == nil {
		st = NewStyle(false)
	}

	faces, err := Gather(obj, opts.Depth)
	if err != nil {
		return err
	}
	if len(faces) == 0 {
		return nil
	}

	dirs := opts.Directions
	if len(dirs) == 0 {
		dirs = Directions()
	}
	stats := Count(obj, opts.Depth)

	for i, d := range dirs {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if !opts.NoLegend {
			if _, err := io.WriteString(w, Legend(obj, opts.Depth, stats, d, opts.Highlight, st)); err != nil {
				return err
			}
		}
		view, err := NewView(faces, d.Vertical, d.Horizontal, d.Name+" VIEW")
		if err != nil {
			return err
		}
		if err := view.Render(w, st, opts.Highlight); err != nil {
			return err
		}
	}
	return nil
}
