package geom

import (
	"slices"

	"github.com/wireview/wireview/pkg/errors"
)

// Face is an ordered, cyclic sequence of at least three distinct points
// forming a polygon boundary. Faces are immutable once constructed.
//
// Equality is defined over the edge set: two faces tracing the same boundary
// in a different starting point, direction, or winding are equal. Downstream
// de-duplication of flattened meshes relies on this.
type Face struct {
	points []Vector
}

// NewFace builds a face from its boundary points.
func NewFace(points ...Vector) (Face, error) {
	if len(points) < 3 {
		return Face{}, errors.New(errors.ErrCodeInvalidFace, "face needs at least 3 vertices, got %d", len(points))
	}
	seen := make(map[Vector]struct{}, len(points))
	for _, p := range points {
		if _, ok := seen[p]; ok {
			return Face{}, errors.New(errors.ErrCodeInvalidFace, "face has duplicate vertex %s", p)
		}
		seen[p] = struct{}{}
	}
	return Face{points: slices.Clone(points)}, nil
}

// Points returns a copy of the boundary points in traversal order.
func (f Face) Points() []Vector {
	return slices.Clone(f.points)
}

// Len returns the number of boundary points.
func (f Face) Len() int { return len(f.points) }

// Lines returns the boundary edges: one line per consecutive point pair,
// wrapping from the last point back to the first.
func (f Face) Lines() []Line {
	lines := make([]Line, 0, len(f.points))
	for i := range f.points {
		// Points are pairwise distinct, so every edge is non-degenerate.
		lines = append(lines, Line{A: f.points[i], B: f.points[(i+1)%len(f.points)]})
	}
	return lines
}

// Translate returns the face moved by d.
func (f Face) Translate(d Vector) Face {
	points := make([]Vector, len(f.points))
	for i, p := range f.points {
		points[i] = p.Add(d)
	}
	return Face{points: points}
}

// Rotate returns the face rotated about the vertical axis.
func (f Face) Rotate(r Rotation) Face {
	points := make([]Vector, len(f.points))
	for i, p := range f.points {
		points[i] = p.Rotate(r)
	}
	return Face{points: points}
}

// Equal reports whether f and o have the same edge set.
func (f Face) Equal(o Face) bool {
	if len(f.points) != len(o.points) {
		return false
	}
	edges := make(map[Line]struct{}, len(f.points))
	for _, l := range f.Lines() {
		edges[l.Canonical()] = struct{}{}
	}
	for _, l := range o.Lines() {
		if _, ok := edges[l.Canonical()]; !ok {
			return false
		}
	}
	return true
}

// EdgeKey returns a deterministic string identifying the face's edge set.
// Faces with equal edge sets share the same key.
func (f Face) EdgeKey() string {
	keys := make([]string, 0, len(f.points))
	for _, l := range f.Lines() {
		keys = append(keys, l.Canonical().String())
	}
	slices.Sort(keys)
	var key string
	for _, k := range keys {
		key += k + ";"
	}
	return key
}
