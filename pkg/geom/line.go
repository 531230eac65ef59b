package geom

import (
	"fmt"

	"github.com/wireview/wireview/pkg/errors"
)

// Line is an unordered pair of two distinct points. Equality ignores the
// order of the endpoints; use Canonical to get a representative suitable for
// map keys.
type Line struct {
	A, B Vector
}

// NewLine builds a line between two distinct points. Identical endpoints
// make a degenerate line and are rejected.
func NewLine(a, b Vector) (Line, error) {
	if a == b {
		return Line{}, errors.New(errors.ErrCodeDegenerateLine, "line endpoints must differ, both are %s", a)
	}
	return Line{A: a, B: b}, nil
}

// Translate returns the line moved by d.
func (l Line) Translate(d Vector) Line {
	return Line{A: l.A.Add(d), B: l.B.Add(d)}
}

// Rotate returns the line rotated about the vertical axis.
func (l Line) Rotate(r Rotation) Line {
	return Line{A: l.A.Rotate(r), B: l.B.Rotate(r)}
}

// Flatten projects the line onto the plane that drops coordinate c.
// A line perpendicular to that plane collapses to a single point and is
// reported as degenerate.
func (l Line) Flatten(c Coord) (Line, error) {
	return NewLine(l.A.Flatten(c), l.B.Flatten(c))
}

// Canonical returns the line with its endpoints in lexicographic order.
// Two equal lines always share the same canonical value, so it can serve as
// a map key for edge sets.
func (l Line) Canonical() Line {
	if l.B.Less(l.A) {
		return Line{A: l.B, B: l.A}
	}
	return l
}

// Equal reports whether l and o connect the same pair of points, in either
// order.
func (l Line) Equal(o Line) bool {
	return l.Canonical() == o.Canonical()
}

// String formats the line as "a - b".
func (l Line) String() string {
	return fmt.Sprintf("%s - %s", l.A, l.B)
}
