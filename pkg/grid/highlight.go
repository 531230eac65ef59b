package grid

import (
	"strings"

	"github.com/wireview/wireview/pkg/errors"
)

// Highlight selects which incidence count drives point coloring: how many
// vertices coincide at a grid point, or how many edges pass through it.
type Highlight int

const (
	// HighlightVertices colors points by coinciding vertex count and
	// leaves line segments cold.
	HighlightVertices Highlight = iota
	// HighlightEdges colors points by the densest adjacent segment and
	// segments by their own edge count.
	HighlightEdges
)

// ParseHighlight parses a highlight mode name.
func ParseHighlight(s string) (Highlight, error) {
	switch strings.ToLower(s) {
	case "vertices", "v":
		return HighlightVertices, nil
	case "edges", "e":
		return HighlightEdges, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidHighlight, "unknown highlight mode %q (want vertices or edges)", s)
}

// String returns the mode name.
func (h Highlight) String() string {
	if h == HighlightVertices {
		return "vertices"
	}
	return "edges"
}

// point returns the count coloring a grid point, given its vertex count and
// the edge counts on its four sides.
func (h Highlight) point(vertices, top, right, bottom, left int) int {
	if h == HighlightVertices {
		return vertices
	}
	return max(top, right, bottom, left)
}

// segment returns the count coloring a line segment.
func (h Highlight) segment(count int) int {
	if h == HighlightVertices {
		return 0
	}
	return count
}
