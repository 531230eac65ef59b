package grid

import (
	"fmt"
	"io"
	"strings"

	"github.com/wireview/wireview/pkg/errors"
	"github.com/wireview/wireview/pkg/geom"
)

// View is one 2D orthographic slice of a face set: two chosen axes, the
// third coordinate dropped. It holds the derived axes and three incidence
// matrices — vertex counts per grid point and edge counts per horizontal and
// vertical cell-to-cell segment.
type View struct {
	Title      string
	Vertical   *Axis
	Horizontal *Axis

	// vertexCounts[v][h] counts vertices whose two relevant coordinates
	// match that grid point exactly.
	vertexCounts [][]int
	// horizontalCounts[v][h] counts edges covering the segment between
	// columns h and h+1 at row v.
	horizontalCounts [][]int
	// verticalCounts[v][h] counts edges covering the segment between rows
	// v and v+1 at column h.
	verticalCounts [][]int

	vertexTotal int
}

// NewView projects faces onto the plane of the two given axes and counts
// incidence per grid cell. Edges perpendicular to the view plane and edges
// that remain diagonal after flattening are invisible in this projection and
// are skipped, not errors.
func NewView(faces []geom.Face, vertical, horizontal Spec, title string) (*View, error) {
	if vertical.Coord == horizontal.Coord {
		return nil, errors.New(errors.ErrCodeInvalidView,
			"view axes must use distinct coordinates, both are %s", vertical.Coord)
	}

	lines := make(map[geom.Line]struct{})
	vertices := make(map[geom.Vector]struct{})
	for _, f := range faces {
		for _, l := range f.Lines() {
			lines[l.Canonical()] = struct{}{}
			vertices[l.A] = struct{}{}
			vertices[l.B] = struct{}{}
		}
	}
	verts := make([]geom.Vector, 0, len(vertices))
	for v := range vertices {
		verts = append(verts, v)
	}

	vAxis, err := NewAxis(vertical, verts)
	if err != nil {
		return nil, err
	}
	hAxis, err := NewAxis(horizontal, verts)
	if err != nil {
		return nil, err
	}

	v := &View{
		Title:       title,
		Vertical:    vAxis,
		Horizontal:  hAxis,
		vertexTotal: len(verts),
	}
	v.countVertices(verts)
	v.countLines(lines)
	return v, nil
}

func (v *View) countVertices(vertices []geom.Vector) {
	v.vertexCounts = makeMatrix(v.Vertical.Len(), v.Horizontal.Len())
	for _, vert := range vertices {
		vi, _ := v.Vertical.Index(vert.Component(v.Vertical.Spec.Coord))
		hi, _ := v.Horizontal.Index(vert.Component(v.Horizontal.Spec.Coord))
		v.vertexCounts[vi][hi]++
	}
}

func (v *View) countLines(lines map[geom.Line]struct{}) {
	v.horizontalCounts = makeMatrix(v.Vertical.Len(), v.Horizontal.Len()-1)
	v.verticalCounts = makeMatrix(v.Vertical.Len()-1, v.Horizontal.Len())

	vc, hc := v.Vertical.Spec.Coord, v.Horizontal.Spec.Coord
	third := geom.Other(vc, hc)
	for l := range lines {
		fl, err := l.Flatten(third)
		if err != nil {
			// Perpendicular to the view plane: collapses to a point.
			continue
		}
		va, vb := fl.A.Component(vc), fl.B.Component(vc)
		ha, hb := fl.A.Component(hc), fl.B.Component(hc)
		switch {
		case ha == hb:
			v1, _ := v.Vertical.Index(va)
			v2, _ := v.Vertical.Index(vb)
			h, _ := v.Horizontal.Index(ha)
			for i := min(v1, v2); i < max(v1, v2); i++ {
				v.verticalCounts[i][h]++
			}
		case va == vb:
			h1, _ := v.Horizontal.Index(ha)
			h2, _ := v.Horizontal.Index(hb)
			row, _ := v.Vertical.Index(va)
			for i := min(h1, h2); i < max(h1, h2); i++ {
				v.horizontalCounts[row][i]++
			}
			// Edges diagonal after flattening have no axis-parallel
			// projection and are omitted.
		}
	}
}

func makeMatrix(rows, cols int) [][]int {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	m := make([][]int, rows)
	for i := range m {
		m[i] = make([]int, cols)
	}
	return m
}

// VertexTotal returns the number of distinct vertices in the view.
func (v *View) VertexTotal() int { return v.vertexTotal }

// VertexCount returns the vertex count at grid point (vi, hi).
func (v *View) VertexCount(vi, hi int) int { return v.vertexCounts[vi][hi] }

// HorizontalCount returns the edge count on the segment between columns hi
// and hi+1 at row vi.
func (v *View) HorizontalCount(vi, hi int) int { return v.horizontalCounts[vi][hi] }

// VerticalCount returns the edge count on the segment between rows vi and
// vi+1 at column hi.
func (v *View) VerticalCount(vi, hi int) int { return v.verticalCounts[vi][hi] }

// sideCounts returns the edge counts on the four sides of grid point
// (vi, hi); sides past the grid edge are zero.
func (v *View) sideCounts(vi, hi int) (top, right, bottom, left int) {
	if vi > 0 {
		top = v.verticalCounts[vi-1][hi]
	}
	if hi < v.Horizontal.Len()-1 {
		right = v.horizontalCounts[vi][hi]
	}
	if vi < v.Vertical.Len()-1 {
		bottom = v.verticalCounts[vi][hi]
	}
	if hi > 0 {
		left = v.horizontalCounts[vi][hi-1]
	}
	return top, right, bottom, left
}

// pointGlyph picks and colors the junction glyph at grid point (vi, hi).
func (v *View) pointGlyph(vi, hi int, st *Style, hl Highlight) string {
	top, right, bottom, left := v.sideCounts(vi, hi)
	var s shape
	if top > 0 {
		s |= shapeTop
	}
	if right > 0 {
		s |= shapeRight
	}
	if bottom > 0 {
		s |= shapeBottom
	}
	if left > 0 {
		s |= shapeLeft
	}
	count := hl.point(v.vertexCounts[vi][hi], top, right, bottom, left)
	return st.Temperature(count).Render(s.glyph())
}

// horizontalRun renders the segment between columns hi and hi+1 at row vi:
// solid when an edge covers it, dashed when the position is empty, sized by
// the axis distance so spacing stays proportional.
func (v *View) horizontalRun(vi, hi int, st *Style, hl Highlight) string {
	count := v.horizontalCounts[vi][hi]
	ch := "╌"
	if count > 0 {
		ch = "━"
	}
	width := v.Horizontal.Distances[hi]*2 - 1
	return st.Temperature(hl.segment(count)).Render(strings.Repeat(ch, width))
}

// verticalRune renders one filler-row character of the segment between rows
// vi and vi+1 at column hi.
func (v *View) verticalRune(vi, hi int, st *Style, hl Highlight) string {
	count := v.verticalCounts[vi][hi]
	ch := "┆"
	if count > 0 {
		ch = "┃"
	}
	return st.Temperature(hl.segment(count)).Render(ch)
}

// Render writes the view panel: a header strip of stacked column labels, the
// proportionally-spaced grid body with row labels mirrored on both sides,
// and a footer strip of column labels.
func (v *View) Render(w io.Writer, st *Style, hl Highlight) error {
	if st == nil {
		st = NewStyle(false)
	}

	var b strings.Builder
	v.labelStrip(&b, true)

	for i := range v.Vertical.Values {
		if i > 0 {
			for r := 0; r < v.Vertical.Distances[i-1]-1; r++ {
				b.WriteString(strings.Repeat(" ", v.Vertical.Just+1))
				for k := range v.Horizontal.Values {
					if k > 0 {
						b.WriteString(strings.Repeat(" ", v.Horizontal.Distances[k-1]*2-1))
					}
					b.WriteString(v.verticalRune(i-1, k, st, hl))
				}
				b.WriteByte('\n')
			}
		}
		label := v.Vertical.Labels[i]
		fmt.Fprintf(&b, "%*s ", v.Vertical.Just, label)
		for j := range v.Horizontal.Values {
			if j > 0 {
				b.WriteString(v.horizontalRun(i, j-1, st, hl))
			}
			b.WriteString(v.pointGlyph(i, j, st, hl))
		}
		b.WriteString(" " + label + "\n")
	}

	v.labelStrip(&b, false)

	_, err := io.WriteString(w, b.String())
	return err
}

// labelStrip writes the horizontal axis labels split one character per row,
// right-justified above the grid and left-justified below, so
// multi-character labels stack vertically over their column.
func (v *View) labelStrip(b *strings.Builder, header bool) {
	for row := 0; row < v.Horizontal.Just; row++ {
		b.WriteString(strings.Repeat(" ", v.Vertical.Just+1))
		for j, label := range v.Horizontal.Labels {
			if j > 0 {
				b.WriteString(strings.Repeat(" ", v.Horizontal.Distances[j-1]*2-1))
			}
			var padded string
			if header {
				padded = fmt.Sprintf("%*s", v.Horizontal.Just, label)
			} else {
				padded = fmt.Sprintf("%-*s", v.Horizontal.Just, label)
			}
			b.WriteByte(padded[row])
		}
		b.WriteByte('\n')
	}
}
