// Package grid renders polygon meshes as proportionally-spaced,
// color-highlighted box-drawing wireframe projections for terminals.
//
// The pipeline is: Gather flattens an object tree into one transformed face
// set, a View projects that set onto two coordinate axes and counts vertex
// and edge incidence per grid cell, and Render assembles the annotated text
// panels for the three canonical directions (top, front, side).
package grid

import (
	"math"
	"sort"
	"strconv"

	"github.com/wireview/wireview/pkg/errors"
	"github.com/wireview/wireview/pkg/geom"
)

// minGap is the smallest resolvable distance between two distinct axis
// values. Anything closer means the mesh is not actually grid-aligned and
// cannot be laid out on a discrete text grid.
const minGap = 0.001

// Spec selects a coordinate and an on-screen direction for one axis of a
// view.
type Spec struct {
	Coord    geom.Coord
	Reversed bool
}

// String formats the spec as "x" or "-x".
func (s Spec) String() string {
	if s.Reversed {
		return "-" + s.Coord.String()
	}
	return s.Coord.String()
}

// Axis is a discretized coordinate axis derived from a vertex set: only
// values that actually occur among the vertices become rendered positions.
// Spacing between adjacent positions is proportional to the true geometric
// gap, measured in integer multiples of the smallest gap.
type Axis struct {
	Spec Spec

	// Values holds the distinct coordinate values in on-screen order.
	Values []float64
	// Distances[i] is the integer spacing between Values[i] and
	// Values[i+1]: round(gap / smallest gap).
	Distances []int
	// Labels holds the display label for each value, rounded to three
	// decimal places.
	Labels []string
	// Just is the widest label length, used for column justification.
	Just int

	index map[float64]int
}

// NewAxis extracts the axis for spec from the given vertices.
func NewAxis(spec Spec, vertices []geom.Vector) (*Axis, error) {
	distinct := make(map[float64]struct{}, len(vertices))
	for _, v := range vertices {
		distinct[v.Component(spec.Coord)] = struct{}{}
	}
	if len(distinct) == 0 {
		return nil, errors.New(errors.ErrCodeEmptyAxis, "axis %s has no vertex values", spec)
	}

	values := make([]float64, 0, len(distinct))
	for v := range distinct {
		values = append(values, v)
	}
	sort.Float64s(values)

	gaps := make([]float64, 0, len(values)-1)
	for i := 1; i < len(values); i++ {
		gaps = append(gaps, values[i]-values[i-1])
	}
	if spec.Reversed {
		reverse(values)
		reverse(gaps)
	}

	distances := make([]int, 0, len(gaps))
	if len(gaps) > 0 {
		smallest := gaps[0]
		for _, g := range gaps[1:] {
			if g < smallest {
				smallest = g
			}
		}
		if smallest <= minGap {
			return nil, errors.New(errors.ErrCodePrecision,
				"axis %s values %.6f apart cannot be resolved on the text grid", spec, smallest)
		}
		for _, g := range gaps {
			distances = append(distances, int(math.Round(g/smallest)))
		}
	}

	labels := make([]string, 0, len(values))
	just := 0
	index := make(map[float64]int, len(values))
	for i, v := range values {
		label := strconv.FormatFloat(math.Round(v*1000)/1000, 'f', -1, 64)
		labels = append(labels, label)
		if len(label) > just {
			just = len(label)
		}
		index[v] = i
	}

	return &Axis{
		Spec:      spec,
		Values:    values,
		Distances: distances,
		Labels:    labels,
		Just:      just,
		index:     index,
	}, nil
}

// Index returns the on-screen position of an exact coordinate value.
func (a *Axis) Index(value float64) (int, bool) {
	i, ok := a.index[value]
	return i, ok
}

// Len returns the number of distinct values on the axis.
func (a *Axis) Len() int { return len(a.Values) }

func reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
