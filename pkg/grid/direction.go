package grid

import (
	"strings"

	"github.com/wireview/wireview/pkg/errors"
	"github.com/wireview/wireview/pkg/geom"
)

// Direction is one of the canonical axis pairings a mesh is rendered from.
// The pairings are a fixed convention: top looks down the z axis, front and
// side look along x and y.
type Direction struct {
	Name       string
	Vertical   Spec
	Horizontal Spec
}

// The three canonical view directions.
var (
	Top   = Direction{Name: "TOP", Vertical: Spec{Coord: geom.CoordX, Reversed: true}, Horizontal: Spec{Coord: geom.CoordY, Reversed: true}}
	Front = Direction{Name: "FRONT", Vertical: Spec{Coord: geom.CoordZ, Reversed: true}, Horizontal: Spec{Coord: geom.CoordY, Reversed: true}}
	Side  = Direction{Name: "SIDE", Vertical: Spec{Coord: geom.CoordZ, Reversed: true}, Horizontal: Spec{Coord: geom.CoordX}}
)

// Directions returns the canonical directions in render order.
func Directions() []Direction {
	return []Direction{Top, Front, Side}
}

// ParseDirection parses a direction name.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(s) {
	case "top", "t":
		return Top, nil
	case "front", "f":
		return Front, nil
	case "side", "s":
		return Side, nil
	}
	return Direction{}, errors.New(errors.ErrCodeInvalidView, "unknown view direction %q (want top, front, or side)", s)
}

// Normal returns the coordinate the direction looks along: the one dropped
// by the projection.
func (d Direction) Normal() geom.Coord {
	return geom.Other(d.Vertical.Coord, d.Horizontal.Coord)
}
