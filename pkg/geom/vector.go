// Package geom provides the immutable geometry value types that make up a
// polygon mesh: vectors, lines, faces, and the object tree that owns them.
//
// All types have value semantics. Transform operations (Add, Scale, Rotate,
// Flatten) return new values and never mutate. Equality is structural:
// vectors compare component-wise, lines compare as unordered endpoint pairs,
// and faces compare by their edge set, deliberately ignoring traversal order
// and winding.
package geom

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/wireview/wireview/pkg/errors"
)

// Coord identifies one of the three coordinate axes.
type Coord uint8

// The three coordinates of a Vector.
const (
	CoordX Coord = iota
	CoordY
	CoordZ
)

// String returns the lowercase axis letter.
func (c Coord) String() string {
	switch c {
	case CoordX:
		return "x"
	case CoordY:
		return "y"
	case CoordZ:
		return "z"
	}
	return "?"
}

// Other returns the coordinate that is neither a nor b.
// It is used to find the axis dropped by a two-axis projection.
func Other(a, b Coord) Coord {
	return CoordX + CoordY + CoordZ - a - b
}

// Rotation is a vertical-axis rotation angle, always a multiple of 90
// degrees normalized into [0, 360). The zero value is the identity rotation.
type Rotation int

// The four representable rotations.
const (
	Rotate0   Rotation = 0
	Rotate90  Rotation = 90
	Rotate180 Rotation = 180
	Rotate270 Rotation = 270
)

// NewRotation validates deg and returns it as a normalized Rotation.
// Angles that are not multiples of 90 degrees are rejected: the meshes this
// renderer consumes are always axis-aligned at 90-degree increments.
func NewRotation(deg float64) (Rotation, error) {
	if math.Mod(deg, 90) != 0 {
		return 0, errors.New(errors.ErrCodeInvalidRotation, "rotation must be a multiple of 90 degrees, got %v", deg)
	}
	m := math.Mod(deg, 360)
	if m < 0 {
		m += 360
	}
	return Rotation(m), nil
}

// Vector is an immutable 3D point or displacement.
type Vector struct {
	X, Y, Z float64
}

// V is shorthand for constructing a Vector.
func V(x, y, z float64) Vector { return Vector{X: x, Y: y, Z: z} }

// Add returns the component-wise sum of v and o.
func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Scale returns v scaled uniformly by f.
func (v Vector) Scale(f float64) Vector {
	return Vector{X: v.X * f, Y: v.Y * f, Z: v.Z * f}
}

// Rotate returns v rotated about the vertical axis, clockwise when viewed
// from above. Z is unchanged.
func (v Vector) Rotate(r Rotation) Vector {
	switch r {
	case Rotate90:
		return Vector{X: v.Y, Y: -v.X, Z: v.Z}
	case Rotate180:
		return Vector{X: -v.X, Y: -v.Y, Z: v.Z}
	case Rotate270:
		return Vector{X: -v.Y, Y: v.X, Z: v.Z}
	}
	return v
}

// Component returns the value of coordinate c.
func (v Vector) Component(c Coord) float64 {
	switch c {
	case CoordX:
		return v.X
	case CoordY:
		return v.Y
	}
	return v.Z
}

// Flatten returns v with coordinate c set to zero, projecting it onto the
// plane of the remaining two coordinates.
func (v Vector) Flatten(c Coord) Vector {
	switch c {
	case CoordX:
		return Vector{Y: v.Y, Z: v.Z}
	case CoordY:
		return Vector{X: v.X, Z: v.Z}
	}
	return Vector{X: v.X, Y: v.Y}
}

// Less orders vectors lexicographically by (X, Y, Z). It exists so lines can
// be put into a canonical endpoint order.
func (v Vector) Less(o Vector) bool {
	if v.X != o.X {
		return v.X < o.X
	}
	if v.Y != o.Y {
		return v.Y < o.Y
	}
	return v.Z < o.Z
}

// String formats the vector as "(x, y, z)" with minimal digits.
func (v Vector) String() string {
	parts := make([]string, 0, 3)
	for _, f := range []float64{v.X, v.Y, v.Z} {
		parts = append(parts, strconv.FormatFloat(f, 'f', -1, 64))
	}
	return fmt.Sprintf("(%s)", strings.Join(parts, ", "))
}
