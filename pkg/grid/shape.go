package grid

// shape encodes which of the four sides of a grid point carry a rendered
// edge, as a 4-bit flag.
type shape uint8

const (
	shapeTop shape = 1 << iota
	shapeRight
	shapeBottom
	shapeLeft
)

// shapeGlyphs maps each flag combination to its box-drawing junction glyph,
// from the plain cross (no edges) to the heavy four-way junction.
var shapeGlyphs = []rune("┼╹╺┗╻┃┏┣╸┛━┻┓┫┳╋")

// glyph returns the box-drawing character for the flag combination.
func (s shape) glyph() string {
	return string(shapeGlyphs[s])
}
