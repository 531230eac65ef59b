package grid

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/wireview/wireview/pkg/geom"
)

// temperatureColors is the fixed palette for incidence highlighting, coldest
// to hottest. Counts at or above the palette size clamp to the last entry.
var temperatureColors = []lipgloss.Color{
	lipgloss.Color("15"), // white
	lipgloss.Color("12"), // blue
	lipgloss.Color("14"), // cyan
	lipgloss.Color("10"), // green
	lipgloss.Color("11"), // yellow
	lipgloss.Color("9"),  // red
	lipgloss.Color("13"), // magenta
}

// axisColors identifies each coordinate axis in legends and headers.
var axisColors = map[geom.Coord]lipgloss.Color{
	geom.CoordX: lipgloss.Color("9"),
	geom.CoordY: lipgloss.Color("10"),
	geom.CoordZ: lipgloss.Color("12"),
}

// Style holds the resolved terminal styling for one render call. Color
// enablement is an explicit configuration value, not ambient state: callers
// decide (typically from a TTY check or a --color flag) and pass the result
// in. A disabled Style emits exactly the same characters without any escape
// sequences.
type Style struct {
	enabled     bool
	temperature []lipgloss.Style
	axis        map[geom.Coord]lipgloss.Style
	bold        lipgloss.Style
	vertexMark  lipgloss.Style
	edgeMark    lipgloss.Style
}

// NewStyle builds a Style. With color enabled output uses the basic ANSI
// profile; disabled output is plain text.
func NewStyle(color bool) *Style {
	r := lipgloss.NewRenderer(io.Discard)
	if color {
		r.SetColorProfile(termenv.ANSI)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}

	s := &Style{
		enabled: color,
		axis:    make(map[geom.Coord]lipgloss.Style, len(axisColors)),
	}
	for _, c := range temperatureColors {
		s.temperature = append(s.temperature, r.NewStyle().Foreground(c))
	}
	for coord, c := range axisColors {
		s.axis[coord] = r.NewStyle().Foreground(c).Bold(true)
	}
	s.bold = r.NewStyle().Bold(true)
	s.vertexMark = r.NewStyle().Foreground(lipgloss.Color("13"))
	s.edgeMark = r.NewStyle().Foreground(lipgloss.Color("14"))
	return s
}

// Enabled reports whether escape sequences are emitted.
func (s *Style) Enabled() bool { return s.enabled }

// Levels returns the palette size.
func (s *Style) Levels() int { return len(s.temperature) }

// Temperature returns the style for an incidence count, clamping hot counts
// to the last palette entry.
func (s *Style) Temperature(count int) lipgloss.Style {
	if count >= len(s.temperature) {
		count = len(s.temperature) - 1
	}
	if count < 0 {
		count = 0
	}
	return s.temperature[count]
}

// Axis returns the identifying style for a coordinate axis.
func (s *Style) Axis(c geom.Coord) lipgloss.Style {
	return s.axis[c]
}

// Bold returns the emphasis style used for object names.
func (s *Style) Bold() lipgloss.Style { return s.bold }

// Highlight returns the style identifying a highlight mode in legends.
func (s *Style) Highlight(h Highlight) lipgloss.Style {
	if h == HighlightVertices {
		return s.vertexMark
	}
	return s.edgeMark
}
