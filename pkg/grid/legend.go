package grid

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/wireview/wireview/pkg/geom"
)

// Legend renders the bordered information block printed above a view panel:
// a small axis-arrow drawing of the direction, the object name, the
// temperature color key, the direction/highlight description, and the mesh
// counts. Column widths are computed from visible width, ignoring any escape
// sequences the styles emit.
func Legend(obj *geom.Object, depth int, stats Stats, d Direction, hl Highlight, st *Style) string {
	if st == nil {
		st = NewStyle(false)
	}

	title := st.Bold().Render(obj.Name)
	if depth > 0 {
		title += " (+" + st.Temperature(depth).Render(strconv.Itoa(depth)) + " layers deep)"
	}

	key := make([]string, 0, st.Levels())
	for i := 0; i < st.Levels(); i++ {
		label := strconv.Itoa(i)
		if i == st.Levels()-1 {
			label += "+"
		}
		key = append(key, st.Temperature(i).Render(label))
	}

	desc := st.Axis(d.Normal()).Render(d.Name) + " view of " + st.Highlight(hl).Render(hl.String())

	info := []string{
		title,
		strings.Join(key, " "),
		desc,
		stats.describe(st),
	}

	art := directionArt(d, st)
	lines := []string{
		"┌───────",
		"│" + art[0],
		"│" + art[1],
		"│" + art[2],
		"└───────",
	}

	for i := 0; i*2 < len(info); i++ {
		just := 0
		for k := i * 2; k < len(info) && k < i*2+2; k++ {
			if w := ansi.StringWidth(info[k]); w > just {
				just = w
			}
		}
		seps := []rune{'┬', '│', '├', '│', '┴'}
		if i > 0 {
			seps[2] = '┼'
		}
		for j := range lines {
			lines[j] += string(seps[j])
			if j%2 == 0 {
				lines[j] += strings.Repeat("─", just+2)
				continue
			}
			idx := i*2 + j/2
			if idx < len(info) {
				lines[j] += " " + info[idx] + strings.Repeat(" ", just-ansi.StringWidth(info[idx])+1)
			} else {
				lines[j] += strings.Repeat(" ", just+2)
			}
		}
	}

	closers := []rune{'┐', '│', '┤', '│', '┘'}
	var b strings.Builder
	for j, line := range lines {
		b.WriteString(line)
		b.WriteRune(closers[j])
		b.WriteByte('\n')
	}
	return b.String()
}

// directionArt draws the 3-row axis-arrow figure identifying a view
// direction: an arrow along the horizontal axis and a bar toward the
// vertical one, with colored axis letters. Reversed axes mirror the figure.
func directionArt(d Direction, st *Style) [3]string {
	hLetter := st.Axis(d.Horizontal.Coord).Render(d.Horizontal.Coord.String())
	vLetter := st.Axis(d.Vertical.Coord).Render(d.Vertical.Coord.String())

	core := "╋━━"
	if d.Horizontal.Reversed {
		core = "━━╋"
	}
	top := []string{"╺" + core + "╸", hLetter, " "}
	middle := []string{" ", "┃", "     "}
	bottom := []string{" ", vLetter, "     "}
	if d.Horizontal.Reversed {
		reverse(top)
		reverse(middle)
		reverse(bottom)
	}

	rows := [][]string{top, middle, bottom}
	if d.Vertical.Reversed {
		rows = [][]string{bottom, middle, top}
	}

	var out [3]string
	for i, r := range rows {
		out[i] = strings.Join(r, "")
	}
	return out
}
