package cli

import (
	"bytes"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/wireview/wireview/pkg/geom"
	"github.com/wireview/wireview/pkg/grid"
	"github.com/wireview/wireview/pkg/scene"
)

// newViewCmd creates the view command for exploring a scene interactively:
// switch directions, toggle the highlight basis, and walk the tree depth
// without re-running the renderer by hand.
func newViewCmd() *cobra.Command {
	var depth int

	cmd := &cobra.Command{
		Use:   "view [scene file]",
		Short: "Explore a scene's wireframe views interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			obj, err := scene.Load(args[0])
			if err != nil {
				return err
			}
			model := newViewerModel(obj, depth)
			_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
			return err
		},
	}

	cmd.Flags().IntVarP(&depth, "depth", "d", 0, "initial child layers to include")

	return cmd
}

// viewerModel is the bubbletea model for the interactive viewer.
type viewerModel struct {
	obj       *geom.Object
	direction int // index into grid.Directions()
	highlight grid.Highlight
	depth     int
	maxDepth  int
	style     *grid.Style
}

func newViewerModel(obj *geom.Object, depth int) viewerModel {
	maxDepth := 0
	obj.Walk(func(_ *geom.Object, d int) {
		if d > maxDepth {
			maxDepth = d
		}
	})
	if depth < 0 {
		depth = 0
	}
	if depth > maxDepth {
		depth = maxDepth
	}
	return viewerModel{
		obj:       obj,
		highlight: grid.HighlightEdges,
		depth:     depth,
		maxDepth:  maxDepth,
		style:     grid.NewStyle(true),
	}
}

func (m viewerModel) Init() tea.Cmd {
	return nil
}

func (m viewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "t":
		m.direction = 0
	case "f":
		m.direction = 1
	case "s":
		m.direction = 2
	case "tab":
		m.direction = (m.direction + 1) % len(grid.Directions())
	case "h":
		if m.highlight == grid.HighlightEdges {
			m.highlight = grid.HighlightVertices
		} else {
			m.highlight = grid.HighlightEdges
		}
	case "+", "=":
		if m.depth < m.maxDepth {
			m.depth++
		}
	case "-":
		if m.depth > 0 {
			m.depth--
		}
	}
	return m, nil
}

func (m viewerModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.obj.Name))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("t/f/s view  ⇥ cycle  h highlight  +/- depth  q quit"))
	b.WriteString("\n\n")

	var panel bytes.Buffer
	err := grid.Render(&panel, m.obj, grid.Options{
		Depth:      m.depth,
		Directions: []grid.Direction{grid.Directions()[m.direction]},
		Highlight:  m.highlight,
		Style:      m.style,
	})
	switch {
	case err != nil:
		b.WriteString(StyleDim.Render(fmt.Sprintf("render failed: %v", err)))
		b.WriteString("\n")
	case panel.Len() == 0:
		b.WriteString(StyleDim.Render("no faces at this depth"))
		b.WriteString("\n")
	default:
		b.Write(panel.Bytes())
	}

	return b.String()
}
