package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wireview/wireview/pkg/grid"
	"github.com/wireview/wireview/pkg/scene"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	depth     int    // how many child layers to include
	views     string // comma-separated view directions
	highlight string // count basis for point coloring
	color     string // color mode: auto, always, never
	noLegend  bool   // suppress the legend block
}

// newRenderCmd creates the render command for printing wireframe views.
//
// Default settings:
//   - depth: 0 (root object's own faces only)
//   - views: all three (top, front, side)
//   - highlight: edges
//   - color: auto (on when stdout is a terminal)
func newRenderCmd() *cobra.Command {
	opts := renderOpts{
		highlight: "edges",
		color:     "auto",
	}

	cmd := &cobra.Command{
		Use:   "render [scene file]",
		Short: "Render a scene's wireframe views",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().IntVarP(&opts.depth, "depth", "d", 0, "child layers to include (0 = root faces only)")
	cmd.Flags().StringVar(&opts.views, "views", "", "view direction(s): top, front, side (comma-separated, default all)")
	cmd.Flags().StringVar(&opts.highlight, "highlight", opts.highlight, "point color basis: vertices or edges")
	cmd.Flags().StringVar(&opts.color, "color", opts.color, "color output: auto, always, never")
	cmd.Flags().BoolVar(&opts.noLegend, "no-legend", false, "omit the legend block above each view")

	return cmd
}

func runRender(ctx context.Context, path string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	dirs, err := parseDirections(opts.views)
	if err != nil {
		return err
	}
	hl, err := grid.ParseHighlight(opts.highlight)
	if err != nil {
		return err
	}
	color, err := resolveColor(opts.color)
	if err != nil {
		return err
	}

	p := newProgress(logger)
	obj, err := scene.Load(path)
	if err != nil {
		return err
	}
	logger.Debugf("loaded scene %q from %s", obj.Name, path)

	err = grid.Render(os.Stdout, obj, grid.Options{
		Depth:      opts.depth,
		Directions: dirs,
		Highlight:  hl,
		Style:      grid.NewStyle(color),
		NoLegend:   opts.noLegend,
	})
	if err != nil {
		return err
	}

	p.done(fmt.Sprintf("Rendered %s", obj.Name))
	return nil
}

// parseDirections parses the --views flag into view directions.
// An empty flag selects all three canonical directions.
func parseDirections(s string) ([]grid.Direction, error) {
	if s == "" {
		return nil, nil
	}
	var dirs []grid.Direction
	for _, part := range strings.Split(s, ",") {
		d, err := grid.ParseDirection(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		dirs = append(dirs, d)
	}
	return dirs, nil
}
