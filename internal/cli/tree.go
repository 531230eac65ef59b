package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/wireview/wireview/pkg/errors"
	"github.com/wireview/wireview/pkg/geom"
	"github.com/wireview/wireview/pkg/nodelink"
	"github.com/wireview/wireview/pkg/scene"
)

const (
	formatText = "text"
	formatDOT  = "dot"
	formatSVG  = "svg"
	formatPNG  = "png"
)

// treeOpts holds the command-line flags for the tree command.
type treeOpts struct {
	format   string // output format: text, dot, svg, png
	output   string // output file path (required for svg/png)
	detailed bool   // include position/rotation/face counts in labels
}

// newTreeCmd creates the tree command for printing or exporting the object
// hierarchy of a scene.
func newTreeCmd() *cobra.Command {
	opts := treeOpts{format: formatText}

	cmd := &cobra.Command{
		Use:   "tree [scene file]",
		Short: "Print or export a scene's object hierarchy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTree(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: text (default), dot, svg, png")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (required for svg and png)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "include position, rotation, and face counts")

	return cmd
}

func runTree(ctx context.Context, path string, opts *treeOpts) error {
	logger := loggerFromContext(ctx)

	obj, err := scene.Load(path)
	if err != nil {
		return err
	}
	logger.Debugf("loaded scene %q from %s", obj.Name, path)

	switch opts.format {
	case formatText:
		printHierarchy(os.Stdout, obj, "", "", 0)
		return nil
	case formatDOT:
		dot := nodelink.ToDOT(obj, nodelink.Options{Detailed: opts.detailed})
		return writeOutput(opts.output, []byte(dot))
	case formatSVG, formatPNG:
		if opts.output == "" {
			return errors.New(errors.ErrCodeInvalidFormat, "--output is required for %s", opts.format)
		}
		dot := nodelink.ToDOT(obj, nodelink.Options{Detailed: opts.detailed})
		var data []byte
		if opts.format == formatSVG {
			data, err = nodelink.RenderSVG(dot)
		} else {
			data, err = nodelink.RenderPNG(dot)
		}
		if err != nil {
			return err
		}
		return writeOutput(opts.output, data)
	}
	return errors.New(errors.ErrCodeInvalidFormat, "unknown format %q (want text, dot, svg, or png)", opts.format)
}

func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	printFile(path)
	return nil
}

// printHierarchy prints the object tree with box-drawing branch characters,
// coloring each tree layer's branches with a cycling palette.
func printHierarchy(w io.Writer, obj *geom.Object, current, children string, layer int) {
	detail := ""
	if n := len(obj.Faces()); n > 0 {
		detail = " " + StyleDim.Render(fmt.Sprintf("(%d faces)", n))
	}
	fmt.Fprintln(w, current+obj.Name+detail)

	kids := obj.Children()
	for i, child := range kids {
		style := hierarchyStyles[layer%len(hierarchyStyles)]
		branch, indent := "┣━━ ", "┃   "
		if i == len(kids)-1 {
			branch, indent = "┗━━ ", "    "
		}
		printHierarchy(w, child, children+style.Render(branch), children+style.Render(indent), layer+1)
	}
}
