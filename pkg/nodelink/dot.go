// Package nodelink exports an object hierarchy as a node-link diagram in
// Graphviz DOT format, with optional SVG and PNG rendering.
package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/wireview/wireview/pkg/geom"
)

// Options configures diagram generation.
type Options struct {
	// Detailed includes position, rotation, and face counts in node
	// labels. When false, only the object name is shown.
	Detailed bool
}

// ToDOT converts an object tree to Graphviz DOT format. Each object becomes
// a node identified by its path from the root with the child's position in
// the path (so duplicate names stay distinct), with an edge from every parent
// to each of its children.
func ToDOT(root *geom.Object, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	writeNodes(&buf, root, root.Name, opts)
	buf.WriteString("\n")
	writeEdges(&buf, root, root.Name)

	buf.WriteString("}\n")
	return buf.String()
}

func writeNodes(buf *bytes.Buffer, obj *geom.Object, id string, opts Options) {
	fmt.Fprintf(buf, "  %q [label=%q];\n", id, fmtLabel(obj, opts.Detailed))
	for i, child := range obj.Children() {
		writeNodes(buf, child, childID(id, i, child), opts)
	}
}

func writeEdges(buf *bytes.Buffer, obj *geom.Object, id string) {
	for i, child := range obj.Children() {
		cid := childID(id, i, child)
		fmt.Fprintf(buf, "  %q -> %q;\n", id, cid)
		writeEdges(buf, child, cid)
	}
}

func childID(parent string, i int, child *geom.Object) string {
	return fmt.Sprintf("%s/%d:%s", parent, i, child.Name)
}

func fmtLabel(obj *geom.Object, detailed bool) string {
	if !detailed {
		return obj.Name
	}
	parts := []string{
		fmt.Sprintf("position: %s", obj.Position),
		fmt.Sprintf("rotation: %d°", obj.Rotation),
		fmt.Sprintf("faces: %d", len(obj.Faces())),
	}
	return obj.Name + "\n" + strings.Join(parts, "\n")
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	return render(dot, graphviz.SVG)
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(dot string) ([]byte, error) {
	return render(dot, graphviz.PNG)
}

func render(dot string, format graphviz.Format) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
