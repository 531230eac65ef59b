package cli

import (
	"strings"
	"testing"

	"github.com/wireview/wireview/pkg/geom"
)

func TestPrintHierarchy(t *testing.T) {
	root := geom.NewObject("station", geom.V(0, 0, 0), geom.Rotate0)
	platform := geom.NewObject("platform", geom.V(1, 1, 0), geom.Rotate90)
	if err := platform.AddFace(geom.V(0, 0, 0), geom.V(1, 0, 0), geom.V(1, 1, 0)); err != nil {
		t.Fatalf("AddFace failed: %v", err)
	}
	antenna := geom.NewObject("antenna", geom.V(0, 0, 2), geom.Rotate0)
	platform.Attach(antenna)
	root.Attach(platform)
	root.Attach(geom.NewObject("depot", geom.V(2, 2, 0), geom.Rotate0))

	var b strings.Builder
	printHierarchy(&b, root, "", "", 0)
	out := b.String()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4:\n%s", len(lines), out)
	}
	if lines[0] != "station" {
		t.Errorf("root line = %q", lines[0])
	}
	// Non-last children branch with ┣, the last with ┗; grandchildren
	// indent under their parent's rail.
	if !strings.Contains(lines[1], "┣━━ platform") {
		t.Errorf("platform line = %q", lines[1])
	}
	if !strings.Contains(lines[1], "(1 faces)") {
		t.Errorf("platform line missing face count: %q", lines[1])
	}
	if !strings.Contains(lines[2], "┗━━ antenna") || !strings.Contains(lines[2], "┃") {
		t.Errorf("antenna line = %q", lines[2])
	}
	if !strings.Contains(lines[3], "┗━━ depot") {
		t.Errorf("depot line = %q", lines[3])
	}
}
