package geom

import (
	"testing"

	"github.com/wireview/wireview/pkg/errors"
)

func TestNewLine(t *testing.T) {
	if _, err := NewLine(V(0, 0, 0), V(1, 0, 0)); err != nil {
		t.Fatalf("NewLine failed: %v", err)
	}
	_, err := NewLine(V(1, 2, 3), V(1, 2, 3))
	if err == nil {
		t.Fatal("NewLine with identical endpoints succeeded, want error")
	}
	if !errors.Is(err, errors.ErrCodeDegenerateLine) {
		t.Errorf("error code = %v, want DEGENERATE_LINE", errors.GetCode(err))
	}
}

func TestLineEqualIgnoresEndpointOrder(t *testing.T) {
	a, b := V(0, 0, 0), V(1, 2, 3)
	forward := Line{A: a, B: b}
	backward := Line{A: b, B: a}

	if !forward.Equal(backward) {
		t.Errorf("%s and %s should be equal", forward, backward)
	}
	if forward.Canonical() != backward.Canonical() {
		t.Errorf("canonical forms differ: %s vs %s", forward.Canonical(), backward.Canonical())
	}
	other := Line{A: a, B: V(1, 2, 4)}
	if forward.Equal(other) {
		t.Errorf("%s and %s should not be equal", forward, other)
	}
}

func TestLineFlattenPerpendicular(t *testing.T) {
	// A line along z collapses to a point when z is dropped.
	l := Line{A: V(1, 2, 0), B: V(1, 2, 5)}
	_, err := l.Flatten(CoordZ)
	if err == nil {
		t.Fatal("flattening a perpendicular line succeeded, want error")
	}
	if !errors.Is(err, errors.ErrCodeDegenerateLine) {
		t.Errorf("error code = %v, want DEGENERATE_LINE", errors.GetCode(err))
	}

	// Dropping a different coordinate keeps the line intact.
	got, err := l.Flatten(CoordX)
	if err != nil {
		t.Fatalf("Flatten(x) failed: %v", err)
	}
	if got.A != V(0, 2, 0) || got.B != V(0, 2, 5) {
		t.Errorf("Flatten(x) = %s", got)
	}
}

func TestLineTransforms(t *testing.T) {
	l := Line{A: V(1, 0, 0), B: V(0, 1, 0)}

	if got := l.Translate(V(0, 0, 2)); got.A != V(1, 0, 2) || got.B != V(0, 1, 2) {
		t.Errorf("Translate = %s", got)
	}
	if got := l.Rotate(Rotate90); got.A != V(0, -1, 0) || got.B != V(1, 0, 0) {
		t.Errorf("Rotate = %s", got)
	}
}

func TestLineString(t *testing.T) {
	l := Line{A: V(0, 0, 0), B: V(1, 2, 3)}
	if got, want := l.String(), "(0, 0, 0) - (1, 2, 3)"; got != want {
		t.Errorf("String = %q, want %q", got, want)
	}
}
