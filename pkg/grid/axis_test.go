package grid

import (
	"reflect"
	"testing"

	"github.com/wireview/wireview/pkg/errors"
	"github.com/wireview/wireview/pkg/geom"
)

func vectorsAtX(values ...float64) []geom.Vector {
	vs := make([]geom.Vector, 0, len(values))
	for _, v := range values {
		vs = append(vs, geom.V(v, 0, 0))
	}
	return vs
}

func TestNewAxis(t *testing.T) {
	tests := []struct {
		name          string
		spec          Spec
		vertices      []geom.Vector
		wantValues    []float64
		wantDistances []int
		wantLabels    []string
		wantJust      int
	}{
		{
			name:          "ProportionalSpacing",
			spec:          Spec{Coord: geom.CoordX},
			vertices:      vectorsAtX(5, 0, 2), // unsorted on purpose
			wantValues:    []float64{0, 2, 5},
			wantDistances: []int{1, 2},
			wantLabels:    []string{"0", "2", "5"},
			wantJust:      1,
		},
		{
			name:          "Reversed",
			spec:          Spec{Coord: geom.CoordX, Reversed: true},
			vertices:      vectorsAtX(0, 2, 5),
			wantValues:    []float64{5, 2, 0},
			wantDistances: []int{2, 1},
			wantLabels:    []string{"5", "2", "0"},
			wantJust:      1,
		},
		{
			name:          "DuplicatesCollapse",
			spec:          Spec{Coord: geom.CoordX},
			vertices:      vectorsAtX(1, 1, 1, 3, 3),
			wantValues:    []float64{1, 3},
			wantDistances: []int{1},
			wantLabels:    []string{"1", "3"},
			wantJust:      1,
		},
		{
			name:          "SingleValue",
			spec:          Spec{Coord: geom.CoordX},
			vertices:      vectorsAtX(4),
			wantValues:    []float64{4},
			wantDistances: []int{},
			wantLabels:    []string{"4"},
			wantJust:      1,
		},
		{
			name:          "RoundsToNearestMultiple",
			spec:          Spec{Coord: geom.CoordX},
			vertices:      vectorsAtX(0, 2, 4.9), // gap ratio 2.9/2 rounds to 1
			wantValues:    []float64{0, 2, 4.9},
			wantDistances: []int{1, 1},
			wantLabels:    []string{"0", "2", "4.9"},
			wantJust:      3,
		},
		{
			name:          "LabelJustification",
			spec:          Spec{Coord: geom.CoordX},
			vertices:      vectorsAtX(-1.5, 0, 10),
			wantValues:    []float64{-1.5, 0, 10},
			wantDistances: []int{1, 7},
			wantLabels:    []string{"-1.5", "0", "10"},
			wantJust:      4,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := NewAxis(tt.spec, tt.vertices)
			if err != nil {
				t.Fatalf("NewAxis failed: %v", err)
			}
			if !reflect.DeepEqual(a.Values, tt.wantValues) {
				t.Errorf("Values = %v, want %v", a.Values, tt.wantValues)
			}
			if !reflect.DeepEqual(a.Distances, tt.wantDistances) {
				t.Errorf("Distances = %v, want %v", a.Distances, tt.wantDistances)
			}
			if !reflect.DeepEqual(a.Labels, tt.wantLabels) {
				t.Errorf("Labels = %v, want %v", a.Labels, tt.wantLabels)
			}
			if a.Just != tt.wantJust {
				t.Errorf("Just = %d, want %d", a.Just, tt.wantJust)
			}
		})
	}
}

func TestNewAxisErrors(t *testing.T) {
	_, err := NewAxis(Spec{Coord: geom.CoordX}, nil)
	if !errors.Is(err, errors.ErrCodeEmptyAxis) {
		t.Errorf("empty vertex set: code = %v, want EMPTY_AXIS", errors.GetCode(err))
	}

	_, err = NewAxis(Spec{Coord: geom.CoordX}, vectorsAtX(0, 0.0005, 1))
	if !errors.Is(err, errors.ErrCodePrecision) {
		t.Errorf("sub-resolution gap: code = %v, want PRECISION_ERROR", errors.GetCode(err))
	}
}

func TestAxisIndex(t *testing.T) {
	a, err := NewAxis(Spec{Coord: geom.CoordY, Reversed: true}, []geom.Vector{
		geom.V(0, 1, 0), geom.V(0, 4, 0), geom.V(0, 2, 0),
	})
	if err != nil {
		t.Fatalf("NewAxis failed: %v", err)
	}
	for value, want := range map[float64]int{4: 0, 2: 1, 1: 2} {
		got, ok := a.Index(value)
		if !ok || got != want {
			t.Errorf("Index(%v) = %d, %v; want %d, true", value, got, ok, want)
		}
	}
	if _, ok := a.Index(3); ok {
		t.Error("Index(3) reported a position for an absent value")
	}
}

func TestAxisLabelRounding(t *testing.T) {
	a, err := NewAxis(Spec{Coord: geom.CoordX}, vectorsAtX(0, 0.12345, 1))
	if err != nil {
		t.Fatalf("NewAxis failed: %v", err)
	}
	if got, want := a.Labels[1], "0.123"; got != want {
		t.Errorf("label = %q, want %q", got, want)
	}
}

func TestSpecString(t *testing.T) {
	if got := (Spec{Coord: geom.CoordZ}).String(); got != "z" {
		t.Errorf("String = %q, want %q", got, "z")
	}
	if got := (Spec{Coord: geom.CoordX, Reversed: true}).String(); got != "-x" {
		t.Errorf("String = %q, want %q", got, "-x")
	}
}
