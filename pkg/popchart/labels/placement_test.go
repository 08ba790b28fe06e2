package labels

import (
	"errors"
	"reflect"
	"testing"

	"github.com/ukaji3/popchart-go/pkg/popchart/models"
)

func candidates(ys ...float64) []Candidate {
	known := models.KnownCategories()[1:]
	out := make([]Candidate, len(ys))
	for i, y := range ys {
		out[i] = Candidate{Category: known[i%len(known)], Y: y}
	}
	return out
}

func positions(cs []Candidate) []float64 {
	out := make([]float64, len(cs))
	for i, c := range cs {
		out[i] = c.Y
	}
	return out
}

func TestPlaceKeepsSeparatedLabels(t *testing.T) {
	in := candidates(300, 20, 150, 500)

	got, err := Place(in, DefaultOptions())
	if err != nil {
		t.Fatalf("Place failed: %v", err)
	}

	expected := []float64{20, 150, 300, 500}
	if !reflect.DeepEqual(positions(got), expected) {
		t.Errorf("Place moved well separated labels: got %v, expected %v", positions(got), expected)
	}
	if got[0].Category != in[1].Category {
		t.Errorf("expected %q first, got %q", in[1].Category, got[0].Category)
	}
}

func TestPlaceResolvesCollisions(t *testing.T) {
	tests := []struct {
		name     string
		ys       []float64
		expected []float64
	}{
		{"pair", []float64{0, 0}, []float64{-8, 8}},
		{"cluster", []float64{300, 305, 310, 100, 500}, []float64{100, 290, 305, 320, 500}},
		{"nine identical", []float64{100, 100, 100, 100, 100, 100, 100, 100, 100},
			[]float64{40, 55, 70, 85, 100, 115, 130, 145, 160}},
		{"staircase", []float64{10, 20, 30, 40, 50, 60, 70, 80, 90},
			[]float64{-10, 5, 20, 35, 50, 65, 80, 95, 110}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Place(candidates(tt.ys...), DefaultOptions())
			if err != nil {
				t.Fatalf("Place failed: %v", err)
			}
			if !reflect.DeepEqual(positions(got), tt.expected) {
				t.Errorf("got %v, expected %v", positions(got), tt.expected)
			}
			if gap := minSeparation(got); gap < DefaultMinGap {
				t.Errorf("minimum gap %v below %d", gap, DefaultMinGap)
			}
		})
	}
}

func TestPlaceDoesNotModifyInput(t *testing.T) {
	in := candidates(10, 10, 10)
	if _, err := Place(in, DefaultOptions()); err != nil {
		t.Fatalf("Place failed: %v", err)
	}
	if !reflect.DeepEqual(positions(in), []float64{10, 10, 10}) {
		t.Errorf("input mutated: %v", positions(in))
	}
}

func TestPlaceOverflowFallsBack(t *testing.T) {
	in := candidates(50, 40, 40, 45)

	got, err := Place(in, Options{MinGap: 15, Step: 1, MaxPasses: 2})
	if !errors.Is(err, ErrOverflow) {
		t.Fatalf("expected ErrOverflow, got %v", err)
	}
	var oerr *OverflowError
	if !errors.As(err, &oerr) || oerr.Passes != 2 || oerr.Labels != 4 {
		t.Errorf("unexpected overflow details %+v", oerr)
	}

	expected := []float64{40, 40, 45, 50}
	if !reflect.DeepEqual(positions(got), expected) {
		t.Errorf("fallback should be sorted initial positions: got %v, expected %v", positions(got), expected)
	}
}

func TestPlaceTrivialInputs(t *testing.T) {
	got, err := Place(nil, DefaultOptions())
	if err != nil || len(got) != 0 {
		t.Errorf("Place(nil) = %v, %v", got, err)
	}

	got, err = Place(candidates(42), Options{})
	if err != nil || len(got) != 1 || got[0].Y != 42 {
		t.Errorf("Place(single) = %v, %v", got, err)
	}
}

// minSeparation returns the smallest gap between neighbours of a
// Y-sorted slice, or 0 for fewer than two labels.
func minSeparation(placed []Candidate) float64 {
	if len(placed) < 2 {
		return 0
	}
	gap := placed[1].Y - placed[0].Y
	for i := 2; i < len(placed); i++ {
		if d := placed[i].Y - placed[i-1].Y; d < gap {
			gap = d
		}
	}
	return gap
}

func TestMinSeparation(t *testing.T) {
	if got := minSeparation(candidates(0, 20, 25, 60)); got != 5 {
		t.Errorf("minSeparation = %v, expected 5", got)
	}
	if got := minSeparation(candidates(7)); got != 0 {
		t.Errorf("minSeparation(single) = %v, expected 0", got)
	}
}
