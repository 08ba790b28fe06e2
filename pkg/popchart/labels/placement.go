// Package labels resolves vertical collisions between end-of-line labels.
package labels

import (
	"errors"
	"fmt"
	"sort"

	"github.com/ukaji3/popchart-go/pkg/popchart/models"
)

// ErrOverflow indicates collision resolution did not converge within
// Options.MaxPasses.
var ErrOverflow = errors.New("label placement did not converge")

// Default placement parameters.
const (
	DefaultMinGap    = 15
	DefaultStep      = 1
	DefaultMaxPasses = 10000
)

// Candidate is a label waiting for a vertical position.
type Candidate struct {
	Category models.Category `json:"category"`
	// Y is the vertical pixel position, plot-relative.
	Y float64 `json:"y"`
}

// Options configures Place.
type Options struct {
	// MinGap is the smallest allowed distance between neighbouring labels.
	MinGap float64 `yaml:"min_gap" json:"min_gap" env:"LABEL_MIN_GAP"`
	// Step is how far each label of a colliding pair moves per pass.
	Step float64 `yaml:"step" json:"step"`
	// MaxPasses caps the number of scans over the list.
	MaxPasses int `yaml:"max_passes" json:"max_passes" env:"LABEL_MAX_PASSES"`
}

// DefaultOptions returns the 15px gap, 1px step placement.
func DefaultOptions() Options {
	return Options{
		MinGap:    DefaultMinGap,
		Step:      DefaultStep,
		MaxPasses: DefaultMaxPasses,
	}
}

func (o Options) withDefaults() Options {
	if o.MinGap <= 0 {
		o.MinGap = DefaultMinGap
	}
	if o.Step <= 0 {
		o.Step = DefaultStep
	}
	if o.MaxPasses <= 0 {
		o.MaxPasses = DefaultMaxPasses
	}
	return o
}

// OverflowError reports a placement that hit the pass cap.
type OverflowError struct {
	Labels int
	Passes int
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("%v: %d labels still colliding after %d passes", ErrOverflow, e.Labels, e.Passes)
}

// Is makes errors.Is(err, ErrOverflow) hold.
func (e *OverflowError) Is(target error) bool {
	return target == ErrOverflow
}

// Place sorts candidates by Y and pushes colliding neighbours apart until
// every adjacent pair is at least MinGap apart. Each pass scans the whole
// list once; a colliding pair moves the upper label up and the lower one
// down by Step, and the scan continues with the moved values.
//
// If MaxPasses is reached the sorted, unadjusted candidates are returned
// together with an *OverflowError. The input slice is never modified.
func Place(cands []Candidate, opts Options) ([]Candidate, error) {
	opts = opts.withDefaults()

	sorted := make([]Candidate, len(cands))
	copy(sorted, cands)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Y < sorted[j].Y
	})
	if len(sorted) < 2 {
		return sorted, nil
	}

	placed := make([]Candidate, len(sorted))
	copy(placed, sorted)

	for pass := 0; pass < opts.MaxPasses; pass++ {
		moved := false
		for i := 1; i < len(placed); i++ {
			if placed[i].Y-placed[i-1].Y < opts.MinGap {
				moved = true
				placed[i-1].Y -= opts.Step
				placed[i].Y += opts.Step
			}
		}
		if !moved {
			return placed, nil
		}
	}

	return sorted, &OverflowError{Labels: len(sorted), Passes: opts.MaxPasses}
}
