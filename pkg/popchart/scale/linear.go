// Package scale maps data domains onto pixel ranges.
package scale

import "math"

// Linear maps a continuous domain onto a continuous range.
type Linear struct {
	// Domain holds the input bounds [d0, d1].
	Domain [2]float64
	// Range holds the output bounds [r0, r1]; r0 > r1 inverts the axis.
	Range [2]float64
	// Round rounds mapped values to the nearest integer, halves up.
	Round bool
}

// NewLinear returns a scale from [d0, d1] onto [r0, r1].
func NewLinear(d0, d1, r0, r1 float64) Linear {
	return Linear{Domain: [2]float64{d0, d1}, Range: [2]float64{r0, r1}}
}

// Rounded returns a copy of s with integer output.
func (s Linear) Rounded() Linear {
	s.Round = true
	return s
}

// Map returns the range value of v. A degenerate domain maps every value
// to the middle of the range.
func (s Linear) Map(v float64) float64 {
	t := s.normalize(v)
	out := s.Range[0]*(1-t) + s.Range[1]*t
	if s.Round {
		return roundHalfUp(out)
	}
	return out
}

// Ticks returns about count round values inside the domain.
func (s Linear) Ticks(count int) []float64 {
	return Ticks(s.Domain[0], s.Domain[1], count)
}

func (s Linear) normalize(v float64) float64 {
	span := s.Domain[1] - s.Domain[0]
	if span == 0 || math.IsNaN(span) {
		return 0.5
	}
	return (v - s.Domain[0]) / span
}

func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}
