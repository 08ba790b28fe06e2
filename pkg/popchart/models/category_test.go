package models

import "testing"

func TestParseCategory(t *testing.T) {
	tests := []struct {
		tag      string
		estimate bool
	}{
		{"estimate", true},
		{"medium variant", false},
		{"momentum", false},
		{"Estimate", false},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			c := ParseCategory(tt.tag)
			if c.IsEstimate() != tt.estimate {
				t.Errorf("IsEstimate(%q) = %v, expected %v", tt.tag, c.IsEstimate(), tt.estimate)
			}
			if c.String() != tt.tag {
				t.Errorf("String() = %q, expected %q", c.String(), tt.tag)
			}
		})
	}
}

func TestCategoryStyle(t *testing.T) {
	p := Palette{Primary: "steelblue", Secondary: "red", LabelDefault: "black", LabelHighlight: "red"}

	tests := []struct {
		category Category
		style    LineStyle
		label    string
	}{
		{Estimate(), LineStyle{Class: "solid", Stroke: "steelblue"}, "black"},
		{Variant("medium variant"), LineStyle{Class: "dashed", Stroke: "red", Dashed: true}, "red"},
		{Variant("zero migration"), LineStyle{Class: "dashed", Stroke: "red", Dashed: true}, "black"},
		{Variant("no change"), LineStyle{Class: "dashed", Stroke: "red", Dashed: true}, "black"},
	}

	for _, tt := range tests {
		t.Run(tt.category.Name, func(t *testing.T) {
			if got := tt.category.LineStyle(p); got != tt.style {
				t.Errorf("LineStyle() = %+v, expected %+v", got, tt.style)
			}
			if got := tt.category.LabelColor(p); got != tt.label {
				t.Errorf("LabelColor() = %q, expected %q", got, tt.label)
			}
		})
	}
}

func TestKnownCategories(t *testing.T) {
	known := KnownCategories()
	if len(known) != 10 {
		t.Fatalf("Expected 10 categories, got %d", len(known))
	}
	if !known[0].IsEstimate() {
		t.Errorf("Expected estimate first, got %q", known[0].Name)
	}
	for _, c := range known[1:] {
		if c.IsEstimate() {
			t.Errorf("%q must be a variant", c.Name)
		}
	}
}
