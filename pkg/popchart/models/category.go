package models

import "strings"

// CategoryKind distinguishes the historical series from projections.
type CategoryKind int

const (
	// KindEstimate is the historical series.
	KindEstimate CategoryKind = iota
	// KindVariant is any projection scenario.
	KindVariant
)

// EstimateTag is the category tag of the historical series.
const EstimateTag = "estimate"

// variantMarker selects the highlight label color.
const variantMarker = "variant"

// Category identifies one series of the dataset.
type Category struct {
	// Kind is the category kind.
	Kind CategoryKind `json:"kind"`
	// Name is the category tag as it appears in the dataset.
	Name string `json:"name"`
}

// Estimate returns the historical category.
func Estimate() Category {
	return Category{Kind: KindEstimate, Name: EstimateTag}
}

// Variant returns a projection category with the given tag.
func Variant(name string) Category {
	return Category{Kind: KindVariant, Name: name}
}

// ParseCategory maps a dataset tag to a Category.
func ParseCategory(tag string) Category {
	if tag == EstimateTag {
		return Estimate()
	}
	return Variant(tag)
}

// KnownCategories returns the ten UN WPP series in drawing order.
func KnownCategories() []Category {
	return []Category{
		Estimate(),
		Variant("medium variant"),
		Variant("high variant"),
		Variant("low variant"),
		Variant("constant fertility"),
		Variant("instant replacement"),
		Variant("momentum"),
		Variant("zero migration"),
		Variant("constant mortality"),
		Variant("no change"),
	}
}

// IsEstimate reports whether c is the historical series.
func (c Category) IsEstimate() bool {
	return c.Kind == KindEstimate
}

func (c Category) String() string {
	return c.Name
}

// Palette holds the colors shared by series and labels.
type Palette struct {
	// Primary is the estimate line color.
	Primary string `yaml:"primary" json:"primary"`
	// Secondary is the projection line color.
	Secondary string `yaml:"secondary" json:"secondary"`
	// LabelDefault is the label color for non-variant categories.
	LabelDefault string `yaml:"label_default" json:"label_default"`
	// LabelHighlight is the label color for categories containing "variant".
	LabelHighlight string `yaml:"label_highlight" json:"label_highlight"`
}

// LineStyle describes how a series path is stroked.
type LineStyle struct {
	// Class is the CSS class name ("solid" or "dashed").
	Class string `json:"class"`
	// Stroke is the stroke color.
	Stroke string `json:"stroke"`
	// Dashed reports whether the line is dashed.
	Dashed bool `json:"dashed"`
}

// LineStyle returns the stroke style of c.
func (c Category) LineStyle(p Palette) LineStyle {
	if c.IsEstimate() {
		return LineStyle{Class: "solid", Stroke: p.Primary}
	}
	return LineStyle{Class: "dashed", Stroke: p.Secondary, Dashed: true}
}

// LabelColor returns the end-of-line label color of c.
func (c Category) LabelColor(p Palette) string {
	if strings.Contains(c.Name, variantMarker) {
		return p.LabelHighlight
	}
	return p.LabelDefault
}
