package models

// Point is a position in pixels.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Text represents a static text element at an absolute position.
type Text struct {
	// Class is the CSS class name.
	Class string `json:"class"`
	// X is the left offset in pixels.
	X float64 `json:"x"`
	// Y is the baseline offset in pixels.
	Y float64 `json:"y"`
	// Content is the text body.
	Content string `json:"content"`
}

// SeriesPath represents one category drawn as a polyline inside the plot area.
type SeriesPath struct {
	// Category is the series category.
	Category Category `json:"category"`
	// Style is the stroke style derived from the category.
	Style LineStyle `json:"style"`
	// Points are plot-relative pixel positions ordered by year.
	Points []Point `json:"points"`
}

// Label represents an end-of-line series label.
type Label struct {
	// Category is the labelled series.
	Category Category `json:"category"`
	// X is the left offset in pixels.
	X float64 `json:"x"`
	// Y is the vertical offset in pixels, after collision resolution.
	Y float64 `json:"y"`
	// Fill is the text color.
	Fill string `json:"fill"`
}

// Orient is the side of an axis on which tick marks are drawn.
type Orient string

const (
	// OrientBottom draws ticks below a horizontal axis.
	OrientBottom Orient = "bottom"
	// OrientLeft draws ticks left of a vertical axis.
	OrientLeft Orient = "left"
)

// Tick represents a single axis tick.
type Tick struct {
	// Value is the domain value.
	Value float64 `json:"value"`
	// Pos is the axis-relative pixel position.
	Pos float64 `json:"pos"`
	// Label is the formatted tick text (empty for gridlines).
	Label string `json:"label,omitempty"`
}

// Axis represents an axis or a gridline group.
type Axis struct {
	// Class is the CSS class name ("x axis", "y axis", "grid").
	Class string `json:"class"`
	// Orient is the tick side.
	Orient Orient `json:"orient"`
	// Origin is the group translation in pixels.
	Origin Point `json:"origin"`
	// RangeStart and RangeEnd bound the axis line.
	RangeStart float64 `json:"range_start"`
	RangeEnd   float64 `json:"range_end"`
	// TickSize is the tick line length; negative values extend across the plot.
	TickSize float64 `json:"tick_size"`
	// Ticks lists the ticks in domain order.
	Ticks []Tick `json:"ticks"`
	// ShowLabels reports whether tick labels are drawn.
	ShowLabels bool `json:"show_labels"`
	// FontSize overrides the group font size when non-zero.
	FontSize int `json:"font_size,omitempty"`
}

// Document represents a fully laid out chart, independent of output format.
type Document struct {
	// Width is the canvas width in pixels.
	Width int `json:"width"`
	// Height is the canvas height in pixels.
	Height int `json:"height"`
	// Background is the canvas fill color (empty for transparent).
	Background string `json:"background,omitempty"`
	// Style is the embedded CSS.
	Style string `json:"style,omitempty"`
	// StrokeWidth is the series stroke width.
	StrokeWidth float64 `json:"stroke_width"`
	// DashArray is the stroke-dasharray of dashed series.
	DashArray string `json:"dash_array"`
	// Texts are the static decorations.
	Texts []Text `json:"texts"`
	// Plot is the translation of the plot area.
	Plot Point `json:"plot"`
	// Series are the drawn series, in category order.
	Series []SeriesPath `json:"series"`
	// Labels are the end-of-line labels, in resolved vertical order.
	Labels []Label `json:"labels"`
	// XAxis is the horizontal axis.
	XAxis Axis `json:"x_axis"`
	// YAxis is the vertical axis, relative to the canvas.
	YAxis Axis `json:"y_axis"`
	// XGrid holds the vertical gridlines.
	XGrid Axis `json:"x_grid"`
	// YGrid holds the horizontal gridlines.
	YGrid Axis `json:"y_grid"`
	// Warnings lists non-fatal problems met while rendering.
	Warnings []string `json:"warnings,omitempty"`
}

// FindSeries returns the path drawn for the named category.
func (d *Document) FindSeries(name string) (SeriesPath, bool) {
	for _, s := range d.Series {
		if s.Category.Name == name {
			return s, true
		}
	}
	return SeriesPath{}, false
}

// FindLabel returns the label drawn for the named category.
func (d *Document) FindLabel(name string) (Label, bool) {
	for _, l := range d.Labels {
		if l.Category.Name == name {
			return l, true
		}
	}
	return Label{}, false
}
