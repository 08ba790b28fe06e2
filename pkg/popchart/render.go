package popchart

import (
	"errors"
	"fmt"

	"github.com/ukaji3/popchart-go/pkg/popchart/labels"
	"github.com/ukaji3/popchart-go/pkg/popchart/models"
	"github.com/ukaji3/popchart-go/pkg/popchart/scale"
)

// RenderContext carries the geometry and scales shared by every render step.
type RenderContext struct {
	Config Config
	// Width and Height are the plot area dimensions.
	Width  float64
	Height float64
	// Origin is the canvas position of the plot area's top-left corner.
	Origin models.Point
	// X maps years to plot-relative pixels.
	X scale.Linear
	// Y maps population to plot-relative pixels, larger values higher.
	Y scale.Linear
}

// NewRenderContext builds the shared scales from the extent of every
// record in ds, whatever its category.
func NewRenderContext(ds *models.Dataset, cfg Config) (*RenderContext, error) {
	minYear, maxYear, ok := ds.YearExtent()
	if !ok {
		return nil, ErrEmptyDataset
	}
	minPop, maxPop, _ := ds.PopulationExtent()

	w, h := cfg.Layout.DrawWidth(), cfg.Layout.DrawHeight()
	return &RenderContext{
		Config: cfg,
		Width:  w,
		Height: h,
		Origin: models.Point{
			X: cfg.Layout.Margin.Left,
			Y: cfg.Layout.Margin.Top + cfg.Layout.PlotOffset,
		},
		X: scale.NewLinear(float64(minYear), float64(maxYear), 0, w),
		Y: scale.NewLinear(minPop, maxPop, h, 0).Rounded(),
	}, nil
}

// RenderChart lays out the whole chart. It performs no I/O.
//
// Load-level problems are returned as errors. Problems confined to one
// category, and label placement overflow, are recorded in
// Document.Warnings and rendering continues.
func RenderChart(ds *models.Dataset, cfg Config) (*models.Document, error) {
	if err := cfg.Validate(); err != nil {
		return nil, NewRenderError("config", err)
	}

	rc, err := NewRenderContext(ds, cfg)
	if err != nil {
		return nil, NewRenderError("scales", err)
	}

	doc := &models.Document{
		Width:       cfg.Layout.Width,
		Height:      cfg.Layout.Height,
		Background:  cfg.Layout.Background,
		Style:       stylesheet(cfg),
		StrokeWidth: cfg.Stroke.Width,
		DashArray:   cfg.Stroke.DashArray,
		Texts:       rc.Decorations(),
		Plot:        rc.Origin,
	}

	var cands []labels.Candidate
	for _, cat := range cfg.categories() {
		path, err := rc.RenderSeries(ds, cat)
		if err != nil {
			doc.Warnings = append(doc.Warnings, err.Error())
			continue
		}
		doc.Series = append(doc.Series, path)

		if !cat.IsEstimate() {
			last := path.Points[len(path.Points)-1]
			cands = append(cands, labels.Candidate{Category: cat, Y: last.Y})
		}
	}

	placed, err := rc.PlaceLabels(cands)
	if err != nil {
		doc.Warnings = append(doc.Warnings, err.Error())
	}
	doc.Labels = placed

	doc.XAxis, doc.YAxis = rc.Axes()
	doc.XGrid, doc.YGrid = rc.Gridlines()

	return doc, nil
}

// Decorations returns the title, subtitle, annotations and source caption.
func (rc *RenderContext) Decorations() []models.Text {
	l, t := rc.Config.Layout, rc.Config.Texts

	// The title block sits 30px left of the plot, 10px inside its own box.
	titleX := l.Margin.Left - 30 + 10
	titleY := l.Margin.Top + 10

	return []models.Text{
		{Class: "title", X: titleX, Y: titleY, Content: t.Title},
		{Class: "subTitle", X: titleX, Y: titleY + l.SubtitleOffset, Content: t.Subtitle},
		{Class: "population-estimate", X: t.EstimateAt.X, Y: t.EstimateAt.Y, Content: t.Estimate},
		{Class: "population-projection", X: t.ProjectionAt.X, Y: t.ProjectionAt.Y, Content: t.Projection},
		{Class: "xLabel", X: t.SourceAt.X, Y: t.SourceAt.Y, Content: t.Source},
	}
}

// RenderSeries maps one category onto plot coordinates. A category with
// no records returns a *SeriesError wrapping ErrEmptyDataset.
func (rc *RenderContext) RenderSeries(ds *models.Dataset, cat models.Category) (models.SeriesPath, error) {
	records := ds.Series(cat)
	if len(records) == 0 {
		return models.SeriesPath{}, &SeriesError{Category: cat.Name, Err: ErrEmptyDataset}
	}

	points := make([]models.Point, len(records))
	for i, r := range records {
		points[i] = models.Point{
			X: rc.X.Map(float64(r.Year)),
			Y: rc.Y.Map(r.Population),
		}
	}

	return models.SeriesPath{
		Category: cat,
		Style:    cat.LineStyle(rc.Config.Colors),
		Points:   points,
	}, nil
}

// PlaceLabels resolves label collisions and converts the result into
// canvas-positioned labels. On overflow the unadjusted positions are used
// and the error is returned alongside them.
func (rc *RenderContext) PlaceLabels(cands []labels.Candidate) ([]models.Label, error) {
	placed, err := labels.Place(cands, rc.Config.Labels.Options)
	if err != nil && !errors.Is(err, labels.ErrOverflow) {
		return nil, err
	}

	x := rc.Origin.X + rc.Width + rc.Config.Labels.OffsetX
	out := make([]models.Label, len(placed))
	for i, c := range placed {
		out[i] = models.Label{
			Category: c.Category,
			X:        x,
			Y:        c.Y + rc.Config.Layout.PlotOffset + rc.Config.Labels.OffsetY,
			Fill:     c.Category.LabelColor(rc.Config.Colors),
		}
	}
	return out, err
}

func stylesheet(cfg Config) string {
	f := cfg.Font
	return fmt.Sprintf(`text { font-family: %s; }
.title { font-size: %dpx; font-weight: bold; }
.subTitle { font-size: %dpx; }
.population-estimate, .population-projection { font-size: %dpx; fill: #666666; }
.xLabel { font-size: %dpx; fill: #666666; }
.label { font-size: %dpx; }
.grid line { stroke: lightgrey; stroke-opacity: 0.7; shape-rendering: crispEdges; }
.grid path { stroke-width: 0; }
`, f.Family, f.TitleSize, f.SubtitleSize, f.SubtitleSize, f.CaptionSize, f.LabelSize)
}
