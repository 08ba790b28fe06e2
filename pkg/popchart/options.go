// Package popchart renders population projection line charts.
package popchart

import (
	"errors"
	"fmt"
	"time"

	"github.com/ukaji3/popchart-go/pkg/popchart/labels"
	"github.com/ukaji3/popchart-go/pkg/popchart/models"
)

// Margin holds the canvas margins in pixels.
type Margin struct {
	Top    float64 `yaml:"top"`
	Right  float64 `yaml:"right"`
	Bottom float64 `yaml:"bottom"`
	Left   float64 `yaml:"left"`
}

// Layout holds the fixed canvas geometry.
type Layout struct {
	// Width is the total canvas width in pixels.
	Width int `yaml:"width"`
	// Height is the total canvas height in pixels.
	Height int `yaml:"height"`
	// Background is the canvas fill color; empty leaves it transparent.
	Background string `yaml:"background"`
	Margin     Margin `yaml:"margin"`
	// PlotOffset shifts the plot area down below the title block.
	PlotOffset float64 `yaml:"plot_offset"`
	// SubtitleOffset is the distance between title and subtitle.
	SubtitleOffset float64 `yaml:"subtitle_offset"`
}

// DrawWidth returns the width of the plot area.
func (l Layout) DrawWidth() float64 {
	return float64(l.Width) - l.Margin.Left - l.Margin.Right
}

// DrawHeight returns the height of the plot area.
func (l Layout) DrawHeight() float64 {
	return float64(l.Height) - l.Margin.Top - l.Margin.Bottom
}

// Texts holds the static decorations.
type Texts struct {
	Title      string `yaml:"title" env:"TITLE"`
	Subtitle   string `yaml:"subtitle"`
	Estimate   string `yaml:"estimate"`
	Projection string `yaml:"projection"`
	Source     string `yaml:"source" env:"CAPTION"`

	// EstimateAt, ProjectionAt and SourceAt are absolute canvas positions.
	EstimateAt   models.Point `yaml:"estimate_at"`
	ProjectionAt models.Point `yaml:"projection_at"`
	SourceAt     models.Point `yaml:"source_at"`
}

// Stroke holds series stroke settings.
type Stroke struct {
	Width     float64 `yaml:"width"`
	DashArray string  `yaml:"dash_array"`
}

// Axes holds tick settings.
type Axes struct {
	// XTicks are the fixed year ticks.
	XTicks []float64 `yaml:"x_ticks" env:"X_TICKS"`
	// YTickCount is the approximate number of population ticks.
	YTickCount int `yaml:"y_tick_count" env:"Y_TICKS"`
	// TickSize is the length of axis tick marks.
	TickSize float64 `yaml:"tick_size"`
	// FontSize of tick labels.
	FontSize int `yaml:"font_size"`
	// GridExtendX lengthens vertical gridlines past the plot height.
	GridExtendX float64 `yaml:"grid_extend_x"`
	// GridExtendY lengthens horizontal gridlines past the plot width.
	GridExtendY float64 `yaml:"grid_extend_y"`
}

// Labels holds end-of-line label settings.
type Labels struct {
	labels.Options `yaml:",inline"`
	// OffsetX is the gap between the plot area and the labels.
	OffsetX float64 `yaml:"offset_x"`
	// OffsetY is the baseline adjustment added to the resolved position.
	OffsetY float64 `yaml:"offset_y"`
}

// Font holds text settings.
type Font struct {
	Family       string `yaml:"family"`
	TitleSize    int    `yaml:"title_size"`
	SubtitleSize int    `yaml:"subtitle_size"`
	LabelSize    int    `yaml:"label_size"`
	CaptionSize  int    `yaml:"caption_size"`
}

// Source holds input settings.
type Source struct {
	// Format forces the input decoder: csv, xlsx or xls.
	Format string `yaml:"format" env:"FORMAT"`
	// Sheet selects the worksheet of an XLSX source.
	Sheet string `yaml:"sheet" env:"SHEET"`
	// Range restricts a workbook source, e.g. A1:C200.
	Range string `yaml:"range" env:"RANGE"`
	// FetchTimeout bounds remote downloads.
	FetchTimeout time.Duration `yaml:"fetch_timeout" env:"FETCH_TIMEOUT"`
}

// Config controls loading and rendering.
type Config struct {
	Layout Layout         `yaml:"layout"`
	Texts  Texts          `yaml:"texts"`
	Colors models.Palette `yaml:"colors"`
	Stroke Stroke         `yaml:"stroke"`
	Axes   Axes           `yaml:"axes"`
	Labels Labels         `yaml:"labels"`
	Font   Font           `yaml:"font"`
	Source Source         `yaml:"source"`
	// Categories lists the series to draw, in drawing order.
	Categories []string `yaml:"categories"`
}

// DefaultConfig returns the 1300x800 UN WPP Ukraine chart layout.
func DefaultConfig() Config {
	known := models.KnownCategories()
	categories := make([]string, len(known))
	for i, c := range known {
		categories[i] = c.Name
	}

	return Config{
		Layout: Layout{
			Width:          1300,
			Height:         800,
			Margin:         Margin{Top: 20, Right: 175, Bottom: 200, Left: 50},
			PlotOffset:     75,
			SubtitleOffset: 25,
		},
		Texts: Texts{
			Title:        "Ukraine Population Prospects",
			Subtitle:     "Total population, million",
			Estimate:     "estimate",
			Projection:   "projection",
			Source:       "Data: UN World Population Prospects",
			EstimateAt:   models.Point{X: 205, Y: 85},
			ProjectionAt: models.Point{X: 590, Y: 85},
			SourceAt:     models.Point{X: 1000, Y: 750},
		},
		Colors: models.Palette{
			Primary:        "steelblue",
			Secondary:      "red",
			LabelDefault:   "black",
			LabelHighlight: "red",
		},
		Stroke: Stroke{
			Width:     1.5,
			DashArray: "5,5",
		},
		Axes: Axes{
			XTicks:      []float64{1950, 1991, 2020, 2100},
			YTickCount:  8,
			TickSize:    6,
			FontSize:    13,
			GridExtendX: 20,
			GridExtendY: 10,
		},
		Labels: Labels{
			Options: labels.DefaultOptions(),
			OffsetX: 10,
			OffsetY: 17,
		},
		Font: Font{
			Family:       "sans-serif",
			TitleSize:    24,
			SubtitleSize: 14,
			LabelSize:    12,
			CaptionSize:  12,
		},
		Source: Source{
			FetchTimeout: 30 * time.Second,
		},
		Categories: categories,
	}
}

// Validate reports configurations that cannot produce a chart.
func (c Config) Validate() error {
	var errs []error
	if c.Layout.Width <= 0 || c.Layout.Height <= 0 {
		errs = append(errs, fmt.Errorf("canvas must be positive, got %dx%d", c.Layout.Width, c.Layout.Height))
	}
	if c.Layout.DrawWidth() <= 0 || c.Layout.DrawHeight() <= 0 {
		errs = append(errs, fmt.Errorf("margins leave no plot area (%.0fx%.0f)", c.Layout.DrawWidth(), c.Layout.DrawHeight()))
	}
	if len(c.Categories) == 0 {
		errs = append(errs, errors.New("no categories configured"))
	}
	if c.Axes.YTickCount < 0 {
		errs = append(errs, fmt.Errorf("y tick count must not be negative, got %d", c.Axes.YTickCount))
	}
	if c.Labels.MinGap <= 0 {
		errs = append(errs, fmt.Errorf("label min gap must be positive, got %v", c.Labels.MinGap))
	}
	if c.Labels.Step < 0 || c.Labels.MaxPasses < 0 {
		errs = append(errs, errors.New("label step and pass cap must not be negative"))
	}
	switch c.Source.Format {
	case "", "csv", "xlsx", "xls":
	default:
		errs = append(errs, fmt.Errorf("unknown source format %q", c.Source.Format))
	}
	return errors.Join(errs...)
}

// categories returns the configured categories as tagged values.
func (c Config) categories() []models.Category {
	out := make([]models.Category, len(c.Categories))
	for i, name := range c.Categories {
		out[i] = models.ParseCategory(name)
	}
	return out
}
