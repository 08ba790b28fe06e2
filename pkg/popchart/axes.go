package popchart

import (
	"github.com/ukaji3/popchart-go/pkg/popchart/models"
	"github.com/ukaji3/popchart-go/pkg/popchart/scale"
)

// Axes returns the year axis below the plot and the population axis on
// its left. Year ticks are the configured fixed values, drawn even when
// they fall outside the data extent.
func (rc *RenderContext) Axes() (x, y models.Axis) {
	a := rc.Config.Axes

	x = models.Axis{
		Class:      "x axis",
		Orient:     models.OrientBottom,
		Origin:     models.Point{X: rc.Origin.X, Y: rc.Origin.Y + rc.Height},
		RangeStart: rc.X.Range[0],
		RangeEnd:   rc.X.Range[1],
		TickSize:   a.TickSize,
		Ticks:      ticksAt(rc.X, a.XTicks, scale.FormatInt),
		ShowLabels: true,
		FontSize:   a.FontSize,
	}

	y = models.Axis{
		Class:      "y axis",
		Orient:     models.OrientLeft,
		Origin:     rc.Origin,
		RangeStart: rc.Y.Range[0],
		RangeEnd:   rc.Y.Range[1],
		TickSize:   a.TickSize,
		Ticks:      ticksAt(rc.Y, rc.Y.Ticks(a.YTickCount), scale.FormatThousands),
		ShowLabels: true,
		FontSize:   a.FontSize,
	}
	return x, y
}

// Gridlines returns the vertical and horizontal gridline groups. They
// share the axis ticks, are shifted half a pixel for crisp 1px lines and
// carry no labels.
func (rc *RenderContext) Gridlines() (x, y models.Axis) {
	a := rc.Config.Axes

	x = models.Axis{
		Class:      "grid",
		Orient:     models.OrientBottom,
		Origin:     models.Point{X: rc.Origin.X + 0.5, Y: rc.Origin.Y + rc.Height},
		RangeStart: rc.X.Range[0],
		RangeEnd:   rc.X.Range[1],
		TickSize:   -(rc.Height + a.GridExtendX),
		Ticks:      ticksAt(rc.X, a.XTicks, nil),
	}

	y = models.Axis{
		Class:      "grid",
		Orient:     models.OrientLeft,
		Origin:     models.Point{X: rc.Origin.X + 0.5, Y: rc.Origin.Y},
		RangeStart: rc.Y.Range[0],
		RangeEnd:   rc.Y.Range[1],
		TickSize:   -(rc.Width + a.GridExtendY),
		Ticks:      ticksAt(rc.Y, rc.Y.Ticks(a.YTickCount), nil),
	}
	return x, y
}

func ticksAt(s scale.Linear, values []float64, format func(float64) string) []models.Tick {
	ticks := make([]models.Tick, 0, len(values))
	for _, v := range values {
		t := models.Tick{Value: v, Pos: s.Map(v)}
		if format != nil {
			t.Label = format(v)
		}
		ticks = append(ticks, t)
	}
	return ticks
}
