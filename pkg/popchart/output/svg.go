package output

import (
	"fmt"
	"html"
	"io"
	"math"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo/float"

	"github.com/ukaji3/popchart-go/pkg/popchart/models"
)

// Tick label layout, matching d3-axis.
const (
	tickPadding  = 3
	bottomTextDY = "0.71em"
	leftTextDY   = "0.32em"
	labelDY      = ".35em"
)

// EncodeSVG writes doc as a standalone SVG document.
func EncodeSVG(w io.Writer, doc *models.Document) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)

	canvas.Start(float64(doc.Width), float64(doc.Height),
		fmt.Sprintf(`viewBox="0 0 %d %d"`, doc.Width, doc.Height))
	if doc.Style != "" {
		canvas.Style("text/css", doc.Style)
	}
	if doc.Background != "" {
		canvas.Rect(0, 0, float64(doc.Width), float64(doc.Height), attr("fill", doc.Background))
	}

	for _, t := range doc.Texts {
		canvas.Text(t.X, t.Y, t.Content, attr("class", t.Class))
	}

	drawAxis(canvas, doc.XGrid)
	drawAxis(canvas, doc.YGrid)

	canvas.Group(attr("class", "plot"), attr("transform", translate(doc.Plot.X, doc.Plot.Y)))
	for _, s := range doc.Series {
		if len(s.Points) == 0 {
			continue
		}
		canvas.Path(pathData(s.Points), seriesAttrs(doc, s)...)
	}
	canvas.Gend()

	drawAxis(canvas, doc.XAxis)
	drawAxis(canvas, doc.YAxis)

	for _, l := range doc.Labels {
		canvas.Text(l.X, l.Y, l.Category.Name,
			attr("class", "label"),
			attr("dy", labelDY),
			attr("text-anchor", "start"),
			attr("fill", l.Fill))
	}

	canvas.End()
	return ew.err
}

func seriesAttrs(doc *models.Document, s models.SeriesPath) []string {
	attrs := []string{
		attr("class", s.Style.Class),
		attr("fill", "none"),
		attr("stroke", s.Style.Stroke),
		attr("stroke-linejoin", "round"),
		attr("stroke-linecap", "round"),
		attr("stroke-width", num(doc.StrokeWidth)),
	}
	if s.Style.Dashed && doc.DashArray != "" {
		attrs = append(attrs, attr("stroke-dasharray", doc.DashArray))
	}
	return attrs
}

// drawAxis writes an axis or gridline group the way d3-axis lays it out.
// Gridlines carry no domain path and no tick text.
func drawAxis(canvas *svg.SVG, a models.Axis) {
	if a.Class == "" {
		return
	}

	anchor := "middle"
	if a.Orient == models.OrientLeft {
		anchor = "end"
	}
	attrs := []string{
		attr("class", a.Class),
		attr("transform", translate(a.Origin.X, a.Origin.Y)),
		attr("fill", "none"),
		attr("text-anchor", anchor),
	}
	if a.FontSize > 0 {
		attrs = append(attrs, attr("font-size", strconv.Itoa(a.FontSize)))
	}
	canvas.Group(attrs...)

	if a.ShowLabels {
		canvas.Path(domainPath(a), attr("class", "domain"), attr("stroke", "currentColor"))
	}

	lineAttrs := []string{attr("stroke", "currentColor")}
	if !a.ShowLabels {
		lineAttrs = []string{
			attr("stroke", "lightgrey"),
			attr("stroke-opacity", "0.7"),
			attr("shape-rendering", "crispEdges"),
		}
	}

	for _, t := range a.Ticks {
		switch a.Orient {
		case models.OrientLeft:
			canvas.Group(attr("class", "tick"), attr("transform", translate(0, t.Pos)))
			canvas.Line(0, 0, -a.TickSize, 0, lineAttrs...)
			if a.ShowLabels {
				canvas.Text(-(math.Max(a.TickSize, 0) + tickPadding), 0, t.Label,
					attr("fill", "currentColor"), attr("dy", leftTextDY))
			}
		default:
			canvas.Group(attr("class", "tick"), attr("transform", translate(t.Pos, 0)))
			canvas.Line(0, 0, 0, a.TickSize, lineAttrs...)
			if a.ShowLabels {
				canvas.Text(0, math.Max(a.TickSize, 0)+tickPadding, t.Label,
					attr("fill", "currentColor"), attr("dy", bottomTextDY))
			}
		}
		canvas.Gend()
	}

	canvas.Gend()
}

func domainPath(a models.Axis) string {
	s, e, k := num(a.RangeStart), num(a.RangeEnd), num(a.TickSize)
	if a.Orient == models.OrientLeft {
		nk := num(-a.TickSize)
		return "M" + nk + "," + s + "H0V" + e + "H" + nk
	}
	return "M" + s + "," + k + "V0H" + e + "V" + k
}

func pathData(points []models.Point) string {
	var b strings.Builder
	for i, p := range points {
		if i == 0 {
			b.WriteByte('M')
		} else {
			b.WriteByte('L')
		}
		b.WriteString(num(p.X))
		b.WriteByte(',')
		b.WriteString(num(p.Y))
	}
	return b.String()
}

func translate(x, y float64) string {
	return "translate(" + num(x) + "," + num(y) + ")"
}

func attr(name, value string) string {
	return name + `="` + html.EscapeString(value) + `"`
}

// num formats v with at most two decimals.
func num(v float64) string {
	r := math.Round(v*100) / 100
	if r == 0 {
		return "0"
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

// errWriter keeps the first write error; svgo drops them.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	ew.err = err
	return n, err
}
