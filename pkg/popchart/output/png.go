package output

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/ukaji3/popchart-go/pkg/popchart/models"
)

// EncodePNG rasterizes doc at its canvas size. The rasterizer draws
// paths, lines and rectangles only; text elements are skipped.
// A transparent document is composed over white.
func EncodePNG(w io.Writer, doc *models.Document) error {
	img, err := Rasterize(doc)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// Rasterize renders doc into an RGBA image.
func Rasterize(doc *models.Document) (*image.RGBA, error) {
	if doc.Width <= 0 || doc.Height <= 0 {
		return nil, fmt.Errorf("invalid canvas %dx%d", doc.Width, doc.Height)
	}

	var buf bytes.Buffer
	if err := EncodeSVG(&buf, doc); err != nil {
		return nil, err
	}

	icon, err := oksvg.ReadReplacingCurrentColor(&buf, "#000000", oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, fmt.Errorf("rasterize: %w", err)
	}

	width, height := doc.Width, doc.Height
	icon.SetTarget(0, 0, float64(width), float64(height))

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(background(doc.Background)), image.Point{}, draw.Src)

	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	raster := rasterx.NewDasher(width, height, scanner)
	icon.Draw(raster, 1.0)

	return img, nil
}

func background(name string) color.Color {
	if name == "" {
		return color.White
	}
	c, err := oksvg.ParseSVGColor(name)
	if err != nil || c == nil {
		return color.White
	}
	return c
}
