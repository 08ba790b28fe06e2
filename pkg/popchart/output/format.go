package output

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ukaji3/popchart-go/pkg/popchart/models"
)

// Format is an output encoding.
type Format string

// Supported formats.
const (
	FormatSVG  Format = "svg"
	FormatPNG  Format = "png"
	FormatJSON Format = "json"
)

// ParseFormat validates a format name. An empty name selects SVG.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case "":
		return FormatSVG, nil
	case FormatSVG, FormatPNG, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("invalid format: %s (must be svg, png, or json)", name)
	}
}

// FormatFromPath infers the format from an output file extension,
// falling back to SVG.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG
	case ".json":
		return FormatJSON
	default:
		return FormatSVG
	}
}

// Write encodes doc to w in the given format.
func Write(w io.Writer, doc *models.Document, format Format, pretty bool) error {
	switch format {
	case FormatSVG, "":
		return EncodeSVG(w, doc)
	case FormatPNG:
		return EncodePNG(w, doc)
	case FormatJSON:
		data, err := ToJSON(doc, pretty)
		if err != nil {
			return err
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return err
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}
