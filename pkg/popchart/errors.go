package popchart

import (
	"fmt"

	"github.com/ukaji3/popchart-go/pkg/popchart/labels"
	"github.com/ukaji3/popchart-go/pkg/popchart/parser"
)

// ErrDataLoad indicates the input could not be opened, fetched or read.
var ErrDataLoad = parser.ErrDataLoad

// ErrDataParse indicates a malformed header or numeric field.
var ErrDataParse = parser.ErrDataParse

// ErrEmptyDataset indicates there are no rows to draw, either for the
// whole dataset or, in a document warning, for one category.
var ErrEmptyDataset = parser.ErrEmptyDataset

// ErrLabelPlacementOverflow indicates label collision resolution hit its
// pass cap; labels fall back to their unadjusted positions.
var ErrLabelPlacementOverflow = labels.ErrOverflow

// RenderError represents an error during one render stage.
type RenderError struct {
	Stage string // "config", "load", "scales", "encode"
	Err   error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render error in stage %q: %v", e.Stage, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// NewRenderError creates a new RenderError.
func NewRenderError(stage string, err error) *RenderError {
	return &RenderError{
		Stage: stage,
		Err:   err,
	}
}

// SeriesError reports a problem confined to one category.
type SeriesError struct {
	Category string
	Err      error
}

func (e *SeriesError) Error() string {
	return fmt.Sprintf("series %q: %v", e.Category, e.Err)
}

func (e *SeriesError) Unwrap() error {
	return e.Err
}
