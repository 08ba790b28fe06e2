package parser

import (
	"errors"
	"fmt"
)

// ErrDataLoad indicates the source could not be opened, fetched or read.
var ErrDataLoad = errors.New("data load failed")

// ErrDataParse indicates the source was read but a row or column is malformed.
var ErrDataParse = errors.New("data parse failed")

// ErrEmptyDataset indicates the source holds no data rows.
var ErrEmptyDataset = errors.New("empty dataset")

// LoadError represents a failure to obtain the raw bytes of a source.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrDataLoad) hold for every LoadError.
func (e *LoadError) Is(target error) bool {
	return target == ErrDataLoad
}

// ParseError represents a malformed row or header.
type ParseError struct {
	Source string
	// Line is the 1-based line (CSV) or row (workbook) number, 0 if unknown.
	Line int
	// Column is the offending column name, if any.
	Column string
	// Value is the offending raw value, if any.
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	switch {
	case e.Line > 0 && e.Column != "":
		return fmt.Sprintf("parse %s line %d column %q value %q: %v", e.Source, e.Line, e.Column, e.Value, e.Err)
	case e.Line > 0:
		return fmt.Sprintf("parse %s line %d: %v", e.Source, e.Line, e.Err)
	default:
		return fmt.Sprintf("parse %s: %v", e.Source, e.Err)
	}
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrDataParse) hold for every ParseError.
func (e *ParseError) Is(target error) bool {
	return target == ErrDataParse
}

func newLoadError(source string, err error) *LoadError {
	return &LoadError{Source: source, Err: err}
}

func emptyDataset(source string) error {
	return fmt.Errorf("%s: %w", source, ErrEmptyDataset)
}
