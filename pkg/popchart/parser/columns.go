// Package parser provides dataset loading from CSV and Excel sources.
package parser

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ukaji3/popchart-go/pkg/popchart/models"
)

// Required column names, matched case-insensitively.
const (
	ColumnType       = "type"
	ColumnYear       = "year"
	ColumnPopulation = "population"
)

const utf8BOM = "\ufeff"

// columns maps the required fields to row indexes.
type columns struct {
	typ        int
	year       int
	population int
}

// locateColumns finds the required columns in a header row.
// Extra columns are ignored.
func locateColumns(header []string) (columns, error) {
	index := make(map[string]int)
	for i, name := range header {
		key := normalizeHeader(name)
		if _, dup := index[key]; !dup {
			index[key] = i
		}
	}

	var missing []string
	lookup := func(name string) int {
		i, ok := index[name]
		if !ok {
			missing = append(missing, name)
			return -1
		}
		return i
	}

	cols := columns{
		typ:        lookup(ColumnType),
		year:       lookup(ColumnYear),
		population: lookup(ColumnPopulation),
	}
	if len(missing) > 0 {
		return columns{}, fmt.Errorf("missing column(s) %s, available: %v", strings.Join(missing, ", "), header)
	}
	return cols, nil
}

// hasColumns reports whether a row could serve as the header.
func hasColumns(row []string) bool {
	_, err := locateColumns(row)
	return err == nil
}

func normalizeHeader(s string) string {
	s = strings.TrimPrefix(s, utf8BOM)
	return strings.ToLower(strings.TrimSpace(s))
}

// record converts a data row into a Record.
// line is used for error reporting only.
func (c columns) record(source string, line int, row []string) (models.Record, error) {
	cell := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	year, err := parseYear(cell(c.year))
	if err != nil {
		return models.Record{}, &ParseError{Source: source, Line: line, Column: ColumnYear, Value: cell(c.year), Err: err}
	}

	population, err := parsePopulation(cell(c.population))
	if err != nil {
		return models.Record{}, &ParseError{Source: source, Line: line, Column: ColumnPopulation, Value: cell(c.population), Err: err}
	}

	return models.Record{
		Category:   cell(c.typ),
		Year:       year,
		Population: population,
	}, nil
}

// blank reports whether every cell of row is empty.
func blank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

var errNotInteger = errors.New("not an integer")

// parseYear parses an integer year. Integral decimals such as "1950.0",
// as produced by spreadsheet exports, are accepted.
func parseYear(s string) (int, error) {
	if i, err := strconv.Atoi(s); err == nil {
		return i, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, errNotInteger
	}
	return int(f), nil
}

// parsePopulation parses a finite population value.
func parsePopulation(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("non-finite value %v", f)
	}
	return f, nil
}
