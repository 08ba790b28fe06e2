package parser

import (
	"errors"
	"strings"
	"testing"
)

const scenarioCSV = `type,year,population
estimate,1950,37000
estimate,2020,41000
medium variant,2020,41000
medium variant,2100,35000
`

func TestParseCSV(t *testing.T) {
	ds, err := ParseCSV(strings.NewReader(scenarioCSV), "scenario.csv")
	if err != nil {
		t.Fatalf("ParseCSV failed: %v", err)
	}

	if ds.Len() != 4 {
		t.Fatalf("Expected 4 records, got %d", ds.Len())
	}
	if ds.Source != "scenario.csv" {
		t.Errorf("Expected source scenario.csv, got %q", ds.Source)
	}

	first := ds.Records[0]
	if first.Category != "estimate" || first.Year != 1950 || first.Population != 37000 {
		t.Errorf("unexpected first record %+v", first)
	}
	last := ds.Records[3]
	if last.Category != "medium variant" || last.Year != 2100 || last.Population != 35000 {
		t.Errorf("unexpected last record %+v", last)
	}
}

func TestParseCSVExtraColumnsAndBlankLines(t *testing.T) {
	input := "\ufeffid,Type,Year,Population,note\n" +
		"1,estimate,1950,37297.6,first\n" +
		"\n" +
		"2,high variant,2100,27000,\n"

	ds, err := ParseCSV(strings.NewReader(input), "extra.csv")
	if err != nil {
		t.Fatalf("ParseCSV failed: %v", err)
	}
	if ds.Len() != 2 {
		t.Fatalf("Expected 2 records, got %d", ds.Len())
	}
	if ds.Records[0].Population != 37297.6 {
		t.Errorf("Expected 37297.6, got %v", ds.Records[0].Population)
	}
	if ds.Records[1].Category != "high variant" {
		t.Errorf("Expected high variant, got %q", ds.Records[1].Category)
	}
}

func TestParseCSVQuotedHeaderWithBOM(t *testing.T) {
	input := "\ufeff\"type\",\"year\",\"population\"\n" +
		"\"estimate\",\"1950\",\"37000\"\n" +
		"\"medium variant\",\"2100\",\"35000\"\n"

	ds, err := ParseCSV(strings.NewReader(input), "quoted.csv")
	if err != nil {
		t.Fatalf("ParseCSV failed: %v", err)
	}
	if ds.Len() != 2 {
		t.Fatalf("Expected 2 records, got %d", ds.Len())
	}
	if ds.Records[0].Category != "estimate" || ds.Records[0].Year != 1950 {
		t.Errorf("unexpected first record %+v", ds.Records[0])
	}
}

func TestParseCSVErrors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		target error
	}{
		{"empty file", "", ErrEmptyDataset},
		{"header only", "type,year,population\n", ErrEmptyDataset},
		{"missing column", "type,year\nestimate,1950\n", ErrDataParse},
		{"bad year", "type,year,population\nestimate,MCML,37000\n", ErrDataParse},
		{"bad population", "type,year,population\nestimate,1950,many\n", ErrDataParse},
		{"bad quoting", "type,year,population\n\"estimate,1950,37000\n", ErrDataParse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds, err := ParseCSV(strings.NewReader(tt.input), "bad.csv")
			if !errors.Is(err, tt.target) {
				t.Fatalf("expected %v, got %v", tt.target, err)
			}
			if ds != nil {
				t.Errorf("expected nil dataset, got %d records", ds.Len())
			}
		})
	}
}

func TestParseCSVReportsLine(t *testing.T) {
	input := "type,year,population\nestimate,1950,37000\nestimate,1951,oops\n"

	_, err := ParseCSV(strings.NewReader(input), "lines.csv")
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if perr.Line != 3 {
		t.Errorf("Expected line 3, got %d", perr.Line)
	}
	if perr.Column != ColumnPopulation {
		t.Errorf("Expected column %q, got %q", ColumnPopulation, perr.Column)
	}
}
