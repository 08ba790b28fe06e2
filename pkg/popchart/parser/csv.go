package parser

import (
	"bufio"
	"encoding/csv"
	"errors"
	"io"

	"github.com/ukaji3/popchart-go/pkg/popchart/models"
)

// ParseCSV reads a header-led CSV table into a Dataset.
func ParseCSV(r io.Reader, source string) (*models.Dataset, error) {
	reader := csv.NewReader(skipBOM(r))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, emptyDataset(source)
	}
	if err != nil {
		return nil, csvError(source, err)
	}

	cols, err := locateColumns(header)
	if err != nil {
		return nil, &ParseError{Source: source, Line: 1, Err: err}
	}

	ds := &models.Dataset{Source: source}
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, csvError(source, err)
		}
		if blank(row) {
			continue
		}

		line, _ := reader.FieldPos(0)
		rec, err := cols.record(source, line, row)
		if err != nil {
			return nil, err
		}
		ds.Records = append(ds.Records, rec)
	}

	if ds.Len() == 0 {
		return nil, emptyDataset(source)
	}
	return ds, nil
}

// skipBOM drops a leading UTF-8 byte order mark. It has to go before
// tokenizing, otherwise a quoted first field reads as a bare quote.
func skipBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	if b, err := br.Peek(len(utf8BOM)); err == nil && string(b) == utf8BOM {
		br.Discard(len(utf8BOM))
	}
	return br
}

// csvError classifies reader failures: syntax errors are parse errors,
// anything else comes from the underlying stream.
func csvError(source string, err error) error {
	var perr *csv.ParseError
	if errors.As(err, &perr) {
		return &ParseError{Source: source, Line: perr.Line, Err: perr.Err}
	}
	return newLoadError(source, err)
}
