package parser

import (
	"fmt"
	"io"

	"github.com/ukaji3/popchart-go/pkg/popchart/models"
	"github.com/xuri/excelize/v2"
)

// ParseXLSX reads the dataset table from a workbook sheet.
// An empty sheet name selects the first sheet; a nil range reads the
// whole sheet.
func ParseXLSX(r io.Reader, source, sheet string, rng *models.CellRange) (*models.Dataset, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, newLoadError(source, err)
	}
	defer f.Close()

	if sheet == "" {
		list := f.GetSheetList()
		if len(list) == 0 {
			return nil, emptyDataset(source)
		}
		sheet = list[0]
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, &ParseError{Source: source, Err: fmt.Errorf("sheet %q: %w", sheet, err)}
	}

	firstRow := 1
	if rng != nil {
		rows = clipRows(rows, rng)
		firstRow = rng.R1
	}

	return recordsFromRows(source, rows, firstRow)
}
