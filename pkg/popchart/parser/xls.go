package parser

import (
	"fmt"
	"io"

	"github.com/anrid/xls"
	"github.com/ukaji3/popchart-go/pkg/popchart/models"
)

// ParseXLS reads the dataset table from the first sheet of a legacy
// BIFF (.xls) workbook.
func ParseXLS(r io.ReadSeeker, source string, rng *models.CellRange) (*models.Dataset, error) {
	wb, err := xls.OpenReader(r, "utf-8")
	if err != nil {
		return nil, newLoadError(source, err)
	}

	sheet := wb.GetSheet(0)
	if sheet == nil {
		return nil, &ParseError{Source: source, Err: fmt.Errorf("workbook has no sheets")}
	}

	var rows [][]string
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			rows = append(rows, nil)
			continue
		}
		var cols []string
		for j := 0; j <= row.LastCol(); j++ {
			cols = append(cols, row.Col(j))
		}
		rows = append(rows, cols)
	}

	firstRow := 1
	if rng != nil {
		rows = clipRows(rows, rng)
		firstRow = rng.R1
	}

	return recordsFromRows(source, rows, firstRow)
}
