package parser

import "github.com/ukaji3/popchart-go/pkg/popchart/models"

// findHeaderRow returns the index of the first row carrying the required
// columns, or -1. Workbooks often put titles and notes above the table.
func findHeaderRow(rows [][]string) int {
	for i, row := range rows {
		if blank(row) {
			continue
		}
		if hasColumns(row) {
			return i
		}
	}
	return -1
}

// clipRows restricts rows to a cell range. A nil range keeps every row.
func clipRows(rows [][]string, r *models.CellRange) [][]string {
	if r == nil {
		return rows
	}

	var out [][]string
	for rowIdx := r.R1 - 1; rowIdx < r.R2 && rowIdx < len(rows); rowIdx++ {
		if rowIdx < 0 {
			continue
		}
		row := rows[rowIdx]
		var clipped []string
		for colIdx := r.C1 - 1; colIdx < r.C2; colIdx++ {
			if colIdx >= 0 && colIdx < len(row) {
				clipped = append(clipped, row[colIdx])
			} else {
				clipped = append(clipped, "")
			}
		}
		out = append(out, clipped)
	}
	return out
}

// recordsFromRows converts a header-led table into records.
// Row numbers in errors are 1-based sheet rows, offset by firstRow.
func recordsFromRows(source string, rows [][]string, firstRow int) (*models.Dataset, error) {
	headerIdx := findHeaderRow(rows)
	if headerIdx < 0 {
		if len(rows) == 0 || allBlank(rows) {
			return nil, emptyDataset(source)
		}
		_, err := locateColumns(rows[firstNonBlank(rows)])
		return nil, &ParseError{Source: source, Err: err}
	}

	cols, _ := locateColumns(rows[headerIdx])
	ds := &models.Dataset{Source: source}
	for i := headerIdx + 1; i < len(rows); i++ {
		if blank(rows[i]) {
			continue
		}
		rec, err := cols.record(source, firstRow+i, rows[i])
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

func allBlank(rows [][]string) bool {
	return firstNonBlank(rows) < 0
}

func firstNonBlank(rows [][]string) int {
	for i, row := range rows {
		if !blank(row) {
			return i
		}
	}
	return -1
}
