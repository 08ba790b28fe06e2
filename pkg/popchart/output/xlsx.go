package output

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/popchart-go/pkg/popchart/models"
)

// Workbook sheet names written by ExportXLSX.
const (
	SheetData     = "Data"
	SheetLabels   = "Labels"
	SheetWarnings = "Warnings"
)

// ExportXLSX writes the plotted records and the resolved label positions
// to an xlsx workbook. The Data sheet uses the type, year, population
// header and can be read back as a chart source.
func ExportXLSX(w io.Writer, ds *models.Dataset, doc *models.Document) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetData); err != nil {
		return err
	}

	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	rows := [][]interface{}{{"type", "year", "population"}}
	for _, r := range ds.Records {
		rows = append(rows, []interface{}{r.Category, r.Year, r.Population})
	}
	if err := writeSheet(f, SheetData, rows, header); err != nil {
		return err
	}

	if _, err := f.NewSheet(SheetLabels); err != nil {
		return err
	}
	rows = [][]interface{}{{"category", "x", "y", "fill"}}
	for _, l := range doc.Labels {
		rows = append(rows, []interface{}{l.Category.Name, l.X, l.Y, l.Fill})
	}
	if err := writeSheet(f, SheetLabels, rows, header); err != nil {
		return err
	}

	if len(doc.Warnings) > 0 {
		if _, err := f.NewSheet(SheetWarnings); err != nil {
			return err
		}
		rows = [][]interface{}{{"warning"}}
		for _, warn := range doc.Warnings {
			rows = append(rows, []interface{}{warn})
		}
		if err := writeSheet(f, SheetWarnings, rows, header); err != nil {
			return err
		}
	}

	return f.Write(w)
}

func writeSheet(f *excelize.File, sheet string, rows [][]interface{}, headerStyle int) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		r := row
		if err := f.SetSheetRow(sheet, cell, &r); err != nil {
			return fmt.Errorf("sheet %s row %d: %w", sheet, i+1, err)
		}
	}

	last, err := excelize.CoordinatesToCellName(len(rows[0]), 1)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, "A1", last, headerStyle)
}
