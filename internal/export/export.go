// Package export serializes filtered, ordered query results to CSV or Excel.
// Callers supply a fixed column/header mapping and pre-rendered string rows;
// row order is preserved exactly as supplied.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

type Format string

const (
	FormatCSV   Format = "csv"
	FormatExcel Format = "excel"
)

// ParseFormat recognizes the export query-parameter values. Anything else
// means the request is a normal list render, not an export.
func ParseFormat(s string) (Format, bool) {
	switch Format(s) {
	case FormatCSV, FormatExcel:
		return Format(s), true
	}
	return "", false
}

const (
	ContentTypeCSV   = "text/csv"
	ContentTypeExcel = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

func (f Format) ContentType() string {
	if f == FormatExcel {
		return ContentTypeExcel
	}
	return ContentTypeCSV
}

// Dataset is one exportable result set: a header row plus data rows, every row
// holding one rendered value per header (empty string for null values).
type Dataset struct {
	Filename string
	Headers  []string
	Rows     [][]string
}

func (d *Dataset) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(d.Headers); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, row := range d.Rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func (d *Dataset) WriteExcel(w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if err := f.SetSheetRow(sheet, "A1", &d.Headers); err != nil {
		return fmt.Errorf("failed to write excel header: %w", err)
	}
	for i, row := range d.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write excel row: %w", err)
		}
	}
	return f.Write(w)
}

// Write renders the dataset in the requested format.
func (d *Dataset) Write(w io.Writer, format Format) error {
	if format == FormatExcel {
		return d.WriteExcel(w)
	}
	return d.WriteCSV(w)
}
