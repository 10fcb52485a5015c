// Package report turns the stock table into things people read: the
// spreadsheet download and a Markdown balance report.
package report

import (
	"bytes"
	"fmt"
	"io"

	"github.com/brunocosta1987/estoque/internal/inventory"
	"github.com/xuri/excelize/v2"
)

const (
	// FileName is the download name of the spreadsheet report.
	FileName = "relatorio_estoque.xlsx"

	// ContentType is the MIME type of the spreadsheet report.
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	// SheetName is the single sheet holding the table.
	SheetName = "Estoque"
)

// WriteXLSX writes t as a one-sheet workbook: a header row with the column
// names, then one row per item in table order. Quantities and values are
// stored as numbers.
func WriteXLSX(w io.Writer, t inventory.Table) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("report: rename sheet: %w", err)
	}

	header := make([]any, len(inventory.Columns))
	for i, c := range inventory.Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("report: write header: %w", err)
	}

	for i, r := range t.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("report: row %d: %w", i+1, err)
		}
		values := []any{
			r.Item,
			r.Quantity,
			r.UnitValue.InexactFloat64(),
			r.TotalValue.InexactFloat64(),
		}
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return fmt.Errorf("report: row %d: %w", i+1, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("report: write workbook: %w", err)
	}
	return nil
}

// XLSX returns the workbook for t as bytes.
func XLSX(t inventory.Table) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteXLSX(&buf, t); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
