package exporter

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/antoinemansour7/SOEN321-static-analysis/internal/dataset"
)

const sheetName = "Sheet1"

// WriteExcel re-emits the plain table as an .xlsx workbook. Cells that parse
// as numbers are written as numbers, everything else as strings, so reading
// the file back yields the same table.
func WriteExcel(t *dataset.Table, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	header := make([]interface{}, len(t.Columns))
	for i, col := range t.Columns {
		header[i] = col
	}
	if err := setRow(f, 1, header); err != nil {
		return err
	}

	for i, row := range t.Rows {
		cells := make([]interface{}, len(row))
		for j, cell := range row {
			cells[j] = cellValue(cell)
		}
		if err := setRow(f, i+2, cells); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("failed to compute cell name: %w", err)
	}
	if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
		return fmt.Errorf("failed to write row %d: %w", row, err)
	}
	return nil
}

// cellValue picks the Excel cell type for a string cell. Numbers go in as
// float64 so the round trip does not turn "12" into a text cell.
func cellValue(cell string) interface{} {
	trimmed := strings.TrimSpace(cell)
	if trimmed == "" {
		return ""
	}
	if v, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return v
	}
	return cell
}
