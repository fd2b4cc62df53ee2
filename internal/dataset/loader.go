package dataset

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"

	reperrors "github.com/antoinemansour7/SOEN321-static-analysis/internal/errors"
)

// Load reads the first usable sheet of an Excel workbook into a Table.
//
// A sheet is usable when it contains a header row (the first row with any
// non-empty cell) followed by at least one data row. Header names and cells
// are trimmed, fully empty rows are dropped, and short rows are padded to the
// header width so column indexing stays safe downstream.
func Load(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, reperrors.UnsupportedWorkbook(path, err)
	}
	defer f.Close()

	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
		}

		table, ok := tableFromRows(rows)
		if !ok {
			continue
		}

		slog.Debug("loaded sheet",
			slog.String("sheet", sheet),
			slog.Int("columns", len(table.Columns)),
			slog.Int("rows", len(table.Rows)))
		return table, nil
	}

	return nil, reperrors.EmptyWorkbook(path)
}

// tableFromRows builds a Table from raw sheet rows, reporting false when the
// sheet has no header or no data rows.
func tableFromRows(rows [][]string) (*Table, bool) {
	headerIdx := -1
	for i, row := range rows {
		if !rowEmpty(row) {
			headerIdx = i
			break
		}
	}
	if headerIdx < 0 {
		return nil, false
	}

	header := make([]string, len(rows[headerIdx]))
	for i, cell := range rows[headerIdx] {
		header[i] = strings.TrimSpace(cell)
	}

	var data [][]string
	for _, row := range rows[headerIdx+1:] {
		if rowEmpty(row) {
			continue
		}
		padded := make([]string, len(header))
		for i := range padded {
			if i < len(row) {
				padded[i] = strings.TrimSpace(row[i])
			}
		}
		data = append(data, padded)
	}
	if len(data) == 0 {
		return nil, false
	}

	return &Table{Columns: header, Rows: data}, true
}

func rowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
