package dataset

import (
	"math"
	"strconv"
	"strings"
)

// Table is the in-memory representation of one sheet: an ordered header plus
// data rows. All cells are kept as strings; typed views are derived on read so
// the underlying values are never rewritten.
type Table struct {
	Columns []string
	Rows    [][]string
}

// HasColumn reports whether the table carries the named column.
func (t *Table) HasColumn(name string) bool {
	return t.ColumnIndex(name) >= 0
}

// ColumnIndex returns the position of the named column, or -1 if absent.
func (t *Table) ColumnIndex(name string) int {
	for i, col := range t.Columns {
		if col == name {
			return i
		}
	}
	return -1
}

// Available filters names down to the columns actually present, preserving
// the input order. Chart generators use this to decide whether to skip.
func (t *Table) Available(names []string) []string {
	var present []string
	for _, name := range names {
		if t.HasColumn(name) {
			present = append(present, name)
		}
	}
	return present
}

// Strings returns the raw values of a column, one entry per row. Rows shorter
// than the header yield empty strings. An absent column yields nil.
func (t *Table) Strings(name string) []string {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return nil
	}
	values := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		if idx < len(row) {
			values[i] = row[idx]
		}
	}
	return values
}

// Floats returns the column parsed as float64s. Cells that do not parse
// (including empty ones) become NaN so aggregations can exclude them without
// shifting row alignment. Thousands separators are tolerated.
func (t *Table) Floats(name string) []float64 {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return nil
	}
	values := make([]float64, len(t.Rows))
	for i, row := range t.Rows {
		values[i] = math.NaN()
		if idx >= len(row) {
			continue
		}
		cell := strings.ReplaceAll(strings.TrimSpace(row[idx]), ",", "")
		if cell == "" {
			continue
		}
		if v, err := strconv.ParseFloat(cell, 64); err == nil {
			values[i] = v
		}
	}
	return values
}

// Bools returns the column normalized through YesNo, one entry per row.
func (t *Table) Bools(name string) []bool {
	raw := t.Strings(name)
	if raw == nil {
		return nil
	}
	values := make([]bool, len(raw))
	for i, v := range raw {
		values[i] = YesNo(v)
	}
	return values
}

// YesNo normalizes a Yes/No flag cell to a boolean. Only "yes" counts as
// true, compared case-insensitively after trimming whitespace; "No", empty
// cells, and anything unexpected all read as false.
func YesNo(v string) bool {
	return strings.EqualFold(strings.TrimSpace(v), "yes")
}
