// Package styling derives the presentational view of the metrics table:
// Yes/No highlighting, numeric color gradients, and the table caption. It is
// a pure transform; the underlying cell values are never modified.
package styling

import (
	"math"

	"github.com/antoinemansour7/SOEN321-static-analysis/internal/config"
	"github.com/antoinemansour7/SOEN321-static-analysis/internal/dataset"
)

// Caption is the title shown above the styled HTML table.
const Caption = "Mobility Apps - Tracker & Permission Overview"

const (
	yesBackground = "#b7f4c7"
	noBackground  = "#ffd6cf"
	lightText     = "#f1f1f1"
)

// Cell is one styled table cell.
type Cell struct {
	// Value is the raw cell content, untouched.
	Value string
	// Display is what gets rendered; empty cells show "-".
	Display string
	// Background is a hex color, or "" for no fill.
	Background string
	// TextColor overrides the text color on dark fills, "" otherwise.
	TextColor string
}

// StyledTable is the presentational view of a dataset.Table.
type StyledTable struct {
	Caption string
	Columns []string
	Cells   [][]Cell
}

// Style builds the styled view of a table: Yes cells green, No cells red,
// gradient columns shaded low-to-high through an orange-red ramp.
func Style(t *dataset.Table, cols config.ColumnSets) *StyledTable {
	styled := &StyledTable{
		Caption: Caption,
		Columns: append([]string(nil), t.Columns...),
		Cells:   make([][]Cell, len(t.Rows)),
	}

	yesNo := make(map[int]bool)
	for _, name := range t.Available(cols.YesNo) {
		yesNo[t.ColumnIndex(name)] = true
	}

	// Per-column value range for the gradient columns.
	type gradient struct {
		values   []float64
		min, max float64
	}
	gradients := make(map[int]gradient)
	for _, name := range t.Available(cols.Gradient) {
		values := t.Floats(name)
		lo, hi := math.Inf(1), math.Inf(-1)
		for _, v := range values {
			if math.IsNaN(v) {
				continue
			}
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
		if lo > hi {
			continue // column held no numeric values
		}
		gradients[t.ColumnIndex(name)] = gradient{values: values, min: lo, max: hi}
	}

	for i, row := range t.Rows {
		cells := make([]Cell, len(t.Columns))
		for j := range t.Columns {
			var value string
			if j < len(row) {
				value = row[j]
			}
			cell := Cell{Value: value, Display: value}
			if value == "" {
				cell.Display = "-"
			}

			switch {
			case yesNo[j]:
				// Exact match on the rendered value, matching the
				// source sheet's "Yes"/"No" capitalization.
				if value == "Yes" {
					cell.Background = yesBackground
				} else if value == "No" {
					cell.Background = noBackground
				}
			default:
				if g, ok := gradients[j]; ok && !math.IsNaN(g.values[i]) {
					pos := 0.5
					if g.max > g.min {
						pos = (g.values[i] - g.min) / (g.max - g.min)
					}
					cell.Background = rampColor(pos)
					if dark(cell.Background) {
						cell.TextColor = lightText
					}
				}
			}
			cells[j] = cell
		}
		styled.Cells[i] = cells
	}

	return styled
}
