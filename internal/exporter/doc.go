// Package exporter serializes the metrics table for sharing.
//
// This package contains two writers:
//
// WriteHTML: Renders the styled table (caption, Yes/No highlighting, gradient
// fills) to a standalone HTML file.
//
// WriteExcel: Re-emits the plain table as an .xlsx workbook, writing
// numeric-looking cells as numbers so a written file reads back with the same
// values.
//
// Example usage:
//
//	styled := styling.Style(table, cols)
//	err := exporter.WriteHTML(styled, "report.html")
//
//	err = exporter.WriteExcel(table, "report.xlsx")
package exporter
