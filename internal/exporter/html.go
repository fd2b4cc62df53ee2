package exporter

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"github.com/antoinemansour7/SOEN321-static-analysis/internal/styling"
)

const htmlTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
table.report {
  border-collapse: collapse;
}
table.report caption {
  caption-side: top;
  font-size: 16px;
  font-weight: bold;
  padding: 8px;
}
table.report th, table.report td {
  text-align: center;
  border: 1px solid #ccc;
  padding: 6px;
}
</style>
</head>
<body>
<table class="report">
<caption>{{.Caption}}</caption>
<thead>
<tr>{{range .Columns}}<th>{{.}}</th>{{end}}</tr>
</thead>
<tbody>
{{range .Rows}}<tr>{{range .}}<td{{with .Style}} style="{{.}}"{{end}}>{{.Display}}</td>{{end}}</tr>
{{end}}</tbody>
</table>
</body>
</html>
`

type htmlCell struct {
	Display string
	Style   template.CSS
}

type htmlTable struct {
	Caption string
	Columns []string
	Rows    [][]htmlCell
}

var reportTemplate = template.Must(template.New("report").Parse(htmlTemplate))

// WriteHTML renders the styled table to a standalone HTML file.
func WriteHTML(styled *styling.StyledTable, path string) error {
	data := htmlTable{
		Caption: styled.Caption,
		Columns: styled.Columns,
		Rows:    make([][]htmlCell, len(styled.Cells)),
	}
	for i, row := range styled.Cells {
		cells := make([]htmlCell, len(row))
		for j, cell := range row {
			cells[j] = htmlCell{Display: cell.Display, Style: cellStyle(cell)}
		}
		data.Rows[i] = cells
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create HTML file: %w", err)
	}
	defer f.Close()

	if err := reportTemplate.Execute(f, data); err != nil {
		return fmt.Errorf("failed to render HTML: %w", err)
	}
	return nil
}

// cellStyle builds the inline style attribute for one cell. The color values
// come from the styling package's fixed palette, so marking them as trusted
// CSS is safe.
func cellStyle(cell styling.Cell) template.CSS {
	var css string
	if cell.Background != "" {
		css = "background-color:" + cell.Background
	}
	if cell.TextColor != "" {
		if css != "" {
			css += ";"
		}
		css += "color:" + cell.TextColor
	}
	return template.CSS(css)
}
