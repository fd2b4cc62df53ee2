package exporter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antoinemansour7/SOEN321-static-analysis/internal/config"
	"github.com/antoinemansour7/SOEN321-static-analysis/internal/dataset"
	"github.com/antoinemansour7/SOEN321-static-analysis/internal/styling"
)

func renderFixtureHTML(t *testing.T) string {
	t.Helper()

	table := &dataset.Table{
		Columns: []string{"App_Name", "Uses_Camera", "Nb_Trackers"},
		Rows: [][]string{
			{"Uber", "Yes", "12"},
			{"<script>alert(1)</script>", "No", ""},
		},
	}
	styled := styling.Style(table, config.DefaultColumnSets())

	path := filepath.Join(t.TempDir(), "report.html")
	require.NoError(t, WriteHTML(styled, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestWriteHTML(t *testing.T) {
	html := renderFixtureHTML(t)

	assert.Contains(t, html, "<caption>"+styling.Caption+"</caption>")
	assert.Contains(t, html, "<th>App_Name</th>")
	assert.Contains(t, html, `style="background-color:#b7f4c7"`, "Yes highlight present")
	assert.Contains(t, html, `style="background-color:#ffd6cf"`, "No highlight present")
	assert.Contains(t, html, "<td>-</td>", "empty cells render a dash")
}

func TestWriteHTMLEscapesCellContent(t *testing.T) {
	html := renderFixtureHTML(t)

	assert.NotContains(t, html, "<script>alert(1)</script>")
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestWriteHTMLTableCSS(t *testing.T) {
	html := renderFixtureHTML(t)

	assert.Contains(t, html, "text-align: center")
	assert.Contains(t, html, "border: 1px solid #ccc")
	assert.Contains(t, html, "padding: 6px")
	assert.Contains(t, html, "caption-side: top")
}
