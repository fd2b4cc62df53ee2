// Package charts renders the five summary charts for the metrics sheet. Each
// generator checks that its columns exist, aggregates, and writes one PNG;
// when a required column is absent it skips without error so a partial sheet
// still produces whatever charts it can support.
package charts

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/antoinemansour7/SOEN321-static-analysis/internal/config"
	"github.com/antoinemansour7/SOEN321-static-analysis/internal/dataset"
)

// Count columns the tracker and permission charts aggregate.
const (
	ColTrackers    = "Nb_Trackers"
	ColPermissions = "Nb_Permissions"
	ColDangerous   = "Nb_Dangerous_Permissions"
)

// Output file names, one per generator.
const (
	FileTrackersByApp    = "trackers_by_app.png"
	FilePermissionTotals = "permissions_vs_dangerous.png"
	FileAverageScores    = "average_scores.png"
	FilePermissionUsage  = "permission_usage.png"
	FileCategoryScores   = "category_scores.png"
)

var groupPalette = []string{"1f77b4", "ff7f0e", "2ca02c", "d62728"}

// Generator renders the chart suite for one table.
type Generator struct {
	logger *slog.Logger
	cols   config.ColumnSets
}

// NewGenerator creates a chart generator using the configured column sets.
func NewGenerator(logger *slog.Logger, cols config.ColumnSets) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{logger: logger, cols: cols}
}

// Generate runs every chart generator against the table and returns the paths
// of the charts that were produced. Generators whose columns are missing are
// skipped; a rendering failure aborts the suite.
func (g *Generator) Generate(t *dataset.Table, dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create plots directory: %w", err)
	}

	generators := []struct {
		name string
		run  func(*dataset.Table, string) (string, error)
	}{
		{"trackers_by_app", g.TrackersByApp},
		{"permission_totals", g.PermissionTotals},
		{"average_scores", g.AverageScores},
		{"permission_usage", g.PermissionUsage},
		{"category_scores", g.CategoryScores},
	}

	var paths []string
	for _, gen := range generators {
		path, err := gen.run(t, dir)
		if err != nil {
			return paths, fmt.Errorf("chart %s: %w", gen.name, err)
		}
		if path == "" {
			g.logger.Debug("chart skipped, required columns missing", "chart", gen.name)
			continue
		}
		g.logger.Info("chart saved", "chart", gen.name, "path", path)
		paths = append(paths, path)
	}
	return paths, nil
}

// TrackersByApp charts the embedded tracker count per app, lowest first.
func (g *Generator) TrackersByApp(t *dataset.Table, dir string) (string, error) {
	if !t.HasColumn(ColTrackers) {
		return "", nil
	}

	labels := g.appLabels(t)
	counts := t.Floats(ColTrackers)

	type entry struct {
		label string
		count float64
	}
	var entries []entry
	maxCount := 0.0
	for i, c := range counts {
		if math.IsNaN(c) {
			continue
		}
		entries = append(entries, entry{labels[i], c})
		maxCount = math.Max(maxCount, c)
	}
	if len(entries) == 0 {
		return "", nil
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].count < entries[j].count })

	bars := make([]chart.Value, len(entries))
	for i, e := range entries {
		bars[i] = chart.Value{Value: e.count, Label: e.label, Style: barStyle("1f77b4")}
	}

	path := filepath.Join(dir, FileTrackersByApp)
	err := renderBarChart(path, "Tracker count per mobility app",
		"Number of embedded trackers", bars,
		&chart.ContinuousRange{Min: 0, Max: maxCount + 1})
	if err != nil {
		return "", err
	}
	return path, nil
}

// PermissionTotals charts declared permissions next to the dangerous subset,
// two bars per app.
func (g *Generator) PermissionTotals(t *dataset.Table, dir string) (string, error) {
	if len(t.Available([]string{ColPermissions, ColDangerous})) < 2 {
		return "", nil
	}

	labels := g.appLabels(t)
	totals := t.Floats(ColPermissions)
	dangerous := t.Floats(ColDangerous)

	var bars []chart.Value
	maxCount := 0.0
	for i := range t.Rows {
		if math.IsNaN(totals[i]) && math.IsNaN(dangerous[i]) {
			continue
		}
		bars = append(bars,
			chart.Value{Value: zeroNaN(totals[i]), Label: labels[i], Style: barStyle("aec7e8")},
			chart.Value{Value: zeroNaN(dangerous[i]), Label: "", Style: barStyle("ff9896")},
		)
		maxCount = math.Max(maxCount, zeroNaN(totals[i]))
		maxCount = math.Max(maxCount, zeroNaN(dangerous[i]))
	}
	if len(bars) == 0 {
		return "", nil
	}

	path := filepath.Join(dir, FilePermissionTotals)
	err := renderBarChart(path, "Declared permissions vs dangerous subset",
		"Count", bars, &chart.ContinuousRange{Min: 0, Max: maxCount + 1})
	if err != nil {
		return "", err
	}
	return path, nil
}

// AverageScores charts the mean of each 0-5 score column across all apps,
// lowest first, with the mean printed in the bar label.
func (g *Generator) AverageScores(t *dataset.Table, dir string) (string, error) {
	scoreCols := t.Available(g.cols.Scores)
	if len(scoreCols) == 0 {
		return "", nil
	}

	type entry struct {
		label string
		mean  float64
	}
	var entries []entry
	for _, col := range scoreCols {
		m := Mean(t.Floats(col))
		if math.IsNaN(m) {
			continue
		}
		entries = append(entries, entry{scoreName(col), m})
	}
	if len(entries) == 0 {
		return "", nil
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].mean < entries[j].mean })

	bars := make([]chart.Value, len(entries))
	for i, e := range entries {
		bars[i] = chart.Value{
			Value: e.mean,
			Label: fmt.Sprintf("%s (%.1f)", e.label, e.mean),
			Style: barStyle("c5b0d5"),
		}
	}

	path := filepath.Join(dir, FileAverageScores)
	err := renderBarChart(path, "Average privacy/transparency scores across apps",
		"Average score (0-5)", bars, &chart.ContinuousRange{Min: 0, Max: 5})
	if err != nil {
		return "", err
	}
	return path, nil
}

// PermissionUsage charts how many apps answer "Yes" for each sensitive
// permission flag.
func (g *Generator) PermissionUsage(t *dataset.Table, dir string) (string, error) {
	flagCols := t.Available(g.cols.YesNo)
	if len(flagCols) == 0 {
		return "", nil
	}

	bars := make([]chart.Value, len(flagCols))
	for i, col := range flagCols {
		count := 0
		for _, yes := range t.Bools(col) {
			if yes {
				count++
			}
		}
		bars[i] = chart.Value{
			Value: float64(count),
			Label: fmt.Sprintf("%s (%d)", permissionName(col), count),
			Style: barStyle("98df8a"),
		}
	}

	path := filepath.Join(dir, FilePermissionUsage)
	err := renderBarChart(path, "Prevalence of sensitive permissions across apps",
		"Number of apps requesting permission", bars,
		&chart.ContinuousRange{Min: 0, Max: float64(len(t.Rows) + 1)})
	if err != nil {
		return "", err
	}
	return path, nil
}

// CategoryScores charts the median of each score column grouped by app
// category. Categories are ordered by the first score column's median,
// highest first.
func (g *Generator) CategoryScores(t *dataset.Table, dir string) (string, error) {
	if !t.HasColumn(g.cols.Category) {
		return "", nil
	}
	scoreCols := t.Available(g.cols.Scores)
	if len(scoreCols) == 0 {
		return "", nil
	}

	groups := t.Strings(g.cols.Category)
	medians := make([]map[string]float64, len(scoreCols))
	for i, col := range scoreCols {
		medians[i] = MedianByGroup(groups, t.Floats(col))
	}

	categories := make([]string, 0, len(medians[0]))
	for cat := range medians[0] {
		categories = append(categories, cat)
	}
	sort.SliceStable(categories, func(i, j int) bool {
		a, b := medians[0][categories[i]], medians[0][categories[j]]
		switch {
		case math.IsNaN(a) && math.IsNaN(b):
			return categories[i] < categories[j]
		case math.IsNaN(b):
			return true
		case math.IsNaN(a):
			return false
		case a != b:
			return a > b
		}
		return categories[i] < categories[j]
	})

	var bars []chart.Value
	for _, cat := range categories {
		for i := range scoreCols {
			label := ""
			if i == 0 {
				label = cat
			}
			bars = append(bars, chart.Value{
				Value: zeroNaN(medians[i][cat]),
				Label: label,
				Style: barStyle(groupPalette[i%len(groupPalette)]),
			})
		}
	}

	path := filepath.Join(dir, FileCategoryScores)
	err := renderBarChart(path, "Median risk/transparency scores by category",
		"Median score (0-5 scale)", bars, &chart.ContinuousRange{Min: 0, Max: 5})
	if err != nil {
		return "", err
	}
	return path, nil
}

// appLabels returns the chart axis label for every row, falling back to the
// row number when the app-name column is absent.
func (g *Generator) appLabels(t *dataset.Table) []string {
	if labels := t.Strings(g.cols.AppLabel); labels != nil {
		return labels
	}
	labels := make([]string, len(t.Rows))
	for i := range labels {
		labels[i] = fmt.Sprintf("App %d", i+1)
	}
	return labels
}

// scoreName turns "Tracker_Intensity_Score_0to5" into "Tracker Intensity Score".
func scoreName(col string) string {
	return strings.ReplaceAll(strings.TrimSuffix(col, "_0to5"), "_", " ")
}

// permissionName turns "Uses_Precise_Location" into "Precise Location".
func permissionName(col string) string {
	return strings.ReplaceAll(strings.TrimPrefix(col, "Uses_"), "_", " ")
}

func zeroNaN(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return v
}
