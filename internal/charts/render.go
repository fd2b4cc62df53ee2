package charts

import (
	"fmt"
	"os"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	chartWidth  = 1280
	chartHeight = 640
	barSpacing  = 16
)

// renderBarChart draws a bar chart into a PNG file. The Y range must be a
// real interval; go-chart refuses a zero-height data range.
func renderBarChart(path, title, yAxisName string, bars []chart.Value, yRange *chart.ContinuousRange) error {
	if yRange.Max <= yRange.Min {
		yRange.Max = yRange.Min + 1
	}

	graph := chart.BarChart{
		Title:  title,
		Width:  chartWidth,
		Height: chartHeight,
		Background: chart.Style{
			Padding: chart.Box{Top: 48, Left: 24, Right: 24, Bottom: 96},
		},
		BarWidth:   barWidth(len(bars)),
		BarSpacing: barSpacing,
		XAxis: chart.Style{
			TextRotationDegrees: 45.0,
		},
		YAxis: chart.YAxis{
			Name:  yAxisName,
			Range: yRange,
		},
		Bars: bars,
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer f.Close()

	if err := graph.Render(chart.PNG, f); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}

// barWidth sizes bars so the full set fits the fixed canvas width.
func barWidth(n int) int {
	if n == 0 {
		return 1
	}
	w := (chartWidth - 160) / n
	w -= barSpacing
	if w < 8 {
		return 8
	}
	if w > 60 {
		return 60
	}
	return w
}

// barStyle fills a bar with the given hex color (no leading '#').
func barStyle(hexColor string) chart.Style {
	c := drawing.ColorFromHex(hexColor)
	return chart.Style{
		FillColor:   c,
		StrokeColor: c,
		StrokeWidth: 0,
	}
}
