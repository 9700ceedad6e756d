package growthbench

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// RenderDashboard writes an interactive HTML page with the linear, log-log and
// complexity charts.
func RenderDashboard(w io.Writer, a *Analysis) error {
	page := components.NewPage()
	page.SetPageTitle("growthbench results")
	page.SetLayout("flex")

	page.AddCharts(
		linearLine(a),
		logLogLine(a),
		complexityLine(a),
	)

	if err := page.Render(w); err != nil {
		return fmt.Errorf("rendering dashboard: %w", err)
	}
	return nil
}

func newLine(title, axisType string) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithAnimation(false),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "bottom"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "item"}),
		charts.WithXAxisOpts(opts.XAxis{Name: axisLabelSize, Type: axisType}),
		charts.WithYAxisOpts(opts.YAxis{Name: axisLabelTime, Type: axisType}),
	)
	return line
}

func linearLine(a *Analysis) *charts.Line {
	line := newLine("Execution Time (linear scale)", "value")
	line.AddSeries("Execution Time", pairs(a.Dataset.Sizes(), a.Dataset.Times()))

	if a.Trend != nil {
		sizes := a.Dataset.Sizes()
		trend := make([]float64, len(sizes))
		for i, n := range sizes {
			trend[i] = a.Trend.Eval(n)
		}
		line.AddSeries("Quadratic Trend", pairs(sizes, trend),
			charts.WithLineStyleOpts(opts.LineStyle{Type: "dashed"}))
	}
	return line
}

func logLogLine(a *Analysis) *charts.Line {
	ds := positive(a.Dataset)
	line := newLine("Execution Time (log-log scale)", "log")
	line.AddSeries("Execution Time", pairs(ds.Sizes(), ds.Times()))
	return line
}

func complexityLine(a *Analysis) *charts.Line {
	ds := positive(a.Dataset)
	line := newLine("Complexity Analysis", "log")
	line.AddSeries("Actual Performance", pairs(ds.Sizes(), ds.Times()))

	for _, ref := range a.References {
		line.AddSeries(ref.Name, pairs(ref.Sizes, ref.Values),
			charts.WithLineStyleOpts(opts.LineStyle{Type: "dashed"}))
	}
	return line
}

// pairs turns parallel columns into [x, y] points for a value or log x-axis.
func pairs(xs, ys []float64) []opts.LineData {
	data := make([]opts.LineData, 0, len(xs))
	for i := range xs {
		data = append(data, opts.LineData{Value: []float64{xs[i], ys[i]}})
	}
	return data
}
