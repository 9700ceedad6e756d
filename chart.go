package growthbench

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Chart file base names.
const (
	ChartLinear     = "benchmark_linear"
	ChartLogLog     = "benchmark_loglog"
	ChartComplexity = "benchmark_complexity"
)

// DefaultFormats are the chart export formats: two vector, one raster.
var DefaultFormats = []string{"svg", "pdf", "png"}

const (
	axisLabelSize = "Input Size (characters)"
	axisLabelTime = "Execution Time (seconds)"
)

var (
	colorData      = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	colorTrend     = color.RGBA{R: 214, G: 39, B: 40, A: 255}
	colorLinear    = color.RGBA{R: 44, G: 160, B: 44, A: 255}
	colorQuadratic = color.RGBA{R: 214, G: 39, B: 40, A: 255}
	colorCubic     = color.RGBA{R: 188, G: 0, B: 188, A: 255}

	dashed = []vg.Length{vg.Points(6), vg.Points(3)}
)

var errNoPositivePoints = errors.New("no positive points to draw on a log scale")

// LinearChart plots size against time on linear axes with the quadratic trend
// overlay, when one was fitted.
func LinearChart(a *Analysis) (*plot.Plot, error) {
	p := newChart("Execution Time (linear scale)")

	if err := addMeasured(p, a.Dataset, "Execution Time"); err != nil {
		return nil, err
	}

	if a.Trend != nil {
		pts := make(plotter.XYs, len(a.Dataset))
		for i, r := range a.Dataset {
			pts[i].X = float64(r.Size)
			pts[i].Y = a.Trend.Eval(float64(r.Size))
		}
		if err := addCurve(p, pts, "Quadratic Trend", colorTrend); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// LogLogChart plots size against time on log-log axes.
func LogLogChart(a *Analysis) (*plot.Plot, error) {
	p := newChart("Execution Time (log-log scale)")
	setLogScale(p)

	ds := positive(a.Dataset)
	if len(ds) == 0 {
		return nil, errNoPositivePoints
	}
	if err := addMeasured(p, ds, "Execution Time"); err != nil {
		return nil, err
	}
	return p, nil
}

// ComplexityChart plots measured data against the anchored reference curves
// on log-log axes.
func ComplexityChart(a *Analysis) (*plot.Plot, error) {
	p := newChart("Complexity Analysis")
	setLogScale(p)

	ds := positive(a.Dataset)
	if len(ds) == 0 {
		return nil, errNoPositivePoints
	}
	if err := addMeasured(p, ds, "Actual Performance"); err != nil {
		return nil, err
	}

	colors := map[int]color.Color{1: colorLinear, 2: colorQuadratic, 3: colorCubic}
	for _, ref := range a.References {
		var pts plotter.XYs
		for i, n := range ref.Sizes {
			if n > 0 && ref.Values[i] > 0 {
				pts = append(pts, plotter.XY{X: n, Y: ref.Values[i]})
			}
		}
		if len(pts) == 0 {
			continue
		}
		c, ok := colors[ref.Power]
		if !ok {
			c = color.Black
		}
		if err := addCurve(p, pts, ref.Name, c); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// RenderCharts writes the three charts into dir, once per format, and returns
// the written paths. Supported formats are those of gonum/plot: svg, pdf, eps,
// png, jpg, tif.
func RenderCharts(a *Analysis, dir string, formats []string) ([]string, error) {
	if len(formats) == 0 {
		formats = DefaultFormats
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating chart directory: %w", err)
	}

	builders := []struct {
		name  string
		build func(*Analysis) (*plot.Plot, error)
		width vg.Length
	}{
		{ChartLinear, LinearChart, 8 * vg.Inch},
		{ChartLogLog, LogLogChart, 8 * vg.Inch},
		{ChartComplexity, ComplexityChart, 10 * vg.Inch},
	}

	var written []string
	for _, b := range builders {
		p, err := b.build(a)
		if err != nil {
			return written, fmt.Errorf("building %s: %w", b.name, err)
		}
		for _, format := range formats {
			path := filepath.Join(dir, b.name+"."+format)
			if err := p.Save(b.width, 6*vg.Inch, path); err != nil {
				return written, fmt.Errorf("saving %s: %w", path, err)
			}
			written = append(written, path)
		}
	}

	return written, nil
}

func newChart(title string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = axisLabelSize
	p.Y.Label.Text = axisLabelTime
	p.Legend.Top = true
	p.Legend.Left = true
	p.Add(plotter.NewGrid())
	return p
}

func setLogScale(p *plot.Plot) {
	p.X.Scale = plot.LogScale{}
	p.Y.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
}

func addMeasured(p *plot.Plot, ds Dataset, label string) error {
	pts := make(plotter.XYs, len(ds))
	for i, r := range ds {
		pts[i].X = float64(r.Size)
		pts[i].Y = r.Elapsed
	}

	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return fmt.Errorf("plotting measurements: %w", err)
	}
	line.Color = colorData
	line.Width = vg.Points(1.5)
	points.Shape = draw.CircleGlyph{}
	points.Color = colorData
	points.Radius = vg.Points(2)

	p.Add(line, points)
	p.Legend.Add(label, line, points)
	return nil
}

func addCurve(p *plot.Plot, pts plotter.XYs, label string, c color.Color) error {
	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("plotting %s: %w", label, err)
	}
	line.Color = c
	line.Dashes = dashed
	line.Width = vg.Points(1)

	p.Add(line)
	p.Legend.Add(label, line)
	return nil
}

// positive drops results that cannot be drawn on a log axis.
func positive(ds Dataset) Dataset {
	var out Dataset
	for _, r := range ds {
		if r.Size > 0 && r.Elapsed > 0 {
			out = append(out, r)
		}
	}
	return out
}
