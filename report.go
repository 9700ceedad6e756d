package growthbench

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/dustin/go-humanize"
)

// reportIndices are the positions selected for the report table: the first
// result, then every 5th.
var reportIndices = []int{0, 4, 9, 14, 19, 24, 29}

// ReportRow is a formatted table row.
type ReportRow struct {
	Index  int    // Position in the dataset
	Result Result // The underlying measurement
	Size   string // Thousands-separated, e.g. "10,000"
	Time   string // Seconds with 4 decimals, e.g. "0.0123"
}

// ReportTable is the fixed-layout subset of results included in reports.
type ReportTable struct {
	Rows []ReportRow
}

// SelectReportRows picks the results at indices 0, 4, 9, 14, 19, 24 and 29,
// skipping indices past the end of ds.
func SelectReportRows(ds Dataset) ReportTable {
	var table ReportTable
	for _, i := range reportIndices {
		if i >= len(ds) {
			break
		}
		table.Rows = append(table.Rows, newReportRow(i, ds[i]))
	}
	return table
}

func newReportRow(i int, r Result) ReportRow {
	return ReportRow{
		Index:  i,
		Result: r,
		Size:   humanize.Comma(int64(r.Size)),
		Time:   fmt.Sprintf("%.4f", r.Elapsed),
	}
}

// Summary holds descriptive statistics of a dataset.
type Summary struct {
	Points  int
	MinSize int
	MaxSize int
	MinTime float64
	MaxTime float64
	Ratio   float64 // MaxTime / MinTime, +Inf when MinTime is zero
}

// Summarize computes min/max size and time over ds.
func Summarize(ds Dataset) (Summary, error) {
	if len(ds) == 0 {
		return Summary{}, fmt.Errorf("%w: summary of an empty dataset", ErrInsufficientData)
	}

	s := Summary{
		Points:  len(ds),
		MinSize: ds[0].Size,
		MaxSize: ds[0].Size,
		MinTime: ds[0].Elapsed,
		MaxTime: ds[0].Elapsed,
	}
	for _, r := range ds[1:] {
		s.MinSize = min(s.MinSize, r.Size)
		s.MaxSize = max(s.MaxSize, r.Size)
		s.MinTime = math.Min(s.MinTime, r.Elapsed)
		s.MaxTime = math.Max(s.MaxTime, r.Elapsed)
	}

	switch {
	case s.MinTime > 0:
		s.Ratio = s.MaxTime / s.MinTime
	case s.MaxTime > 0:
		s.Ratio = math.Inf(1)
	default:
		s.Ratio = 1
	}
	return s, nil
}

// WriteLaTeXTable writes the report table as a LaTeX table environment.
func WriteLaTeXTable(w io.Writer, table ReportTable) error {
	var b strings.Builder
	b.WriteString(`\begin{table}[htbp]
\centering
\caption{Performance Benchmark Results}
\label{tab:benchmark_results}
\begin{tabular}{|r|r|}
\hline
\textbf{Input Size} & \textbf{Execution Time (s)} \\
\hline
`)
	for _, row := range table.Rows {
		fmt.Fprintf(&b, "%s & %s \\\\\n", row.Size, row.Time)
	}
	b.WriteString(`\hline
\end{tabular}
\end{table}
`)

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteSummary writes the summary statistics and the complexity estimate as text.
func WriteSummary(w io.Writer, a *Analysis) error {
	var b strings.Builder
	s := a.Summary

	b.WriteString("Benchmark Summary:\n")
	fmt.Fprintf(&b, "Smallest input: %s characters\n", humanize.Comma(int64(s.MinSize)))
	fmt.Fprintf(&b, "Largest input: %s characters\n", humanize.Comma(int64(s.MaxSize)))
	fmt.Fprintf(&b, "Fastest execution: %.6f seconds\n", s.MinTime)
	fmt.Fprintf(&b, "Slowest execution: %.6f seconds\n", s.MaxTime)
	fmt.Fprintf(&b, "Performance ratio (max/min): %.1fx\n", s.Ratio)

	if a.Exponent != nil {
		fmt.Fprintf(&b, "Estimated time complexity: %s (R² = %.4f over %d points)\n",
			a.Exponent, a.Exponent.RSquared, a.Exponent.Points)
	} else {
		b.WriteString("Estimated time complexity: insufficient data\n")
	}
	for _, msg := range a.Skipped {
		fmt.Fprintf(&b, "Skipped: %s\n", msg)
	}

	_, err := io.WriteString(w, b.String())
	return err
}
