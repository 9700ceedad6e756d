package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/alexshd/growthbench"
	"github.com/alexshd/growthbench/archive"
)

const (
	tableFile   = "benchmark_table.tex"
	summaryFile = "benchmark_summary.txt"
	latestRun   = "latest"
)

func analyzeCmd() *cobra.Command {
	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "Fit growth models to saved timings and render charts and a report",
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return bindFlags(cmd, map[string]string{
				"INPUT":      "input",
				"ARCHIVE":    "archive",
				"RUN":        "run",
				"OUTDIR":     "outdir",
				"FORMATS":    "formats",
				"HTML":       "html",
				"MIN_SIZE":   "min-size",
				"MIN_POINTS": "min-points",
			})
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return analyze(cmd.Context())
		},
	}

	exp := growthbench.DefaultExponentConfig()
	analyzeCmd.Flags().StringP("input", "i", defaultResults, "Results CSV file")
	analyzeCmd.Flags().String("archive", "", "Analyse a run from this SQLite archive instead of the CSV file")
	analyzeCmd.Flags().String("run", latestRun, "Archived run ID, or \"latest\"")
	analyzeCmd.Flags().String("outdir", ".", "Directory for charts and report files")
	analyzeCmd.Flags().StringSlice("formats", growthbench.DefaultFormats, "Chart formats (svg, pdf, eps, png, jpg, tif)")
	analyzeCmd.Flags().String("html", "", "Also write an interactive HTML dashboard to this file")
	analyzeCmd.Flags().Int("min-size", exp.MinSize, "Exponent estimation uses sizes strictly above this")
	analyzeCmd.Flags().Int("min-points", exp.MinPoints, "Minimum points required for exponent estimation")

	return analyzeCmd
}

func analyze(ctx context.Context) error {
	ds, err := loadDataset(ctx)
	if err != nil {
		return err
	}
	slog.Info("loaded data points", "points", len(ds))

	cfg := growthbench.DefaultAnalysisConfig()
	cfg.Exponent = growthbench.ExponentConfig{MinSize: MinSize(), MinPoints: MinPoints()}

	a, err := growthbench.AnalyzeWith(ds, cfg)
	if err != nil {
		return fmt.Errorf("analysing results: %w", err)
	}
	for _, msg := range a.Skipped {
		slog.Warn("analysis step skipped", "reason", msg)
	}

	outDir := OutDir()
	slog.Info("generating charts", "dir", outDir, "formats", Formats())
	written, err := growthbench.RenderCharts(a, outDir, Formats())
	if err != nil {
		return err
	}

	tablePath := filepath.Join(outDir, tableFile)
	if err := writeFile(tablePath, func(f *os.File) error { return growthbench.WriteLaTeXTable(f, a.Table) }); err != nil {
		return err
	}
	summaryPath := filepath.Join(outDir, summaryFile)
	if err := writeFile(summaryPath, func(f *os.File) error { return growthbench.WriteSummary(f, a) }); err != nil {
		return err
	}
	written = append(written, tablePath, summaryPath)

	if path := HTMLFile(); path != "" {
		if err := writeFile(path, func(f *os.File) error { return growthbench.RenderDashboard(f, a) }); err != nil {
			return err
		}
		written = append(written, path)
	}

	if err := printReport(a); err != nil {
		return err
	}

	items := make([]pterm.BulletListItem, len(written))
	for i, path := range written {
		items[i] = pterm.BulletListItem{Level: 0, Text: path}
	}
	pterm.DefaultSection.Println("Generated files")
	return pterm.DefaultBulletList.WithItems(items).Render()
}

func loadDataset(ctx context.Context) (growthbench.Dataset, error) {
	path := Archive()
	if path == "" {
		return growthbench.LoadDataset(Input())
	}

	store, err := archive.Open(path)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	id := RunID()
	if id == latestRun {
		if id, err = store.LatestRun(ctx); err != nil {
			return nil, err
		}
	}

	info, ds, err := store.LoadRun(ctx, id)
	if err != nil {
		return nil, err
	}
	slog.Info("loaded archived run", "run", info.ID, "subject", info.Subject, "started", info.StartedAt)
	return ds, nil
}

// writeFile creates path and runs write on it, reporting close errors.
func writeFile(path string, write func(*os.File) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()

	if err := write(f); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func printReport(a *growthbench.Analysis) error {
	data := pterm.TableData{{"Input Size", "Execution Time (s)"}}
	for _, row := range a.Table.Rows {
		data = append(data, []string{row.Size, row.Time})
	}

	pterm.DefaultSection.Println("Benchmark Results")
	if err := pterm.DefaultTable.WithHasHeader().WithRightAlignment().WithData(data).Render(); err != nil {
		return err
	}

	s := a.Summary
	pterm.DefaultSection.Println("Benchmark Summary")
	pterm.Printfln("Smallest input: %d characters", s.MinSize)
	pterm.Printfln("Largest input: %d characters", s.MaxSize)
	pterm.Printfln("Fastest execution: %.6f seconds", s.MinTime)
	pterm.Printfln("Slowest execution: %.6f seconds", s.MaxTime)
	pterm.Printfln("Performance ratio (max/min): %.1fx", s.Ratio)

	if a.Exponent != nil {
		pterm.Success.Printfln("Estimated time complexity: %s (R² = %.4f)", a.Exponent, a.Exponent.RSquared)
	} else {
		pterm.Warning.Println("Estimated time complexity: insufficient data")
	}
	return nil
}
