package main

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/alexshd/growthbench"
	"github.com/alexshd/growthbench/archive"
)

const (
	defaultSubject = "dune exec certified_sanitizer --"
	defaultResults = "benchmark_results.csv"

	// dryRunFactor makes the stub report c·n² seconds: about 4s at n = 640,000.
	dryRunFactor = 1e-11
)

func runCmd() *cobra.Command {
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run the subject program over the size schedule and save the timings",
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return bindFlags(cmd, map[string]string{
				"SUBJECT":      "subject",
				"WORKDIR":      "workdir",
				"OUTPUT":       "output",
				"ARCHIVE":      "archive",
				"METRICS_FILE": "metrics-file",
				"DRY_RUN":      "dry-run",
			})
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBenchmark(cmd.Context())
		},
	}

	runCmd.Flags().String("subject", defaultSubject, "Subject program command line")
	runCmd.Flags().String("workdir", ".", "Directory for transient input files")
	runCmd.Flags().StringP("output", "o", defaultResults, "Results CSV file")
	runCmd.Flags().String("archive", "", "SQLite archive to store the run in")
	runCmd.Flags().String("metrics-file", "", "Write run metrics in Prometheus text format")
	runCmd.Flags().Bool("dry-run", false, "Use a synthetic quadratic subject instead of the subject program")

	return runCmd
}

func runBenchmark(ctx context.Context) error {
	subject, label, err := newSubject()
	if err != nil {
		return err
	}

	sizes := growthbench.Schedule()
	reg := prometheus.NewRegistry()

	sp, _ := pterm.DefaultSpinner.WithText(fmt.Sprintf("Running benchmarks for %d input sizes...", len(sizes))).Start()

	cfg := growthbench.DefaultConfig()
	cfg.WorkDir = WorkDir()
	cfg.Logger = slog.Default().With("subject", label)
	cfg.Metrics = growthbench.NewMetrics(reg)
	cfg.OnProgress = func(processed, total int) {
		percent := math.Min(100*float64(processed)/float64(total), 100)
		sp.UpdateText(fmt.Sprintf("Progress: %d/%d (%.1f%%)", processed, total, percent))
	}

	run, err := growthbench.NewDriver(subject, cfg).Run(ctx, sizes)
	if err != nil {
		sp.Fail(fmt.Sprintf("Benchmark aborted: %s", err))
		return err
	}

	if err := growthbench.SaveDataset(Output(), run.Results); err != nil {
		sp.Fail(fmt.Sprintf("Failed to save results: %s", err))
		return err
	}

	if path := Archive(); path != "" {
		id, err := archiveRun(ctx, path, label, run)
		if err != nil {
			sp.Fail(fmt.Sprintf("Failed to archive run: %s", err))
			return err
		}
		slog.Info("run archived", "archive", path, "run", id)
	}

	if path := MetricsFile(); path != "" {
		if err := growthbench.WriteMetricsFile(path, reg); err != nil {
			sp.Fail(fmt.Sprintf("Failed to write metrics: %s", err))
			return err
		}
	}

	sp.Success(fmt.Sprintf("Benchmark complete! Results saved to %s (%d of %d sizes measured, %d to %d characters)",
		Output(), len(run.Results), run.Total, sizes[0], sizes[len(sizes)-1]))
	return nil
}

func newSubject() (growthbench.Subject, string, error) {
	if DryRun() {
		return &growthbench.StubSubject{Latency: growthbench.QuadraticLatency(dryRunFactor)}, "dry-run", nil
	}

	subject, err := growthbench.NewCommandSubject(Subject())
	if err != nil {
		return nil, "", err
	}
	return subject, Subject(), nil
}

func archiveRun(ctx context.Context, path, label string, run *growthbench.Run) (string, error) {
	store, err := archive.Open(path)
	if err != nil {
		return "", err
	}
	defer store.Close()

	return store.SaveRun(ctx, label, run)
}
