package growthbench

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// Config controls benchmark execution.
type Config struct {
	WorkDir       string // Where transient inputs are generated (default: current directory)
	ProgressEvery int    // Report progress every N processed sizes (default: 5)

	// OnProgress is called every ProgressEvery processed sizes, failed sizes included.
	OnProgress func(processed, total int)

	Logger  *slog.Logger // Default: slog.Default()
	Metrics *Metrics     // Optional
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		WorkDir:       ".",
		ProgressEvery: 5,
	}
}

// Run is the outcome of driving a subject over a schedule.
type Run struct {
	Results  Dataset // Successful measurements, in schedule order
	Skipped  []int   // Sizes whose generation or processing failed
	Total    int     // Sizes in the schedule
	Started  time.Time
	Finished time.Time
}

// Processed returns the number of sizes attempted so far.
func (r *Run) Processed() int {
	return len(r.Results) + len(r.Skipped)
}

// Driver runs a Subject over a size schedule, one invocation at a time.
//
// CRITICAL: Execution is strictly sequential. Overlapping invocations would
// contend for the same CPU and memory and corrupt wall-clock measurements.
type Driver struct {
	subject Subject
	cfg     Config
	logger  *slog.Logger
}

// NewDriver creates a driver for subject.
func NewDriver(subject Subject, cfg Config) *Driver {
	if cfg.WorkDir == "" {
		cfg.WorkDir = "."
	}
	if cfg.ProgressEvery <= 0 {
		cfg.ProgressEvery = 5
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Driver{subject: subject, cfg: cfg, logger: logger}
}

// Run measures every size in order.
//
// A failed invocation skips that size and the run continues. The only error
// returned is context cancellation, together with the partial run.
func (d *Driver) Run(ctx context.Context, sizes []int) (*Run, error) {
	run := &Run{Total: len(sizes), Started: time.Now()}
	defer func() { run.Finished = time.Now() }()

	d.logger.Info("running benchmarks", "sizes", len(sizes))

	for _, size := range sizes {
		if err := ctx.Err(); err != nil {
			return run, fmt.Errorf("benchmark interrupted after %d of %d sizes: %w",
				run.Processed(), run.Total, err)
		}

		result, err := d.measure(ctx, size)
		if err != nil {
			d.logger.Error("skipping size", "size", size, "err", err)
			d.cfg.Metrics.skipped()
			run.Skipped = append(run.Skipped, size)
		} else {
			d.logger.Info("measured", "size", result.Size, "elapsed", fmt.Sprintf("%.6f", result.Elapsed))
			run.Results = append(run.Results, result)
		}

		if processed := run.Processed(); processed%d.cfg.ProgressEvery == 0 {
			d.reportProgress(processed, run.Total)
		}
	}

	if len(sizes) > 0 {
		d.logger.Info("benchmark complete",
			"measured", len(run.Results),
			"skipped", len(run.Skipped),
			"from", sizes[0],
			"to", sizes[len(sizes)-1])
	}

	return run, nil
}

// measure runs one size: generate, time the processing, clean up.
func (d *Driver) measure(ctx context.Context, size int) (Result, error) {
	path := d.inputPath(size)
	defer d.cleanup(path)

	if err := d.subject.GenerateInput(ctx, size, path); err != nil {
		d.cfg.Metrics.invocation(ModeGenerate, 0, err)
		return Result{}, subjectError(ModeGenerate, size, err)
	}
	d.cfg.Metrics.invocation(ModeGenerate, 0, nil)

	elapsed, err := d.subject.Process(ctx, path)
	if err != nil {
		d.cfg.Metrics.invocation(ModeProcess, 0, err)
		return Result{}, subjectError(ModeProcess, size, err)
	}
	d.cfg.Metrics.invocation(ModeProcess, elapsed, nil)

	return Result{Size: size, Elapsed: elapsed.Seconds()}, nil
}

// inputPath derives the transient input file for size.
func (d *Driver) inputPath(size int) string {
	return filepath.Join(d.cfg.WorkDir, fmt.Sprintf("test_%d.txt", size))
}

// cleanup removes the transient input whether or not the size succeeded.
func (d *Driver) cleanup(path string) {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		d.logger.Warn("removing transient input", "path", path, "err", err)
	}
}

func (d *Driver) reportProgress(processed, total int) {
	percent := 100 * float64(processed) / float64(total)
	d.logger.Info("progress",
		"processed", processed,
		"total", total,
		"percent", fmt.Sprintf("%.1f", percent))
	if d.cfg.OnProgress != nil {
		d.cfg.OnProgress(processed, total)
	}
}

// subjectError normalizes err into a *SubjectError carrying mode and size.
func subjectError(mode string, size int, err error) error {
	var se *SubjectError
	if errors.As(err, &se) {
		if se.Mode == "" {
			se.Mode = mode
		}
		if se.Size == 0 {
			se.Size = size
		}
		return se
	}
	return &SubjectError{Mode: mode, Size: size, Err: err}
}
