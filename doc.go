// Package growthbench measures how a program's running time grows with input size.
//
// # Overview
//
// growthbench drives an external subject program over a schedule of input
// sizes spanning six orders of magnitude, records one wall-clock timing per
// size, and characterizes the empirical complexity of the program:
//
//	time ≈ c · n^k
//
// The exponent k is estimated by linear regression over log-transformed
// (size, time) pairs in the large-input regime.
//
// # Architecture
//
// The package components:
//
//   - schedule   - Size sampling (linear, then geometric steps)
//   - subject    - The program under test (exec or in-memory stub)
//   - driver     - Sequential measurement loop with per-size fault isolation
//   - dataset    - Time series and its CSV artifact
//   - fit        - Polynomial least squares and power-law exponent
//   - reference  - Anchored O(n), O(n²), O(n³) comparison curves
//   - report     - Report table and summary statistics
//   - chart      - Linear, log-log and complexity charts (svg, pdf, png)
//   - dashboard  - Interactive HTML page of the same charts
//   - archive/   - SQLite archive of runs
//
// # Quick Start
//
// Measure a subject program:
//
//	subject, err := growthbench.NewCommandSubject("./sanitizer")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	run, err := growthbench.NewDriver(subject, growthbench.DefaultConfig()).
//	    Run(ctx, growthbench.Schedule())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := growthbench.SaveDataset("benchmark_results.csv", run.Results); err != nil {
//	    log.Fatal(err)
//	}
//
// Analyse it:
//
//	ds, err := growthbench.LoadDataset("benchmark_results.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	a, err := growthbench.Analyze(ds)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if a.Exponent != nil {
//	    fmt.Printf("Estimated time complexity: %s\n", a.Exponent) // O(n^2.01)
//	}
//
// # The Subject Program
//
// The subject has exactly two invocation modes:
//
//	subject --input-gen --size=<N> --file=<path>   # write an input of size N
//	subject <path>                                 # process it
//
// Success is a zero exit status. Only the second invocation is timed, and the
// timing includes process startup: it measures end-to-end cost, not pure
// algorithmic time.
//
// # Size Schedule
//
//	1, 11, 21, ..., 91                 linear, constant factors dominate
//	100, 150, 225, ..., 8614           ×1.5, truncated
//	10000, 20000, ..., 640000          ×2
//
// Geometric steps give uniform coverage in log-space, so a range of 10⁶ costs
// only 29 runs.
//
// # Growth Models
//
// Three models, kept strictly apart:
//
//   - Trend: degree-2 least squares over all points. Visual overlay only.
//   - Reference curves: c·n^p for p ∈ {1,2,3}, with c chosen so each curve
//     passes through the last point. Anchored, not fitted.
//   - Exponent: slope of log(time) against log(size) for size > 10000.
//     Requires at least 6 points; otherwise ErrInsufficientData.
//
// Do not read the exponent off the reference curves, and do not read it off
// the trend: at small n the fixed cost of starting a process dominates, which
// is why only the large-input regime is used.
//
// # Failure Handling
//
// A failed invocation skips its size: no row is recorded and the run
// continues. The transient input file is removed whether the size succeeded
// or not. Fits with too little data fail with ErrInsufficientData instead of
// producing a number.
//
// # Concurrency
//
// None, deliberately. One invocation runs at a time; concurrent runs would
// contend for the same machine and corrupt the timings.
//
// # Testing
//
// Use assertions to pin the growth order of your own code:
//
//	func TestSanitizerIsLinear(t *testing.T) {
//	    run, err := growthbench.NewDriver(subject, growthbench.DefaultConfig()).
//	        Run(context.Background(), growthbench.Schedule())
//	    if err != nil {
//	        t.Fatal(err)
//	    }
//
//	    growthbench.AssertMaxExponent(t, run.Results, 1.0, growthbench.DefaultAssertionConfig())
//	}
package growthbench
