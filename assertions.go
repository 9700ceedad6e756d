package growthbench

import (
	"math"
	"testing"
)

// AssertionConfig contains thresholds for growth-order assertions.
type AssertionConfig struct {
	// Tolerance around the expected exponent (|got - want| ≤ Tolerance passes)
	Tolerance float64

	// Minimum R² of the log-log fit
	MinRSquared float64

	// Regime used for the estimate
	Exponent ExponentConfig
}

// DefaultAssertionConfig returns conservative thresholds.
func DefaultAssertionConfig() AssertionConfig {
	return AssertionConfig{
		Tolerance:   0.05,
		MinRSquared: 0.95,
		Exponent:    DefaultExponentConfig(),
	}
}

// AssertExponent verifies the empirical growth order of ds is want ± Tolerance.
//
// Use it from a subject program's own tests:
//
//	run, _ := growthbench.NewDriver(subject, growthbench.DefaultConfig()).Run(ctx, growthbench.Schedule())
//	growthbench.AssertExponent(t, run.Results, 1.0, growthbench.DefaultAssertionConfig())
func AssertExponent(t testing.TB, ds Dataset, want float64, cfg AssertionConfig) {
	t.Helper()

	est, err := EstimateExponentWith(ds, cfg.Exponent)
	if err != nil {
		t.Fatalf("Failed to estimate exponent: %v", err)
	}

	if math.Abs(est.Exponent-want) > cfg.Tolerance {
		t.Errorf("Growth order mismatch: %s, want O(n^%.2f) ± %.2f",
			est, want, cfg.Tolerance)
	}

	checkFit(t, est, cfg)
	t.Logf("✓ Growth order: %s (want O(n^%.2f))", est, want)
}

// AssertMaxExponent verifies the growth order of ds does not exceed limit + Tolerance.
//
// Typical use: guard against an accidental quadratic in a linear algorithm.
func AssertMaxExponent(t testing.TB, ds Dataset, limit float64, cfg AssertionConfig) {
	t.Helper()

	est, err := EstimateExponentWith(ds, cfg.Exponent)
	if err != nil {
		t.Fatalf("Failed to estimate exponent: %v", err)
	}

	if est.Exponent > limit+cfg.Tolerance {
		t.Errorf("Growth order too high: %s (max: O(n^%.2f))", est, limit)
	}

	checkFit(t, est, cfg)
	t.Logf("✓ Growth order: %s (max O(n^%.2f))", est, limit)
}

func checkFit(t testing.TB, est ExponentEstimate, cfg AssertionConfig) {
	t.Helper()

	if est.RSquared < cfg.MinRSquared {
		t.Errorf("Poor log-log fit: R² = %.4f (min: %.4f)\n"+
			"Timings are not a power law in this regime. Check for measurement noise.",
			est.RSquared, cfg.MinRSquared)
	}
}

// PrintAnalysis outputs the analysis to the test log.
func PrintAnalysis(t testing.TB, a *Analysis) {
	t.Helper()

	s := a.Summary
	t.Logf("\n=== Growth Analysis ===")
	t.Logf("Points: %d, sizes %d..%d", s.Points, s.MinSize, s.MaxSize)
	t.Logf("Time:   %.6f..%.6f s (ratio %.1fx)", s.MinTime, s.MaxTime, s.Ratio)

	if a.Trend != nil {
		t.Logf("Trend:  %s", a.Trend)
	}
	if a.Exponent != nil {
		t.Logf("Growth: %s, R² = %.4f over %d points", a.Exponent, a.Exponent.RSquared, a.Exponent.Points)
	}
	for _, msg := range a.Skipped {
		t.Logf("Skipped: %s", msg)
	}

	t.Logf("\n  Size           Time (s)")
	t.Logf("  -------------  --------")
	for _, row := range a.Table.Rows {
		t.Logf("  %13s  %8s", row.Size, row.Time)
	}
}
