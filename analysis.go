package growthbench

import (
	"errors"
	"fmt"
)

// Analysis is everything derived from a dataset. It is recomputed on every
// analysis run and never persisted.
type Analysis struct {
	Dataset    Dataset
	Summary    Summary
	Trend      *Polynomial       // Quadratic overlay for the linear chart, nil if skipped
	References []ReferenceCurve  // Anchored curves for the complexity chart
	Exponent   *ExponentEstimate // Empirical growth order, nil if skipped
	Table      ReportTable

	// Skipped lists analysis steps that had too little data, with the reason.
	Skipped []string
}

// AnalysisConfig controls the fitted models.
type AnalysisConfig struct {
	TrendDegree int // Degree of the trend overlay (default: 2)
	Exponent    ExponentConfig
}

// DefaultAnalysisConfig returns the default analysis: quadratic trend,
// exponent over sizes above 10000.
func DefaultAnalysisConfig() AnalysisConfig {
	return AnalysisConfig{
		TrendDegree: 2,
		Exponent:    DefaultExponentConfig(),
	}
}

// Analyze runs every analysis step with the default configuration.
func Analyze(ds Dataset) (*Analysis, error) {
	return AnalyzeWith(ds, DefaultAnalysisConfig())
}

// AnalyzeWith runs every analysis step on ds.
//
// A trend fit with too little data and any failed exponent estimate are
// recorded in Analysis.Skipped instead of aborting. An empty dataset is an
// error.
func AnalyzeWith(ds Dataset, cfg AnalysisConfig) (*Analysis, error) {
	summary, err := Summarize(ds)
	if err != nil {
		return nil, err
	}

	a := &Analysis{
		Dataset: ds,
		Summary: summary,
		Table:   SelectReportRows(ds),
	}

	trend, err := FitPolynomial(ds.Sizes(), ds.Times(), cfg.TrendDegree)
	switch {
	case errors.Is(err, ErrInsufficientData):
		a.Skipped = append(a.Skipped, fmt.Sprintf("trend overlay: %v", err))
	case err != nil:
		return nil, fmt.Errorf("fitting trend: %w", err)
	default:
		a.Trend = &trend
	}

	a.References, err = ReferenceCurves(ds)
	if err != nil {
		return nil, fmt.Errorf("reference curves: %w", err)
	}

	// Zero timings make the log-log fit undefined; that skips the estimate too.
	exp, err := EstimateExponentWith(ds, cfg.Exponent)
	if err != nil {
		a.Skipped = append(a.Skipped, fmt.Sprintf("complexity estimate: %v", err))
	} else {
		a.Exponent = &exp
	}

	return a, nil
}
