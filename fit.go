package growthbench

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// ErrInsufficientData is returned when a fit has too few points to produce a
// meaningful result. Callers treat it as a skipped analysis step.
var ErrInsufficientData = errors.New("insufficient data")

// Polynomial is a least-squares polynomial in ascending order:
//
//	p(x) = c[0] + c[1]·x + c[2]·x² + ...
type Polynomial struct {
	Coefficients []float64
}

// Degree returns the polynomial degree.
func (p Polynomial) Degree() int {
	return len(p.Coefficients) - 1
}

// Eval evaluates p at x using Horner's method.
func (p Polynomial) Eval(x float64) float64 {
	var y float64
	for i := len(p.Coefficients) - 1; i >= 0; i-- {
		y = y*x + p.Coefficients[i]
	}
	return y
}

func (p Polynomial) String() string {
	var terms []string
	for i, c := range p.Coefficients {
		switch i {
		case 0:
			terms = append(terms, fmt.Sprintf("%.4g", c))
		case 1:
			terms = append(terms, fmt.Sprintf("%.4g·n", c))
		default:
			terms = append(terms, fmt.Sprintf("%.4g·n^%d", c, i))
		}
	}
	return strings.Join(terms, " + ")
}

// FitPolynomial fits a polynomial of the given degree to (xs, ys) by least squares.
//
// The fit is solved by QR decomposition on x scaled into [-1, 1] and the
// coefficients are mapped back afterwards. Without scaling, the x² column at
// n = 10⁶ is 10¹² and the design matrix is too ill-conditioned to solve.
//
// Needs at least 2 points with at least 2 distinct x values. With fewer
// points than coefficients the minimum-norm solution is returned.
func FitPolynomial(xs, ys []float64, degree int) (Polynomial, error) {
	if len(xs) != len(ys) {
		return Polynomial{}, fmt.Errorf("mismatched lengths: %d x values, %d y values", len(xs), len(ys))
	}
	if degree < 0 {
		return Polynomial{}, fmt.Errorf("negative degree %d", degree)
	}
	if len(xs) < 2 {
		return Polynomial{}, fmt.Errorf("%w: polynomial fit needs at least 2 points, got %d",
			ErrInsufficientData, len(xs))
	}

	var scale float64
	distinct := false
	for i, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(ys[i]) || math.IsInf(ys[i], 0) {
			return Polynomial{}, fmt.Errorf("non-finite point (%v, %v)", x, ys[i])
		}
		scale = math.Max(scale, math.Abs(x))
		if x != xs[0] {
			distinct = true
		}
	}
	if !distinct {
		return Polynomial{}, fmt.Errorf("%w: polynomial fit needs at least 2 distinct x values", ErrInsufficientData)
	}

	cols := degree + 1
	a := mat.NewDense(len(xs), cols, nil)
	for i, x := range xs {
		t := x / scale
		v := 1.0
		for j := 0; j < cols; j++ {
			a.Set(i, j, v)
			v *= t
		}
	}
	b := mat.NewVecDense(len(ys), append([]float64(nil), ys...))

	var c mat.VecDense
	if err := c.SolveVec(a, b); err != nil {
		return Polynomial{}, fmt.Errorf("solving least squares: %w", err)
	}

	coeffs := make([]float64, cols)
	div := 1.0
	for j := range coeffs {
		coeffs[j] = c.AtVec(j) / div
		div *= scale
	}

	return Polynomial{Coefficients: coeffs}, nil
}

// ExponentConfig selects the large-input regime used for exponent estimation.
type ExponentConfig struct {
	MinSize   int // Only sizes strictly above this are used (default: 10000)
	MinPoints int // Minimum qualifying points (default: 6)
}

// DefaultExponentConfig returns the default regime: size > 10000, at least 6 points.
func DefaultExponentConfig() ExponentConfig {
	return ExponentConfig{MinSize: 10_000, MinPoints: 6}
}

// ExponentEstimate is the empirical power law fitted over the large-input regime:
//
//	time ≈ e^Intercept · n^Exponent
type ExponentEstimate struct {
	Exponent  float64 // Slope of log(time) against log(size)
	Intercept float64 // log of the constant factor
	RSquared  float64 // R² of the log-log fit (1.0 = perfect)
	Points    int     // Results used
}

// String renders the estimate as a growth order, e.g. "O(n^2.00)".
func (e ExponentEstimate) String() string {
	return fmt.Sprintf("O(n^%.2f)", e.Exponent)
}

// Predict returns the modeled time at size n.
func (e ExponentEstimate) Predict(n int) float64 {
	return math.Exp(e.Intercept) * math.Pow(float64(n), e.Exponent)
}

// EstimateExponent estimates the growth order with the default regime.
func EstimateExponent(ds Dataset) (ExponentEstimate, error) {
	return EstimateExponentWith(ds, DefaultExponentConfig())
}

// EstimateExponentWith fits a line to (log size, log time) over results with
// size > cfg.MinSize. The slope is the empirical exponent.
//
// Only the large-input regime is used: at small sizes process startup and
// constant factors dominate and flatten the slope.
//
// Returns ErrInsufficientData when fewer than cfg.MinPoints results qualify.
func EstimateExponentWith(ds Dataset, cfg ExponentConfig) (ExponentEstimate, error) {
	large := ds.Above(cfg.MinSize)
	if len(large) < cfg.MinPoints {
		return ExponentEstimate{}, fmt.Errorf("%w: exponent estimation needs %d results above size %d, got %d",
			ErrInsufficientData, cfg.MinPoints, cfg.MinSize, len(large))
	}

	logSize := make([]float64, len(large))
	logTime := make([]float64, len(large))
	for i, r := range large {
		if r.Elapsed <= 0 {
			return ExponentEstimate{}, fmt.Errorf("cannot take log of time %v at size %d", r.Elapsed, r.Size)
		}
		logSize[i] = math.Log(float64(r.Size))
		logTime[i] = math.Log(r.Elapsed)
	}

	line, err := FitPolynomial(logSize, logTime, 1)
	if err != nil {
		return ExponentEstimate{}, fmt.Errorf("log-log fit: %w", err)
	}

	return ExponentEstimate{
		Exponent:  line.Coefficients[1],
		Intercept: line.Coefficients[0],
		RSquared:  rSquared(logSize, logTime, line),
		Points:    len(large),
	}, nil
}

// rSquared calculates the coefficient of determination of p over (xs, ys).
func rSquared(xs, ys []float64, p Polynomial) float64 {
	var mean float64
	for _, y := range ys {
		mean += y
	}
	mean /= float64(len(ys))

	var ssRes, ssTot float64
	for i, x := range xs {
		d := ys[i] - p.Eval(x)
		ssRes += d * d
		ssTot += (ys[i] - mean) * (ys[i] - mean)
	}
	if ssTot == 0 {
		return 1
	}
	return 1 - ssRes/ssTot
}
