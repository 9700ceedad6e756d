package growthbench

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// synthetic returns time = c·n^k over the default schedule.
func synthetic(c, k float64) Dataset {
	var ds Dataset
	for _, n := range Schedule() {
		ds = append(ds, Result{Size: n, Elapsed: c * math.Pow(float64(n), k)})
	}
	return ds
}

func TestFitPolynomial_RecoversQuadratic(t *testing.T) {
	ds := Dataset{}
	for _, n := range Schedule() {
		x := float64(n)
		ds = append(ds, Result{Size: n, Elapsed: 0.05 + 2e-6*x + 3e-11*x*x})
	}

	p, err := FitPolynomial(ds.Sizes(), ds.Times(), 2)
	require.NoError(t, err)
	require.Equal(t, 2, p.Degree())

	assert.InEpsilon(t, 0.05, p.Coefficients[0], 1e-6)
	assert.InEpsilon(t, 2e-6, p.Coefficients[1], 1e-6)
	assert.InEpsilon(t, 3e-11, p.Coefficients[2], 1e-6)

	assert.InEpsilon(t, 0.05+2e-6*1e6+3e-11*1e12, p.Eval(1e6), 1e-9)
}

func TestFitPolynomial_Line(t *testing.T) {
	p, err := FitPolynomial([]float64{1, 2, 3, 4}, []float64{3, 5, 7, 9}, 1)
	require.NoError(t, err)
	assert.InDelta(t, 1, p.Coefficients[0], 1e-12)
	assert.InDelta(t, 2, p.Coefficients[1], 1e-12)
}

// TestFitPolynomial_TwoPoints verifies a quadratic through 2 points still interpolates them.
func TestFitPolynomial_TwoPoints(t *testing.T) {
	p, err := FitPolynomial([]float64{10, 20}, []float64{1, 3}, 2)
	require.NoError(t, err)
	assert.InDelta(t, 1, p.Eval(10), 1e-9)
	assert.InDelta(t, 3, p.Eval(20), 1e-9)
}

func TestFitPolynomial_InsufficientData(t *testing.T) {
	tests := []struct {
		name   string
		xs, ys []float64
	}{
		{"empty", nil, nil},
		{"single point", []float64{100}, []float64{0.5}},
		{"identical sizes", []float64{100, 100, 100}, []float64{0.5, 0.6, 0.7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FitPolynomial(tt.xs, tt.ys, 2)
			assert.ErrorIs(t, err, ErrInsufficientData)
		})
	}
}

func TestFitPolynomial_Invalid(t *testing.T) {
	_, err := FitPolynomial([]float64{1, 2}, []float64{1}, 1)
	assert.Error(t, err)

	_, err = FitPolynomial([]float64{1, math.NaN()}, []float64{1, 2}, 1)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInsufficientData)
}

func TestPolynomial_String(t *testing.T) {
	p := Polynomial{Coefficients: []float64{1, 2, 3}}
	assert.Equal(t, "1 + 2·n + 3·n^2", p.String())
}

// TestEstimateExponent verifies known power laws are recovered from the large-input regime.
func TestEstimateExponent(t *testing.T) {
	for _, k := range []float64{1, 2, 3} {
		est, err := EstimateExponent(synthetic(1e-9, k))
		require.NoError(t, err)

		assert.InDelta(t, k, est.Exponent, 0.05)
		assert.InDelta(t, math.Log(1e-9), est.Intercept, 1e-6)
		assert.InDelta(t, 1.0, est.RSquared, 1e-9)
		assert.Equal(t, 6, est.Points) // 20000 .. 640000
	}
}

// TestEstimateExponent_IgnoresSmallSizes verifies startup overhead at small sizes
// does not bend the estimate.
func TestEstimateExponent_IgnoresSmallSizes(t *testing.T) {
	ds := synthetic(1e-11, 2)
	for i := range ds {
		if ds[i].Size <= 10_000 {
			ds[i].Elapsed = 0.2 // process startup dominates
		}
	}

	est, err := EstimateExponent(ds)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, est.Exponent, 0.05)
	assert.Equal(t, "O(n^2.00)", est.String())
}

func TestEstimateExponent_InsufficientData(t *testing.T) {
	ds := synthetic(1e-9, 2)

	// Drop one large point: 5 remain above 10000.
	var trimmed Dataset
	for _, r := range ds {
		if r.Size != 640000 {
			trimmed = append(trimmed, r)
		}
	}

	_, err := EstimateExponent(trimmed)
	assert.ErrorIs(t, err, ErrInsufficientData)

	_, err = EstimateExponent(nil)
	assert.ErrorIs(t, err, ErrInsufficientData)
}

func TestEstimateExponent_ExcludesThreshold(t *testing.T) {
	// Exactly 10000 does not count toward the large-input regime.
	ds := Dataset{{Size: 10000, Elapsed: 1}}
	for _, n := range []int{20000, 40000, 80000, 160000, 320000} {
		ds = append(ds, Result{Size: n, Elapsed: float64(n)})
	}

	_, err := EstimateExponent(ds)
	assert.ErrorIs(t, err, ErrInsufficientData)
}

func TestEstimateExponent_ZeroTime(t *testing.T) {
	ds := synthetic(1e-9, 2)
	ds[len(ds)-1].Elapsed = 0

	_, err := EstimateExponent(ds)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInsufficientData)
}

func TestExponentEstimate_Predict(t *testing.T) {
	est := ExponentEstimate{Exponent: 2, Intercept: math.Log(1e-9)}
	assert.InEpsilon(t, 1e-9*1e8, est.Predict(10000), 1e-12)
}
