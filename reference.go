package growthbench

import (
	"fmt"
	"math"
)

// ReferenceCurve is a theoretical growth curve c·n^p anchored to pass through
// the last observed point. It is a visual aid for log-log comparison and is
// never fitted to the data.
type ReferenceCurve struct {
	Name   string    // e.g. "O(n) Linear"
	Power  int       // p in c·n^p
	Scale  float64   // c, so that c·last.Size^p == last.Elapsed
	Sizes  []float64 // Observed sizes
	Values []float64 // c·n^p at each size
}

// referencePowers are the curves drawn on the complexity chart.
var referencePowers = []struct {
	power int
	name  string
}{
	{1, "O(n) Linear"},
	{2, "O(n²) Quadratic"},
	{3, "O(n³) Cubic"},
}

// ReferenceCurves returns the linear, quadratic and cubic curves anchored at
// the last result of ds.
func ReferenceCurves(ds Dataset) ([]ReferenceCurve, error) {
	last, ok := ds.Last()
	if !ok {
		return nil, fmt.Errorf("%w: reference curves need at least 1 result", ErrInsufficientData)
	}

	sizes := ds.Sizes()
	curves := make([]ReferenceCurve, 0, len(referencePowers))
	for _, ref := range referencePowers {
		curves = append(curves, anchoredCurve(ref.name, ref.power, last, sizes))
	}
	return curves, nil
}

func anchoredCurve(name string, power int, anchor Result, sizes []float64) ReferenceCurve {
	p := float64(power)
	scale := anchor.Elapsed / math.Pow(float64(anchor.Size), p)

	values := make([]float64, len(sizes))
	for i, n := range sizes {
		values[i] = scale * math.Pow(n, p)
	}

	return ReferenceCurve{
		Name:   name,
		Power:  power,
		Scale:  scale,
		Sizes:  sizes,
		Values: values,
	}
}
