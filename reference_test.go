package growthbench

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestReferenceCurves verifies every curve passes through the last point.
func TestReferenceCurves(t *testing.T) {
	ds := Dataset{{Size: 10, Elapsed: 0.5}, {Size: 100, Elapsed: 2}, {Size: 1000, Elapsed: 8}}

	curves, err := ReferenceCurves(ds)
	require.NoError(t, err)
	require.Len(t, curves, 3)

	for i, c := range curves {
		assert.Equal(t, i+1, c.Power)
		assert.Equal(t, ds.Sizes(), c.Sizes)
		assert.InEpsilon(t, 8.0, c.Values[len(c.Values)-1], 1e-12, c.Name)
		assert.InEpsilon(t, 8/math.Pow(1000, float64(c.Power)), c.Scale, 1e-12)
	}

	// Quadratic: 8 · (10/1000)² at n = 10.
	assert.InEpsilon(t, 8e-4, curves[1].Values[0], 1e-12)
	assert.Equal(t, "O(n³) Cubic", curves[2].Name)
}

func TestReferenceCurves_Empty(t *testing.T) {
	_, err := ReferenceCurves(nil)
	assert.ErrorIs(t, err, ErrInsufficientData)
}
