package growthbench

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderDashboard(t *testing.T) {
	a, err := Analyze(synthetic(1e-9, 2))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, RenderDashboard(&buf, a))

	html := buf.String()
	assert.Contains(t, html, "growthbench results")
	for _, title := range []string{
		"Execution Time (linear scale)",
		"Execution Time (log-log scale)",
		"Complexity Analysis",
		"Quadratic Trend",
		"O(n) Linear",
	} {
		assert.Contains(t, html, title)
	}
}

func TestPairs(t *testing.T) {
	data := pairs([]float64{1, 10}, []float64{0.5, 5})
	require.Len(t, data, 2)
	assert.Equal(t, []float64{10, 5}, data[1].Value)
}
