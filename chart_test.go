package growthbench

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCharts(t *testing.T) {
	a, err := Analyze(synthetic(1e-9, 2))
	require.NoError(t, err)

	dir := filepath.Join(t.TempDir(), "charts")
	written, err := RenderCharts(a, dir, nil)
	require.NoError(t, err)
	require.Len(t, written, 9)

	for _, name := range []string{ChartLinear, ChartLogLog, ChartComplexity} {
		for _, format := range DefaultFormats {
			path := filepath.Join(dir, name+"."+format)
			assert.Contains(t, written, path)

			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.Positive(t, info.Size(), path)
		}
	}
}

func TestRenderCharts_SingleFormat(t *testing.T) {
	a, err := Analyze(Dataset{{Size: 10, Elapsed: 0.1}, {Size: 20, Elapsed: 0.3}})
	require.NoError(t, err)

	written, err := RenderCharts(a, t.TempDir(), []string{"svg"})
	require.NoError(t, err)
	assert.Len(t, written, 3)
}

// TestLogCharts_NoPositivePoints verifies the log charts refuse an all-zero dataset
// while the linear chart still renders.
func TestLogCharts_NoPositivePoints(t *testing.T) {
	a, err := Analyze(scheduleDataset())
	require.NoError(t, err)

	_, err = LinearChart(a)
	assert.NoError(t, err)

	_, err = LogLogChart(a)
	assert.ErrorIs(t, err, errNoPositivePoints)

	_, err = ComplexityChart(a)
	assert.ErrorIs(t, err, errNoPositivePoints)
}

func TestLogLogChart_DropsZeroTimes(t *testing.T) {
	ds := synthetic(1e-9, 1)
	ds[0].Elapsed = 0

	a, err := Analyze(ds)
	require.NoError(t, err)

	p, err := LogLogChart(a)
	require.NoError(t, err)
	assert.Equal(t, "Execution Time (log-log scale)", p.Title.Text)
}
