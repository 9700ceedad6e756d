package growthbench

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sequentialDataset(n int) Dataset {
	ds := make(Dataset, n)
	for i := range ds {
		ds[i] = Result{Size: (i + 1) * 1000, Elapsed: float64(i+1) * 0.01}
	}
	return ds
}

// TestSelectReportRows_Thirty verifies the fixed selection on exactly 30 results.
func TestSelectReportRows_Thirty(t *testing.T) {
	table := SelectReportRows(sequentialDataset(30))
	require.Len(t, table.Rows, 7)

	var indices []int
	for _, row := range table.Rows {
		indices = append(indices, row.Index)
	}
	assert.Equal(t, []int{0, 4, 9, 14, 19, 24, 29}, indices)

	assert.Equal(t, "1,000", table.Rows[0].Size)
	assert.Equal(t, "0.0100", table.Rows[0].Time)
	assert.Equal(t, "30,000", table.Rows[6].Size)
	assert.Equal(t, "0.3000", table.Rows[6].Time)
}

func TestSelectReportRows_Clipped(t *testing.T) {
	assert.Len(t, SelectReportRows(scheduleDataset()).Rows, 6)
	assert.Len(t, SelectReportRows(sequentialDataset(3)).Rows, 1)
	assert.Empty(t, SelectReportRows(nil).Rows)
}

// scheduleDataset returns one zero-time result per default schedule entry (29).
func scheduleDataset() Dataset {
	var ds Dataset
	for _, n := range Schedule() {
		ds = append(ds, Result{Size: n})
	}
	return ds
}

func TestReportRow_LargeSize(t *testing.T) {
	row := newReportRow(0, Result{Size: 1_000_000, Elapsed: 12.345678})
	assert.Equal(t, "1,000,000", row.Size)
	assert.Equal(t, "12.3457", row.Time)
}

func TestSummarize(t *testing.T) {
	ds := Dataset{
		{Size: 100, Elapsed: 0.5},
		{Size: 1, Elapsed: 0.25},
		{Size: 640000, Elapsed: 10},
	}

	s, err := Summarize(ds)
	require.NoError(t, err)
	assert.Equal(t, Summary{Points: 3, MinSize: 1, MaxSize: 640000, MinTime: 0.25, MaxTime: 10, Ratio: 40}, s)
}

func TestSummarize_ZeroTime(t *testing.T) {
	s, err := Summarize(Dataset{{Size: 1, Elapsed: 0}, {Size: 2, Elapsed: 1}})
	require.NoError(t, err)
	assert.True(t, math.IsInf(s.Ratio, 1))

	s, err = Summarize(Dataset{{Size: 1}, {Size: 2}})
	require.NoError(t, err)
	assert.Equal(t, 1.0, s.Ratio)
}

func TestSummarize_Empty(t *testing.T) {
	_, err := Summarize(nil)
	assert.ErrorIs(t, err, ErrInsufficientData)
}

func TestWriteLaTeXTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteLaTeXTable(&buf, SelectReportRows(sequentialDataset(10))))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, `\begin{table}[htbp]`))
	assert.Contains(t, out, `\textbf{Input Size} & \textbf{Execution Time (s)} \\`)
	assert.Contains(t, out, "1,000 & 0.0100 \\\\\n")
	assert.Contains(t, out, "10,000 & 0.1000 \\\\\n")
	assert.True(t, strings.HasSuffix(out, "\\end{table}\n"))
	assert.Equal(t, 4, strings.Count(out, " & ")) // header + 3 rows
}

func TestWriteSummary(t *testing.T) {
	a, err := Analyze(synthetic(1e-9, 2))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteSummary(&buf, a))

	out := buf.String()
	assert.Contains(t, out, "Smallest input: 1 characters")
	assert.Contains(t, out, "Largest input: 640,000 characters")
	assert.Contains(t, out, "Estimated time complexity: O(n^2.00)")
	assert.NotContains(t, out, "Skipped")
}

func TestWriteSummary_InsufficientData(t *testing.T) {
	a, err := Analyze(sequentialDataset(3))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteSummary(&buf, a))
	assert.Contains(t, buf.String(), "Estimated time complexity: insufficient data")
	assert.Contains(t, buf.String(), "Skipped: complexity estimate")
}
