package growthbench

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataset_RoundTrip(t *testing.T) {
	ds := Dataset{
		{Size: 1, Elapsed: 0.0031415926535},
		{Size: 100, Elapsed: 0.1},
		{Size: 10000, Elapsed: 1.0 / 3.0},
		{Size: 640000, Elapsed: 12.75},
		{Size: 1000000, Elapsed: 0},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteDataset(&buf, ds))

	got, err := ReadDataset(&buf)
	require.NoError(t, err)
	assert.Equal(t, ds, got)
}

func TestWriteDataset_Format(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteDataset(&buf, Dataset{{Size: 11, Elapsed: 0.5}, {Size: 21, Elapsed: 1.25}}))
	assert.Equal(t, "size,time\n11,0.5\n21,1.25\n", buf.String())
}

func TestWriteDataset_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteDataset(&buf, nil))
	assert.Equal(t, "size,time\n", buf.String())

	ds, err := ReadDataset(&buf)
	require.NoError(t, err)
	assert.Empty(t, ds)
}

func TestSaveDataset_LoadDataset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "benchmark_results.csv")
	ds := Dataset{{Size: 1, Elapsed: 0.01}, {Size: 11, Elapsed: 0.02}}

	require.NoError(t, SaveDataset(path, ds))

	got, err := LoadDataset(path)
	require.NoError(t, err)
	assert.Equal(t, ds, got)

	// No temporary files are left behind.
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestSaveDataset_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "benchmark_results.csv")
	err := SaveDataset(path, Dataset{{Size: 1, Elapsed: 0.01}})
	assert.Error(t, err)
}

func TestLoadDataset_MissingFile(t *testing.T) {
	_, err := LoadDataset(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestReadDataset_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"wrong header", "n,seconds\n1,0.1\n"},
		{"bad size", "size,time\nten,0.1\n"},
		{"bad time", "size,time\n10,fast\n"},
		{"zero size", "size,time\n0,0.1\n"},
		{"negative time", "size,time\n10,-0.1\n"},
		{"extra column", "size,time\n10,0.1,x\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadDataset(strings.NewReader(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestDataset_Accessors(t *testing.T) {
	ds := Dataset{{Size: 5000, Elapsed: 1}, {Size: 10000, Elapsed: 2}, {Size: 20000, Elapsed: 4}}

	assert.Equal(t, []float64{5000, 10000, 20000}, ds.Sizes())
	assert.Equal(t, []float64{1, 2, 4}, ds.Times())
	assert.Equal(t, Dataset{{Size: 20000, Elapsed: 4}}, ds.Above(10000))

	last, ok := ds.Last()
	assert.True(t, ok)
	assert.Equal(t, 20000, last.Size)

	_, ok = Dataset{}.Last()
	assert.False(t, ok)
}
