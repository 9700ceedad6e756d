package growthbench

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

// Result is a single timing sample: one subject-program run at one input size.
type Result struct {
	Size    int     // Input size passed to the subject program
	Elapsed float64 // Wall-clock seconds, process startup included
}

// Dataset is the ordered time series of a run, in schedule order.
// Sizes that failed are absent; there are no placeholder rows.
type Dataset []Result

// Sizes returns the size column as float64 values.
func (d Dataset) Sizes() []float64 {
	xs := make([]float64, len(d))
	for i, r := range d {
		xs[i] = float64(r.Size)
	}
	return xs
}

// Times returns the elapsed-seconds column.
func (d Dataset) Times() []float64 {
	ys := make([]float64, len(d))
	for i, r := range d {
		ys[i] = r.Elapsed
	}
	return ys
}

// Above returns the results whose size is strictly greater than minSize.
func (d Dataset) Above(minSize int) Dataset {
	var out Dataset
	for _, r := range d {
		if r.Size > minSize {
			out = append(out, r)
		}
	}
	return out
}

// Last returns the final result of the series.
func (d Dataset) Last() (Result, bool) {
	if len(d) == 0 {
		return Result{}, false
	}
	return d[len(d)-1], true
}

var datasetHeader = []string{"size", "time"}

// WriteDataset writes ds as CSV: a `size,time` header and one row per result.
// Times use the shortest representation that parses back to the same float64.
func WriteDataset(w io.Writer, ds Dataset) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(datasetHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, r := range ds {
		row := []string{
			strconv.Itoa(r.Size),
			strconv.FormatFloat(r.Elapsed, 'g', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row for size %d: %w", r.Size, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// SaveDataset persists ds to path. The data is written to a temporary file in
// the same directory and renamed into place, so a failure never leaves a
// partial artifact behind.
func SaveDataset(path string, ds Dataset) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("creating results file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if err := WriteDataset(tmp, ds); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("writing results to %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing results file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("moving results into place: %w", err)
	}
	return nil
}

// ReadDataset parses the CSV produced by WriteDataset.
func ReadDataset(r io.Reader) (Dataset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(datasetHeader)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("results file is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	if header[0] != datasetHeader[0] || header[1] != datasetHeader[1] {
		return nil, fmt.Errorf("unexpected header %q, want %q", header, datasetHeader)
	}

	var ds Dataset
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading line %d: %w", line, err)
		}

		size, err := strconv.Atoi(rec[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: parsing size %q: %w", line, rec[0], err)
		}
		if size < 1 {
			return nil, fmt.Errorf("line %d: size must be positive, got %d", line, size)
		}
		elapsed, err := strconv.ParseFloat(rec[1], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: parsing time %q: %w", line, rec[1], err)
		}
		if elapsed < 0 {
			return nil, fmt.Errorf("line %d: time must be non-negative, got %v", line, elapsed)
		}

		ds = append(ds, Result{Size: size, Elapsed: elapsed})
	}

	return ds, nil
}

// LoadDataset reads a results file written by SaveDataset.
func LoadDataset(path string) (Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening results file: %w", err)
	}
	defer f.Close()

	ds, err := ReadDataset(f)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return ds, nil
}
