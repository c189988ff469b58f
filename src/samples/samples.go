// Package samples loads simulation results from the CSV files written by the
// simulator: a header row followed by one numeric value per line in the
// "result" column.
package samples

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"
)

// Column is the header name holding the sample values.
const Column = "result"

var (
	// ErrNotFound reports a missing input file. It matches fs.ErrNotExist too.
	ErrNotFound = fmt.Errorf("results file not found: %w", fs.ErrNotExist)
	// ErrMissingColumn reports a header row without the result column.
	ErrMissingColumn = errors.New(`missing "result" column`)
	// ErrNoSamples reports a file with a header but no data rows.
	ErrNoSamples = errors.New("no samples")
)

// Load reads the result column of the CSV file at path.
func Load(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, err
	}
	defer f.Close()
	vals, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return vals, nil
}

// Read parses CSV content from r. Rows may carry other columns; only the
// result column is used. Blank lines are skipped by the CSV reader.
func Read(r io.Reader) ([]float64, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrMissingColumn
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	col := -1
	for i, h := range header {
		// tolerate a UTF-8 BOM written by spreadsheet tools
		if strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")) == Column {
			col = i
			break
		}
	}
	if col < 0 {
		return nil, ErrMissingColumn
	}
	var out []float64
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		line, _ := cr.FieldPos(0)
		if col >= len(rec) {
			return nil, fmt.Errorf("line %d: %w", line, ErrMissingColumn)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(rec[col]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid result %q: %w", line, rec[col], err)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("line %d: result %q is not finite", line, rec[col])
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, ErrNoSamples
	}
	return out, nil
}
