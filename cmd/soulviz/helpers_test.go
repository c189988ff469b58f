package main

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

// recordingDisplay keeps every chart it is asked to show.
type recordingDisplay struct {
	charts []Chart
}

func (d *recordingDisplay) Show(c Chart) error {
	d.charts = append(d.charts, c)
	return nil
}

// countingLoader wraps a loader and counts calls.
type countingLoader struct {
	calls int
	load  func(string) ([]float64, error)
}

func (c *countingLoader) Load(path string) ([]float64, error) {
	c.calls++
	return c.load(path)
}

// writeResults writes a results CSV with the given values.
func writeResults(t *testing.T, dir, name string, vals []int) string {
	t.Helper()
	var b strings.Builder
	b.WriteString("result\n")
	for _, v := range vals {
		b.WriteString(strconv.Itoa(v))
		b.WriteByte('\n')
	}
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(b.String()), 0o644); err != nil {
		t.Fatalf("write results: %v", err)
	}
	return p
}

// pullsNeeded returns a bimodal pulls-needed sample with spikes at 100 and 300.
func pullsNeeded() []int {
	vals := []int{0, 400}
	for d := -10; d <= 10; d++ {
		w := 11 - d
		if d < 0 {
			w = 11 + d
		}
		for i := 0; i < w*20; i++ {
			vals = append(vals, 100+d)
		}
	}
	for d := -5; d <= 5; d++ {
		w := 6 - d
		if d < 0 {
			w = 6 + d
		}
		for i := 0; i < w*15; i++ {
			vals = append(vals, 300+d)
		}
	}
	return vals
}

func writeFile(path, body string) error { return os.WriteFile(path, []byte(body), 0o644) }
