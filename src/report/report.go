// Package report summarizes a sample set the way the simulator prints its
// results: most likely spike positions with their diamond cost, best and
// worst case for pulls-needed runs, and the average for fixed-pull runs.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gopkg.in/yaml.v3"

	"github.com/iafilius/SoulPullViz/src/histogram"
	"github.com/iafilius/SoulPullViz/src/types"
)

// DefaultPullCost is the diamond price of one pull.
const DefaultPullCost = 300

var spikeLabels = []string{"Most likely", "Second most likely", "Third most likely"}

// Spike is one prominent peak of the pulls-needed distribution.
type Spike struct {
	Label       string `json:"label" yaml:"label"`
	Pulls       int    `json:"pulls" yaml:"pulls"`
	Count       int    `json:"count" yaml:"count"`
	DiamondCost int    `json:"diamond_cost" yaml:"diamond_cost"`
}

// Case is a pull count with its diamond price.
type Case struct {
	Pulls       int `json:"pulls" yaml:"pulls"`
	DiamondCost int `json:"diamond_cost" yaml:"diamond_cost"`
}

// Summary captures the aggregate view of one results file.
type Summary struct {
	Mode    string  `json:"mode" yaml:"mode"`
	File    string  `json:"file,omitempty" yaml:"file,omitempty"`
	Samples int     `json:"samples" yaml:"samples"`
	Mean    float64 `json:"mean" yaml:"mean"`
	StdDev  float64 `json:"std_dev" yaml:"std_dev"`
	Median  float64 `json:"median" yaml:"median"`
	Min     float64 `json:"min" yaml:"min"`
	Max     float64 `json:"max" yaml:"max"`
	// Pulls-needed runs only.
	Spikes    []Spike `json:"spikes,omitempty" yaml:"spikes,omitempty"`
	BestCase  *Case   `json:"best_case,omitempty" yaml:"best_case,omitempty"`
	WorstCase *Case   `json:"worst_case,omitempty" yaml:"worst_case,omitempty"`
}

// Summarize computes the Summary of vals for mode. pullCost prices pulls in
// diamonds.
func Summarize(mode types.Mode, file string, vals []float64, pullCost int) (Summary, error) {
	if !mode.Valid() {
		return Summary{}, fmt.Errorf("%w: %d", types.ErrInvalidMode, int(mode))
	}
	if len(vals) == 0 {
		return Summary{}, histogram.ErrEmpty
	}
	sorted := append([]float64(nil), vals...)
	sort.Float64s(sorted)
	mean, std := stat.MeanStdDev(sorted, nil)
	s := Summary{
		Mode:    mode.String(),
		File:    file,
		Samples: len(sorted),
		Mean:    mean,
		StdDev:  std,
		Median:  stat.Quantile(0.5, stat.Empirical, sorted, nil),
		Min:     floats.Min(sorted),
		Max:     floats.Max(sorted),
	}
	if mode == types.FixedPulls {
		return s, nil
	}
	h, err := histogram.EqualWidth(sorted, histogram.TargetBins)
	if err != nil {
		return Summary{}, err
	}
	for i, p := range histogram.Spikes(h) {
		s.Spikes = append(s.Spikes, Spike{
			Label:       spikeLabels[i],
			Pulls:       p.Pulls(),
			Count:       p.Count,
			DiamondCost: p.Pulls() * pullCost,
		})
	}
	best, worst := int(s.Min), int(s.Max)
	s.BestCase = &Case{Pulls: best, DiamondCost: best * pullCost}
	s.WorstCase = &Case{Pulls: worst, DiamondCost: worst * pullCost}
	return s, nil
}

// Format selects the Write encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts text, json, yaml (and yml).
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown format %q (text|json|yaml)", s)
}

// Write encodes s to w.
func Write(w io.Writer, s Summary, f Format) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return err
		}
		return enc.Close()
	case FormatText, "":
		return writeText(w, s)
	}
	return fmt.Errorf("unknown format %q", f)
}

func writeText(w io.Writer, s Summary) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Results for %s", s.Mode)
	if s.File != "" {
		fmt.Fprintf(&b, " (%s)", s.File)
	}
	fmt.Fprintf(&b, ": %d samples\n", s.Samples)

	if s.BestCase == nil {
		fmt.Fprintf(&b, "  Avg Souls: %.2f\n", s.Mean)
		fmt.Fprintf(&b, "  Min Souls: %.0f\n", s.Min)
		fmt.Fprintf(&b, "  Max Souls: %.0f\n", s.Max)
		_, err := io.WriteString(w, b.String())
		return err
	}

	b.WriteString("--- Top Spikes ---\n")
	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Spike\tPulls\tDiamond Cost\tCount")
	for _, sp := range s.Spikes {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\n", sp.Label, sp.Pulls, sp.DiamondCost, sp.Count)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if s.BestCase != nil && s.WorstCase != nil {
		fmt.Fprintf(&b, "\nBest Case:\t %d pulls -> %d Diamonds\n", s.BestCase.Pulls, s.BestCase.DiamondCost)
		fmt.Fprintf(&b, "Worst Case:\t %d pulls -> %d Diamonds\n", s.WorstCase.Pulls, s.WorstCase.DiamondCost)
	}
	fmt.Fprintf(&b, "Mean: %.2f pulls (std dev %.2f, median %.0f)\n", s.Mean, s.StdDev, s.Median)
	_, err := io.WriteString(w, b.String())
	return err
}
