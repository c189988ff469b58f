// Package histogram bins simulation samples and locates the prominent peaks
// of the resulting distribution.
//
// Binning follows the usual plotting convention: bins are half-open
// [lo, hi) except the last one, which also includes its upper edge.
package histogram

import (
	"errors"
	"fmt"
	"math"
)

// TargetBins is the bin count used for the pulls-needed distribution.
const TargetBins = 50

var (
	ErrEmpty    = errors.New("histogram: no samples")
	ErrBadValue = errors.New("histogram: sample is NaN or infinite")
	ErrNegative = errors.New("histogram: integer bins need a non-negative maximum")
)

// Histogram is a set of contiguous bins. len(Edges) == len(Counts)+1.
type Histogram struct {
	Edges  []float64
	Counts []int
}

// EqualWidth builds n equal-width bins over [min(values), max(values)].
// A degenerate range (all samples equal) is widened to ±0.5 around the value.
func EqualWidth(values []float64, n int) (Histogram, error) {
	if n < 1 {
		return Histogram{}, fmt.Errorf("histogram: bin count must be positive, got %d", n)
	}
	lo, hi, err := bounds(values)
	if err != nil {
		return Histogram{}, err
	}
	if lo == hi {
		lo -= 0.5
		hi += 0.5
	}
	edges := make([]float64, n+1)
	step := (hi - lo) / float64(n)
	for i := range edges {
		edges[i] = lo + float64(i)*step
	}
	edges[n] = hi

	counts := make([]int, n)
	norm := float64(n) / (hi - lo)
	for _, v := range values {
		idx := int((v - lo) * norm)
		if idx >= n {
			idx = n - 1
		}
		// correct float rounding against the actual edges
		if idx > 0 && v < edges[idx] {
			idx--
		} else if idx < n-1 && v >= edges[idx+1] {
			idx++
		}
		counts[idx]++
	}
	return Histogram{Edges: edges, Counts: counts}, nil
}

// IntegerAligned builds width-1 bins centered on the integers 0..max(values),
// i.e. edges -0.5, 0.5, ..., max+0.5. Samples below -0.5 are not counted.
func IntegerAligned(values []float64) (Histogram, error) {
	_, hi, err := bounds(values)
	if err != nil {
		return Histogram{}, err
	}
	if hi < 0 {
		return Histogram{}, fmt.Errorf("%w (max=%g)", ErrNegative, hi)
	}
	nEdges := int(math.Ceil(hi + 2))
	edges := make([]float64, nEdges)
	for i := range edges {
		edges[i] = float64(i) - 0.5
	}
	n := nEdges - 1
	counts := make([]int, n)
	last := edges[n]
	for _, v := range values {
		if v < edges[0] || v > last {
			continue
		}
		idx := int(math.Floor(v + 0.5))
		if idx >= n {
			idx = n - 1
		}
		counts[idx]++
	}
	return Histogram{Edges: edges, Counts: counts}, nil
}

func bounds(values []float64) (lo, hi float64, err error) {
	if len(values) == 0 {
		return 0, 0, ErrEmpty
	}
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, 0, ErrBadValue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi, nil
}

// Len returns the number of bins.
func (h Histogram) Len() int { return len(h.Counts) }

// Centers returns the midpoint of every bin.
func (h Histogram) Centers() []float64 {
	out := make([]float64, len(h.Counts))
	for i := range out {
		out[i] = (h.Edges[i] + h.Edges[i+1]) / 2
	}
	return out
}

// Total is the sum of all bin counts.
func (h Histogram) Total() int {
	t := 0
	for _, c := range h.Counts {
		t += c
	}
	return t
}

// MaxCount returns the tallest bin's count.
func (h Histogram) MaxCount() int {
	m := 0
	for _, c := range h.Counts {
		if c > m {
			m = c
		}
	}
	return m
}

// BinWidth returns the width of the first bin (all bins share it).
func (h Histogram) BinWidth() float64 {
	if len(h.Edges) < 2 {
		return 0
	}
	return h.Edges[1] - h.Edges[0]
}

// Bin returns the index of the bin holding v, or -1 when v is out of range.
func (h Histogram) Bin(v float64) int {
	n := len(h.Counts)
	if n == 0 || v < h.Edges[0] || v > h.Edges[n] {
		return -1
	}
	for i := 0; i < n; i++ {
		if v < h.Edges[i+1] {
			return i
		}
	}
	return n - 1
}

// CountAt returns the count of the bin holding v (0 when out of range).
func (h Histogram) CountAt(v float64) int {
	i := h.Bin(v)
	if i < 0 {
		return 0
	}
	return h.Counts[i]
}

// IntegerTickStep is the x tick spacing for integer-aligned charts:
// max(1, floor(max)/15).
func IntegerTickStep(max float64) int {
	step := int(math.Floor(max)) / 15
	if step < 1 {
		return 1
	}
	return step
}

// IntegerTicks returns 0, step, 2*step, ... up to and including max.
func IntegerTicks(max float64) []int {
	step := IntegerTickStep(max)
	var out []int
	for v := 0; float64(v) <= max; v += step {
		out = append(out, v)
	}
	return out
}
