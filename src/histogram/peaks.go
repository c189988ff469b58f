package histogram

import (
	"math"
	"sort"
)

// Peak selection defaults for the pulls-needed chart.
const (
	DefaultSpikes        = 3
	DefaultRelProminence = 0.05
)

// Peak is a local maximum of a histogram's counts.
type Peak struct {
	Index      int
	Center     float64
	Count      int
	Prominence float64
}

// LocalMaxima returns the indices of samples strictly higher than their
// neighbours. A flat top counts once, at its middle (rounded left). The
// first and last samples are never maxima.
func LocalMaxima(x []int) []int {
	var peaks []int
	i, iMax := 1, len(x)-1
	for i < iMax {
		if x[i-1] < x[i] {
			ahead := i + 1
			for ahead < iMax && x[ahead] == x[i] {
				ahead++
			}
			if x[ahead] < x[i] {
				peaks = append(peaks, (i+ahead-1)/2)
				i = ahead
			}
		}
		i++
	}
	return peaks
}

// Prominences computes, for each peak, its height above the higher of the
// two lowest points reached on either side before meeting a strictly higher
// sample or the border.
func Prominences(x []int, peaks []int) []float64 {
	out := make([]float64, len(peaks))
	for n, p := range peaks {
		leftMin := x[p]
		for i := p; i >= 0 && x[i] <= x[p]; i-- {
			if x[i] < leftMin {
				leftMin = x[i]
			}
		}
		rightMin := x[p]
		for i := p; i < len(x) && x[i] <= x[p]; i++ {
			if x[i] < rightMin {
				rightMin = x[i]
			}
		}
		base := leftMin
		if rightMin > base {
			base = rightMin
		}
		out[n] = float64(x[p] - base)
	}
	return out
}

// FindPeaks returns local maxima whose prominence is at least minProminence,
// in ascending index order, together with their prominences.
func FindPeaks(x []int, minProminence float64) ([]int, []float64) {
	cand := LocalMaxima(x)
	prom := Prominences(x, cand)
	var peaks []int
	var proms []float64
	for i, p := range cand {
		if prom[i] >= minProminence {
			peaks = append(peaks, p)
			proms = append(proms, prom[i])
		}
	}
	return peaks, proms
}

// TopPeaks finds peaks with prominence >= relProminence*MaxCount and keeps
// the k tallest, tallest first. Equal counts keep ascending bin order.
func TopPeaks(h Histogram, relProminence float64, k int) []Peak {
	threshold := float64(h.MaxCount()) * relProminence
	idx, proms := FindPeaks(h.Counts, threshold)
	centers := h.Centers()
	peaks := make([]Peak, len(idx))
	for i, p := range idx {
		peaks[i] = Peak{Index: p, Center: centers[p], Count: h.Counts[p], Prominence: proms[i]}
	}
	sort.SliceStable(peaks, func(a, b int) bool { return peaks[a].Count > peaks[b].Count })
	if k >= 0 && len(peaks) > k {
		peaks = peaks[:k]
	}
	return peaks
}

// Spikes runs TopPeaks with the defaults used by the pulls-needed chart.
func Spikes(h Histogram) []Peak {
	return TopPeaks(h, DefaultRelProminence, DefaultSpikes)
}

// Pulls truncates the peak's bin center toward zero, which is how spikes are
// labelled on charts and in summaries.
func (p Peak) Pulls() int { return int(math.Trunc(p.Center)) }
