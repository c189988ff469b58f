package uihelpers

import (
	"math"
	"strconv"
)

// ComputeChartDimensions clamps a requested chart width and derives the
// height from a 12:7 aspect (the simulator's figure proportions).
func ComputeChartDimensions(rawW int) (int, int) {
	w := rawW
	if w < 640 {
		w = 640
	}
	if w > 3840 {
		w = 3840
	}
	h := int(float32(w) * 7 / 12)
	if h < 360 {
		h = 360
	}
	return w, h
}

// ComputeWindowSize returns the window size for a chart image: the image
// plus room for the button bar, shrunk to fit a 1600x1000 screen budget
// while keeping the aspect.
func ComputeWindowSize(imgW, imgH int) (float32, float32) {
	const barH = 48
	const maxW, maxH = 1600, 1000
	w, h := float64(imgW), float64(imgH)
	if w <= 0 || h <= 0 {
		return 800, 600
	}
	scale := math.Min(1, math.Min(maxW/w, (maxH-barH)/h))
	return float32(math.Round(w * scale)), float32(math.Round(h*scale) + barH)
}

// pow10Floor returns 10^floor(log10(x)) safeguarding tiny values.
func pow10Floor(x float64) float64 {
	if x <= 0 {
		return 1
	}
	return math.Pow(10, math.Floor(math.Log10(x)))
}

// round6 rounds to 6 decimal places to stabilize labels.
func round6(v float64) float64 { return math.Round(v*1e6) / 1e6 }

// BuildNumericTicks generates about n tick positions covering [min,max] on a
// 1, 2, 2.5, 5 x 10^k step. The first and last tick may fall outside the
// interval; see TicksWithin.
func BuildNumericTicks(min, max float64, n int) []float64 {
	if n < 2 || math.IsNaN(min) || math.IsNaN(max) {
		return nil
	}
	if max <= min {
		max = min + 1
	}
	span := max - min
	mag := pow10Floor(span / float64(n-1))
	bestStep := mag
	bestScore := math.MaxFloat64
	for _, c := range []float64{1, 2, 2.5, 5, 10} {
		step := c * mag
		count := math.Ceil(span/step) + 1
		if diff := math.Abs(count - float64(n)); diff < bestScore {
			bestScore = diff
			bestStep = step
		}
	}
	start := math.Floor(min/bestStep) * bestStep
	end := math.Ceil(max/bestStep) * bestStep
	var out []float64
	for v := start; v <= end+bestStep*0.5; v += bestStep {
		out = append(out, round6(v))
	}
	return out
}

// TicksWithin keeps the ticks inside [min,max].
func TicksWithin(ticks []float64, min, max float64) []float64 {
	out := ticks[:0:0]
	for _, t := range ticks {
		if t >= min-1e-9 && t <= max+1e-9 {
			out = append(out, t)
		}
	}
	return out
}

// FormatNumericTick renders whole numbers without decimals and keeps a
// compact precision otherwise.
func FormatNumericTick(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatInt(int64(v), 10)
	}
	av := math.Abs(v)
	switch {
	case av >= 100:
		return strconv.FormatInt(int64(math.Round(v)), 10)
	case av >= 10:
		return strconv.FormatFloat(v, 'f', 1, 64)
	case av >= 1:
		return strconv.FormatFloat(v, 'f', 2, 64)
	default:
		return strconv.FormatFloat(v, 'f', 3, 64)
	}
}
