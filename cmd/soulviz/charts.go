package main

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"math"
	"strconv"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/iafilius/SoulPullViz/cmd/soulviz/uihelpers"
	"github.com/iafilius/SoulPullViz/src/histogram"
)

var (
	// translucent fill, 75% opacity
	barFill     = drawing.Color{R: 0x1f, G: 0x77, B: 0xb4, A: 191}
	spikeColor  = drawing.ColorFromHex("800080")
	spikeLabel  = drawing.ColorFromHex("8b0000")
	gridColor   = drawing.ColorFromHex("e6e6e6")
	spikeDashes = []float64{8, 5}
)

// chartOptions carries the per-render settings shared by both charts.
type chartOptions struct {
	width, height int
	caption       string
}

func countsAsFloats(counts []int) []float64 {
	out := make([]float64, len(counts))
	for i, c := range counts {
		out[i] = float64(c)
	}
	return out
}

func barsSeries(h histogram.Histogram) chart.HistogramSeries {
	return chart.HistogramSeries{
		Name: "Frequency",
		Style: chart.Style{
			FillColor:   barFill,
			StrokeColor: chart.ColorBlack,
			StrokeWidth: 1,
		},
		InnerSeries: chart.ContinuousSeries{
			Name:    "Frequency",
			XValues: h.Centers(),
			YValues: countsAsFloats(h.Counts),
		},
	}
}

// frequencyAxis anchors the count axis at zero with a little headroom above
// the tallest bar.
func frequencyAxis(maxCount int) (chart.YAxis, *chart.ContinuousRange) {
	top := float64(maxCount) * 1.05
	if top <= 0 {
		top = 1
	}
	pos := uihelpers.BuildNumericTicks(0, top, 6)
	rng := &chart.ContinuousRange{Min: 0, Max: pos[len(pos)-1]}
	ticks := make([]chart.Tick, len(pos))
	for i, v := range pos {
		ticks[i] = chart.Tick{Value: v, Label: uihelpers.FormatNumericTick(v)}
	}
	return chart.YAxis{
		Name:           "Frequency",
		Range:          rng,
		Ticks:          ticks,
		GridMajorStyle: chart.Style{StrokeColor: gridColor, StrokeWidth: 1},
	}, rng
}

// binXAxis builds an x-axis that spans exactly the outer bin edges of h.
// go-chart takes the x-range from the tick extremes whenever ticks are set,
// so unlabelled ticks are added at both edges and the returned range is the
// one the bars and markers are drawn against.
func binXAxis(name string, h histogram.Histogram, labelled []chart.Tick) (chart.XAxis, chart.ContinuousRange) {
	ticks := edgeTicks(h.Edges[0], h.Edges[len(h.Edges)-1], labelled)
	rng := tickRange(ticks)
	return chart.XAxis{
		Name:           name,
		Range:          &chart.ContinuousRange{Min: rng.Min, Max: rng.Max},
		Ticks:          ticks,
		GridMajorStyle: chart.Style{StrokeColor: gridColor, StrokeWidth: 1},
	}, rng
}

// edgeTicks merges the ascending labelled ticks with ticks at lo and hi.
// Labelled ticks outside [lo, hi] are dropped; one sitting on an edge lends
// its label to the edge tick.
func edgeTicks(lo, hi float64, labelled []chart.Tick) []chart.Tick {
	const eps = 1e-9
	out := []chart.Tick{{Value: lo}}
	last := chart.Tick{Value: hi}
	for _, t := range labelled {
		switch {
		case math.Abs(t.Value-lo) <= eps:
			out[0].Label = t.Label
		case math.Abs(t.Value-hi) <= eps:
			last.Label = t.Label
		case t.Value > lo && t.Value < hi:
			out = append(out, t)
		}
	}
	return append(out, last)
}

// tickRange is the range go-chart derives from a tick set.
func tickRange(ticks []chart.Tick) chart.ContinuousRange {
	rng := chart.ContinuousRange{Min: math.Inf(1), Max: math.Inf(-1)}
	for _, t := range ticks {
		rng.Min = math.Min(rng.Min, t.Value)
		rng.Max = math.Max(rng.Max, t.Value)
	}
	return rng
}

// pullsXAxis labels the pulls axis with nice round numbers.
func pullsXAxis(h histogram.Histogram) (chart.XAxis, chart.ContinuousRange) {
	lo, hi := h.Edges[0], h.Edges[len(h.Edges)-1]
	pos := uihelpers.TicksWithin(uihelpers.BuildNumericTicks(lo, hi, 10), lo, hi)
	ticks := make([]chart.Tick, len(pos))
	for i, v := range pos {
		ticks[i] = chart.Tick{Value: v, Label: uihelpers.FormatNumericTick(v)}
	}
	return binXAxis("Number of Pulls", h, ticks)
}

// soulsXAxis labels 0, step, 2*step, ... up to maxSouls.
func soulsXAxis(h histogram.Histogram, maxSouls float64) (chart.XAxis, chart.ContinuousRange) {
	var ticks []chart.Tick
	for _, v := range histogram.IntegerTicks(maxSouls) {
		ticks = append(ticks, chart.Tick{Value: float64(v), Label: strconv.Itoa(v)})
	}
	return binXAxis("Souls Obtained", h, ticks)
}

// spikeMarker is the dashed vertical line drawn at a peak.
func spikeMarker(rank int, p histogram.Peak, top float64) chart.ContinuousSeries {
	x := float64(p.Pulls())
	return chart.ContinuousSeries{
		Name:    fmt.Sprintf("Spike %d: %d Pulls", rank, p.Pulls()),
		XValues: []float64{x, x},
		YValues: []float64{0, top},
		Style: chart.Style{
			StrokeColor:     spikeColor,
			StrokeWidth:     2,
			StrokeDashArray: spikeDashes,
		},
	}
}

// spikeLabelAnchor is the pixel point a spike label is drawn from: 5 pulls
// right of the marker, at 80% of the tallest bar. xr and yr must already carry
// the canvas domain.
func spikeLabelAnchor(p histogram.Peak, xr, yr chart.ContinuousRange, box chart.Box, maxCount int) (int, int) {
	x := box.Left + xr.Translate(float64(p.Pulls())+5)
	y := box.Bottom - yr.Translate(float64(maxCount)*0.8)
	return x, y
}

// spikeLabels draws "<n> Pulls" rotated a quarter turn, just right of each
// marker. xr and yr must be the ranges the chart itself draws with.
func spikeLabels(spikes []histogram.Peak, xr, yr chart.ContinuousRange, maxCount int) chart.Renderable {
	return func(r chart.Renderer, box chart.Box, defaults chart.Style) {
		xr.Domain = box.Width()
		yr.Domain = box.Height()
		style := chart.Style{
			FontColor:           spikeLabel,
			FontSize:            10,
			TextRotationDegrees: 270,
		}.InheritFrom(defaults)
		for _, p := range spikes {
			text := fmt.Sprintf("%d Pulls", p.Pulls())
			style.GetTextOptions().WriteToRenderer(r)
			tb := r.MeasureText(text)
			r.ResetStyle()
			x, y := spikeLabelAnchor(p, xr, yr, box, maxCount)
			chart.Draw.Text(r, text, x+tb.Height()/2, y+tb.Width()/2, style)
		}
	}
}

// renderTargetSoulsChart draws the pulls-needed histogram with its spikes.
func renderTargetSoulsChart(h histogram.Histogram, spikes []histogram.Peak, opt chartOptions) (image.Image, error) {
	maxCount := h.MaxCount()
	xAxis, xr := pullsXAxis(h)
	yAxis, yr := frequencyAxis(maxCount)

	series := []chart.Series{barsSeries(h)}
	for i, p := range spikes {
		series = append(series, spikeMarker(i+1, p, yr.Max))
	}
	ch := chart.Chart{
		Title:      "Distribution of Pulls Needed (from Simulation)",
		Width:      opt.width,
		Height:     opt.height,
		Background: chart.Style{Padding: chart.Box{Top: 20, Left: 20, Right: 16, Bottom: 46}},
		XAxis:      xAxis,
		YAxis:      yAxis,
		Series:     series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch), spikeLabels(spikes, xr, *yr, maxCount)}
	return encodeChart(ch, opt.caption)
}

// renderFixedPullsChart draws the souls-obtained histogram with one bar per
// integer soul count.
func renderFixedPullsChart(h histogram.Histogram, maxSouls float64, opt chartOptions) (image.Image, error) {
	xAxis, _ := soulsXAxis(h, maxSouls)
	yAxis, _ := frequencyAxis(h.MaxCount())
	ch := chart.Chart{
		Title:      "Distribution of Souls Obtained (from Simulation)",
		Width:      opt.width,
		Height:     opt.height,
		Background: chart.Style{Padding: chart.Box{Top: 20, Left: 20, Right: 16, Bottom: 46}},
		XAxis:      xAxis,
		YAxis:      yAxis,
		Series:     []chart.Series{barsSeries(h)},
	}
	return encodeChart(ch, opt.caption)
}

// encodeChart rasterizes ch and stamps the caption in the bottom-left corner.
func encodeChart(ch chart.Chart, caption string) (image.Image, error) {
	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode chart: %w", err)
	}
	return drawCaption(img, caption), nil
}
