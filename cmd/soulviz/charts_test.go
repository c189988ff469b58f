package main

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/iafilius/SoulPullViz/src/histogram"
)

var testOpts = chartOptions{width: 640, height: 400, caption: "3 samples | results.csv"}

func toFloats(v []int) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = float64(x)
	}
	return out
}

func TestRenderTargetSoulsChartSize(t *testing.T) {
	h, err := histogram.EqualWidth(toFloats(pullsNeeded()), histogram.TargetBins)
	require.NoError(t, err)
	spikes := histogram.Spikes(h)
	require.Len(t, spikes, 2)

	img, err := renderTargetSoulsChart(h, spikes, testOpts)
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 640, 400), img.Bounds())
}

func TestRenderTargetSoulsChartDegenerate(t *testing.T) {
	h, err := histogram.EqualWidth([]float64{42, 42, 42}, histogram.TargetBins)
	require.NoError(t, err)
	img, err := renderTargetSoulsChart(h, histogram.Spikes(h), testOpts)
	require.NoError(t, err)
	require.NotNil(t, img)
}

func TestRenderFixedPullsChartSingleBin(t *testing.T) {
	h, err := histogram.IntegerAligned([]float64{0, 0})
	require.NoError(t, err)
	img, err := renderFixedPullsChart(h, 0, testOpts)
	require.NoError(t, err)
	require.Equal(t, 640, img.Bounds().Dx())
}

func TestRenderFixedPullsChartAllSameValue(t *testing.T) {
	h, err := histogram.IntegerAligned([]float64{7, 7, 7})
	require.NoError(t, err)
	img, err := renderFixedPullsChart(h, 7, testOpts)
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 640, 400), img.Bounds())
}

func TestXAxisSpansBinEdges(t *testing.T) {
	spread := make([]float64, 0, 877)
	for v := 37; v <= 913; v++ {
		spread = append(spread, float64(v))
	}
	souls := make([]float64, 0, 48)
	for v := 0; v <= 47; v++ {
		souls = append(souls, float64(v))
	}

	cases := []struct {
		name string
		axis func() (histogram.Histogram, []chart.Tick, chart.ContinuousRange)
	}{
		{"pulls 37..913", func() (histogram.Histogram, []chart.Tick, chart.ContinuousRange) {
			h, err := histogram.EqualWidth(spread, histogram.TargetBins)
			require.NoError(t, err)
			ax, rng := pullsXAxis(h)
			return h, ax.Ticks, rng
		}},
		{"pulls bimodal", func() (histogram.Histogram, []chart.Tick, chart.ContinuousRange) {
			h, err := histogram.EqualWidth(toFloats(pullsNeeded()), histogram.TargetBins)
			require.NoError(t, err)
			ax, rng := pullsXAxis(h)
			return h, ax.Ticks, rng
		}},
		{"pulls degenerate", func() (histogram.Histogram, []chart.Tick, chart.ContinuousRange) {
			h, err := histogram.EqualWidth([]float64{42, 42, 42}, histogram.TargetBins)
			require.NoError(t, err)
			ax, rng := pullsXAxis(h)
			return h, ax.Ticks, rng
		}},
		{"souls 0..47", func() (histogram.Histogram, []chart.Tick, chart.ContinuousRange) {
			h, err := histogram.IntegerAligned(souls)
			require.NoError(t, err)
			ax, rng := soulsXAxis(h, 47)
			return h, ax.Ticks, rng
		}},
		{"souls all zero", func() (histogram.Histogram, []chart.Tick, chart.ContinuousRange) {
			h, err := histogram.IntegerAligned([]float64{0, 0, 0})
			require.NoError(t, err)
			ax, rng := soulsXAxis(h, 0)
			return h, ax.Ticks, rng
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h, ticks, rng := tc.axis()
			lo, hi := h.Edges[0], h.Edges[len(h.Edges)-1]

			got := tickRange(ticks)
			require.Equal(t, lo, got.Min)
			require.Equal(t, hi, got.Max)
			require.Equal(t, got, rng)
			for i := 1; i < len(ticks); i++ {
				require.Less(t, ticks[i-1].Value, ticks[i].Value, "ticks must ascend")
			}
		})
	}
}

func TestSoulsXAxisKeepsIntegerLabels(t *testing.T) {
	h, err := histogram.IntegerAligned([]float64{0, 47})
	require.NoError(t, err)
	ax, _ := soulsXAxis(h, 47)

	var labels []string
	for _, tk := range ax.Ticks {
		if tk.Label != "" {
			labels = append(labels, tk.Label)
		}
	}
	require.Equal(t, []string{"0", "3", "6", "9", "12", "15", "18", "21", "24", "27", "30", "33", "36", "39", "42", "45"}, labels)
	require.Equal(t, chart.Tick{Value: -0.5}, ax.Ticks[0])
	require.Equal(t, chart.Tick{Value: 47.5}, ax.Ticks[len(ax.Ticks)-1])
}

func TestEdgeTicksReuseLabelOnEdge(t *testing.T) {
	ticks := edgeTicks(0, 400, []chart.Tick{
		{Value: -50, Label: "-50"},
		{Value: 0, Label: "0"},
		{Value: 200, Label: "200"},
		{Value: 400, Label: "400"},
	})
	require.Equal(t, []chart.Tick{
		{Value: 0, Label: "0"},
		{Value: 200, Label: "200"},
		{Value: 400, Label: "400"},
	}, ticks)
}

func TestSpikeLabelSitsRightOfMarker(t *testing.T) {
	h, err := histogram.EqualWidth(toFloats(pullsNeeded()), histogram.TargetBins)
	require.NoError(t, err)
	spikes := histogram.Spikes(h)
	require.NotEmpty(t, spikes)
	xAxis, xr := pullsXAxis(h)
	_, yr := frequencyAxis(h.MaxCount())

	// the chart draws the bars and markers against the tick range
	require.Equal(t, tickRange(xAxis.Ticks), xr)

	box := chart.Box{Top: 20, Left: 60, Right: 620, Bottom: 350}
	xr.Domain = box.Width()
	yr.Domain = box.Height()
	for _, p := range spikes {
		markerX := box.Left + xr.Translate(float64(p.Pulls()))
		x, y := spikeLabelAnchor(p, xr, *yr, box, h.MaxCount())
		require.Equal(t, box.Left+xr.Translate(float64(p.Pulls())+5), x)
		require.Greater(t, x, markerX)
		require.Less(t, x-markerX, 10, "label drifted away from its marker")
		require.Equal(t, box.Bottom-yr.Translate(float64(h.MaxCount())*0.8), y)
	}
}

func TestFrequencyAxisStartsAtZero(t *testing.T) {
	ax, rng := frequencyAxis(1440)
	require.Equal(t, 0.0, rng.Min)
	require.GreaterOrEqual(t, rng.Max, 1440*1.05)
	require.Equal(t, "0", ax.Ticks[0].Label)
	require.Equal(t, rng.Max, ax.Ticks[len(ax.Ticks)-1].Value)
}

func TestSpikeMarker(t *testing.T) {
	s := spikeMarker(2, histogram.Peak{Center: 300.5, Count: 480}, 2000)
	require.Equal(t, "Spike 2: 300 Pulls", s.Name)
	require.Equal(t, []float64{300, 300}, s.XValues)
	require.Equal(t, []float64{0, 2000}, s.YValues)
}

func TestDrawCaption(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 200, 60))
	for y := 0; y < 60; y++ {
		for x := 0; x < 200; x++ {
			src.Set(x, y, color.White)
		}
	}
	out := drawCaption(src, "6 samples | soul_results.csv")
	require.Equal(t, src.Bounds(), out.Bounds())
	r, g, b, _ := out.At(4, 55).RGBA()
	require.Less(t, r+g+b, uint32(3*0xffff), "badge should darken the corner")

	require.Same(t, src, drawCaption(src, " ").(*image.RGBA))
}
