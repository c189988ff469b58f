package uihelpers

import (
	"math"
	"testing"
)

func TestComputeChartDimensions(t *testing.T) {
	cases := []struct {
		in    int
		wantW int
		wantH int
	}{
		{100, 640, 373},
		{1200, 1200, 700},
		{9000, 3840, 2240},
	}
	for _, c := range cases {
		w, h := ComputeChartDimensions(c.in)
		if w != c.wantW || h != c.wantH {
			t.Fatalf("input %d => %dx%d want %dx%d", c.in, w, h, c.wantW, c.wantH)
		}
	}
}

func TestComputeWindowSize(t *testing.T) {
	w, h := ComputeWindowSize(1200, 700)
	if w != 1200 || h != 748 {
		t.Fatalf("unexpected window for 1200x700: %vx%v", w, h)
	}
	w, h = ComputeWindowSize(3200, 1400)
	if w != 1600 || h > 1000 {
		t.Fatalf("expected shrink to width 1600 within 1000 height, got %vx%v", w, h)
	}
	if w, h = ComputeWindowSize(0, 0); w != 800 || h != 600 {
		t.Fatalf("expected fallback size, got %vx%v", w, h)
	}
}

func TestBuildNumericTicks(t *testing.T) {
	ticks := BuildNumericTicks(0, 1512, 6)
	want := []float64{0, 500, 1000, 1500, 2000}
	if len(ticks) != len(want) {
		t.Fatalf("ticks=%v want %v", ticks, want)
	}
	for i := range want {
		if math.Abs(ticks[i]-want[i]) > 1e-9 {
			t.Fatalf("ticks=%v want %v", ticks, want)
		}
	}
	if BuildNumericTicks(0, 1, 1) != nil {
		t.Fatalf("expected nil for n<2")
	}
}

func TestTicksWithin(t *testing.T) {
	got := TicksWithin([]float64{0, 50, 100, 150}, 12, 140)
	if len(got) != 2 || got[0] != 50 || got[1] != 100 {
		t.Fatalf("unexpected filtered ticks: %v", got)
	}
}

func TestFormatNumericTick(t *testing.T) {
	cases := map[float64]string{
		0:      "0",
		1500:   "1500",
		12.5:   "12.5",
		2.25:   "2.25",
		0.125:  "0.125",
		-40:    "-40",
		123.56: "124",
	}
	for in, want := range cases {
		if got := FormatNumericTick(in); got != want {
			t.Fatalf("FormatNumericTick(%v)=%q want %q", in, got, want)
		}
	}
}
