package main

import (
	"errors"
	"fmt"
	"image"
	"io"
	"path/filepath"
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/iafilius/SoulPullViz/src/histogram"
	"github.com/iafilius/SoulPullViz/src/logging"
	"github.com/iafilius/SoulPullViz/src/report"
	"github.com/iafilius/SoulPullViz/src/samples"
	"github.com/iafilius/SoulPullViz/src/types"
)

// Chart is a finished rendering handed to a Display.
type Chart struct {
	Title string
	// Name is a suggested file name when saving.
	Name  string
	Image image.Image
}

// Display shows or stores a rendered chart. Show may block (a window stays
// open until the user closes it).
type Display interface {
	Show(c Chart) error
}

// renderer turns one results file into one chart. It keeps no state between
// Render calls.
type renderer struct {
	display Display
	stdout  io.Writer
	load    func(path string) ([]float64, error)
	width   int
	height  int
	// summary, when set, receives the text summary before the chart is shown.
	summary  io.Writer
	pullCost int
}

// Render loads the results at path and shows the chart for mode. A missing
// file is reported on stdout and is not an error.
func (r *renderer) Render(mode types.Mode, path string) error {
	if !mode.Valid() {
		return fmt.Errorf("%w: %d", types.ErrInvalidMode, int(mode))
	}
	start := time.Now()
	vals, err := r.load(path)
	if errors.Is(err, samples.ErrNotFound) {
		fmt.Fprintf(r.stdout, "Error: '%s' not found. Run the simulation first.\n", path)
		return nil
	}
	if err != nil {
		return err
	}
	logging.TimeTrack(start, "load "+path)
	logging.Debugf("loaded %d samples from %s", len(vals), path)

	if r.summary != nil {
		s, err := report.Summarize(mode, path, vals, r.pullCost)
		if err != nil {
			return err
		}
		if err := report.Write(r.summary, s, report.FormatText); err != nil {
			return fmt.Errorf("write summary: %w", err)
		}
	}

	opt := chartOptions{
		width:   r.width,
		height:  r.height,
		caption: fmt.Sprintf("%d samples | %s", len(vals), filepath.Base(path)),
	}
	var c Chart
	switch mode {
	case types.TargetSouls:
		c, err = r.plotTargetSouls(vals, opt)
	case types.FixedPulls:
		c, err = r.plotFixedPulls(vals, opt)
	}
	if err != nil {
		return err
	}
	return r.display.Show(c)
}

func (r *renderer) plotTargetSouls(vals []float64, opt chartOptions) (Chart, error) {
	h, err := histogram.EqualWidth(vals, histogram.TargetBins)
	if err != nil {
		return Chart{}, err
	}
	spikes := histogram.Spikes(h)
	for i, p := range spikes {
		logging.Infof("spike %d: %d pulls (count=%d prominence=%.0f)", i+1, p.Pulls(), p.Count, p.Prominence)
	}
	img, err := renderTargetSoulsChart(h, spikes, opt)
	if err != nil {
		return Chart{}, err
	}
	return Chart{Title: "Target Souls - Pulls Needed", Name: "pulls_needed.png", Image: img}, nil
}

func (r *renderer) plotFixedPulls(vals []float64, opt chartOptions) (Chart, error) {
	h, err := histogram.IntegerAligned(vals)
	if err != nil {
		return Chart{}, err
	}
	maxSouls := floats.Max(vals)
	logging.Debugf("max souls=%.0f tick step=%d", maxSouls, histogram.IntegerTickStep(maxSouls))
	img, err := renderFixedPullsChart(h, maxSouls, opt)
	if err != nil {
		return Chart{}, err
	}
	return Chart{Title: "Fixed Pulls - Souls Obtained", Name: "souls_obtained.png", Image: img}, nil
}
