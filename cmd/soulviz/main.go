// soulviz renders the result files of the soul pull simulation.
//
// Two modes:
//  1. Target Souls: pulls needed to reach a soul target (pull_results.csv). A
//     50-bin histogram with the three most prominent spikes marked.
//  2. Fixed Pulls: souls obtained from a fixed number of pulls
//     (soul_results.csv). One bar per soul count.
//
// The chart opens in a window by default; --out writes a PNG instead.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/iafilius/SoulPullViz/cmd/soulviz/uihelpers"
	"github.com/iafilius/SoulPullViz/src/config"
	"github.com/iafilius/SoulPullViz/src/logging"
	"github.com/iafilius/SoulPullViz/src/samples"
	"github.com/iafilius/SoulPullViz/src/types"
)

// cliDeps are the pieces tests swap out.
type cliDeps struct {
	stdout  io.Writer
	display Display
	load    func(path string) ([]float64, error)
}

func main() {
	deps := cliDeps{stdout: os.Stdout, display: windowDisplay{}, load: samples.Load}
	if err := newRootCmd(deps).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func validateMode(cmd *cobra.Command, args []string) error {
	_, err := types.ParseMode(args[0])
	return err
}

func newRootCmd(deps cliDeps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "soulviz <mode>",
		Short: "Visualize simulation results",
		Long: `soulviz plots the CSV results written by the soul pull simulation.

Simulation mode to visualize (1: Target Souls, 2: Fixed Pulls).
Run the simulation first; it writes pull_results.csv (mode 1) or
soul_results.csv (mode 2) in the current directory.

Environment: SOULVIZ_PULL_RESULTS, SOULVIZ_SOUL_RESULTS, SOULVIZ_LOG_LEVEL,
SOULVIZ_CHART_WIDTH, SOULVIZ_CHART_HEIGHT, SOULVIZ_PULL_COST.`,
		Example: `  soulviz 1
  soulviz 2 --file runs/soul_results.csv
  soulviz 1 --out pulls.png --summary`,
		Args:          cobra.MatchAll(cobra.ExactArgs(1), validateMode),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			mode, _ := types.ParseMode(args[0])

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			file, _ := cmd.Flags().GetString("file")
			out, _ := cmd.Flags().GetString("out")
			summary, _ := cmd.Flags().GetBool("summary")
			level := cfg.LogLevel
			if cmd.Flags().Changed("log-level") {
				level, _ = cmd.Flags().GetString("log-level")
			}
			if _, err := logging.ParseLevel(level); err != nil {
				return err
			}
			logging.SetLogLevel(level)

			// explicit height is kept unless the width had to be clamped
			w, h := uihelpers.ComputeChartDimensions(cfg.ChartWidth)
			if cfg.ChartWidth == w {
				h = cfg.ChartHeight
			}
			r := &renderer{
				display:  deps.display,
				stdout:   deps.stdout,
				load:     deps.load,
				width:    w,
				height:   h,
				pullCost: cfg.PullCost,
			}
			if out != "" {
				r.display = pngDisplay{path: out}
			}
			if summary {
				r.summary = deps.stdout
			}
			path := cfg.InputFile(mode, file)
			logging.Debugf("mode=%s file=%s size=%dx%d", mode, path, w, h)
			return r.Render(mode, path)
		},
	}
	cmd.SetOut(deps.stdout)
	cmd.Flags().StringP("file", "f", "", "Results CSV (default pull_results.csv for mode 1, soul_results.csv for mode 2)")
	cmd.Flags().StringP("out", "o", "", "Write the chart to this PNG file instead of opening a window")
	cmd.Flags().Bool("summary", false, "Print the spike/best/worst summary before showing the chart")
	cmd.Flags().String("log-level", "info", "Log level (debug|info|warn|error)")
	return cmd
}
