// soulreader prints the summary of a simulation results file without
// opening a window.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/iafilius/SoulPullViz/src/config"
	"github.com/iafilius/SoulPullViz/src/logging"
	"github.com/iafilius/SoulPullViz/src/report"
	"github.com/iafilius/SoulPullViz/src/samples"
	"github.com/iafilius/SoulPullViz/src/types"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(stdout io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "soulreader <mode>",
		Short: "Summarize simulation results (1: Target Souls, 2: Fixed Pulls)",
		Args: cobra.MatchAll(cobra.ExactArgs(1), func(cmd *cobra.Command, args []string) error {
			_, err := types.ParseMode(args[0])
			return err
		}),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			mode, _ := types.ParseMode(args[0])
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logging.SetLogLevel(cfg.LogLevel)
			file, _ := cmd.Flags().GetString("file")
			formatName, _ := cmd.Flags().GetString("format")
			format, err := report.ParseFormat(formatName)
			if err != nil {
				return err
			}
			cost := cfg.PullCost
			if cmd.Flags().Changed("pull-cost") {
				cost, _ = cmd.Flags().GetInt("pull-cost")
				if cost < 0 {
					return fmt.Errorf("pull cost must not be negative, got %d", cost)
				}
			}

			path := cfg.InputFile(mode, file)
			vals, err := samples.Load(path)
			if errors.Is(err, samples.ErrNotFound) {
				fmt.Fprintf(stdout, "Error: '%s' not found. Run the simulation first.\n", path)
				return nil
			}
			if err != nil {
				return err
			}
			s, err := report.Summarize(mode, path, vals, cost)
			if err != nil {
				return err
			}
			return report.Write(stdout, s, format)
		},
	}
	cmd.SetOut(stdout)
	cmd.Flags().StringP("file", "f", "", "Results CSV (default depends on mode)")
	cmd.Flags().String("format", "text", "Output format (text|json|yaml)")
	cmd.Flags().Int("pull-cost", report.DefaultPullCost, "Diamonds per pull")
	return cmd
}
