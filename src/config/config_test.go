package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iafilius/SoulPullViz/src/types"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "pull_results.csv", cfg.PullResultsFile)
	require.Equal(t, "soul_results.csv", cfg.SoulResultsFile)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, 1200, cfg.ChartWidth)
	require.Equal(t, 700, cfg.ChartHeight)
	require.Equal(t, 300, cfg.PullCost)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SOULVIZ_PULL_RESULTS", "/tmp/pulls.csv")
	t.Setenv("SOULVIZ_CHART_WIDTH", "1600")
	t.Setenv("SOULVIZ_PULL_COST", "150")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "/tmp/pulls.csv", cfg.PullResultsFile)
	require.Equal(t, 1600, cfg.ChartWidth)
	require.Equal(t, 150, cfg.PullCost)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("SOULVIZ_CHART_HEIGHT", "tall")
	_, err := Load()
	require.ErrorContains(t, err, "parse env:")

	t.Setenv("SOULVIZ_CHART_HEIGHT", "0")
	_, err = Load()
	require.ErrorContains(t, err, "chart size")
}

func TestInputFile(t *testing.T) {
	cfg := Config{PullResultsFile: "p.csv"}
	require.Equal(t, "p.csv", cfg.InputFile(types.TargetSouls, ""))
	require.Equal(t, "x.csv", cfg.InputFile(types.TargetSouls, "x.csv"))
	require.Equal(t, "soul_results.csv", cfg.InputFile(types.FixedPulls, ""))
}
