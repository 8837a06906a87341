package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "gaperf",
	Short: "Benchmark and compare One-Max genetic algorithm implementations",
	Long: `Gaperf benchmarks a One-Max genetic algorithm across language
implementations and aggregates the timing results into statistics, a
ranking, a text report, and a comparison chart.

Run the built-in Go benchmark:
  gaperf bench --output results/raw_data

Benchmark every language in Docker containers:
  gaperf harness --source ./implementations --output results/raw_data

Analyze collected results:
  gaperf analyze --input results/raw_data/benchmark_results.csv`,
	Version: Version,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// SetVersion sets the version string (called from main)
func SetVersion(v string) {
	Version = v
	rootCmd.Version = v
}
