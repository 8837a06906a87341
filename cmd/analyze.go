package cmd

import (
	"fmt"

	"github.com/gaperf/gaperf/analysis"
	"github.com/spf13/cobra"
)

var (
	// Flags for analyze command
	analyzeInput      string
	analyzeOutputDir  string
	analyzeConfidence float64
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze benchmark results into statistics, a ranking, and a chart",
	Long: `Analyze reads the raw benchmark results file, computes per-language
statistics (mean, stddev, median, min/max, CV, 95% confidence interval),
ranks languages by mean execution time, and persists a statistics table,
a text summary, and a two-panel comparison chart.

Cells that failed to record a timing (ERROR sentinels) are skipped;
languages with no valid runs at all are excluded from the analysis.`,
	Example: `  gaperf analyze \
    --input results/raw_data/benchmark_results.csv \
    --output-dir results/analysis`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeInput, "input", "i", "results/raw_data/benchmark_results.csv", "Benchmark results CSV to analyze")
	analyzeCmd.Flags().StringVarP(&analyzeOutputDir, "output-dir", "o", "results/analysis", "Directory to save analysis artifacts")
	analyzeCmd.Flags().Float64Var(&analyzeConfidence, "confidence", analysis.DefaultConfidence, "Confidence level for mean intervals")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	fmt.Printf("Starting Genetic Algorithm Performance Analysis...\n")
	fmt.Printf("--------------------------------------------------\n")

	result, err := analysis.Run(analysis.Config{
		InputPath:  analyzeInput,
		OutputDir:  analyzeOutputDir,
		Confidence: analyzeConfidence,
	})
	if err != nil {
		return err
	}

	fmt.Printf("\n%s", result.Report)
	return nil
}
