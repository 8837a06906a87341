package cmd

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/gaperf/gaperf/onemax"
	"github.com/spf13/cobra"
)

var (
	// Flags for bench command
	benchRuns      int
	benchOutputDir string
	benchSeed      int64
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run the built-in Go One-Max benchmark",
	Long: `Bench runs the built-in Go One-Max genetic algorithm the given
number of times and prints the timing row in the shared results format
(language identifier followed by per-run milliseconds). The row is also
appended to benchmark_results.csv in the output directory when set.`,
	Example: `  gaperf bench --runs 25 --output-dir results/raw_data`,
	RunE:    runBench,
}

func init() {
	benchCmd.Flags().IntVarP(&benchRuns, "runs", "n", 25, "Number of benchmark runs")
	benchCmd.Flags().StringVarP(&benchOutputDir, "output-dir", "o", "", "Directory whose benchmark_results.csv receives the row (optional)")
	benchCmd.Flags().Int64Var(&benchSeed, "seed", 0, "Random seed (default: current time)")

	rootCmd.AddCommand(benchCmd)
}

func runBench(cmd *cobra.Command, args []string) error {
	if benchRuns <= 0 {
		return fmt.Errorf("--runs/-n must be greater than 0")
	}

	seed := benchSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	result := onemax.Benchmark(onemax.DefaultConfig(), benchRuns, rng, os.Stdout)
	row := result.CSVRow()
	fmt.Println(row)

	if benchOutputDir == "" {
		return nil
	}

	if err := os.MkdirAll(benchOutputDir, 0755); err != nil {
		return fmt.Errorf("error creating output directory: %w", err)
	}

	path := filepath.Join(benchOutputDir, "benchmark_results.csv")
	if err := appendResultRow(path, row, benchRuns); err != nil {
		return fmt.Errorf("error writing results row: %w", err)
	}
	fmt.Printf("Results row appended to: %s\n", path)
	return nil
}

// appendResultRow adds a row to the results file, writing the header first
// when the file does not exist yet
func appendResultRow(path, row string, runs int) error {
	_, statErr := os.Stat(path)

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer file.Close()

	if os.IsNotExist(statErr) {
		header := "language"
		for i := 1; i <= runs; i++ {
			header += fmt.Sprintf(",run%d", i)
		}
		if _, err := fmt.Fprintln(file, header); err != nil {
			return err
		}
	}

	_, err = fmt.Fprintln(file, row)
	return err
}
