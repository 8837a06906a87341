package harness

import (
	"encoding/csv"
	"fmt"
	"os"
)

// ResultsFileName is the raw dataset consumed by the analysis pipeline
const ResultsFileName = "benchmark_results.csv"

// SaveResults writes the assembled results file: a "language,run1,...,runN"
// header followed by one row per benchmarked language.
func SaveResults(result *Result, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create results file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := make([]string, 0, result.Config.Runs+1)
	header = append(header, "language")
	for i := 1; i <= result.Config.Runs; i++ {
		header = append(header, fmt.Sprintf("run%d", i))
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, lang := range result.Results {
		record := append([]string{lang.Language}, lang.Cells...)
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	return nil
}

// PrintSummary lists per-language outcomes after a harness sweep
func PrintSummary(result *Result) {
	fmt.Printf("\nHarness Summary\n")
	fmt.Printf("===============\n")
	for _, lang := range result.Results {
		if lang.Success {
			valid := 0
			for _, cell := range lang.Cells {
				if cell != ErrorToken {
					valid++
				}
			}
			fmt.Printf("✓ %-12s %d/%d runs\n", lang.Language, valid, result.Config.Runs)
		} else {
			fmt.Printf("✗ %-12s %s\n", lang.Language, lang.Error)
		}
	}
}
