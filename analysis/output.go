package analysis

import (
	"encoding/csv"
	"fmt"
	"os"
)

// SaveStatsCSV persists the ranked statistics table, one row per language
func SaveStatsCSV(ranked []RankedStats, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create statistics file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{
		"rank", "language", "mean_ms", "std_dev_ms", "median_ms",
		"min_ms", "max_ms", "valid_runs", "cv_percent",
		"ci_lower_ms", "ci_upper_ms", "ci_width_ms", "relative_speed",
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, r := range ranked {
		record := []string{
			fmt.Sprintf("%d", r.Rank),
			r.Language,
			fmt.Sprintf("%.6f", r.Mean),
			fmt.Sprintf("%.6f", r.StdDev),
			fmt.Sprintf("%.6f", r.Median),
			fmt.Sprintf("%.6f", r.Min),
			fmt.Sprintf("%.6f", r.Max),
			fmt.Sprintf("%d", r.ValidRuns),
			fmt.Sprintf("%.6f", r.CV),
			fmt.Sprintf("%.6f", r.CILower),
			fmt.Sprintf("%.6f", r.CIUpper),
			fmt.Sprintf("%.6f", r.CIWidth),
			fmt.Sprintf("%.6f", r.RelativeSpeed),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	return nil
}

// SaveReport persists the text summary
func SaveReport(report string, filename string) error {
	if err := os.WriteFile(filename, []byte(report), 0644); err != nil {
		return fmt.Errorf("failed to write report file: %w", err)
	}
	return nil
}
