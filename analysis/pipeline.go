package analysis

import (
	"fmt"
	"os"
	"path/filepath"
)

// Config holds the analysis pipeline configuration
type Config struct {
	InputPath  string  // Benchmark results CSV
	OutputDir  string  // Directory for persisted artifacts
	Confidence float64 // Confidence level for mean intervals, e.g. 0.95
}

// Artifact filenames written under Config.OutputDir
const (
	StatsFileName  = "detailed_statistics.csv"
	ReportFileName = "performance_summary.txt"
	ChartFileName  = "performance_comparison.png"
)

// Result holds the complete analysis output
type Result struct {
	Dataset *Dataset
	Stats   []LanguageStats
	Ranked  []RankedStats
	Report  string
}

// DefaultConfidence is the two-sided confidence level used when the config
// leaves it unset.
const DefaultConfidence = 0.95

// Analyze runs the in-memory pipeline over an already-loaded dataset:
// per-language statistics, ranking, and the text report.
func Analyze(dataset *Dataset, confidence float64) *Result {
	if confidence <= 0 || confidence >= 1 {
		confidence = DefaultConfidence
	}

	stats := make([]LanguageStats, 0, len(dataset.Languages))
	for _, language := range dataset.Languages {
		stats = append(stats, ComputeStats(language, dataset.Samples[language], confidence))
	}

	ranked := Rank(stats)

	return &Result{
		Dataset: dataset,
		Stats:   stats,
		Ranked:  ranked,
		Report:  BuildReport(dataset, ranked),
	}
}

// Run executes the full pipeline: load the results file, compute statistics
// and ranking, and persist the statistics table, text report, and comparison
// chart under cfg.OutputDir. Nothing is written when loading fails.
func Run(cfg Config) (*Result, error) {
	dataset, err := LoadCSV(cfg.InputPath)
	if err != nil {
		return nil, err
	}

	result := Analyze(dataset, cfg.Confidence)

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	statsPath := filepath.Join(cfg.OutputDir, StatsFileName)
	if err := SaveStatsCSV(result.Ranked, statsPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to save statistics table: %v\n", err)
	} else {
		fmt.Printf("Detailed statistics saved to: %s\n", statsPath)
	}

	reportPath := filepath.Join(cfg.OutputDir, ReportFileName)
	if err := SaveReport(result.Report, reportPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to save summary report: %v\n", err)
	} else {
		fmt.Printf("Summary report saved to: %s\n", reportPath)
	}

	chartPath := filepath.Join(cfg.OutputDir, ChartFileName)
	if err := SaveChart(result.Dataset, result.Ranked, chartPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to save performance chart: %v\n", err)
	} else {
		fmt.Printf("Performance chart saved to: %s\n", chartPath)
	}

	return result, nil
}
