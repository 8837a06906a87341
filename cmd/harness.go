package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/gaperf/gaperf/harness"
	"github.com/spf13/cobra"
)

var (
	// Flags for harness command
	harnessSource    string
	harnessOutputDir string
	harnessRuns      int
	harnessLanguages string
	harnessCPUs      int
	harnessMemoryGB  int
)

var harnessCmd = &cobra.Command{
	Use:   "harness",
	Short: "Benchmark every language implementation in Docker containers",
	Long: `Harness runs each language's One-Max benchmark inside a Docker
container with that language's toolchain image, captures the timing row
each implementation prints, and assembles benchmark_results.csv.

A language that fails to build or run yields a row of ERROR sentinels
instead of aborting the sweep; the analyze step drops such rows.`,
	Example: `  gaperf harness \
    --source ./implementations \
    --output-dir results/raw_data \
    --languages go,python,java \
    --cpus 2 --memory 4`,
	RunE: runHarness,
}

func init() {
	harnessCmd.Flags().StringVarP(&harnessSource, "source", "s", "./implementations", "Directory with the language implementations")
	harnessCmd.Flags().StringVarP(&harnessOutputDir, "output-dir", "o", "results/raw_data", "Directory to save the results file")
	harnessCmd.Flags().IntVarP(&harnessRuns, "runs", "n", 25, "Nominal runs per language (results row width)")
	harnessCmd.Flags().StringVar(&harnessLanguages, "languages", "", "Comma-separated subset of languages to run (default: all)")
	harnessCmd.Flags().IntVar(&harnessCPUs, "cpus", 0, "CPU limit per container (0 = unlimited)")
	harnessCmd.Flags().IntVar(&harnessMemoryGB, "memory", 0, "Memory limit per container in GB (0 = unlimited)")

	rootCmd.AddCommand(harnessCmd)
}

func runHarness(cmd *cobra.Command, args []string) error {
	languages, err := harness.SelectLanguages(harnessLanguages)
	if err != nil {
		return fmt.Errorf("error selecting languages: %w", err)
	}

	sourceDir, err := filepath.Abs(harnessSource)
	if err != nil {
		return fmt.Errorf("error resolving source directory: %w", err)
	}
	if _, err := os.Stat(sourceDir); err != nil {
		return fmt.Errorf("source directory not found: %s", sourceDir)
	}

	if err := os.MkdirAll(harnessOutputDir, 0755); err != nil {
		return fmt.Errorf("error creating output directory: %w", err)
	}

	config := harness.Config{
		Languages: languages,
		Runs:      harnessRuns,
		SourceDir: sourceDir,
		OutputDir: harnessOutputDir,
		CPUs:      harnessCPUs,
		MemoryGB:  harnessMemoryGB,
	}

	// Set up context with cancellation on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nReceived interrupt signal, cleaning up...")
		cancel()
	}()

	result, err := harness.Run(ctx, config)
	if err != nil {
		return fmt.Errorf("error running harness: %w", err)
	}

	harness.PrintSummary(result)

	resultsPath := filepath.Join(harnessOutputDir, harness.ResultsFileName)
	if err := harness.SaveResults(result, resultsPath); err != nil {
		return fmt.Errorf("error saving results file: %w", err)
	}
	fmt.Printf("\nResults saved to: %s\n", resultsPath)

	// Exit non-zero when any language failed entirely
	for _, r := range result.Results {
		if !r.Success {
			os.Exit(1)
		}
	}

	return nil
}
