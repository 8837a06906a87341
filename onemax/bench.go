package onemax

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"
)

// RunResult holds the outcome of a single timed GA run
type RunResult struct {
	Generations int
	BestFitness int
	ElapsedMs   float64
}

// BenchResult holds the complete local benchmark output
type BenchResult struct {
	Language string
	Runs     []RunResult
}

// Times returns the elapsed milliseconds of every run, in run order
func (b *BenchResult) Times() []float64 {
	times := make([]float64, len(b.Runs))
	for i, r := range b.Runs {
		times[i] = r.ElapsedMs
	}
	return times
}

// CSVRow renders the benchmark as a results-file row: the language
// identifier followed by one 6-decimal milliseconds value per run.
func (b *BenchResult) CSVRow() string {
	fields := make([]string, 0, len(b.Runs)+1)
	fields = append(fields, b.Language)
	for _, r := range b.Runs {
		fields = append(fields, fmt.Sprintf("%.6f", r.ElapsedMs))
	}
	return strings.Join(fields, ",")
}

// Benchmark executes the GA the given number of times and reports per-run
// progress to w. Each run uses a fresh population from the shared rng.
func Benchmark(cfg Config, runs int, rng *rand.Rand, w io.Writer) *BenchResult {
	fmt.Fprintln(w, "Go One-Max GA Performance Test")
	fmt.Fprintf(w, "Running %d tests...\n", runs)

	result := &BenchResult{
		Language: "go",
		Runs:     make([]RunResult, 0, runs),
	}

	ga := New(cfg, rng)
	for i := 0; i < runs; i++ {
		start := time.Now()
		generations, best := ga.Run()
		elapsed := float64(time.Since(start).Nanoseconds()) / 1e6

		result.Runs = append(result.Runs, RunResult{
			Generations: generations,
			BestFitness: best,
			ElapsedMs:   elapsed,
		})
		fmt.Fprintf(w, "Run %d: %.3f ms (%d generations, best %d)\n", i+1, elapsed, generations, best)
	}

	fmt.Fprintf(w, "Completed %d runs\n", runs)
	return result
}
