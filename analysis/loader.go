package analysis

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

var (
	// ErrMissingInput indicates the benchmark results file does not exist
	ErrMissingInput = errors.New("benchmark results file not found")

	// ErrEmptyDataset indicates the results file contained no usable samples
	ErrEmptyDataset = errors.New("no valid benchmark data found")
)

// Dataset holds the cleaned per-language timing samples
type Dataset struct {
	// Languages preserves the original file order of retained rows
	Languages []string

	// Samples maps each retained language to its valid timings in
	// milliseconds, in run order. Cells that failed numeric parsing
	// (error sentinels, empty cells) are dropped.
	Samples map[string][]float64

	// Runs is the number of run columns in the file
	Runs int
}

// LoadCSV reads and cleans the benchmark results file
func LoadCSV(path string) (*Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w at %s (run the benchmark harness first: gaperf harness)", ErrMissingInput, path)
		}
		return nil, fmt.Errorf("failed to open results file: %w", err)
	}
	defer file.Close()

	return ParseDataset(file)
}

// ParseDataset parses benchmark results from a reader. The expected schema
// is a header row "language,run1,...,runN" followed by one row per language.
func ParseDataset(r io.Reader) (*Dataset, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // validated per row below

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: results file is empty", ErrEmptyDataset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	if len(header) < 2 || !strings.EqualFold(strings.TrimSpace(header[0]), "language") {
		return nil, fmt.Errorf("invalid header: expected 'language,run1,...', got %q", strings.Join(header, ","))
	}

	runs := len(header) - 1

	dataset := &Dataset{
		Samples: make(map[string][]float64),
		Runs:    runs,
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read results row: %w", err)
		}

		language := strings.TrimSpace(record[0])
		if language == "" {
			continue
		}
		if _, exists := dataset.Samples[language]; exists {
			return nil, fmt.Errorf("duplicate language %q in results file", language)
		}

		samples := parseSamples(record[1:])
		if len(samples) == 0 {
			// All cells failed: the language ran nothing usable and
			// contributes nothing downstream.
			continue
		}

		dataset.Languages = append(dataset.Languages, language)
		dataset.Samples[language] = samples
	}

	if len(dataset.Languages) == 0 {
		return nil, fmt.Errorf("%w: every row was excluded after cleaning", ErrEmptyDataset)
	}

	return dataset, nil
}

// parseSamples converts raw cells to milliseconds, dropping anything that
// is not a finite number (ERROR sentinels, empty cells, garbage).
func parseSamples(cells []string) []float64 {
	samples := make([]float64, 0, len(cells))
	for _, cell := range cells {
		value, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
		if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
			continue
		}
		samples = append(samples, value)
	}
	return samples
}
