package analysis

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeResultsFile(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "benchmark_results.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRunWritesAllArtifacts(t *testing.T) {
	dir := t.TempDir()
	input := writeResultsFile(t, dir, "language,run1,run2,run3\n"+
		"go,5.1,4.9,5.0\n"+
		"python,20.5,21.0,19.8\n")
	outDir := filepath.Join(dir, "analysis")

	result, err := Run(Config{InputPath: input, OutputDir: outDir, Confidence: 0.95})
	require.NoError(t, err)
	require.Len(t, result.Ranked, 2)

	for _, name := range []string{StatsFileName, ReportFileName, ChartFileName} {
		info, err := os.Stat(filepath.Join(outDir, name))
		require.NoError(t, err, "expected artifact %s", name)
		assert.Greater(t, info.Size(), int64(0))
	}

	// The persisted table matches the ranked output
	content, err := os.ReadFile(filepath.Join(outDir, StatsFileName))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	require.Len(t, lines, 3) // header plus one row per language
	assert.Contains(t, lines[0], "rank,language,mean_ms")
	assert.True(t, strings.HasPrefix(lines[1], "1,go,"))
	assert.True(t, strings.HasPrefix(lines[2], "2,python,"))

	// The persisted report matches the in-memory one
	report, err := os.ReadFile(filepath.Join(outDir, ReportFileName))
	require.NoError(t, err)
	assert.Equal(t, result.Report, string(report))
}

func TestRunMissingInputWritesNothing(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "analysis")

	_, err := Run(Config{
		InputPath: filepath.Join(dir, "missing.csv"),
		OutputDir: outDir,
	})
	require.ErrorIs(t, err, ErrMissingInput)

	_, statErr := os.Stat(outDir)
	assert.True(t, os.IsNotExist(statErr), "no artifacts may be written on a fatal path")
}

func TestRunEmptyDatasetWritesNothing(t *testing.T) {
	dir := t.TempDir()
	input := writeResultsFile(t, dir, "language,run1,run2\n"+
		"go,ERROR,ERROR\n")
	outDir := filepath.Join(dir, "analysis")

	_, err := Run(Config{InputPath: input, OutputDir: outDir})
	require.ErrorIs(t, err, ErrEmptyDataset)

	_, statErr := os.Stat(outDir)
	assert.True(t, os.IsNotExist(statErr))
}

func TestAnalyzeDefaultsConfidence(t *testing.T) {
	dataset, err := ParseDataset(strings.NewReader("language,run1,run2,run3\ngo,5.1,4.9,5.0\n"))
	require.NoError(t, err)

	explicit := Analyze(dataset, 0.95)
	defaulted := Analyze(dataset, 0)

	assert.Equal(t, explicit.Ranked, defaulted.Ranked)
}

func TestAnalyzeSingleLanguage(t *testing.T) {
	dataset, err := ParseDataset(strings.NewReader("language,run1,run2,run3\ngo,5.1,4.9,5.0\n"))
	require.NoError(t, err)

	result := Analyze(dataset, 0.95)

	require.Len(t, result.Ranked, 1)
	assert.Equal(t, 1, result.Ranked[0].Rank)
	assert.Equal(t, 1.0, result.Ranked[0].RelativeSpeed)
	assert.Contains(t, result.Report, "Fastest: go")
	assert.Contains(t, result.Report, "Slowest: go")
}
