package analysis

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTestResult(t *testing.T, input string) *Result {
	t.Helper()
	dataset, err := ParseDataset(strings.NewReader(input))
	require.NoError(t, err)
	return Analyze(dataset, 0.95)
}

func TestReportSections(t *testing.T) {
	result := buildTestResult(t, "language,run1,run2,run3\n"+
		"go,5.1,4.9,5.0\n"+
		"python,20.5,21.0,19.8\n")

	report := result.Report

	assert.Contains(t, report, "OVERVIEW:")
	assert.Contains(t, report, "Languages tested: 2")
	assert.Contains(t, report, "Runs per language: 3 (target)")
	assert.Contains(t, report, "PERFORMANCE RANKING")
	assert.Contains(t, report, "STATISTICAL INSIGHTS:")
	assert.Contains(t, report, "Fastest: go")
	assert.Contains(t, report, "Slowest: python")
	assert.Contains(t, report, "Most consistent:")
	assert.Contains(t, report, "Least consistent:")
	assert.Contains(t, report, "DETAILED STATISTICS:")
	assert.Contains(t, report, "GO:")
	assert.Contains(t, report, "PYTHON:")
	assert.Contains(t, report, "95% CI:")
}

func TestReportCompletenessMarker(t *testing.T) {
	// 25 cells, one ERROR: 24 valid runs must be flagged
	cells := make([]string, 25)
	for i := range cells {
		cells[i] = "5.0"
	}
	cells[3] = "ERROR"

	header := "language"
	for i := 1; i <= 25; i++ {
		header += ",run" + strconv.Itoa(i)
	}
	input := header + "\ngo," + strings.Join(cells, ",") + "\n"

	result := buildTestResult(t, input)

	assert.Equal(t, 24, result.Ranked[0].ValidRuns)
	assert.Contains(t, result.Report, "(24/25)")
	assert.Contains(t, result.Report, "⚠")
}

func TestReportFullRunsUnflagged(t *testing.T) {
	result := buildTestResult(t, "language,run1,run2,run3\n"+
		"go,5.1,4.9,5.0\n")

	assert.Contains(t, result.Report, "✓")
	assert.NotContains(t, result.Report, "⚠")
}

func TestReportLowConfidenceNote(t *testing.T) {
	result := buildTestResult(t, "language,run1,run2\n"+
		"go,5.1,4.9\n"+
		"swift,7.5,ERROR\n")

	assert.Contains(t, result.Report, "⚠ (1/2)")
	assert.Contains(t, result.Report, "low confidence")
}

func TestReportDeterministic(t *testing.T) {
	input := "language,run1,run2,run3\n" +
		"go,5.1,4.9,5.0\n" +
		"python,20.5,21.0,19.8\n" +
		"java,8.0,8.2,7.9\n"

	first := buildTestResult(t, input)
	second := buildTestResult(t, input)

	assert.Equal(t, first.Report, second.Report)
}

func TestReportHeadToHead(t *testing.T) {
	result := buildTestResult(t, "language,run1,run2,run3\n"+
		"go,5.1,4.9,5.0\n"+
		"java,8.0,8.2,7.9\n"+
		"python,20.5,21.0,19.8\n")

	assert.Contains(t, result.Report, "Head-to-head (go vs java)")
}
