package harness

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResultRow(t *testing.T) {
	output := "Go One-Max GA Performance Test\n" +
		"Running 3 tests...\n" +
		"Completed 3 runs\n" +
		"go,5.1,4.9,5.3\n"

	cells, err := ParseResultRow(output, "go", 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"5.1", "4.9", "5.3"}, cells)
}

func TestParseResultRowPadsShortRows(t *testing.T) {
	cells, err := ParseResultRow("go,5.1,4.9\n", "go", 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"5.1", "4.9", ErrorToken, ErrorToken, ErrorToken}, cells)
}

func TestParseResultRowTruncatesLongRows(t *testing.T) {
	cells, err := ParseResultRow("go,1,2,3,4,5\n", "go", 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, cells)
}

func TestParseResultRowKeepsErrorCells(t *testing.T) {
	cells, err := ParseResultRow("python,20.5,ERROR,19.8\n", "python", 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"20.5", "ERROR", "19.8"}, cells)
}

func TestParseResultRowMissing(t *testing.T) {
	_, err := ParseResultRow("no result line here\n", "go", 3)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no result row")
}

func TestParseResultRowIgnoresOtherLanguages(t *testing.T) {
	output := "python,1.0,2.0\ngo,5.1,4.9\n"

	cells, err := ParseResultRow(output, "go", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"5.1", "4.9"}, cells)
}

func TestErrorRow(t *testing.T) {
	cells := errorRow(4)
	assert.Equal(t, []string{"ERROR", "ERROR", "ERROR", "ERROR"}, cells)
	assert.Equal(t, strings.Repeat("ERROR,", 3)+"ERROR", strings.Join(cells, ","))
}
