package analysis

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func saveTestChart(t *testing.T, input string) string {
	t.Helper()
	dataset, err := ParseDataset(strings.NewReader(input))
	require.NoError(t, err)
	result := Analyze(dataset, 0.95)

	path := filepath.Join(t.TempDir(), "chart.png")
	require.NoError(t, SaveChart(dataset, result.Ranked, path))
	return path
}

func TestSaveChartProducesValidPNG(t *testing.T) {
	path := saveTestChart(t, "language,run1,run2,run3\n"+
		"go,5.1,4.9,5.0\n"+
		"python,20.5,21.0,19.8\n"+
		"java,8.0,8.2,7.9\n")

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	img, err := png.Decode(file)
	require.NoError(t, err)

	// Two side-by-side panels
	assert.Equal(t, 2*panelWidth, img.Bounds().Dx())
	assert.Equal(t, panelHeight, img.Bounds().Dy())
}

func TestSaveChartSingleLanguage(t *testing.T) {
	saveTestChart(t, "language,run1,run2,run3\ngo,5.1,4.9,5.0\n")
}

func TestSaveChartSingleSample(t *testing.T) {
	// One language with one valid run: point interval, zero CI width
	saveTestChart(t, "language,run1,run2\n"+
		"go,5.1,4.9\n"+
		"swift,7.5,ERROR\n")
}

func TestSaveChartFlatSamples(t *testing.T) {
	// Zero variance must not degenerate the y-axis range
	saveTestChart(t, "language,run1,run2,run3\ngo,5.0,5.0,5.0\n")
}
