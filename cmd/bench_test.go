package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendResultRowCreatesHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "benchmark_results.csv")

	require.NoError(t, appendResultRow(path, "go,5.1,4.9,5.3", 3))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "language,run1,run2,run3\ngo,5.1,4.9,5.3\n", string(content))
}

func TestAppendResultRowAppendsWithoutHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "benchmark_results.csv")

	require.NoError(t, appendResultRow(path, "go,5.1,4.9,5.3", 3))
	require.NoError(t, appendResultRow(path, "python,20.5,21.0,19.8", 3))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"language,run1,run2,run3\n"+
			"go,5.1,4.9,5.3\n"+
			"python,20.5,21.0,19.8\n",
		string(content))
}
