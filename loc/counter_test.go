package loc

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountReaderCStyle(t *testing.T) {
	src := `// package comment
package main

/*
multi line
comment
*/
func main() {
	x := 1 // trailing comments still count the line
	_ = x
}
`
	lines, err := CountReader(strings.NewReader(src), cStyle)
	require.NoError(t, err)
	assert.Equal(t, 5, lines) // package, func, x :=, _ =, closing brace
}

func TestCountReaderHashStyle(t *testing.T) {
	src := `#!/usr/bin/env python3
"""
Module docstring
spanning lines
"""
import time

def main():
    # comment
    x = 1
    return x
`
	lines, err := CountReader(strings.NewReader(src), hashStyle)
	require.NoError(t, err)
	assert.Equal(t, 4, lines) // import, def, x =, return
}

func TestCountReaderOneLineDocstring(t *testing.T) {
	src := `"""one line docstring"""
x = 1
`
	lines, err := CountReader(strings.NewReader(src), hashStyle)
	require.NoError(t, err)
	assert.Equal(t, 1, lines)
}

func TestCountReaderSemiStyle(t *testing.T) {
	src := `; comment
(defn fitness [ind]
  (reduce + ind))
`
	lines, err := CountReader(strings.NewReader(src), semiStyle)
	require.NoError(t, err)
	assert.Equal(t, 2, lines)
}

func TestCountTree(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "go"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "python"), 0755))

	goSrc := "package main\n\n// comment\nfunc main() {}\n"
	pySrc := "# comment\nx = 1\n"
	readme := "not source\n"

	require.NoError(t, os.WriteFile(filepath.Join(root, "go", "main.go"), []byte(goSrc), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "python", "main.py"), []byte(pySrc), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "README.md"), []byte(readme), 0644))

	counts, err := CountTree(root)
	require.NoError(t, err)
	require.Len(t, counts, 2)

	byLang := make(map[string]int)
	for _, c := range counts {
		byLang[c.Language] = c.Lines
	}
	assert.Equal(t, 2, byLang["go"])
	assert.Equal(t, 1, byLang["python"])
}

func TestCountFileUnsupportedType(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello\n"), 0644))

	_, err := CountFile(path)
	require.Error(t, err)
}

func TestPrintReportTotals(t *testing.T) {
	counts := []Count{
		{Path: "go/main.go", Language: "go", Lines: 120},
		{Path: "python/main.py", Language: "python", Lines: 85},
	}

	var out bytes.Buffer
	PrintReport(&out, counts)

	report := out.String()
	assert.Contains(t, report, "Lines of Code Comparison")
	assert.Contains(t, report, "go/main.go")
	assert.Contains(t, report, "120")
	assert.Contains(t, report, "85")
	assert.Contains(t, report, "Totals")
}
