// Package loc counts executable lines of code for the language
// implementations, excluding comments, docstrings, and blank lines.
package loc

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/tabwriter"
)

// commentStyle describes how a language family marks non-executable lines
type commentStyle int

const (
	cStyle    commentStyle = iota // //  /* */   (go, java, csharp, typescript, swift)
	hashStyle                     // #  ''' """  (python, julia, shell)
	semiStyle                     // ;           (clojure, lisp)
)

var styleByExtension = map[string]commentStyle{
	".go":    cStyle,
	".java":  cStyle,
	".cs":    cStyle,
	".ts":    cStyle,
	".swift": cStyle,
	".fs":    cStyle,
	".py":    hashStyle,
	".jl":    hashStyle,
	".sh":    hashStyle,
	".clj":   semiStyle,
}

// Count is the executable-line total for one source file
type Count struct {
	Path     string
	Language string
	Lines    int
}

// CountReader counts executable lines in a single source stream
func CountReader(r io.Reader, style commentStyle) (int, error) {
	scanner := bufio.NewScanner(r)

	lines := 0
	inBlockComment := false
	inDocstring := false

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch style {
		case cStyle:
			switch {
			case inBlockComment:
				if strings.Contains(line, "*/") {
					inBlockComment = false
				}
			case strings.HasPrefix(line, "//"), strings.HasPrefix(line, "*"):
			case strings.HasPrefix(line, "/*"):
				if !strings.Contains(line, "*/") {
					inBlockComment = true
				}
			default:
				lines++
			}

		case hashStyle:
			switch {
			case inDocstring:
				if strings.Contains(line, `"""`) || strings.Contains(line, "'''") {
					inDocstring = false
				}
			case strings.HasPrefix(line, "#"):
			case strings.HasPrefix(line, `"""`), strings.HasPrefix(line, "'''"):
				// A one-line docstring opens and closes on the same line
				if strings.Count(line, `"""`)+strings.Count(line, "'''") < 2 {
					inDocstring = true
				}
			default:
				lines++
			}

		case semiStyle:
			if !strings.HasPrefix(line, ";") {
				lines++
			}
		}
	}

	return lines, scanner.Err()
}

// CountFile counts executable lines in one source file, inferring the
// comment style from the extension
func CountFile(path string) (Count, error) {
	style, ok := styleByExtension[filepath.Ext(path)]
	if !ok {
		return Count{}, fmt.Errorf("unsupported source file type: %s", path)
	}

	file, err := os.Open(path)
	if err != nil {
		return Count{}, fmt.Errorf("failed to open source file: %w", err)
	}
	defer file.Close()

	lines, err := CountReader(file, style)
	if err != nil {
		return Count{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return Count{Path: path, Lines: lines}, nil
}

// CountTree walks an implementations directory laid out as
// <root>/<language>/<sources> and returns per-file counts labeled with the
// language directory name. Unsupported file types are skipped.
func CountTree(root string) ([]Count, error) {
	var counts []Count

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if _, ok := styleByExtension[filepath.Ext(path)]; !ok {
			return nil
		}

		count, err := CountFile(path)
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		count.Path = rel
		if parts := strings.SplitN(rel, string(filepath.Separator), 2); len(parts) == 2 {
			count.Language = parts[0]
		}

		counts = append(counts, count)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}

	sort.Slice(counts, func(i, j int) bool { return counts[i].Path < counts[j].Path })
	return counts, nil
}

// PrintReport writes per-file counts and per-language totals
func PrintReport(w io.Writer, counts []Count) {
	fmt.Fprintf(w, "Lines of Code Comparison\n")
	fmt.Fprintf(w, "========================\n\n")

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Language\tFile\tLines\n")
	fmt.Fprintf(tw, "--------\t----\t-----\n")

	totals := make(map[string]int)
	var languages []string
	for _, c := range counts {
		fmt.Fprintf(tw, "%s\t%s\t%d\n", c.Language, c.Path, c.Lines)
		if _, seen := totals[c.Language]; !seen {
			languages = append(languages, c.Language)
		}
		totals[c.Language] += c.Lines
	}
	tw.Flush()

	fmt.Fprintf(w, "\nTotals\n")
	fmt.Fprintf(w, "------\n")
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, lang := range languages {
		fmt.Fprintf(tw, "%s\t%d\n", lang, totals[lang])
	}
	tw.Flush()
}
