// Package harness runs each language's One-Max benchmark inside a Docker
// container and assembles the raw results file consumed by the analysis
// pipeline.
package harness

import (
	"fmt"
	"strings"
)

// ErrorToken is the sentinel written for a failed or missing measurement
const ErrorToken = "ERROR"

// Language describes how to benchmark one implementation
type Language struct {
	Name    string // Identifier used in the results file
	Image   string // Docker image with the language toolchain
	Setup   string // Optional one-time shell command (compile step)
	Command string // Shell command that prints the "name,t1,...,tN" row
}

// Config holds the harness configuration
type Config struct {
	Languages []Language
	Runs      int    // Nominal runs per language (results row width)
	SourceDir string // Host directory with the implementations, mounted read-only
	OutputDir string // Directory for the assembled results file
	CPUs      int    // CPU limit per container; 0 = unlimited
	MemoryGB  int    // Memory limit per container in GB; 0 = unlimited
}

// DefaultLanguages returns the built-in implementation matrix
func DefaultLanguages() []Language {
	return []Language{
		{
			Name:    "go",
			Image:   "golang:1.24",
			Command: "go run implementations/go/onemax_ga.go",
		},
		{
			Name:    "python",
			Image:   "python:3.12",
			Command: "python3 implementations/python/run_tests.py",
		},
		{
			Name:    "pypy",
			Image:   "pypy:3.10",
			Command: "pypy3 implementations/python/onemax_ga_pypy.py",
		},
		{
			Name:    "java",
			Image:   "eclipse-temurin:21",
			Setup:   "javac implementations/java/*.java",
			Command: "java -cp implementations/java RunTests",
		},
	}
}

// SelectLanguages filters the built-in matrix by a comma-separated name
// list; an empty selector keeps everything.
func SelectLanguages(selector string) ([]Language, error) {
	all := DefaultLanguages()
	if strings.TrimSpace(selector) == "" {
		return all, nil
	}

	byName := make(map[string]Language, len(all))
	for _, lang := range all {
		byName[lang.Name] = lang
	}

	names := strings.Split(selector, ",")
	selected := make([]Language, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		lang, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("unknown language %q (available: %s)", name, availableNames(all))
		}
		selected = append(selected, lang)
	}
	if len(selected) == 0 {
		return nil, fmt.Errorf("no languages selected")
	}
	return selected, nil
}

func availableNames(langs []Language) string {
	names := make([]string, len(langs))
	for i, lang := range langs {
		names[i] = lang.Name
	}
	return strings.Join(names, ", ")
}
