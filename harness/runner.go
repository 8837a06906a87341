package harness

import (
	"context"
	"fmt"
	"strings"
)

// LanguageResult holds one language's outcome: the raw result-row cells,
// padded with ERROR sentinels to the nominal run count
type LanguageResult struct {
	Language string
	Cells    []string
	Success  bool
	Error    string
}

// Result holds the complete harness output
type Result struct {
	Config  Config
	Results []LanguageResult
}

// Run benchmarks every configured language sequentially, each in its own
// container. A language failure never aborts the sweep; it yields an
// all-ERROR row so the analysis stage can drop it.
func Run(ctx context.Context, cfg Config) (*Result, error) {
	dockerClient, err := NewDockerClient()
	if err != nil {
		return nil, fmt.Errorf("failed to create Docker client: %w", err)
	}
	defer dockerClient.Close()

	fmt.Printf("\nBenchmark Harness\n")
	fmt.Printf("=================\n")
	fmt.Printf("Languages: %d\n", len(cfg.Languages))
	fmt.Printf("Runs:      %d per language\n", cfg.Runs)
	fmt.Printf("Sources:   %s\n\n", cfg.SourceDir)

	result := &Result{
		Config:  cfg,
		Results: make([]LanguageResult, 0, len(cfg.Languages)),
	}

	for i, lang := range cfg.Languages {
		fmt.Printf("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n")
		fmt.Printf("Language %d/%d: %s (%s)\n", i+1, len(cfg.Languages), lang.Name, lang.Image)
		fmt.Printf("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n\n")

		langResult := runLanguage(ctx, dockerClient, cfg, lang)
		result.Results = append(result.Results, langResult)

		if langResult.Success {
			fmt.Printf("\n✓ %s completed\n\n", lang.Name)
		} else {
			fmt.Printf("\n✗ %s failed: %s\n\n", lang.Name, langResult.Error)
		}
	}

	return result, nil
}

// runLanguage benchmarks a single language inside a fresh container
func runLanguage(ctx context.Context, dockerClient *DockerClient, cfg Config, lang Language) LanguageResult {
	result := LanguageResult{
		Language: lang.Name,
		Cells:    errorRow(cfg.Runs),
	}

	if err := dockerClient.EnsureImage(ctx, lang.Image); err != nil {
		result.Error = err.Error()
		return result
	}

	fmt.Printf("  Starting container...\n")
	container, err := dockerClient.CreateContainer(ctx, ContainerConfig{
		Image:     lang.Image,
		SourceDir: cfg.SourceDir,
		CPUs:      cfg.CPUs,
		MemoryGB:  cfg.MemoryGB,
	})
	if err != nil {
		result.Error = err.Error()
		return result
	}
	defer func() {
		fmt.Printf("  Stopping and removing container...\n")
		if err := container.Stop(ctx); err != nil {
			fmt.Printf("  Warning: failed to stop container: %v\n", err)
		}
	}()
	fmt.Printf("  Container started: %s\n", container.ID[:12])

	if lang.Setup != "" {
		fmt.Printf("  Running setup: %s\n", lang.Setup)
		setupResult, err := container.ExecShell(ctx, lang.Setup)
		if err != nil {
			result.Error = fmt.Sprintf("setup failed: %v", err)
			return result
		}
		if setupResult.ExitCode != 0 {
			result.Error = fmt.Sprintf("setup failed (exit code %d): %s", setupResult.ExitCode, setupResult.Stderr)
			return result
		}
	}

	fmt.Printf("  Running benchmark: %s\n", lang.Command)
	benchResult, err := container.ExecShell(ctx, lang.Command)
	if err != nil {
		result.Error = fmt.Sprintf("benchmark failed: %v", err)
		return result
	}
	if benchResult.ExitCode != 0 {
		result.Error = fmt.Sprintf("benchmark failed (exit code %d): %s", benchResult.ExitCode, benchResult.Stderr)
		return result
	}

	cells, err := ParseResultRow(benchResult.Stdout, lang.Name, cfg.Runs)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	result.Cells = cells
	result.Success = true
	return result
}

// ParseResultRow extracts the "name,t1,...,tN" line from benchmark output
// and normalizes it to exactly runs cells, padding short rows with ERROR
// sentinels and truncating long ones.
func ParseResultRow(output, name string, runs int) ([]string, error) {
	prefix := name + ","
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, prefix) {
			continue
		}

		cells := strings.Split(line, ",")[1:]
		for i := range cells {
			cells[i] = strings.TrimSpace(cells[i])
			if cells[i] == "" {
				cells[i] = ErrorToken
			}
		}
		for len(cells) < runs {
			cells = append(cells, ErrorToken)
		}
		return cells[:runs], nil
	}

	return nil, fmt.Errorf("no result row for %q in benchmark output", name)
}

func errorRow(runs int) []string {
	cells := make([]string, runs)
	for i := range cells {
		cells[i] = ErrorToken
	}
	return cells
}
