package analysis

import (
	"fmt"
	"strings"
	"text/tabwriter"
)

// BuildReport renders the full text summary: overview, ranking table,
// global extremes, consistency extremes, and per-language detail blocks.
// The output depends only on the dataset and ranking passed in.
func BuildReport(dataset *Dataset, ranked []RankedStats) string {
	var b strings.Builder

	b.WriteString("GENETIC ALGORITHM PERFORMANCE COMPARISON SUMMARY\n")
	b.WriteString(strings.Repeat("=", 60) + "\n\n")

	b.WriteString("OVERVIEW:\n")
	fmt.Fprintf(&b, "  Languages tested: %d\n", len(ranked))
	fmt.Fprintf(&b, "  Runs per language: %d (target)\n", dataset.Runs)
	b.WriteString("  Algorithm: One-Max Problem Genetic Algorithm\n")
	b.WriteString("  Problem size: 100-bit binary strings\n\n")

	b.WriteString("PERFORMANCE RANKING (by mean execution time):\n")
	b.WriteString(strings.Repeat("-", 50) + "\n")

	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Rank\tLanguage\tMean\tSpeed\tRuns\n")
	for _, r := range ranked {
		fmt.Fprintf(w, "%d.\t%s\t%.2f ms\t%.2fx\t%s\n",
			r.Rank, r.Language, r.Mean, r.RelativeSpeed, completeness(r.LanguageStats, dataset.Runs))
	}
	w.Flush()
	b.WriteString("\n")

	b.WriteString("STATISTICAL INSIGHTS:\n")
	b.WriteString(strings.Repeat("-", 30) + "\n")

	fastest := ranked[0]
	slowest := ranked[len(ranked)-1]
	fmt.Fprintf(&b, "  Fastest: %s (%.2f ms)\n", fastest.Language, fastest.Mean)
	fmt.Fprintf(&b, "  Slowest: %s (%.2f ms)\n", slowest.Language, slowest.Mean)
	fmt.Fprintf(&b, "  Speed difference: %.2fx\n\n", slowest.RelativeSpeed)

	most, least := consistencyExtremes(ranked)
	fmt.Fprintf(&b, "  Most consistent: %s (CV: %.2f%%)\n", most.Language, most.CV)
	fmt.Fprintf(&b, "  Least consistent: %s (CV: %.2f%%)\n", least.Language, least.CV)

	if len(ranked) >= 2 {
		runnerUp := ranked[1]
		p, ok := WelchP(dataset.Samples[fastest.Language], dataset.Samples[runnerUp.Language])
		if ok {
			fmt.Fprintf(&b, "  Head-to-head (%s vs %s): Welch's t-test p = %.4f\n",
				fastest.Language, runnerUp.Language, p)
		}
	}
	b.WriteString("\n")

	b.WriteString("DETAILED STATISTICS:\n")
	b.WriteString(strings.Repeat("-", 25) + "\n")
	for _, r := range ranked {
		fmt.Fprintf(&b, "%s:\n", strings.ToUpper(r.Language))
		fmt.Fprintf(&b, "  Mean: %8.2f ms\n", r.Mean)
		fmt.Fprintf(&b, "  Std:  %8.2f ms\n", r.StdDev)
		fmt.Fprintf(&b, "  95%% CI: [%6.2f, %6.2f] ms\n", r.CILower, r.CIUpper)
		fmt.Fprintf(&b, "  Range: [%6.2f, %6.2f] ms\n", r.Min, r.Max)
		fmt.Fprintf(&b, "  Runs: %d/%d\n", r.ValidRuns, dataset.Runs)
		if r.LowConfidence {
			b.WriteString("  Note: low confidence (insufficient samples for interval estimation)\n")
		}
		b.WriteString("\n")
	}

	return b.String()
}

// completeness renders the ranking table marker: a check for a full set of
// valid runs, a warning with the actual count otherwise.
func completeness(s LanguageStats, nominalRuns int) string {
	if s.ValidRuns == nominalRuns && !s.LowConfidence {
		return "✓"
	}
	return fmt.Sprintf("⚠ (%d/%d)", s.ValidRuns, nominalRuns)
}

// consistencyExtremes finds the languages with the lowest and highest
// coefficient of variation. Earlier (faster) languages win ties so the
// result is stable.
func consistencyExtremes(ranked []RankedStats) (most, least RankedStats) {
	most, least = ranked[0], ranked[0]
	for _, r := range ranked[1:] {
		if r.CV < most.CV {
			most = r
		}
		if r.CV > least.CV {
			least = r
		}
	}
	return most, least
}
