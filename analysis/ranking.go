package analysis

import "sort"

// RankedStats extends LanguageStats with the language's position in the
// overall ordering
type RankedStats struct {
	LanguageStats

	Rank          int     // 1 = fastest mean time
	RelativeSpeed float64 // Own mean / fastest mean; 1.0 for the fastest
}

// Rank orders languages by ascending mean time and annotates each with a
// dense rank and a speed factor relative to the fastest. Ties on the mean
// keep their input order; ranks are strictly increasing either way.
func Rank(stats []LanguageStats) []RankedStats {
	ranked := make([]RankedStats, len(stats))
	for i, s := range stats {
		ranked[i] = RankedStats{LanguageStats: s}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Mean < ranked[j].Mean
	})

	if len(ranked) == 0 {
		return ranked
	}

	fastest := ranked[0].Mean
	for i := range ranked {
		ranked[i].Rank = i + 1
		if fastest == 0 {
			// Degenerate zero-mean leader: factors are meaningless,
			// pin them to 1.0.
			ranked[i].RelativeSpeed = 1.0
		} else {
			ranked[i].RelativeSpeed = ranked[i].Mean / fastest
		}
	}
	ranked[0].RelativeSpeed = 1.0

	return ranked
}
