package analysis

import (
	"math"
	"sort"

	moremath "github.com/aclements/go-moremath/stats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// LanguageStats holds calculated statistical metrics for one language
type LanguageStats struct {
	Language  string
	Mean      float64 // Mean duration in milliseconds
	StdDev    float64 // Sample standard deviation (n-1) in milliseconds
	Median    float64 // Median duration in milliseconds
	Min       float64 // Minimum duration in milliseconds
	Max       float64 // Maximum duration in milliseconds
	ValidRuns int     // Number of valid samples
	CV        float64 // Coefficient of variation in percent
	CILower   float64 // Lower bound of the confidence interval for the mean
	CIUpper   float64 // Upper bound of the confidence interval for the mean
	CIWidth   float64 // CIUpper - CILower

	// LowConfidence marks degenerate inputs (a single sample, or a zero
	// mean) where stddev/CV/CI fall back to defined zero values instead
	// of a real estimate.
	LowConfidence bool
}

// ComputeStats calculates all statistical metrics for one language's valid
// samples. confidence is the two-sided confidence level for the mean's
// interval, e.g. 0.95. samples must be non-empty.
func ComputeStats(language string, samples []float64, confidence float64) LanguageStats {
	n := len(samples)

	s := LanguageStats{
		Language:  language,
		ValidRuns: n,
	}
	if n == 0 {
		return s
	}

	s.Mean = stat.Mean(samples, nil)

	sorted := make([]float64, n)
	copy(sorted, samples)
	sort.Float64s(sorted)
	s.Min = sorted[0]
	s.Max = sorted[n-1]

	sample := moremath.Sample{Xs: sorted, Sorted: true}
	s.Median = sample.Quantile(0.5)

	if n == 1 {
		// No spread estimate is possible from one sample: stddev and
		// CV are defined as 0 and the interval collapses to the point.
		s.CILower = s.Mean
		s.CIUpper = s.Mean
		s.LowConfidence = true
		return s
	}

	s.StdDev = stat.StdDev(samples, nil)

	if s.Mean == 0 {
		s.LowConfidence = true
	} else {
		s.CV = 100 * s.StdDev / s.Mean
	}

	// Two-sided Student-t interval for the mean with n-1 degrees of
	// freedom, matching the standard error of the mean.
	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(n - 1)}
	tCrit := tDist.Quantile(1 - (1-confidence)/2)
	sem := s.StdDev / math.Sqrt(float64(n))

	s.CILower = s.Mean - tCrit*sem
	s.CIUpper = s.Mean + tCrit*sem
	s.CIWidth = s.CIUpper - s.CILower

	return s
}

// WelchP runs Welch's two-sample t-test on two languages' samples and
// returns the two-sided p-value for the hypothesis that their true mean
// times differ. Both samples need at least two values and nonzero combined
// variance; ok is false when the test cannot be run.
func WelchP(a, b []float64) (p float64, ok bool) {
	if len(a) < 2 || len(b) < 2 {
		return 0, false
	}

	sa := moremath.Sample{Xs: a}
	sb := moremath.Sample{Xs: b}
	result, err := moremath.TwoSampleWelchTTest(sa, sb, moremath.LocationDiffers)
	if err != nil {
		return 0, false
	}
	return result.P, true
}
