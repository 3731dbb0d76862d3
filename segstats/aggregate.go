package segstats

import (
	"math"

	"github.com/montanaflynn/stats"
)

// Summary describes a per-class metric vector after dropping its NaN
// entries. N is the number of classes that actually contributed; when N is
// zero every statistic is NaN.
type Summary struct {
	N      int
	Mean   float64
	Median float64
	Min    float64
	Max    float64
	StdDev float64
}

// Summarize reduces a per-class metric vector (for example the output of
// DiceAll or PerClassF1) to summary statistics over its computable entries.
// NaN entries (classes with no data) are excluded rather than poisoning
// the aggregate. A vector with no computable entries returns a Summary of
// NaNs with N == 0, which is not an error: "nothing to report" is a valid
// evaluation outcome on, say, an all-background image.
func Summarize(perClass []float64) (Summary, error) {
	kept := make([]float64, 0, len(perClass))
	for _, v := range perClass {
		if !math.IsNaN(v) {
			kept = append(kept, v)
		}
	}

	if len(kept) == 0 {
		nan := math.NaN()
		return Summary{N: 0, Mean: nan, Median: nan, Min: nan, Max: nan, StdDev: nan}, nil
	}

	mean, err := stats.Mean(kept)
	if err != nil {
		return Summary{}, err
	}
	median, err := stats.Median(kept)
	if err != nil {
		return Summary{}, err
	}
	min, err := stats.Min(kept)
	if err != nil {
		return Summary{}, err
	}
	max, err := stats.Max(kept)
	if err != nil {
		return Summary{}, err
	}
	sd, err := stats.StandardDeviation(kept)
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		N:      len(kept),
		Mean:   mean,
		Median: median,
		Min:    min,
		Max:    max,
		StdDev: sd,
	}, nil
}

// NaNMean averages the computable entries of a per-class metric vector,
// skipping NaN sentinels. A vector with no computable entries yields NaN.
func NaNMean(perClass []float64) float64 {
	var sum float64
	var n int

	for _, v := range perClass {
		if math.IsNaN(v) {
			continue
		}
		sum += v
		n++
	}

	if n == 0 {
		return math.NaN()
	}

	return sum / float64(n)
}
