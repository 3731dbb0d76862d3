// Package segstats computes quality metrics for semantic segmentation:
// predicted label maps or class-probability maps are scored against ground
// truth, yielding scalar or per-class results. Arrays are passed as flat
// slices (the caller flattens; for probability arrays the class axis is the
// fastest-varying dimension, declared via an explicit class count). A class
// for which a metric is not computable is reported as NaN, never as 0, so
// that downstream averaging can exclude it rather than mistaking "no data"
// for "worst possible."
package segstats

import (
	"math"
	"sort"
)

// Dice computes the Soerensen dice coefficient between two binary masks:
// (smooth + 2*|A∩B|) / (smooth + |A| + |B|). The smoothing constant keeps
// the degenerate empty-vs-empty comparison at 1.0 rather than 0/0. The two
// masks must be the same length; this is a caller obligation and is not
// checked here.
func Dice(yTrue, yPred []bool, smooth float64) float64 {
	var intersection, n1, n2 float64

	for i, t := range yTrue {
		if t {
			n1++
			if yPred[i] {
				intersection++
			}
		}
	}
	for _, p := range yPred {
		if p {
			n2++
		}
	}

	return (smooth + 2*intersection) / (smooth + n1 + n2)
}

// DiceVals is Dice over numeric arrays, treating any non-zero value as set
// membership. It exists so that callers holding raw label or mask arrays do
// not each reimplement the flatten-and-bool step.
func DiceVals(yTrue, yPred []float64, smooth float64) float64 {
	s1 := make([]bool, len(yTrue))
	s2 := make([]bool, len(yPred))

	for i, v := range yTrue {
		s1[i] = v != 0
	}
	for i, v := range yPred {
		s2[i] = v != 0
	}

	return Dice(s1, s2, smooth)
}

// DiceAllConfig holds the optional parameters for DiceAll.
type DiceAllConfig struct {
	// Smooth is the additive smoothing constant passed through to Dice.
	Smooth float64

	// NClasses fixes the class set to 0..NClasses-1. When 0, the class set
	// is instead inferred from the unique values observed in the ground
	// truth. NClasses of 1 is treated as 2, since a one-class problem is a
	// binary problem.
	NClasses int

	// IgnoreZero drops class 0 (background) from the result.
	IgnoreZero bool

	// SkipIfNoY leaves a class's entry at NaN when the class never occurs
	// in the ground truth, even if it was (spuriously) predicted.
	SkipIfNoY bool
}

// DefaultDiceAllConfig mirrors the conventional evaluation setup: smoothing
// of 1.0, classes inferred from the ground truth, background excluded.
func DefaultDiceAllConfig() DiceAllConfig {
	return DiceAllConfig{
		Smooth:     1.0,
		NClasses:   0,
		IgnoreZero: true,
		SkipIfNoY:  false,
	}
}

// DiceAll computes the dice coefficient for every class separately, by
// comparing the equality masks yTrue==class and yPred==class. The result is
// ordered by ascending class value and holds one entry per retained class.
// Entries start as NaN and stay NaN for any class observed in neither array
// after masking; a NaN entry means "not computable," not zero overlap.
func DiceAll(yTrue, yPred []int, cfg DiceAllConfig) []float64 {
	var classes []int
	if cfg.NClasses == 0 {
		classes = uniqueInts(yTrue)
	} else {
		n := cfg.NClasses
		if n == 1 {
			n = 2
		}
		classes = make([]int, 0, n)
		for c := 0; c < n; c++ {
			classes = append(classes, c)
		}
	}

	if cfg.IgnoreZero {
		kept := classes[:0]
		for _, c := range classes {
			if c != 0 {
				kept = append(kept, c)
			}
		}
		classes = kept
	}

	coeffs := make([]float64, len(classes))
	for i := range coeffs {
		coeffs[i] = math.NaN()
	}

	for idx, class := range classes {
		s1 := make([]bool, len(yTrue))
		var any1 bool
		for i, v := range yTrue {
			if v == class {
				s1[i] = true
				any1 = true
			}
		}

		if cfg.SkipIfNoY && !any1 {
			continue
		}

		s2 := make([]bool, len(yPred))
		var any2 bool
		for i, v := range yPred {
			if v == class {
				s2[i] = true
				any2 = true
			}
		}

		if any1 || any2 {
			coeffs[idx] = Dice(s1, s2, cfg.Smooth)
		}
	}

	return coeffs
}

// OneClassDice computes the dice coefficient for a single-class problem
// where the ground truth is already a {0,1}-valued float array and the
// prediction holds raw probabilities, binarized here at a fixed 0.5
// threshold. Unlike Dice, the intersection is a sum of products over the raw
// ground-truth values, so soft (non-binary) ground truth changes the result;
// the two are only interchangeable for strictly {0,1} data.
func OneClassDice(yTrue, yPred []float64, smooth float64) float64 {
	var products, sum1, sum2 float64

	for i, t := range yTrue {
		var p float64
		if yPred[i] > 0.5 {
			p = 1
		}

		products += t * p
		sum1 += t
		sum2 += p
	}

	return (smooth + 2*products) / (smooth + sum1 + sum2)
}

// uniqueInts returns the distinct values of vals in ascending order.
func uniqueInts(vals []int) []int {
	seen := make(map[int]struct{})
	for _, v := range vals {
		seen[v] = struct{}{}
	}

	out := make([]int, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Ints(out)

	return out
}
