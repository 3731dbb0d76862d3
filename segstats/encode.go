package segstats

import (
	"fmt"

	"github.com/carbocation/pfx"
)

// ArgmaxRows reduces a flat class-probability array to hard labels. The
// array is interpreted as rows of nClasses values each (the class axis is
// the fastest-varying dimension), and each row yields the index of its
// maximum value. Ties break toward the lowest index. The length of p must
// be an exact multiple of nClasses.
func ArgmaxRows(p []float64, nClasses int) ([]int, error) {
	if nClasses < 1 {
		return nil, pfx.Err(fmt.Errorf("Class count must be at least 1, not %d", nClasses))
	}
	if len(p)%nClasses != 0 {
		return nil, pfx.Err(fmt.Errorf("Probability array of length %d cannot be split into rows of %d classes", len(p), nClasses))
	}

	out := make([]int, len(p)/nClasses)
	for row := range out {
		base := row * nClasses

		best := 0
		for c := 1; c < nClasses; c++ {
			if p[base+c] > p[base+best] {
				best = c
			}
		}
		out[row] = best
	}

	return out, nil
}

// OneHot expands integer labels into a flat one-hot array of
// len(labels)*nClasses values, rows of nClasses each. Labels outside
// [0, nClasses) are an error rather than a silent truncation.
func OneHot(labels []int, nClasses int) ([]float64, error) {
	if nClasses < 1 {
		return nil, pfx.Err(fmt.Errorf("Class count must be at least 1, not %d", nClasses))
	}

	out := make([]float64, len(labels)*nClasses)
	for i, label := range labels {
		if label < 0 || label >= nClasses {
			return nil, pfx.Err(fmt.Errorf("Label %d at position %d is outside the %d declared classes", label, i, nClasses))
		}
		out[i*nClasses+label] = 1
	}

	return out, nil
}
