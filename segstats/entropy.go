package segstats

import (
	"fmt"
	"math"

	"github.com/carbocation/pfx"
)

// clipEpsilon bounds probabilities away from 0 and 1 before taking logs.
const clipEpsilon = 1e-7

// PerClassEntropy decomposes the cross-entropy between integer target
// labels and a flat class-probability array by class: entry c is the mean
// over all positions of -1[target==c] * log(output[c]). The output rows are
// renormalized to sum to 1 and then clipped to [1e-7, 1-1e-7], so callers
// may pass unnormalized scores. The result is a diagnostic decomposition of
// the cross-entropy loss, not a probability; entries are non-negative, and
// a confidently correct class contributes less than an uncertain one.
func PerClassEntropy(target []int, output []float64, nClasses int) ([]float64, error) {
	if nClasses < 1 {
		return nil, pfx.Err(fmt.Errorf("Class count must be at least 1, not %d", nClasses))
	}
	if len(output)%nClasses != 0 {
		return nil, pfx.Err(fmt.Errorf("Output array of length %d cannot be split into rows of %d classes", len(output), nClasses))
	}

	samples := len(output) / nClasses
	if len(target) != samples {
		return nil, pfx.Err(fmt.Errorf("Output array yields %d positions but the target has %d", samples, len(target)))
	}

	oneHot, err := OneHot(target, nClasses)
	if err != nil {
		return nil, err
	}

	perClass := make([]float64, nClasses)
	for row := 0; row < samples; row++ {
		base := row * nClasses

		var rowSum float64
		for c := 0; c < nClasses; c++ {
			rowSum += output[base+c]
		}

		for c := 0; c < nClasses; c++ {
			p := output[base+c] / rowSum
			if p < clipEpsilon {
				p = clipEpsilon
			}
			if p > 1-clipEpsilon {
				p = 1 - clipEpsilon
			}

			perClass[c] -= oneHot[base+c] * math.Log(p)
		}
	}

	for c := range perClass {
		perClass[c] /= float64(samples)
	}

	return perClass, nil
}
