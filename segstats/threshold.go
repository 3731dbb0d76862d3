package segstats

import "math"

// Precision computes tp/(tp+fp) for a binary problem, after rounding the
// predicted probabilities to the nearest integer (0.5 rounds to even, as in
// IEEE round-half-even). The ground truth is taken as-is for the true
// positive term; the false positive term counts rounded predictions at
// positions where the ground truth is exactly zero. An all-negative
// prediction gives 0/0 and therefore NaN; the division is deliberately
// unguarded so "not computable" is never misreported as 0.
func Precision(yTrue, yPred []float64) float64 {
	var tp, fp float64

	for i, t := range yTrue {
		p := math.RoundToEven(yPred[i])

		tp += t * p
		if t == 0 {
			fp += p
		}
	}

	return tp / (tp + fp)
}

// Recall computes tp/(actual positives) with the same rounding as Precision.
// Ground truth with no positives gives 0/0 and therefore NaN, unguarded for
// the same reason.
func Recall(yTrue, yPred []float64) float64 {
	var tp, relevant float64

	for i, t := range yTrue {
		tp += t * math.RoundToEven(yPred[i])
		relevant += t
	}

	return tp / relevant
}
