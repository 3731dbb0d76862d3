package segstats

import (
	"fmt"
	"math"

	"github.com/carbocation/pfx"
)

// SparseFGRecall measures, over the positions whose GROUND TRUTH label is
// not the background class, the fraction where the predicted hard label
// (argmax over yPred's class axis) agrees with the ground truth. yTrue holds
// hard labels; yPred holds len(yTrue)*nClasses probabilities. If the ground
// truth contains no foreground at all, the agreement rate over an empty set
// is NaN, consistent with the package's not-computable convention.
func SparseFGRecall(yTrue []int, yPred []float64, nClasses, bgClass int) (float64, error) {
	predicted, err := ArgmaxRows(yPred, nClasses)
	if err != nil {
		return 0, err
	}
	if len(predicted) != len(yTrue) {
		return 0, pfx.Err(fmt.Errorf("Probability array yields %d positions but the ground truth has %d", len(predicted), len(yTrue)))
	}

	var kept, agreed float64
	for i, t := range yTrue {
		if t == bgClass {
			continue
		}

		kept++
		if predicted[i] == t {
			agreed++
		}
	}

	if kept == 0 {
		return math.NaN(), nil
	}

	return agreed / kept, nil
}

// FGRecall is SparseFGRecall for ground truth supplied in one-hot or
// probability form: yTrue is first reduced to hard labels by argmax over its
// own class axis.
func FGRecall(yTrue, yPred []float64, nClasses, bgClass int) (float64, error) {
	trueLabels, err := ArgmaxRows(yTrue, nClasses)
	if err != nil {
		return 0, err
	}

	return SparseFGRecall(trueLabels, yPred, nClasses, bgClass)
}

// SparseFGPrecision is the counterpart to SparseFGRecall with the mask taken
// from the PREDICTION: only positions whose predicted hard label is not the
// background class are scored. The asymmetry with SparseFGRecall is the
// point, not an accident: recall conditions on true foreground, precision
// on predicted foreground. No predicted foreground at all yields NaN.
func SparseFGPrecision(yTrue []int, yPred []float64, nClasses, bgClass int) (float64, error) {
	predicted, err := ArgmaxRows(yPred, nClasses)
	if err != nil {
		return 0, err
	}
	if len(predicted) != len(yTrue) {
		return 0, pfx.Err(fmt.Errorf("Probability array yields %d positions but the ground truth has %d", len(predicted), len(yTrue)))
	}

	var kept, agreed float64
	for i, p := range predicted {
		if p == bgClass {
			continue
		}

		kept++
		if yTrue[i] == p {
			agreed++
		}
	}

	if kept == 0 {
		return math.NaN(), nil
	}

	return agreed / kept, nil
}

// FGPrecision is SparseFGPrecision for ground truth supplied in one-hot or
// probability form.
func FGPrecision(yTrue, yPred []float64, nClasses, bgClass int) (float64, error) {
	trueLabels, err := ArgmaxRows(yTrue, nClasses)
	if err != nil {
		return 0, err
	}

	return SparseFGPrecision(trueLabels, yPred, nClasses, bgClass)
}
