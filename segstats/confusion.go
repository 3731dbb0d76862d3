package segstats

import (
	"fmt"
	"math"

	"github.com/carbocation/pfx"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// ConfusionMatrix tallies (true label, predicted label) co-occurrences into
// a square matrix whose entry (i, j) counts the positions with true label i
// and predicted label j. Passing a positive nClasses fixes the matrix
// dimension, which keeps matrices comparable across calls and is the
// preferred mode; labels outside the declared range are then an error.
// Passing nClasses <= 0 instead sizes the matrix to max(observed label)+1,
// which makes the shape input-dependent: two calls over different label
// ranges produce matrices that must not be compared entry-wise.
func ConfusionMatrix(yTrue, yPred []int, nClasses int) (*mat.Dense, error) {
	if len(yTrue) != len(yPred) {
		return nil, pfx.Err(fmt.Errorf("True and predicted label arrays must have the same length, not %d and %d", len(yTrue), len(yPred)))
	}

	n := nClasses
	if n <= 0 {
		for i := range yTrue {
			if yTrue[i] >= n {
				n = yTrue[i] + 1
			}
			if yPred[i] >= n {
				n = yPred[i] + 1
			}
		}
		if n <= 0 {
			return nil, pfx.Err(fmt.Errorf("Cannot infer a class count from empty label arrays; pass an explicit class count"))
		}
	}

	cm := mat.NewDense(n, n, nil)
	for i, t := range yTrue {
		p := yPred[i]
		if t < 0 || t >= n || p < 0 || p >= n {
			return nil, pfx.Err(fmt.Errorf("Label pair (%d, %d) at position %d is outside the %d declared classes", t, p, i, n))
		}

		cm.Set(t, p, cm.At(t, p)+1)
	}

	return cm, nil
}

// PerClassF1 derives per-class precision (diagonal over column sum), recall
// (diagonal over row sum), and F1 (harmonic mean of the two) from a
// confusion matrix. A class absent from predictions has 0/0 precision, one
// absent from the ground truth has 0/0 recall, and either makes its F1
// undefined; such entries are NaN, never 0.
func PerClassF1(cm *mat.Dense) (precisions, recalls, f1s []float64) {
	n, _ := cm.Dims()

	precisions = make([]float64, n)
	recalls = make([]float64, n)
	f1s = make([]float64, n)

	for c := 0; c < n; c++ {
		tp := cm.At(c, c)

		colSum := floats.Sum(mat.Col(nil, c, cm))
		rowSum := floats.Sum(mat.Row(nil, c, cm))

		precisions[c] = tp / colSum
		recalls[c] = tp / rowSum
		f1s[c] = 2 * precisions[c] * recalls[c] / (precisions[c] + recalls[c])
	}

	return precisions, recalls, f1s
}

// SparseMeanFGF1 reduces yPred to hard labels, builds the confusion matrix
// over nClasses classes, and returns the mean per-class F1 across the
// foreground classes (everything except class 0, which is assumed to be the
// background). Any foreground class whose F1 is undefined makes the mean
// NaN; callers that prefer to skip such classes can use PerClassF1 with
// NaNMean instead.
func SparseMeanFGF1(yTrue []int, yPred []float64, nClasses int) (float64, error) {
	cm, err := sparseConfusion(yTrue, yPred, nClasses)
	if err != nil {
		return 0, err
	}

	_, _, f1s := PerClassF1(cm)

	return meanFrom(f1s, 1), nil
}

// SparseMeanFGPrecision is SparseMeanFGF1's counterpart returning the mean
// foreground precision.
func SparseMeanFGPrecision(yTrue []int, yPred []float64, nClasses int) (float64, error) {
	cm, err := sparseConfusion(yTrue, yPred, nClasses)
	if err != nil {
		return 0, err
	}

	precisions, _, _ := PerClassF1(cm)

	return meanFrom(precisions, 1), nil
}

// SparseMeanFGRecall is SparseMeanFGF1's counterpart returning the mean
// foreground recall.
func SparseMeanFGRecall(yTrue []int, yPred []float64, nClasses int) (float64, error) {
	cm, err := sparseConfusion(yTrue, yPred, nClasses)
	if err != nil {
		return 0, err
	}

	_, recalls, _ := PerClassF1(cm)

	return meanFrom(recalls, 1), nil
}

func sparseConfusion(yTrue []int, yPred []float64, nClasses int) (*mat.Dense, error) {
	predicted, err := ArgmaxRows(yPred, nClasses)
	if err != nil {
		return nil, err
	}

	return ConfusionMatrix(yTrue, predicted, nClasses)
}

// meanFrom averages vals[from:], propagating NaN. An empty tail (no
// foreground classes) is NaN.
func meanFrom(vals []float64, from int) float64 {
	if from >= len(vals) {
		return math.NaN()
	}

	var sum float64
	for _, v := range vals[from:] {
		sum += v
	}

	return sum / float64(len(vals)-from)
}
