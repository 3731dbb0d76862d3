package segstats

import (
	"math"
	"testing"
)

// hardProbs builds a probability array whose row-wise argmax reproduces the
// given hard labels.
func hardProbs(t *testing.T, labels []int, nClasses int) []float64 {
	t.Helper()

	p, err := OneHot(labels, nClasses)
	if err != nil {
		t.Fatal(err)
	}

	return p
}

func TestSparseFGRecall(t *testing.T) {
	yTrue := []int{0, 1, 2, 1}
	yPred := hardProbs(t, []int{0, 1, 1, 1}, 3)

	// Foreground positions are 1..3 with true labels {1,2,1}; the
	// prediction matches at two of the three
	got, err := SparseFGRecall(yTrue, yPred, 3, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !almostEqual(got, 2.0/3.0) {
		t.Fatalf("SparseFGRecall: %g, expected 2/3", got)
	}
}

func TestSparseFGPrecision(t *testing.T) {
	yTrue := []int{0, 1, 2, 1}
	yPred := hardProbs(t, []int{0, 1, 1, 1}, 3)

	// Predicted foreground is also positions 1..3 here, so the value
	// coincides with the recall
	got, err := SparseFGPrecision(yTrue, yPred, 3, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !almostEqual(got, 2.0/3.0) {
		t.Fatalf("SparseFGPrecision: %g, expected 2/3", got)
	}
}

func TestForegroundMaskSourceDiffers(t *testing.T) {
	// Recall masks on the TRUE label, precision on the PREDICTED label.
	// Here the two masks select different positions and the values split.
	yTrue := []int{1, 1, 1, 0}
	yPred := hardProbs(t, []int{1, 0, 0, 1}, 2)

	recall, err := SparseFGRecall(yTrue, yPred, 2, 0)
	if err != nil {
		t.Fatal(err)
	}
	precision, err := SparseFGPrecision(yTrue, yPred, 2, 0)
	if err != nil {
		t.Fatal(err)
	}

	// True foreground is positions 0..2, matched only at 0
	if !almostEqual(recall, 1.0/3.0) {
		t.Fatalf("SparseFGRecall: %g, expected 1/3", recall)
	}
	// Predicted foreground is positions {0,3}, matched only at 0
	if !almostEqual(precision, 0.5) {
		t.Fatalf("SparseFGPrecision: %g, expected 1/2", precision)
	}
}

func TestForegroundEmptyMaskIsNaN(t *testing.T) {
	// All-background ground truth: the recall has nothing to average over
	yTrue := []int{0, 0}

	recall, err := SparseFGRecall(yTrue, hardProbs(t, []int{0, 1}, 2), 2, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsNaN(recall) {
		t.Fatalf("SparseFGRecall over an empty foreground should be NaN, got %g", recall)
	}

	// All-background prediction: same for the precision
	precision, err := SparseFGPrecision([]int{0, 1}, hardProbs(t, []int{0, 0}, 2), 2, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsNaN(precision) {
		t.Fatalf("SparseFGPrecision over an empty predicted foreground should be NaN, got %g", precision)
	}
}

func TestFGRecallAndPrecisionOneHotTruth(t *testing.T) {
	// Ground truth in one-hot form must reduce to the same hard labels
	yTrueHard := []int{0, 1, 2, 1}
	yTrueProbs := hardProbs(t, yTrueHard, 3)
	yPred := hardProbs(t, []int{0, 1, 1, 1}, 3)

	sparse, err := SparseFGRecall(yTrueHard, yPred, 3, 0)
	if err != nil {
		t.Fatal(err)
	}
	dense, err := FGRecall(yTrueProbs, yPred, 3, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !almostEqual(sparse, dense) {
		t.Fatalf("FGRecall %g disagrees with SparseFGRecall %g", dense, sparse)
	}

	sparse, err = SparseFGPrecision(yTrueHard, yPred, 3, 0)
	if err != nil {
		t.Fatal(err)
	}
	dense, err = FGPrecision(yTrueProbs, yPred, 3, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !almostEqual(sparse, dense) {
		t.Fatalf("FGPrecision %g disagrees with SparseFGPrecision %g", dense, sparse)
	}
}

func TestForegroundShapeErrors(t *testing.T) {
	// Probability array not divisible by the class count
	if _, err := SparseFGRecall([]int{0}, []float64{0.5, 0.5, 0.5}, 2, 0); err == nil {
		t.Fatal("Expected an error for a misshapen probability array")
	}

	// Row count disagrees with the ground-truth length
	if _, err := SparseFGRecall([]int{0, 1, 1}, []float64{1, 0, 0, 1}, 2, 0); err == nil {
		t.Fatal("Expected an error for a row count mismatch")
	}
}
