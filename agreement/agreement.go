// Package agreement scores two segmentations of the same scene against each
// other, label by label. The two inputs are symmetric in principle (two
// human readers, or a reader and a model), but the counts distinguish which
// side contributed a disputed position, so chance-corrected statistics like
// Cohen's kappa can be derived alongside Dice and Jaccard overlap.
package agreement

import (
	"fmt"
	"math"

	"github.com/carbocation/pfx"
)

// pair is a (label assigned by reader 1, label assigned by reader 2) key.
type pair struct {
	ID1 int
	ID2 int
}

// Counts accumulates, for one label, how the two readers related to it:
// Agreed positions carried the label from both, Only1 positions carried it
// from reader 1 alone, Only2 from reader 2 alone. Total is the number of
// positions where at least one reader used the label.
type Counts struct {
	Total  int64
	Agreed int64
	Only1  int64
	Only2  int64
}

// Tally counts pairwise label assignments over two aligned label arrays and
// returns per-label Counts for every label either reader used. The arrays
// must be the same length, position for position.
func Tally(labels1, labels2 []int) (map[int]Counts, error) {
	if len(labels1) != len(labels2) {
		return nil, pfx.Err(fmt.Errorf("Both label arrays must have the same length, not %d and %d", len(labels1), len(labels2)))
	}

	pairCounts := make(map[pair]int64)
	for i := range labels1 {
		pairCounts[pair{ID1: labels1[i], ID2: labels2[i]}]++
	}

	out := make(map[int]Counts)
	for key, n := range pairCounts {
		v1 := out[key.ID1]
		v1.Total += n

		// Agreement is credited once, to the shared label.
		if key.ID1 == key.ID2 {
			v1.Agreed += n
			out[key.ID1] = v1
			continue
		}

		// Disagreement is charged to both labels: reader 1's choice as an
		// Only1, reader 2's choice as an Only2.
		v1.Only1 += n
		out[key.ID1] = v1

		v2 := out[key.ID2]
		v2.Total += n
		v2.Only2 += n
		out[key.ID2] = v2
	}

	return out, nil
}

// PO is the observed probability of agreement at this label, out of the
// total number of positions in the scene. With no positions at all, the
// readers vacuously agree.
func (v Counts) PO(total int64) float64 {
	if total == 0 {
		return 1
	}

	return float64(total-v.Only1-v.Only2) / float64(total)
}

// PE is the probability that the two readers would agree at this label by
// chance, given how often each used it.
func (v Counts) PE(total int64) float64 {
	pR1Label := float64(v.Agreed+v.Only1) / float64(total)
	pR2Label := float64(v.Agreed+v.Only2) / float64(total)

	return (pR1Label * pR2Label) + ((1 - pR1Label) * (1 - pR2Label))
}

// Kappa is Cohen's kappa for this label: observed agreement corrected for
// chance agreement. When chance agreement is total (both readers used the
// label everywhere or nowhere), kappa is 0.
func (v Counts) Kappa(total int64) float64 {
	if v.PE(total) == 1 {
		return 0
	}

	return (v.PO(total) - v.PE(total)) / (1 - v.PE(total))
}

// Dice is the overlap coefficient 2*Agreed / (2*Agreed + Only1 + Only2).
// A label used by neither reader has no defined overlap and yields NaN.
func (v Counts) Dice() float64 {
	denom := float64(2*v.Agreed + v.Only1 + v.Only2)
	if denom == 0 {
		return math.NaN()
	}

	return float64(2*v.Agreed) / denom
}

// Jaccard is the intersection-over-union form of Dice. NaN propagates from
// an undefined Dice.
func (v Counts) Jaccard() float64 {
	d := v.Dice()

	return d / (2 - d)
}

// CountAgreement compares the AMOUNT of this label the two readers used,
// regardless of position: 1 means both annotated the same number of
// positions with it, 0 means one reader used it and the other never did.
// A label used by neither reader yields NaN.
func (v Counts) CountAgreement() float64 {
	denom := float64(2*v.Agreed + v.Only1 + v.Only2)
	if denom == 0 {
		return math.NaN()
	}

	diff := v.Only1 - v.Only2
	if diff < 0 {
		diff = -diff
	}

	return 1 - float64(diff)/denom
}
