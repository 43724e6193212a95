package oracle

import (
	"github.com/YuminosukeSato/cscoracle/core/parallel"
	"github.com/YuminosukeSato/cscoracle/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// ThresholdLabels applies the linear threshold rule: a row gets label 1 when
// its dot product with coef is strictly negative and 0 otherwise, including
// a zero or NaN product.
func ThresholdLabels(coef []float64, X mat.Matrix) ([]int, error) {
	scores, err := decisionFunction("ThresholdLabels", coef, X, defaultParallelThreshold)
	if err != nil {
		return nil, err
	}
	return thresholdScores(scores), nil
}

func decisionFunction(op string, coef []float64, X mat.Matrix, parallelThreshold int) ([]float64, error) {
	r, c := X.Dims()
	if r == 0 {
		return []float64{}, nil
	}
	if c != len(coef) {
		return nil, errors.NewDimensionError(op, len(coef), c, 1)
	}

	scores := make([]float64, r)
	parallel.ParallelizeWithThreshold(r, parallelThreshold, func(start, end int) {
		row := make([]float64, c)
		for i := start; i < end; i++ {
			mat.Row(row, i, X)
			scores[i] = floats.Dot(coef, row)
		}
	})
	return scores, nil
}

func thresholdScores(scores []float64) []int {
	labels := make([]int, len(scores))
	for i, s := range scores {
		if s < 0 {
			labels[i] = 1
		}
	}
	return labels
}

func countPositives(labels []int) int {
	n := 0
	for _, l := range labels {
		n += l
	}
	return n
}
