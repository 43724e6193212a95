package metrics

import (
	"github.com/YuminosukeSato/cscoracle/pkg/errors"
)

// CostSensitiveLoss returns the total cost of a labelling in a CSC problem:
// costs0[i] is paid where labels[i] is 0 and costs1[i] where it is 1.
// Any other label value is a ValueError.
func CostSensitiveLoss(labels []int, costs0, costs1 []float64) (float64, error) {
	n := len(labels)
	if n == 0 {
		return 0, errors.NewValueError("CostSensitiveLoss", "empty labels")
	}
	if len(costs0) != n {
		return 0, errors.NewDimensionError("CostSensitiveLoss", n, len(costs0), 0)
	}
	if len(costs1) != n {
		return 0, errors.NewDimensionError("CostSensitiveLoss", n, len(costs1), 0)
	}

	var total float64
	for i, l := range labels {
		switch l {
		case 0:
			total += costs0[i]
		case 1:
			total += costs1[i]
		default:
			return 0, errors.NewValueError("CostSensitiveLoss", "labels must be 0 or 1")
		}
	}
	return total, nil
}

// Accuracy returns the fraction of positions where yPred equals yTrue.
func Accuracy(yTrue, yPred []int) (float64, error) {
	n := len(yTrue)
	if n == 0 {
		return 0, errors.NewValueError("Accuracy", "empty labels")
	}
	if len(yPred) != n {
		return 0, errors.NewDimensionError("Accuracy", n, len(yPred), 0)
	}

	correct := 0
	for i := range yTrue {
		if yTrue[i] == yPred[i] {
			correct++
		}
	}
	return float64(correct) / float64(n), nil
}

// PositiveRate returns the fraction of labels equal to 1.
func PositiveRate(labels []int) (float64, error) {
	if len(labels) == 0 {
		return 0, errors.NewValueError("PositiveRate", "empty labels")
	}
	pos := 0
	for _, l := range labels {
		if l == 1 {
			pos++
		}
	}
	return float64(pos) / float64(len(labels)), nil
}
