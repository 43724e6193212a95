// Package metrics scores oracle outputs and the regression models behind them.
package metrics

import (
	"github.com/YuminosukeSato/cscoracle/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// MSE returns the mean squared error between two n×1 columns, such as the
// costs a regressor predicted and the observed costs.
func MSE(yTrue, yPred mat.Matrix) (float64, error) {
	rTrue, cTrue := yTrue.Dims()
	rPred, cPred := yPred.Dims()

	if rTrue == 0 || cTrue == 0 {
		return 0, errors.NewValueError("MSE", "empty matrix")
	}
	if cTrue != 1 || cPred != 1 {
		return 0, errors.NewValueError("MSE", "must be a column vector (n×1 matrix)")
	}
	if rTrue != rPred {
		return 0, errors.NewDimensionError("MSE", rTrue, rPred, 0)
	}

	var sum float64
	for i := 0; i < rTrue; i++ {
		diff := yTrue.At(i, 0) - yPred.At(i, 0)
		sum += diff * diff
	}
	return sum / float64(rTrue), nil
}
