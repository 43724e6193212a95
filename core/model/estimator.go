// Package model defines the interfaces shared by the oracles and the regression
// models they consume.
package model

import "gonum.org/v1/gonum/mat"

// Fitter is a model that learns from training data.
type Fitter interface {
	// Fit trains the model on X and the n×1 target y.
	Fit(X, y mat.Matrix) error
}

// Predictor produces a real-valued output per row of X.
type Predictor interface {
	// Predict returns an n×1 matrix, one value per row of X.
	Predict(X mat.Matrix) (mat.Matrix, error)
}

// Regressor is a regression model that estimates a scalar cost per row.
// RegOracle holds two of them.
type Regressor interface {
	Predictor
}

// LabelPredictor assigns a binary label (0 or 1) to every row of X, in row order.
type LabelPredictor interface {
	PredictLabels(X mat.Matrix) ([]int, error)
}

// LinearModel exposes the coefficients of a linear model.
type LinearModel interface {
	// Coef returns a copy of the weight vector.
	Coef() []float64
}

// RegressorFunc adapts a per-row function to the Regressor interface.
type RegressorFunc func(row []float64) (float64, error)

// Predict calls f on every row of X and stops at the first error.
func (f RegressorFunc) Predict(X mat.Matrix) (mat.Matrix, error) {
	r, c := X.Dims()
	if r == 0 {
		return &mat.Dense{}, nil
	}
	out := mat.NewDense(r, 1, nil)
	row := make([]float64, c)
	for i := 0; i < r; i++ {
		mat.Row(row, i, X)
		v, err := f(row)
		if err != nil {
			return nil, err
		}
		out.Set(i, 0, v)
	}
	return out, nil
}
