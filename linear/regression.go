// Package linear provides an ordinary least squares regressor that can serve
// as a cost model for oracle.RegOracle.
package linear

import (
	"github.com/YuminosukeSato/cscoracle/core/model"
	"github.com/YuminosukeSato/cscoracle/core/parallel"
	"github.com/YuminosukeSato/cscoracle/pkg/errors"
	"github.com/YuminosukeSato/cscoracle/pkg/log"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// LinearRegression fits y = X·w + b by ordinary least squares.
type LinearRegression struct {
	state *model.StateManager

	fitIntercept      bool
	parallelThreshold int

	coef      []float64
	intercept float64
}

// NewLinearRegression returns an unfitted model.
func NewLinearRegression(opts ...Option) *LinearRegression {
	lr := &LinearRegression{
		state:             model.NewStateManager(),
		fitIntercept:      true,
		parallelThreshold: 1000,
	}
	for _, opt := range opts {
		opt(lr)
	}
	return lr
}

// Fit solves the normal equations (XᵀX)w = Xᵀy. y must be an n×1 column.
func (lr *LinearRegression) Fit(X, y mat.Matrix) error {
	r, c := X.Dims()
	ry, cy := y.Dims()

	if r == 0 || c == 0 {
		return errors.NewModelError("LinearRegression.Fit", "empty data", errors.ErrEmptyData)
	}
	if ry != r {
		return errors.NewDimensionError("LinearRegression.Fit", r, ry, 0)
	}
	if cy != 1 {
		return errors.NewDimensionError("LinearRegression.Fit", 1, cy, 1)
	}

	offset := 0
	if lr.fitIntercept {
		offset = 1
	}
	design := mat.NewDense(r, c+offset, nil)
	parallel.ParallelizeWithThreshold(r, lr.parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			if offset == 1 {
				design.Set(i, 0, 1)
			}
			for j := 0; j < c; j++ {
				design.Set(i, j+offset, X.At(i, j))
			}
		}
	})

	var xtx mat.Dense
	xtx.Mul(design.T(), design)
	var xtxInv mat.Dense
	if err := xtxInv.Inverse(&xtx); err != nil {
		return errors.NewModelError("LinearRegression.Fit", "singular matrix", errors.ErrSingularMatrix)
	}

	var xty mat.Dense
	xty.Mul(design.T(), y)
	var w mat.Dense
	w.Mul(&xtxInv, &xty)

	lr.intercept = 0
	if lr.fitIntercept {
		lr.intercept = w.At(0, 0)
	}
	lr.coef = make([]float64, c)
	for j := range lr.coef {
		lr.coef[j] = w.At(j+offset, 0)
	}
	lr.state.SetFitted(c, r)

	log.GetLoggerWithName("linear").Debug("model fitted",
		log.ModelNameKey, "LinearRegression",
		log.OperationKey, log.OperationFit,
		log.SamplesKey, r,
		log.FeaturesKey, c,
	)
	return nil
}

// Predict returns the n×1 predictions X·w + b.
func (lr *LinearRegression) Predict(X mat.Matrix) (mat.Matrix, error) {
	if err := lr.state.RequireFitted("LinearRegression", "Predict"); err != nil {
		return nil, err
	}
	r, c := X.Dims()
	nFeatures, _ := lr.state.Dimensions()
	if c != nFeatures {
		return nil, errors.NewDimensionError("LinearRegression.Predict", nFeatures, c, 1)
	}
	if r == 0 {
		return nil, errors.NewModelError("LinearRegression.Predict", "empty data", errors.ErrEmptyData)
	}

	w := mat.NewVecDense(c, lr.coef)
	out := mat.NewVecDense(r, nil)
	out.MulVec(X, w)
	for i := 0; i < r; i++ {
		out.SetVec(i, out.AtVec(i)+lr.intercept)
	}
	return out, nil
}

// Score returns the coefficient of determination R² of the predictions on X
// against y.
func (lr *LinearRegression) Score(X, y mat.Matrix) (float64, error) {
	pred, err := lr.Predict(X)
	if err != nil {
		return 0, err
	}
	r, _ := X.Dims()
	ry, cy := y.Dims()
	if ry != r {
		return 0, errors.NewDimensionError("LinearRegression.Score", r, ry, 0)
	}
	if cy != 1 {
		return 0, errors.NewDimensionError("LinearRegression.Score", 1, cy, 1)
	}

	truth := mat.Col(nil, 0, y)
	if floats.Min(truth) == floats.Max(truth) {
		return 0, errors.NewValueError("LinearRegression.Score", "target has zero variance")
	}
	score := stat.RSquaredFrom(mat.Col(nil, 0, pred), truth, nil)

	log.GetLoggerWithName("linear").Debug("model scored",
		log.ModelNameKey, "LinearRegression",
		log.OperationKey, log.OperationScore,
		log.SamplesKey, r,
		log.R2ScoreKey, score,
	)
	return score, nil
}

// Coef returns a copy of the learned weights, or nil before Fit.
func (lr *LinearRegression) Coef() []float64 {
	if lr.coef == nil {
		return nil
	}
	return append([]float64(nil), lr.coef...)
}

// Intercept returns the learned intercept. It is 0 when the model was fitted
// without one.
func (lr *LinearRegression) Intercept() float64 {
	return lr.intercept
}

// IsFitted reports whether Fit has succeeded.
func (lr *LinearRegression) IsFitted() bool {
	return lr.state.IsFitted()
}
