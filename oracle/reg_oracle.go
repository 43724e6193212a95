package oracle

import (
	"context"
	"time"

	"github.com/YuminosukeSato/cscoracle/core/model"
	"github.com/YuminosukeSato/cscoracle/pkg/errors"
	"github.com/YuminosukeSato/cscoracle/pkg/log"
	"gonum.org/v1/gonum/mat"
)

// RegOracle solves a CSC problem with two regression models: baseline
// estimates the cost of label 0 and alternative the cost of label 1.
//
// RegOracle holds no state of its own. It is safe for concurrent use only if
// both regressors are safe for concurrent Predict calls.
type RegOracle struct {
	baseline    model.Regressor
	alternative model.Regressor
	cfg         *config
}

// NewRegOracle returns a RegOracle over the two regressors.
func NewRegOracle(baseline, alternative model.Regressor, opts ...Option) *RegOracle {
	return &RegOracle{
		baseline:    baseline,
		alternative: alternative,
		cfg:         newConfig(opts),
	}
}

// Baseline returns the regressor predicting the cost of label 0.
func (o *RegOracle) Baseline() model.Regressor { return o.baseline }

// Alternative returns the regressor predicting the cost of label 1.
func (o *RegOracle) Alternative() model.Regressor { return o.alternative }

// PredictLabels labels each row of X 1 when the alternative cost is strictly
// lower than the baseline cost and 0 otherwise, so ties and NaN costs give 0.
// The first regressor error is returned wrapped in a ModelError, and a
// regressor panic is returned as a PanicError. No labels are returned on error.
func (o *RegOracle) PredictLabels(X mat.Matrix) (labels []int, err error) {
	const op = "RegOracle.PredictLabels"
	defer errors.Recover(&err, op)

	start := time.Now()
	r, c := X.Dims()
	if r == 0 {
		return []int{}, nil
	}

	if o.cfg.rowWise {
		if c == 0 {
			return nil, errors.NewValueError(op, "row-wise prediction needs at least one feature column")
		}
		labels, err = o.predictRows(op, X, r, c)
	} else {
		labels, err = o.predictBatch(op, X, r)
	}
	if err != nil {
		return nil, err
	}

	if logger := o.cfg.getLogger(); logger.Enabled(context.Background(), log.LevelDebug) {
		logger.Debug("labels predicted",
			log.ModelNameKey, "RegOracle",
			log.OperationKey, log.OperationPredict,
			log.SamplesKey, r,
			log.FeaturesKey, c,
			log.RowWiseKey, o.cfg.rowWise,
			log.PositivesKey, countPositives(labels),
			log.DurationMsKey, time.Since(start).Milliseconds(),
		)
	}
	return labels, nil
}

func (o *RegOracle) predictBatch(op string, X mat.Matrix, n int) ([]int, error) {
	c0, err := costs(op, "baseline", o.baseline, X, n)
	if err != nil {
		return nil, err
	}
	c1, err := costs(op, "alternative", o.alternative, X, n)
	if err != nil {
		return nil, err
	}

	labels := make([]int, n)
	for i := range labels {
		if c1[i] < c0[i] {
			labels[i] = 1
		}
	}
	return labels, nil
}

func (o *RegOracle) predictRows(op string, X mat.Matrix, n, d int) ([]int, error) {
	labels := make([]int, n)
	for i := 0; i < n; i++ {
		row := mat.NewDense(1, d, mat.Row(nil, i, X))

		c0, err := costs(op, "baseline", o.baseline, row, 1)
		if err != nil {
			return nil, errors.Wrapf(err, "row %d", i)
		}
		c1, err := costs(op, "alternative", o.alternative, row, 1)
		if err != nil {
			return nil, errors.Wrapf(err, "row %d", i)
		}
		if c1[0] < c0[0] {
			labels[i] = 1
		}
	}
	return labels, nil
}

// costs asks reg for an n×1 cost column on X.
func costs(op, which string, reg model.Regressor, X mat.Matrix, n int) ([]float64, error) {
	out, err := reg.Predict(X)
	if err != nil {
		return nil, errors.NewModelError(op, which+" regressor failed", err)
	}
	r, c := out.Dims()
	if r != n {
		return nil, errors.NewDimensionError(op, n, r, 0)
	}
	if c != 1 {
		return nil, errors.NewDimensionError(op, 1, c, 1)
	}
	return mat.Col(nil, 0, out), nil
}
