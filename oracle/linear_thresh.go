package oracle

import (
	"context"
	"time"

	"github.com/YuminosukeSato/cscoracle/pkg/log"
	"gonum.org/v1/gonum/mat"
)

// LinearThresh is a hyperplane classifier with caller-supplied weights.
type LinearThresh struct {
	coef []float64
	cfg  *config
}

// NewLinearThresh returns a LinearThresh over a copy of coef.
func NewLinearThresh(coef []float64, opts ...Option) *LinearThresh {
	return &LinearThresh{
		coef: append([]float64(nil), coef...),
		cfg:  newConfig(opts),
	}
}

// Coef returns a copy of the weight vector.
func (lt *LinearThresh) Coef() []float64 {
	return append([]float64(nil), lt.coef...)
}

// DecisionFunction returns the dot product of the weights with each row of X.
func (lt *LinearThresh) DecisionFunction(X mat.Matrix) ([]float64, error) {
	return decisionFunction("LinearThresh.DecisionFunction", lt.coef, X, lt.cfg.parallelThreshold)
}

// PredictLabels labels each row of X 1 when its dot product with the weights
// is strictly negative and 0 otherwise. X must have len(Coef()) columns.
func (lt *LinearThresh) PredictLabels(X mat.Matrix) ([]int, error) {
	return predictLinear("LinearThresh", lt.coef, lt.cfg, X)
}

func predictLinear(name string, coef []float64, cfg *config, X mat.Matrix) ([]int, error) {
	start := time.Now()
	scores, err := decisionFunction(name+".PredictLabels", coef, X, cfg.parallelThreshold)
	if err != nil {
		return nil, err
	}
	labels := thresholdScores(scores)

	if logger := cfg.getLogger(); logger.Enabled(context.Background(), log.LevelDebug) {
		_, c := X.Dims()
		logger.Debug("labels predicted",
			log.ModelNameKey, name,
			log.OperationKey, log.OperationPredict,
			log.SamplesKey, len(labels),
			log.FeaturesKey, c,
			log.PositivesKey, countPositives(labels),
			log.ParallelThresholdKey, cfg.parallelThreshold,
			log.DurationMsKey, time.Since(start).Milliseconds(),
		)
	}
	return labels, nil
}
