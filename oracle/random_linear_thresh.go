package oracle

import (
	"github.com/YuminosukeSato/cscoracle/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// RandomLinearThresh is a hyperplane classifier whose weights are drawn once,
// uniformly from the open interval (-1, 1), when it is constructed. It is a
// baseline for experiments.
type RandomLinearThresh struct {
	coef []float64
	cfg  *config
}

// NewRandomLinearThresh draws a d-dimensional weight vector. d must be
// positive. Pass WithSource for reproducible weights.
func NewRandomLinearThresh(d int, opts ...Option) (*RandomLinearThresh, error) {
	if d <= 0 {
		return nil, errors.NewValidationError("d", "must be positive", d)
	}
	cfg := newConfig(opts)

	dist := distuv.Uniform{Min: -1, Max: 1, Src: cfg.src}
	coef := make([]float64, d)
	for i := range coef {
		v := dist.Rand()
		// Uniform.Rand can return Min exactly.
		for v <= dist.Min || v >= dist.Max {
			v = dist.Rand()
		}
		coef[i] = v
	}

	return &RandomLinearThresh{coef: coef, cfg: cfg}, nil
}

// Coef returns a copy of the sampled weight vector.
func (rt *RandomLinearThresh) Coef() []float64 {
	return append([]float64(nil), rt.coef...)
}

// DecisionFunction returns the dot product of the weights with each row of X.
func (rt *RandomLinearThresh) DecisionFunction(X mat.Matrix) ([]float64, error) {
	return decisionFunction("RandomLinearThresh.DecisionFunction", rt.coef, X, rt.cfg.parallelThreshold)
}

// PredictLabels applies the same rule as LinearThresh.PredictLabels. Repeated
// calls on one instance are deterministic.
func (rt *RandomLinearThresh) PredictLabels(X mat.Matrix) ([]int, error) {
	return predictLinear("RandomLinearThresh", rt.coef, rt.cfg, X)
}
