// Package oracle implements cost-sensitive classification (CSC) oracles used
// as subroutines by fairness-constrained learners.
//
// Every oracle implements model.LabelPredictor: PredictLabels assigns label 0
// or 1 to each row of a gonum matrix, in row order, and allocates a fresh
// slice per call.
//
//   - RegOracle compares the costs predicted by two regression models and
//     picks label 1 when the alternative cost is strictly lower.
//   - LinearThresh labels a row 1 when its dot product with a caller-supplied
//     weight vector is strictly negative.
//   - RandomLinearThresh applies the same rule with weights drawn uniformly
//     from (-1, 1) at construction. It serves as a baseline in experiments.
//
// Oracles never mutate their parameters after construction, so the linear
// oracles are safe for concurrent use. RegOracle is as safe as the regression
// models it wraps.
//
// Example:
//
//	lt := oracle.NewLinearThresh([]float64{1, -1})
//	X := mat.NewDense(2, 2, []float64{2, 1, 1, 2})
//	labels, err := lt.PredictLabels(X) // [0 1]
package oracle
