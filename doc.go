// Package cscoracle provides cost-sensitive classification oracles for
// fairness-constrained learners written in Go.
//
// A fair-learning loop repeatedly asks an oracle to label a dataset. The
// oracles in this module take a gonum matrix and return one 0/1 label per row.
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//
//	    "github.com/YuminosukeSato/cscoracle/oracle"
//	    "gonum.org/v1/gonum/mat"
//	)
//
//	func main() {
//	    lt := oracle.NewLinearThresh([]float64{1, -1})
//	    X := mat.NewDense(2, 2, []float64{2, 1, 1, 2})
//
//	    labels, err := lt.PredictLabels(X)
//	    if err != nil {
//	        panic(err)
//	    }
//	    fmt.Println(labels) // [0 1]
//	}
//
// # Packages
//
//   - oracle: RegOracle, LinearThresh, RandomLinearThresh
//   - linear: ordinary least squares regressor usable as a RegOracle cost model
//   - metrics: CSC cost of a labelling, accuracy, positive rate, MSE
//   - core/model: Regressor and LabelPredictor interfaces
//   - core/parallel: row-range parallelism
//   - pkg/errors: structured errors with stack traces
//   - pkg/log: structured logging backed by zerolog
//
// # Performance
//
// The linear oracles and LinearRegression.Fit split rows across CPU cores
// once a dataset exceeds 1000 rows. Labels do not depend on the split.
package cscoracle
