package oracle

import (
	"fmt"
	"math"
	"testing"

	"github.com/YuminosukeSato/cscoracle/core/model"
	"github.com/YuminosukeSato/cscoracle/linear"
	"github.com/YuminosukeSato/cscoracle/pkg/errors"
	"github.com/YuminosukeSato/cscoracle/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

var _ model.LabelPredictor = (*RegOracle)(nil)

// column returns a regressor whose cost is feature j of the row.
func column(j int) model.RegressorFunc {
	return func(row []float64) (float64, error) {
		return row[j], nil
	}
}

type badShape struct{ rows, cols int }

func (b badShape) Predict(X mat.Matrix) (mat.Matrix, error) {
	return mat.NewDense(b.rows, b.cols, nil), nil
}

type panicking struct{}

func (panicking) Predict(X mat.Matrix) (mat.Matrix, error) {
	panic("index out of range")
}

func TestRegOraclePredictLabels(t *testing.T) {
	// column 0 is the baseline cost, column 1 the alternative cost.
	X := mat.NewDense(5, 2, []float64{
		1, 2, // baseline cheaper -> 0
		3, 1, // alternative cheaper -> 1
		2, 2, // tie -> 0
		math.NaN(), 0, // NaN -> 0
		-1, -1.5, // alternative cheaper -> 1
	})
	want := []int{0, 1, 0, 0, 1}

	for _, rowWise := range []bool{false, true} {
		t.Run(fmt.Sprintf("rowWise=%v", rowWise), func(t *testing.T) {
			o := NewRegOracle(column(0), column(1), WithRowWise(rowWise))
			got, err := o.PredictLabels(X)
			require.NoError(t, err)
			assert.Equal(t, want, got)

			again, err := o.PredictLabels(X)
			require.NoError(t, err)
			assert.Equal(t, got, again)
		})
	}
}

func TestRegOracleEmptyDataset(t *testing.T) {
	calls := 0
	counting := model.RegressorFunc(func(row []float64) (float64, error) {
		calls++
		return 0, nil
	})

	labels, err := NewRegOracle(counting, counting).PredictLabels(&mat.Dense{})
	require.NoError(t, err)
	assert.Empty(t, labels)
	assert.Zero(t, calls)
}

func TestRegOracleRegressorError(t *testing.T) {
	cause := fmt.Errorf("feature 3 missing")
	failing := model.RegressorFunc(func(row []float64) (float64, error) {
		return 0, cause
	})
	X := mat.NewDense(2, 2, []float64{1, 2, 3, 4})

	tests := []struct {
		name     string
		oracle   *RegOracle
		wantKind string
	}{
		{"baseline", NewRegOracle(failing, column(1)), "baseline regressor failed"},
		{"alternative", NewRegOracle(column(0), failing), "alternative regressor failed"},
		{"row-wise baseline", NewRegOracle(failing, column(1), WithRowWise(true)), "baseline regressor failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			labels, err := tt.oracle.PredictLabels(X)
			require.Error(t, err)
			assert.Nil(t, labels)
			assert.True(t, errors.Is(err, cause))

			var modelErr *errors.ModelError
			require.True(t, errors.As(err, &modelErr))
			assert.Equal(t, "RegOracle.PredictLabels", modelErr.Op)
			assert.Equal(t, tt.wantKind, modelErr.Kind)
		})
	}
}

func TestRegOracleRowWiseStopsAtFirstFailingRow(t *testing.T) {
	calls := 0
	baseline := model.RegressorFunc(func(row []float64) (float64, error) {
		calls++
		if row[0] < 0 {
			return 0, fmt.Errorf("negative feature")
		}
		return row[0], nil
	})
	X := mat.NewDense(4, 2, []float64{1, 0, -1, 0, -2, 0, 3, 0})

	_, err := NewRegOracle(baseline, column(1), WithRowWise(true)).PredictLabels(X)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 1")
	assert.Equal(t, 2, calls)
}

func TestRegOracleWrongOutputShape(t *testing.T) {
	X := mat.NewDense(3, 2, nil)

	_, err := NewRegOracle(badShape{rows: 2, cols: 1}, column(1)).PredictLabels(X)
	var dimErr *errors.DimensionError
	require.True(t, errors.As(err, &dimErr))
	assert.Equal(t, 0, dimErr.Axis)
	assert.Equal(t, 3, dimErr.Expected)
	assert.Equal(t, 2, dimErr.Got)

	_, err = NewRegOracle(column(0), badShape{rows: 3, cols: 2}).PredictLabels(X)
	require.True(t, errors.As(err, &dimErr))
	assert.Equal(t, 1, dimErr.Axis)
}

func TestRegOracleRecoversRegressorPanic(t *testing.T) {
	labels, err := NewRegOracle(panicking{}, column(1)).PredictLabels(mat.NewDense(1, 2, nil))
	require.Error(t, err)
	assert.Nil(t, labels)

	var panicErr *errors.PanicError
	require.True(t, errors.As(err, &panicErr))
	assert.Equal(t, "RegOracle.PredictLabels", panicErr.Operation)
	assert.Equal(t, "index out of range", panicErr.PanicValue)
}

func TestRegOracleWithLinearRegression(t *testing.T) {
	// cost0 = x, cost1 = 2 - x, so label 1 exactly when x > 1.
	X := mat.NewDense(6, 1, []float64{-1, 0, 0.5, 1.5, 2, 3})
	cost0 := mat.NewVecDense(6, nil)
	cost1 := mat.NewVecDense(6, nil)
	for i := 0; i < 6; i++ {
		x := X.At(i, 0)
		cost0.SetVec(i, x)
		cost1.SetVec(i, 2-x)
	}

	b0 := linear.NewLinearRegression()
	require.NoError(t, b0.Fit(X, cost0))
	b1 := linear.NewLinearRegression()
	require.NoError(t, b1.Fit(X, cost1))

	o := NewRegOracle(b0, b1)
	assert.Same(t, b0, o.Baseline())
	assert.Same(t, b1, o.Alternative())

	test := mat.NewDense(4, 1, []float64{-5, 0.9, 1.1, 10})
	for _, rowWise := range []bool{false, true} {
		got, err := NewRegOracle(b0, b1, WithRowWise(rowWise)).PredictLabels(test)
		require.NoError(t, err)
		assert.Equal(t, []int{0, 0, 1, 1}, got)
	}
}

func TestRegOracleUnfittedRegressor(t *testing.T) {
	o := NewRegOracle(linear.NewLinearRegression(), column(0))
	_, err := o.PredictLabels(mat.NewDense(1, 1, []float64{1}))

	var nfe *errors.NotFittedError
	require.True(t, errors.As(err, &nfe))
	var modelErr *errors.ModelError
	require.True(t, errors.As(err, &modelErr))
}

func TestRegOracleLogsDebugTrace(t *testing.T) {
	logger, _ := log.NewTestLogger(log.LevelDebug)
	o := NewRegOracle(column(0), column(1), WithLogger(logger), WithRowWise(true))

	_, err := o.PredictLabels(mat.NewDense(2, 2, []float64{1, 0, 0, 1}))
	require.NoError(t, err)

	assert.True(t, logger.ContainsField(log.ModelNameKey, "RegOracle"))
	assert.True(t, logger.ContainsField(log.RowWiseKey, true))
	assert.True(t, logger.ContainsField(log.PositivesKey, 1.0))
}

func TestRegOracleFollowsPackageProvider(t *testing.T) {
	prev := log.Provider()
	t.Cleanup(func() { log.SetProvider(prev) })

	o := NewRegOracle(column(0), column(1))
	provider, buf := log.NewTestLoggerProvider(log.LevelDebug)
	log.SetProvider(provider)

	_, err := o.PredictLabels(mat.NewDense(1, 2, []float64{1, 0}))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "labels predicted")
	assert.Contains(t, buf.String(), `"model.name":"RegOracle"`)
}

// noColumns is an n×0 dataset. mat.Dense cannot represent it.
type noColumns struct{ rows int }

func (m noColumns) Dims() (int, int) { return m.rows, 0 }
func (m noColumns) At(i, j int) float64 { panic(mat.ErrIndexOutOfRange) }
func (m noColumns) T() mat.Matrix { return mat.Transpose{Matrix: m} }

func TestRegOracleRowWiseWithoutColumns(t *testing.T) {
	o := NewRegOracle(column(0), column(0), WithRowWise(true))

	labels, err := o.PredictLabels(noColumns{rows: 2})
	require.Error(t, err)
	assert.Nil(t, labels)

	var valueErr *errors.ValueError
	require.True(t, errors.As(err, &valueErr))
	var panicErr *errors.PanicError
	assert.False(t, errors.As(err, &panicErr))
}
