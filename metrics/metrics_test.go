package metrics

import (
	"testing"

	"github.com/YuminosukeSato/cscoracle/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestCostSensitiveLoss(t *testing.T) {
	tests := []struct {
		name    string
		labels  []int
		costs0  []float64
		costs1  []float64
		want    float64
		wantErr bool
	}{
		{
			name:   "mixed labels",
			labels: []int{0, 1, 1, 0},
			costs0: []float64{1, 2, 3, 4},
			costs1: []float64{10, 20, 30, 40},
			want:   1 + 20 + 30 + 4,
		},
		{
			name:   "all zero",
			labels: []int{0, 0},
			costs0: []float64{0.5, -0.5},
			costs1: []float64{9, 9},
			want:   0,
		},
		{name: "empty", wantErr: true},
		{name: "short costs", labels: []int{0, 1}, costs0: []float64{1}, costs1: []float64{1, 2}, wantErr: true},
		{name: "bad label", labels: []int{2}, costs0: []float64{1}, costs1: []float64{1}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CostSensitiveLoss(tt.labels, tt.costs0, tt.costs1)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestAccuracy(t *testing.T) {
	acc, err := Accuracy([]int{0, 1, 1, 0}, []int{0, 1, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, 0.75, acc)

	_, err = Accuracy([]int{0, 1}, []int{0})
	var dimErr *errors.DimensionError
	assert.True(t, errors.As(err, &dimErr))

	_, err = Accuracy(nil, nil)
	var valErr *errors.ValueError
	assert.True(t, errors.As(err, &valErr))
}

func TestPositiveRate(t *testing.T) {
	rate, err := PositiveRate([]int{1, 0, 0, 1, 1})
	require.NoError(t, err)
	assert.InDelta(t, 0.6, rate, 1e-12)

	_, err = PositiveRate([]int{})
	assert.Error(t, err)
}

func TestMSE(t *testing.T) {
	yTrue := mat.NewVecDense(3, []float64{1, 2, 3})
	yPred := mat.NewDense(3, 1, []float64{1, 3, 5})

	got, err := MSE(yTrue, yPred)
	require.NoError(t, err)
	assert.InDelta(t, 5.0/3.0, got, 1e-12)

	_, err = MSE(yTrue, mat.NewVecDense(2, []float64{1, 2}))
	var dimErr *errors.DimensionError
	assert.True(t, errors.As(err, &dimErr))

	_, err = MSE(yTrue, mat.NewDense(3, 2, nil))
	var valErr *errors.ValueError
	assert.True(t, errors.As(err, &valErr))
}
