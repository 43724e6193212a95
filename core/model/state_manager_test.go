package model

import (
	"testing"

	"github.com/YuminosukeSato/cscoracle/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateManagerLifecycle(t *testing.T) {
	s := NewStateManager()
	assert.False(t, s.IsFitted())

	err := s.RequireFitted("LinearRegression", "Predict")
	require.Error(t, err)
	var nfe *errors.NotFittedError
	assert.True(t, errors.As(err, &nfe))
	assert.Equal(t, "Predict", nfe.Method)

	s.SetFitted(3, 10)
	assert.True(t, s.IsFitted())
	assert.NoError(t, s.RequireFitted("LinearRegression", "Predict"))
	f, n := s.Dimensions()
	assert.Equal(t, 3, f)
	assert.Equal(t, 10, n)

	s.Reset()
	assert.False(t, s.IsFitted())
	f, n = s.Dimensions()
	assert.Zero(t, f)
	assert.Zero(t, n)
}
