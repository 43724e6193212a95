package errors

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecoverWithPanic(t *testing.T) {
	predict := func() (labels []int, err error) {
		defer Recover(&err, "RegOracle.PredictLabels")
		panic("regressor blew up")
	}

	labels, err := predict()
	require.Error(t, err)
	assert.Nil(t, labels)

	var panicErr *PanicError
	require.True(t, As(err, &panicErr))
	assert.Equal(t, "RegOracle.PredictLabels", panicErr.Operation)
	assert.Equal(t, "regressor blew up", panicErr.PanicValue)
	assert.NotEmpty(t, panicErr.StackTrace)
	assert.Equal(t, "panic in RegOracle.PredictLabels: regressor blew up", panicErr.Error())
}

func TestRecoverWithoutPanic(t *testing.T) {
	run := func() (err error) {
		defer Recover(&err, "noop")
		return nil
	}
	assert.NoError(t, run())
}

func TestRecoverWrapsExistingError(t *testing.T) {
	original := fmt.Errorf("first failure")
	run := func() (err error) {
		defer Recover(&err, "op")
		err = original
		panic("second failure")
	}

	err := run()
	require.Error(t, err)
	assert.True(t, Is(err, original))
	assert.Contains(t, err.Error(), "second failure")
}

func TestSafeExecute(t *testing.T) {
	tests := []struct {
		name      string
		fn        func() error
		wantPanic bool
		wantErr   bool
	}{
		{name: "success", fn: func() error { return nil }},
		{name: "error", fn: func() error { return fmt.Errorf("boom") }, wantErr: true},
		{name: "panic", fn: func() error { panic(42) }, wantErr: true, wantPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := SafeExecute("safe", tt.fn)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var panicErr *PanicError
			assert.Equal(t, tt.wantPanic, As(err, &panicErr))
		})
	}
}

func TestPanicErrorString(t *testing.T) {
	panicErr := NewPanicError("TestOp", "test value")

	str := panicErr.String()
	assert.True(t, strings.HasPrefix(str, "panic in TestOp: test value"))
	assert.Contains(t, str, "Stack trace:")
}

func BenchmarkRecoverNoPanic(b *testing.B) {
	for i := 0; i < b.N; i++ {
		func() (err error) {
			defer Recover(&err, "BenchmarkOp")
			return nil
		}()
	}
}
