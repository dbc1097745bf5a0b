package field_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/harmonic/field"
)

func ramp(n int) []float64 {
	x := make([]float64, n)
	for i := range x {
		x[i] = float64(i) - float64(n)/2
	}

	return x
}

func TestMaterialize(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		n       int
		threads int
	}{
		{"empty", 0, 4},
		{"sequential", 10, 1},
		{"small parallel request", 100, 8},
		{"parallel", 50000, 4},
		{"more threads than chunks", 10000, 64},
		{"zero threads", 9000, 0},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			x := ramp(tc.n)
			out := make([]float64, tc.n)
			for i := range out {
				out[i] = math.NaN()
			}
			require.NoError(t, field.Materialize(context.Background(), x, out, tc.threads))
			for i := range x {
				require.Equal(t, -x[i], out[i], "slot %d", i)
			}
		})
	}
}

func TestMaterialize_Float32(t *testing.T) {
	t.Parallel()
	x := []float64{1.5, -2, 0.25}
	out := make([]float32, 3)
	require.NoError(t, field.Materialize(context.Background(), x, out, 2))
	assert.Equal(t, []float32{-1.5, 2, -0.25}, out)
}

type kelvin float64

func TestMaterialize_NamedType(t *testing.T) {
	t.Parallel()
	out := make([]kelvin, 2)
	require.NoError(t, field.Materialize(context.Background(), []float64{-273.15, 0}, out, 1))
	assert.Equal(t, []kelvin{273.15, 0}, out)
}

func TestMaterialize_Errors(t *testing.T) {
	t.Parallel()
	err := field.Materialize(context.Background(), make([]float64, 3), make([]float64, 2), 1)
	assert.ErrorIs(t, err, field.ErrLengthMismatch)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	out := []float64{7}
	err = field.Materialize(ctx, []float64{1}, out, 1)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []float64{7}, out)
}
