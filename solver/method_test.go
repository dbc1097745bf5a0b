package solver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/harmonic/solver"
)

func TestSelect(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		method solver.Method
		v, e   int
		want   solver.Method
	}{
		{"small auto", solver.Auto, 100, 300, solver.Direct},
		{"score at threshold", solver.Auto, 100000, 200000, solver.Direct},
		{"score above threshold", solver.Auto, 100001, 200000, solver.Iterative},
		{"direct forced", solver.Direct, 1 << 20, 1 << 22, solver.Direct},
		{"iterative forced", solver.Iterative, 3, 3, solver.Iterative},
	}
	for _, tc := range tests {
		got, err := solver.Select(tc.method, tc.v, tc.e, solver.DefaultThreshold)
		require.NoError(t, err, tc.name)
		assert.Equal(t, tc.want, got, tc.name)
	}

	_, err := solver.Select(solver.Method(9), 1, 1, solver.DefaultThreshold)
	assert.ErrorIs(t, err, solver.ErrUnknownMethod)
	assert.Equal(t, 500000, solver.Score(100000, 200000))
}

func TestParseMethod(t *testing.T) {
	t.Parallel()
	for in, want := range map[string]solver.Method{
		"":          solver.Auto,
		"auto":      solver.Auto,
		"Direct":    solver.Direct,
		"cholesky":  solver.Direct,
		"ldlt":      solver.Direct,
		" CG ":      solver.Iterative,
		"iterative": solver.Iterative,
	} {
		got, err := solver.ParseMethod(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := solver.ParseMethod("qr")
	assert.ErrorIs(t, err, solver.ErrUnknownMethod)
}

func TestStatus(t *testing.T) {
	t.Parallel()
	assert.NoError(t, solver.Success.Err())
	assert.ErrorIs(t, solver.NumericalIssue.Err(), solver.ErrNumericalIssue)
	assert.ErrorIs(t, solver.NoConvergence.Err(), solver.ErrNoConvergence)
	assert.ErrorIs(t, solver.InvalidInput.Err(), solver.ErrInvalidInput)
	assert.Equal(t, "numerical issue", solver.NumericalIssue.String())
	assert.Equal(t, "iterative", solver.Iterative.String())
}
