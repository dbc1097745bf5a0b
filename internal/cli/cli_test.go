package cli

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/harmonic"
	"github.com/katalvlaran/harmonic/solver"
)

// run executes the root command with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := RootCommand(&stderr)
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())

	return stdout.String(), stderr.String(), err
}

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

const gridRun = `
[mesh]
kind = "grid"
rows = 3
cols = 3

[constraints]
ids = [0, 8]
values = [0.0, 1.0]
`

func TestSolve_CSV(t *testing.T) {
	path := writeConfig(t, "run.toml", gridRun)
	stdout, stderr, err := run(t, "solve", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, stderr, "built mesh")
	assert.Contains(t, stderr, "ending computation")

	rows, err := csv.NewReader(bytes.NewBufferString(stdout)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 10)
	assert.Equal(t, []string{"vertex", "value"}, rows[0])
	first, err := strconv.ParseFloat(rows[1][1], 64)
	require.NoError(t, err)
	last, err := strconv.ParseFloat(rows[9][1], 64)
	require.NoError(t, err)
	assert.InDelta(t, 0, first, 1e-3)
	assert.InDelta(t, 1, last, 1e-3)
}

func TestSolve_JSONFile(t *testing.T) {
	path := writeConfig(t, "run.yaml", `
mesh:
  kind: fan
  rim: 6
constraints:
  ids: [1, 4]
  values: [-1, 1]
solver:
  method: iterative
  threads: 2
`)
	out := filepath.Join(t.TempDir(), "field.json")
	_, _, err := run(t, "solve", "-c", path, "-o", out, "-v")
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	var doc fieldDoc
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "success", doc.Status)
	assert.Equal(t, "iterative", doc.Method)
	assert.Equal(t, "cotan", doc.Weighting)
	assert.NotEmpty(t, doc.Run)
	require.Len(t, doc.Values, 7)
	assert.InDelta(t, 0, doc.Values[0], 1e-6, "hub sits between opposite rim values")
}

func TestSolve_BestEffortField(t *testing.T) {
	path := writeConfig(t, "run.toml", `
[mesh]
kind = "triangle"
`)
	stdout, stderr, err := run(t, "solve", "--config", path, "--format", "json")
	var se *harmonic.SolveError
	require.True(t, errors.As(err, &se), "err = %v", err)
	assert.Equal(t, solver.NumericalIssue, se.Status)
	assert.Contains(t, stderr, "writing best-effort field")

	var doc fieldDoc
	require.NoError(t, json.Unmarshal([]byte(stdout), &doc))
	assert.Equal(t, "numerical issue", doc.Status)
	assert.Len(t, doc.Values, 3)
}

func TestSolve_Errors(t *testing.T) {
	_, _, err := run(t, "solve")
	assert.Error(t, err, "missing --config")

	_, _, err = run(t, "solve", "--config", writeConfig(t, "run.toml", `[mesh]
kind = "torus"
`))
	assert.Error(t, err)

	_, _, err = run(t, "solve", "--config", writeConfig(t, "run.toml", gridRun), "--format", "xml")
	assert.Error(t, err)
}

func TestSelect(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"select", "--vertices", "100000", "--edges", "200000"}, "direct\n"},
		{[]string{"select", "--vertices", "100001", "--edges", "200000"}, "iterative\n"},
		{[]string{"select", "--vertices", "10", "--edges", "10", "--threshold", "5"}, "iterative\n"},
		{[]string{"select", "--vertices", "10", "--edges", "10", "--method", "cholesky", "--threshold", "5"}, "direct\n"},
	}
	for _, tc := range tests {
		stdout, _, err := run(t, tc.args...)
		require.NoError(t, err, tc.args)
		assert.Equal(t, tc.want, stdout, tc.args)
	}

	_, _, err := run(t, "select", "--method", "qr")
	assert.ErrorIs(t, err, solver.ErrUnknownMethod)
	_, _, err = run(t, "select", "--vertices", "-1")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	SetVersion("v0.3.0", "abc123", "2026-01-01")
	defer SetVersion("dev", "none", "unknown")

	stdout, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "harmonic v0.3.0\ncommit: abc123\nbuilt: 2026-01-01\n", stdout)
}

func TestOutputFormat(t *testing.T) {
	for _, tc := range []struct{ format, out, want string }{
		{"", "", FormatCSV},
		{"", "f.JSON", FormatJSON},
		{"", "f.csv", FormatCSV},
		{"json", "f.csv", FormatJSON},
		{"CSV", "", FormatCSV},
	} {
		got, err := outputFormat(tc.format, tc.out)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "%q %q", tc.format, tc.out)
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)
	logger.Debug("hidden")
	assert.Zero(t, buf.Len())
	logger.Info("shown")
	assert.Contains(t, buf.String(), "shown")

	ctx := withLogger(context.Background(), logger)
	assert.Same(t, logger, loggerFromContext(ctx))
	assert.Same(t, log.Default(), loggerFromContext(context.Background()))
}
