package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/harmonic/internal/config"
)

const tomlRun = `
[mesh]
kind = "grid"
rows = 4
cols = 5
jitter = 0.1
seed = 7

[constraints]
ids = [0, 19]
values = [0.0, 1.0]

[solver]
method = "iterative"
log_alpha = 6.0
threads = 2
`

const yamlRun = `
mesh:
  kind: tetra
  nx: 3
  ny: 3
  nz: 2
constraints:
  ids: [0, 17]
  values: [1, -1]
solver:
  cotan: false
  fallback: true
`

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoadFile_TOML(t *testing.T) {
	t.Parallel()
	cfg, err := config.LoadFile(writeFile(t, "run.toml", tomlRun))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, config.KindGrid, cfg.Mesh.Kind)
	assert.Equal(t, 4, cfg.Mesh.Rows)
	assert.Equal(t, 1.0, cfg.Mesh.Spacing, "default kept")
	assert.Equal(t, []int{0, 19}, cfg.Constraints.IDs)
	assert.Equal(t, "iterative", cfg.Solver.Method)
	assert.Equal(t, 6.0, cfg.Solver.LogAlpha)
	assert.True(t, cfg.Solver.Cotan, "default kept")
	assert.Equal(t, 500000, cfg.Solver.Threshold)

	m, err := cfg.Mesh.Build()
	require.NoError(t, err)
	assert.Equal(t, 20, m.VertexNumber())
}

func TestLoadFile_YAML(t *testing.T) {
	t.Parallel()
	cfg, err := config.LoadFile(writeFile(t, "run.yml", yamlRun))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.False(t, cfg.Solver.Cotan)
	assert.True(t, cfg.Solver.Fallback)
	assert.Equal(t, "auto", cfg.Solver.Method)

	m, err := cfg.Mesh.Build()
	require.NoError(t, err)
	assert.Equal(t, 18, m.VertexNumber())
	assert.True(t, m.IsVolume())
}

func TestLoadFile_Errors(t *testing.T) {
	t.Parallel()
	_, err := config.LoadFile(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
	_, err = config.LoadFile(writeFile(t, "run.json", "{}"))
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
	_, err = config.LoadFile(writeFile(t, "run.toml", "[mesh\n"))
	assert.Error(t, err)
	_, err = config.LoadFile(writeFile(t, "run.yaml", "mesh: [1, 2"))
	assert.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	t.Parallel()
	cfg := config.Default()
	cfg.Solver.Threads = 3
	require.NoError(t, config.ApplyEnv(cfg, map[string]string{
		"HARMONIC_LOG_ALPHA":     "7.5",
		"HARMONIC_SOLVER":        "cg",
		"HARMONIC_COTAN":         "false",
		"HARMONIC_OTEL_ENDPOINT": "http://localhost:4318",
	}))
	assert.Equal(t, 7.5, cfg.Solver.LogAlpha)
	assert.Equal(t, "cg", cfg.Solver.Method)
	assert.False(t, cfg.Solver.Cotan)
	assert.Equal(t, 3, cfg.Solver.Threads, "unset variable leaves field")
	assert.Equal(t, "http://localhost:4318", cfg.Telemetry.Endpoint)

	err := config.ApplyEnv(cfg, map[string]string{"HARMONIC_THREADS": "many"})
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Parallel()
	valid := func() *config.Config {
		c := config.Default()
		c.Mesh.Kind = config.KindTriangle
		return c
	}
	tests := []struct {
		name   string
		mutate func(c *config.Config)
	}{
		{"unknown kind", func(c *config.Config) { c.Mesh.Kind = "torus" }},
		{"small grid", func(c *config.Config) { c.Mesh.Kind, c.Mesh.Rows, c.Mesh.Cols = config.KindGrid, 1, 4 }},
		{"small fan", func(c *config.Config) { c.Mesh.Kind, c.Mesh.Rim = config.KindFan, 2 }},
		{"flat tetra", func(c *config.Config) { c.Mesh.Kind, c.Mesh.NX, c.Mesh.NY, c.Mesh.NZ = config.KindTetra, 2, 2, 1 }},
		{"bad solid", func(c *config.Config) { c.Mesh.Kind, c.Mesh.Solid = config.KindPlatonic, "dodecahedron" }},
		{"zero spacing", func(c *config.Config) { c.Mesh.Spacing = 0 }},
		{"big jitter", func(c *config.Config) { c.Mesh.Jitter = 0.5 }},
		{"short values", func(c *config.Config) { c.Constraints.IDs = []int{0, 1} }},
		{"short values after dedup", func(c *config.Config) {
			c.Constraints.IDs, c.Constraints.Values = []int{2, 0, 2, 1}, []float64{1, 2}
		}},
		{"negative id", func(c *config.Config) { c.Constraints.IDs, c.Constraints.Values = []int{-1}, []float64{1} }},
		{"bad method", func(c *config.Config) { c.Solver.Method = "qr" }},
		{"huge log alpha", func(c *config.Config) { c.Solver.LogAlpha = 1000 }},
		{"no threads", func(c *config.Config) { c.Solver.Threads = 0 }},
		{"negative threshold", func(c *config.Config) { c.Solver.Threshold = -1 }},
	}
	require.NoError(t, valid().Validate())

	dup := valid()
	dup.Constraints.IDs, dup.Constraints.Values = []int{2, 0, 2}, []float64{1, 2}
	require.NoError(t, dup.Validate(), "one value per distinct id is enough")

	for _, tc := range tests {
		c := valid()
		tc.mutate(c)
		assert.ErrorIs(t, c.Validate(), config.ErrInvalidConfig, tc.name)
	}
}

func TestMeshConfig_Build(t *testing.T) {
	t.Parallel()
	tests := []struct {
		mesh     config.MeshConfig
		vertices int
	}{
		{config.MeshConfig{Kind: config.KindTriangle, Spacing: 1}, 3},
		{config.MeshConfig{Kind: config.KindFan, Rim: 6, Spacing: 2}, 7},
		{config.MeshConfig{Kind: config.KindPlatonic, Solid: "icosahedron", Spacing: 1}, 12},
		{config.MeshConfig{Kind: config.KindGrid, Rows: 3, Cols: 3, Spacing: 1, Jitter: 0.2, Seed: 1}, 9},
	}
	for _, tc := range tests {
		m, err := tc.mesh.Build()
		require.NoError(t, err, tc.mesh.Kind)
		assert.Equal(t, tc.vertices, m.VertexNumber(), tc.mesh.Kind)
	}
	_, err := config.MeshConfig{Kind: "torus", Spacing: 1}.Build()
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}
