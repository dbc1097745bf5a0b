// Package config loads the run configuration of the harmonic CLI.
// It supports TOML and YAML files (chosen by extension) with environment
// variable overrides on top.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/harmonic/builder"
	"github.com/katalvlaran/harmonic/constraint"
	"github.com/katalvlaran/harmonic/solver"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Mesh kinds understood by MeshConfig.Build.
const (
	KindGrid     = "grid"
	KindTriangle = "triangle"
	KindFan      = "fan"
	KindTetra    = "tetra"
	KindPlatonic = "platonic"
)

// Config is a complete CLI run.
type Config struct {
	// Mesh describes the generated mesh.
	Mesh MeshConfig `toml:"mesh" yaml:"mesh"`

	// Constraints are the pinned vertices and their targets.
	Constraints ConstraintsConfig `toml:"constraints" yaml:"constraints"`

	// Solver configures the harmonic operator.
	Solver SolverConfig `toml:"solver" yaml:"solver"`

	// Telemetry configures span export.
	Telemetry TelemetryConfig `toml:"telemetry" yaml:"telemetry"`
}

// MeshConfig selects a builder fixture. Only the fields of the chosen Kind
// are read.
type MeshConfig struct {
	// Kind is one of grid, triangle, fan, tetra, platonic.
	Kind string `toml:"kind" yaml:"kind"`

	Rows int `toml:"rows" yaml:"rows"` // grid
	Cols int `toml:"cols" yaml:"cols"` // grid
	Rim  int `toml:"rim" yaml:"rim"`   // fan
	NX   int `toml:"nx" yaml:"nx"`     // tetra
	NY   int `toml:"ny" yaml:"ny"`     // tetra
	NZ   int `toml:"nz" yaml:"nz"`     // tetra

	// Solid names a Platonic solid: tetrahedron, cube, octahedron, icosahedron.
	Solid string `toml:"solid" yaml:"solid"`

	// Spacing is the lattice step (default 1).
	Spacing float64 `toml:"spacing" yaml:"spacing"`

	// Jitter perturbs points by up to Jitter·Spacing; needs Seed.
	Jitter float64 `toml:"jitter" yaml:"jitter"`
	Seed   int64   `toml:"seed" yaml:"seed"`
}

// ConstraintsConfig pairs ids with values. Ids are deduplicated and sorted
// before values are assigned by position.
type ConstraintsConfig struct {
	IDs    []int     `toml:"ids" yaml:"ids"`
	Values []float64 `toml:"values" yaml:"values"`
}

// SolverConfig maps onto harmonic options.
type SolverConfig struct {
	// Method is auto, direct (cholesky) or iterative (cg).
	Method string `toml:"method" yaml:"method" env:"HARMONIC_SOLVER"`

	// Cotan selects cotangent weights (default true).
	Cotan bool `toml:"cotan" yaml:"cotan" env:"HARMONIC_COTAN"`

	// LogAlpha is the penalty exponent (default 5).
	LogAlpha float64 `toml:"log_alpha" yaml:"log_alpha" env:"HARMONIC_LOG_ALPHA"`

	// Threads is the worker count (default 1).
	Threads int `toml:"threads" yaml:"threads" env:"HARMONIC_THREADS"`

	// Threshold is the Auto switch point on 2E+V (default 500000).
	Threshold int `toml:"threshold" yaml:"threshold" env:"HARMONIC_THRESHOLD"`

	// Fallback retries with the other solver on failure.
	Fallback bool `toml:"fallback" yaml:"fallback" env:"HARMONIC_FALLBACK"`
}

// TelemetryConfig enables OTLP/HTTP span export when Endpoint is set.
type TelemetryConfig struct {
	Endpoint    string `toml:"endpoint" yaml:"endpoint" env:"HARMONIC_OTEL_ENDPOINT"`
	ServiceName string `toml:"service_name" yaml:"service_name" env:"HARMONIC_SERVICE_NAME"`
}

// Default returns a configuration with every default applied and no mesh.
func Default() *Config {
	return &Config{
		Mesh: MeshConfig{Spacing: 1},
		Solver: SolverConfig{
			Method:    solver.Auto.String(),
			Cotan:     true,
			LogAlpha:  constraint.DefaultLogAlpha,
			Threads:   1,
			Threshold: solver.DefaultThreshold,
		},
		Telemetry: TelemetryConfig{ServiceName: "harmonic"},
	}
}

// Load reads path over the defaults, applies the process environment and
// validates the result.
func Load(path string) (*Config, error) {
	cfg, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	if err := ApplyEnv(cfg, nil); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFile decodes a .toml, .yaml or .yml file over Default().
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	default:
		return nil, fmt.Errorf("config file %q: unsupported extension %q: %w", path, ext, ErrInvalidConfig)
	}

	return cfg, nil
}

// ApplyEnv overlays HARMONIC_* variables on cfg. A nil environ reads the
// process environment; unset variables leave fields untouched.
func ApplyEnv(cfg *Config, environ map[string]string) error {
	if err := env.ParseWithOptions(cfg, env.Options{Environment: environ}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	return nil
}

// Validate checks mesh parameters, constraint lengths and solver settings.
func (c *Config) Validate() error {
	if err := c.Mesh.validate(); err != nil {
		return err
	}
	// The mesh size is unknown here; the upper id bound is checked by Execute.
	distinct, err := constraint.Distinct(math.MaxInt, c.Constraints.IDs)
	if err != nil {
		return fmt.Errorf("constraints.ids: %v: %w", err, ErrInvalidConfig)
	}
	if len(c.Constraints.Values) < len(distinct) {
		return fmt.Errorf("constraints: %d values for %d distinct ids: %w",
			len(c.Constraints.Values), len(distinct), ErrInvalidConfig)
	}
	if _, err := solver.ParseMethod(c.Solver.Method); err != nil {
		return fmt.Errorf("solver.method: %v: %w", err, ErrInvalidConfig)
	}
	if _, err := constraint.Alpha(c.Solver.LogAlpha); err != nil {
		return fmt.Errorf("solver.log_alpha: %v: %w", err, ErrInvalidConfig)
	}
	if c.Solver.Threads < 1 {
		return fmt.Errorf("solver.threads must be >= 1, got %d: %w", c.Solver.Threads, ErrInvalidConfig)
	}
	if c.Solver.Threshold < 0 {
		return fmt.Errorf("solver.threshold must be >= 0, got %d: %w", c.Solver.Threshold, ErrInvalidConfig)
	}

	return nil
}

func (m MeshConfig) validate() error {
	bad := func(format string, args ...any) error {
		return fmt.Errorf("mesh: "+format+": %w", append(args, ErrInvalidConfig)...)
	}
	if !(m.Spacing > 0) {
		return bad("spacing must be > 0, got %g", m.Spacing)
	}
	if m.Jitter < 0 || m.Jitter >= 0.5 {
		return bad("jitter must be in [0, 0.5), got %g", m.Jitter)
	}
	switch m.Kind {
	case KindTriangle:
	case KindGrid:
		if m.Rows < builder.MinGridDim || m.Cols < builder.MinGridDim {
			return bad("grid needs rows, cols >= %d, got %dx%d", builder.MinGridDim, m.Rows, m.Cols)
		}
	case KindFan:
		if m.Rim < builder.MinFanRim {
			return bad("fan needs rim >= %d, got %d", builder.MinFanRim, m.Rim)
		}
	case KindTetra:
		if m.NX < builder.MinTetraDim || m.NY < builder.MinTetraDim || m.NZ < builder.MinTetraDim {
			return bad("tetra needs nx, ny, nz >= %d, got %dx%dx%d", builder.MinTetraDim, m.NX, m.NY, m.NZ)
		}
	case KindPlatonic:
		if _, ok := builder.ParsePlatonicName(m.Solid); !ok {
			return bad("unknown platonic solid %q", m.Solid)
		}
	default:
		return bad("unknown kind %q (valid: grid, triangle, fan, tetra, platonic)", m.Kind)
	}

	return nil
}
