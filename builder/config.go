// SPDX-License-Identifier: MIT
// Package: harmonic/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults (no surprises):
//   • rng     = nil          (pure/deterministic unless seeded)
//   • spacing = 1.0          (lattice step and solid scale)
//   • jitter  = 0.0          (no perturbation)
//   • origin  = (0, 0, 0)

package builder

import (
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	rng     *rand.Rand // nil means “no randomness”
	spacing float64    // > 0
	jitter  float64    // fraction of spacing, in [0, maxJitter)
	origin  r3.Vec     // translation applied to every point
}

// Deterministic defaults (named, no magic numbers).
const (
	defaultSpacing = 1.0
	defaultJitter  = 0.0
	// maxJitter keeps lattice cells non-inverted: two neighbors moved toward
	// each other by < ½·spacing each never cross.
	maxJitter = 0.5
)

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		spacing: defaultSpacing,
		jitter:  defaultJitter,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// place maps a unit-lattice coordinate to world space:
// origin + spacing·p, plus a uniform perturbation of up to jitter·spacing
// on X and Y (and Z when jitterZ is set, for volumes).
// The RNG is consumed in a fixed order, so output is reproducible per seed.
func (c builderConfig) place(p r3.Vec, jitterZ bool) r3.Vec {
	q := r3.Add(c.origin, r3.Scale(c.spacing, p))
	if c.jitter == 0 || c.rng == nil {
		return q
	}
	amp := c.jitter * c.spacing
	q.X += amp * (2*c.rng.Float64() - 1)
	q.Y += amp * (2*c.rng.Float64() - 1)
	if jitterZ {
		q.Z += amp * (2*c.rng.Float64() - 1)
	}

	return q
}
