// SPDX-License-Identifier: MIT
// Package: harmonic/builder
//
// options.go — functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"
)

// BuilderOption customizes mesh generation by mutating a builderConfig
// before any constructor runs.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for jittered geometry.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithSpacing sets the lattice step (and Platonic scale). Panics unless
// spacing is finite and > 0.
func WithSpacing(spacing float64) BuilderOption {
	if !(spacing > 0) || math.IsInf(spacing, 0) {
		panic("builder: WithSpacing(spacing<=0)")
	}
	return func(c *builderConfig) {
		c.spacing = spacing
	}
}

// WithJitter perturbs every generated point by up to fraction·spacing per
// axis. fraction must lie in [0, 0.5); requires WithSeed or WithRand when > 0.
func WithJitter(fraction float64) BuilderOption {
	if !(fraction >= 0 && fraction < maxJitter) {
		panic("builder: WithJitter(fraction outside [0,0.5))")
	}
	return func(c *builderConfig) {
		c.jitter = fraction
	}
}

// WithOrigin translates every generated point by o.
func WithOrigin(o r3.Vec) BuilderOption {
	return func(c *builderConfig) {
		c.origin = o
	}
}
