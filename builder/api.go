// SPDX-License-Identifier: MIT
// Package: harmonic/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildMesh(bopts, cons...). Resolves cfg, runs cons in order
//     over a shared draft, then hands the draft to mesh.New for validation.
//   - All public factories are declared here, implemented in impl_*.go.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical meshes.
//   - Safety: never panic at runtime; return sentinel errors from constructors.
//
// AI-Hints (practical):
//   - Compose several constructors to get a mesh with disconnected components;
//     each constructor numbers its vertices after the previous ones.
//   - Use WithSeed(...) together with WithJitter(...) to get reproducible
//     irregular geometry (cotangent weights then differ from combinatorial ones).

package builder

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/harmonic/mesh"
)

// draft accumulates points and cells while constructors run.
type draft struct {
	points []r3.Vec
	tris   [][3]int
	tets   [][4]int
}

// base returns the id the next added vertex will get.
func (d *draft) base() int { return len(d.points) }

// Constructor appends a deterministic piece of mesh to the draft using the
// resolved builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Number their vertices from d.base() upwards.
//   - Preserve determinism for the same config and call order.
type Constructor func(d *draft, cfg builderConfig) error

// BuildMesh resolves the builder configuration from bopts, applies all
// constructors in order and validates the result with mesh.New.
// Any constructor error is wrapped with "BuildMesh: %w" and returned
// immediately.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor, plus mesh.New.
//
// Errors:
//   - Wraps constructor errors via %w; callers should branch with errors.Is
//     against builder sentinels (ErrTooFewVertices, ErrNeedRandSource, ...).
func BuildMesh(bopts []BuilderOption, cons ...Constructor) (*mesh.Mesh, error) {
	cfg := newBuilderConfig(bopts...)
	if cfg.jitter > 0 && cfg.rng == nil {
		return nil, fmt.Errorf("BuildMesh: jitter %.3g: %w", cfg.jitter, ErrNeedRandSource)
	}

	d := &draft{}
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildMesh: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(d, cfg); err != nil {
			return nil, fmt.Errorf("BuildMesh: %w", err)
		}
	}

	m, err := mesh.New(d.points, d.tris, d.tets)
	if err != nil {
		return nil, fmt.Errorf("BuildMesh: %v: %w", err, ErrConstructFailed)
	}

	return m, nil
}

// =============================================================================
// Mesh factories (declarations) - implemented in impl_*.go
// =============================================================================

// Triangle builds a single right triangle with legs of length cfg.spacing.
// Complexity: O(1).
//func Triangle() Constructor

// Grid builds a rows×cols vertex lattice, each quad split along its
// (r,c)-(r+1,c+1) diagonal (rows, cols ≥ 2).
// Complexity: O(rows*cols).
//func Grid(rows, cols int) Constructor

// Fan builds a disk: a hub plus a ring of n rim vertices (n ≥ 3).
// Complexity: O(n).
//func Fan(n int) Constructor

// TetraBlock builds an nx×ny×nz vertex lattice with every cube split into
// six tetrahedra (each dimension ≥ 2).
// Complexity: O(nx*ny*nz).
//func TetraBlock(nx, ny, nz int) Constructor

// PlatonicSolid builds the triangulated surface of a Platonic solid.
// Complexity: O(1) (at most 12 vertices, 20 faces).
//func PlatonicSolid(name PlatonicName) Constructor
