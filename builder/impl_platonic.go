// SPDX-License-Identifier: MIT
// Package: harmonic/builder
//
// impl_platonic.go — implementation of PlatonicSolid(name) constructor.
//
// Contract:
//   • name ∈ {Tetrahedron, Cube, Octahedron, Icosahedron}.
//   • Unknown name → ErrOptionViolation (invalid parameter).
//   • Points are scaled by cfg.spacing and translated by cfg.origin; jitter,
//     when enabled, applies to all three axes.
//   • Faces are emitted in the canonical order of variants_platonic.go.
//
// Complexity: O(V+F) for the selected solid (V ≤ 12, F ≤ 20).

package builder

import "fmt"

// PlatonicSolid returns a Constructor that builds the chosen closed surface.
func PlatonicSolid(name PlatonicName) Constructor {
	return func(d *draft, cfg builderConfig) error {
		s, ok := platonicSolids[name]
		if !ok {
			return fmt.Errorf("%s: unknown solid %q: %w", MethodPlatonicSolid, name, ErrOptionViolation)
		}

		b := d.base()
		for _, p := range s.points {
			d.points = append(d.points, cfg.place(p, true))
		}
		for _, f := range s.faces {
			d.tris = append(d.tris, [3]int{b + f[0], b + f[1], b + f[2]})
		}

		return nil
	}
}
