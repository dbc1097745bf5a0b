// SPDX-License-Identifier: MIT
// Package: harmonic/builder
//
// impl_triangle.go — the single-triangle fixture.

package builder

import "gonum.org/v1/gonum/spatial/r3"

// Triangle returns a Constructor that adds one right triangle
// (0,0), (1,0), (0,1) scaled by cfg.spacing. Vertex order follows the points.
func Triangle() Constructor {
	return func(d *draft, cfg builderConfig) error {
		b := d.base()
		d.points = append(d.points,
			cfg.place(r3.Vec{}, false),
			cfg.place(r3.Vec{X: 1}, false),
			cfg.place(r3.Vec{Y: 1}, false),
		)
		d.tris = append(d.tris, [3]int{b, b + 1, b + 2})

		return nil
	}
}
