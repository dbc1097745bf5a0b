// SPDX-License-Identifier: MIT
// Package: harmonic/builder
//
// impl_grid.go — implementation of Grid(rows, cols) constructor.
//
// Canonical model:
//   • rows×cols vertices on the z=0 plane, vertex (r,c) at (c, r)·spacing.
//   • Vertex ids are row-major: base + r*cols + c.
//   • Each quad (r,c)…(r+1,c+1) is split along its (r,c)-(r+1,c+1) diagonal
//     into triangles {(r,c),(r,c+1),(r+1,c+1)} and {(r,c),(r+1,c+1),(r+1,c)}.
//
// Contract:
//   • rows ≥ 2 and cols ≥ 2 (else ErrTooFewVertices).
//
// Complexity:
//   • Time: O(rows*cols) points + 2(rows-1)(cols-1) triangles.
//
// Determinism:
//   • Stable point order: row-major (r asc, then c asc).
//   • Stable triangle order: quads row-major, lower triangle first.
//   • Jitter draws are consumed in point order.

package builder

import "gonum.org/v1/gonum/spatial/r3"

// Grid returns a Constructor that builds a rows×cols triangulated grid.
func Grid(rows, cols int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if err := validateMin(MethodGrid, MinGridDim, rows, cols); err != nil {
			return err
		}

		b := d.base()
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				d.points = append(d.points, cfg.place(r3.Vec{X: float64(c), Y: float64(r)}, false))
			}
		}

		id := func(r, c int) int { return b + r*cols + c }
		for r := 0; r+1 < rows; r++ {
			for c := 0; c+1 < cols; c++ {
				d.tris = append(d.tris,
					[3]int{id(r, c), id(r, c+1), id(r+1, c+1)},
					[3]int{id(r, c), id(r+1, c+1), id(r+1, c)},
				)
			}
		}

		return nil
	}
}

// GridVertex returns the id Grid assigns to (r, c) when it is the first
// constructor of a mesh.
func GridVertex(cols, r, c int) int { return r*cols + c }
