// SPDX-License-Identifier: MIT
// Package: harmonic/builder
//
// impl_tetra.go — implementation of TetraBlock(nx, ny, nz) constructor.
//
// Canonical model:
//   • nx×ny×nz vertices, vertex (i,j,k) at (i,j,k)·spacing with id
//     base + (k*ny + j)*nx + i.
//   • Every unit cube is split into six tetrahedra (Kuhn subdivision): one per
//     permutation of the axes, walking from corner (0,0,0) to (1,1,1). All
//     cubes use the same split, so shared faces match and the mesh is conforming.
//
// Contract:
//   • nx, ny, nz ≥ 2 (else ErrTooFewVertices).
//
// Complexity: O(nx*ny*nz) points + 6(nx-1)(ny-1)(nz-1) tetrahedra.

package builder

import "gonum.org/v1/gonum/spatial/r3"

// kuhnPaths lists the axis orders of the six Kuhn tetrahedra.
var kuhnPaths = [6][3]int{
	{0, 1, 2}, {0, 2, 1},
	{1, 0, 2}, {1, 2, 0},
	{2, 0, 1}, {2, 1, 0},
}

// TetraBlock returns a Constructor that builds a tetrahedralized box.
func TetraBlock(nx, ny, nz int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if err := validateMin(MethodTetraBlock, MinTetraDim, nx, ny, nz); err != nil {
			return err
		}

		b := d.base()
		for k := 0; k < nz; k++ {
			for j := 0; j < ny; j++ {
				for i := 0; i < nx; i++ {
					p := r3.Vec{X: float64(i), Y: float64(j), Z: float64(k)}
					d.points = append(d.points, cfg.place(p, true))
				}
			}
		}

		id := func(c [3]int) int { return b + (c[2]*ny+c[1])*nx + c[0] }
		for k := 0; k+1 < nz; k++ {
			for j := 0; j+1 < ny; j++ {
				for i := 0; i+1 < nx; i++ {
					for _, path := range kuhnPaths {
						cur := [3]int{i, j, k}
						var tet [4]int
						tet[0] = id(cur)
						for s, axis := range path {
							cur[axis]++
							tet[s+1] = id(cur)
						}
						d.tets = append(d.tets, tet)
					}
				}
			}
		}

		return nil
	}
}
