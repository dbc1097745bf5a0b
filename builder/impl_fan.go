// SPDX-License-Identifier: MIT
// Package: harmonic/builder
//
// impl_fan.go — implementation of Fan(n) constructor.
//
// Canonical definition:
//   • A hub vertex at the origin plus a rim of n vertices on the unit circle
//     (scaled by spacing), rim i at angle 2πi/n.
//   • Triangles {hub, rim i, rim (i+1) mod n}: a closed triangulated disk.
//   • Ids: hub = base, rim i = base + 1 + i.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//
// Complexity: O(n).

package builder

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Fan returns a Constructor that builds a disk fanned around a hub vertex.
func Fan(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if err := validateMin(MethodFan, MinFanRim, n); err != nil {
			return err
		}

		hub := d.base()
		d.points = append(d.points, cfg.place(r3.Vec{}, false))
		for i := 0; i < n; i++ {
			a := 2 * math.Pi * float64(i) / float64(n)
			d.points = append(d.points, cfg.place(r3.Vec{X: math.Cos(a), Y: math.Sin(a)}, false))
		}
		for i := 0; i < n; i++ {
			d.tris = append(d.tris, [3]int{hub, hub + 1 + i, hub + 1 + (i+1)%n})
		}

		return nil
	}
}
