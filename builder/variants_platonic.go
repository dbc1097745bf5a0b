// SPDX-License-Identifier: MIT
// Package: harmonic/builder
//
// variants_platonic.go — canonical data for the triangulated Platonic surfaces.
//
// Design:
//   • Single source of truth for vertex positions and faces.
//   • Face lists are consistently wound (outward normals).
//   • Cube faces are split into two triangles each.
//   • Icosahedron vertices are built at init from two pentagon rings + poles.
//
// AI-Hints:
//   • Extend with new enums and datasets only; never mutate existing face
//     lists; golden tests depend on their order.

package builder

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// PlatonicName enumerates the Platonic solids with triangulated surfaces.
type PlatonicName int

// String provides a readable identifier for logs/errors (deterministic).
func (p PlatonicName) String() string {
	switch p {
	case Tetrahedron:
		return "Tetrahedron"
	case Cube:
		return "Cube"
	case Octahedron:
		return "Octahedron"
	case Icosahedron:
		return "Icosahedron"
	default:
		return "Unknown"
	}
}

// ParsePlatonicName maps a case-sensitive lower-case name to its enum.
func ParsePlatonicName(s string) (PlatonicName, bool) {
	for _, p := range []PlatonicName{Tetrahedron, Cube, Octahedron, Icosahedron} {
		if platonicKeys[p] == s {
			return p, true
		}
	}

	return 0, false
}

// Enum values (stable ordering).
const (
	Tetrahedron PlatonicName = iota // V=4,  F=4
	Cube                            // V=8,  F=12 (split quads)
	Octahedron                      // V=6,  F=8
	Icosahedron                     // V=12, F=20
)

var platonicKeys = map[PlatonicName]string{
	Tetrahedron: "tetrahedron",
	Cube:        "cube",
	Octahedron:  "octahedron",
	Icosahedron: "icosahedron",
}

// platonicSolid is the canonical dataset of one solid.
type platonicSolid struct {
	points []r3.Vec
	faces  [][3]int
}

var platonicSolids = map[PlatonicName]platonicSolid{
	// Alternate corners of the cube [-1,1]³.
	Tetrahedron: {
		points: []r3.Vec{{X: 1, Y: 1, Z: 1}, {X: 1, Y: -1, Z: -1}, {X: -1, Y: 1, Z: -1}, {X: -1, Y: -1, Z: 1}},
		faces:  [][3]int{{0, 1, 2}, {0, 3, 1}, {0, 2, 3}, {1, 3, 2}},
	},

	// Bottom face 0-1-2-3 at z=0, top face 4-5-6-7 at z=1.
	Cube: {
		points: []r3.Vec{
			{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 0, Y: 1, Z: 0},
			{X: 0, Y: 0, Z: 1}, {X: 1, Y: 0, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: 0, Y: 1, Z: 1},
		},
		faces: [][3]int{
			{0, 2, 1}, {0, 3, 2}, // bottom
			{4, 5, 6}, {4, 6, 7}, // top
			{0, 1, 5}, {0, 5, 4},
			{1, 2, 6}, {1, 6, 5},
			{2, 3, 7}, {2, 7, 6},
			{3, 0, 4}, {3, 4, 7},
		},
	},

	// Poles 0 (+z) and 1 (−z); equator ring 2(+x) 4(+y) 3(−x) 5(−y).
	Octahedron: {
		points: []r3.Vec{
			{Z: 1}, {Z: -1},
			{X: 1}, {X: -1}, {Y: 1}, {Y: -1},
		},
		faces: [][3]int{
			{0, 2, 4}, {0, 4, 3}, {0, 3, 5}, {0, 5, 2},
			{1, 4, 2}, {1, 3, 4}, {1, 5, 3}, {1, 2, 5},
		},
	},

	Icosahedron: icosahedron(),
}

// icosahedron builds the unit icosahedron: top pole 0, top ring 1..5,
// bottom ring 6..10 (offset by half a step), bottom pole 11. Top ring vertex
// k touches bottom ring vertices k and k+1.
func icosahedron() platonicSolid {
	z := 1 / math.Sqrt(5)
	r := 2 / math.Sqrt(5)
	pts := make([]r3.Vec, 0, 12)
	pts = append(pts, r3.Vec{Z: 1})
	for k := 0; k < 5; k++ {
		a := 2 * math.Pi * float64(k) / 5
		pts = append(pts, r3.Vec{X: r * math.Cos(a), Y: r * math.Sin(a), Z: z})
	}
	for k := 0; k < 5; k++ {
		a := 2*math.Pi*float64(k)/5 + math.Pi/5
		pts = append(pts, r3.Vec{X: r * math.Cos(a), Y: r * math.Sin(a), Z: -z})
	}
	pts = append(pts, r3.Vec{Z: -1})

	top := func(k int) int { return 1 + (k+5)%5 }
	bot := func(k int) int { return 6 + (k+5)%5 }
	faces := make([][3]int, 0, 20)
	for k := 0; k < 5; k++ {
		faces = append(faces,
			[3]int{0, top(k), top(k + 1)},
			[3]int{top(k), bot(k), top(k + 1)},
			[3]int{top(k + 1), bot(k), bot(k + 1)},
			[3]int{11, bot(k + 1), bot(k)},
		)
	}

	return platonicSolid{points: pts, faces: faces}
}
