// Package builder defines shared constants used by mesh builders, ensuring
// consistent validation across all constructors.
package builder

// Method names used to prefix constructor errors.
const (
	MethodTriangle      = "Triangle"
	MethodGrid          = "Grid"
	MethodFan           = "Fan"
	MethodTetraBlock    = "TetraBlock"
	MethodPlatonicSolid = "PlatonicSolid"
)

// MinGridDim is the smallest number of vertices per grid axis: one row of
// quads needs two rows of vertices.
const MinGridDim = 2

// MinFanRim is the smallest rim of a Fan (a triangle-shaped disk).
const MinFanRim = 3

// MinTetraDim is the smallest number of vertices per TetraBlock axis.
const MinTetraDim = 2
