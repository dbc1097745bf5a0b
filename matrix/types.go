// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the sparse kernels.
// This file intentionally contains ONLY interfaces and small value types;
// errors and options live in dedicated files (errors.go, options.go).
package matrix

// Matrix is the read-only view every sparse container in this package offers.
//
// Complexity notes: Rows/Cols are O(1); At is O(log nnz(row)) for CSR and
// O(1) for the diagonal fast-path.
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j); structural zeros read as 0.
	// Returns ErrOutOfRange if i or j is outside the shape.
	At(i, j int) (float64, error)
}

// Triplet is a single (row, col, value) entry of a coordinate-format matrix.
// Duplicate (row, col) pairs are summed when compressed into CSR.
type Triplet struct {
	Row int     // row index in [0, rows)
	Col int     // column index in [0, cols)
	Val float64 // finite value
}

// Operation name constants for unified error wrapping (no magic strings).
const (
	opAppend    = "Append"
	opAt        = "At"
	opAdd       = "Add"
	opSub       = "Sub"
	opScale     = "Scale"
	opMulVec    = "MulVec"
	opParMulVec = "ParMulVec"
	opVectorSet = "Vector.Set"
	opVectorAt  = "Vector.At"
	opDiagonal  = "Diagonal"
)
