// Package matrix offers the sparse linear-algebra layer of harmonic.
//
// The matrix package provides:
//
//   - Triplets: a coordinate-format (COO) builder that accepts entries in any
//     order and sums duplicates when compressed (assembly semantics).
//   - CSR: an immutable compressed-sparse-row matrix with O(log k) lookups,
//     symmetric permutation and sequential or parallel matrix–vector products.
//   - Vector: a sparse vector with sorted positions.
//   - Kernels: Add, Sub, Scale, MulVec, ParMulVecTo, MulDiagonal.
//   - Validators: ValidateSquare, ValidateSymmetric, ValidateFinite, ValidateVecLen.
//
// Sparse storage is the only sensible choice for mesh operators: a Laplacian
// over V vertices and E edges holds V + 2E nonzeros instead of V².
//
// All errors are sentinels from errors.go wrapped with an operation tag;
// branch on them with errors.Is.
package matrix
