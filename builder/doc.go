// Package builder generates deterministic mesh fixtures for the harmonic
// solver: tests, examples, benchmarks and the CLI all build their meshes here.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildMesh(opts, cons...): resolve options, run constructors, validate.
//     – Constructor:      a closure appending one mesh piece to a shared draft.
//   - Constructors:
//     – Triangle():           a single right triangle.
//     – Grid(rows, cols):     a triangulated planar lattice.
//     – Fan(n):               a disk of n rim vertices around a hub.
//     – TetraBlock(x, y, z):  a Kuhn-tetrahedralized box (volume mesh).
//     – PlatonicSolid(name):  closed triangulated surfaces.
//   - Options:
//     – WithSpacing, WithOrigin: placement.
//     – WithJitter + WithSeed/WithRand: reproducible irregular geometry.
//
// Guarantees:
//
//   - Determinism: identical options, seed and constructor order yield
//     bitwise-identical meshes.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors never panic; they return sentinel errors wrapped with the
//     method name (ErrTooFewVertices, ErrNeedRandSource, ErrOptionViolation).
//   - Several constructors compose into one mesh with disconnected pieces.
package builder
