// SPDX-License-Identifier: MIT
// Package mesh — concrete simplicial mesh.
//
// Mesh stores vertex positions, the deduplicated triangle set and (for
// volume meshes) the tetrahedra. Edges are derived from the cells: every
// triangle contributes 3 edges and every tetrahedron 6. Each tetrahedron
// also contributes its 4 faces to the triangle set.
//
// Determinism:
//   - Edges are sorted ascending by (u, v) with u < v.
//   - Triangles keep first-seen order; a face shared by two cells appears once.

package mesh

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/r3"
)

// Mesh is an immutable triangle or tetrahedral mesh. Safe for concurrent readers.
type Mesh struct {
	points []r3.Vec
	edges  [][2]int
	tris   [][3]int
	tets   [][4]int
}

// New validates the cells against points and derives edges and faces.
// tris and tets may both be non-empty (a surface glued to a volume);
// either may be nil.
// Errors: ErrNonFinitePoint, ErrVertexOutOfRange, ErrDegenerateCell.
// Complexity: O(V + T·log T) for T cells.
func New(points []r3.Vec, tris [][3]int, tets [][4]int) (*Mesh, error) {
	n := len(points)
	for i, p := range points {
		if !finite(p) {
			return nil, meshErrorf("New", fmt.Errorf("point %d: %w", i, ErrNonFinitePoint))
		}
	}

	es := newEdgeSet(3*len(tris) + 6*len(tets))
	fs := newFaceSet(len(tris) + 4*len(tets))
	for i, t := range tris {
		if err := checkCell(n, t[:]); err != nil {
			return nil, meshErrorf("New", fmt.Errorf("triangle %d: %w", i, err))
		}
		fs.add(t)
		es.add(t[0], t[1])
		es.add(t[1], t[2])
		es.add(t[0], t[2])
	}
	for i, t := range tets {
		if err := checkCell(n, t[:]); err != nil {
			return nil, meshErrorf("New", fmt.Errorf("tetrahedron %d: %w", i, err))
		}
		for _, f := range tetFaces(t) {
			fs.add(f)
		}
		for a := 0; a < 4; a++ {
			for b := a + 1; b < 4; b++ {
				es.add(t[a], t[b])
			}
		}
	}

	m := &Mesh{
		points: append([]r3.Vec(nil), points...),
		edges:  es.sorted(),
		tris:   fs.faces,
		tets:   append([][4]int(nil), tets...),
	}

	return m, nil
}

// NewTriangleMesh builds a surface mesh.
func NewTriangleMesh(points []r3.Vec, tris [][3]int) (*Mesh, error) {
	return New(points, tris, nil)
}

// NewTetMesh builds a volume mesh.
func NewTetMesh(points []r3.Vec, tets [][4]int) (*Mesh, error) {
	return New(points, nil, tets)
}

// VertexNumber returns the number of vertices.
func (m *Mesh) VertexNumber() int { return len(m.points) }

// EdgeNumber returns the number of distinct edges.
func (m *Mesh) EdgeNumber() int { return len(m.edges) }

// Edge returns the endpoints of edge e with u < v.
func (m *Mesh) Edge(e int) (int, int) { return m.edges[e][0], m.edges[e][1] }

// TriangleNumber returns the number of distinct triangles (tet faces included).
func (m *Mesh) TriangleNumber() int { return len(m.tris) }

// Triangle returns the vertex ids of triangle t.
func (m *Mesh) Triangle(t int) [3]int { return m.tris[t] }

// TetrahedronNumber returns the number of tetrahedra (0 for surface meshes).
func (m *Mesh) TetrahedronNumber() int { return len(m.tets) }

// Tetrahedron returns the vertex ids of tetrahedron t.
func (m *Mesh) Tetrahedron(t int) [4]int { return m.tets[t] }

// IsVolume reports whether the mesh carries tetrahedra.
func (m *Mesh) IsVolume() bool { return len(m.tets) > 0 }

// Point returns the position of vertex v.
func (m *Mesh) Point(v int) r3.Vec { return m.points[v] }

// Degrees returns the number of edges incident to each vertex.
// Complexity: O(V + E).
func (m *Mesh) Degrees() []int {
	deg := make([]int, len(m.points))
	for _, e := range m.edges {
		deg[e[0]]++
		deg[e[1]]++
	}

	return deg
}

// checkCell rejects out-of-range and repeated vertex ids.
func checkCell(n int, ids []int) error {
	for a, v := range ids {
		if v < 0 || v >= n {
			return fmt.Errorf("vertex %d (n=%d): %w", v, n, ErrVertexOutOfRange)
		}
		for _, w := range ids[a+1:] {
			if v == w {
				return fmt.Errorf("vertex %d repeated: %w", v, ErrDegenerateCell)
			}
		}
	}

	return nil
}

func finite(p r3.Vec) bool {
	for _, c := range [3]float64{p.X, p.Y, p.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}

	return true
}

// tetFaces returns the four faces of t, each opposite one vertex.
func tetFaces(t [4]int) [4][3]int {
	return [4][3]int{
		{t[1], t[2], t[3]},
		{t[0], t[2], t[3]},
		{t[0], t[1], t[3]},
		{t[0], t[1], t[2]},
	}
}

// edgeSet deduplicates undirected edges.
type edgeSet struct {
	seen  map[[2]int]struct{}
	edges [][2]int
}

func newEdgeSet(hint int) *edgeSet {
	return &edgeSet{seen: make(map[[2]int]struct{}, hint), edges: make([][2]int, 0, hint)}
}

func (s *edgeSet) add(u, v int) {
	if u > v {
		u, v = v, u
	}
	k := [2]int{u, v}
	if _, ok := s.seen[k]; ok {
		return
	}
	s.seen[k] = struct{}{}
	s.edges = append(s.edges, k)
}

// sorted returns the edges ordered by (u, v).
func (s *edgeSet) sorted() [][2]int {
	sort.Slice(s.edges, func(a, b int) bool {
		if s.edges[a][0] != s.edges[b][0] {
			return s.edges[a][0] < s.edges[b][0]
		}
		return s.edges[a][1] < s.edges[b][1]
	})

	return s.edges
}

// faceSet deduplicates triangles regardless of winding, keeping first-seen order.
type faceSet struct {
	seen  map[[3]int]struct{}
	faces [][3]int
}

func newFaceSet(hint int) *faceSet {
	return &faceSet{seen: make(map[[3]int]struct{}, hint), faces: make([][3]int, 0, hint)}
}

func (s *faceSet) add(f [3]int) {
	k := f
	sort.Ints(k[:])
	if _, ok := s.seen[k]; ok {
		return
	}
	s.seen[k] = struct{}{}
	s.faces = append(s.faces, f)
}
