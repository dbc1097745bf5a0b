package mesh_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/harmonic/mesh"
)

func edges(t mesh.Topology) [][2]int {
	out := make([][2]int, t.EdgeNumber())
	for e := range out {
		out[e][0], out[e][1] = t.Edge(e)
	}

	return out
}

func TestNewTriangleMesh_Quad(t *testing.T) {
	t.Parallel()
	pts := []r3.Vec{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	m, err := mesh.NewTriangleMesh(pts, [][3]int{{0, 1, 2}, {0, 2, 3}})
	require.NoError(t, err)

	assert.Equal(t, 4, m.VertexNumber())
	assert.Equal(t, 2, m.TriangleNumber())
	assert.False(t, m.IsVolume())
	assert.Equal(t, [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {2, 3}}, edges(m))
	assert.Equal(t, []int{3, 2, 3, 2}, m.Degrees())
	assert.Equal(t, r3.Vec{X: 1, Y: 1}, m.Point(2))
}

func TestNewTriangleMesh_DeduplicatesFaces(t *testing.T) {
	t.Parallel()
	pts := []r3.Vec{{}, {X: 1}, {Y: 1}}
	m, err := mesh.NewTriangleMesh(pts, [][3]int{{0, 1, 2}, {2, 1, 0}, {1, 2, 0}})
	require.NoError(t, err)
	assert.Equal(t, 1, m.TriangleNumber())
	assert.Equal(t, [3]int{0, 1, 2}, m.Triangle(0))
	assert.Equal(t, 3, m.EdgeNumber())
}

func TestNewTetMesh(t *testing.T) {
	t.Parallel()
	pts := []r3.Vec{{}, {X: 1}, {Y: 1}, {Z: 1}, {X: 1, Y: 1, Z: 1}}
	m, err := mesh.NewTetMesh(pts, [][4]int{{0, 1, 2, 3}, {1, 2, 3, 4}})
	require.NoError(t, err)

	assert.True(t, m.IsVolume())
	assert.Equal(t, 2, m.TetrahedronNumber())
	assert.Equal(t, [4]int{1, 2, 3, 4}, m.Tetrahedron(1))
	// 4 + 4 faces, {1,2,3} shared.
	assert.Equal(t, 7, m.TriangleNumber())
	// 6 + 6 edges, {1,2},{1,3},{2,3} shared.
	assert.Equal(t, 9, m.EdgeNumber())
	for _, e := range edges(m) {
		assert.Less(t, e[0], e[1])
	}
}

func TestNew_Errors(t *testing.T) {
	t.Parallel()
	pts := []r3.Vec{{}, {X: 1}, {Y: 1}}
	tests := []struct {
		name string
		pts  []r3.Vec
		tris [][3]int
		tets [][4]int
		want error
	}{
		{"out of range", pts, [][3]int{{0, 1, 3}}, nil, mesh.ErrVertexOutOfRange},
		{"negative", pts, [][3]int{{-1, 1, 2}}, nil, mesh.ErrVertexOutOfRange},
		{"repeated", pts, [][3]int{{0, 0, 1}}, nil, mesh.ErrDegenerateCell},
		{"tet repeated", append(pts, r3.Vec{Z: 1}), nil, [][4]int{{0, 1, 2, 2}}, mesh.ErrDegenerateCell},
		{"nan point", []r3.Vec{{X: math.NaN()}, {X: 1}, {Y: 1}}, [][3]int{{0, 1, 2}}, nil, mesh.ErrNonFinitePoint},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := mesh.New(tc.pts, tc.tris, tc.tets)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestNew_Empty(t *testing.T) {
	t.Parallel()
	m, err := mesh.New(nil, nil, nil)
	require.NoError(t, err)
	assert.Zero(t, m.VertexNumber())
	assert.Zero(t, m.EdgeNumber())
}

func TestNewGraph(t *testing.T) {
	t.Parallel()
	g, err := mesh.NewGraph(4, [][2]int{{2, 1}, {0, 1}, {1, 2}, {3, 0}})
	require.NoError(t, err)
	assert.Equal(t, 4, g.VertexNumber())
	assert.Equal(t, [][2]int{{0, 1}, {0, 3}, {1, 2}}, edges(g))

	_, err = mesh.NewGraph(2, [][2]int{{1, 1}})
	assert.ErrorIs(t, err, mesh.ErrDegenerateCell)
	_, err = mesh.NewGraph(2, [][2]int{{0, 2}})
	assert.ErrorIs(t, err, mesh.ErrVertexOutOfRange)
	_, err = mesh.NewGraph(-1, nil)
	assert.ErrorIs(t, err, mesh.ErrVertexOutOfRange)
}

var (
	_ mesh.Geometry = (*mesh.Mesh)(nil)
	_ mesh.Topology = (*mesh.Graph)(nil)
)
