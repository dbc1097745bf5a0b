package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/harmonic/matrix"
)

// entry is a (row, col, value) triple used to seed test matrices.
type entry struct {
	i, j int
	v    float64
}

// mustCSR assembles an r×c CSR from the given entries (duplicates summed).
func mustCSR(tb testing.TB, r, c int, entries ...entry) *matrix.CSR {
	tb.Helper()
	t, err := matrix.NewTriplets(r, c)
	require.NoError(tb, err)
	for _, e := range entries {
		require.NoError(tb, t.Append(e.i, e.j, e.v))
	}

	return t.ToCSR()
}

// dense expands m into a row-major [][]float64 for easy comparison.
func dense(tb testing.TB, m *matrix.CSR) [][]float64 {
	tb.Helper()
	out := make([][]float64, m.Rows())
	for i := range out {
		out[i] = make([]float64, m.Cols())
		for j := range out[i] {
			v, err := m.At(i, j)
			require.NoError(tb, err)
			out[i][j] = v
		}
	}

	return out
}

// pathLaplacian returns the n×n graph Laplacian of a path 0–1–…–(n-1)
// with unit weights: −deg on the diagonal, +1 off the diagonal.
func pathLaplacian(tb testing.TB, n int) *matrix.CSR {
	tb.Helper()
	entries := make([]entry, 0, 4*n)
	for i := 0; i+1 < n; i++ {
		entries = append(entries,
			entry{i, i + 1, 1}, entry{i + 1, i, 1},
			entry{i, i, -1}, entry{i + 1, i + 1, -1})
	}

	return mustCSR(tb, n, n, entries...)
}

// randomSparse fills roughly density·r·c positions with values in [-1, 1).
func randomSparse(tb testing.TB, r, c int, density float64, seed int64) *matrix.CSR {
	tb.Helper()
	rnd := rand.New(rand.NewSource(seed))
	t, err := matrix.NewTriplets(r, c)
	require.NoError(tb, err)
	count := int(density * float64(r*c))
	t.Reserve(count)
	for k := 0; k < count; k++ {
		require.NoError(tb, t.Append(rnd.Intn(r), rnd.Intn(c), 2*rnd.Float64()-1))
	}

	return t.ToCSR()
}

// randomVec returns n values in [-1, 1).
func randomVec(n int, seed int64) []float64 {
	rnd := rand.New(rand.NewSource(seed))
	x := make([]float64, n)
	for i := range x {
		x[i] = 2*rnd.Float64() - 1
	}

	return x
}
