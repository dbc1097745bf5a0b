package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/harmonic/matrix"
)

func TestNewCSR(t *testing.T) {
	t.Parallel()
	m, err := matrix.NewCSR(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	assert.Equal(t, 0, m.NNZ())
	assert.Equal(t, "[]\n[]\n", m.String())

	_, err = matrix.NewCSR(-1, 0)
	assert.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestCSR_At(t *testing.T) {
	t.Parallel()
	m := mustCSR(t, 2, 3, entry{0, 1, 7}, entry{1, 2, -2})

	v, err := m.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 7.0, v)

	v, err = m.At(1, 0)
	require.NoError(t, err)
	assert.Zero(t, v)

	for _, ij := range [][2]int{{-1, 0}, {2, 0}, {0, 3}, {0, -1}} {
		_, err = m.At(ij[0], ij[1])
		assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	}
}

func TestCSR_RowAndNeighbors(t *testing.T) {
	t.Parallel()
	m := pathLaplacian(t, 4)
	assert.Equal(t, []int{0, 1, 2}, m.Neighbors(1))
	cols, vals := m.Row(3)
	assert.Equal(t, []int{2, 3}, cols)
	assert.Equal(t, []float64{1, -1}, vals)

	cols, vals = m.Row(4)
	assert.Nil(t, cols)
	assert.Nil(t, vals)
}

func TestCSR_Diagonal(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []float64{-1, -2, -2, -1}, pathLaplacian(t, 4).Diagonal())

	rect := mustCSR(t, 2, 3, entry{1, 1, 4}, entry{0, 2, 1})
	assert.Equal(t, []float64{0, 4}, rect.Diagonal())
}

func TestCSR_Do(t *testing.T) {
	t.Parallel()
	m := mustCSR(t, 2, 2, entry{1, 0, 3}, entry{0, 1, 2}, entry{0, 0, 1})

	var seen []entry
	m.Do(func(i, j int, v float64) bool {
		seen = append(seen, entry{i, j, v})
		return true
	})
	assert.Equal(t, []entry{{0, 0, 1}, {0, 1, 2}, {1, 0, 3}}, seen)

	count := 0
	m.Do(func(int, int, float64) bool {
		count++
		return count < 2
	})
	assert.Equal(t, 2, count)
}

func TestCSR_Clone(t *testing.T) {
	t.Parallel()
	m := pathLaplacian(t, 3)
	c := m.Clone()
	assert.Equal(t, m.String(), c.String())

	_, vals := c.Row(0)
	vals[0] = 100
	v, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, -1.0, v, "clone must not share storage")
}

func TestCSR_Permute(t *testing.T) {
	t.Parallel()
	m := mustCSR(t, 3, 3,
		entry{0, 0, 1}, entry{0, 2, 5},
		entry{1, 1, 2},
		entry{2, 0, 5}, entry{2, 2, 3},
	)
	perm := []int{2, 0, 1}
	p, err := m.Permute(perm)
	require.NoError(t, err)

	orig := dense(t, m)
	got := dense(t, p)
	for i := range perm {
		for j := range perm {
			assert.Equal(t, orig[perm[i]][perm[j]], got[i][j], "B[%d][%d]", i, j)
		}
	}
	for i := 0; i < p.Rows(); i++ {
		cols := p.Neighbors(i)
		for k := 1; k < len(cols); k++ {
			assert.Less(t, cols[k-1], cols[k], "row %d columns must stay sorted", i)
		}
	}
	assert.NoError(t, matrix.ValidateSymmetric(p, matrix.DefaultEpsilon))
}

func TestCSR_PermuteErrors(t *testing.T) {
	t.Parallel()
	sq := pathLaplacian(t, 3)
	tests := []struct {
		name    string
		m       *matrix.CSR
		perm    []int
		wantErr error
	}{
		{"non-square", mustCSR(t, 2, 3), []int{0, 1}, matrix.ErrNonSquare},
		{"short", sq, []int{0, 1}, matrix.ErrDimensionMismatch},
		{"repeated", sq, []int{0, 0, 1}, matrix.ErrOutOfRange},
		{"out of range", sq, []int{0, 1, 3}, matrix.ErrOutOfRange},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := tc.m.Permute(tc.perm)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestCSR_MulVecTo(t *testing.T) {
	t.Parallel()
	m := mustCSR(t, 2, 3, entry{0, 0, 1}, entry{0, 2, 2}, entry{1, 1, -1})
	dst := make([]float64, 2)
	require.NoError(t, m.MulVecTo(dst, []float64{1, 2, 3}))
	assert.Equal(t, []float64{7, -2}, dst)

	assert.ErrorIs(t, m.MulVecTo(dst, []float64{1, 2}), matrix.ErrDimensionMismatch)
	assert.ErrorIs(t, m.MulVecTo(make([]float64, 3), []float64{1, 2, 3}), matrix.ErrDimensionMismatch)
}

func TestCSR_String(t *testing.T) {
	t.Parallel()
	m := mustCSR(t, 2, 2, entry{0, 0, 1.5}, entry{0, 1, -2}, entry{1, 1, 3})
	assert.Equal(t, "[0:1.5, 1:-2]\n[1:3]\n", m.String())
}
