package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/harmonic/matrix"
)

func TestVector_SetAt(t *testing.T) {
	t.Parallel()
	v, err := matrix.NewVector(6)
	require.NoError(t, err)
	assert.Equal(t, 6, v.Len())

	require.NoError(t, v.Set(4, 1))
	require.NoError(t, v.Set(1, 2))
	require.NoError(t, v.Set(5, 3))
	require.NoError(t, v.Set(1, 9)) // overwrite, not accumulate

	assert.Equal(t, 3, v.NNZ())
	assert.Equal(t, []int{1, 4, 5}, v.Indices())
	assert.Equal(t, []float64{0, 9, 0, 0, 1, 3}, v.Dense())

	got, err := v.At(1)
	require.NoError(t, err)
	assert.Equal(t, 9.0, got)
	got, err = v.At(0)
	require.NoError(t, err)
	assert.Zero(t, got)

	var order []int
	v.Do(func(i int, _ float64) { order = append(order, i) })
	assert.Equal(t, []int{1, 4, 5}, order)
}

func TestVector_Errors(t *testing.T) {
	t.Parallel()
	_, err := matrix.NewVector(-1)
	assert.ErrorIs(t, err, matrix.ErrBadShape)

	v, err := matrix.NewVector(2)
	require.NoError(t, err)
	assert.ErrorIs(t, v.Set(2, 1), matrix.ErrOutOfRange)
	assert.ErrorIs(t, v.Set(-1, 1), matrix.ErrOutOfRange)
	assert.ErrorIs(t, v.Set(0, math.Inf(1)), matrix.ErrNaNInf)
	_, err = v.At(5)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.Equal(t, 0, v.NNZ())
}

func TestMulDiagonal(t *testing.T) {
	t.Parallel()
	m := mustCSR(t, 4, 4,
		entry{0, 0, 2}, entry{1, 1, 3}, entry{3, 3, 5}, entry{0, 3, 7}, entry{3, 0, 7})
	v, err := matrix.NewVector(4)
	require.NoError(t, err)
	require.NoError(t, v.Set(0, 1.5))
	require.NoError(t, v.Set(2, 4))
	require.NoError(t, v.Set(3, -1))

	y, err := matrix.MulDiagonal(m, v)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 0, 0, -5}, y)
}

func TestMulDiagonal_Errors(t *testing.T) {
	t.Parallel()
	v, err := matrix.NewVector(3)
	require.NoError(t, err)

	_, err = matrix.MulDiagonal(nil, v)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.MulDiagonal(pathLaplacian(t, 3), nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.MulDiagonal(mustCSR(t, 3, 4), v)
	assert.ErrorIs(t, err, matrix.ErrNonSquare)
	_, err = matrix.MulDiagonal(pathLaplacian(t, 4), v)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
