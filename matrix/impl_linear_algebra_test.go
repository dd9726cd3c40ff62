package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvcal/matrix"
	"github.com/stretchr/testify/require"
)

func TestAddSub(t *testing.T) {
	a := mustFrom(t, [][]float64{{1, 2}, {3, 4}})
	b := mustFrom(t, [][]float64{{10, 20}, {30, 40}})

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	require.Equal(t, "[11, 22]\n[33, 44]\n", sum.String())

	diff, err := matrix.Sub(b, hide{a}) // generic fallback
	require.NoError(t, err)
	require.Equal(t, "[9, 18]\n[27, 36]\n", diff.String())

	c := mustFrom(t, [][]float64{{1, 2, 3}})
	_, err = matrix.Add(a, c)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Add(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestScale(t *testing.T) {
	a := mustFrom(t, [][]float64{{1, -2}})
	s, err := matrix.Scale(a, 3)
	require.NoError(t, err)
	require.Equal(t, "[3, -6]\n", s.String())

	// -2*0 is -0; compare values, not their text.
	s, err = matrix.Scale(hide{a}, 0)
	require.NoError(t, err)
	for j := 0; j < s.Cols(); j++ {
		v, err := s.At(0, j)
		require.NoError(t, err)
		require.InDelta(t, 0.0, v, 0)
	}
}

func TestAddScaledInPlace(t *testing.T) {
	dst := mustFrom(t, [][]float64{{1, 1}, {1, 1}})
	src := mustFrom(t, [][]float64{{1, 2}, {3, 4}})

	require.NoError(t, matrix.AddScaledInPlace(dst, src, 0.5))
	require.Equal(t, "[1.5, 2]\n[2.5, 3]\n", dst.String())

	require.NoError(t, matrix.AddScaledInPlace(dst, hide{src}, -0.5))
	require.Equal(t, "[1, 1]\n[1, 1]\n", dst.String())

	require.ErrorIs(t, matrix.AddScaledInPlace(nil, src, 1), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.AddScaledInPlace(dst, mustFrom(t, [][]float64{{1}}), 1), matrix.ErrDimensionMismatch)
}

func TestStackRows(t *testing.T) {
	a := mustFrom(t, [][]float64{{1, 2}})
	b := mustFrom(t, [][]float64{{3, 4}, {5, 6}})
	empty, err := matrix.NewDense(0, 2)
	require.NoError(t, err)

	s, err := matrix.StackRows(2, a, empty, b)
	require.NoError(t, err)
	require.Equal(t, "[1, 2]\n[3, 4]\n[5, 6]\n", s.String())

	_, err = matrix.StackRows(3, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.StackRows(2, a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestRowColSums(t *testing.T) {
	a := mustFrom(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	rs, err := matrix.RowSums(a)
	require.NoError(t, err)
	require.Equal(t, []float64{6, 15}, rs)

	cs, err := matrix.ColSums(hide{a})
	require.NoError(t, err)
	require.Equal(t, []float64{5, 7, 9}, cs)
}
