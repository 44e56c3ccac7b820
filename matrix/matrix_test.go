// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/linavis/linalg/matrix"
	"github.com/linavis/linalg/vector"
)

func TestNewSquare_Filled(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewSquare(3, 2.5)
	require.NoError(t, err)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 3, m.Cols())
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			require.Equal(t, 2.5, mustAt(t, m, i, j))
		}
	}

	_, err = matrix.NewSquare(0, 1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestNew_Rectangular(t *testing.T) {
	t.Parallel()

	m, err := matrix.New(2, 4, -1)
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 4, m.Cols())
	require.Equal(t, [][]float64{{-1, -1, -1, -1}, {-1, -1, -1, -1}}, m.ToRows())

	for _, shape := range [][2]int{{0, 3}, {3, 0}, {-1, 2}, {2, -2}} {
		_, err := matrix.New(shape[0], shape[1], 0)
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	}
}

func TestCopyOf_DeepAndIndependent(t *testing.T) {
	t.Parallel()

	orig := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	cp := matrix.CopyOf(orig)
	require.True(t, orig.Equal(cp))

	// A write on the copy leaves the original untouched.
	cp2, err := cp.Set(99, 0, 0)
	require.NoError(t, err)
	require.Equal(t, 99.0, mustAt(t, cp2, 0, 0))
	require.Equal(t, 1.0, mustAt(t, orig, 0, 0))
}

func TestFromVector_SingleRow(t *testing.T) {
	t.Parallel()

	v := vector.FromSlice([]float64{7, 8, 9})
	m, err := matrix.FromVector(v)
	require.NoError(t, err)
	require.Equal(t, 1, m.Rows())
	require.Equal(t, 3, m.Cols())
	require.Equal(t, [][]float64{{7, 8, 9}}, m.ToRows())

	_, err = matrix.FromVector(vector.Vector{})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestFromRows_ValidatedDeepCopy(t *testing.T) {
	t.Parallel()

	rows := [][]float64{{1, 2}, {3, 4}}
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	// Mutating the source after construction must not leak in.
	rows[0][0] = 42
	require.Equal(t, 1.0, mustAt(t, m, 0, 0))
}

func TestFromRows_Ragged_Err(t *testing.T) {
	t.Parallel()

	_, err := matrix.FromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrInvalidShape)

	_, err = matrix.FromRows([][]float64{{1}, {2, 3}, {4}})
	require.ErrorIs(t, err, matrix.ErrInvalidShape)
}

func TestFromRows_Empty_Err(t *testing.T) {
	t.Parallel()

	_, err := matrix.FromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.FromRows([][]float64{})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.FromRows([][]float64{{}})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestIdentity_DiagonalOnes(t *testing.T) {
	t.Parallel()

	id, err := matrix.Identity(4)
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			require.Equal(t, want, mustAt(t, id, i, j))
		}
	}

	_, err = matrix.Identity(0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}
