// SPDX-License-Identifier: MIT
// Package matrix_test exercises the Transpose Engine: square swaps, the
// permutation-cycle rebuild for non-square shapes and the flat-buffer kernel.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/malg/matrix"
)

// TransposeSuite groups in-place transpose scenarios.
type TransposeSuite struct {
	suite.Suite
}

// TestSquare swaps across the diagonal and keeps the shape.
func (s *TransposeSuite) TestSquare() {
	m := MustFromRows(s.T(), [][]int{
		{1, 0, 1, 0},
		{1, 0, 0, 0},
		{0, 0, 0, 1},
		{0, 1, 0, 0},
	})
	addr := matrix.PoolAddr(m)

	require.NoError(s.T(), m.Transpose())
	require.Equal(s.T(), [][]int{
		{1, 1, 0, 0},
		{0, 0, 0, 1},
		{1, 0, 0, 0},
		{0, 0, 1, 0},
	}, ToRows(s.T(), m))
	require.Equal(s.T(), addr, matrix.PoolAddr(m))
	require.Equal(s.T(), []int{0, 4, 8, 12}, matrix.RowIndexOf(m))
}

// TestWide turns a 2×4 into a 4×2 on the same pool.
func (s *TransposeSuite) TestWide() {
	m := MustFromRows(s.T(), [][]int{
		{11, 12, 13, 14},
		{21, 22, 23, 24},
	})
	addr := matrix.PoolAddr(m)

	require.NoError(s.T(), m.Transpose())
	require.Equal(s.T(), 4, m.Rows())
	require.Equal(s.T(), 2, m.Cols())
	require.Equal(s.T(), [][]int{{11, 21}, {12, 22}, {13, 23}, {14, 24}}, ToRows(s.T(), m))
	require.Equal(s.T(), []int{11, 21, 12, 22, 13, 23, 14, 24}, m.Values())

	require.Equal(s.T(), addr, matrix.PoolAddr(m), "pool must be reused")
	require.Equal(s.T(), 8, matrix.PoolLen(m))
	require.Equal(s.T(), []int{0, 2, 4, 6}, matrix.RowIndexOf(m))
}

// TestTall goes the other way, 4×2 to 2×4.
func (s *TransposeSuite) TestTall() {
	m := MustFromRows(s.T(), [][]int{{11, 21}, {12, 22}, {13, 23}, {14, 24}})

	require.NoError(s.T(), m.Transpose())
	require.Equal(s.T(), [][]int{{11, 12, 13, 14}, {21, 22, 23, 24}}, ToRows(s.T(), m))
	require.Equal(s.T(), []int{0, 4}, matrix.RowIndexOf(m))
}

// TestDegenerateShapes covers vectors and tiny pools where every index is fixed.
func (s *TransposeSuite) TestDegenerateShapes() {
	one := MustFromRows(s.T(), [][]int{{5}})
	require.NoError(s.T(), one.Transpose())
	require.Equal(s.T(), [][]int{{5}}, ToRows(s.T(), one))

	pair := MustFromRows(s.T(), [][]int{{1, 2}})
	require.NoError(s.T(), pair.Transpose())
	require.Equal(s.T(), [][]int{{1}, {2}}, ToRows(s.T(), pair))

	row := MustFromRows(s.T(), [][]int{{1, 2, 3, 4, 5}})
	require.NoError(s.T(), row.Transpose())
	require.Equal(s.T(), [][]int{{1}, {2}, {3}, {4}, {5}}, ToRows(s.T(), row))
	require.Equal(s.T(), []int{0, 1, 2, 3, 4}, matrix.RowIndexOf(row))

	require.NoError(s.T(), row.Transpose())
	require.Equal(s.T(), [][]int{{1, 2, 3, 4, 5}}, ToRows(s.T(), row))
	require.Equal(s.T(), []int{0}, matrix.RowIndexOf(row))
}

// TestAgainstGonum compares random shapes with gonum's transpose view.
func (s *TransposeSuite) TestAgainstGonum() {
	shapes := [][2]int{{2, 3}, {3, 2}, {3, 5}, {7, 4}, {1, 9}, {9, 1}, {6, 6}, {13, 17}, {64, 3}}
	for si, sh := range shapes {
		s.Run(fmt.Sprintf("%dx%d", sh[0], sh[1]), func() {
			m := MustNew[float64](s.T(), sh[0], sh[1])
			RandomFill(s.T(), m, int64(si+1))
			want := GonumRows(ToGonum(m).T())

			require.NoError(s.T(), m.Transpose())
			require.Equal(s.T(), want, ToRows(s.T(), m))
		})
	}
}

// TestInvolution checks transpose(transpose(A)) == A and the row index invariant.
func (s *TransposeSuite) TestInvolution() {
	for r := 1; r <= 8; r++ {
		for c := 1; c <= 8; c++ {
			m := Sequential(s.T(), r, c)
			orig, err := m.Clone()
			require.NoError(s.T(), err)

			require.NoError(s.T(), m.Transpose())
			idx := matrix.RowIndexOf(m)
			require.Len(s.T(), idx, c)
			for i := range idx {
				require.Equal(s.T(), i*r, idx[i], "row index after %dx%d", r, c)
			}

			require.NoError(s.T(), m.Transpose())
			require.True(s.T(), matrix.Equal(orig, m), "round trip %dx%d", r, c)
		}
	}
}

// TestSequentialPlacement checks every element lands at (j,i).
func (s *TransposeSuite) TestSequentialPlacement() {
	const r, c = 5, 8
	m := Sequential(s.T(), r, c)
	require.NoError(s.T(), m.Transpose())
	for j := 0; j < c; j++ {
		for i := 0; i < r; i++ {
			v, err := m.At(j, i)
			require.NoError(s.T(), err)
			require.Equal(s.T(), float64(i*c+j), v)
		}
	}
}

// TestEmpty rejects nil and moved-from matrices.
func (s *TransposeSuite) TestEmpty() {
	var nilM *matrix.Matrix[int]
	require.ErrorIs(s.T(), nilM.Transpose(), matrix.ErrNilMatrix)

	m := MustNew[int](s.T(), 2, 3)
	_ = m.Move()
	require.ErrorIs(s.T(), m.Transpose(), matrix.ErrNilMatrix)
}

// TestTransposeSuite runs the TransposeSuite.
func TestTransposeSuite(t *testing.T) {
	suite.Run(t, new(TransposeSuite))
}

// TestTransposeInPlaceFlat runs the kernel on a non-numeric buffer.
func TestTransposeInPlaceFlat(t *testing.T) {
	data := []string{"a", "b", "c", "d", "e", "f"}
	require.NoError(t, matrix.TransposeInPlace(data, 2, 3))
	require.Equal(t, []string{"a", "d", "b", "e", "c", "f"}, data)

	sq := []int{1, 2, 3, 4}
	require.NoError(t, matrix.TransposeInPlace(sq, 2, 2))
	require.Equal(t, []int{1, 3, 2, 4}, sq)
}

// TestTransposeInPlaceErrors rejects shapes that do not describe the buffer.
func TestTransposeInPlaceErrors(t *testing.T) {
	data := make([]int, 6)
	require.ErrorIs(t, matrix.TransposeInPlace(data, 0, 6), matrix.ErrInvalidDimension)
	require.ErrorIs(t, matrix.TransposeInPlace(data, 6, -1), matrix.ErrInvalidDimension)
	require.ErrorIs(t, matrix.TransposeInPlace(data, 2, 4), matrix.ErrInvalidDimension)
	require.ErrorIs(t, matrix.TransposeInPlace([]int(nil), 1, 1), matrix.ErrInvalidDimension)
}

// TestCycleNext checks the position map on the 2×4 layout (N=8, last=7).
func TestCycleNext(t *testing.T) {
	// the cycle starting at 1 is 1 → 2 → 4 → 1
	require.Equal(t, 2, matrix.CycleNext_TestOnly(1, 2, 7))
	require.Equal(t, 4, matrix.CycleNext_TestOnly(2, 2, 7))
	require.Equal(t, 1, matrix.CycleNext_TestOnly(4, 2, 7))
	// 3 → 6 → 5 → 3
	require.Equal(t, 6, matrix.CycleNext_TestOnly(3, 2, 7))
	require.Equal(t, 5, matrix.CycleNext_TestOnly(6, 2, 7))
	require.Equal(t, 3, matrix.CycleNext_TestOnly(5, 2, 7))

	// no overflow for products beyond int range
	// 4 * 2^62 = 2^64 ≡ -4 (mod 2^62+1)
	big := 1 << 62
	require.Equal(t, big-3, matrix.CycleNext_TestOnly(big, 4, big+1))
}
