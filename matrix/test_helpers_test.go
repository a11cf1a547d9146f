// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for constructors and kernels.
//   • Offer a gonum reference oracle so Mul/Transpose are checked against an
//     independent implementation on random inputs.

package matrix_test

import (
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/malg/matrix"
)

// MustNew ALLOCATES an r×c matrix or fails the test (fatal on error).
func MustNew[T matrix.Number](t testing.TB, r, c int, opts ...matrix.Option[T]) *matrix.Matrix[T] {
	t.Helper()
	m, err := matrix.New(r, c, opts...)
	if err != nil {
		t.Fatalf("New(%d,%d): %v", r, c, err)
	}

	return m
}

// MustFromRows builds a matrix from a literal or fails the test.
func MustFromRows[T matrix.Number](t testing.TB, rows [][]T, opts ...matrix.Option[T]) *matrix.Matrix[T] {
	t.Helper()
	m, err := matrix.FromRows(rows, opts...)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}

	return m
}

// ToRows reads every cell through Row views and returns a nested copy.
// Reading through Row (not Values) also exercises the row index.
func ToRows[T matrix.Number](t testing.TB, m *matrix.Matrix[T]) [][]T {
	t.Helper()
	out := make([][]T, m.Rows())
	for i := range out {
		row, err := m.Row(i)
		if err != nil {
			t.Fatalf("Row(%d): %v", i, err)
		}
		out[i] = append([]T(nil), row...)
	}

	return out
}

// Sequential returns an r×c float64 matrix with cell (i,j) = i*c + j.
// Every value is distinct, so any misplaced element is detectable.
func Sequential(t testing.TB, r, c int) *matrix.Matrix[float64] {
	t.Helper()
	m := MustNew[float64](t, r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if err := m.Set(i, j, float64(i*c+j)); err != nil {
				t.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}

	return m
}

// RandomFill writes deterministic small integers (as float64) into m.
// Integers keep products exact so comparisons against gonum need no tolerance.
func RandomFill(t testing.TB, m *matrix.Matrix[float64], seed int64) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < m.Rows(); i++ {
		row, err := m.Row(i)
		if err != nil {
			t.Fatalf("Row(%d): %v", i, err)
		}
		for j := range row {
			row[j] = float64(rng.Intn(19) - 9)
		}
	}
}

// ToGonum copies m into a gonum *mat.Dense for oracle comparisons.
func ToGonum(m *matrix.Matrix[float64]) *mat.Dense {
	return mat.NewDense(m.Rows(), m.Cols(), m.Values())
}

// GonumRows flattens a gonum matrix into nested rows.
func GonumRows(d mat.Matrix) [][]float64 {
	r, c := d.Dims()
	out := make([][]float64, r)
	for i := 0; i < r; i++ {
		out[i] = make([]float64, c)
		for j := 0; j < c; j++ {
			out[i][j] = d.At(i, j)
		}
	}

	return out
}
