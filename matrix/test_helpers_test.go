// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide the five-city empire fixture shared by builder and validator tests.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/messengers/matrix"
	"github.com/stretchr/testify/require"
)

// U is shorthand for an unreachable cell in table fixtures.
var U = matrix.Unreachable

// F is shorthand for a finite cell in table fixtures.
func F(v int64) matrix.Distance { return matrix.Finite(v) }

// empireTokens is the lower triangle of the five-city sample, row-major.
var empireTokens = []string{
	"50",
	"30", "5",
	"100", "20", "50",
	"10", "x", "X", "10",
}

// empireRows is the full matrix empireTokens describes.
var empireRows = [][]matrix.Distance{
	{F(0), F(50), F(30), F(100), F(10)},
	{F(50), F(0), F(5), F(20), U},
	{F(30), F(5), F(0), F(50), U},
	{F(100), F(20), F(50), F(0), F(10)},
	{F(10), U, U, F(10), F(0)},
}

// MustBuild builds a matrix from tokens or fails the test.
func MustBuild(t *testing.T, n int, tokens []string, opts ...matrix.BuilderOption) *matrix.DistanceMatrix {
	t.Helper()
	m, err := matrix.Build(n, tokens, opts...)
	require.NoError(t, err)

	return m
}

// requireRows asserts every cell of m against want.
func requireRows(t *testing.T, want [][]matrix.Distance, m *matrix.DistanceMatrix) {
	t.Helper()
	require.Equal(t, len(want), m.Size())
	for i := range want {
		for j := range want[i] {
			require.Equalf(t, want[i][j], m.At(i, j), "cell [%d][%d]", i, j)
		}
	}
}
