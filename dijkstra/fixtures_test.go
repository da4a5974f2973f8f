package dijkstra_test

import (
	"strconv"
	"sync"
	"testing"

	"github.com/brianvoe/gofakeit"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/messengers/matrix"
)

// gofakeit keeps one global source; tests seeding it must not interleave.
var fakeLock sync.Mutex

// randomTokens produces a reproducible lower triangle for n cities where
// roughly openPercent of the roads exist, each 0..100 long.
func randomTokens(seed int64, n, openPercent int) []string {
	fakeLock.Lock()
	defer fakeLock.Unlock()

	gofakeit.Seed(seed)
	tokens := make([]string, 0, matrix.TriangleLen(n))
	for k := 0; k < matrix.TriangleLen(n); k++ {
		if gofakeit.Number(1, 100) > openPercent {
			tokens = append(tokens, "x")
			continue
		}
		tokens = append(tokens, strconv.Itoa(gofakeit.Number(0, 100)))
	}

	return tokens
}

// randomMatrix builds the matrix described by randomTokens.
func randomMatrix(tb testing.TB, seed int64, n, openPercent int) *matrix.DistanceMatrix {
	tb.Helper()
	m, err := matrix.Build(n, randomTokens(seed, n, openPercent))
	require.NoError(tb, err)

	return m
}
