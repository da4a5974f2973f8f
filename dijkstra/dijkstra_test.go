// Package dijkstra_test contains unit tests for the Dijkstra implementation.
// These tests validate argument checks, the reference scenarios, disconnected
// graphs, tie-breaking, options and the structural properties every result
// must satisfy.
package dijkstra_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/messengers/dijkstra"
	"github.com/katalvlaran/messengers/matrix"
)

var U = matrix.Unreachable

func F(v int64) matrix.Distance { return matrix.Finite(v) }

// mustRows builds a validated matrix from full rows.
func mustRows(t testing.TB, rows [][]matrix.Distance) *matrix.DistanceMatrix {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// empire is the five-city reference scenario.
func empire(t testing.TB) *matrix.DistanceMatrix {
	return mustRows(t, [][]matrix.Distance{
		{F(0), F(50), F(30), F(100), F(10)},
		{F(50), F(0), F(5), F(20), U},
		{F(30), F(5), F(0), F(50), U},
		{F(100), F(20), F(50), F(0), F(10)},
		{F(10), U, U, F(10), F(0)},
	})
}

// rawGraph is a Graph with no invariants, for inputs DistanceMatrix refuses.
type rawGraph [][]matrix.Distance

func (g rawGraph) Size() int                   { return len(g) }
func (g rawGraph) At(i, j int) matrix.Distance { return g[i][j] }

// ------------------------------------------------------------------------
// 1. Validation Tests: Ensure errors are returned for invalid inputs.
// ------------------------------------------------------------------------

func TestDijkstra_NilGraph(t *testing.T) {
	_, err := dijkstra.Dijkstra(nil)
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestDijkstra_EmptyGraph(t *testing.T) {
	_, err := dijkstra.Dijkstra(rawGraph{})
	require.ErrorIs(t, err, dijkstra.ErrEmptyGraph)

	// a typed nil matrix has size 0
	var m *matrix.DistanceMatrix
	_, err = dijkstra.Dijkstra(m)
	require.ErrorIs(t, err, dijkstra.ErrEmptyGraph)
}

func TestDijkstra_SourceOutOfRange(t *testing.T) {
	for _, src := range []int{-1, 5, 99} {
		_, err := dijkstra.Dijkstra(empire(t), dijkstra.Source(src))
		require.ErrorIs(t, err, dijkstra.ErrSourceOutOfRange)
	}
}

func TestDijkstra_NegativeWeightDetectedEarly(t *testing.T) {
	g := rawGraph{
		{F(0), F(-5)},
		{F(-5), F(0)},
	}
	_, err := dijkstra.Dijkstra(g)
	require.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
	require.Contains(t, err.Error(), "adjMat[0][1]=-5")
}

func TestDijkstra_AsymmetricRejected(t *testing.T) {
	g := rawGraph{
		{F(0), F(3)},
		{U, F(0)},
	}
	_, err := dijkstra.Dijkstra(g)
	require.ErrorIs(t, err, dijkstra.ErrAsymmetric)
}

func TestWithMaxDistance_PanicsOnNegative(t *testing.T) {
	require.PanicsWithValue(t, dijkstra.ErrBadMaxDistance.Error(), func() {
		dijkstra.WithMaxDistance(-1)(&dijkstra.Options{})
	})
}

// ------------------------------------------------------------------------
// 2. Reference scenarios.
// ------------------------------------------------------------------------

func TestDijkstra_Empire(t *testing.T) {
	res, err := dijkstra.Dijkstra(empire(t))
	require.NoError(t, err)

	require.Equal(t, []matrix.Distance{F(0), F(35), F(30), F(20), F(10)}, res.Distances)
	require.Equal(t, int64(35), res.Max)
	require.Equal(t, []int{0, 4, 3, 2, 1}, res.Order)
	require.Empty(t, res.Unreachable)
	require.True(t, res.Connected())
	require.Equal(t, 5, res.Reachable())
	require.Equal(t, dijkstra.Capital, res.Source)
}

func TestDijkstra_TwoCities(t *testing.T) {
	m, err := matrix.Build(2, []string{"7"})
	require.NoError(t, err)

	res, err := dijkstra.Dijkstra(m)
	require.NoError(t, err)
	require.Equal(t, []matrix.Distance{F(0), F(7)}, res.Distances)
	require.Equal(t, int64(7), res.Max)
}

func TestDijkstra_Disconnected(t *testing.T) {
	m := mustRows(t, [][]matrix.Distance{
		{F(0), U, U},
		{U, F(0), U},
		{U, U, F(0)},
	})
	res, err := dijkstra.Dijkstra(m)
	require.NoError(t, err)

	require.Equal(t, []matrix.Distance{F(0), U, U}, res.Distances)
	require.Zero(t, res.Max)
	require.Equal(t, []int{1, 2}, res.Unreachable)
	require.False(t, res.Connected())
	require.Equal(t, 1, res.Reachable())
	// fallback selection visits the remaining cities in index order
	require.Equal(t, []int{0, 1, 2}, res.Order)
}

func TestDijkstra_IslandExcludedFromMax(t *testing.T) {
	// 0-1 (4), 1-2 (6); city 3 has no roads at all
	m, err := matrix.Build(4, []string{
		"4",
		"x", "6",
		"x", "x", "x",
	})
	require.NoError(t, err)

	res, err := dijkstra.Dijkstra(m)
	require.NoError(t, err)
	require.Equal(t, []matrix.Distance{F(0), F(4), F(10), U}, res.Distances)
	require.Equal(t, int64(10), res.Max)
	require.Equal(t, []int{3}, res.Unreachable)
}

func TestDijkstra_UnreachableIslandPair(t *testing.T) {
	// cities 2 and 3 are joined to each other only; neither may relax the other
	// into a finite distance because neither is reachable
	m, err := matrix.Build(4, []string{
		"1",
		"x", "x",
		"x", "x", "2",
	})
	require.NoError(t, err)

	res, err := dijkstra.Dijkstra(m)
	require.NoError(t, err)
	require.Equal(t, []matrix.Distance{F(0), F(1), U, U}, res.Distances)
	require.Equal(t, int64(1), res.Max)
}

func TestDijkstra_SingleCityMatrix(t *testing.T) {
	m, err := matrix.Build(1, nil)
	require.NoError(t, err)

	res, err := dijkstra.Dijkstra(m)
	require.NoError(t, err)
	require.Equal(t, []matrix.Distance{F(0)}, res.Distances)
	require.Zero(t, res.Max)
	require.Equal(t, dijkstra.SingleCity(), res)
}

func TestSingleCity(t *testing.T) {
	res := dijkstra.SingleCity()
	require.Equal(t, []matrix.Distance{F(0)}, res.Distances)
	require.Zero(t, res.Max)
	require.True(t, res.Connected())
}

func TestDijkstra_TieBreakLowestIndex(t *testing.T) {
	// 1 and 2 are both at 5; 1 must be finalised first
	m, err := matrix.Build(3, []string{"5", "5", "1"})
	require.NoError(t, err)

	res, err := dijkstra.Dijkstra(m)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2}, res.Order)
	require.Equal(t, []matrix.Distance{F(0), F(5), F(5)}, res.Distances)
}

func TestDijkstra_ZeroWeightRoads(t *testing.T) {
	m, err := matrix.Build(3, []string{"0", "x", "0"})
	require.NoError(t, err)

	res, err := dijkstra.Dijkstra(m)
	require.NoError(t, err)
	require.Equal(t, []matrix.Distance{F(0), F(0), F(0)}, res.Distances)
	require.Zero(t, res.Max)
	require.True(t, res.Connected())
}

func TestDijkstra_HugeWeightsDoNotWrap(t *testing.T) {
	big := matrix.Infinity - 1
	m, err := matrix.FromInt64([][]int64{
		{0, big, matrix.Infinity},
		{big, 0, big},
		{matrix.Infinity, big, 0},
	})
	require.NoError(t, err)

	res, err := dijkstra.Dijkstra(m)
	require.NoError(t, err)
	// big+big overflows int64 and saturates to Unreachable
	require.Equal(t, []matrix.Distance{F(0), F(big), U}, res.Distances)
	require.Equal(t, big, res.Max)
}

// ------------------------------------------------------------------------
// 3. Options.
// ------------------------------------------------------------------------

func TestDijkstra_OtherSource(t *testing.T) {
	res, err := dijkstra.Dijkstra(empire(t), dijkstra.Source(1))
	require.NoError(t, err)
	// 1→2 5, 1→3 20, 1→2→0 35, 1→3→4 30
	require.Equal(t, []matrix.Distance{F(35), F(0), F(5), F(20), F(30)}, res.Distances)
	require.Equal(t, int64(35), res.Max)
	require.Equal(t, 1, res.Source)
}

func TestDijkstra_MaxDistance(t *testing.T) {
	res, err := dijkstra.Dijkstra(empire(t), dijkstra.WithMaxDistance(30))
	require.NoError(t, err)
	require.Equal(t, []matrix.Distance{F(0), U, F(30), F(20), F(10)}, res.Distances)
	require.Equal(t, int64(30), res.Max)
	require.Equal(t, []int{1}, res.Unreachable)
}

func TestDijkstra_OnVisit(t *testing.T) {
	var cities []int
	var dists []matrix.Distance
	res, err := dijkstra.Dijkstra(empire(t), dijkstra.WithOnVisit(func(city int, d matrix.Distance) {
		cities = append(cities, city)
		dists = append(dists, d)
	}))
	require.NoError(t, err)
	require.Equal(t, res.Order, cities)
	require.Equal(t, []matrix.Distance{F(0), F(10), F(20), F(30), F(35)}, dists)

	// nil keeps the default no-op hook
	_, err = dijkstra.Dijkstra(empire(t), dijkstra.WithOnVisit(nil))
	require.NoError(t, err)
}

// ------------------------------------------------------------------------
// 4. Properties.
// ------------------------------------------------------------------------

// requireShortestPathProperties checks the invariants every result must hold.
func requireShortestPathProperties(t *testing.T, m *matrix.DistanceMatrix, res *dijkstra.Result) {
	t.Helper()
	n := m.Size()
	require.Len(t, res.Distances, n)
	require.Len(t, res.Order, n)
	require.Equal(t, F(0), res.Distances[res.Source])

	var max int64
	for i := 0; i < n; i++ {
		if v, ok := res.Distances[i].Value(); ok && v > max {
			max = v
		}
		for j := 0; j < n; j++ {
			w := m.At(j, i)
			if i == j || !w.IsFinite() {
				continue
			}
			// dist[i] <= dist[j] + w(j,i) for every finite road
			require.Falsef(t, res.Distances[j].Add(w).Less(res.Distances[i]),
				"edge %d→%d: dist[%d]=%s > %s+%s", j, i, i, res.Distances[i], res.Distances[j], w)
		}
	}
	require.Equal(t, max, res.Max)
}

func TestDijkstra_Properties(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		m := randomMatrix(t, seed, 3+int(seed%9), 40)
		res, err := dijkstra.Dijkstra(m)
		require.NoError(t, err)
		requireShortestPathProperties(t, m, res)
	}
}

func TestDijkstra_Idempotent(t *testing.T) {
	m := randomMatrix(t, 7, 12, 50)
	first, err := dijkstra.Dijkstra(m)
	require.NoError(t, err)
	second, err := dijkstra.Dijkstra(m)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestDijkstra_ConcurrentQueriesShareMatrix(t *testing.T) {
	m := randomMatrix(t, 11, 20, 60)
	want, err := dijkstra.Dijkstra(m)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]*dijkstra.Result, 8)
	for k := range results {
		wg.Add(1)
		go func(k int) {
			defer wg.Done()
			results[k], _ = dijkstra.Dijkstra(m)
		}(k)
	}
	wg.Wait()

	for _, got := range results {
		require.Equal(t, want, got)
	}
}
