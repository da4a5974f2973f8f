// Package dijkstra implements Dijkstra's shortest-path algorithm on a dense,
// symmetric distance matrix.
//
// Complexity:
//
//   - Time:  O(n²). Each of the n iterations relaxes one row (O(n)) and scans
//     all cities once to select the next one (O(n)).
//   - Space: O(n) for the distance vector, visited set and order.
//
// Notes on implementation choices:
//
//   - We perform an upfront O(n²) scan to reject negative and asymmetric cells.
//   - Distances are matrix.Distance values; Add saturates to Unreachable, so
//     no sum ever wraps around.
//   - Relaxation and selection are separate steps. Selection takes the
//     smallest finite distance, lowest index on ties; when no unvisited city
//     is reachable it takes the lowest-index unvisited city, which keeps its
//     Unreachable distance and relaxes nothing.
package dijkstra

import (
	"fmt"

	"github.com/yourbasic/bit"

	"github.com/katalvlaran/messengers/matrix"
)

// Dijkstra computes the shortest distance from the source city
// (Options.Source, Capital by default) to every city of g, and the largest
// finite one.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. g must have at least one city (ErrEmptyGraph).
//  3. Source must be in [0, n) (ErrSourceOutOfRange).
//  4. No finite cell may be negative (ErrNegativeWeight).
//  5. g must be symmetric (ErrAsymmetric).
//
// A city the source cannot reach keeps matrix.Unreachable, is listed in
// Result.Unreachable and does not count towards Result.Max.
//
// Complexity:
//
//   - Time:  O(n²)
//   - Space: O(n)
func Dijkstra(g Graph, opts ...Option) (*Result, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the graph and source
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.Size()
	if n < 1 {
		return nil, ErrEmptyGraph
	}
	if cfg.Source < 0 || cfg.Source >= n {
		return nil, fmt.Errorf("%w: source=%d, cities=%d", ErrSourceOutOfRange, cfg.Source, n)
	}

	// 3) Pre-scan all cells. Fail fast on negative or one-way distances.
	if err := prescan(g, n); err != nil {
		return nil, err
	}

	// 4) Run
	r := newRunner(g, n, cfg)
	r.run()

	return r.result(), nil
}

// prescan checks the upper triangle against the lower one and both against 0.
func prescan(g Graph, n int) error {
	var w matrix.Distance
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			w = g.At(i, j)
			if v, ok := w.Value(); ok && v < 0 {
				return fmt.Errorf("%w: adjMat[%d][%d]=%d", ErrNegativeWeight, i, j, v)
			}
			if g.At(j, i) != w {
				return fmt.Errorf("%w: adjMat[%d][%d]=%s, adjMat[%d][%d]=%s",
					ErrAsymmetric, i, j, w, j, i, g.At(j, i))
			}
		}
	}

	return nil
}

// runner holds the mutable state for a single Dijkstra execution.
// g is only read; everything else belongs to this run alone.
type runner struct {
	g       Graph
	n       int
	options Options

	dist         []matrix.Distance // current best distance per city
	visited      *bit.Set          // cities whose distance is final
	visitedCount int
	order        []int
}

func newRunner(g Graph, n int, cfg Options) *runner {
	// the zero Distance is Unreachable, so make() initialises every city
	return &runner{
		g:       g,
		n:       n,
		options: cfg,
		dist:    make([]matrix.Distance, n),
		visited: new(bit.Set),
		order:   make([]int, 0, n),
	}
}

// run is the core loop: relax the current city, mark it visited, select the
// next one, until all n cities are visited.
func (r *runner) run() {
	current := r.options.Source
	r.dist[current] = matrix.Finite(0)

	for r.visitedCount < r.n {
		r.relax(current)

		r.visited.Add(current)
		r.visitedCount++
		r.order = append(r.order, current)
		r.options.OnVisit(current, r.dist[current])

		next, ok := r.selectNext()
		if !ok {
			break
		}
		current = next
	}
}

// relax offers every unvisited neighbour of current the path through current.
// Nothing is relaxed from an Unreachable city.
func (r *runner) relax(current int) {
	base := r.dist[current]
	if !base.IsFinite() {
		return
	}

	var w, cand matrix.Distance
	for i := 0; i < r.n; i++ {
		if i == current || r.visited.Contains(i) {
			continue
		}
		w = r.g.At(current, i)
		if !w.IsFinite() {
			continue // no direct road
		}
		cand = base.Add(w)
		if v, ok := cand.Value(); !ok || v > r.options.MaxDistance {
			continue
		}
		if cand.Less(r.dist[i]) {
			r.dist[i] = cand
		}
	}
}

// selectNext returns the unvisited city with the smallest finite distance,
// lowest index on ties. If none is reachable it falls back to the
// lowest-index unvisited city. ok is false when every city is visited.
func (r *runner) selectNext() (next int, ok bool) {
	best, fallback := -1, -1
	for i := 0; i < r.n; i++ {
		if r.visited.Contains(i) {
			continue
		}
		if fallback < 0 {
			fallback = i
		}
		if !r.dist[i].IsFinite() {
			continue
		}
		if best < 0 || r.dist[i].Less(r.dist[best]) {
			best = i
		}
	}
	if best >= 0 {
		return best, true
	}

	return fallback, fallback >= 0
}

// result freezes the run into a Result.
func (r *runner) result() *Result {
	res := &Result{
		Source:    r.options.Source,
		Distances: r.dist,
		Order:     r.order,
	}
	for i, d := range r.dist {
		v, ok := d.Value()
		if !ok {
			res.Unreachable = append(res.Unreachable, i)
			continue
		}
		if v > res.Max {
			res.Max = v
		}
	}

	return res
}
