// Package dijkstra computes single-source shortest distances over a dense,
// symmetric distance matrix and reports how long it takes until every
// reachable city has been reached.
//
// Overview:
//
//   - The source (the capital, city 0 unless Source says otherwise) starts at
//     distance 0, every other city at matrix.Unreachable.
//   - Each iteration relaxes the current city's row, marks the city visited
//     and selects the unvisited city with the smallest finite distance
//     (lowest index on ties) as the next current city.
//   - The loop ends when every city is visited; Result.Max is the largest
//     finite distance.
//
// Disconnected graphs:
//
//   - When no unvisited city has a finite distance, the lowest-index
//     unvisited city is selected so the loop still terminates. Its distance
//     stays Unreachable, it relaxes nothing, and it is listed in
//     Result.Unreachable. Unreachable cities never count towards Result.Max.
//
// Performance and complexity:
//
//   - Time:  O(n²), independent of how many roads exist.
//   - Space: O(n). The matrix is only read, so any number of calls may share
//     one matrix concurrently; each call owns its own distance vector and
//     visited set.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph, ErrEmptyGraph, ErrSourceOutOfRange:
//     invalid arguments.
//   - ErrNegativeWeight, ErrAsymmetric:
//     the O(n²) pre-scan found a cell outside the model (negative weights and
//     one-way roads are not supported).
//   - ErrBadMaxDistance:
//     raised (via panic) by WithMaxDistance for a negative cap.
//
// API reference:
//
//	func Dijkstra(g Graph, opts ...Option) (*Result, error)
//
//	  - g:     any Graph; *matrix.DistanceMatrix is the usual one.
//	  - opts:  Source(int), WithMaxDistance(int64), WithOnVisit(func(int, matrix.Distance)).
//
//	func SingleCity() *Result
//
//	  - the answer for a one-city empire without building anything.
//
// See also:
//
//   - matrix.Build / matrix.ReadTriangle: construct the input matrix.
package dijkstra
