// Package dijkstra defines core types and configuration options
// for the dense-matrix shortest-path engine.
//
// Options:
//
//	– Source:      index of the starting city (default Capital = 0).
//	– MaxDistance: optional cap; cities farther than this stay Unreachable.
//	– OnVisit:     hook invoked as each city's distance becomes final.
//
// Errors (sentinel):
//
//	– ErrNilGraph         if the provided graph is nil.
//	– ErrEmptyGraph       if the graph has no cities.
//	– ErrSourceOutOfRange if Source is not in [0, n).
//	– ErrNegativeWeight   if a finite cell below zero is found.
//	– ErrAsymmetric       if matrix[i][j] != matrix[j][i] for some pair.
//	– ErrBadMaxDistance   if MaxDistance < 0 (raised via panic by the option).
package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/messengers/matrix"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrEmptyGraph indicates a graph of size 0.
	ErrEmptyGraph = errors.New("dijkstra: graph has no cities")

	// ErrSourceOutOfRange indicates that the source index is not a city of the graph.
	ErrSourceOutOfRange = errors.New("dijkstra: source city out of range")

	// ErrNegativeWeight indicates that a negative distance was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrAsymmetric indicates a directed (non-symmetric) matrix.
	ErrAsymmetric = errors.New("dijkstra: distance matrix is not symmetric")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Capital is the default source city.
const Capital = 0

// Graph is the dense view the engine reads: n cities and the distance
// between any two of them. *matrix.DistanceMatrix implements it.
// At is only called with indices in [0, Size()).
type Graph interface {
	Size() int
	At(i, j int) matrix.Distance
}

// Options configures the behavior of the Dijkstra algorithm.
//
// Source      – starting city index; must be in [0, n).
// MaxDistance – cities whose shortest distance exceeds it are left
//
//	Unreachable. Must be ≥ 0. Default is math.MaxInt64 (no cap).
//
// OnVisit     – called once per city, in finalisation order, with the
//
//	city's final distance. Default is a no-op.
type Options struct {
	Source      int
	MaxDistance int64
	OnVisit     func(city int, d matrix.Distance)
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting city.
func Source(city int) Option {
	return func(o *Options) {
		o.Source = city
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Must pass a non-negative value; negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithOnVisit registers a callback run as each city is finalised.
// A nil fn keeps the current hook.
func WithOnVisit(fn func(city int, d matrix.Distance)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// DefaultOptions returns the defaults:
//   - Source:      Capital (0).
//   - MaxDistance: math.MaxInt64 (no cap).
//   - OnVisit:     no-op.
func DefaultOptions() Options {
	return Options{
		Source:      Capital,
		MaxDistance: math.MaxInt64,
		OnVisit:     func(int, matrix.Distance) {},
	}
}

// Result is the outcome of one shortest-path run.
type Result struct {
	// Source is the city distances are measured from.
	Source int

	// Distances[i] is the shortest distance from Source to city i,
	// or matrix.Unreachable.
	Distances []matrix.Distance

	// Max is the largest finite entry of Distances: the time by which every
	// reachable city has been reached. 0 when only Source is reachable.
	Max int64

	// Order lists the cities in the order their distances became final.
	Order []int

	// Unreachable lists, ascending, the cities Source cannot reach.
	// A non-empty list is a warning, not an error.
	Unreachable []int
}

// Reachable returns the number of cities with a finite distance, Source included.
func (r *Result) Reachable() int { return len(r.Distances) - len(r.Unreachable) }

// Connected reports whether every city is reachable from Source.
func (r *Result) Connected() bool { return len(r.Unreachable) == 0 }

// SingleCity is the result for an empire of one city: distance [0], maximum 0.
// It needs no matrix and runs no search.
func SingleCity() *Result {
	return &Result{
		Source:    Capital,
		Distances: []matrix.Distance{matrix.Finite(0)},
		Max:       0,
		Order:     []int{Capital},
	}
}
