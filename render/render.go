// SPDX-License-Identifier: MIT

// Package render formats matrices and shortest-path results for people and
// for other programs.
//
// Text output follows the classic console report:
//
//	Input adjacency matrix has row/col dimensions of 5x5
//	0	50	30	100	10
//	...
//	Minimum travel distance to each city starting from capital:
//	0	35	30	20	10
//	Lowest amount of time to travel to 5 cities is 35
//
// Timeline draws when each city is reached. DOT exports the road network for
// Graphviz, and JSON emits a Report for other programs.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/messengers/dijkstra"
	"github.com/katalvlaran/messengers/matrix"
)

// Namer supplies display names for cities. *scenario.Scenario implements it.
type Namer interface {
	Name(city int) string
}

func nameOf(names Namer, city int) string {
	if names == nil {
		if city == dijkstra.Capital {
			return "capital"
		}
		return fmt.Sprintf("city %d", city)
	}

	return names.Name(city)
}

// Matrix writes the dimension line, a heading and the matrix, one
// tab-separated row per line, with x for missing roads. Blank lines frame
// the rows.
func Matrix(w io.Writer, m *matrix.DistanceMatrix) error {
	n := m.Size()
	if _, err := fmt.Fprintf(w, "Input adjacency matrix has row/col dimensions of %dx%d\n"+
		"Adjacency matrix has the following values:\n\n", n, n); err != nil {
		return err
	}
	row := make([]matrix.Distance, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			row[j] = m.At(i, j)
		}
		if err := line(w, row); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)

	return err
}

// Distances writes the heading and the distance vector on one line.
func Distances(w io.Writer, res *dijkstra.Result) error {
	if _, err := fmt.Fprintln(w, "Minimum travel distance to each city starting from capital:"); err != nil {
		return err
	}

	return line(w, res.Distances)
}

// Summary writes the coverage line. When some cities cannot be reached a
// second line names how many.
func Summary(w io.Writer, res *dijkstra.Result) error {
	if _, err := fmt.Fprintf(w, "Lowest amount of time to travel to %s is %d\n",
		cities(len(res.Distances)), res.Max); err != nil {
		return err
	}
	if res.Connected() {
		return nil
	}
	_, err := fmt.Fprintf(w, "%d of %d cities cannot be reached\n",
		len(res.Unreachable), len(res.Distances))

	return err
}

// Text writes Distances followed by Summary.
func Text(w io.Writer, res *dijkstra.Result) error {
	if err := Distances(w, res); err != nil {
		return err
	}

	return Summary(w, res)
}

func cities(n int) string {
	if n == 1 {
		return "1 city"
	}

	return fmt.Sprintf("%d cities", n)
}

func line(w io.Writer, ds []matrix.Distance) error {
	cells := make([]string, len(ds))
	for i, d := range ds {
		cells[i] = d.String()
	}
	_, err := fmt.Fprintln(w, strings.Join(cells, "\t"))

	return err
}
