// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"strconv"

	"github.com/awalterschulze/gographviz"

	"github.com/katalvlaran/messengers/dijkstra"
	"github.com/katalvlaran/messengers/matrix"
)

// DOTGraphName is the name of the exported graph.
const DOTGraphName = "empire"

// DOTNodeID returns the node identifier used for city i.
func DOTNodeID(city int) string { return "c" + strconv.Itoa(city) }

// DOT exports the road network as an undirected Graphviz graph.
//
//   - Every city is a node labelled with its name and shortest distance.
//   - The source is drawn as a double circle; unreachable cities are dashed.
//   - Every finite road is an edge labelled with its length. Roads that lie
//     on some shortest path (dist[u] + w == dist[v]) are drawn bold.
//
// res may be nil, in which case only names and road lengths are drawn.
// names may be nil.
//
// Complexity: O(n²).
func DOT(m *matrix.DistanceMatrix, res *dijkstra.Result, names Namer) (string, error) {
	g := gographviz.NewGraph()
	if err := g.SetName(DOTGraphName); err != nil {
		return "", err
	}
	if err := g.AddAttr(DOTGraphName, "rankdir", "LR"); err != nil {
		return "", err
	}

	n := m.Size()
	for i := 0; i < n; i++ {
		if err := g.AddNode(DOTGraphName, DOTNodeID(i), nodeAttrs(i, res, names)); err != nil {
			return "", fmt.Errorf("render: node %d: %w", i, err)
		}
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			w := m.At(i, j)
			if !w.IsFinite() {
				continue
			}
			attrs := map[string]string{"label": strconv.Quote(w.String())}
			if res != nil && onShortestPath(res.Distances, i, j, w) {
				attrs["style"] = "bold"
			}
			if err := g.AddEdge(DOTNodeID(i), DOTNodeID(j), false, attrs); err != nil {
				return "", fmt.Errorf("render: road %d-%d: %w", i, j, err)
			}
		}
	}

	return g.String(), nil
}

func nodeAttrs(city int, res *dijkstra.Result, names Namer) map[string]string {
	label := nameOf(names, city)
	attrs := map[string]string{"shape": "circle"}
	if res != nil {
		d := res.Distances[city]
		label = fmt.Sprintf("%s (%s)", label, d)
		if city == res.Source {
			attrs["shape"] = "doublecircle"
		}
		if !d.IsFinite() {
			attrs["style"] = "dashed"
		}
	}
	attrs["label"] = strconv.Quote(label)

	return attrs
}

// onShortestPath reports whether road i-j of length w is tight in either
// direction.
func onShortestPath(dist []matrix.Distance, i, j int, w matrix.Distance) bool {
	return (dist[j].IsFinite() && dist[i].Add(w) == dist[j]) ||
		(dist[i].IsFinite() && dist[j].Add(w) == dist[i])
}
