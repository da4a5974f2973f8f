// Package messengers answers one question about an empire of cities joined
// by two-way roads: if messengers leave the capital at the same moment and
// fan out along every road, when has the last reachable city been informed?
//
// The answer is the largest finite single-source shortest distance from the
// capital, computed with an O(n²) dense-matrix Dijkstra.
//
// 🚀 What is inside?
//
//	matrix/     - Distance (finite or Unreachable), DistanceMatrix and the
//	              lower-triangle Builder with strict or lenient token parsing
//	dijkstra/   - the dense-matrix engine: Result with distances, maximum,
//	              settle order and unreachable cities
//	scenario/   - input: plain text, HCL files, interactive prompt
//	render/     - output: console report, arrival timeline, Graphviz DOT, JSON
//	cmd/messengers/ - the command-line tool
//
// Quick ASCII example:
//
//	    0───10───1
//	    │        │
//	    30       5
//	    │        │
//	    2────────┘
//
//	distances [0 10 15], every city informed after 15.
//
// Input format (plain text):
//
//	3
//	10
//	30 5
//
//	go install github.com/katalvlaran/messengers/cmd/messengers@latest
package messengers
