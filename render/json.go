// SPDX-License-Identifier: MIT

package render

import (
	"encoding/json"
	"io"

	"github.com/katalvlaran/messengers/dijkstra"
)

// Report is the machine-readable form of a Result. Unreachable distances are
// null.
type Report struct {
	Cities      int      `json:"cities"`
	Source      int      `json:"source"`
	Names       []string `json:"names,omitempty"`
	Distances   []*int64 `json:"distances"`
	Max         int64    `json:"max"`
	Order       []int    `json:"order"`
	Unreachable []int    `json:"unreachable"`
}

// NewReport converts res. Names are filled only when names is non-nil.
func NewReport(res *dijkstra.Result, names Namer) *Report {
	rep := &Report{
		Cities:      len(res.Distances),
		Source:      res.Source,
		Distances:   make([]*int64, len(res.Distances)),
		Max:         res.Max,
		Order:       res.Order,
		Unreachable: res.Unreachable,
	}
	if rep.Unreachable == nil {
		rep.Unreachable = []int{}
	}
	for i, d := range res.Distances {
		if v, ok := d.Value(); ok {
			rep.Distances[i] = &v
		}
	}
	if names != nil {
		rep.Names = make([]string, len(res.Distances))
		for i := range rep.Names {
			rep.Names[i] = names.Name(i)
		}
	}

	return rep
}

// JSON writes NewReport(res, names) as indented JSON.
func JSON(w io.Writer, res *dijkstra.Result, names Namer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(NewReport(res, names))
}
