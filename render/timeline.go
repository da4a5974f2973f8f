// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/messengers/dijkstra"
)

// TimelineWidth is the bar length of the city reached last.
const TimelineWidth = 40

// Timeline draws one line per reachable city in the order the messengers
// arrive, with a bar proportional to the arrival time, then one "never" line
// per unreachable city:
//
//	    0 |* capital
//	   10 |-----------* city 4
//	   35 |----------------------------------------* city 1
//	never | city 3
//
// names may be nil.
func Timeline(w io.Writer, res *dijkstra.Result, names Namer) error {
	digits := len(strconv.FormatInt(res.Max, 10))
	if digits < len("never") {
		digits = len("never")
	}

	for _, city := range res.Order {
		v, ok := res.Distances[city].Value()
		if !ok {
			continue
		}
		bar := 0
		if res.Max > 0 {
			bar = int(float64(v) / float64(res.Max) * TimelineWidth)
		}
		if _, err := fmt.Fprintf(w, "%*d |%s* %s\n",
			digits, v, strings.Repeat("-", bar), nameOf(names, city)); err != nil {
			return err
		}
	}
	for _, city := range res.Unreachable {
		if _, err := fmt.Fprintf(w, "%*s | %s\n", digits, "never", nameOf(names, city)); err != nil {
			return err
		}
	}

	return nil
}
