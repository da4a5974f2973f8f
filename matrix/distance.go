// SPDX-License-Identifier: MIT

package matrix

import (
	"math"
	"strconv"
)

// Infinity is the integer sentinel older inputs use for "no direct road".
// FromInt64 maps it to Unreachable; nothing else in this module stores it.
const Infinity int64 = math.MaxInt64

// Distance is a travel time that is either a finite value or Unreachable.
// The zero value is Unreachable.
type Distance struct {
	v      int64
	finite bool
}

// Unreachable is the distance of a city that cannot be reached.
var Unreachable = Distance{}

// Finite returns the finite distance d.
func Finite(d int64) Distance { return Distance{v: d, finite: true} }

// IsFinite reports whether d holds a finite value.
func (d Distance) IsFinite() bool { return d.finite }

// Value returns the finite value and true, or 0 and false for Unreachable.
func (d Distance) Value() (int64, bool) {
	if !d.finite {
		return 0, false
	}

	return d.v, true
}

// Add returns d + w. The result is Unreachable when either operand is
// Unreachable or when the sum does not fit in an int64.
// Complexity: O(1).
func (d Distance) Add(w Distance) Distance {
	if !d.finite || !w.finite {
		return Unreachable
	}
	if (w.v > 0 && d.v > math.MaxInt64-w.v) || (w.v < 0 && d.v < math.MinInt64-w.v) {
		return Unreachable
	}

	return Finite(d.v + w.v)
}

// Less reports whether d is strictly shorter than o.
// Every finite distance is shorter than Unreachable; Unreachable is never
// shorter than anything.
func (d Distance) Less(o Distance) bool {
	switch {
	case !d.finite:
		return false
	case !o.finite:
		return true
	default:
		return d.v < o.v
	}
}

// String renders the value, or "x" for Unreachable (the input marker).
func (d Distance) String() string {
	if !d.finite {
		return "x"
	}

	return strconv.FormatInt(d.v, 10)
}
