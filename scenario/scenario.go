// SPDX-License-Identifier: MIT

// Package scenario turns user input into a Scenario: the declared number of
// cities, optional city names and the lower-triangle token stream that the
// matrix Builder consumes.
//
// Three sources are supported:
//   - plain text: the city count followed by n·(n−1)/2 tokens (ReadText, LoadText);
//   - HCL files with named cities and a nested `lower` list (ParseHCL, LoadHCL);
//   - an interactive prompt that asks for every cell in turn (Prompt).
//
// Readers only split and shape the input. Token parsing and all size checks
// happen in package matrix, so every source reports the same errors.
package scenario

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/messengers/matrix"
)

var (
	// ErrBadHeader is returned when the city count is missing, not an
	// integer, or below 1.
	ErrBadHeader = errors.New("scenario: city count must be an integer >= 1")

	// ErrSizeConflict signals that the declared size and the number of city
	// names disagree.
	ErrSizeConflict = errors.New("scenario: size disagrees with city names")

	// ErrBadRow signals an HCL `lower` list whose shape is not a lower
	// triangle (row i must hold exactly i cells).
	ErrBadRow = errors.New("scenario: malformed lower-triangle row")

	// ErrBadCell signals an HCL cell that is neither a whole number nor a string.
	ErrBadCell = errors.New("scenario: cell must be a whole number or \"x\"")
)

// Scenario is one empire as read from input.
type Scenario struct {
	Size   int      // number of cities, >= 1
	Names  []string // optional, len(Names) == Size when set
	Tokens []string // lower triangle, row-major over rows 1..Size−1
}

// Trivial reports whether the empire is the capital alone with no roads to
// read, in which case no matrix needs to be built.
func (s *Scenario) Trivial() bool {
	return s.Size == 1 && len(s.Tokens) == 0
}

// Name returns the display name of city i.
func (s *Scenario) Name(i int) string {
	if i >= 0 && i < len(s.Names) && s.Names[i] != "" {
		return s.Names[i]
	}
	if i == 0 {
		return "capital"
	}

	return fmt.Sprintf("city %d", i)
}

// Build feeds the tokens into a matrix.Builder of the declared size.
// Errors are those of matrix.Build.
func (s *Scenario) Build(opts ...matrix.BuilderOption) (*matrix.DistanceMatrix, error) {
	return matrix.Build(s.Size, s.Tokens, opts...)
}

// Load reads a scenario file, choosing the decoder by extension: ".hcl" files
// go through LoadHCL, anything else through LoadText.
func Load(path string) (*Scenario, error) {
	if strings.EqualFold(filepath.Ext(path), ".hcl") {
		return LoadHCL(path)
	}

	return LoadText(path)
}

// checkNames validates the optional name list against size.
func checkNames(size int, names []string) error {
	if len(names) > 0 && len(names) != size {
		return fmt.Errorf("%w: size %d, %d names", ErrSizeConflict, size, len(names))
	}

	return nil
}
