// SPDX-License-Identifier: MIT

package scenario

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

// hclScenarioFile is the top-level shape of a scenario file.
//
//	cities = ["Capital", "Aston", "Brill"]   # optional
//	size   = 3                               # optional when cities or lower imply it
//	lower  = [[50], [30, "x"]]
//
// lower mixes numbers and strings, so it is kept as an expression and
// evaluated cell by cell.
type hclScenarioFile struct {
	Cities []string       `hcl:"cities,optional"`
	Size   *int           `hcl:"size,optional"`
	Lower  hcl.Expression `hcl:"lower,optional"`
}

// LoadHCL parses and decodes the scenario file at path.
func LoadHCL(path string) (*Scenario, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	return decodeHCL(file, path)
}

// ParseHCL decodes a scenario from src. filename is used in diagnostics only.
func ParseHCL(src []byte, filename string) (*Scenario, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}

	return decodeHCL(file, filename)
}

func decodeHCL(file *hcl.File, filename string) (*Scenario, error) {
	var parsed hclScenarioFile
	if diags := gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	lower, diags := parsed.Lower.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to evaluate lower in %s: %w", filename, diags)
	}
	rows, err := lowerRows(lower)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	// size: explicit, else the name count, else implied by the rows
	size := len(rows) + 1
	switch {
	case parsed.Size != nil:
		size = *parsed.Size
	case len(parsed.Cities) > 0:
		size = len(parsed.Cities)
	}
	if size < 1 {
		return nil, fmt.Errorf("%s: %w: got %d", filename, ErrBadHeader, size)
	}
	if err = checkNames(size, parsed.Cities); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	if len(rows) != size-1 {
		return nil, fmt.Errorf("%s: %w: %d cities need %d rows, got %d",
			filename, ErrBadRow, size, size-1, len(rows))
	}

	s := &Scenario{Size: size, Names: parsed.Cities}
	for i, row := range rows {
		if len(row) != i+1 {
			return nil, fmt.Errorf("%s: %w: row %d holds %d cells, want %d",
				filename, ErrBadRow, i+1, len(row), i+1)
		}
		s.Tokens = append(s.Tokens, row...)
	}

	return s, nil
}

// lowerRows flattens the evaluated `lower` value into token rows.
// A null value (attribute absent) yields no rows.
func lowerRows(v cty.Value) ([][]string, error) {
	if v.IsNull() {
		return nil, nil
	}
	if !v.CanIterateElements() {
		return nil, fmt.Errorf("%w: lower must be a list of lists, got %s",
			ErrBadRow, v.Type().FriendlyName())
	}

	var rows [][]string
	for it := v.ElementIterator(); it.Next(); {
		_, row := it.Element()
		if row.IsNull() || !row.CanIterateElements() {
			return nil, fmt.Errorf("%w: row %d is not a list", ErrBadRow, len(rows)+1)
		}
		var tokens []string
		for cit := row.ElementIterator(); cit.Next(); {
			_, cell := cit.Element()
			tok, err := cellToken(cell)
			if err != nil {
				return nil, fmt.Errorf("row %d cell %d: %w", len(rows)+1, len(tokens), err)
			}
			tokens = append(tokens, tok)
		}
		rows = append(rows, tokens)
	}

	return rows, nil
}

// cellToken renders a cty cell as the token the Builder parses.
func cellToken(cell cty.Value) (string, error) {
	if cell.IsNull() || !cell.IsKnown() {
		return "", ErrBadCell
	}

	switch {
	case cell.Type().Equals(cty.String):
		return cell.AsString(), nil
	case cell.Type().Equals(cty.Number):
		bf := cell.AsBigFloat()
		if !bf.IsInt() {
			return "", fmt.Errorf("%w: %s", ErrBadCell, bf.Text('g', -1))
		}
		i, acc := bf.Int64()
		if acc != big.Exact {
			return "", fmt.Errorf("%w: %s overflows int64", ErrBadCell, bf.Text('g', -1))
		}
		return strconv.FormatInt(i, 10), nil
	default:
		return "", fmt.Errorf("%w: got %s", ErrBadCell, cell.Type().FriendlyName())
	}
}
