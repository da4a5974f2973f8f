// SPDX-License-Identifier: MIT

// Package matrix - lower-triangle Builder.
//
// Purpose:
//   - Fill a DistanceMatrix of declared size n from exactly n·(n−1)/2 tokens,
//     read in row-major order over rows 1..n−1, columns 0..row−1.
//   - Write each value to both [row][col] and [col][row].
//   - Refuse to hand out a partially filled matrix: a short stream would leave
//     cells at 0 and fabricate free roads.

package matrix

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
)

// TriangleLen returns n·(n−1)/2, the number of tokens a size-n matrix needs.
// The result saturates at math.MaxInt instead of wrapping.
func TriangleLen(n int) int {
	if n < 2 {
		return 0
	}

	// halve the even factor first so the product is exact
	a, b := n, n-1
	if a%2 == 0 {
		a /= 2
	} else {
		b /= 2
	}
	if a > math.MaxInt/b {
		return math.MaxInt
	}

	return a * b
}

// Builder consumes lower-triangle tokens one at a time.
// The zero value is not usable; call NewBuilder.
type Builder struct {
	m        *DistanceMatrix
	row, col int // next cell to fill
	pushed   int
	want     int
	lenient  bool
}

// NewBuilder prepares a Builder for an n×n matrix.
// Returns ErrBadSize for n outside [1, MaxSize].
func NewBuilder(n int, opts ...BuilderOption) (*Builder, error) {
	m, err := NewDistanceMatrix(n)
	if err != nil {
		return nil, err
	}
	o := gatherBuilderOptions(opts...)

	return &Builder{
		m:       m,
		row:     1,
		col:     0,
		want:    TriangleLen(n),
		lenient: o.lenient,
	}, nil
}

// Expected returns the total number of tokens the Builder needs.
func (b *Builder) Expected() int { return b.want }

// Remaining returns how many tokens are still needed.
func (b *Builder) Remaining() int { return b.want - b.pushed }

// Next returns the cell the next token will fill. ok is false once the
// triangle is complete.
func (b *Builder) Next() (row, col int, ok bool) {
	if b.m == nil || b.pushed >= b.want {
		return 0, 0, false
	}

	return b.row, b.col, true
}

// Push parses token and stores it symmetrically at the current cell.
//
// A rejected token does not advance the position, so an interactive caller
// can ask again for the same cell.
//
// Errors:
//   - *InvalidTokenError (ErrInvalidToken or ErrNegativeWeight) for bad tokens.
//   - *TokenCountError once the triangle is already complete.
//   - ErrBuilderDone after Build succeeded.
func (b *Builder) Push(token string) error {
	if b.m == nil {
		return ErrBuilderDone
	}
	if b.pushed >= b.want {
		return &TokenCountError{Size: b.m.n, Expected: b.want, Actual: b.pushed + 1}
	}

	d, err := b.parse(token)
	if err != nil {
		return &InvalidTokenError{Row: b.row, Col: b.col, Token: token, Err: err}
	}
	if err = b.m.Set(b.row, b.col, d); err != nil {
		return err
	}

	// advance to the next row once the diagonal is reached
	b.pushed++
	b.col++
	if b.col == b.row {
		b.row++
		b.col = 0
	}

	return nil
}

// Build returns the completed matrix. After a successful Build the Builder is
// finished and further calls return ErrBuilderDone.
// Returns *TokenCountError when tokens are still missing; no partial matrix
// is returned.
func (b *Builder) Build() (*DistanceMatrix, error) {
	if b.m == nil {
		return nil, ErrBuilderDone
	}
	if b.pushed != b.want {
		return nil, &TokenCountError{Size: b.m.n, Expected: b.want, Actual: b.pushed}
	}
	m := b.m
	m.sealed = true
	b.m = nil

	return m, nil
}

func (b *Builder) parse(token string) (Distance, error) {
	if b.lenient {
		return parseLenient(token)
	}

	return ParseDistance(token)
}

// ParseDistance parses a token under the strict policy:
// "x" or "X" is Unreachable, a base-10 integer >= 0 is Finite.
//
// Errors: ErrInvalidToken, ErrNegativeWeight.
func ParseDistance(token string) (Distance, error) {
	if token == "x" || token == "X" {
		return Unreachable, nil
	}
	v, err := strconv.ParseInt(token, 10, 64)
	if err != nil {
		return Unreachable, ErrInvalidToken
	}
	if v < 0 {
		return Unreachable, ErrNegativeWeight
	}

	return Finite(v), nil
}

// parseLenient mirrors the permissive atoi-style reading: leading x / X means
// Unreachable, otherwise an optional sign followed by the longest run of
// digits, 0 if there are none.
func parseLenient(token string) (Distance, error) {
	if token == "" {
		return Finite(0), nil
	}
	if token[0] == 'x' || token[0] == 'X' {
		return Unreachable, nil
	}

	i := 0
	neg := false
	if token[0] == '+' || token[0] == '-' {
		neg = token[0] == '-'
		i++
	}
	j := i
	for j < len(token) && token[j] >= '0' && token[j] <= '9' {
		j++
	}
	if j == i {
		return Finite(0), nil
	}

	v, err := strconv.ParseInt(token[i:j], 10, 64)
	if err != nil {
		return Unreachable, ErrInvalidToken
	}
	if neg && v != 0 {
		return Unreachable, ErrNegativeWeight
	}

	return Finite(v), nil
}

// Build fills an n×n matrix from tokens.
// Returns *TokenCountError when len(tokens) != n·(n−1)/2 and
// *InvalidTokenError for the first token that cannot be parsed.
// Size and token count are checked before the n×n buffer is allocated.
func Build(n int, tokens []string, opts ...BuilderOption) (*DistanceMatrix, error) {
	if err := checkSize(n); err != nil {
		return nil, err
	}
	if want := TriangleLen(n); len(tokens) != want {
		return nil, &TokenCountError{Size: n, Expected: want, Actual: len(tokens)}
	}

	b, err := NewBuilder(n, opts...)
	if err != nil {
		return nil, err
	}
	for _, tok := range tokens {
		if err = b.Push(tok); err != nil {
			return nil, err
		}
	}

	return b.Build()
}

// ReadTriangle reads whitespace-separated tokens from r until EOF and builds
// an n×n matrix from them. Surplus tokens are counted so the returned
// *TokenCountError reports the real total.
func ReadTriangle(n int, r io.Reader, opts ...BuilderOption) (*DistanceMatrix, error) {
	b, err := NewBuilder(n, opts...)
	if err != nil {
		return nil, err
	}

	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	extra := 0
	for sc.Scan() {
		if b.Remaining() == 0 {
			extra++
			continue
		}
		if err = b.Push(sc.Text()); err != nil {
			return nil, err
		}
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("matrix: reading triangle: %w", err)
	}
	if extra > 0 {
		return nil, &TokenCountError{Size: n, Expected: b.want, Actual: b.want + extra}
	}

	return b.Build()
}
