// SPDX-License-Identifier: MIT

// Package matrix - DistanceMatrix storage (row-major) & accessors.
//
// Purpose:
//   - Own one flat buffer of n*n cells, allocated at construction.
//   - Keep the symmetric invariant at the write surface: Set writes both halves.
//   - Serve the shortest-path loop with an unchecked O(1) At; checked reads go
//     through Lookup.
//
// Complexity quicksheet:
//   - NewDistanceMatrix: O(n²); At/Lookup/Set: O(1); Clone: O(n²); String: O(n²).

package matrix

import (
	"fmt"
	"strings"
)

const (
	ctxLookup = "Lookup"
	ctxSet    = "Set"
)

// MaxSize is the largest city count a DistanceMatrix accepts. It keeps the
// n*n cell buffer (16 bytes per cell) within 1 GiB and far from int overflow
// on 32-bit platforms.
const MaxSize = 1 << 13

// DistanceMatrix is an n×n symmetric grid of Distance values.
// data holds n*n cells in row-major order (offset = i*n + j).
// Matrices returned by Build, ReadTriangle, Builder.Build and FromRows are
// sealed: Set refuses to write to them. Clone gives a writable copy.
type DistanceMatrix struct {
	n      int
	data   []Distance
	sealed bool
}

// NewDistanceMatrix allocates an n×n matrix with every cell set to Finite(0).
// Stage 1 (Validate): 1 <= n <= MaxSize.
// Stage 2 (Prepare): allocate and zero-fill the flat buffer.
// Returns ErrBadSize for n outside [1, MaxSize].
// Complexity: O(n²) time and memory.
func NewDistanceMatrix(n int) (*DistanceMatrix, error) {
	if err := checkSize(n); err != nil {
		return nil, err
	}
	data := make([]Distance, n*n)
	zero := Finite(0)
	for k := range data {
		data[k] = zero
	}

	return &DistanceMatrix{n: n, data: data}, nil
}

// checkSize reports ErrBadSize for n outside [1, MaxSize].
func checkSize(n int) error {
	if n < 1 || n > MaxSize {
		return fmt.Errorf("%w: got %d", ErrBadSize, n)
	}

	return nil
}

// Size returns n. A nil matrix has size 0.
func (m *DistanceMatrix) Size() int {
	if m == nil {
		return 0
	}

	return m.n
}

// At returns matrix[i][j] without bounds checks; i and j must be in [0, n).
// Complexity: O(1).
func (m *DistanceMatrix) At(i, j int) Distance {
	return m.data[i*m.n+j]
}

// Lookup is the checked form of At.
// Returns ErrOutOfRange when either index is outside [0, n).
func (m *DistanceMatrix) Lookup(i, j int) (Distance, error) {
	if !m.inRange(i, j) {
		return Unreachable, cellErrorf(ctxLookup, i, j, ErrOutOfRange)
	}

	return m.data[i*m.n+j], nil
}

// Set writes d into matrix[i][j] and matrix[j][i].
//
// Errors:
//   - ErrSealed if the matrix came out of a Builder or FromRows.
//   - ErrOutOfRange if either index is outside [0, n).
//   - ErrNonZeroDiagonal if i == j and d is not Finite(0).
//   - ErrNegativeWeight if d is finite and below zero.
//
// Complexity: O(1).
func (m *DistanceMatrix) Set(i, j int, d Distance) error {
	if m.sealed {
		return cellErrorf(ctxSet, i, j, ErrSealed)
	}
	if !m.inRange(i, j) {
		return cellErrorf(ctxSet, i, j, ErrOutOfRange)
	}
	if v, ok := d.Value(); ok && v < 0 {
		return cellErrorf(ctxSet, i, j, ErrNegativeWeight)
	}
	if i == j {
		if d != Finite(0) {
			return cellErrorf(ctxSet, i, j, ErrNonZeroDiagonal)
		}

		return nil
	}
	m.data[i*m.n+j] = d
	m.data[j*m.n+i] = d

	return nil
}

// Roads counts the unordered pairs {i, j}, i != j, joined by a finite distance.
// Complexity: O(n²).
func (m *DistanceMatrix) Roads() int {
	var count int
	for i := 1; i < m.n; i++ {
		for j := 0; j < i; j++ {
			if m.data[i*m.n+j].IsFinite() {
				count++
			}
		}
	}

	return count
}

// Clone returns an independent deep copy. The copy is writable even when m
// is sealed.
func (m *DistanceMatrix) Clone() *DistanceMatrix {
	data := make([]Distance, len(m.data))
	copy(data, m.data)

	return &DistanceMatrix{n: m.n, data: data}
}

// String renders one bracketed row per line, "x" marking Unreachable.
func (m *DistanceMatrix) String() string {
	var sb strings.Builder
	for i := 0; i < m.n; i++ {
		sb.WriteString("[")
		for j := 0; j < m.n; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(m.data[i*m.n+j].String())
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

func (m *DistanceMatrix) inRange(i, j int) bool {
	return i >= 0 && i < m.n && j >= 0 && j < m.n
}
