// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - One canonical place for the structural checks a distance matrix must pass.
//   - Used by FromRows/FromInt64 and available to any caller holding a Weights.
//
// Determinism & Performance:
//   - All checks are pure and allocate nothing beyond the returned error.
//   - Each runs O(n²) and reports the first offending cell in row-major order.

package matrix

import "fmt"

// Weights is the read-only view of a square distance table.
// *DistanceMatrix implements it.
type Weights interface {
	Size() int
	At(i, j int) Distance
}

// validatorErrorf tags a sentinel with the validator name and cell.
func validatorErrorf(tag string, i, j int, err error) error {
	return fmt.Errorf("%s(%d,%d): %w", tag, i, j, err)
}

// ValidateDiagonal ensures every diagonal cell is Finite(0).
// Returns ErrNonZeroDiagonal.
func ValidateDiagonal(w Weights) error {
	n := w.Size()
	for i := 0; i < n; i++ {
		if w.At(i, i) != Finite(0) {
			return validatorErrorf("ValidateDiagonal", i, i, ErrNonZeroDiagonal)
		}
	}

	return nil
}

// ValidateNonNegative ensures no finite cell is below zero.
// Returns ErrNegativeWeight.
func ValidateNonNegative(w Weights) error {
	n := w.Size()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if v, ok := w.At(i, j).Value(); ok && v < 0 {
				return validatorErrorf("ValidateNonNegative", i, j, ErrNegativeWeight)
			}
		}
	}

	return nil
}

// ValidateSymmetric ensures w.At(i, j) == w.At(j, i) for all i < j.
// Returns ErrAsymmetry.
func ValidateSymmetric(w Weights) error {
	n := w.Size()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if w.At(i, j) != w.At(j, i) {
				return validatorErrorf("ValidateSymmetric", i, j, ErrAsymmetry)
			}
		}
	}

	return nil
}

// ValidateDistanceMatrix – Composite: Size → Diagonal → NonNegative → Symmetric.
//
// Errors: ErrBadSize, ErrNonZeroDiagonal, ErrNegativeWeight, ErrAsymmetry.
// Complexity: O(n²).
func ValidateDistanceMatrix(w Weights) error {
	if w == nil || w.Size() < 1 {
		return ErrBadSize
	}
	if err := ValidateDiagonal(w); err != nil {
		return err
	}
	if err := ValidateNonNegative(w); err != nil {
		return err
	}

	return ValidateSymmetric(w)
}

// FromRows copies rows into a new sealed DistanceMatrix after validating it.
//
// Errors: ErrBadSize (no rows), ErrNonSquare (ragged or rectangular input),
// then everything ValidateDistanceMatrix reports.
func FromRows(rows [][]Distance) (*DistanceMatrix, error) {
	n := len(rows)
	if n == 0 {
		return nil, ErrBadSize
	}
	m, err := NewDistanceMatrix(n)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("FromRows: row %d has %d cells, want %d: %w", i, len(row), n, ErrNonSquare)
		}
		copy(m.data[i*n:(i+1)*n], row)
	}
	if err = ValidateDistanceMatrix(m); err != nil {
		return nil, fmt.Errorf("FromRows: %w", err)
	}
	m.sealed = true

	return m, nil
}

// FromInt64 adopts a matrix written with the integer sentinel encoding:
// Infinity (math.MaxInt64) means Unreachable, anything else is finite.
func FromInt64(rows [][]int64) (*DistanceMatrix, error) {
	conv := make([][]Distance, len(rows))
	for i, row := range rows {
		conv[i] = make([]Distance, len(row))
		for j, v := range row {
			if v == Infinity {
				conv[i][j] = Unreachable
			} else {
				conv[i][j] = Finite(v)
			}
		}
	}

	return FromRows(conv)
}
