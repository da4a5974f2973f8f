// SPDX-License-Identifier: MIT
// Package matrix: sentinel and typed errors.
//
// Every sentinel is prefixed with "matrix: ". Typed errors (TokenCountError,
// InvalidTokenError) carry the diagnostic context and unwrap to a sentinel,
// so callers match with errors.Is / errors.As.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrBadSize is returned when the requested matrix size is below 1 or
	// above MaxSize.
	ErrBadSize = errors.New("matrix: size out of range")

	// ErrSealed is returned by Set on a matrix that has been handed out
	// as finished.
	ErrSealed = errors.New("matrix: matrix is read-only")

	// ErrOutOfRange indicates that a row or column index is outside [0, n).
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonSquare signals that supplied rows do not form an n×n grid.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry signals that matrix[i][j] != matrix[j][i] for some pair.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric")

	// ErrNonZeroDiagonal signals a diagonal cell other than Finite(0).
	ErrNonZeroDiagonal = errors.New("matrix: diagonal not zero")

	// ErrNegativeWeight signals a finite distance below zero.
	ErrNegativeWeight = errors.New("matrix: negative distance")

	// ErrInvalidToken marks a token that is neither an integer nor x / X.
	ErrInvalidToken = errors.New("matrix: invalid distance token")

	// ErrSizeMismatch marks a token stream whose length differs from n·(n−1)/2.
	ErrSizeMismatch = errors.New("matrix: token count does not match size")

	// ErrBuilderDone is returned by a Builder that already produced its matrix.
	ErrBuilderDone = errors.New("matrix: builder already finished")
)

// TokenCountError reports a lower-triangle stream with the wrong number of
// tokens. It unwraps to ErrSizeMismatch.
type TokenCountError struct {
	Size     int // declared matrix size n
	Expected int // n·(n−1)/2
	Actual   int // tokens supplied
}

// Error implements error.
func (e *TokenCountError) Error() string {
	return fmt.Sprintf("matrix: %dx%d matrix needs %d lower-triangle tokens, got %d",
		e.Size, e.Size, e.Expected, e.Actual)
}

// Unwrap returns ErrSizeMismatch.
func (e *TokenCountError) Unwrap() error { return ErrSizeMismatch }

// InvalidTokenError reports the token that could not be turned into a
// Distance and the cell it was meant for. Err is ErrInvalidToken or
// ErrNegativeWeight.
type InvalidTokenError struct {
	Row, Col int
	Token    string
	Err      error
}

// Error implements error.
func (e *InvalidTokenError) Error() string {
	return fmt.Sprintf("adjMat[%d][%d] = %q: %v", e.Row, e.Col, e.Token, e.Err)
}

// Unwrap returns the underlying sentinel.
func (e *InvalidTokenError) Unwrap() error { return e.Err }

// cellErrorf wraps a sentinel with the coordinates that triggered it.
func cellErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("DistanceMatrix.%s(%d,%d): %w", method, row, col, err)
}
