// SPDX-License-Identifier: MIT

package scenario

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/messengers/matrix"
)

const (
	sizePrompt = "First, enter the row/col count for our nxn matrix: "
	cellPrompt = "Enter adjMat[%d][%d]: "
)

// Prompt asks for the city count and then for every lower-triangle cell in
// order, writing prompts to out and reading whitespace-separated answers
// from in. An answer the Builder rejects is reported and the same cell is
// asked again, so the returned Scenario always builds under opts.
//
// Running out of input before the triangle is complete returns
// io.ErrUnexpectedEOF.
func Prompt(in io.Reader, out io.Writer, opts ...matrix.BuilderOption) (*Scenario, error) {
	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)

	next := func() (string, error) {
		if sc.Scan() {
			return sc.Text(), nil
		}
		if err := sc.Err(); err != nil {
			return "", fmt.Errorf("scenario: prompt: %w", err)
		}
		return "", fmt.Errorf("scenario: prompt: %w", io.ErrUnexpectedEOF)
	}

	var n int
	for {
		fmt.Fprint(out, sizePrompt)
		tok, err := next()
		if err != nil {
			return nil, err
		}
		if n, err = strconv.Atoi(tok); err == nil && n >= 1 && n <= matrix.MaxSize {
			break
		}
		fmt.Fprintf(out, "%v: got %q, try again\n", ErrBadHeader, tok)
	}

	b, err := matrix.NewBuilder(n, opts...)
	if err != nil {
		return nil, err
	}
	s := &Scenario{Size: n, Tokens: make([]string, 0, b.Expected())}
	for {
		row, col, ok := b.Next()
		if !ok {
			break
		}
		fmt.Fprintf(out, cellPrompt, row, col)
		tok, err := next()
		if err != nil {
			return nil, err
		}
		if err = b.Push(tok); err != nil {
			var bad *matrix.InvalidTokenError
			if errors.As(err, &bad) {
				fmt.Fprintf(out, "%v, try again\n", err)
				continue
			}
			return nil, err
		}
		s.Tokens = append(s.Tokens, tok)
	}

	return s, nil
}
