// SPDX-License-Identifier: MIT

package scenario

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
)

// ReadText reads the reference format: a city count n followed by the
// lower-triangle tokens, all separated by any whitespace. Every token after
// the count is kept, so a wrong token total surfaces from Build as a
// *matrix.TokenCountError.
func ReadText(r io.Reader) (*Scenario, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("scenario: reading city count: %w", err)
		}
		return nil, fmt.Errorf("%w: empty input", ErrBadHeader)
	}
	n, err := strconv.Atoi(sc.Text())
	if err != nil || n < 1 {
		return nil, fmt.Errorf("%w: got %q", ErrBadHeader, sc.Text())
	}

	s := &Scenario{Size: n}
	for sc.Scan() {
		s.Tokens = append(s.Tokens, sc.Text())
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("scenario: reading tokens: %w", err)
	}

	return s, nil
}

// LoadText opens path and hands it to ReadText.
func LoadText(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}
	defer f.Close()

	s, err := ReadText(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}
