package stones

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// A ParseError reports an input token that is not a non-negative integer.
type ParseError struct {
	Index int // zero-based position of the token in the input
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("bad stone at index %d: %s", e.Index, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parse reads whitespace-separated stones from r. Any whitespace, including
// newlines, separates stones.
func Parse(r io.Reader) ([]uint64, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	var stones []uint64
	for scanner.Scan() {
		tok := scanner.Text()
		n, err := strconv.ParseUint(tok, 10, 64)
		if err != nil {
			return nil, &ParseError{Index: len(stones), Token: tok, Err: err}
		}
		stones = append(stones, n)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return stones, nil
}
