package graphutils

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrMalformedInput is returned when a token in the edge list is not an integer
// or the stream ends in the middle of a pair.
var ErrMalformedInput = errors.New("malformed edge list")

// maxLineSize bounds a single line of the edge list
const maxLineSize = 1 << 20

// ReadEdgeList reads whitespace separated "src dst" pairs from r and calls fn
// for every pair, in stream order. A pair may span a line break.
// Lines whose first token starts with '#' or '%' are comments.
// Values are not filtered here: negative ids are handed to fn as-is.
func ReadEdgeList(r io.Reader, fn func(u, v int32)) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLineSize)

	var (
		pending int32
		haveSrc bool
		line    int
	)
	for sc.Scan() {
		line++
		tok := strings.Fields(sc.Text())
		if len(tok) == 0 || strings.HasPrefix(tok[0], "#") || strings.HasPrefix(tok[0], "%") {
			continue
		}
		for _, s := range tok {
			x, err := strconv.ParseInt(s, 10, 32)
			if err != nil {
				return fmt.Errorf("%w: line %d: token %q", ErrMalformedInput, line, s)
			}
			if !haveSrc {
				pending, haveSrc = int32(x), true
				continue
			}
			fn(pending, int32(x))
			haveSrc = false
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read edge list: %w", err)
	}
	if haveSrc {
		return fmt.Errorf("%w: line %d: unpaired source %d", ErrMalformedInput, line, pending)
	}
	return nil
}
