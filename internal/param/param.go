// Package param parses the comma-separated integer list supplied as the
// input parameter at startup.
package param

import (
	"fmt"
	"strconv"
	"strings"

	"findmax/internal/maxfinder"
)

// ParseList parses a comma-separated list of signed 32-bit integers, e.g.
// "1,2,3". An empty or all-whitespace string yields zero elements; the caller
// decides whether that is an error. More than maxfinder.MaxElements values
// fail before any parsing past the cap.
func ParseList(s string) ([]int32, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	tokens := strings.Split(s, ",")
	if len(tokens) > maxfinder.MaxElements {
		return nil, fmt.Errorf("%w: got %d, maximum is %d",
			maxfinder.ErrTooManyElements, len(tokens), maxfinder.MaxElements)
	}

	values := make([]int32, 0, len(tokens))
	for i, token := range tokens {
		token = strings.TrimSpace(token)
		if token == "" {
			return nil, fmt.Errorf("empty element at position %d", i)
		}
		v, err := strconv.ParseInt(token, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid element %q at position %d: %w", token, i, err)
		}
		values = append(values, int32(v))
	}
	return values, nil
}
