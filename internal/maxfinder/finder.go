// Package maxfinder computes the maximum value of a bounded integer array
// and every index at which it occurs.
//
// The input is supplied once, is immutable for the duration of the scan, and
// is capped at MaxElements values. The scan is two linear passes: one to find
// the maximum, one to collect its positions in ascending order.
package maxfinder

import (
	"errors"
	"fmt"
	"math"
)

// MaxElements is the hard cap on input length.
const MaxElements = 16

var (
	// ErrEmptyInput is returned when zero elements are supplied.
	ErrEmptyInput = errors.New("no elements provided")

	// ErrTooManyElements is returned when more than MaxElements are supplied.
	ErrTooManyElements = errors.New("too many elements")

	// ErrNoIndices signals the internal fault of a non-empty input producing
	// an empty index list. Unreachable given correct logic; kept as a
	// defensive assertion rather than modeled behavior.
	ErrNoIndices = errors.New("no index found for maximum value")
)

// Result holds the maximum value of a scan and the ordered positions where it
// occurs. Indices is strictly increasing, every indexed element equals Value,
// and no element of the input exceeds Value.
type Result struct {
	Value   int32
	Indices []int

	// IndicesTruncated reports that index collection stopped early because
	// more occurrences of the maximum were found than storage allows. With
	// storage sized at MaxElements this cannot fire, but the degradation
	// path is non-fatal: the partial result is still valid.
	IndicesTruncated bool
}

// ValidateCount checks an element count against the input bounds. Both
// failures are fatal at startup with no retry.
func ValidateCount(n int) error {
	if n <= 0 {
		return ErrEmptyInput
	}
	if n > MaxElements {
		return fmt.Errorf("%w: %d exceeds maximum allowed size (%d)", ErrTooManyElements, n, MaxElements)
	}
	return nil
}

// Find scans values and returns the maximum together with every index at
// which it occurs.
func Find(values []int32) (Result, error) {
	if err := ValidateCount(len(values)); err != nil {
		return Result{}, err
	}

	max := int32(math.MinInt32)
	for _, v := range values {
		if v > max {
			max = v
		}
	}

	indices := make([]int, 0, MaxElements)
	truncated := false
	for i, v := range values {
		if v != max {
			continue
		}
		if len(indices) == MaxElements {
			truncated = true
			break
		}
		indices = append(indices, i)
	}

	if len(indices) == 0 {
		// Non-empty input always yields at least one index.
		return Result{}, ErrNoIndices
	}

	return Result{Value: max, Indices: indices, IndicesTruncated: truncated}, nil
}
