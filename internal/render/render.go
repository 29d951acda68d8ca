// Package render formats scan results as bounded, human-readable text.
//
// All output goes through a fixed-capacity Builder so a pathological input
// can never grow a log line past its declared buffer size: writes past
// capacity keep the prefix that fits and mark the builder truncated, and the
// caller reports the truncation as a warning instead of aborting.
package render

import (
	"fmt"
	"strings"

	"findmax/internal/maxfinder"
)

// DefaultBufferSize is the default rendering capacity in bytes.
const DefaultBufferSize = 256

// Builder is a string builder with a hard capacity. Once a write does not
// fully fit, the remainder is dropped and the builder stays truncated.
type Builder struct {
	sb        strings.Builder
	capacity  int
	truncated bool
}

// NewBuilder returns a Builder that holds at most capacity bytes.
// A non-positive capacity falls back to DefaultBufferSize.
func NewBuilder(capacity int) *Builder {
	if capacity <= 0 {
		capacity = DefaultBufferSize
	}
	return &Builder{capacity: capacity}
}

// WriteString appends s, keeping only the prefix that fits.
func (b *Builder) WriteString(s string) {
	if b.truncated {
		return
	}
	remaining := b.capacity - b.sb.Len()
	if len(s) <= remaining {
		b.sb.WriteString(s)
		return
	}
	b.sb.WriteString(s[:remaining])
	b.truncated = true
}

// Writef appends a formatted string, keeping only the prefix that fits.
func (b *Builder) Writef(format string, args ...interface{}) {
	b.WriteString(fmt.Sprintf(format, args...))
}

// Truncated reports whether any write was cut short.
func (b *Builder) Truncated() bool {
	return b.truncated
}

// Len returns the number of bytes written so far.
func (b *Builder) Len() int {
	return b.sb.Len()
}

// String returns the accumulated text.
func (b *Builder) String() string {
	return b.sb.String()
}

// Array renders the received input line: "Received N element(s): [a, b, c]".
func Array(b *Builder, values []int32) {
	b.Writef("Received %d element(s): [", len(values))
	for i, v := range values {
		if i == len(values)-1 {
			b.Writef("%d", v)
		} else {
			b.Writef("%d, ", v)
		}
	}
	b.WriteString("]")
}

// Value renders the maximum value line.
func Value(b *Builder, v int32) {
	b.Writef("Maximum value found: %d", v)
}

// Indices renders the index list line: "Found at index/indices: [i, j]".
func Indices(b *Builder, indices []int) {
	b.WriteString("Found at index/indices: [")
	for i, idx := range indices {
		if i == len(indices)-1 {
			b.Writef("%d", idx)
		} else {
			b.Writef("%d, ", idx)
		}
	}
	b.WriteString("]")
}

// Lines renders the three report lines for a scan result using buffers of
// the given capacity. The second return value reports whether any line was
// truncated.
func Lines(values []int32, result maxfinder.Result, capacity int) ([]string, bool) {
	truncated := false
	render := func(fn func(*Builder)) string {
		b := NewBuilder(capacity)
		fn(b)
		if b.Truncated() {
			truncated = true
		}
		return b.String()
	}

	lines := []string{
		render(func(b *Builder) { Array(b, values) }),
		render(func(b *Builder) { Value(b, result.Value) }),
		render(func(b *Builder) { Indices(b, result.Indices) }),
	}
	return lines, truncated
}
