// Package litkit implements the lexical core of a recursive-descent parser
// for a curly-brace source language: decoding escaped literal tokens into
// their run-time values, and skipping insignificant input (whitespace and
// non-documentation comments) between tokens.
//
// Every entry point takes a [Cursor] and returns the decoded value, a new
// cursor past the consumed input, and an ok flag. There is no partial
// success and no diagnostic payload: a failed decode returns the input
// cursor unchanged, and the caller (typically a backtracking grammar rule)
// tries an alternative.
package litkit

import (
	"strings"
	"unicode/utf8"
)

// Cursor is an immutable view over the remaining input.
// It wraps the full source string and a byte offset into it, so deriving a
// new cursor is a copy of two words; nothing is ever mutated in place.
type Cursor struct {
	src string
	off int
}

// NewCursor returns a cursor positioned at the start of src.
// The source must be valid UTF-8.
func NewCursor(src string) Cursor { return Cursor{src: src} }

// Rest returns the input remaining after the cursor position.
func (c Cursor) Rest() string { return c.src[c.off:] }

// Len returns the number of bytes remaining.
// Comparing the lengths of two cursors over the same source detects a
// zero-progress parse, which iterative constructs use to avoid looping.
func (c Cursor) Len() int { return len(c.src) - c.off }

// Empty reports whether the cursor is at end-of-input.
func (c Cursor) Empty() bool { return c.off == len(c.src) }

// Offset returns the byte offset from the start of the source.
func (c Cursor) Offset() int { return c.off }

// Advance returns a cursor n bytes further into the input.
// n must not exceed [Cursor.Len], and for text decoding the new position
// must fall on a rune boundary; byte-literal decoding may cut anywhere.
func (c Cursor) Advance(n int) Cursor { return Cursor{src: c.src, off: c.off + n} }

// StartsWith reports whether the remaining input begins with pattern.
func (c Cursor) StartsWith(pattern string) bool { return strings.HasPrefix(c.Rest(), pattern) }

// Until returns the next n bytes of remaining input without consuming them.
func (c Cursor) Until(n int) string { return c.src[c.off : c.off+n] }

// Finish returns an empty cursor positioned at end-of-input.
func (c Cursor) Finish() Cursor { return Cursor{src: c.src, off: len(c.src)} }

// Peek returns the next rune without consuming it,
// or utf8.RuneError at end-of-input.
func (c Cursor) Peek() rune {
	if c.Empty() {
		return utf8.RuneError
	}
	r, _ := utf8.DecodeRuneInString(c.Rest())
	return r
}
