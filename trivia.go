package litkit

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Trivia consumes the longest prefix of interleaved whitespace and plain
// comments, returning the cursor just past it. Doc comments (`///` with
// exactly three slashes, `//!`, `/**` with exactly two stars, `/*!`) are
// significant tokens and stop the scan. Block comments nest; an
// unterminated block comment fails the whole call, as does consuming
// nothing at all.
func Trivia(c Cursor) (Cursor, bool) {
	if c.Empty() {
		return c, false
	}
	s := c.Rest()
	i := 0
	for i < len(s) {
		if s[i] == '/' {
			t := s[i:]
			if strings.HasPrefix(t, "//") &&
				(!strings.HasPrefix(t, "///") || strings.HasPrefix(t, "////")) &&
				!strings.HasPrefix(t, "//!") {
				end := strings.IndexByte(t, '\n')
				if end < 0 {
					// comment runs to end-of-input
					return c.Finish(), true
				}
				i += end + 1
				continue
			} else if strings.HasPrefix(t, "/*") &&
				(!strings.HasPrefix(t, "/**") || strings.HasPrefix(t, "/***")) &&
				!strings.HasPrefix(t, "/*!") {
				end, ok := blockComment(t)
				if !ok {
					return c, false
				}
				i += end
				continue
			}
		}
		switch b := s[i]; {
		case b == ' ' || 0x09 <= b && b <= 0x0d:
			i++
			continue
		case b < 0x80:
			// ASCII non-space, stop here
		default:
			r, sz := utf8.DecodeRuneInString(s[i:])
			if isTriviaSpace(r) {
				i += sz
				continue
			}
		}
		if i > 0 {
			return c.Advance(i), true
		}
		return c, false
	}
	return c.Finish(), true
}

// SkipTrivia is the non-failing form of [Trivia]: when there is nothing to
// skip it returns the cursor unchanged.
func SkipTrivia(c Cursor) Cursor {
	if rest, ok := Trivia(c); ok {
		return rest
	}
	return c
}

// blockComment scans a `/*` comment with a depth counter so comments may
// nest to any depth, and returns the total length through the matching
// `*/`. The scan is iterative; depth never recurses onto the stack.
func blockComment(s string) (int, bool) {
	if !strings.HasPrefix(s, "/*") {
		return 0, false
	}
	depth := 0
	for i := 0; i+1 < len(s); i++ {
		if s[i] == '/' && s[i+1] == '*' {
			depth++
			i++ // eat '*'
		} else if s[i] == '*' && s[i+1] == '/' {
			depth--
			if depth == 0 {
				return i + 2, true
			}
			i++ // eat '/'
		}
	}
	return 0, false
}

// WordBreak reports whether the cursor position terminates an
// identifier-like token: end-of-input, or a next rune that cannot continue
// an identifier. Keyword matching uses it to reject a keyword that is a
// prefix of a longer identifier.
func WordBreak(c Cursor) bool {
	if c.Empty() {
		return true
	}
	r, _ := utf8.DecodeRuneInString(c.Rest())
	return !(r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r))
}

// The language treats left-to-right mark and right-to-left mark as
// whitespace on top of the Unicode White_Space property.
func isTriviaSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '‎' || r == '‏'
}
