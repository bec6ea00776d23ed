package litkit

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// DecodeText decodes the body of a text literal up to and past the closing
// `"`. Recognized escapes are \n \r \t \\ \0 \' \" \xHH (first digit 0-7,
// so the value stays a 7-bit scalar) and \u{1-6 hex digits}. A backslash
// followed by a line ending is a line continuation: the line ending and all
// following whitespace are skipped. CRLF pairs normalize to a single LF; a
// lone CR fails. Any other escape, malformed hex, or missing delimiter
// fails the whole decode.
func DecodeText(c Cursor) (string, Cursor, bool) {
	var b strings.Builder
	s := c.Rest()
	i := 0
	for i < len(s) {
		r, sz := utf8.DecodeRuneInString(s[i:])
		switch r {
		case '"':
			return b.String(), c.Advance(i + 1), true
		case '\r':
			if i+1 >= len(s) || s[i+1] != '\n' {
				return "", c, false
			}
			b.WriteByte('\n')
			i += 2
		case '\\':
			i++
			if i >= len(s) {
				return "", c, false
			}
			switch s[i] {
			case 'x':
				v, n, ok := backslashXChar(s[i+1:])
				if !ok {
					return "", c, false
				}
				b.WriteRune(v)
				i += 1 + n
			case 'u':
				v, n, ok := backslashU(s[i+1:])
				if !ok {
					return "", c, false
				}
				b.WriteRune(v)
				i += 1 + n
			case 'n':
				b.WriteByte('\n')
				i++
			case 'r':
				b.WriteByte('\r')
				i++
			case 't':
				b.WriteByte('\t')
				i++
			case '\\':
				b.WriteByte('\\')
				i++
			case '0':
				b.WriteByte(0)
				i++
			case '\'':
				b.WriteByte('\'')
				i++
			case '"':
				b.WriteByte('"')
				i++
			case '\n', '\r':
				i++
				i += leadingSpace(s[i:])
			default:
				return "", c, false
			}
		default:
			b.WriteRune(r)
			i += sz
		}
	}
	return "", c, false
}

// leadingSpace returns the length of the whitespace prefix of s.
// Used by the line-continuation escape to trim the next line's indent.
func leadingSpace(s string) int {
	i := 0
	for i < len(s) {
		r, sz := utf8.DecodeRuneInString(s[i:])
		if !unicode.IsSpace(r) {
			break
		}
		i += sz
	}
	return i
}

// DecodeByteText decodes the body of a byte-string literal up to and past
// the closing `"`. The escape set matches [DecodeText] except that \u is
// not recognized and \xHH covers the full 00-FF range. Unescaped bytes
// must stay below 0x80.
func DecodeByteText(c Cursor) ([]byte, Cursor, bool) {
	var out []byte
	s := c.Rest()
	i := 0
	for i < len(s) {
		switch b := s[i]; {
		case b == '"':
			return out, c.Advance(i + 1), true
		case b == '\r':
			if i+1 >= len(s) || s[i+1] != '\n' {
				return nil, c, false
			}
			out = append(out, '\n')
			i += 2
		case b == '\\':
			i++
			if i >= len(s) {
				return nil, c, false
			}
			switch s[i] {
			case 'x':
				v, n, ok := backslashXByte(s[i+1:])
				if !ok {
					return nil, c, false
				}
				out = append(out, v)
				i += 1 + n
			case 'n':
				out = append(out, '\n')
				i++
			case 'r':
				out = append(out, '\r')
				i++
			case 't':
				out = append(out, '\t')
				i++
			case '\\':
				out = append(out, '\\')
				i++
			case '0':
				out = append(out, 0)
				i++
			case '\'':
				out = append(out, '\'')
				i++
			case '"':
				out = append(out, '"')
				i++
			case '\n', '\r':
				i++
				i += leadingSpace(s[i:])
			default:
				return nil, c, false
			}
		case b < 0x80:
			out = append(out, b)
			i++
		default:
			return nil, c, false
		}
	}
	return nil, c, false
}

// DecodeChar decodes the body of a character literal: exactly one scalar
// value, escaped or verbatim. The position after the value must be the
// closing `'` (consumed) or end-of-input; anything else fails.
func DecodeChar(c Cursor) (rune, Cursor, bool) {
	s := c.Rest()
	if len(s) == 0 {
		return 0, c, false
	}
	var ch rune
	var i int
	if s[0] == '\\' {
		if len(s) < 2 {
			return 0, c, false
		}
		i = 2
		switch s[1] {
		case 'x':
			v, n, ok := backslashXChar(s[2:])
			if !ok {
				return 0, c, false
			}
			ch, i = v, i+n
		case 'u':
			v, n, ok := backslashU(s[2:])
			if !ok {
				return 0, c, false
			}
			ch, i = v, i+n
		case 'n':
			ch = '\n'
		case 'r':
			ch = '\r'
		case 't':
			ch = '\t'
		case '\\':
			ch = '\\'
		case '0':
			ch = 0
		case '\'':
			ch = '\''
		case '"':
			ch = '"'
		default:
			return 0, c, false
		}
	} else {
		r, sz := utf8.DecodeRuneInString(s)
		ch, i = r, sz
	}
	switch {
	case i == len(s):
		return ch, c.Finish(), true
	case s[i] == '\'':
		return ch, c.Advance(i + 1), true
	}
	return 0, c, false
}

// DecodeByte decodes the body of a byte literal: exactly one byte value,
// with the same closing-delimiter discipline as [DecodeChar].
func DecodeByte(c Cursor) (byte, Cursor, bool) {
	s := c.Rest()
	if len(s) == 0 {
		return 0, c, false
	}
	var v byte
	var i int
	if s[0] == '\\' {
		if len(s) < 2 {
			return 0, c, false
		}
		i = 2
		switch s[1] {
		case 'x':
			b, n, ok := backslashXByte(s[2:])
			if !ok {
				return 0, c, false
			}
			v, i = b, i+n
		case 'n':
			v = '\n'
		case 'r':
			v = '\r'
		case 't':
			v = '\t'
		case '\\':
			v = '\\'
		case '0':
			v = 0
		case '\'':
			v = '\''
		case '"':
			v = '"'
		default:
			return 0, c, false
		}
	} else {
		v, i = s[0], 1
	}
	switch {
	case i == len(s):
		return v, c.Finish(), true
	case s[i] == '\'':
		return v, c.Advance(i + 1), true
	}
	return 0, c, false
}

// DecodeRawText scans a raw string literal: a run of n `#` markers, an
// opening `"`, verbatim content, then the first `"` followed by exactly n
// `#` markers. No escapes are processed; bare carriage returns in the
// content are dropped. Returns the content and the marker count n so the
// caller can correlate delimiters.
func DecodeRawText(c Cursor) (string, int, Cursor, bool) {
	s := c.Rest()
	n := -1
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '"':
			n = i
		case '#':
			continue
		default:
			return "", 0, c, false
		}
		break
	}
	if n < 0 {
		return "", 0, c, false
	}
	marks := s[:n]

	var b strings.Builder
	i := n + 1
	for i < len(s) {
		r, sz := utf8.DecodeRuneInString(s[i:])
		switch {
		case r == '"' && strings.HasPrefix(s[i+1:], marks):
			return b.String(), n, c.Advance(i + 1 + n), true
		case r == '\r':
			// dropped, not copied
		default:
			b.WriteRune(r)
		}
		i += sz
	}
	return "", 0, c, false
}

// backslashXChar reads the two hex digits of a \x escape in a text or
// character literal. The first digit is restricted to 0-7 so the decoded
// value is a valid 7-bit scalar.
func backslashXChar(s string) (rune, int, bool) {
	if len(s) < 2 || s[0] < '0' || s[0] > '7' || !isHexDigit(s[1]) {
		return 0, 0, false
	}
	return rune(hexVal(s[0])<<4 | hexVal(s[1])), 2, true
}

// backslashXByte reads the two hex digits of a \x escape in a byte or
// byte-string literal, covering the full 00-FF range.
func backslashXByte(s string) (byte, int, bool) {
	if len(s) < 2 || !isHexDigit(s[0]) || !isHexDigit(s[1]) {
		return 0, 0, false
	}
	return hexVal(s[0])<<4 | hexVal(s[1]), 2, true
}

// backslashU reads the brace-delimited payload of a \u escape: one to six
// hex digits between `{` and `}`. Values in the surrogate range or above
// the last code point are rejected.
func backslashU(s string) (rune, int, bool) {
	if len(s) == 0 || s[0] != '{' {
		return 0, 0, false
	}
	v := 0
	i := 1
	for ; i < len(s) && isHexDigit(s[i]); i++ {
		if i > 6 { // a 7th digit
			return 0, 0, false
		}
		v = v<<4 | int(hexVal(s[i]))
	}
	if i == 1 || i == len(s) || s[i] != '}' {
		return 0, 0, false
	}
	if v > unicode.MaxRune || (v >= 0xD800 && v < 0xE000) {
		return 0, 0, false
	}
	return rune(v), i + 1, true
}

func isHexDigit(b byte) bool {
	return '0' <= b && b <= '9' || 'a' <= b && b <= 'f' || 'A' <= b && b <= 'F'
}

func hexVal(b byte) byte {
	switch {
	case b >= 'a':
		return b - 'a' + 10
	case b >= 'A':
		return b - 'A' + 10
	}
	return b - '0'
}
