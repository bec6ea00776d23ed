package litkit

// ParseFunc is the uniform shape shared by every parser in this package:
// given a cursor, return the parsed value, the cursor past the consumed
// input, and whether the parse succeeded.
type ParseFunc[T any] func(Cursor) (T, Cursor, bool)

// Punct matches a punctuation token such as "+" or "+=", skipping any
// leading trivia first.
func Punct(c Cursor, token string) (string, Cursor, bool) {
	c = SkipTrivia(c)
	if c.StartsWith(token) {
		return token, c.Advance(len(token)), true
	}
	return "", c, false
}

// Keyword matches a keyword such as "fn" or "struct". Unlike [Punct] it
// requires a word break after the match, so "fn" is not recognized at the
// start of "fnord".
func Keyword(c Cursor, token string) (string, Cursor, bool) {
	tok, rest, ok := Punct(c, token)
	if !ok || !WordBreak(rest) {
		return "", c, false
	}
	return tok, rest, true
}

// Maybe turns a failed parse into a successful zero-consumption one.
// matched reports whether f itself succeeded.
func Maybe[T any](c Cursor, f ParseFunc[T]) (v T, rest Cursor, matched bool) {
	if v, rest, ok := f(c); ok {
		return v, rest, true
	}
	return v, c, false
}

// SeparatedList parses zero or more values recognized by f and separated
// by the punctuation sep. When terminated is true a trailing separator is
// consumed as well. A parser that succeeds without consuming input ends
// the list rather than looping.
func SeparatedList[T any](c Cursor, sep string, f ParseFunc[T], terminated bool) ([]T, Cursor, bool) {
	var res []T

	v, rest, ok := f(c)
	if !ok {
		return nil, c, true
	}
	if rest.Len() == c.Len() {
		return nil, c, false
	}
	res = append(res, v)
	c = rest

	for {
		_, afterSep, ok := Punct(c, sep)
		if !ok || afterSep.Len() == c.Len() {
			break
		}
		v, rest, ok := f(afterSep)
		if !ok || rest.Len() == afterSep.Len() {
			break
		}
		res = append(res, v)
		c = rest
	}
	if terminated {
		if _, after, ok := Punct(c, sep); ok {
			c = after
		}
	}
	return res, c, true
}
