package litkit

import (
	"slices"
	"testing"
)

func TestPunct(t *testing.T) {
	cases := []struct {
		input string
		token string
		rest  string
		ok    bool
	}{
		{"+ x", "+", " x", true},
		{"  // lead\n+= y", "+=", " y", true},
		{"+", "+", "", true},
		{"- x", "+", "", false},
		{"", "+", "", false},
	}

	for _, c := range cases {
		_, rest, ok := Punct(NewCursor(c.input), c.token)
		if ok != c.ok || (ok && rest.Rest() != c.rest) {
			t.Errorf("Punct(%q, %q): want (%q, %v), got (%q, %v)",
				c.input, c.token, c.rest, c.ok, rest.Rest(), ok)
		}
	}
}

func TestKeyword(t *testing.T) {
	cases := []struct {
		input string
		token string
		ok    bool
	}{
		{"bang bang;", "bang", true},
		{"fn(", "fn", true},
		{"for", "for", true},
		// a keyword must not be the prefix of a longer identifier
		{"bangbang;", "bang", false},
		{"format", "for", false},
		{"for_", "for", false},
	}

	for _, c := range cases {
		_, _, ok := Keyword(NewCursor(c.input), c.token)
		if ok != c.ok {
			t.Errorf("Keyword(%q, %q): want %v, got %v", c.input, c.token, c.ok, ok)
		}
	}
}

func TestMaybe(t *testing.T) {
	ch := func(c Cursor) (rune, Cursor, bool) { return DecodeChar(c) }

	v, rest, matched := Maybe(NewCursor("a' tail"), ch)
	if !matched || v != 'a' || rest.Rest() != " tail" {
		t.Errorf("Maybe on match: got (%q, %q, %v)", v, rest.Rest(), matched)
	}

	_, rest, matched = Maybe(NewCursor("ab'"), ch)
	if matched || rest.Rest() != "ab'" {
		t.Errorf("Maybe on failure: got (%q, %v)", rest.Rest(), matched)
	}
}

func TestSeparatedList(t *testing.T) {
	str := func(c Cursor) (string, Cursor, bool) {
		c = SkipTrivia(c)
		if !c.StartsWith(`"`) {
			return "", c, false
		}
		return DecodeText(c.Advance(1))
	}

	cases := []struct {
		input      string
		terminated bool
		want       []string
		rest       string
	}{
		{`"a", "b", "c"`, false, []string{"a", "b", "c"}, ""},
		{`"a" rest`, false, []string{"a"}, " rest"},
		{`"a", "b",`, true, []string{"a", "b"}, ""},
		{`"a", "b",`, false, []string{"a", "b"}, ","},
		{`nothing`, false, nil, "nothing"},
		{``, false, nil, ""},
	}

	for _, c := range cases {
		got, rest, ok := SeparatedList(NewCursor(c.input), ",", str, c.terminated)
		if !ok || !slices.Equal(got, c.want) || rest.Rest() != c.rest {
			t.Errorf("SeparatedList(%q): want (%q, %q), got (%q, %q, %v)",
				c.input, c.want, c.rest, got, rest.Rest(), ok)
		}
	}
}
