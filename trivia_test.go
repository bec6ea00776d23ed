package litkit

import "testing"

func TestTrivia(t *testing.T) {
	cases := []struct {
		input string
		rest  string
		ok    bool
	}{
		{"  a", "a", true},
		{"\t\v\f\r\n x", "x", true},
		{" ‎‏　x", "x", true},
		{"// line comment\nnext", "next", true},
		{"// to end of input", "", true},
		{"////x\ny", "y", true},
		{"//// to end of input", "", true},
		{"/* block */b", "b", true},
		{"/* /* nested */ */b", "b", true},
		{"/* */ */", "*/", true},
		{"/* */", "", true},
		{"/***x*/y", "y", true},
		{" \n// mixed\n/* runs */\tz", "z", true},
		// doc comments are token boundaries, not trivia
		{"///x", "", false},
		{"//!x", "", false},
		{"/**x*/y", "", false},
		{"/*!x*/y", "", false},
		// invalid cases
		{"/* unterminated", "", false},
		{"/*/", "", false},
		{"", "", false},
		{"a", "", false},
		{"+ b", "", false},
	}

	for _, c := range cases {
		rest, ok := Trivia(NewCursor(c.input))
		if ok != c.ok || (ok && rest.Rest() != c.rest) {
			t.Errorf("Trivia(%q): want (%q, %v), got (%q, %v)",
				c.input, c.rest, c.ok, rest.Rest(), ok)
		}
		if !ok && rest != NewCursor(c.input) {
			t.Errorf("Trivia(%q): cursor moved on failure", c.input)
		}
	}
}

// Re-skipping past all trivia must fail rather than loop.
func TestTriviaIdempotent(t *testing.T) {
	rest, ok := Trivia(NewCursor("  /* lead */ token"))
	if !ok || rest.Rest() != "token" {
		t.Fatalf("first skip: got (%q, %v)", rest.Rest(), ok)
	}
	if again, ok := Trivia(rest); ok || again != rest {
		t.Errorf("second skip: want unchanged failure, got (%q, %v)", again.Rest(), ok)
	}
}

func TestSkipTrivia(t *testing.T) {
	if got := SkipTrivia(NewCursor("abc")); got.Rest() != "abc" {
		t.Errorf("SkipTrivia(abc): want no-op, got %q", got.Rest())
	}
	if got := SkipTrivia(NewCursor("  abc")); got.Rest() != "abc" {
		t.Errorf("SkipTrivia(  abc): want %q, got %q", "abc", got.Rest())
	}
}

func TestBlockComment(t *testing.T) {
	cases := []struct {
		input string
		len   int
		ok    bool
	}{
		{"/**/", 4, true},
		{"/* a */ tail", 7, true},
		{"/* /* */ */", 11, true},
		{"/*/**/*/", 8, true},
		{"/*/", 0, false},
		{"/*", 0, false},
		{"x", 0, false},
	}

	for _, c := range cases {
		n, ok := blockComment(c.input)
		if ok != c.ok || n != c.len {
			t.Errorf("blockComment(%q): want (%d, %v), got (%d, %v)", c.input, c.len, c.ok, n, ok)
		}
	}
}

func TestWordBreak(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{" x", true},
		{"+", true},
		{"(", true},
		{"a", false},
		{"Z", false},
		{"7", false},
		{"_", false},
		{"é", false},
	}

	for _, c := range cases {
		if got := WordBreak(NewCursor(c.input)); got != c.want {
			t.Errorf("WordBreak(%q): want %v, got %v", c.input, c.want, got)
		}
	}
}
