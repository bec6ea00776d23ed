package litkit_test

import (
	"fmt"

	"github.com/TroutSoftware/litkit"
)

func Example() {
	const input = `colors = [
		"red", // primary
		"green\n",
		/* legacy name */ "ultra\u{76}iolet",
	]`

	colors, ok := parseColors(input)
	if !ok {
		fmt.Println("cannot parse color list")
		return
	}

	fmt.Printf("%q\n", colors)
	// Output: ["red" "green\n" "ultraviolet"]
}

func parseColors(src string) ([]string, bool) {
	str := func(c litkit.Cursor) (string, litkit.Cursor, bool) {
		c = litkit.SkipTrivia(c)
		if !c.StartsWith(`"`) {
			return "", c, false
		}
		return litkit.DecodeText(c.Advance(1))
	}

	c := litkit.NewCursor(src)
	var ok bool
	if _, c, ok = litkit.Keyword(c, "colors"); !ok {
		return nil, false
	}
	if _, c, ok = litkit.Punct(c, "="); !ok {
		return nil, false
	}
	if _, c, ok = litkit.Punct(c, "["); !ok {
		return nil, false
	}
	colors, c, ok := litkit.SeparatedList(c, ",", str, true)
	if !ok {
		return nil, false
	}
	if _, _, ok = litkit.Punct(c, "]"); !ok {
		return nil, false
	}
	return colors, true
}
