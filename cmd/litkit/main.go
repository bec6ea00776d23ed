package main

import (
	"fmt"
	"log"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/TroutSoftware/litkit"
	"github.com/spf13/cobra"
)

func main() {
	var cmdRoot = &cobra.Command{
		Use:   "litkit",
		Short: "literal decoding and trivia tools",
		Long:  `Decode escaped literal tokens and strip comments from source text`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logWithTimestamp, _ := cmd.Flags().GetBool("log-with-timestamp")
			logFlags := log.Lshortfile
			if logWithTimestamp {
				logFlags |= log.Ltime
			}
			log.SetFlags(logFlags)

			if showVersion, _ := cmd.Flags().GetBool("show-version"); showVersion {
				fmt.Printf("litkit: version %q\n", litkit.Version().Core())
			}
			return nil
		},
	}
	cmdRoot.PersistentFlags().Bool("log-with-timestamp", false, "log with timestamp")
	cmdRoot.PersistentFlags().Bool("show-version", false, "show version")
	cmdRoot.AddCommand(cmdUnquote())
	cmdRoot.AddCommand(cmdStrip())
	cmdRoot.AddCommand(cmdVersion())

	if err := cmdRoot.Execute(); err != nil {
		os.Exit(1)
	}
}

func cmdUnquote() *cobra.Command {
	return &cobra.Command{
		Use:   "unquote [literal]",
		Short: "decode a literal token and print its value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, bytes, rest, ok := decodeLiteral(litkit.NewCursor(args[0]))
			if !ok {
				return fmt.Errorf("unquote: cannot decode %q", args[0])
			}
			if !rest.Empty() {
				return fmt.Errorf("unquote: trailing input %q", rest.Rest())
			}
			if bytes != nil {
				fmt.Printf("% x\n", bytes)
				return nil
			}
			fmt.Println(value)
			return nil
		},
	}
}

func cmdStrip() *cobra.Command {
	return &cobra.Command{
		Use:   "strip [file]",
		Short: "rewrite source with comments and whitespace runs collapsed",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(args)
			if err != nil {
				return err
			}
			fmt.Print(strip(string(input)))
			return nil
		},
	}
}

func cmdVersion() *cobra.Command {
	showBuildInfo := false
	var cmd = &cobra.Command{
		Use:   "version",
		Short: "display the application's version number",
		RunE: func(cmd *cobra.Command, args []string) error {
			if showBuildInfo {
				fmt.Println(litkit.Version().String())
				return nil
			}
			fmt.Println(litkit.Version().Core())
			return nil
		},
	}
	cmd.Flags().BoolVar(&showBuildInfo, "build-info", showBuildInfo, "show build information")
	return cmd
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 0 {
		return os.ReadFile("/dev/stdin")
	}
	return os.ReadFile(args[0])
}

// decodeLiteral dispatches on the opening delimiter of a full literal
// token, the way the surrounding tokenizer does. Character and text
// values come back in value; byte and byte-string values in bytes.
func decodeLiteral(c litkit.Cursor) (value string, bytes []byte, rest litkit.Cursor, ok bool) {
	switch {
	case c.StartsWith(`"`):
		v, rest, ok := litkit.DecodeText(c.Advance(1))
		return v, nil, rest, ok
	case c.StartsWith(`b"`):
		v, rest, ok := litkit.DecodeByteText(c.Advance(2))
		return "", v, rest, ok
	case c.StartsWith("'"):
		v, rest, ok := litkit.DecodeChar(c.Advance(1))
		return string(v), nil, rest, ok
	case c.StartsWith("b'"):
		v, rest, ok := litkit.DecodeByte(c.Advance(2))
		return "", []byte{v}, rest, ok
	case c.StartsWith("r#"), c.StartsWith(`r"`):
		v, _, rest, ok := litkit.DecodeRawText(c.Advance(1))
		return v, nil, rest, ok
	}
	return "", nil, c, false
}

// strip collapses every trivia run to a single space, copying literal
// lexemes wholesale so that comment-like content inside a string survives.
func strip(src string) string {
	var out strings.Builder
	c := litkit.NewCursor(src)
	for !c.Empty() {
		if rest, ok := litkit.Trivia(c); ok {
			out.WriteByte(' ')
			c = rest
			continue
		}
		if rest, ok := copyLiteral(&out, c); ok {
			c = rest
			continue
		}
		// Trivia stops at doc comments, so anything comment-shaped here
		// is documentation: copy it through wholesale.
		if c.StartsWith("//") || c.StartsWith("/*") {
			if rest, ok := copyDoc(&out, c); ok {
				c = rest
				continue
			}
		}
		_, sz := utf8.DecodeRuneInString(c.Rest())
		out.WriteString(c.Until(sz))
		c = c.Advance(sz)
	}
	return out.String()
}

// copyLiteral copies the raw lexeme of a literal starting at c, using
// cursor length arithmetic to recover the consumed span.
func copyLiteral(out *strings.Builder, c litkit.Cursor) (litkit.Cursor, bool) {
	var rest litkit.Cursor
	var ok bool
	switch {
	case c.StartsWith(`"`):
		_, rest, ok = litkit.DecodeText(c.Advance(1))
	case c.StartsWith(`b"`):
		_, rest, ok = litkit.DecodeByteText(c.Advance(2))
	case c.StartsWith("'"):
		_, rest, ok = litkit.DecodeChar(c.Advance(1))
	case c.StartsWith("b'"):
		_, rest, ok = litkit.DecodeByte(c.Advance(2))
	case c.StartsWith("r#"), c.StartsWith(`r"`):
		_, _, rest, ok = litkit.DecodeRawText(c.Advance(1))
	default:
		return c, false
	}
	if !ok {
		return c, false
	}
	out.WriteString(c.Until(c.Len() - rest.Len()))
	return rest, true
}

// copyDoc copies a doc comment starting at c: a `//` form through its line
// ending, or a `/*` form through its matching close, counting nesting.
func copyDoc(out *strings.Builder, c litkit.Cursor) (litkit.Cursor, bool) {
	s := c.Rest()
	if strings.HasPrefix(s, "//") {
		n := strings.IndexByte(s, '\n')
		if n < 0 {
			n = len(s)
		} else {
			n++
		}
		out.WriteString(c.Until(n))
		return c.Advance(n), true
	}
	depth := 0
	for i := 0; i+1 < len(s); i++ {
		if s[i] == '/' && s[i+1] == '*' {
			depth++
			i++
		} else if s[i] == '*' && s[i+1] == '/' {
			depth--
			i++
			if depth == 0 {
				out.WriteString(c.Until(i + 1))
				return c.Advance(i + 1), true
			}
		}
	}
	return c, false
}
