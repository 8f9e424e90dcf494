package repl

import "regexp"

// tokenPattern matches a double-quoted span, a single-quoted span or a run of
// non-whitespace, preferring them in that order at each position. An
// unterminated quote cannot close a span, so it ends up inside a plain word.
var tokenPattern = regexp.MustCompile(`"([^"]*)"|'([^']*)'|(\S+)`)

// Tokenize splits a command line into tokens, stripping surrounding quotes.
func Tokenize(line string) []string {
	matches := tokenPattern.FindAllStringSubmatch(line, -1)
	tokens := make([]string, 0, len(matches))
	for _, m := range matches {
		switch {
		case m[1] != "":
			tokens = append(tokens, m[1])
		case m[2] != "":
			tokens = append(tokens, m[2])
		default:
			tokens = append(tokens, m[3])
		}
	}
	return tokens
}
