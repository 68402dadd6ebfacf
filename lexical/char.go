package lexical

import "unicode/utf8"

// ParseChar parses a single character; the input is not trimmed
func ParseChar(s string) (rune, error) {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) || (r == utf8.RuneError && size == 1) {
		return 0, syntaxError("char", s)
	}
	return r, nil
}
