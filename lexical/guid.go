package lexical

import (
	"github.com/google/uuid"
)

const hyphenatedGUIDLength = 36

// ParseGUID parses 32 hex digits in the 8-4-4-4-12 layout, optionally enclosed in braces
func ParseGUID(s string) (uuid.UUID, error) {
	text := Trim(s)
	if len(text) == hyphenatedGUIDLength+2 && text[0] == '{' && text[len(text)-1] == '}' {
		text = text[1 : len(text)-1]
	}
	if len(text) != hyphenatedGUIDLength {
		return uuid.Nil, syntaxError("guid", s)
	}
	for _, pos := range []int{8, 13, 18, 23} {
		if text[pos] != '-' {
			return uuid.Nil, syntaxError("guid", s)
		}
	}
	value, err := uuid.Parse(text)
	if err != nil {
		return uuid.Nil, syntaxError("guid", s)
	}
	return value, nil
}
