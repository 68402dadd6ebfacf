package lexical

import (
	"errors"
	"fmt"
	"strings"
)

const whitespace = " \t\r\n"

var (
	//ErrSyntax reports a literal outside the lexical space of a kind
	ErrSyntax = errors.New("invalid syntax")
	//ErrRange reports a well formed literal outside the value space of a kind
	ErrRange = errors.New("value out of range")
)

// Trim removes leading and trailing XML whitespace
func Trim(s string) string {
	return strings.Trim(s, whitespace)
}

func syntaxError(kind, s string) error {
	return fmt.Errorf("%s: %q: %w", kind, s, ErrSyntax)
}

func rangeError(kind, s string) error {
	return fmt.Errorf("%s: %q: %w", kind, s, ErrRange)
}

func isDigit(b byte) bool {
	return '0' <= b && b <= '9'
}

// isNumberLiteral checks [+-]? digits with an optional fraction and, if allowed, an exponent
func isNumberLiteral(s string, allowExponent bool) bool {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for ; i < len(s) && isDigit(s[i]); i++ {
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for ; i < len(s) && isDigit(s[i]); i++ {
			digits++
		}
	}
	if digits == 0 {
		return false
	}
	if i == len(s) {
		return true
	}
	if !allowExponent || (s[i] != 'e' && s[i] != 'E') {
		return false
	}
	i++
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	exponent := 0
	for ; i < len(s) && isDigit(s[i]); i++ {
		exponent++
	}
	return exponent > 0 && i == len(s)
}
