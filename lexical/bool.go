package lexical

import "strings"

// ParseBool parses xsd:boolean: "true", "false" (any case), "1" or "0"
func ParseBool(s string) (bool, error) {
	text := Trim(s)
	switch {
	case text == "1", strings.EqualFold(text, "true"):
		return true, nil
	case text == "0", strings.EqualFold(text, "false"):
		return false, nil
	}
	return false, syntaxError("bool", s)
}
