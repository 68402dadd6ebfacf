package lexical

import (
	"math"
	"strconv"
)

// ParseFloat parses xsd:float (bitSize 32) or xsd:double (bitSize 64).
// Special values are spelled INF, -INF and NaN; overflow is reported as ErrRange.
func ParseFloat(s string, bitSize int) (float64, error) {
	kind := "float64"
	if bitSize == 32 {
		kind = "float32"
	}
	text := Trim(s)
	switch text {
	case "INF":
		return math.Inf(1), nil
	case "-INF":
		return math.Inf(-1), nil
	case "NaN":
		return math.NaN(), nil
	}
	if !isNumberLiteral(text, true) {
		return 0, syntaxError(kind, s)
	}
	value, err := strconv.ParseFloat(text, bitSize)
	if err != nil {
		return 0, numError(kind, s, err)
	}
	return value, nil
}

// ParseFloat32 parses xsd:float
func ParseFloat32(s string) (float32, error) {
	v, err := ParseFloat(s, 32)
	return float32(v), err
}

// ParseFloat64 parses xsd:double
func ParseFloat64(s string) (float64, error) {
	return ParseFloat(s, 64)
}
