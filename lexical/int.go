package lexical

import (
	"errors"
	"strconv"
	"strings"
)

// ParseInt parses a signed decimal integer literal that fits into bitSize bits
func ParseInt(s string, bitSize int) (int64, error) {
	text := Trim(s)
	value, err := strconv.ParseInt(text, 10, bitSize)
	if err != nil {
		return 0, numError(intKind(bitSize), s, err)
	}
	return value, nil
}

// ParseUint parses an unsigned decimal integer literal that fits into bitSize bits.
// A leading '+' is accepted, a leading '-' only for zero.
func ParseUint(s string, bitSize int) (uint64, error) {
	text := Trim(s)
	kind := uintKind(bitSize)
	if strings.HasPrefix(text, "-") {
		if isZero(text[1:]) {
			return 0, nil
		}
		if _, err := strconv.ParseUint(text[1:], 10, 64); err == nil || errors.Is(err, strconv.ErrRange) {
			return 0, rangeError(kind, s)
		}
		return 0, syntaxError(kind, s)
	}
	text = strings.TrimPrefix(text, "+")
	value, err := strconv.ParseUint(text, 10, bitSize)
	if err != nil {
		return 0, numError(kind, s, err)
	}
	return value, nil
}

// ParseInt16 parses xsd:short
func ParseInt16(s string) (int16, error) {
	v, err := ParseInt(s, 16)
	return int16(v), err
}

// ParseInt32 parses xsd:int
func ParseInt32(s string) (int32, error) {
	v, err := ParseInt(s, 32)
	return int32(v), err
}

// ParseInt64 parses xsd:long
func ParseInt64(s string) (int64, error) {
	return ParseInt(s, 64)
}

// ParseIntSize parses a platform sized int
func ParseIntSize(s string) (int, error) {
	v, err := ParseInt(s, strconv.IntSize)
	return int(v), err
}

// ParseSByte parses xsd:byte, a signed 8 bit integer
func ParseSByte(s string) (int8, error) {
	v, err := ParseInt(s, 8)
	return int8(v), err
}

// ParseByte parses xsd:unsignedByte
func ParseByte(s string) (uint8, error) {
	v, err := ParseUint(s, 8)
	return uint8(v), err
}

// ParseUint16 parses xsd:unsignedShort
func ParseUint16(s string) (uint16, error) {
	v, err := ParseUint(s, 16)
	return uint16(v), err
}

// ParseUint32 parses xsd:unsignedInt
func ParseUint32(s string) (uint32, error) {
	v, err := ParseUint(s, 32)
	return uint32(v), err
}

// ParseUint64 parses xsd:unsignedLong
func ParseUint64(s string) (uint64, error) {
	return ParseUint(s, 64)
}

func numError(kind, s string, err error) error {
	if errors.Is(err, strconv.ErrRange) {
		return rangeError(kind, s)
	}
	return syntaxError(kind, s)
}

func isZero(digits string) bool {
	if digits == "" {
		return false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] != '0' {
			return false
		}
	}
	return true
}

func intKind(bitSize int) string {
	switch bitSize {
	case 8:
		return "sbyte"
	case 16:
		return "int16"
	case 32:
		return "int32"
	}
	return "int64"
}

func uintKind(bitSize int) string {
	switch bitSize {
	case 8:
		return "byte"
	case 16:
		return "uint16"
	case 32:
		return "uint32"
	}
	return "uint64"
}
