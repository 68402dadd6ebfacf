package xconv

import (
	"fmt"
	"strconv"

	"github.com/viant/xconv/lexical"
	"golang.org/x/exp/constraints"
)

// EnumMember represents a declared enumeration constant
type EnumMember[E constraints.Integer] struct {
	Name  string
	Value E
}

// Member declares an enumeration constant
func Member[E constraints.Integer](name string, value E) EnumMember[E] {
	return EnumMember[E]{Name: name, Value: value}
}

// Enum is the kind of an integer based enumeration with a fixed set of declared members.
// Text converts by member name (case sensitive) or by the decimal value of a declared member;
// any other value, including a valid integer that is not declared, is rejected.
type Enum[E constraints.Integer] struct {
	name    string
	members []EnumMember[E]
	byName  map[string]E
	byValue map[E]string
}

// NewEnum creates an enumeration kind; for duplicated names or values the first declaration wins
func NewEnum[E constraints.Integer](members ...EnumMember[E]) *Enum[E] {
	var zero E
	ret := &Enum[E]{
		name:    fmt.Sprintf("%T", zero),
		members: make([]EnumMember[E], 0, len(members)),
		byName:  make(map[string]E, len(members)),
		byValue: make(map[E]string, len(members)),
	}
	for _, member := range members {
		if _, ok := ret.byName[member.Name]; ok {
			continue
		}
		ret.members = append(ret.members, member)
		ret.byName[member.Name] = member.Value
		if _, ok := ret.byValue[member.Value]; !ok {
			ret.byValue[member.Value] = member.Name
		}
	}
	return ret
}

// EnumOf creates an enumeration kind naming members with their String method
func EnumOf[E interface {
	constraints.Integer
	fmt.Stringer
}](values ...E) *Enum[E] {
	members := make([]EnumMember[E], 0, len(values))
	for _, value := range values {
		members = append(members, Member(value.String(), value))
	}
	return NewEnum(members...)
}

// Name returns enumeration type name
func (e *Enum[E]) Name() string {
	if e == nil {
		return ""
	}
	return e.name
}

// Parse resolves text to a declared member
func (e *Enum[E]) Parse(text string) (E, error) {
	var zero E
	if e == nil {
		return zero, unsupportedType(fmt.Sprintf("%T", zero))
	}
	name := lexical.Trim(text)
	if name == "" {
		return zero, invalidEnumValue(e.name, text)
	}
	if value, ok := e.byName[name]; ok {
		return value, nil
	}
	if value, ok := e.parseNumber(name); ok && e.IsDefined(value) {
		return value, nil
	}
	return zero, invalidEnumValue(e.name, text)
}

func (e *Enum[E]) parseNumber(text string) (E, bool) {
	if isSigned[E]() {
		n, err := lexical.ParseInt(text, 64)
		value := E(n)
		return value, err == nil && int64(value) == n
	}
	n, err := lexical.ParseUint(text, 64)
	value := E(n)
	return value, err == nil && uint64(value) == n
}

// IsDefined returns true if value is a declared member
func (e *Enum[E]) IsDefined(value E) bool {
	if e == nil {
		return false
	}
	_, ok := e.byValue[value]
	return ok
}

// Format returns the first declared name of value
func (e *Enum[E]) Format(value E) (string, bool) {
	if e == nil {
		return "", false
	}
	name, ok := e.byValue[value]
	return name, ok
}

// FormatValue returns the decimal representation of the member's underlying value
func (e *Enum[E]) FormatValue(value E) string {
	if isSigned[E]() {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatUint(uint64(value), 10)
}

// Members returns declared members in declaration order
func (e *Enum[E]) Members() []EnumMember[E] {
	if e == nil {
		return nil
	}
	return append([]EnumMember[E](nil), e.members...)
}

func (e *Enum[E]) kind() {}

func isSigned[E constraints.Integer]() bool {
	return ^E(0) < 0
}
