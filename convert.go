package xconv

import (
	"fmt"
	"reflect"
)

// Text represents conversion input, a nil *string is a null input
type Text interface {
	string | *string
}

func textOf[S Text](s S) (string, bool) {
	switch actual := any(s).(type) {
	case string:
		return actual, true
	case *string:
		if actual == nil {
			return "", false
		}
		return *actual, true
	}
	return "", false
}

// convert is the single conversion primitive behind To, TryTo, ToOrDefault and ToNullable
func convert[T any, S Text](kind Kind[T], s S) (T, error) {
	var zero T
	if kind == nil {
		return zero, unsupportedType(reflect.TypeOf((*T)(nil)).Elem().String())
	}
	text, ok := textOf(s)
	if !ok {
		return zero, nullInput(kind.Name())
	}
	return kind.Parse(text)
}

// To converts s to a value of the kind, failing with *Error
func To[T any, S Text](kind Kind[T], s S) (T, error) {
	return convert(kind, s)
}

// TryTo converts s to a value of the kind; on null, malformed or undeclared input it returns the
// zero value and false. A nil kind is a programming error and panics with the *Error.
func TryTo[T any, S Text](kind Kind[T], s S) (T, bool) {
	value, err := convert(kind, s)
	if err == nil {
		return value, true
	}
	if !IsData(err) {
		panic(err)
	}
	var zero T
	return zero, false
}

// ToOrDefault converts s to a value of the kind or returns defaultValue on null, malformed or
// undeclared input. For enumerations an undeclared defaultValue is rejected with KindInvalidEnumValue.
func ToOrDefault[T any, S Text](kind Kind[T], s S, defaultValue T) (T, error) {
	value, err := convert(kind, s)
	if err == nil {
		return value, nil
	}
	var zero T
	if !IsData(err) {
		return zero, err
	}
	if domain, ok := kind.(interface{ IsDefined(value T) bool }); ok && !domain.IsDefined(defaultValue) {
		return zero, &Error{Kind: KindInvalidEnumValue, Type: kind.Name(), Input: fmt.Sprint(defaultValue), Default: true}
	}
	return defaultValue, nil
}

// ToNullable converts s to a value of the kind or returns nil on null, malformed or undeclared input.
// A nil kind panics as in TryTo.
func ToNullable[T any, S Text](kind Kind[T], s S) *T {
	value, ok := TryTo(kind, s)
	if !ok {
		return nil
	}
	return &value
}
