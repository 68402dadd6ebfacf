package xconv

import (
	"errors"
	"fmt"
)

// Sentinel errors matched by errors.Is against *Error.
var (
	ErrUnsupportedType  = errors.New("unsupported type")
	ErrNullInput        = errors.New("null input")
	ErrFormat           = errors.New("invalid format")
	ErrInvalidEnumValue = errors.New("invalid enum value")
)

// ErrorKind classifies conversion failures
type ErrorKind string

const (
	KindUnsupportedType  ErrorKind = "unsupported_type"
	KindNullInput        ErrorKind = "null_input"
	KindFormat           ErrorKind = "format"
	KindInvalidEnumValue ErrorKind = "invalid_enum_value"
)

// Error represents a failed conversion
type Error struct {
	Kind  ErrorKind
	Type  string //target kind or type name
	Input string
	//Default is set when a caller supplied default was rejected
	Default bool
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	var base string
	switch e.Kind {
	case KindUnsupportedType:
		base = fmt.Sprintf("type '%s' not supported", e.Type)
	case KindNullInput:
		base = fmt.Sprintf("cannot convert null to '%s'", e.Type)
	case KindInvalidEnumValue:
		if e.Default {
			base = fmt.Sprintf("default '%s' is not a constant of the enumeration '%s'", e.Input, e.Type)
		} else {
			base = fmt.Sprintf("the constant '%s' doesn't exist in the enumeration '%s'", e.Input, e.Type)
		}
	default:
		base = fmt.Sprintf("'%s' is not a valid %s value", e.Input, e.Type)
	}
	if e.Err != nil {
		base += ": " + e.Err.Error()
	}
	return base
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is matches the sentinel error of the error kind
func (e *Error) Is(target error) bool {
	if e == nil {
		return false
	}
	return kindSentinel(e.Kind) == target
}

// IsData returns true for failures caused by the input text rather than by the caller's setup:
// null input, malformed literal or undeclared enum input.
func (e *Error) IsData() bool {
	if e == nil || e.Default {
		return false
	}
	switch e.Kind {
	case KindNullInput, KindFormat, KindInvalidEnumValue:
		return true
	}
	return false
}

// IsKind reports whether err is an *Error of the supplied kind
func IsKind(err error, kind ErrorKind) bool {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind == kind
	}
	return false
}

// IsData reports whether err is a data failure, see Error.IsData
func IsData(err error) bool {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.IsData()
	}
	return false
}

func kindSentinel(kind ErrorKind) error {
	switch kind {
	case KindUnsupportedType:
		return ErrUnsupportedType
	case KindNullInput:
		return ErrNullInput
	case KindFormat:
		return ErrFormat
	case KindInvalidEnumValue:
		return ErrInvalidEnumValue
	}
	return nil
}

func unsupportedType(typeName string) *Error {
	return &Error{Kind: KindUnsupportedType, Type: typeName}
}

func nullInput(typeName string) *Error {
	return &Error{Kind: KindNullInput, Type: typeName}
}

func formatError(typeName, input string, err error) *Error {
	return &Error{Kind: KindFormat, Type: typeName, Input: input, Err: err}
}

func invalidEnumValue(typeName, input string) *Error {
	return &Error{Kind: KindInvalidEnumValue, Type: typeName, Input: input}
}
