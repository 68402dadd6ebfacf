package xconv

import (
	"time"

	"github.com/cockroachdb/apd/v3"
	"github.com/google/uuid"
	ftime "github.com/viant/xconv/format/time"
	"github.com/viant/xconv/lexical"
)

// Kind parses the lexical space of one supported target type.
// The set of kinds is closed: the predefined variables below, DateTimeIn, DateTimeOffsetIn and enums.
type Kind[T any] interface {
	//Name returns kind name used in errors and by Converter name lookups
	Name() string
	//Parse converts non null text, failures are reported as *Error
	Parse(text string) (T, error)
	kind()
}

type primitive[T any] struct {
	name  string
	parse func(text string) (T, error)
}

func (p *primitive[T]) Name() string {
	return p.name
}

func (p *primitive[T]) Parse(text string) (T, error) {
	value, err := p.parse(text)
	if err != nil {
		var zero T
		return zero, formatError(p.name, text, err)
	}
	return value, nil
}

func (p *primitive[T]) kind() {}

func newKind[T any](name string, parse func(text string) (T, error)) Kind[T] {
	return &primitive[T]{name: name, parse: parse}
}

// Predefined kinds
var (
	Bool           = newKind("bool", lexical.ParseBool)
	Int16          = newKind("int16", lexical.ParseInt16)
	Int32          = newKind("int32", lexical.ParseInt32)
	Int64          = newKind("int64", lexical.ParseInt64)
	Int            = newKind("int", lexical.ParseIntSize)
	UInt16         = newKind("uint16", lexical.ParseUint16)
	UInt32         = newKind("uint32", lexical.ParseUint32)
	UInt64         = newKind("uint64", lexical.ParseUint64)
	Float32        = newKind("float32", lexical.ParseFloat32)
	Float64        = newKind("float64", lexical.ParseFloat64)
	Decimal        = newKind[apd.Decimal]("decimal", lexical.ParseDecimal)
	Byte           = newKind("byte", lexical.ParseByte)
	SByte          = newKind("sbyte", lexical.ParseSByte)
	Char           = newKind("char", lexical.ParseChar)
	GUID           = newKind[uuid.UUID]("guid", lexical.ParseGUID)
	DateTime       = DateTimeIn(ftime.Options{})
	DateTimeOffset = DateTimeOffsetIn(ftime.Options{})
	DateTimeValue  = DateTimeValueIn(ftime.Options{})
)

// DateTimeIn returns a date-time kind using supplied location and clock
func DateTimeIn(options ftime.Options) Kind[time.Time] {
	return newKind("datetime", func(text string) (time.Time, error) {
		value, err := ftime.Parse(text, options)
		return value.Time, err
	})
}

// DateTimeValueIn returns a date-time kind keeping the round-trip Kind of the parsed value
func DateTimeValueIn(options ftime.Options) Kind[ftime.Value] {
	return newKind("datetimevalue", func(text string) (ftime.Value, error) {
		return ftime.Parse(text, options)
	})
}

// DateTimeOffsetIn returns a date-time kind with mandatory zone, keeping the written offset
func DateTimeOffsetIn(options ftime.Options) Kind[time.Time] {
	return newKind("datetimeoffset", func(text string) (time.Time, error) {
		return ftime.ParseOffset(text, options)
	})
}
