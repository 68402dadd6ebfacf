package xconv

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"sync"
	"time"
)

// Converter dispatches conversions by the declared type of a destination, or by kind name
// where several kinds share one Go type (char and int32, datetimeoffset and datetime).
// It is safe for concurrent use.
type Converter struct {
	options Options
	byType  sync.Map // map[reflect.Type]*route
	byName  sync.Map // map[string]*route
}

type route struct {
	name      string
	rType     reflect.Type
	parse     func(text string) (interface{}, error)
	isDefined func(value interface{}) bool
}

// NewConverter creates a converter with all predefined kinds registered
func NewConverter(opts ...Option) *Converter {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	ret := &Converter{options: options}
	Register(ret, Bool)
	Register(ret, Int16)
	Register(ret, Int32)
	Register(ret, Int64)
	Register(ret, Int)
	Register(ret, UInt16)
	Register(ret, UInt32)
	Register(ret, UInt64)
	Register(ret, Float32)
	Register(ret, Float64)
	Register(ret, Decimal)
	Register(ret, Byte)
	Register(ret, SByte)
	Register(ret, GUID)
	Register(ret, DateTimeIn(options.Time))
	Register(ret, DateTimeValueIn(options.Time))
	RegisterName(ret, Char)
	RegisterName(ret, DateTimeOffsetIn(options.Time))
	return ret
}

// Register registers kind for its Go type and its name
func Register[T any](c *Converter, kind Kind[T]) {
	r := newRoute(kind)
	c.byType.Store(r.rType, r)
	c.byName.Store(r.name, r)
}

// RegisterName registers kind for its name only
func RegisterName[T any](c *Converter, kind Kind[T]) {
	r := newRoute(kind)
	c.byName.Store(r.name, r)
}

func newRoute[T any](kind Kind[T]) *route {
	r := &route{
		name:  kind.Name(),
		rType: reflect.TypeOf((*T)(nil)).Elem(),
		parse: func(text string) (interface{}, error) {
			return kind.Parse(text)
		},
	}
	if domain, ok := kind.(interface{ IsDefined(value T) bool }); ok {
		r.isDefined = func(value interface{}) bool {
			actual, ok := value.(T)
			return ok && domain.IsDefined(actual)
		}
	}
	return r
}

// Kinds returns registered kind names
func (c *Converter) Kinds() []string {
	var result []string
	c.byName.Range(func(key, _ interface{}) bool {
		result = append(result, key.(string))
		return true
	})
	sort.Strings(result)
	return result
}

// Location returns location used by registered date-time kinds
func (c *Converter) Location() *time.Location {
	if c.options.Time.Location == nil {
		return time.Local
	}
	return c.options.Time.Location
}

// dispatch resolves route for the declared type, or for the kind name when supplied
func (c *Converter) dispatch(rType reflect.Type, kindName string) (*route, error) {
	if kindName != "" {
		if v, ok := c.byName.Load(kindName); ok {
			r := v.(*route)
			if rType != nil && r.rType != rType {
				return nil, &Error{Kind: KindUnsupportedType, Type: rType.String(), Err: fmt.Errorf("kind %s produces %v", kindName, r.rType)}
			}
			return r, nil
		}
		return nil, unsupportedType(kindName)
	}
	if rType == nil {
		return nil, unsupportedType("<nil>")
	}
	if v, ok := c.byType.Load(rType); ok {
		return v.(*route), nil
	}
	return nil, unsupportedType(rType.String())
}

// Supports returns true if the declared type or the named kind is registered
func (c *Converter) Supports(rType reflect.Type, kindName string) bool {
	_, err := c.dispatch(rType, kindName)
	return err == nil
}

// Parse converts text into a value of the declared type or named kind; a nil text is a null input
func (c *Converter) Parse(rType reflect.Type, kindName string, text *string) (interface{}, error) {
	r, err := c.dispatch(rType, kindName)
	if err != nil {
		return nil, err
	}
	if text == nil {
		return nil, nullInput(r.name)
	}
	return r.parse(*text)
}

// Convert converts text into dest, which has to be a non nil pointer to a supported type
func (c *Converter) Convert(dest interface{}, text *string) error {
	return c.ConvertKind(dest, "", text)
}

// ConvertKind converts text into dest using the named kind
func (c *Converter) ConvertKind(dest interface{}, kindName string, text *string) error {
	destValue, err := destination(dest)
	if err != nil {
		return err
	}
	value, err := c.Parse(destValue.Type(), kindName, text)
	if err != nil {
		return err
	}
	destValue.Set(reflect.ValueOf(value))
	return nil
}

// TryConvert converts text into dest; data failures set dest to zero value and return false,
// setup failures (unsupported type, invalid destination) are returned as error
func (c *Converter) TryConvert(dest interface{}, text *string) (bool, error) {
	err := c.Convert(dest, text)
	if err == nil {
		return true, nil
	}
	if !IsData(err) {
		return false, err
	}
	c.logAbsorbed(dest, text, err)
	destValue, _ := destination(dest)
	destValue.Set(reflect.Zero(destValue.Type()))
	return false, nil
}

// ConvertOrDefault converts text into dest or assigns defaultValue on data failures;
// for enumerations an undeclared defaultValue is rejected
func (c *Converter) ConvertOrDefault(dest interface{}, text *string, defaultValue interface{}) error {
	err := c.Convert(dest, text)
	if err == nil || !IsData(err) {
		return err
	}
	destValue, _ := destination(dest)
	r, _ := c.dispatch(destValue.Type(), "")
	if reflect.TypeOf(defaultValue) != destValue.Type() {
		return fmt.Errorf("default %v is not %v", defaultValue, destValue.Type())
	}
	if r.isDefined != nil && !r.isDefined(defaultValue) {
		return &Error{Kind: KindInvalidEnumValue, Type: r.name, Input: fmt.Sprint(defaultValue), Default: true}
	}
	c.logAbsorbed(dest, text, err)
	destValue.Set(reflect.ValueOf(defaultValue))
	return nil
}

func (c *Converter) logAbsorbed(dest interface{}, text *string, err error) {
	if c.options.Logger == nil {
		return
	}
	input := "<null>"
	if text != nil {
		input = *text
	}
	c.options.Logger.Debug("conversion failure absorbed", "type", fmt.Sprintf("%T", dest), "input", input, "error", err)
}

func destination(dest interface{}) (reflect.Value, error) {
	if dest == nil {
		return reflect.Value{}, errors.New("destination cannot be nil")
	}
	destValue := reflect.ValueOf(dest)
	if destValue.Kind() != reflect.Ptr {
		return reflect.Value{}, errors.New("destination must be a pointer")
	}
	if destValue.IsNil() {
		return reflect.Value{}, errors.New("destination pointer cannot be nil")
	}
	return destValue.Elem(), nil
}
