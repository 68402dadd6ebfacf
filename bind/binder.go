package bind

import (
	"encoding/xml"
	"fmt"
	"reflect"
	"sync"
	"unsafe"

	"github.com/viant/xconv"
	"github.com/viant/xconv/xmlattr"
	"github.com/viant/xunsafe"
)

// Binder binds element attributes to tagged struct fields
type Binder struct {
	converter *xconv.Converter
	bindings  sync.Map // map[reflect.Type]*binding
}

type binding struct {
	fields []*fieldBinding
	marker *Marker
}

type fieldBinding struct {
	name        string
	tag         *Tag
	field       *xunsafe.Field
	valueType   reflect.Type
	isPtr       bool
	markerIndex int
}

// New creates a binder, a nil converter uses xconv.NewConverter()
func New(converter *xconv.Converter) *Binder {
	if converter == nil {
		converter = xconv.NewConverter()
	}
	return &Binder{converter: converter}
}

// Bind converts element attributes into dest fields, dest has to be a non nil pointer to struct.
// Missing attributes leave fields unchanged unless a default is tagged; invalid attributes fail
// unless a default is tagged.
func (b *Binder) Bind(el xml.StartElement, dest interface{}) error {
	destType := reflect.TypeOf(dest)
	if destType == nil || destType.Kind() != reflect.Ptr || destType.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("expected pointer to struct, but had %T", dest)
	}
	if reflect.ValueOf(dest).IsNil() {
		return fmt.Errorf("destination %T was nil", dest)
	}
	aBinding, err := b.binding(destType.Elem())
	if err != nil {
		return err
	}
	ptr := xunsafe.AsPointer(dest)
	if aBinding.marker != nil {
		aBinding.marker.Reset(ptr)
	}
	for _, field := range aBinding.fields {
		if err = b.bindField(el, ptr, field, aBinding.marker); err != nil {
			return fmt.Errorf("failed to bind %s.%s: %w", el.Name.Local, field.name, err)
		}
	}
	return nil
}

func (b *Binder) bindField(el xml.StartElement, ptr unsafe.Pointer, field *fieldBinding, marker *Marker) error {
	text := xmlattr.Lookup(el, field.tag.Name)
	if text == nil {
		if field.tag.Required {
			return fmt.Errorf("%s: %w", field.tag.Name, xmlattr.ErrAttributeMissing)
		}
		if field.tag.Default == nil {
			return nil
		}
		value, err := b.converter.Parse(field.valueType, field.tag.Kind, field.tag.Default)
		if err != nil {
			return fmt.Errorf("invalid default: %w", err)
		}
		field.set(ptr, value)
		return nil
	}
	value, err := b.converter.Parse(field.valueType, field.tag.Kind, text)
	if err != nil {
		if field.tag.Default == nil || !xconv.IsData(err) {
			return err
		}
		if value, err = b.converter.Parse(field.valueType, field.tag.Kind, field.tag.Default); err != nil {
			return fmt.Errorf("invalid default: %w", err)
		}
	}
	field.set(ptr, value)
	if marker != nil && field.markerIndex != -1 {
		return marker.Set(ptr, field.markerIndex, true)
	}
	return nil
}

func (f *fieldBinding) set(ptr unsafe.Pointer, value interface{}) {
	target := reflect.NewAt(f.field.Type, f.field.Pointer(ptr)).Elem()
	if !f.isPtr {
		target.Set(reflect.ValueOf(value))
		return
	}
	holder := reflect.New(f.valueType)
	holder.Elem().Set(reflect.ValueOf(value))
	target.Set(holder)
}

func (b *Binder) binding(rType reflect.Type) (*binding, error) {
	if cached, ok := b.bindings.Load(rType); ok {
		return cached.(*binding), nil
	}
	ret, err := b.newBinding(rType)
	if err != nil {
		return nil, err
	}
	actual, _ := b.bindings.LoadOrStore(rType, ret)
	return actual.(*binding), nil
}

func (b *Binder) newBinding(rType reflect.Type) (*binding, error) {
	marker, err := NewMarker(rType)
	if err != nil {
		return nil, err
	}
	ret := &binding{marker: marker}
	for i := 0; i < rType.NumField(); i++ {
		field := rType.Field(i)
		if field.PkgPath != "" || IsMarker(field.Tag) {
			continue
		}
		tag, err := ParseTag(field)
		if err != nil {
			return nil, err
		}
		if tag.Ignore {
			continue
		}
		valueType := field.Type
		isPtr := valueType.Kind() == reflect.Ptr
		if isPtr {
			valueType = valueType.Elem()
		}
		if !b.converter.Supports(valueType, tag.Kind) {
			if _, tagged := field.Tag.Lookup(TagName); !tagged {
				continue
			}
			return nil, fmt.Errorf("field %s: %w", field.Name, xconv.ErrUnsupportedType)
		}
		aField := &fieldBinding{name: field.Name, tag: tag, field: xunsafe.NewField(field), valueType: valueType, isPtr: isPtr, markerIndex: -1}
		if marker != nil {
			aField.markerIndex = marker.Index(field.Name)
		}
		ret.fields = append(ret.fields, aField)
	}
	return ret, nil
}
