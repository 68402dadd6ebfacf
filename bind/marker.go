package bind

import (
	"fmt"
	"reflect"
	"strings"
	"unsafe"

	"github.com/viant/xunsafe"
)

const (
	//MarkerTag defines presence marker holder tag
	MarkerTag = "presenceMarker"

	legacyMarkerTag = "setMarker"

	legacyTagFragment = "presence=true"
)

// IsMarker returns true if tag defines presence marker holder
func IsMarker(tag reflect.StructTag) bool {
	if _, ok := tag.Lookup(MarkerTag); ok {
		return true
	}
	if _, ok := tag.Lookup(legacyMarkerTag); ok {
		return true
	}
	return strings.Contains(string(tag), legacyTagFragment)
}

// Marker records which attributes were present in a bound element.
// The holder is a struct (or pointer to struct) of bool fields named after the bound fields.
type Marker struct {
	t          reflect.Type
	holder     *xunsafe.Field
	holderType reflect.Type
	fields     []*xunsafe.Field
	index      map[string]int
}

// Index returns marker index of the field or -1 when the holder does not declare it
func (m *Marker) Index(name string) int {
	pos, ok := m.index[name]
	if !ok || m.fields[pos] == nil {
		return -1
	}
	return pos
}

// Set sets field presence flag, allocating pointer holder when needed
func (m *Marker) Set(ptr unsafe.Pointer, index int, flag bool) error {
	if index < 0 || index >= len(m.fields) || m.fields[index] == nil {
		return fmt.Errorf("field at index %v was missing in presence marker", index)
	}
	m.fields[index].SetBool(m.holderPointer(ptr), flag)
	return nil
}

// IsSet returns true if field was flagged as present
func (m *Marker) IsSet(ptr unsafe.Pointer, index int) bool {
	if index < 0 || index >= len(m.fields) || m.fields[index] == nil {
		return false
	}
	if m.holderType.Kind() == reflect.Ptr && m.holder.IsNil(ptr) {
		return false
	}
	return m.fields[index].Bool(m.holderPointer(ptr))
}

// Reset clears all flags
func (m *Marker) Reset(ptr unsafe.Pointer) {
	if m.holderType.Kind() == reflect.Ptr && m.holder.IsNil(ptr) {
		return
	}
	holderPtr := m.holderPointer(ptr)
	for _, field := range m.fields {
		if field != nil {
			field.SetBool(holderPtr, false)
		}
	}
}

func (m *Marker) holderPointer(ptr unsafe.Pointer) unsafe.Pointer {
	if m.holderType.Kind() != reflect.Ptr {
		return m.holder.Pointer(ptr)
	}
	if holderPtr := m.holder.ValuePointer(ptr); holderPtr != nil {
		return holderPtr
	}
	m.holder.SetValue(ptr, reflect.New(m.holderType.Elem()).Interface())
	return m.holder.ValuePointer(ptr)
}

func (m *Marker) init() error {
	holderType := ensureStruct(m.holderType)
	if holderType == nil {
		return fmt.Errorf("presence marker %s of %s is not a struct", m.holder.Name, m.t.String())
	}
	m.fields = make([]*xunsafe.Field, len(m.index))
	for i := 0; i < holderType.NumField(); i++ {
		markerField := holderType.Field(i)
		pos, ok := m.index[markerField.Name]
		if !ok {
			return fmt.Errorf("marker field: '%v' does not have corresponding struct field", markerField.Name)
		}
		if markerField.Type.Kind() != reflect.Bool {
			return fmt.Errorf("marker field: '%v' is not bool", markerField.Name)
		}
		m.fields[pos] = xunsafe.NewField(markerField)
	}
	return nil
}

// NewMarker returns presence marker of the struct type, or nil when the struct has no marker holder
func NewMarker(t reflect.Type) (*Marker, error) {
	if t = ensureStruct(t); t == nil {
		return nil, fmt.Errorf("supplied type is not struct")
	}
	result := &Marker{t: t, index: make(map[string]int, t.NumField())}
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if IsMarker(field.Tag) {
			result.holder = xunsafe.NewField(field)
			result.holderType = field.Type
			continue
		}
		result.index[field.Name] = len(result.index)
	}
	if result.holder == nil {
		return nil, nil
	}
	return result, result.init()
}
