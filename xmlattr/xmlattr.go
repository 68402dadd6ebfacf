// Package xmlattr converts attributes of encoding/xml start elements into typed values.
package xmlattr

import (
	"encoding/xml"
	"errors"
	"fmt"
	"strings"

	"github.com/viant/xconv"
)

// ErrAttributeMissing reports an attribute absent from an element
var ErrAttributeMissing = errors.New("attribute missing")

// ParseName parses "local" or "{space}local" attribute name
func ParseName(name string) xml.Name {
	if strings.HasPrefix(name, "{") {
		if index := strings.IndexByte(name, '}'); index != -1 {
			return xml.Name{Space: name[1:index], Local: name[index+1:]}
		}
	}
	return xml.Name{Local: name}
}

// Lookup returns attribute value or nil when the element has no such attribute
func Lookup(el xml.StartElement, name string) *string {
	attrName := ParseName(name)
	for i := range el.Attr {
		if el.Attr[i].Name == attrName {
			value := el.Attr[i].Value
			return &value
		}
	}
	return nil
}

// Value converts attribute value, a missing attribute fails with ErrAttributeMissing
func Value[T any](el xml.StartElement, name string, kind xconv.Kind[T]) (T, error) {
	text := Lookup(el, name)
	if text == nil {
		var zero T
		return zero, fmt.Errorf("%s@%s: %w", el.Name.Local, name, ErrAttributeMissing)
	}
	return xconv.To(kind, text)
}

// ValueOrDefault converts attribute value, returning defaultValue when the attribute is missing or invalid
func ValueOrDefault[T any](el xml.StartElement, name string, kind xconv.Kind[T], defaultValue T) (T, error) {
	return xconv.ToOrDefault(kind, Lookup(el, name), defaultValue)
}

// NullableValue converts attribute value or returns nil when the attribute is missing or invalid
func NullableValue[T any](el xml.StartElement, name string, kind xconv.Kind[T]) *T {
	return xconv.ToNullable(kind, Lookup(el, name))
}
