package xmlattr

import (
	"encoding/xml"
	"errors"
	"io"
)

// Visitor represents matched element visitor, returning false stops scanning
type Visitor func(el xml.StartElement) (bool, error)

// Scan streams the document and visits start elements with matching local name; an empty name matches all
func Scan(reader io.Reader, local string, visitor Visitor) error {
	decoder := xml.NewDecoder(reader)
	for {
		token, err := decoder.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		el, ok := token.(xml.StartElement)
		if !ok || (local != "" && el.Name.Local != local) {
			continue
		}
		toContinue, err := visitor(el.Copy())
		if err != nil || !toContinue {
			return err
		}
	}
}
