package bind

import (
	"bytes"
	"fmt"
	"reflect"
	"strings"

	"github.com/viant/parsly"
	"github.com/viant/tagly/format/text"
)

const (
	//TagName defines attribute binding tag
	TagName = "xattr"
)

// Tag represents attribute binding tag, i.e. `xattr:"name,kind=char,default={a,b},required"`
type Tag struct {
	//Name attribute name, "local" or "{space}local"; defaults to the field name in CaseFormat
	Name string
	//Kind selects a kind by name where the field type is shared by several kinds
	Kind string
	//CaseFormat formats the field name when Name is not set, lowerCamel by default
	CaseFormat text.CaseFormat
	//Default is used when the attribute is missing or invalid
	Default  *string
	Required bool
	Ignore   bool
}

func (t *Tag) update(key string, value string) error {
	switch strings.ToLower(key) {
	case "name":
		t.Name = value
	case "kind":
		t.Kind = value
	case "case", "caseformat":
		t.CaseFormat = text.NewCaseFormat(value)
		if t.CaseFormat == text.CaseFormatUndefined {
			return fmt.Errorf("unsupported case format: %s", value)
		}
	case "default":
		t.Default = &value
	case "required":
		t.Required = true
	case "ignore", "-":
		t.Ignore = true
	default:
		return fmt.Errorf("unknown %s key: %s", TagName, key)
	}
	return nil
}

// ParseTag parses field binding tag
func ParseTag(field reflect.StructField) (*Tag, error) {
	ret := &Tag{}
	encoded, ok := field.Tag.Lookup(TagName)
	if encoded == "-" {
		ret.Ignore = true
		return ret, nil
	}
	if ok {
		cursor := parsly.NewCursor("", []byte(encoded), 0)
		for i := 0; cursor.Pos < len(cursor.Input); i++ {
			key, value := matchPair(cursor)
			if key == "" {
				if i == 0 {
					ret.Name = value
				} else if value != "" {
					key, value = value, ""
				}
			}
			if key == "" {
				continue
			}
			if err := ret.update(key, value); err != nil {
				return nil, fmt.Errorf("field %s: %w", field.Name, err)
			}
		}
	}
	if ret.Name == "" {
		caseFormat := ret.CaseFormat
		if caseFormat == text.CaseFormatUndefined {
			caseFormat = text.CaseFormatLowerCamel
		}
		ret.Name = text.CaseFormatUpperCamel.To(caseFormat).Format(field.Name)
	}
	return ret, nil
}

func matchPair(cursor *parsly.Cursor) (string, string) {
	rest := cursor.Input[cursor.Pos:]
	eqIndex := bytes.IndexByte(rest, '=')
	comaIndex := bytes.IndexByte(rest, ',')
	if eqIndex == -1 || (comaIndex != -1 && comaIndex < eqIndex) {
		return "", strings.TrimSpace(matchValue(cursor))
	}
	match := cursor.MatchAny(eqTerminatorMatcher)
	if match.Code != eqTerminatorToken {
		return "", strings.TrimSpace(matchValue(cursor))
	}
	key := match.Text(cursor)
	key = strings.TrimSpace(key[:len(key)-1]) //exclude =
	match = cursor.MatchAny(scopeBlockMatcher)
	if match.Code == scopeBlockToken {
		value := match.Text(cursor)
		cursor.MatchAny(comaTerminatorMatcher)
		return key, value[1 : len(value)-1]
	}
	return key, matchValue(cursor)
}

func matchValue(cursor *parsly.Cursor) string {
	match := cursor.MatchAny(comaTerminatorMatcher)
	if match.Code == comaTerminatorToken {
		value := match.Text(cursor)
		return value[:len(value)-1] //exclude ,
	}
	value := string(cursor.Input[cursor.Pos:])
	cursor.Pos = len(cursor.Input)
	return value
}
