package main

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/cockroachdb/apd/v3"
	"github.com/francoispqt/gojay"
	"github.com/google/uuid"
	ftime "github.com/viant/xconv/format/time"
)

// Result represents a single conversion outcome
type Result struct {
	Element    string
	Occurrence int
	Kind       string
	Input      *string
	Value      string
	OK         bool
	Error      string
}

// MarshalJSONObject implements gojay.MarshalerJSONObject
func (r *Result) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKeyOmitEmpty("element", r.Element)
	enc.IntKeyOmitEmpty("occurrence", r.Occurrence)
	enc.StringKey("kind", r.Kind)
	if r.Input == nil {
		enc.NullKey("input")
	} else {
		enc.StringKey("input", *r.Input)
	}
	enc.BoolKey("ok", r.OK)
	if r.OK {
		enc.StringKey("value", r.Value)
	}
	enc.StringKeyOmitEmpty("error", r.Error)
}

// IsNil implements gojay.MarshalerJSONObject
func (r *Result) IsNil() bool {
	return r == nil
}

func newResult(kind string, input *string, value interface{}, err error) *Result {
	ret := &Result{Kind: kind, Input: input}
	if err != nil {
		ret.Error = err.Error()
		return ret
	}
	ret.OK = true
	ret.Value = formatValue(kind, value)
	return ret
}

func writeResult(w io.Writer, result *Result) error {
	data, err := gojay.MarshalJSONObject(result)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func formatValue(kind string, value interface{}) string {
	switch actual := value.(type) {
	case apd.Decimal:
		return actual.Text('f')
	case time.Time:
		return actual.Format(time.RFC3339Nano)
	case ftime.Value:
		return actual.Format(time.RFC3339Nano) + " " + actual.Kind.String()
	case uuid.UUID:
		return actual.String()
	case float32:
		return strconv.FormatFloat(float64(actual), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(actual, 'g', -1, 64)
	case int32:
		if kind == "char" {
			return string(rune(actual))
		}
	}
	return fmt.Sprint(value)
}
