package time

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/viant/xconv/lexical"
)

var iso20220715DateFormatToRfc3339TimeLayoutReplacer = strings.NewReplacer(
	"YYYY", "2006",
	"MM", "01",
	"M", "1",
	"DD", "02",
	"D", "2",
	"+hh:mm", "Z07:00",
	"+hhmm", "Z0700",
	"+hh", "Z07",
	"-hh:mm", "Z07:00",
	"-hhmm", "Z0700",
	"hh", "15",
	"mm", "04",
	"m", "4",
	"ss", "05",
	".SSS", ".999",
	".SS", ".99",
	".S", ".9",
	"-hh", "Z07",
	"Z", "Z07:00",
)

// DateFormatToTimeLayout converts ISO 2022-07-15 date format to RFC3339 time layout
func DateFormatToTimeLayout(dateFormat string) string {
	return iso20220715DateFormatToRfc3339TimeLayoutReplacer.Replace(dateFormat)
}

// ErrZoneRequired reports a value without "Z" or an offset where one is mandatory
var ErrZoneRequired = errors.New("time zone offset required")

type variant struct {
	format  string
	layout  string
	hasDate bool
	hasTime bool
}

func newVariant(format string, hasDate, hasTime bool) *variant {
	return &variant{format: format, layout: DateFormatToTimeLayout(format), hasDate: hasDate, hasTime: hasTime}
}

var variants = []*variant{
	newVariant("YYYY-MM-DDThh:mm:ss", true, true),
	newVariant("YYYY-MM-DD", true, false),
	newVariant("hh:mm:ss", false, true),
}

type zoneKind int

const (
	noZone zoneKind = iota
	utcZone
	offsetZone
)

type fields struct {
	variant *variant
	wall    time.Time //date and/or clock fields, in UTC
	nanos   int
	zone    zoneKind
	offset  int //seconds east of UTC
}

// Parse parses the date-time lexical space: a date, a time or both, with optional fractional
// seconds and an optional "Z" or ±hh:mm suffix.
//
// Without a zone the wall clock is taken in options.Location and the kind is Unspecified.
// "Z" yields a UTC value. An offset yields the same instant in options.Location with kind Local.
// A time without a date takes today's date in the zone the value is written in.
func Parse(value string, options Options) (Value, error) {
	f, err := scan(value)
	if err != nil {
		return Value{}, err
	}
	switch f.zone {
	case utcZone:
		return Value{Time: f.compose(time.UTC, options.now()), Kind: UTC}, nil
	case offsetZone:
		zone := time.FixedZone("", f.offset)
		return Value{Time: f.compose(zone, options.now()).In(options.location()), Kind: Local}, nil
	}
	location := options.location()
	return Value{Time: f.compose(location, options.now()), Kind: Unspecified}, nil
}

// ParseOffset parses the date-time lexical space with a mandatory zone, keeping the written offset
func ParseOffset(value string, options Options) (time.Time, error) {
	f, err := scan(value)
	if err != nil {
		return time.Time{}, err
	}
	switch f.zone {
	case utcZone:
		return f.compose(time.UTC, options.now()), nil
	case offsetZone:
		return f.compose(time.FixedZone("", f.offset), options.now()), nil
	}
	return time.Time{}, fmt.Errorf("datetimeoffset: %q: %w", value, ErrZoneRequired)
}

func (f *fields) compose(location *time.Location, now time.Time) time.Time {
	year, month, day := f.wall.Date()
	if !f.variant.hasDate {
		year, month, day = now.In(location).Date()
	}
	hour, minute, second := f.wall.Clock()
	return time.Date(year, month, day, hour, minute, second, f.nanos, location)
}

func scan(value string) (*fields, error) {
	text := lexical.Trim(value)
	result := &fields{}
	body, err := result.splitZone(text)
	if err != nil {
		return nil, fmt.Errorf("datetime: %q: %w", value, err)
	}
	body, hasFraction, err := result.splitFraction(body)
	if err != nil {
		return nil, fmt.Errorf("datetime: %q: %w", value, err)
	}
	for _, candidate := range variants {
		if len(body) != len(candidate.layout) || (hasFraction && !candidate.hasTime) {
			continue
		}
		wall, err := time.ParseInLocation(candidate.layout, body, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("datetime: %q: %w", value, err)
		}
		if candidate.hasDate && wall.Year() < 1 {
			return nil, fmt.Errorf("datetime: %q: year %d: %w", value, wall.Year(), lexical.ErrRange)
		}
		result.variant = candidate
		result.wall = wall
		return result, nil
	}
	return nil, fmt.Errorf("datetime: %q: %w", value, lexical.ErrSyntax)
}

func (f *fields) splitZone(text string) (string, error) {
	if strings.HasSuffix(text, "Z") {
		f.zone = utcZone
		return text[:len(text)-1], nil
	}
	if len(text) < 6 {
		return text, nil
	}
	suffix := text[len(text)-6:]
	if (suffix[0] != '+' && suffix[0] != '-') || suffix[3] != ':' {
		return text, nil
	}
	hours, ok := twoDigits(suffix[1:3])
	if !ok {
		return "", lexical.ErrSyntax
	}
	minutes, ok := twoDigits(suffix[4:6])
	if !ok || minutes > 59 || hours > 14 || (hours == 14 && minutes > 0) {
		return "", fmt.Errorf("offset %s: %w", suffix, lexical.ErrRange)
	}
	f.zone = offsetZone
	f.offset = hours*3600 + minutes*60
	if suffix[0] == '-' {
		f.offset = -f.offset
	}
	return text[:len(text)-6], nil
}

func (f *fields) splitFraction(body string) (string, bool, error) {
	index := strings.LastIndexByte(body, '.')
	if index == -1 {
		return body, false, nil
	}
	digits := body[index+1:]
	if digits == "" {
		return "", false, lexical.ErrSyntax
	}
	nanos := 0
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return "", false, lexical.ErrSyntax
		}
		if i < 9 {
			nanos = nanos*10 + int(digits[i]-'0')
		}
	}
	for i := len(digits); i < 9; i++ {
		nanos *= 10
	}
	f.nanos = nanos
	return body[:index], true, nil
}

func twoDigits(s string) (int, bool) {
	if len(s) != 2 || s[0] < '0' || s[0] > '9' || s[1] < '0' || s[1] > '9' {
		return 0, false
	}
	return int(s[0]-'0')*10 + int(s[1]-'0'), true
}
