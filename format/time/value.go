package time

import "time"

// Kind describes how a parsed value relates to time zones
type Kind int

const (
	//Unspecified value was written without a zone
	Unspecified Kind = iota
	//UTC value was written with "Z"
	UTC
	//Local value was written with an offset and normalized into the configured location
	Local
)

// String returns kind name
func (k Kind) String() string {
	switch k {
	case UTC:
		return "utc"
	case Local:
		return "local"
	}
	return "unspecified"
}

// Value represents a parsed date-time with its round-trip kind
type Value struct {
	time.Time
	Kind Kind
}

// Options configures date-time parsing
type Options struct {
	//Location receives unzoned and offset values, time.Local when nil
	Location *time.Location
	//Now supplies the current date for time-only values, time.Now when nil
	Now func() time.Time
}

func (o Options) location() *time.Location {
	if o.Location == nil {
		return time.Local
	}
	return o.Location
}

func (o Options) now() time.Time {
	if o.Now == nil {
		return time.Now()
	}
	return o.Now()
}
