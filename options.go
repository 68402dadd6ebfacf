package xconv

import (
	"time"

	"github.com/charmbracelet/log"
	ftime "github.com/viant/xconv/format/time"
)

// Options contains configuration for the converter
type Options struct {
	// Time configures date-time kinds registered by NewConverter
	Time ftime.Options
	// Logger receives debug entries for data failures absorbed by TryConvert and ConvertOrDefault
	Logger *log.Logger
}

// DefaultOptions returns default converter options
func DefaultOptions() Options {
	return Options{Time: ftime.Options{Location: time.Local, Now: time.Now}}
}

// Option represents converter option
type Option func(o *Options)

// WithLocation sets the location of unzoned and offset date-time values
func WithLocation(location *time.Location) Option {
	return func(o *Options) {
		o.Time.Location = location
	}
}

// WithClock sets the clock supplying today's date for time-only values
func WithClock(now func() time.Time) Option {
	return func(o *Options) {
		o.Time.Now = now
	}
}

// WithLogger sets converter logger
func WithLogger(logger *log.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}
