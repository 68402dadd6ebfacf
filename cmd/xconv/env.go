package main

import (
	"fmt"
	"os"
	"time"

	env "github.com/Netflix/go-env"
	"github.com/charmbracelet/log"
)

// Environment holds CLI settings loaded from the OS environment
type Environment struct {
	TimeZone string `env:"XCONV_TZ"`
	Debug    string `env:"DEBUG,default=0"`
	Extras   env.EnvSet
}

// NewEnvironment loads the environment
func NewEnvironment() (*Environment, error) {
	ret := &Environment{}
	extras, err := env.UnmarshalFromEnviron(ret)
	if err != nil {
		return ret, err
	}
	ret.Extras = extras
	return ret, nil
}

// Location returns location for unzoned date-time values, named zone takes precedence over XCONV_TZ
func (e *Environment) Location(name string) (*time.Location, error) {
	if name == "" && e != nil {
		name = e.TimeZone
	}
	if name == "" {
		return time.Local, nil
	}
	location, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("invalid time zone %v: %w", name, err)
	}
	return location, nil
}

func newLogger(e *Environment) *log.Logger {
	if e != nil && e.Debug == "1" {
		logger := log.NewWithOptions(os.Stderr, log.Options{
			ReportCaller:    true,
			ReportTimestamp: true,
			Prefix:          "xconv",
		})
		logger.SetLevel(log.DebugLevel)
		return logger
	}
	logger := log.New(os.Stderr)
	logger.SetLevel(log.InfoLevel)
	return logger
}
