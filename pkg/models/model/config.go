package model

import (
	"fmt"
	"strings"
)

// Config is an On/Off switch read from flags and config files.
type Config bool

const (
	On  Config = true
	Off Config = false
)

var configName = map[string]Config{
	"ON":   On,
	"On":   On,
	"on":   On,
	"1":    On,
	"TRUE": On,
	"true": On,

	"OFF":   Off,
	"Off":   Off,
	"off":   Off,
	"0":     Off,
	"FALSE": Off,
	"false": Off,
}

// NewConfig reads s as a switch; anything unknown is Off.
func NewConfig(s string) Config {
	return configName[strings.TrimSpace(s)]
}

func ParseConfig(s string) (Config, error) {
	if c, ok := configName[strings.TrimSpace(s)]; ok {
		return c, nil
	}
	return Off, fmt.Errorf("invalid switch value %q, want On or Off", s)
}

func (c Config) String() string {
	if c {
		return "On"
	}
	return "Off"
}
