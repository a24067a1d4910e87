package cliconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/bft-labs/stockroom/pkg/persist"
)

// DefaultSinkName is the sink file name used when none is configured.
const DefaultSinkName = "inventory"

// Config holds CLI configuration for stockroom.
type Config struct {
	DataDir  string `validate:"required"`
	SinkName string `validate:"required,excludesall=/\\"`
	Format   string `validate:"required,oneof=json toml yaml"`

	LogLevel  string `validate:"required,oneof=debug info warn error"`
	LogFormat string `validate:"required,oneof=console json"`

	Strict   bool
	Debounce time.Duration `validate:"gt=0"`

	// SinkPath is derived by Validate from DataDir, SinkName and Format.
	SinkPath string `validate:"-"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		DataDir:   DefaultDataDir(),
		SinkName:  DefaultSinkName,
		Format:    "json",
		LogLevel:  "info",
		LogFormat: "console",
		Debounce:  200 * time.Millisecond,
	}
}

// DefaultDataDir returns ~/.stockroom/data, or the working directory if the
// home directory is not accessible.
func DefaultDataDir() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".stockroom", "data")
	}
	return "."
}

var validate = validator.New()

// Validate checks the configuration for errors and sets derived defaults.
func (c *Config) Validate() error {
	c.Format = strings.ToLower(c.Format)
	if c.Format == "yml" {
		c.Format = "yaml"
	}
	c.LogLevel = strings.ToLower(c.LogLevel)

	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s: failed %q", flagName(fe.Field()), fe.Tag()))
			}
			return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid config: %w", err)
	}

	name := c.SinkName
	if ext := filepath.Ext(name); ext != "" {
		// An extension on the sink name selects its codec.
		codec, err := persist.CodecFor(strings.TrimPrefix(ext, "."))
		if err != nil {
			return fmt.Errorf("invalid config: sink: %w", err)
		}
		c.Format = codec.Name()
	} else {
		name += c.Codec().Ext()
	}
	c.SinkPath = filepath.Join(c.DataDir, name)
	return nil
}

// Codec returns the sink codec selected by Format.
func (c Config) Codec() persist.Codec {
	codec, err := persist.CodecFor(c.Format)
	if err != nil {
		return persist.JSON
	}
	return codec
}

func flagName(field string) string {
	switch field {
	case "DataDir":
		return "data-dir"
	case "SinkName":
		return "sink"
	case "Format":
		return "format"
	case "LogLevel":
		return "log-level"
	case "LogFormat":
		return "log-format"
	case "Debounce":
		return "debounce"
	default:
		return field
	}
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
