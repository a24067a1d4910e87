package cliconfig

import "os"

// EnvPrefix prefixes every environment variable stockroom reads.
const EnvPrefix = "STOCKROOM_"

// ApplyEnvConfig applies configuration from environment variables (STOCKROOM_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("data-dir", os.Getenv(EnvPrefix+"DATA_DIR"), &cfg.DataDir)
	s.setString("sink", os.Getenv(EnvPrefix+"SINK_NAME"), &cfg.SinkName)
	s.setString("format", os.Getenv(EnvPrefix+"FORMAT"), &cfg.Format)
	s.setString("log-level", os.Getenv(EnvPrefix+"LOG_LEVEL"), &cfg.LogLevel)
	s.setString("log-format", os.Getenv(EnvPrefix+"LOG_FORMAT"), &cfg.LogFormat)

	if err := s.setDuration("debounce", os.Getenv(EnvPrefix+"DEBOUNCE"), &cfg.Debounce); err != nil {
		return err
	}

	s.setBoolFromString("strict", os.Getenv(EnvPrefix+"STRICT"), &cfg.Strict)

	return nil
}
