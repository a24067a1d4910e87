package cliconfig

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bft-labs/stockroom/pkg/log"
	"github.com/bft-labs/stockroom/pkg/persist"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.SinkName != DefaultSinkName {
		t.Errorf("SinkName = %v, want %v", cfg.SinkName, DefaultSinkName)
	}
	if cfg.Format != "json" {
		t.Errorf("Format = %v, want json", cfg.Format)
	}
	if cfg.Debounce != 200*time.Millisecond {
		t.Errorf("Debounce = %v, want 200ms", cfg.Debounce)
	}
	if cfg.Strict {
		t.Error("Strict = true, want false")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config does not validate: %v", err)
	}
}

func validConfig() Config {
	return Config{
		DataDir:   "/tmp/data",
		SinkName:  "inventory",
		Format:    "json",
		LogLevel:  "info",
		LogFormat: "console",
		Debounce:  time.Second,
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid minimal config", mutate: func(*Config) {}},
		{name: "yml alias", mutate: func(c *Config) { c.Format = "YML" }},
		{name: "upper case level", mutate: func(c *Config) { c.LogLevel = "DEBUG" }},
		{name: "missing data dir", mutate: func(c *Config) { c.DataDir = "" }, wantErr: "data-dir"},
		{name: "missing sink", mutate: func(c *Config) { c.SinkName = "" }, wantErr: "sink"},
		{name: "sink with separator", mutate: func(c *Config) { c.SinkName = "a/b" }, wantErr: "sink"},
		{name: "unknown format", mutate: func(c *Config) { c.Format = "xml" }, wantErr: "format"},
		{name: "unknown level", mutate: func(c *Config) { c.LogLevel = "loud" }, wantErr: "log-level"},
		{name: "unknown log format", mutate: func(c *Config) { c.LogFormat = "xml" }, wantErr: "log-format"},
		{name: "zero debounce", mutate: func(c *Config) { c.Debounce = 0 }, wantErr: "debounce"},
		{name: "unknown sink extension", mutate: func(c *Config) { c.SinkName = "stock.csv" }, wantErr: "unknown codec"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_Validate_Derivations(t *testing.T) {
	// Sink path takes the codec extension.
	c1 := validConfig()
	c1.Format = "toml"
	if err := c1.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if want := filepath.Join("/tmp/data", "inventory.toml"); c1.SinkPath != want {
		t.Errorf("SinkPath = %v, want %v", c1.SinkPath, want)
	}
	if c1.Codec() != persist.TOML {
		t.Errorf("Codec = %v, want toml", c1.Codec().Name())
	}

	// An explicit extension selects the codec.
	c2 := validConfig()
	c2.SinkName = "stock.yaml"
	if err := c2.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if want := filepath.Join("/tmp/data", "stock.yaml"); c2.SinkPath != want {
		t.Errorf("SinkPath = %v, want %v", c2.SinkPath, want)
	}
	if c2.Format != "yaml" {
		t.Errorf("Format = %v, want yaml", c2.Format)
	}

	// yml normalizes to yaml.
	c3 := validConfig()
	c3.Format = "yml"
	if err := c3.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if want := filepath.Join("/tmp/data", "inventory.yaml"); c3.SinkPath != want {
		t.Errorf("SinkPath = %v, want %v", c3.SinkPath, want)
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	cfg := validConfig()
	cfg.LogFormat = "json"
	cfg.LogLevel = "warn"

	logger, err := NewLogger(cfg, &buf)
	if err != nil {
		t.Fatalf("NewLogger() error = %v", err)
	}
	logger.Info("hidden")
	logger.Warn("sink load failed", log.String("path", "/x"))

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info message written at warn level: %q", out)
	}
	if !strings.Contains(out, `"message":"sink load failed"`) || !strings.Contains(out, `"path":"/x"`) {
		t.Errorf("unexpected json output: %q", out)
	}

	cfg.LogFormat = "console"
	buf.Reset()
	logger, err = NewLogger(cfg, &buf)
	if err != nil {
		t.Fatalf("NewLogger() error = %v", err)
	}
	logger.Error("boom")
	if !strings.Contains(buf.String(), "boom") {
		t.Errorf("console output missing message: %q", buf.String())
	}

	cfg.LogLevel = "loud"
	if _, err := NewLogger(cfg, &buf); err == nil {
		t.Error("NewLogger() expected error for unknown level")
	}
}
