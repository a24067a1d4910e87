package cliconfig

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestApplyFileConfig(t *testing.T) {
	trueVal := true
	falseVal := false

	tests := []struct {
		name       string
		fileConfig FileConfig
		changed    map[string]bool
		initial    Config
		expected   Config
		wantErr    bool
	}{
		{
			name: "applies all valid config values",
			fileConfig: FileConfig{
				DataDir:   "/file/data",
				SinkName:  "stock",
				Format:    "toml",
				LogLevel:  "debug",
				LogFormat: "json",
				Strict:    &trueVal,
				Debounce:  "1s",
			},
			changed: map[string]bool{},
			initial: Config{},
			expected: Config{
				DataDir:   "/file/data",
				SinkName:  "stock",
				Format:    "toml",
				LogLevel:  "debug",
				LogFormat: "json",
				Strict:    true,
				Debounce:  time.Second,
			},
		},
		{
			name: "respects changed flags",
			fileConfig: FileConfig{
				DataDir:  "/file/data",
				SinkName: "stock",
			},
			changed: map[string]bool{"data-dir": true},
			initial: Config{
				DataDir:  "/flag/data",
				SinkName: "inventory",
			},
			expected: Config{
				DataDir:  "/flag/data", // unchanged because flag was set
				SinkName: "stock",
			},
		},
		{
			name:       "empty values keep defaults",
			fileConfig: FileConfig{},
			changed:    map[string]bool{},
			initial:    Config{Format: "yaml", Debounce: time.Minute},
			expected:   Config{Format: "yaml", Debounce: time.Minute},
		},
		{
			name:       "explicit false overrides",
			fileConfig: FileConfig{Strict: &falseVal},
			changed:    map[string]bool{},
			initial:    Config{Strict: true},
			expected:   Config{Strict: false},
		},
		{
			name:       "returns error for invalid duration",
			fileConfig: FileConfig{Debounce: "soon"},
			changed:    map[string]bool{},
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.initial
			err := ApplyFileConfig(&cfg, tt.fileConfig, tt.changed)

			if tt.wantErr && err == nil {
				t.Error("ApplyFileConfig() expected error but got nil")
				return
			}
			if !tt.wantErr && err != nil {
				t.Errorf("ApplyFileConfig() unexpected error: %v", err)
				return
			}

			if !tt.wantErr && cfg != tt.expected {
				t.Errorf("config = %+v, want %+v", cfg, tt.expected)
			}
		})
	}
}

func TestLoadFileConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "test-config.toml")

	tomlContent := `
data_dir = "/tmp/data"
sink_name = "stock"
format = "yaml"
log_level = "warn"
debounce = "500ms"
strict = true
`

	if err := os.WriteFile(configPath, []byte(tomlContent), 0644); err != nil {
		t.Fatalf("Failed to create test config file: %v", err)
	}

	fc, err := LoadFileConfig(configPath)
	if err != nil {
		t.Fatalf("LoadFileConfig() error = %v", err)
	}

	if fc.DataDir != "/tmp/data" {
		t.Errorf("DataDir = %v, want /tmp/data", fc.DataDir)
	}
	if fc.SinkName != "stock" {
		t.Errorf("SinkName = %v, want stock", fc.SinkName)
	}
	if fc.Format != "yaml" {
		t.Errorf("Format = %v, want yaml", fc.Format)
	}
	if fc.LogLevel != "warn" {
		t.Errorf("LogLevel = %v, want warn", fc.LogLevel)
	}
	if fc.Debounce != "500ms" {
		t.Errorf("Debounce = %v, want 500ms", fc.Debounce)
	}
	if fc.Strict == nil || *fc.Strict != true {
		t.Errorf("Strict = %v, want true", fc.Strict)
	}
}

func TestLoadFileConfig_InvalidFile(t *testing.T) {
	_, err := LoadFileConfig("/nonexistent/path/config.toml")
	if err == nil {
		t.Error("LoadFileConfig() expected error for nonexistent file")
	}
}

func TestLoadFileConfig_InvalidTOML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.toml")

	invalidContent := `
data_dir = "/test"
this is not valid toml
`

	if err := os.WriteFile(configPath, []byte(invalidContent), 0644); err != nil {
		t.Fatalf("Failed to create test config file: %v", err)
	}

	_, err := LoadFileConfig(configPath)
	if err == nil {
		t.Error("LoadFileConfig() expected error for invalid TOML")
	}
}

func TestLoadFileConfig_UnknownKey(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "typo.toml")

	if err := os.WriteFile(configPath, []byte("data_dri = \"/x\"\n"), 0644); err != nil {
		t.Fatalf("Failed to create test config file: %v", err)
	}

	if _, err := LoadFileConfig(configPath); err == nil {
		t.Error("LoadFileConfig() expected error for unknown key")
	}
}

func TestDefaultConfigPath(t *testing.T) {
	path := DefaultConfigPath()

	if path != "" && !strings.Contains(path, ".stockroom") {
		t.Errorf("DefaultConfigPath() = %v, should contain .stockroom", path)
	}
}

func TestFileExists(t *testing.T) {
	tmpDir := t.TempDir()
	existingFile := filepath.Join(tmpDir, "exists.txt")

	if err := os.WriteFile(existingFile, []byte("test"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	if !FileExists(existingFile) {
		t.Error("FileExists() = false, want true for existing file")
	}

	if FileExists(filepath.Join(tmpDir, "nonexistent.txt")) {
		t.Error("FileExists() = true, want false for missing file")
	}
}
