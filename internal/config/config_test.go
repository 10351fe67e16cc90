package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	want := Config{
		LogDir:          "logs",
		HistoryDir:      "history",
		MaxHistorySize:  100,
		AutoSave:        true,
		Precision:       2,
		MaxInputValue:   1e10,
		DefaultEncoding: "utf-8",
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Default() mismatch (-want +got):\n%s", diff)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default().Validate() error: %v", err)
	}
}

func TestApplyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reckon.toml")
	contents := `
log_dir = "/tmp/logs"
max_history_size = 5
auto_save = false
precision = 4
`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := Default()
	if err := applyFile(&cfg, path); err != nil {
		t.Fatalf("applyFile() error: %v", err)
	}

	if cfg.LogDir != "/tmp/logs" {
		t.Errorf("LogDir = %q", cfg.LogDir)
	}
	if cfg.MaxHistorySize != 5 {
		t.Errorf("MaxHistorySize = %d", cfg.MaxHistorySize)
	}
	if cfg.AutoSave {
		t.Error("AutoSave = true, want false")
	}
	if cfg.Precision != 4 {
		t.Errorf("Precision = %d", cfg.Precision)
	}
	// Unset keys keep their defaults.
	if cfg.HistoryDir != "history" {
		t.Errorf("HistoryDir = %q, want default", cfg.HistoryDir)
	}
}

func TestApplyFileExplicitMissing(t *testing.T) {
	cfg := Default()
	err := applyFile(&cfg, filepath.Join(t.TempDir(), "absent.toml"))
	if err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
	var cErr *Error
	if !errors.As(err, &cErr) {
		t.Errorf("error %v is not *config.Error", err)
	}
}

func TestApplyFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("max_history_size = {"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := Default()
	if err := applyFile(&cfg, path); err == nil {
		t.Error("expected parse error")
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvLogDir:          "elsewhere",
		EnvMaxHistorySize:  "7",
		EnvAutoSave:        "false",
		EnvPrecision:       "3",
		EnvMaxInputValue:   "1e6",
		EnvDefaultEncoding: "latin1",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := Default()
	if err := applyEnv(&cfg, lookup); err != nil {
		t.Fatalf("applyEnv() error: %v", err)
	}

	if cfg.LogDir != "elsewhere" || cfg.MaxHistorySize != 7 || cfg.AutoSave ||
		cfg.Precision != 3 || cfg.MaxInputValue != 1e6 || cfg.DefaultEncoding != "latin1" {
		t.Errorf("unexpected config after env overlay: %+v", cfg)
	}
}

func TestApplyEnvBadValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"non-integer history size", EnvMaxHistorySize, "many"},
		{"non-integer precision", EnvPrecision, "2.5"},
		{"non-numeric max input", EnvMaxInputValue, "big"},
		{"non-boolean auto save", EnvAutoSave, "si"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lookup := func(k string) (string, bool) {
				if k == tt.key {
					return tt.value, true
				}
				return "", false
			}
			cfg := Default()
			err := applyEnv(&cfg, lookup)
			if err == nil {
				t.Fatal("expected error")
			}
			var cErr *Error
			if !errors.As(err, &cErr) {
				t.Errorf("error %v is not *config.Error", err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		key    string
	}{
		{"history size zero", func(c *Config) { c.MaxHistorySize = 0 }, "max_history_size"},
		{"negative precision", func(c *Config) { c.Precision = -1 }, "precision"},
		{"zero max input", func(c *Config) { c.MaxInputValue = 0 }, "max_input_value"},
		{"negative max input", func(c *Config) { c.MaxInputValue = -5 }, "max_input_value"},
		{"unknown encoding", func(c *Config) { c.DefaultEncoding = "klingon" }, "default_encoding"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			var cErr *Error
			if !errors.As(err, &cErr) {
				t.Fatalf("error %v is not *config.Error", err)
			}
			if cErr.Key != tt.key {
				t.Errorf("Key = %q, want %q", cErr.Key, tt.key)
			}
		})
	}
}
