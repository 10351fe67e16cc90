// Package config manages calculator settings.
//
// Settings are layered: built-in defaults, then an optional TOML file,
// then RECKON_* environment variables. Invalid values fail fast at
// startup with an *Error.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/reckon/internal/persist"
)

// DefaultFile is the config file consulted when no path is given.
const DefaultFile = "reckon.toml"

// Config holds the calculator settings.
type Config struct {
	LogDir          string  `toml:"log_dir"`
	HistoryDir      string  `toml:"history_dir"`
	MaxHistorySize  int     `toml:"max_history_size"`
	AutoSave        bool    `toml:"auto_save"`
	Precision       int     `toml:"precision"`
	MaxInputValue   float64 `toml:"max_input_value"`
	DefaultEncoding string  `toml:"default_encoding"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LogDir:          "logs",
		HistoryDir:      "history",
		MaxHistorySize:  100,
		AutoSave:        true,
		Precision:       2,
		MaxInputValue:   1e10,
		DefaultEncoding: "utf-8",
	}
}

// Load builds the effective configuration. An empty path consults
// DefaultFile if present; an explicit path must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	if err := applyFile(&cfg, path); err != nil {
		return Config{}, err
	}
	if err := applyEnv(&cfg, os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyFile(cfg *Config, path string) error {
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return nil
		}
		return &Error{Message: fmt.Sprintf("reading config file %s: %v", path, err)}
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return &Error{Message: fmt.Sprintf("parsing config file %s: %v", path, err)}
	}
	return nil
}

// Validate checks ranges and the encoding name.
func (c Config) Validate() error {
	if c.MaxHistorySize < 1 {
		return &Error{Key: "max_history_size", Message: "must be at least 1"}
	}
	if c.Precision < 0 {
		return &Error{Key: "precision", Message: "must be non-negative"}
	}
	if c.MaxInputValue <= 0 {
		return &Error{Key: "max_input_value", Message: "must be positive"}
	}
	if _, err := persist.ResolveEncoding(c.DefaultEncoding); err != nil {
		return &Error{Key: "default_encoding", Message: err.Error()}
	}
	return nil
}
