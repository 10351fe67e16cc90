package config

import (
	"fmt"
	"strconv"
)

// Environment variables recognized by the calculator.
const (
	EnvLogDir          = "RECKON_LOG_DIR"
	EnvHistoryDir      = "RECKON_HISTORY_DIR"
	EnvMaxHistorySize  = "RECKON_MAX_HISTORY_SIZE"
	EnvAutoSave        = "RECKON_AUTO_SAVE"
	EnvPrecision       = "RECKON_PRECISION"
	EnvMaxInputValue   = "RECKON_MAX_INPUT_VALUE"
	EnvDefaultEncoding = "RECKON_DEFAULT_ENCODING"
)

// applyEnv overlays environment variables onto cfg. lookup is
// os.LookupEnv in production; tests inject a map.
func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvLogDir); ok {
		cfg.LogDir = v
	}
	if v, ok := lookup(EnvHistoryDir); ok {
		cfg.HistoryDir = v
	}
	if v, ok := lookup(EnvDefaultEncoding); ok {
		cfg.DefaultEncoding = v
	}

	if v, ok := lookup(EnvMaxHistorySize); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return envError(EnvMaxHistorySize, v, "integer")
		}
		cfg.MaxHistorySize = n
	}
	if v, ok := lookup(EnvPrecision); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return envError(EnvPrecision, v, "integer")
		}
		cfg.Precision = n
	}
	if v, ok := lookup(EnvMaxInputValue); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return envError(EnvMaxInputValue, v, "number")
		}
		cfg.MaxInputValue = f
	}
	if v, ok := lookup(EnvAutoSave); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return envError(EnvAutoSave, v, "boolean")
		}
		cfg.AutoSave = b
	}
	return nil
}

func envError(key, value, want string) error {
	return &Error{Key: key, Message: fmt.Sprintf("invalid %s %q", want, value)}
}
