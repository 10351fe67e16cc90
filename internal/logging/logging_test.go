package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestNewWritesToDatedFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	logger, closeFn, err := New(dir, slog.LevelInfo)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	logger.Info("calculator initialized", "component", "test")
	if err := closeFn(); err != nil {
		t.Fatalf("close error: %v", err)
	}

	path := filepath.Join(dir, "reckon_"+time.Now().Format("20060102")+".log")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("log file not created: %v", err)
	}
	if !strings.Contains(string(data), "calculator initialized") {
		t.Errorf("log file missing record: %q", data)
	}
}

func TestNewRespectsLevel(t *testing.T) {
	dir := t.TempDir()

	logger, closeFn, err := New(dir, slog.LevelWarn)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	logger.Info("hidden")
	logger.Warn("visible")
	closeFn() //nolint:errcheck

	path := filepath.Join(dir, "reckon_"+time.Now().Format("20060102")+".log")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "hidden") {
		t.Error("info record written despite warn level")
	}
	if !strings.Contains(string(data), "visible") {
		t.Error("warn record missing")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"info", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
		{"WARN", slog.LevelWarn, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"loud", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
