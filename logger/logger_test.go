package logger

import (
	"strings"
	"testing"
)

func TestConfigApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()
	if cfg.Level != "info" {
		t.Errorf("level = %q, want %q", cfg.Level, "info")
	}
	if cfg.Format != "console" {
		t.Errorf("format = %q, want %q", cfg.Format, "console")
	}
	if cfg.Output != "stderr" {
		t.Errorf("output = %q, want %q", cfg.Output, "stderr")
	}
	if !cfg.Timestamp {
		t.Error("timestamp should default to true")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"valid json", Config{Level: "debug", Format: "json"}, ""},
		{"valid console", Config{Level: "warn", Format: "console"}, ""},
		{"bad level", Config{Level: "verbose", Format: "json"}, "logger.level"},
		{"bad format", Config{Level: "info", Format: "xml"}, "logger.format"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q does not mention %q", err.Error(), tc.wantErr)
			}
		})
	}
}

func TestFields(t *testing.T) {
	m := Fields("operation", "exchange", "status_code", 200)
	if m["operation"] != "exchange" {
		t.Errorf("operation = %v", m["operation"])
	}
	if m["status_code"] != 200 {
		t.Errorf("status_code = %v", m["status_code"])
	}

	// Odd trailing value is dropped.
	m = Fields("a", 1, "dangling")
	if len(m) != 1 {
		t.Errorf("expected 1 entry, got %d", len(m))
	}
}

func TestWithComponentDoesNotPanic(t *testing.T) {
	log := NewDefault().WithComponent("test")
	log.Debug("debug message", Fields("k", "v"))
	log.Info("info message")
	log.Warn("warn message")
	log.Error("error message")
}
