package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"

	"findmax/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    zapcore.Level
		wantErr bool
	}{
		{"debug", zapcore.DebugLevel, false},
		{"info", zapcore.InfoLevel, false},
		{"", zapcore.InfoLevel, false},
		{"warn", zapcore.WarnLevel, false},
		{"warning", zapcore.WarnLevel, false},
		{"error", zapcore.ErrorLevel, false},
		{"loud", zapcore.InfoLevel, true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNew(t *testing.T) {
	for _, format := range []string{"text", "json"} {
		logger, err := New(config.LoggingConfig{Level: "debug", Format: format})
		if err != nil {
			t.Fatalf("New(%s) error: %v", format, err)
		}
		if logger == nil {
			t.Fatalf("New(%s) returned nil logger", format)
		}
		_ = logger.Sync()
	}

	if _, err := New(config.LoggingConfig{Level: "loud"}); err == nil {
		t.Error("expected error for invalid level")
	}
}
