package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name  string
		level string
	}{
		{"debug level", "debug"},
		{"info level", "info"},
		{"warn level", "warn"},
		{"error level", "error"},
		{"invalid level", "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := New(tt.level)
			if log == nil {
				t.Error("New() returned nil")
			}
		})
	}
}

func TestLevelFiltering(t *testing.T) {
	tests := []struct {
		name        string
		configLevel string
		logDebug    bool
		wantDebug   bool
	}{
		{"debug logs at debug level", "debug", true, true},
		{"debug doesn't log at info level", "info", true, false},
		{"debug doesn't log at invalid level", "invalid", true, false},
	}

	ctx := context.Background()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := NewWithWriter(tt.configLevel, &buf)
			log.Debug(ctx, "debug message")
			got := strings.Contains(buf.String(), "debug message")
			if got != tt.wantDebug {
				t.Errorf("debug line written = %v, want %v", got, tt.wantDebug)
			}
		})
	}
}

func TestLoggerFormatting(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer
	log := NewWithWriter("info", &buf)

	log.Info(ctx, "formatted message: %s %d", "test", 123)
	if !strings.Contains(buf.String(), "formatted message: test 123") {
		t.Errorf("Info() output = %q, want formatted message", buf.String())
	}
}

func TestRequestIDPropagation(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-42")
	if got := RequestID(ctx); got != "req-42" {
		t.Errorf("RequestID() = %q, want %q", got, "req-42")
	}

	var buf bytes.Buffer
	log := NewWithWriter("info", &buf)
	log.Info(ctx, "hello")
	if !strings.Contains(buf.String(), "req-42") {
		t.Errorf("log output = %q, want request id included", buf.String())
	}
}

func TestRequestIDMissing(t *testing.T) {
	if got := RequestID(context.Background()); got != "" {
		t.Errorf("RequestID() = %q, want empty", got)
	}
}
