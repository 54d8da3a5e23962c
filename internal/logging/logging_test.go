package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name         string
		level        string
		debugEnabled bool
		warnEnabled  bool
	}{
		{name: "default is info", level: "", debugEnabled: false, warnEnabled: true},
		{name: "debug", level: "debug", debugEnabled: true, warnEnabled: true},
		{name: "warn", level: "warn", debugEnabled: false, warnEnabled: true},
		{name: "error", level: "error", debugEnabled: false, warnEnabled: false},
		{name: "garbage falls back to info", level: "loud", debugEnabled: false, warnEnabled: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := NewLogger(Config{Level: tt.level})
			ctx := context.Background()
			if got := logger.Enabled(ctx, slog.LevelDebug); got != tt.debugEnabled {
				t.Fatalf("debug enabled = %v, want %v", got, tt.debugEnabled)
			}
			if got := logger.Enabled(ctx, slog.LevelWarn); got != tt.warnEnabled {
				t.Fatalf("warn enabled = %v, want %v", got, tt.warnEnabled)
			}
		})
	}
}

func TestWithCommon(t *testing.T) {
	attrs := WithCommon(nil, "nhl-bot", "dev")
	if len(attrs) != 2 {
		t.Fatalf("got %d attrs, want 2", len(attrs))
	}
	if attrs[0].Key != FieldService || attrs[0].Value.String() != "nhl-bot" {
		t.Fatalf("unexpected service attr %+v", attrs[0])
	}
	if attrs[1].Key != FieldVersion || attrs[1].Value.String() != "dev" {
		t.Fatalf("unexpected version attr %+v", attrs[1])
	}

	kept := WithCommon([]slog.Attr{slog.String("k", "v")}, "", "")
	if len(kept) != 1 || kept[0].Key != "k" {
		t.Fatalf("empty service/version should add nothing, got %+v", kept)
	}
}

func TestHelpersTolerateNilLogger(t *testing.T) {
	Info(nil, "ignored")
	Warn(nil, "ignored")
	Error(nil, "ignored", errors.New("boom"))
}

func TestErrorAttachesErrKey(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	Error(logger, "fetch failed", errors.New("status 503"), FieldTeam, "BUF")

	out := buf.String()
	if !strings.Contains(out, FieldError+`="status 503"`) {
		t.Fatalf("missing error field in %q", out)
	}
	if !strings.Contains(out, "team=BUF") {
		t.Fatalf("missing team field in %q", out)
	}
}
