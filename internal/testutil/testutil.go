// Package testutil provides small fixtures shared by the package tests:
// a canned HTTP doer, a fixed clock, and a buffer-backed logger.
package testutil

import (
	"bytes"
	"log/slog"
	"time"
)

// NowAt returns a clock function pinned to t, for injecting into types that
// take a now func.
func NowAt(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// MustParseRFC3339 parses an RFC3339 timestamp, panicking on bad input.
// Only for literals in tests.
func MustParseRFC3339(v string) time.Time {
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		panic("testutil: bad timestamp " + v)
	}
	return t
}

// NewBufferLogger returns a debug-level text logger and the buffer it
// writes to, so tests can assert on log output.
func NewBufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(handler), &buf
}
